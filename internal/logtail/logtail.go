package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"
)

// Entry is one line of the viewer's log file.
type Entry struct {
	Time    time.Time
	Level   string
	Message string
	Fields  map[string]string // remaining fields, stringified
	Raw     string
}

// Read returns at most maxLines entries from the end of the file at path.
// A missing file yields no entries.
func Read(path string, maxLines int) ([]Entry, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	entries := make([]Entry, count)
	start := 0
	if count == maxLines {
		start = idx
	}
	for i := 0; i < count; i++ {
		entries[i] = Parse(ring[(start+i)%maxLines])
	}
	return entries, nil
}

// Parse decodes a zerolog JSON line. Lines that are not JSON objects are
// returned with only Raw and Message set.
func Parse(line string) Entry {
	entry := Entry{Raw: line, Message: line}
	var fields map[string]any
	if err := json.Unmarshal([]byte(line), &fields); err != nil {
		return entry
	}

	if v, ok := fields["time"].(string); ok {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			entry.Time = t
		}
	}
	entry.Level, _ = fields["level"].(string)
	if msg, ok := fields["message"].(string); ok {
		entry.Message = msg
	} else {
		entry.Message = ""
	}
	delete(fields, "time")
	delete(fields, "level")
	delete(fields, "message")

	if len(fields) > 0 {
		entry.Fields = make(map[string]string, len(fields))
		for k, v := range fields {
			switch val := v.(type) {
			case string:
				entry.Fields[k] = val
			default:
				entry.Fields[k] = fmt.Sprint(val)
			}
		}
	}
	return entry
}

// FieldKeys returns the entry's field names in sorted order.
func (e Entry) FieldKeys() []string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
