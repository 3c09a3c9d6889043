package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func writeLines(t *testing.T, n int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "boxcast.log")
	var content strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&content, "Line %d\n", i)
	}
	if err := os.WriteFile(path, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func messages(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Message
	}
	return out
}

func TestRead(t *testing.T) {
	path := writeLines(t, 10)

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{"zero lines", 0, nil},
		{"last three", 3, []string{"Line 8", "Line 9", "Line 10"}},
		{"exactly all", 10, []string{"Line 1", "Line 2", "Line 3", "Line 4", "Line 5", "Line 6", "Line 7", "Line 8", "Line 9", "Line 10"}},
		{"more than available", 20, []string{"Line 1", "Line 2", "Line 3", "Line 4", "Line 5", "Line 6", "Line 7", "Line 8", "Line 9", "Line 10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := Read(path, tt.maxLines)
			if err != nil {
				t.Fatalf("Read returned error: %v", err)
			}
			got := messages(entries)
			if len(got) == 0 && len(tt.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Fatalf("Read = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	entries, err := Read(filepath.Join(t.TempDir(), "nope.log"), 5)
	if err != nil || entries != nil {
		t.Fatalf("Read(missing) = %v, %v; want nil, nil", entries, err)
	}
}

func TestParse_ZerologLine(t *testing.T) {
	line := `{"level":"warn","service":"boxcast","failures":2,"time":"2026-01-02T03:04:05Z","message":"broadcast poll failed"}`
	e := Parse(line)

	if e.Level != "warn" || e.Message != "broadcast poll failed" || e.Raw != line {
		t.Fatalf("Parse = %#v, want warn/broadcast poll failed", e)
	}
	if !e.Time.Equal(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)) {
		t.Fatalf("Time = %v, want 2026-01-02T03:04:05Z", e.Time)
	}
	if !reflect.DeepEqual(e.FieldKeys(), []string{"failures", "service"}) {
		t.Fatalf("FieldKeys = %v, want [failures service]", e.FieldKeys())
	}
	if e.Fields["failures"] != "2" {
		t.Fatalf("failures = %q, want 2", e.Fields["failures"])
	}
}

func TestParse_PlainLine(t *testing.T) {
	e := Parse("panic: something")
	if e.Message != "panic: something" || e.Level != "" || e.Fields != nil {
		t.Fatalf("Parse = %#v, want raw message only", e)
	}
}
