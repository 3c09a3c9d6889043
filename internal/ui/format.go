package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const placeholder = "—"

func formatTime(t time.Time) string {
	if t.IsZero() {
		return placeholder
	}
	return t.Local().Format("2006-01-02 15:04")
}

// formatDuration renders whole minutes as "1h05m" or "45m".
func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "0m"
	}
	d = d.Round(time.Minute)
	h := int(d / time.Hour)
	m := int((d % time.Hour) / time.Minute)
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh%02dm", h, m)
}

func formatBandwidth(bps uint32) string {
	switch {
	case bps == 0:
		return placeholder
	case bps >= 1_000_000:
		return fmt.Sprintf("%.1f Mbps", float64(bps)/1_000_000)
	default:
		return fmt.Sprintf("%d kbps", bps/1000)
	}
}

// relativeTime describes t relative to now, e.g. "in 2h" or "3d ago".
func relativeTime(t, now time.Time) string {
	if t.IsZero() {
		return placeholder
	}
	d := t.Sub(now)
	suffix := ""
	prefix := "in "
	if d < 0 {
		d = -d
		prefix = ""
		suffix = " ago"
	}
	var amount string
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		amount = fmt.Sprintf("%dm", int(d/time.Minute))
	case d < 48*time.Hour:
		amount = fmt.Sprintf("%dh", int(d/time.Hour))
	default:
		amount = fmt.Sprintf("%dd", int(d/(24*time.Hour)))
	}
	return prefix + amount + suffix
}

// truncate shortens s to width display cells, adding an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// singleLine collapses newlines and runs of whitespace.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
