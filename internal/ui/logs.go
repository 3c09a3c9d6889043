package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/boxcast/boxcast-go/internal/logtail"
)

func (m *Model) updateLogViewport() {
	if !m.ready {
		return
	}
	styles := m.theme.Styles()
	switch {
	case m.logErr != nil:
		m.logViewport.SetContent(styles.DangerText.Render(m.logErr.Error()))
	case len(m.logEntries) == 0:
		m.logViewport.SetContent(styles.MutedText.Render("Log is empty."))
	default:
		m.logViewport.SetContent(renderLogEntries(m.logEntries, styles))
		m.logViewport.GotoBottom()
	}
}

func renderLogEntries(entries []logtail.Entry, styles Styles) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, renderLogEntry(e, styles))
	}
	return strings.Join(lines, "\n")
}

func renderLogEntry(e logtail.Entry, styles Styles) string {
	if e.Level == "" && e.Time.IsZero() {
		return styles.Text.Render(e.Raw)
	}
	var sb strings.Builder
	if !e.Time.IsZero() {
		sb.WriteString(styles.MutedText.Render(e.Time.Local().Format("15:04:05")))
		sb.WriteString(" ")
	}
	sb.WriteString(levelStyle(e.Level, styles).Render(strings.ToUpper(levelLabel(e.Level))))
	sb.WriteString(" ")
	sb.WriteString(styles.Text.Render(e.Message))
	for _, k := range e.FieldKeys() {
		if k == "service" {
			continue
		}
		sb.WriteString(" ")
		sb.WriteString(styles.MutedText.Render(k + "=" + e.Fields[k]))
	}
	return sb.String()
}

func levelLabel(level string) string {
	if len(level) > 4 {
		return level[:4]
	}
	return level
}

func levelStyle(level string, styles Styles) lipgloss.Style {
	switch level {
	case "error", "fatal", "panic":
		return styles.DangerText
	case "warn":
		return styles.WarningText
	case "debug", "trace":
		return styles.MutedText
	default:
		return styles.AccentText
	}
}
