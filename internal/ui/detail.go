package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/boxcast/boxcast-go/boxcast"
)

func (m *Model) updateDetailViewport() {
	if !m.ready {
		return
	}
	b, ok := m.selectedBroadcast()
	var content string
	if ok {
		content = renderDetail(b, m.views[b.ID], m.theme.Styles(), m.detailViewport.Width, m.now())
	} else {
		content = m.theme.Styles().MutedText.Render(emptyListMessage(m.tab, m.snapshot.HasData))
	}
	m.detailViewport.SetContent(content)
}

func emptyListMessage(tab Tab, hasData bool) string {
	if !hasData {
		return "Waiting for the first poll…"
	}
	if tab == TabArchived {
		return "No archived broadcasts."
	}
	return "Nothing is live right now. Press a for archived broadcasts."
}

// renderDetail renders the selected broadcast and, when loaded, its playback view.
func renderDetail(b boxcast.Broadcast, vs *viewState, styles Styles, width int, now time.Time) string {
	var sb strings.Builder
	wrap := lipgloss.NewStyle().Width(clampMin(width, minPaneSize))

	title := b.Name
	if strings.TrimSpace(title) == "" {
		title = "(untitled)"
	}
	sb.WriteString(wrap.Render(styles.Text.Bold(true).Render(title)))
	sb.WriteString("\n")
	if desc := strings.TrimSpace(b.Description); desc != "" {
		sb.WriteString(wrap.Render(styles.MutedText.Render(desc)))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	thumb := placeholder
	if b.ThumbnailURL != nil {
		thumb = b.ThumbnailURL.String()
	}
	for _, row := range [][2]string{
		{"ID", b.ID},
		{"Account", b.AccountID},
		{"Channel", b.ChannelID},
		{"Starts", formatTime(b.StartDate) + " (" + relativeTime(b.StartDate, now) + ")"},
		{"Stops", formatTime(b.StopDate)},
		{"Length", formatDuration(b.Duration())},
		{"Thumbnail", thumb},
	} {
		sb.WriteString(detailRow(styles, row[0], row[1], width))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(styles.AccentText.Bold(true).Render("Playback"))
	sb.WriteString("\n")
	sb.WriteString(renderPlayback(vs, styles, width))
	return sb.String()
}

func renderPlayback(vs *viewState, styles Styles, width int) string {
	switch {
	case vs == nil:
		return styles.MutedText.Render("Press enter to load the playback view.")
	case vs.loading:
		return styles.WarningText.Render("Loading…")
	case vs.err != nil:
		return styles.DangerText.Render(truncate(describeError(vs.err), width))
	}

	var sb strings.Builder
	status := string(vs.view.Status)
	sb.WriteString(detailRow(styles, "Status", styles.StatusStyle(status).Render(strings.ToUpper(status)), width))
	sb.WriteString("\n")
	playlist := placeholder
	if vs.view.PlaylistURL != nil {
		playlist = vs.view.PlaylistURL.String()
	}
	sb.WriteString(detailRow(styles, "Playlist", playlist, width))
	sb.WriteString("\n")
	if !vs.fetchedAt.IsZero() {
		sb.WriteString(detailRow(styles, "Fetched", vs.fetchedAt.Local().Format("15:04:05"), width))
		sb.WriteString("\n")
	}

	switch {
	case vs.renditionsErr != nil:
		sb.WriteString(styles.WarningText.Render(truncate("renditions: "+describeError(vs.renditionsErr), width)))
	case len(vs.renditions) == 0:
		sb.WriteString(styles.MutedText.Render("No renditions listed."))
	default:
		sb.WriteString(styles.MutedText.Render(fmt.Sprintf("Renditions (%d)", len(vs.renditions))))
		for _, r := range vs.renditions {
			line := fmt.Sprintf("  %-10s %s", formatBandwidth(r.Bandwidth), orPlaceholder(r.Resolution))
			sb.WriteString("\n")
			sb.WriteString(styles.Text.Render(truncate(line, width)))
		}
	}
	return sb.String()
}

func detailRow(styles Styles, label, value string, width int) string {
	const labelWidth = 10
	l := styles.MutedText.Render(fmt.Sprintf("%-*s", labelWidth, label))
	return l + truncate(value, width-labelWidth)
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

// describeError shortens SDK errors for display.
func describeError(err error) string {
	switch {
	case boxcast.IsTransport(err):
		return "BoxCast unreachable: " + err.Error()
	case boxcast.IsDecode(err):
		return "Unexpected response: " + err.Error()
	case boxcast.StatusCode(err) > 0:
		return fmt.Sprintf("BoxCast returned HTTP %d", boxcast.StatusCode(err))
	default:
		return err.Error()
	}
}
