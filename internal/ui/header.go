package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const logo = "▶ BoxCast"

func (m Model) renderMain() string {
	header := m.renderHeader()
	bar := m.renderCommandBar()

	var body string
	if m.currentView == ViewLogs {
		body = m.theme.Styles().PaneFocus.
			Width(clampMin(m.width-paneBorder, minPaneSize)).
			Render(m.logViewport.View())
	} else {
		body = m.renderBroadcasts()
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, bar)
}

func (m Model) renderBroadcasts() string {
	styles := m.theme.Styles()
	tableWidth, detailWidth, _ := m.paneSizes()

	tablePane, detailPane := styles.Pane, styles.Pane
	if m.focusedPane == 0 {
		tablePane = styles.PaneFocus
	} else {
		detailPane = styles.PaneFocus
	}
	left := tablePane.Width(clampMin(tableWidth-paneBorder, minPaneSize)).Render(m.table.View())
	right := detailPane.Width(clampMin(detailWidth-paneBorder, minPaneSize)).Render(m.detailViewport.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// renderHeader shows the channel, list counts and poll health.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	snap := m.snapshot

	channel := snap.ChannelID
	if channel == "" && m.config != nil {
		channel = m.config.ChannelID
	}
	parts := []string{
		styles.Logo.Render(logo),
		styles.MutedText.Render("channel ") + styles.Text.Render(channel),
		styles.StatusStyle("live").Render(fmt.Sprintf("%d live", len(snap.Live))),
		styles.StatusStyle("archived").Render(fmt.Sprintf("%d archived", len(snap.Archived))),
	}

	switch {
	case snap.IsOffline():
		parts = append(parts, styles.DangerText.Render(fmt.Sprintf("offline (%d failures)", snap.ConsecutiveFailures)))
	case snap.LastError != nil:
		parts = append(parts, styles.WarningText.Render("last poll failed"))
	case !snap.LastUpdated.IsZero():
		parts = append(parts, styles.MutedText.Render("updated "+relativeTime(snap.LastUpdated, m.now())))
	default:
		parts = append(parts, styles.MutedText.Render("connecting…"))
	}

	line := strings.Join(parts, "  ")
	return styles.Header.Width(m.width).Render(line)
}

// renderCommandBar shows the tabs and the most useful keys.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	var tabs []string
	for _, t := range []Tab{TabLive, TabArchived} {
		label := strings.ToUpper(t.String()[:1]) + t.String()[1:]
		if m.currentView == ViewBroadcasts && t == m.tab {
			tabs = append(tabs, styles.AccentText.Bold(true).Render("["+label+"]"))
			continue
		}
		tabs = append(tabs, styles.MutedText.Render(" "+label+" "))
	}
	if m.currentView == ViewLogs {
		tabs = append(tabs, styles.AccentText.Bold(true).Render("[Log]"))
	}

	hint := "enter view  a tab  l log  ? help  q quit"
	if m.currentView == ViewLogs {
		hint = "esc back  ? help  q quit"
	}
	left := strings.Join(tabs, " ")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(hint) - 2
	if gap < 1 {
		gap = 1
	}
	return styles.Footer.Width(m.width).Render(left + strings.Repeat(" ", gap) + hint)
}
