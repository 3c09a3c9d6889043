package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	var sb strings.Builder
	sb.WriteString(styles.Logo.Render(logo + " help"))
	sb.WriteString("\n\n")
	for _, b := range m.keys.bindings() {
		h := b.Help()
		sb.WriteString(styles.AccentText.Render(fmt.Sprintf("%-8s", h.Key)))
		sb.WriteString(styles.Text.Render(h.Desc))
		sb.WriteString("\n")
	}
	sb.WriteString(styles.MutedText.Render("j/k, arrows, pgup/pgdn move the selection"))
	sb.WriteString("\n")
	sb.WriteString(styles.MutedText.Render(fmt.Sprintf("Theme: %s (%s)", m.theme.Name, strings.Join(ThemeNames(), ", "))))
	sb.WriteString("\n\n")
	sb.WriteString(styles.MutedText.Render("Press any key to close"))

	box := styles.PaneFocus.Padding(1, 2).Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
