package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"

	"github.com/boxcast/boxcast-go/boxcast"
)

const (
	colStartsWidth = 16
	colWhenWidth   = 10
	colLengthWidth = 7
	minNameWidth   = 10
	cellPadding    = 2 // table cells pad one column each side
)

// broadcastColumns sizes the columns to fill width; Name takes the slack.
func broadcastColumns(width int) []table.Column {
	fixed := colStartsWidth + colWhenWidth + colLengthWidth + 4*cellPadding
	name := width - fixed
	if name < minNameWidth {
		name = minNameWidth
	}
	return []table.Column{
		{Title: "Name", Width: name},
		{Title: "Starts", Width: colStartsWidth},
		{Title: "When", Width: colWhenWidth},
		{Title: "Length", Width: colLengthWidth},
	}
}

// broadcastRows renders one row per broadcast, keeping list order. A
// broadcast whose view has been loaded shows the view status under When.
func broadcastRows(list boxcast.BroadcastList, views map[string]*viewState, now time.Time) []table.Row {
	rows := make([]table.Row, 0, len(list))
	for _, b := range list {
		name := singleLine(b.Name)
		if name == "" {
			name = "(untitled " + b.ID + ")"
		}
		when := relativeTime(b.StartDate, now)
		if vs := views[b.ID]; vs != nil && !vs.loading && vs.err == nil && vs.view.Status != "" {
			when = strings.ToUpper(string(vs.view.Status))
		}
		rows = append(rows, table.Row{
			name,
			formatTime(b.StartDate),
			when,
			formatDuration(b.Duration()),
		})
	}
	return rows
}

func (m *Model) updateTable() {
	list := m.currentList()
	m.table.SetRows(broadcastRows(list, m.views, m.now()))
	// SetRows on an empty list leaves the cursor at -1.
	switch cursor := m.table.Cursor(); {
	case len(list) == 0:
	case cursor < 0:
		m.table.SetCursor(0)
	case cursor >= len(list):
		m.table.SetCursor(len(list) - 1)
	}
}
