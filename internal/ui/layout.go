package ui

const (
	headerHeight = 2 // status line + command bar
	paneBorder   = 2
	minPaneSize  = 1
)

// paneSizes splits the content area between table and detail panes.
func (m Model) paneSizes() (tableWidth, detailWidth, height int) {
	height = m.height - headerHeight
	if height < minPaneSize+paneBorder {
		height = minPaneSize + paneBorder
	}
	tableWidth = m.width * 3 / 5
	detailWidth = m.width - tableWidth
	return tableWidth, detailWidth, height
}

// layout resizes widgets after a window size change.
func (m *Model) layout() {
	tableWidth, detailWidth, height := m.paneSizes()
	inner := height - paneBorder

	m.table.SetColumns(broadcastColumns(clampMin(tableWidth-paneBorder, minPaneSize)))
	m.table.SetWidth(clampMin(tableWidth-paneBorder, minPaneSize))
	m.table.SetHeight(clampMin(inner, minPaneSize))

	m.detailViewport.Width = clampMin(detailWidth-paneBorder, minPaneSize)
	m.detailViewport.Height = clampMin(inner, minPaneSize)

	m.logViewport.Width = clampMin(m.width-paneBorder, minPaneSize)
	m.logViewport.Height = clampMin(inner, minPaneSize)
}

func clampMin(v, lo int) int {
	if v < lo {
		return lo
	}
	return v
}
