// Package ui provides the Bubble Tea TUI for the boxcast viewer.
//
// The UI is a two-pane broadcast browser. The left pane is a bubbles table
// of the selected tab (live or archived) read from the state store on every
// tick; the right pane shows the selected broadcast and, once loaded with
// enter, its playback view and HLS renditions. A second view tails the
// viewer's own log file.
//
// Files:
//   - app.go: Model, messages and commands
//   - table.go, detail.go, logs.go: pane content
//   - header.go, help.go, layout.go: chrome and sizing
//   - theme.go, keys.go, format.go: styling, bindings and formatting helpers
package ui
