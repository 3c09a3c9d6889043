// Package app is the composition root of the boxcast viewer.
//
// # Overview
//
// Run wires configuration, logging, the BoxCast client, the shared state
// store, the background poller and the Bubble Tea UI together, then blocks
// until the user quits or the context is cancelled.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read config.toml, apply flag overrides
//	       ├─────> logging.New()        zerolog to the log file
//	       ├─────> boxcast.NewClient()  API client
//	       ├─────> state.NewStore()     Shared state container
//	       ├─────> refresh()            First poll before the UI starts
//	       ├─────> StartPoller()        Background updates
//	       └─────> ui.Run()             Start TUI (blocks)
//
// # Polling Behavior
//
// Each poll fetches the channel's live and archived broadcasts concurrently
// and stores both lists in one update. A failed poll keeps the previous data;
// the wait before the next poll doubles per consecutive failure up to
// five minutes and returns to the configured interval after a success.
//
// # Error Handling
//
// Run returns configuration, log file and client construction errors. Poll
// failures are logged and shown in the UI header; they never stop the
// program.
package app
