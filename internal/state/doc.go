// Package state holds the latest broadcast lists shared by the poller and the UI.
//
// # Architecture
//
//	Producer (Poller):                 Consumer (UI):
//	┌──────────────────────┐          ┌──────────────────┐
//	│ GetLiveBroadcasts()  │          │                  │
//	│ GetArchivedBroadcasts│          │                  │
//	│      ↓               │          │                  │
//	│ store.Update()       │─────────→│ store.Snapshot() │
//	│      ↓               │ (mutex)  │      ↓           │
//	│  repeat...           │          │  render UI       │
//	└──────────────────────┘          └──────────────────┘
//
// Store is guarded by a sync.RWMutex with a single writer and many readers.
// Snapshot returns copies of both lists, so callers may mutate what they get.
//
// # Error Semantics
//
// A failed poll keeps the previous lists and only records the error, the time
// and an incremented failure counter. A successful poll clears the error and
// resets the counter. Snapshot.IsOffline reports two or more failures in a row.
package state
