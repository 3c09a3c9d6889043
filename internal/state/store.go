package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/boxcast/boxcast-go/boxcast"
)

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	ChannelID           string
	Live                boxcast.BroadcastList
	Archived            boxcast.BroadcastList
	HasData             bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive poll failures
}

// IsOffline returns true when the API has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Find returns the broadcast with id from either list.
func (s Snapshot) Find(id string) (boxcast.Broadcast, bool) {
	for _, list := range []boxcast.BroadcastList{s.Live, s.Archived} {
		for _, b := range list {
			if b.ID == id {
				return b, true
			}
		}
	}
	return boxcast.Broadcast{}, false
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// NewStore returns a store for the given channel.
func NewStore(channelID string) *Store {
	return &Store{snapshot: Snapshot{ChannelID: channelID}}
}

// Update replaces the stored lists. When err is non-nil the previous data is
// kept but the error is recorded for visibility.
func (s *Store) Update(live, archived boxcast.BroadcastList, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Live = cloneList(live)
	s.snapshot.Archived = cloneList(archived)
	s.snapshot.HasData = true
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Live = cloneList(s.snapshot.Live)
	snap.Archived = cloneList(s.snapshot.Archived)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneList(items boxcast.BroadcastList) boxcast.BroadcastList {
	if len(items) == 0 {
		return nil
	}
	dup := make(boxcast.BroadcastList, len(items))
	copy(dup, items)
	return dup
}
