package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/boxcast/boxcast-go/boxcast"
)

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	s := NewStore("chan")

	live := boxcast.BroadcastList{{ID: "1"}}
	archived := boxcast.BroadcastList{{ID: "2"}, {ID: "3"}}

	before := time.Now()
	s.Update(live, archived, nil)

	snap := s.Snapshot()
	if !snap.HasData || snap.ChannelID != "chan" {
		t.Fatalf("snapshot = %#v, want HasData for chan", snap)
	}
	if len(snap.Live) != 1 || len(snap.Archived) != 2 || snap.Archived[0].ID != "2" {
		t.Fatalf("snapshot lists = %#v / %#v, want 1 live and 2 archived", snap.Live, snap.Archived)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Archived[0].ID = "999"
	live[0].ID = "mutated"
	snap2 := s.Snapshot()
	if snap2.Archived[0].ID != "2" || snap2.Live[0].ID != "1" {
		t.Fatalf("Snapshot should clone lists; got %#v / %#v", snap2.Live, snap2.Archived)
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	s := NewStore("chan")

	s.Update(boxcast.BroadcastList{{ID: "1"}}, nil, nil)
	prev := s.Snapshot()

	before := time.Now()
	origErr := errors.New("boom")
	s.Update(nil, nil, origErr)

	snap := s.Snapshot()
	if snap.HasData != prev.HasData || len(snap.Live) != 1 || snap.Live[0].ID != "1" {
		t.Fatalf("data changed on error: got %#v want %#v", snap.Live, prev.Live)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
	if !errors.Is(snap.LastError, origErr) {
		t.Fatalf("cloned error should still wrap the source error")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	snap := s.Snapshot()
	if snap.ConsecutiveFailures != 0 || snap.IsOffline() {
		t.Fatalf("fresh store = %#v, want online with 0 failures", snap)
	}

	s.Update(nil, nil, errors.New("fail 1"))
	if snap = s.Snapshot(); snap.ConsecutiveFailures != 1 || snap.IsOffline() {
		t.Fatalf("after 1 failure = %d offline=%v, want 1 online", snap.ConsecutiveFailures, snap.IsOffline())
	}

	s.Update(nil, nil, errors.New("fail 2"))
	if snap = s.Snapshot(); snap.ConsecutiveFailures != 2 || !snap.IsOffline() {
		t.Fatalf("after 2 failures = %d offline=%v, want 2 offline", snap.ConsecutiveFailures, snap.IsOffline())
	}

	// Success resets counter
	s.Update(nil, nil, nil)
	if snap = s.Snapshot(); snap.ConsecutiveFailures != 0 || snap.IsOffline() {
		t.Fatalf("after success = %d offline=%v, want 0 online", snap.ConsecutiveFailures, snap.IsOffline())
	}
}

func TestSnapshot_Find(t *testing.T) {
	snap := Snapshot{
		Live:     boxcast.BroadcastList{{ID: "live-1", Name: "Live"}},
		Archived: boxcast.BroadcastList{{ID: "old-1", Name: "Old"}},
	}
	if b, ok := snap.Find("old-1"); !ok || b.Name != "Old" {
		t.Fatalf("Find(old-1) = %#v, %v; want Old", b, ok)
	}
	if b, ok := snap.Find("live-1"); !ok || b.Name != "Live" {
		t.Fatalf("Find(live-1) = %#v, %v; want Live", b, ok)
	}
	if _, ok := snap.Find("nope"); ok {
		t.Fatalf("Find(nope) found a broadcast")
	}
}
