package boxcast

import (
	"context"
	"io"
	"net/http"
	"sync/atomic"
	"testing"
	"time"
)

func TestClient_AsyncFormsCallbackOnce(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/channels/1/broadcasts":
			_, _ = io.WriteString(w, "["+broadcastJSON+"]")
		case "/broadcasts/1":
			_, _ = io.WriteString(w, broadcastJSON)
		case "/broadcasts/1/view":
			_, _ = io.WriteString(w, `{"playlist": "https://api.boxcast.com/playlist", "status": "live"}`)
		default:
			http.NotFound(w, r)
		}
	})
	ctx := testContext(t)

	var calls atomic.Int32
	lists := make(chan BroadcastList, 2)
	broadcasts := make(chan Broadcast, 1)
	views := make(chan BroadcastView, 1)
	errs := make(chan error, 4)

	onList := func(list BroadcastList, err error) {
		calls.Add(1)
		errs <- err
		lists <- list
	}
	c.GetLiveBroadcastsAsync(ctx, "1", onList)
	c.GetArchivedBroadcastsAsync(ctx, "1", onList)
	c.GetBroadcastAsync(ctx, "1", "2", func(b Broadcast, err error) {
		calls.Add(1)
		errs <- err
		broadcasts <- b
	})
	c.GetBroadcastViewAsync(ctx, "1", func(v BroadcastView, err error) {
		calls.Add(1)
		errs <- err
		views <- v
	})

	for i := 0; i < 4; i++ {
		select {
		case err := <-errs:
			if err != nil {
				t.Fatalf("async call returned error: %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for callback %d", i+1)
		}
	}
	for i := 0; i < 2; i++ {
		if list := <-lists; len(list) != 1 {
			t.Fatalf("list len = %d, want 1", len(list))
		}
	}
	if b := <-broadcasts; b.ChannelID != "2" {
		t.Fatalf("ChannelID = %q, want 2", b.ChannelID)
	}
	if v := <-views; v.Status != StatusLive {
		t.Fatalf("Status = %q, want live", v.Status)
	}

	time.Sleep(50 * time.Millisecond)
	if got := calls.Load(); got != 4 {
		t.Fatalf("callbacks = %d, want 4", got)
	}
}

func TestClient_AsyncDeliversErrors(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "{not-json")
	})

	done := make(chan error, 1)
	c.GetBroadcastViewAsync(testContext(t), "1", func(v BroadcastView, err error) {
		if v.PlaylistURL != nil {
			t.Errorf("view populated alongside error: %#v", v)
		}
		done <- err
	})

	select {
	case err := <-done:
		if !IsDecode(err) {
			t.Fatalf("error = %v, want decode error", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for callback")
	}
}

func TestClient_AsyncHonoursCancelledContext(t *testing.T) {
	c, err := NewClient()
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	c.GetLiveBroadcastsAsync(ctx, "1", func(_ BroadcastList, err error) { done <- err })

	select {
	case err := <-done:
		if !IsTransport(err) {
			t.Fatalf("error = %v, want transport error", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for callback")
	}
}
