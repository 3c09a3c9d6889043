package ui

import (
	"context"
	"errors"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/boxcast/boxcast-go/boxcast"
	"github.com/boxcast/boxcast-go/internal/prefs"
	"github.com/boxcast/boxcast-go/internal/state"
)

type fakeClient struct {
	view       boxcast.BroadcastView
	viewErr    error
	renditions []boxcast.Rendition
	calls      []string
}

func (f *fakeClient) GetBroadcastView(_ context.Context, id string) (boxcast.BroadcastView, error) {
	f.calls = append(f.calls, id)
	return f.view, f.viewErr
}

func (f *fakeClient) GetRenditions(context.Context, boxcast.BroadcastView) ([]boxcast.Rendition, error) {
	return f.renditions, nil
}

func testBroadcast(id, name string, start time.Time) boxcast.Broadcast {
	return boxcast.Broadcast{
		ID:        id,
		Name:      name,
		AccountID: "acct",
		ChannelID: "chan",
		StartDate: start,
		StopDate:  start.Add(time.Hour),
	}
}

func newTestModel(t *testing.T, client Client) Model {
	t.Helper()
	start := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	store := state.NewStore("chan")
	store.Update(
		boxcast.BroadcastList{testBroadcast("live1", "Sunday Service", start)},
		boxcast.BroadcastList{
			testBroadcast("old1", "Easter", start.Add(-48*time.Hour)),
			testBroadcast("old2", "Good Friday", start.Add(-96*time.Hour)),
		},
		nil,
	)

	m := New(Options{
		Client:    client,
		Store:     store,
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	m.now = func() time.Time { return start.Add(10 * time.Minute) }
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})
	return update(t, m, fetchSnapshotCmd(store)())
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return got
}

func runeKey(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

func TestModelSwitchTabPersistsPreference(t *testing.T) {
	m := newTestModel(t, &fakeClient{})
	if b, _ := m.selectedBroadcast(); b.ID != "live1" {
		t.Fatalf("selected = %q, want live1", b.ID)
	}

	m = update(t, m, runeKey("a"))
	if m.tab != TabArchived {
		t.Fatalf("tab = %v, want archived", m.tab)
	}
	if rows := m.table.Rows(); len(rows) != 2 || rows[0][0] != "Easter" {
		t.Fatalf("archived rows = %v", rows)
	}

	saved, err := prefs.Load(m.prefsPath)
	if err != nil {
		t.Fatalf("load prefs: %v", err)
	}
	if saved.Tab != prefs.TabArchived {
		t.Fatalf("saved tab = %q, want %q", saved.Tab, prefs.TabArchived)
	}
}

func TestModelLoadView(t *testing.T) {
	playlist, _ := url.Parse("https://play.boxcast.com/p/live1/all.m3u8")
	client := &fakeClient{
		view:       boxcast.BroadcastView{PlaylistURL: playlist, Status: boxcast.StatusLive},
		renditions: []boxcast.Rendition{{Bandwidth: 2_500_000, Resolution: "1280x720"}},
	}
	m := newTestModel(t, client)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if cmd == nil {
		t.Fatal("expected fetch command")
	}
	if vs := m.views["live1"]; vs == nil || !vs.loading {
		t.Fatalf("view state = %+v, want loading", vs)
	}

	m = update(t, m, cmd())
	if len(client.calls) != 1 || client.calls[0] != "live1" {
		t.Fatalf("calls = %v", client.calls)
	}
	vs := m.views["live1"]
	if vs == nil || vs.loading || vs.view.Status != boxcast.StatusLive {
		t.Fatalf("view state = %+v", vs)
	}
	if got := m.table.Rows()[0][2]; got != "LIVE" {
		t.Fatalf("when column = %q, want LIVE", got)
	}
	if !strings.Contains(m.detailViewport.View(), "1280x720") {
		t.Fatal("detail pane does not list renditions")
	}
}

func TestModelLoadViewError(t *testing.T) {
	client := &fakeClient{viewErr: errors.New("boom")}
	m := newTestModel(t, client)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected fetch command")
	}
	msg := cmd().(viewMsg)
	if msg.err == nil {
		t.Fatal("expected error in view message")
	}
	m = update(t, m, msg)
	if got := m.table.Rows()[0][2]; got == "LIVE" {
		t.Fatal("failed view must not change the when column")
	}
	if !strings.Contains(m.detailViewport.View(), "boom") {
		t.Fatal("detail pane does not show the view error")
	}
}

func TestModelHelpAndQuit(t *testing.T) {
	m := newTestModel(t, &fakeClient{})

	m = update(t, m, runeKey("?"))
	if !m.showHelp {
		t.Fatal("help not shown")
	}
	if !strings.Contains(m.View(), "Load playback view") {
		t.Fatal("help does not list bindings")
	}
	m = update(t, m, runeKey("x"))
	if m.showHelp {
		t.Fatal("any key should close help")
	}

	_, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q did not quit")
	}
}

func TestModelLogsToggle(t *testing.T) {
	m := newTestModel(t, &fakeClient{})
	m = update(t, m, runeKey("l"))
	if m.currentView != ViewLogs {
		t.Fatalf("view = %v, want logs", m.currentView)
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.currentView != ViewBroadcasts {
		t.Fatalf("view = %v, want broadcasts", m.currentView)
	}
}

func TestRunRequiresStore(t *testing.T) {
	if err := Run(Options{}); err == nil {
		t.Fatal("expected error without store")
	}
}

func TestModelSelectsFirstRowAfterEmptyStart(t *testing.T) {
	start := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	store := state.NewStore("chan")
	m := New(Options{Client: &fakeClient{}, Store: store, PrefsPath: filepath.Join(t.TempDir(), "prefs.toml")})
	m.now = func() time.Time { return start }

	// The window size arrives before the first poll lands.
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})
	m = update(t, m, fetchSnapshotCmd(store)())
	if _, ok := m.selectedBroadcast(); ok {
		t.Fatal("empty store should have no selection")
	}

	store.Update(boxcast.BroadcastList{testBroadcast("live1", "Sunday Service", start)}, nil, nil)
	m = update(t, m, fetchSnapshotCmd(store)())
	if m.table.Cursor() != 0 {
		t.Fatalf("cursor = %d, want 0", m.table.Cursor())
	}
	b, ok := m.selectedBroadcast()
	if !ok || b.ID != "live1" {
		t.Fatalf("selected = %q (%v), want live1", b.ID, ok)
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd == nil {
		t.Fatal("enter did not start a view fetch")
	}
}

func TestModelSwitchToEmptyTabAndBack(t *testing.T) {
	start := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	store := state.NewStore("chan")
	store.Update(boxcast.BroadcastList{testBroadcast("live1", "Sunday Service", start)}, nil, nil)
	m := New(Options{Client: &fakeClient{}, Store: store, PrefsPath: filepath.Join(t.TempDir(), "prefs.toml")})
	m.now = func() time.Time { return start }
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})
	m = update(t, m, fetchSnapshotCmd(store)())

	m = update(t, m, runeKey("a"))
	if _, ok := m.selectedBroadcast(); ok {
		t.Fatal("archived tab is empty, want no selection")
	}
	m = update(t, m, runeKey("a"))
	if b, ok := m.selectedBroadcast(); !ok || b.ID != "live1" {
		t.Fatalf("selected = %q (%v), want live1", b.ID, ok)
	}
}
