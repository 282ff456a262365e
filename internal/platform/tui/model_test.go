package tui

import (
	"io"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vlegaspi/heartchase/internal/core"
	"github.com/vlegaspi/heartchase/internal/game"
	"github.com/vlegaspi/heartchase/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	m := NewModel(game.New(), store, nil, log.New(io.Discard), core.RuntimeConfig{
		Seed:     1,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 50,
	})
	m.Init()
	return m
}

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

// startRun confirms the menu entry and ticks once so the run begins.
func startRun(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = step(t, m, tea.KeyMsg(tea.Key{Type: tea.KeyEnter}))
	m, _ = step(t, m, TickMsg{})
	if m.state.Phase != game.PhasePlaying {
		t.Fatalf("phase = %s after confirm+tick, want playing", m.state.Phase)
	}
	return m
}

func TestClockAdvancesWithTicks(t *testing.T) {
	m := newTestModel(t, nil)

	if m.clock.Now() != 0 {
		t.Fatalf("clock = %d before first tick, want 0", m.clock.Now())
	}
	for i := 0; i < 5; i++ {
		m, _ = step(t, m, TickMsg{})
	}

	// 50 ticks/s means 20ms per tick; no timer goroutine is involved.
	if m.clock.Now() != 100 {
		t.Errorf("clock = %d after 5 ticks, want 100", m.clock.Now())
	}
}

func TestAbandonRecordsRunWithoutQuitKey(t *testing.T) {
	store := newTestStore(t)
	m := startRun(t, newTestModel(t, store))

	// The session ending out from under the program still records the run.
	m.run.abandon()
	m.run.abandon() // A second finalize must not add another row.

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() error: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	if runs[0].Outcome != storage.OutcomeQuit {
		t.Errorf("outcome = %q, want %q", runs[0].Outcome, storage.OutcomeQuit)
	}
	if runs[0].LevelReached != 1 {
		t.Errorf("level = %d, want 1", runs[0].LevelReached)
	}
}

func TestQuitKeyRecordsRun(t *testing.T) {
	store := newTestStore(t)
	m := startRun(t, newTestModel(t, store))

	m, cmd := step(t, m, tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune("q")}))
	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
	if !m.quitting {
		t.Error("model not quitting after quit key")
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() error: %v", err)
	}
	if len(runs) != 1 || runs[0].Outcome != storage.OutcomeQuit {
		t.Fatalf("runs = %+v, want one quit row", runs)
	}
}

func TestQuitFromMenuRecordsNothing(t *testing.T) {
	store := newTestStore(t)
	m := newTestModel(t, store)
	m, _ = step(t, m, TickMsg{})

	m, _ = step(t, m, tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune("q")}))

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() error: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("got %d runs after quitting from the menu, want 0", len(runs))
	}
}

func TestAbandonAfterCompleteKeepsOutcome(t *testing.T) {
	store := newTestStore(t)
	r := &sessionRun{store: store, logger: log.New(io.Discard)}

	r.begin(100)
	r.complete(storage.OutcomeDefeat, 700, game.State{
		Phase: game.PhaseEnded, Level: 1, HeartsCollected: 1,
	})
	r.abandon()

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() error: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	if runs[0].Outcome != storage.OutcomeDefeat {
		t.Errorf("outcome = %q, want %q", runs[0].Outcome, storage.OutcomeDefeat)
	}
	if runs[0].DurationMs != 600 {
		t.Errorf("duration = %d, want 600", runs[0].DurationMs)
	}
}
