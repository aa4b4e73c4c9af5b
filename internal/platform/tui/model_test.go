package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/ballrun"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var tickStep = time.Second / 60

func newTestModel(t *testing.T) (Model, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	game := ballrun.New(config.DefaultRunnerConfig())
	m := NewModel(game, store, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
	m.Init()
	return m, store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelStartsRunOnSpace(t *testing.T) {
	m, _ := newTestModel(t)
	t0 := time.Unix(1000, 0)
	m.now = func() time.Time { return t0 }

	m = update(t, m, TickMsg(t0))
	if m.GameState().Phase != core.PhaseIdle {
		t.Fatalf("expected idle before input, got %v", m.GameState().Phase)
	}
	if !strings.Contains(m.View(), "BALL RUNNER") {
		t.Error("idle view should show the title")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = update(t, m, TickMsg(t0.Add(tickStep)))

	if m.GameState().Phase != core.PhaseRunning {
		t.Fatalf("space should start a run, phase %v", m.GameState().Phase)
	}
	if len(m.runEvents) == 0 || m.runEvents[0].Kind != core.EventStarted {
		t.Errorf("run events = %v", m.runEvents)
	}
}

func TestModelJournalsFinishedRunOnce(t *testing.T) {
	m, store := newTestModel(t)
	now := time.Unix(1000, 0)
	m.now = func() time.Time { return now }

	m = update(t, m, TickMsg(now))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	for i := 0; i < 2000 && !m.GameState().GameOver; i++ {
		now = now.Add(tickStep)
		m = update(t, m, TickMsg(now))
	}
	if !m.GameState().GameOver {
		t.Fatal("run without jumps should end")
	}
	for i := 0; i < 30; i++ {
		now = now.Add(tickStep)
		m = update(t, m, TickMsg(now))
	}

	runs, err := store.RecentRuns(ballrun.GameID, 10)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected exactly one journaled run, got %d", len(runs))
	}
	if runs[0].Score != m.GameState().Score || runs[0].Run != 1 {
		t.Errorf("journaled run = %+v, state %+v", runs[0], m.GameState())
	}

	events, err := store.RunEvents(runs[0].ID)
	if err != nil {
		t.Fatalf("RunEvents: %v", err)
	}
	if events[0].Kind != core.EventStarted || events[len(events)-1].Kind != core.EventDied {
		t.Errorf("journaled events = %v", events)
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("ended view should show game over")
	}
}

func TestModelJournalOverlay(t *testing.T) {
	m, store := newTestModel(t)
	store.SaveRun(ballrun.GameID, core.RunSummary{Run: 1, Score: 42}, nil)

	tab := tea.KeyMsg{Type: tea.KeyTab}
	m = update(t, m, tab)
	if m.journal == nil {
		t.Fatal("tab should open the journal while idle")
	}
	if !strings.Contains(m.View(), "RUN JOURNAL") {
		t.Error("journal view missing title")
	}

	// Ticks keep the wall clock current without advancing the game.
	m = update(t, m, TickMsg(time.Unix(2000, 0)))
	if !m.lastTick.Equal(time.Unix(2000, 0)) {
		t.Error("ticks should update the last tick time while the journal is open")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.journal != nil {
		t.Fatal("esc should close the journal")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = update(t, m, TickMsg(time.Unix(2000, 0).Add(tickStep)))
	m = update(t, m, tab)
	if m.journal != nil {
		t.Error("journal should not open over a running game")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(runeKey('q'))
	m = next.(Model)
	if cmd == nil || m.View() != "" {
		t.Error("q should quit and blank the view")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m, _ := newTestModel(t)
	now := time.Unix(1000, 0)
	m.now = func() time.Time { return now }

	m = update(t, m, TickMsg(now))
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	now = now.Add(tickStep)
	m = update(t, m, TickMsg(now))

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
	if m.GameState().Phase != core.PhaseRunning {
		t.Error("resize should not reset the run")
	}
}
