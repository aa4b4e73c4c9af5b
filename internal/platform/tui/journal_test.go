package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

func seededStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for i, score := range []int{30, 90, 60} {
		events := []core.Event{
			{Kind: core.EventStarted},
			{Kind: core.EventCollected, Tick: 40, ID: 9},
			{Kind: core.EventDied, Tick: uint64(score * 2)},
		}
		if _, err := store.SaveRun("ballrun", core.RunSummary{Run: i + 1, Score: score}, events); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}
	return store
}

func journalUpdate(m JournalModel, msg tea.Msg) JournalModel {
	next, _ := m.Update(msg)
	return next.(JournalModel)
}

func TestJournalViews(t *testing.T) {
	m := NewJournalModel(seededStore(t), "ballrun", 100, 30)

	if m.CurrentView() != JournalRecent {
		t.Fatalf("expected recent view first")
	}
	if got := m.Runs(); len(got) != 3 || got[0].Score != 60 {
		t.Fatalf("recent runs = %+v", got)
	}

	m = journalUpdate(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.CurrentView() != JournalBest {
		t.Fatalf("tab should switch to best")
	}
	if got := m.Runs(); got[0].Score != 90 || got[2].Score != 30 {
		t.Errorf("best runs not ordered by score: %+v", got)
	}
	if !strings.Contains(m.View(), "Best") {
		t.Error("view should show the active tab")
	}
}

func TestJournalOpenRunEvents(t *testing.T) {
	m := NewJournalModel(seededStore(t), "ballrun", 100, 30)

	m = journalUpdate(m, tea.KeyMsg{Type: tea.KeyEnter})
	events := m.Events()
	if len(events) != 3 || events[1].Kind != core.EventCollected {
		t.Fatalf("events = %+v", events)
	}
	if !strings.Contains(m.View(), "events") {
		t.Error("event view should name the opened run")
	}

	m = journalUpdate(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Events() != nil || m.IsGoingBack() {
		t.Fatal("first esc should return to the run list")
	}
	m = journalUpdate(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsGoingBack() {
		t.Error("second esc should leave the journal")
	}
}

func TestJournalWithoutStore(t *testing.T) {
	m := NewJournalModel(nil, "ballrun", 80, 24)
	if !strings.Contains(m.View(), "Journal disabled") {
		t.Errorf("view = %q", m.View())
	}
	m = journalUpdate(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Events() != nil {
		t.Error("nothing to open without a store")
	}
}
