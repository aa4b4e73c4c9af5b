package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func summary(run, score int) core.RunSummary {
	return core.RunSummary{
		Run:       run,
		Seed:      int64(run) + 41,
		Ticks:     uint64(score * 3),
		Distance:  float64(score) * 10.5,
		Score:     score,
		Collected: run,
		Jumps:     run * 2,
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "journal.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "journal.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun("ballrun", summary(1, 120), nil); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("ballrun")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 120 {
		t.Errorf("Expected high score 120 after reopen, got %d", high)
	}
}

func TestSaveRunWithEvents(t *testing.T) {
	store := openTestStore(t)

	events := []core.Event{
		{Kind: core.EventStarted, Tick: 0},
		{Kind: core.EventJumped, Tick: 80},
		{Kind: core.EventCollected, Tick: 95, ID: 7},
		{Kind: core.EventDied, Tick: 240},
	}
	sum := summary(3, 57)

	id, err := store.SaveRun("ballrun", sum, events)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	rec, err := store.Run(id)
	if err != nil || rec == nil {
		t.Fatalf("Run() = %v, %v", rec, err)
	}
	if rec.GameID != "ballrun" || rec.Run != 3 || rec.Seed != sum.Seed || rec.Score != 57 {
		t.Errorf("unexpected record: %+v", rec)
	}
	if rec.Ticks != sum.Ticks || rec.Distance != sum.Distance || rec.Jumps != sum.Jumps {
		t.Errorf("stats not round-tripped: %+v", rec)
	}
	if rec.EventCount != len(events) {
		t.Errorf("Expected %d events, got %d", len(events), rec.EventCount)
	}

	got, err := store.RunEvents(id)
	if err != nil {
		t.Fatalf("RunEvents() failed: %v", err)
	}
	if !reflect.DeepEqual(got, events) {
		t.Errorf("events = %+v, expected %+v", got, events)
	}
}

func TestRunMissing(t *testing.T) {
	store := openTestStore(t)

	rec, err := store.Run(42)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if rec != nil {
		t.Errorf("Expected nil for missing run, got %+v", rec)
	}
}

func TestRecentAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	scores := []int{100, 50, 200, 75}
	for i, s := range scores {
		if _, err := store.SaveRun("ballrun", summary(i+1, s), nil); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	store.SaveRun("other", summary(1, 999), nil)

	tests := []struct {
		name  string
		query func() ([]RunRecord, error)
		want  []int
	}{
		{"recent", func() ([]RunRecord, error) { return store.RecentRuns("ballrun", 10) }, []int{75, 200, 50, 100}},
		{"recent limited", func() ([]RunRecord, error) { return store.RecentRuns("ballrun", 2) }, []int{75, 200}},
		{"top", func() ([]RunRecord, error) { return store.TopRuns("ballrun", 10) }, []int{200, 100, 75, 50}},
		{"top limited", func() ([]RunRecord, error) { return store.TopRuns("ballrun", 3) }, []int{200, 100, 75}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs, err := tt.query()
			if err != nil {
				t.Fatalf("query failed: %v", err)
			}
			got := make([]int, len(runs))
			for i, r := range runs {
				got[i] = r.Score
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("scores = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("ballrun")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty journal, got %d", high)
	}

	store.SaveRun("ballrun", summary(1, 100), nil)
	store.SaveRun("ballrun", summary(2, 300), nil)
	store.SaveRun("ballrun", summary(3, 200), nil)

	high, err = store.HighScore("ballrun")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	id, _ := store.SaveRun("ballrun", summary(1, 100), []core.Event{{Kind: core.EventDied, Tick: 9}})
	store.SaveRun("other", summary(1, 300), nil)

	if err := store.ClearRuns("ballrun"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.RecentRuns("ballrun", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	events, _ := store.RunEvents(id)
	if len(events) != 0 {
		t.Errorf("Expected events to be cleared, got %d", len(events))
	}
	others, _ := store.RecentRuns("other", 10)
	if len(others) != 1 {
		t.Error("Other games should not be affected by clearing")
	}
}

func TestGetGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("ballrun")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.RunsCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty journal: %+v", empty)
	}

	store.SaveRun("ballrun", summary(1, 100), nil)
	store.SaveRun("ballrun", summary(2, 300), nil)

	stats, err := store.GetGameStats("ballrun")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.TotalCollect != 3 {
		t.Errorf("Expected 3 collected, got %d", stats.TotalCollect)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}
