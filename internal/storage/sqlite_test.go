package storage

import (
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	results := []Result{
		{Variant: "breakout", Outcome: OutcomeGameOver, Score: 120, Blocks: 12, Ticks: 900, Duration: 15 * time.Second},
		{Variant: "breakout", Outcome: OutcomeWin, Score: 500, Blocks: 50, Ticks: 6000, Duration: 100 * time.Second},
		{Variant: "paddle", Outcome: OutcomeGameOver, Score: 0, Ticks: 300, Duration: 5 * time.Second},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	got, err := store.Results(10)
	if err != nil {
		t.Fatalf("Results() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(got))
	}

	// Newest first
	if got[0].Variant != "paddle" || got[2].Score != 120 {
		t.Errorf("unexpected order: %+v", got)
	}
	if got[1].Duration != 100*time.Second || got[1].Blocks != 50 || got[1].Outcome != OutcomeWin {
		t.Errorf("fields not preserved: %+v", got[1])
	}
	if got[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should default to now")
	}
}

func TestStoreResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveResult(Result{Variant: "blocks", Outcome: OutcomeQuit, Score: i}); err != nil {
			t.Fatal(err)
		}
	}

	got, err := store.Results(5)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 5 {
		t.Errorf("Expected 5 results, got %d", len(got))
	}
	if got[0].Score != 14 {
		t.Errorf("Expected newest score 14, got %d", got[0].Score)
	}

	got, err = store.Results(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(got))
	}
}

func TestStoreBest(t *testing.T) {
	store := openTestStore(t)

	best, err := store.Best("breakout")
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty store, got %d", best)
	}

	for _, score := range []int{40, 90, 10} {
		if _, err := store.SaveResult(Result{Variant: "breakout", Outcome: OutcomeGameOver, Score: score}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := store.SaveResult(Result{Variant: "blocks", Outcome: OutcomeGameOver, Score: 999}); err != nil {
		t.Fatal(err)
	}

	best, err = store.Best("breakout")
	if err != nil {
		t.Fatal(err)
	}
	if best != 90 {
		t.Errorf("Expected best 90, got %d", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Result{
		{Variant: "breakout", Outcome: OutcomeWin, Score: 500},
		{Variant: "breakout", Outcome: OutcomeGameOver, Score: 70},
		{Variant: "blocks", Outcome: OutcomeGameOver, Score: 30},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected 2 variants, got %d", len(stats))
	}
	if stats[0].Variant != "blocks" || stats[0].Rounds != 1 || stats[0].Wins != 0 {
		t.Errorf("blocks stats = %+v", stats[0])
	}
	if stats[1].Variant != "breakout" || stats[1].Rounds != 2 || stats[1].Wins != 1 || stats[1].BestScore != 500 {
		t.Errorf("breakout stats = %+v", stats[1])
	}
}

func TestStoresAreIsolated(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	if _, err := a.SaveResult(Result{Variant: "paddle", Outcome: OutcomeQuit}); err != nil {
		t.Fatal(err)
	}

	got, err := b.Results(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("second store should be empty, got %d results", len(got))
	}
}
