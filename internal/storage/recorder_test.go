package storage

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestRecorderOncePerRound(t *testing.T) {
	store := openTestStore(t)
	rec := NewRecorder(store, nil, "breakout")

	rec.Observe(core.GameState{Ticks: 10})
	rec.Observe(core.GameState{Ticks: 11, Score: 30, Cleared: 3, GameOver: true})
	rec.Observe(core.GameState{Ticks: 11, Score: 30, Cleared: 3, GameOver: true})

	got, err := store.Results(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
	if got[0].Outcome != OutcomeGameOver || got[0].Score != 30 || got[0].Blocks != 3 {
		t.Errorf("unexpected result %+v", got[0])
	}

	// Restart then win
	rec.Observe(core.GameState{})
	rec.Observe(core.GameState{Ticks: 500, Score: 500, Cleared: 50, Won: true})

	got, _ = store.Results(10)
	if len(got) != 2 || got[0].Outcome != OutcomeWin {
		t.Errorf("expected a win on top, got %+v", got)
	}

	// A finished round is never recorded as quit
	rec.Abandon()
	if got, _ = store.Results(10); len(got) != 2 {
		t.Errorf("Abandon after an outcome should not record, got %d results", len(got))
	}
}

func TestRecorderAbandon(t *testing.T) {
	tests := []struct {
		name  string
		state core.GameState
		want  int
	}{
		{"not started", core.GameState{}, 0},
		{"mid round", core.GameState{Ticks: 42, Score: 10}, 1},
		{"paused mid round", core.GameState{Ticks: 42, Paused: true}, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := openTestStore(t)
			rec := NewRecorder(store, nil, "paddle")
			rec.Observe(tc.state)
			rec.Abandon()
			rec.Abandon()

			got, err := store.Results(10)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != tc.want {
				t.Fatalf("expected %d results, got %d", tc.want, len(got))
			}
			if tc.want > 0 && got[0].Outcome != OutcomeQuit {
				t.Errorf("outcome = %q, expected %q", got[0].Outcome, OutcomeQuit)
			}
		})
	}
}

func TestRecorderWithoutStore(t *testing.T) {
	var buf bytes.Buffer
	rec := NewRecorder(nil, log.New(&buf), "blocks")

	rec.Observe(core.GameState{Ticks: 3, GameOver: true})

	if !strings.Contains(buf.String(), "round finished") {
		t.Errorf("expected the round to be logged, got %q", buf.String())
	}
	if !rec.Last().GameOver {
		t.Error("Last should return the observed state")
	}
}
