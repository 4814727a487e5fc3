package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/game"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

const frame = time.Second / 60

func newTestModel(t *testing.T, variant string) (Model, *game.Game, *storage.Store) {
	t.Helper()
	v, ok := game.Lookup(variant)
	if !ok {
		t.Fatalf("variant %q not found", variant)
	}
	g := game.New(v, config.Default())

	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	m := NewModel(g, Options{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60},
		Store:   store,
		Hold:    150 * time.Millisecond,
	})
	m.Init()
	return m, g, store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

func TestModelMovesPaddleWhileHeld(t *testing.T) {
	m, g, _ := newTestModel(t, "breakout")
	start := g.Sim().Paddle.X

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	now := time.Now()
	m = update(t, m, TickMsg(now))
	m = update(t, m, TickMsg(now.Add(frame)))
	m = update(t, m, TickMsg(now.Add(2*frame)))

	if g.Sim().Paddle.X <= start {
		t.Errorf("paddle did not move right: %v -> %v", start, g.Sim().Paddle.X)
	}

	// Long after the hold window the paddle stops
	later := now.Add(time.Second)
	m = update(t, m, TickMsg(later))
	x := g.Sim().Paddle.X
	update(t, m, TickMsg(later.Add(frame)))
	if g.Sim().Paddle.X != x {
		t.Error("paddle should stop once the hold window expires")
	}
}

func TestModelRecordsFinishedRound(t *testing.T) {
	m, g, store := newTestModel(t, "blocks")

	s := g.Sim()
	s.Ball.X = 10
	s.Ball.Y = s.Params.WorldH - s.Ball.H + 1
	s.Ball.VY = 100

	now := time.Now()
	m = update(t, m, TickMsg(now))
	m = update(t, m, TickMsg(now.Add(frame)))

	results, err := store.Results(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Variant != "blocks" || results[0].Outcome != storage.OutcomeGameOver {
		t.Errorf("unexpected result %+v", results[0])
	}

	// Restart, then quit mid-round
	m = update(t, m, runeKey("r"))
	m = update(t, m, TickMsg(now.Add(2*frame)))
	m = update(t, m, TickMsg(now.Add(3*frame)))
	m = update(t, m, runeKey("q"))

	results, err = store.Results(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 || results[0].Outcome != storage.OutcomeQuit {
		t.Errorf("expected a quit result on top, got %+v", results)
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelBackToMenu(t *testing.T) {
	m, _, _ := newTestModel(t, "paddle")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.WantsBack() {
		t.Error("Esc should request the menu")
	}
}

func TestModelFPSCounter(t *testing.T) {
	m, _, _ := newTestModel(t, "paddle")

	now := time.Now()
	for i := 0; i < 62; i++ {
		m = update(t, m, TickMsg(now.Add(time.Duration(i)*frame)))
	}
	if m.fps.FPS() != 60 {
		t.Errorf("FPS = %d, expected 60", m.fps.FPS())
	}
	if fpsTitle(60) != "FPS: 60" {
		t.Errorf("title = %q", fpsTitle(60))
	}
}

func TestModelView(t *testing.T) {
	m, _, _ := newTestModel(t, "breakout")
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	view := m.View()
	if !strings.Contains(view, "Score: 0") {
		t.Error("view should contain the HUD")
	}
	if lines := strings.Count(view, "\n") + 1; lines != 30 {
		t.Errorf("view has %d lines, expected 30 after resize", lines)
	}
}
