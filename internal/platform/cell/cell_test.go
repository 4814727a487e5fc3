package cell

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/game"
	"github.com/vovakirdan/tui-breakout/internal/pacer"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

const frame = time.Second / 60

type fixture struct {
	screen tcell.SimulationScreen
	game   *game.Game
	store  *storage.Store
	clock  *pacer.MockClock
	s      *Surface
}

func newFixture(t *testing.T, variant string) *fixture {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 25)

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

	clock := pacer.NewMockClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	s := New(screen, g, Options{
		Runtime: core.RuntimeConfig{TickRate: 60},
		Store:   store,
		Hold:    150 * time.Millisecond,
		Clock:   clock,
	})
	return &fixture{screen: screen, game: g, store: store, clock: clock, s: s}
}

// step advances the clock by one frame and runs it.
func (f *fixture) step() {
	f.clock.Advance(frame)
	f.s.Frame(frame)
}

func (f *fixture) row(y int) string {
	var sb strings.Builder
	w, _ := f.screen.Size()
	for x := 0; x < w; x++ {
		r, _, _, _ := f.screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name   string
		ev     *tcell.EventKey
		action core.Action
		quit   bool
	}{
		{"left arrow", key(tcell.KeyLeft), core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right arrow", key(tcell.KeyRight), core.ActionRight, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"space", runeKey(' '), core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"esc", key(tcell.KeyEscape), core.ActionBack, false},
		{"b", runeKey('b'), core.ActionBack, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", key(tcell.KeyCtrlC), core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := mapKey(tc.ev)
			if action != tc.action || quit != tc.quit {
				t.Errorf("mapKey(%s) = %v, %v; expected %v, %v", tc.ev.Name(), action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestStyleFor(t *testing.T) {
	tests := []struct {
		color core.Color
		want  tcell.Color
	}{
		{core.ColorDefault, tcell.ColorDefault},
		{core.ColorRed, tcell.PaletteColor(1)},
		{core.ColorWhite, tcell.PaletteColor(15)},
		{core.ColorOrange, tcell.PaletteColor(208)},
	}

	for _, tc := range tests {
		fg, _, _ := styleFor(tc.color).Decompose()
		if fg != tc.want {
			t.Errorf("styleFor(%d) foreground = %v, expected %v", tc.color, fg, tc.want)
		}
	}
}

func TestSurfaceDraws(t *testing.T) {
	f := newFixture(t, "breakout")
	f.step()

	if !strings.Contains(f.row(0), "Score: 0") {
		t.Errorf("HUD row = %q", f.row(0))
	}
	if status := f.row(24); !strings.Contains(status, "FPS:") || !strings.Contains(status, "q quit") {
		t.Errorf("status row = %q", status)
	}

	found := false
	for y := 0; y < 24; y++ {
		for x := 0; x < 80; x++ {
			r, _, style, _ := f.screen.GetContent(x, y)
			fg, _, _ := style.Decompose()
			if r == game.BallChar && fg == tcell.PaletteColor(1) {
				found = true
			}
		}
	}
	if !found {
		t.Error("ball should be drawn in red")
	}
}

func TestSurfaceHeldDirection(t *testing.T) {
	f := newFixture(t, "breakout")
	start := f.game.Sim().Paddle.X

	f.s.HandleEvent(key(tcell.KeyRight))
	f.step()
	f.step()
	if f.game.Sim().Paddle.X <= start {
		t.Errorf("paddle did not move right: %v -> %v", start, f.game.Sim().Paddle.X)
	}

	// Past the hold window the paddle stops
	f.clock.Advance(time.Second)
	f.step()
	x := f.game.Sim().Paddle.X
	f.step()
	if f.game.Sim().Paddle.X != x {
		t.Error("paddle should stop once the hold window expires")
	}
}

func TestSurfacePause(t *testing.T) {
	f := newFixture(t, "breakout")
	f.step()

	f.s.HandleEvent(runeKey('p'))
	f.step()
	ticks := f.game.State().Ticks
	f.step()
	if !f.game.State().Paused || f.game.State().Ticks != ticks {
		t.Error("pause should stop the simulation")
	}
}

func TestSurfaceRecordsRounds(t *testing.T) {
	f := newFixture(t, "blocks")

	s := f.game.Sim()
	s.Ball.X = 10
	s.Ball.Y = s.Params.WorldH - s.Ball.H + 1
	s.Ball.VY = 100
	f.step()
	f.step()

	results, err := f.store.Results(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Outcome != storage.OutcomeGameOver {
		t.Fatalf("expected one game over result, got %+v", results)
	}

	f.s.HandleEvent(runeKey('r'))
	f.step()
	f.step()
	f.s.HandleEvent(runeKey('q'))

	if !f.s.Quitting() {
		t.Error("q should quit")
	}
	results, _ = f.store.Results(10)
	if len(results) != 2 || results[0].Outcome != storage.OutcomeQuit {
		t.Errorf("expected a quit result on top, got %+v", results)
	}
}

func TestSurfaceResize(t *testing.T) {
	f := newFixture(t, "paddle")

	f.screen.SetSize(100, 30)
	f.s.HandleEvent(tcell.NewEventResize(100, 30))
	f.step()

	if f.s.buf.Width() != 100 || f.s.buf.Height() != 29 {
		t.Errorf("play area = %dx%d, expected 100x29", f.s.buf.Width(), f.s.buf.Height())
	}
	if !strings.Contains(f.row(29), "FPS:") {
		t.Errorf("status should move to the new last row, got %q", f.row(29))
	}
}

func TestSurfaceBack(t *testing.T) {
	f := newFixture(t, "paddle")
	f.s.HandleEvent(key(tcell.KeyEscape))
	if !f.s.WantsBack() || f.s.Quitting() {
		t.Error("Esc should request the menu without quitting")
	}
}

func TestLoopStopsOnQuit(t *testing.T) {
	f := newFixture(t, "paddle")
	f.s.clock = pacer.RealClock{}
	f.s.pacer = pacer.New(pacer.RealClock{}, 60)

	f.screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := f.s.Loop(ctx); err != nil {
		t.Fatalf("Loop: %v", err)
	}
	if !f.s.Quitting() {
		t.Error("Loop should stop because of the quit key")
	}
}

func TestLoopStopsOnCancel(t *testing.T) {
	f := newFixture(t, "paddle")
	f.s.clock = pacer.RealClock{}
	f.s.pacer = pacer.New(pacer.RealClock{}, 60)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := f.s.Loop(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Loop error = %v, expected deadline exceeded", err)
	}
}
