// Package cell runs a round directly on a tcell screen. It drives its own
// frame loop with a pacer instead of Bubble Tea's tick messages, and keeps
// the bottom terminal row for a status line with the measured frame rate.
package cell

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/pacer"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

const statusHelp = "←/→ move  p pause  r restart  esc menu  q quit"

var palette = map[core.Color]tcell.Color{
	core.ColorRed:     tcell.PaletteColor(1),
	core.ColorGreen:   tcell.PaletteColor(2),
	core.ColorYellow:  tcell.PaletteColor(3),
	core.ColorBlue:    tcell.PaletteColor(4),
	core.ColorMagenta: tcell.PaletteColor(5),
	core.ColorCyan:    tcell.PaletteColor(6),
	core.ColorWhite:   tcell.PaletteColor(15),
	core.ColorOrange:  tcell.PaletteColor(208),
	core.ColorGray:    tcell.PaletteColor(245),
}

// styleFor returns the tcell style for a cell color.
func styleFor(c core.Color) tcell.Style {
	fg, ok := palette[c]
	if !ok {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(fg)
}

// Options configure a session on the tcell surface.
type Options struct {
	Runtime core.RuntimeConfig
	Store   *storage.Store // Nil only logs finished rounds
	Logger  *log.Logger    // Nil discards
	Hold    time.Duration
	Clock   pacer.Clock // Nil uses the system clock
}

// Surface owns one tcell screen and the game drawn on it.
type Surface struct {
	screen tcell.Screen
	game   registry.Game
	buf    *core.Screen
	logger *log.Logger

	clock    pacer.Clock
	pacer    *pacer.Pacer
	fps      pacer.FPSCounter
	held     *core.KeyHold
	pending  core.InputFrame
	recorder *storage.Recorder

	back bool
	quit bool
}

// New prepares a surface on an initialised screen and resets the game to
// the screen's size.
func New(screen tcell.Screen, game registry.Game, opts Options) *Surface {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := opts.Clock
	if clock == nil {
		clock = pacer.RealClock{}
	}
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	s := &Surface{
		screen:   screen,
		game:     game,
		buf:      core.NewScreen(0, 0),
		logger:   logger,
		clock:    clock,
		pacer:    pacer.New(clock, cfg.TickRate),
		held:     core.NewKeyHold(opts.Hold),
		pending:  core.NewInputFrame(),
		recorder: storage.NewRecorder(opts.Store, logger, game.ID()),
	}
	s.resize(screen.Size())

	cfg.ScreenW, cfg.ScreenH = s.buf.Width(), s.buf.Height()
	game.Reset(cfg)
	return s
}

// resize fits the play area to a terminal of w by h cells, leaving the
// last row for the status line.
func (s *Surface) resize(w, h int) {
	s.buf.Resize(max(w, 0), max(h-1, 0))
}

// mapKey translates a tcell key event to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func mapKey(ev *tcell.EventKey) (action core.Action, isQuit bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return core.ActionQuit, true
	case tcell.KeyEscape:
		return core.ActionBack, false
	case tcell.KeyLeft:
		return core.ActionLeft, false
	case tcell.KeyRight:
		return core.ActionRight, false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'h':
			return core.ActionLeft, false
		case 'd', 'l':
			return core.ActionRight, false
		case 'p', ' ':
			return core.ActionPause, false
		case 'r':
			return core.ActionRestart, false
		case 'b':
			return core.ActionBack, false
		case 'q':
			return core.ActionQuit, true
		}
	}
	return core.ActionNone, false
}

// HandleEvent applies one terminal event.
func (s *Surface) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action, isQuit := mapKey(ev)
		switch {
		case isQuit:
			s.quit = true
			s.recorder.Abandon()
		case action == core.ActionBack:
			s.back = true
			s.recorder.Abandon()
		case action == core.ActionLeft, action == core.ActionRight:
			s.held.Press(action, s.clock.Now())
		case action == core.ActionPause, action == core.ActionRestart:
			s.pending.Set(action)
		}

	case *tcell.EventResize:
		s.screen.Sync()
		s.resize(ev.Size())
	}
}

// Frame advances the game by dt with the current input and draws it.
func (s *Surface) Frame(dt time.Duration) {
	now := s.clock.Now()

	frame := s.pending.Clone()
	s.held.Apply(&frame, now)
	s.pending.Clear()

	wasFinished := s.recorder.Last().Finished()
	res := s.game.Step(dt, frame)
	s.recorder.Observe(res.State)
	if wasFinished && !res.State.Finished() {
		s.held.Release()
	}

	if fps, ok := s.fps.Tick(now); ok {
		s.screen.SetTitle(fmt.Sprintf("FPS: %d", fps))
		s.logger.Debug("frame rate", "fps", fps)
	}
	s.draw()
}

// draw copies the game buffer to the terminal and writes the status line.
func (s *Surface) draw() {
	s.game.Render(s.buf)

	for y := 0; y < s.buf.Height(); y++ {
		for x := 0; x < s.buf.Width(); x++ {
			c := s.buf.GetCell(x, y)
			s.screen.SetContent(x, y, c.Rune, nil, styleFor(c.Color))
		}
	}

	y := s.buf.Height()
	status := []rune(fmt.Sprintf(" FPS: %d  |  %s", s.fps.FPS(), statusHelp))
	style := styleFor(core.ColorGray)
	for x := 0; x < s.buf.Width(); x++ {
		r := ' '
		if x < len(status) {
			r = status[x]
		}
		s.screen.SetContent(x, y, r, nil, style)
	}

	s.screen.Show()
}

// Loop runs frames until the player leaves the round or ctx is done.
// Terminal events are read by a separate goroutine and drained at the
// start of each frame.
func (s *Surface) Loop(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return // Screen finalised
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		dt := s.pacer.Begin()

	drain:
		for {
			select {
			case ev := <-events:
				s.HandleEvent(ev)
			case <-ctx.Done():
				s.recorder.Abandon()
				return ctx.Err()
			default:
				break drain
			}
		}
		if s.quit || s.back {
			return nil
		}

		s.Frame(dt)
		s.pacer.Wait()
	}
}

// WantsBack returns true if the player left the round for the menu.
func (s *Surface) WantsBack() bool {
	return s.back
}

// Quitting returns true if the player asked to exit.
func (s *Surface) Quitting() bool {
	return s.quit
}

// Run opens the terminal, plays one game and restores the terminal.
// Returns true if the player asked to go back to the menu.
func Run(ctx context.Context, game registry.Game, opts Options) (back bool, err error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return false, fmt.Errorf("cell: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return false, fmt.Errorf("cell: cannot init screen: %w", err)
	}
	defer screen.Fini()

	screen.HideCursor()
	screen.Clear()

	s := New(screen, game, opts)
	if err := s.Loop(ctx); err != nil {
		return false, err
	}
	return s.WantsBack(), nil
}
