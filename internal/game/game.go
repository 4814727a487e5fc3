// Package game adapts the simulation to the platform's registry.Game
// interface: it owns a sim.State, turns input frames into paddle directions,
// keeps score and draws the world into a core.Screen.
package game

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/banner"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/sim"
)

// maxFrame bounds the elapsed time fed into one step, so a stalled terminal
// does not throw the ball across the field.
const maxFrame = 100 * time.Millisecond

// Game implements registry.Game for one variant.
type Game struct {
	variant Variant
	cfg     config.Config
	logger  *log.Logger
	font    *banner.Font

	runtime core.RuntimeConfig
	state   *sim.State
	score   int
	paused  bool
	elapsed time.Duration
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger for simulation events. Nil discards them.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithFont sets the banner font used for end-of-round text.
func WithFont(f *banner.Font) Option {
	return func(g *Game) { g.font = f }
}

// New creates a game for the variant. The banner font is loaded from
// cfg.Display.FontPath unless WithFont supplied one; a font that fails to
// load is logged and replaced by plain text.
func New(v Variant, cfg config.Config, opts ...Option) *Game {
	g := &Game{
		variant: v,
		cfg:     cfg,
		logger:  log.New(io.Discard),
		runtime: core.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.font == nil && cfg.Display.FontPath != "" {
		f, err := banner.Load(cfg.Display.FontPath)
		if err != nil {
			g.logger.Warn("banner font unavailable, using plain text", "path", cfg.Display.FontPath, "err", err)
		} else {
			g.font = f
		}
	}

	g.Reset(g.runtime)
	return g
}

// ID returns the unique identifier for this variant.
func (g *Game) ID() string { return g.variant.ID }

// Title returns the display name for this variant.
func (g *Game) Title() string { return g.variant.Title }

// Description returns a one-line summary of the variant.
func (g *Game) Description() string { return g.variant.Description }

// Reset starts a new round.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	params, err := g.variant.Params(g.cfg)
	if err != nil {
		g.logger.Error("invalid config, using defaults", "variant", g.variant.ID, "err", err)
		params, _ = g.variant.Params(config.Default())
	}

	g.state = sim.New(params)
	g.score = 0
	g.paused = false
	g.elapsed = 0

	g.logger.Debug("round started", "variant", g.variant.ID, "blocks", len(g.state.Blocks),
		"bottom", params.Bottom, "bounce", params.Bounce)
}

// Step advances the round by dt. Pause toggles on ActionPause; after the
// round ends ActionRestart starts a new one.
func (g *Game) Step(dt time.Duration, in core.InputFrame) core.StepResult {
	if g.state.Done() {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt = min(max(dt, 0), maxFrame)
	ev := g.state.Step(dt.Seconds(), in.Direction())
	g.elapsed += dt

	if ev.Block >= 0 {
		g.score += g.cfg.Rules.BlockPoints
		blk := g.state.Blocks[ev.Block]
		g.logger.Debug("block destroyed", "row", blk.Row, "col", blk.Col,
			"remaining", g.state.Remaining(), "score", g.score)
	}
	switch {
	case ev.GameOver:
		g.logger.Debug("ball lost", "variant", g.variant.ID, "score", g.score, "ticks", g.state.Ticks)
	case ev.YouWin:
		g.logger.Debug("grid cleared", "variant", g.variant.ID, "score", g.score, "ticks", g.state.Ticks)
	}

	return core.StepResult{State: g.State(), Simulated: true}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Cleared:  len(g.state.Blocks) - g.state.Remaining(),
		Ticks:    g.state.Ticks,
		Elapsed:  g.elapsed,
		GameOver: g.state.GameOver,
		Won:      g.state.YouWin,
		Paused:   g.paused,
	}
}

// Sim exposes the simulation state for hosts and tests.
func (g *Game) Sim() *sim.State { return g.state }

// Snapshot captures the round for determinism checks.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{Sim: g.state.Snapshot(), Score: g.score, Paused: g.paused}
}

// Snapshot is the simulation snapshot plus adapter state.
type Snapshot struct {
	Sim    sim.Snapshot
	Score  int
	Paused bool
}

// Hash returns a hash of the snapshot for determinism testing.
func (s *Snapshot) Hash() uint64 {
	h := s.Sim.Hash()
	h = h*31 + uint64(s.Score) //#nosec G115 -- hash computation
	if s.Paused {
		h = h*31 + 1
	}
	return h
}

// Register the variants with the registry
func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func(cfg config.Config, logger *log.Logger) registry.Game {
			return New(v, cfg, WithLogger(logger))
		})
	}
}
