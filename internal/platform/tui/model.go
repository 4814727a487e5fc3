package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/pacer"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// Options configure a game session.
type Options struct {
	Runtime core.RuntimeConfig
	Store   *storage.Store // Nil only logs finished rounds
	Logger  *log.Logger    // Nil discards
	// Hold is how long one key press keeps a direction active. Terminals
	// report presses and autorepeat but never releases.
	Hold time.Duration
}

// Model is the Bubble Tea model for running a round.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	logger    *log.Logger
	config    core.RuntimeConfig
	keyMapper *KeyMapper

	held    *core.KeyHold
	pending core.InputFrame // One-shot actions for the next tick

	recorder  *storage.Recorder
	gameState core.GameState
	lastTick  time.Time
	fps       *pacer.FPSCounter
	back      bool
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		logger:    logger,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		held:      core.NewKeyHold(opts.Hold),
		pending:   core.NewInputFrame(),
		recorder:  storage.NewRecorder(opts.Store, logger, game.ID()),
		fps:       &pacer.FPSCounter{},
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tea.Batch(tickCmd(m.config.TickRate), tea.SetWindowTitle(fpsTitle(0)))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.recorder.Abandon()
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft, core.ActionRight:
		m.held.Press(action, time.Now())
	case core.ActionBack:
		m.back = true
		m.recorder.Abandon()
		return m, tea.Quit
	case core.ActionPause, core.ActionRestart:
		m.pending.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The world keeps its logical
// size, so the round continues at the new scale.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation step with the time elapsed since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt time.Duration
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	frame := m.pending.Clone()
	m.held.Apply(&frame, now)
	m.pending.Clear()

	wasFinished := m.gameState.Finished()
	result := m.game.Step(dt, frame)
	m.gameState = result.State
	m.recorder.Observe(m.gameState)

	if wasFinished && !m.gameState.Finished() {
		// Restarted
		m.held.Release()
	}

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if fps, ok := m.fps.Tick(now); ok {
		cmds = append(cmds, tea.SetWindowTitle(fpsTitle(fps)))
	}
	return m, tea.Batch(cmds...)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderScreen(m.screen)
}

// WantsBack returns true if the player left the round for the menu.
func (m Model) WantsBack() bool {
	return m.back
}

// Run starts the Bubble Tea program for one game.
// Returns true if the player asked to go back to the menu.
func Run(game registry.Game, opts Options) (back bool, err error) {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.WantsBack(), nil
}
