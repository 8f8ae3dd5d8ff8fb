package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/textdrive/internal/core"
)

// Game is the contract the driver needs from a game.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig) error
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Options tunes the driver.
type Options struct {
	HoldTicks int         // Ticks a key press stays held
	Logger    *log.Logger // Nil discards driver logs
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	hold      *HoldTracker
	pending   core.InputFrame // One-shot actions for the next tick
	restart   bool
	tick      uint64
	gameState core.GameState
	logger    *log.Logger
	err       error
	quitting  bool
}

// NewModel creates a new Bubble Tea model for a game that has already been reset.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      h,
		hold:      NewHoldTracker(opts.HoldTicks),
		pending:   core.NewInputFrame(),
		gameState: game.State(),
		logger:    logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.hold.Press(action, m.tick)
	case core.ActionPause:
		m.pending.Set(core.ActionPause)
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.restart = true
		}
	}

	return m, nil
}

// handleResize processes window resize events. The game adapts its layout
// on the next render, so the session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.restart {
		m.restart = false
		m.config.Seed = time.Now().UnixNano()
		if err := m.game.Reset(m.config); err != nil {
			m.logger.Error("restart failed", "error", err)
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		m.hold.Reset()
		m.pending = core.NewInputFrame()
		m.tick = 0
		m.gameState = m.game.State()
		return m, tickCmd(m.config.TickRate)
	}

	frame := m.hold.Frame(m.tick)
	for a, on := range m.pending.Actions {
		if on {
			frame.Set(a)
		}
	}
	m.pending = core.NewInputFrame()

	result := m.game.Step(frame)
	m.gameState = result.State
	m.tick++

	return m, tickCmd(m.config.TickRate)
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run resets the game and runs it until the player quits.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := game.Reset(cfg); err != nil {
		return fmt.Errorf("tui: reset %s: %w", game.ID(), err)
	}

	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
