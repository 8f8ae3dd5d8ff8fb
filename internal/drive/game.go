package drive

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/textdrive/internal/config"
	"github.com/vovakirdan/textdrive/internal/core"
	"github.com/vovakirdan/textdrive/internal/course"
)

// Visual characters for rendering
const (
	WallChar    = '█'
	BorderChar  = '│'
	PlayerLeft  = '◢'
	PlayerRight = '◣'
	laneWidth   = 2 // Screen columns per lane
)

// Options controls how a Game is built.
type Options struct {
	ConfigPath string      // Custom YAML path, empty uses the search path
	Policy     string      // Overrides course.policy when set
	Prefill    *bool       // Overrides course.prefill when set
	Logger     *log.Logger // Nil discards session logs
}

// Game adapts the engine to the platform: it owns the current State, pause
// handling, rendering and session logging.
type Game struct {
	cfg     config.DriveConfig
	engine  *Engine
	state   State
	paused  bool
	tick    uint64
	seed    int64
	session string
	logger  *log.Logger
}

// NewGame loads the configuration, applies overrides and validates it by
// building an engine. Configuration problems are reported here, before the
// first tick.
func NewGame(opts Options) (*Game, error) {
	cfg, err := config.LoadDrive(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.Policy != "" {
		cfg.Course.Policy = opts.Policy
	}
	if opts.Prefill != nil {
		cfg.Course.Prefill = *opts.Prefill
	}
	return NewGameFromConfig(cfg, opts.Logger)
}

// NewGameFromConfig builds a game from an already loaded configuration.
func NewGameFromConfig(cfg config.DriveConfig, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("drive: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{cfg: cfg, logger: logger}
	engine, err := g.buildEngine(1)
	if err != nil {
		return nil, err
	}
	g.engine = engine
	g.state = engine.NewState()
	return g, nil
}

// EngineConfig converts the file configuration to engine settings.
func EngineConfig(cfg config.DriveConfig) Config {
	return Config{
		Cols:                cfg.Course.Cols,
		VisibleRows:         cfg.Course.VisibleRows,
		PlayerRow:           cfg.Player.Row,
		StartColumn:         cfg.Player.StartColumn,
		PrefillCourse:       cfg.Course.Prefill,
		ScrollPeriod:        cfg.Timing.ScrollPeriod,
		InputCooldownPeriod: cfg.Timing.InputCooldown,
	}
}

// buildEngine creates a generator with a fresh RNG stream and an engine around it.
func (g *Game) buildEngine(seed int64) (*Engine, error) {
	gen, err := course.Create(g.cfg.Course.Policy, course.Options{
		Cols:     g.cfg.Course.Cols,
		Patterns: g.cfg.Course.Patterns,
		RNG:      rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		return nil, err
	}
	return New(EngineConfig(g.cfg), gen)
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "textdrive"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "TextDrive"
}

// Settings returns the effective configuration.
func (g *Game) Settings() config.DriveConfig {
	return g.cfg
}

// Reset starts a new session seeded from the runtime config.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	engine, err := g.buildEngine(runtime.Seed)
	if err != nil {
		return err
	}

	g.engine = engine
	g.state = engine.NewState()
	g.paused = false
	g.tick = 0
	g.seed = runtime.Seed
	g.session = uuid.NewString()

	g.logger.Info("session started",
		"session", g.session,
		"seed", runtime.Seed,
		"policy", g.cfg.Course.Policy,
		"prefill", g.cfg.Course.Prefill,
	)
	return nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state.IsOver() {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		g.logger.Debug("pause toggled", "session", g.session, "paused", g.paused)
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.state = g.engine.Advance(g.state, in)
	g.tick++

	if g.state.IsOver() {
		g.logger.Info("game over",
			"session", g.session,
			"distance", g.state.Distance(),
			"ticks", g.tick,
			"column", g.state.PlayerColumn(),
		)
	}

	return core.StepResult{State: g.State()}
}

// Current returns the engine state of the running session.
func (g *Game) Current() State {
	return g.state
}

// Engine returns the engine driving the session.
func (g *Game) Engine() *Engine {
	return g.engine
}

// State returns the driver-facing summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Distance: g.state.Distance(),
		GameOver: g.state.IsOver(),
		Paused:   g.paused,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	cols := g.cfg.Course.Cols
	visible := g.cfg.Course.VisibleRows
	courseW := cols*laneWidth + 2 // Lanes plus both borders

	if dst.Width() < courseW || dst.Height() < visible+1 {
		g.drawCenteredMessage(dst, "TERMINAL TOO SMALL",
			fmt.Sprintf("Need %dx%d", courseW, visible+1))
		return
	}

	left := (dst.Width() - courseW) / 2
	top := 1 + (dst.Height()-1-visible)/2

	// Draw borders
	dst.DrawVLine(left, top, visible, BorderChar, core.ColorGray)
	dst.DrawVLine(left+courseW-1, top, visible, BorderChar, core.ColorGray)

	// Draw course; rows that have not scrolled in yet stay empty
	for i := 0; i < g.state.RowCount(); i++ {
		row := g.state.Row(i)
		for col, cell := range row {
			if cell != course.Wall {
				continue
			}
			x := left + 1 + col*laneWidth
			dst.SetWithColor(x, top+i, WallChar, core.ColorWhite)
			dst.SetWithColor(x+1, top+i, WallChar, core.ColorWhite)
		}
	}

	// Draw player
	px := left + 1 + g.state.PlayerColumn()*laneWidth
	py := top + g.state.PlayerRow()
	playerColor := core.ColorBrightYellow
	if g.state.IsOver() {
		playerColor = core.ColorBrightRed
	}
	dst.SetWithColor(px, py, PlayerLeft, playerColor)
	dst.SetWithColor(px+1, py, PlayerRight, playerColor)

	// Draw HUD
	dst.DrawTextColor(2, 0, fmt.Sprintf(" Distance: %d ", g.state.Distance()), core.ColorBrightCyan)
	policy := fmt.Sprintf(" %s ", g.cfg.Course.Policy)
	dst.DrawTextColor(dst.Width()-len(policy)-2, 0, policy, core.ColorGray)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.state.IsOver() {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Distance: %d  |  Press R to restart", g.state.Distance()))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	// A box wider than the screen stays anchored at the left edge.
	boxX := core.Clamp((w-boxW)/2, 0, max(w-boxW, 0))
	boxY := core.Clamp((h-boxH)/2, 0, max(h-boxH, 0))

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}
