package engine

import (
	"log/slog"
	"time"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/physics"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/terminal"
)

// BoundsProvider reports the live drawable size
type BoundsProvider interface {
	Size() (width, height int)
}

// Keyboard is a non-blocking key source with one-key pushback
type Keyboard interface {
	PollKey() (terminal.KeyEvent, bool)
	Unget(ev terminal.KeyEvent)
}

// Config wires a Game to its collaborators. Zero-valued optional fields get defaults
type Config struct {
	Bounds   BoundsProvider
	Keyboard Keyboard
	Surface  render.Surface

	Clock  Clock         // Default: real time
	Tick   time.Duration // Default: constants.TickDelay
	Mapper *input.Mapper // Default: DefaultKeyTable bindings
	Logger *slog.Logger  // Default: slog.Default()
}

// Game is the frame scheduler. It is single-threaded: Step and Run must be
// called from one goroutine, which then owns all simulation state.
type Game struct {
	ctx      *GameContext
	bounds   BoundsProvider
	keyboard Keyboard
	renderer *render.RenderOrchestrator
	pause    render.SystemRenderer
	mapper   *input.Mapper
	clock    Clock
	tick     time.Duration
	logger   *slog.Logger

	state   State
	reason  Reason
	frames  int64
	started time.Time
}

// NewGame queries the initial bounds and places the entities
func NewGame(cfg Config) *Game {
	if cfg.Clock == nil {
		cfg.Clock = NewTimeProvider()
	}
	if cfg.Tick <= 0 {
		cfg.Tick = constants.TickDelay
	}
	if cfg.Mapper == nil {
		cfg.Mapper = input.NewMapper(nil)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	width, height := cfg.Bounds.Size()

	g := &Game{
		ctx:      NewGameContext(width, height),
		bounds:   cfg.Bounds,
		keyboard: cfg.Keyboard,
		renderer: render.NewGameOrchestrator(cfg.Surface),
		pause:    &render.PauseRenderer{},
		mapper:   cfg.Mapper,
		clock:    cfg.Clock,
		tick:     cfg.Tick,
		logger:   cfg.Logger,
		state:    StateRunning,
	}
	g.started = g.clock.Now()

	g.logger.Info("game created",
		"width", width,
		"height", height,
		"paddle_len", g.ctx.Paddle.Length,
		"tick", g.tick,
	)
	return g
}

// Context returns the simulation state
func (g *Game) Context() *GameContext {
	return g.ctx
}

// State returns the current scheduler state
func (g *Game) State() State {
	return g.state
}

// Result returns the outcome so far; final once State is StateTerminated
func (g *Game) Result() Result {
	return Result{
		Score:  g.ctx.Paddle.Score,
		Reason: g.reason,
		Frames: g.frames,
	}
}

// Elapsed returns clock time since the game was created, pauses included
func (g *Game) Elapsed() time.Duration {
	return g.clock.Now().Sub(g.started)
}

// Run steps the scheduler until it terminates
func (g *Game) Run() Result {
	for g.state != StateTerminated {
		g.Step()
	}
	return g.Result()
}

// Step performs one scheduler transition and returns the new state.
// In StateAwaitingInput that is either one key dispatch or one full frame.
func (g *Game) Step() State {
	switch g.state {
	case StateRunning:
		g.state = StateAwaitingInput

	case StateAwaitingInput:
		if g.keyPending() {
			ev, _ := g.keyboard.PollKey()
			g.dispatch(g.mapper.Map(ev))
			break
		}
		g.frame()

	case StatePaused:
		if _, ok := g.keyboard.PollKey(); ok {
			g.logger.Info("resumed", "frame", g.frames)
			g.state = StateRunning
			break
		}
		g.clock.Sleep(g.tick)

	case StateTerminated:
	}

	return g.state
}

// keyPending peeks the keyboard without consuming
func (g *Game) keyPending() bool {
	ev, ok := g.keyboard.PollKey()
	if ok {
		g.keyboard.Unget(ev)
	}
	return ok
}

// frame runs one render/simulate cycle
func (g *Game) frame() {
	g.refreshBounds()

	g.renderer.RenderFrame(g.ctx.RenderContext())
	g.clock.Sleep(g.tick)

	res := physics.Step(g.ctx.Ball, g.ctx.Paddle, g.ctx.Bounds)
	g.frames++

	if res.PaddleHit {
		g.logger.Debug("paddle hit", "score", g.ctx.Paddle.Score, "frame", g.frames)
	}
	if res.Outcome == physics.OutcomeMissed {
		g.terminate(ReasonMissed)
	}
}

// dispatch applies one mapped command
func (g *Game) dispatch(cmd input.Command) {
	if cmd.IsMove() {
		g.refreshBounds()
		input.MovePaddle(g.ctx.Paddle, g.ctx.Bounds, cmd)
		return
	}

	switch cmd {
	case input.CommandPause:
		g.renderer.RenderOverlay(g.pause, g.ctx.RenderContext())
		g.state = StatePaused
		g.logger.Info("paused", "frame", g.frames)

	case input.CommandQuit:
		g.terminate(ReasonQuit)

	default:
	}
}

func (g *Game) refreshBounds() {
	width, height := g.bounds.Size()
	if width != g.ctx.Bounds.MaxX || height != g.ctx.Bounds.MaxY {
		g.logger.Debug("bounds changed", "width", width, "height", height)
	}
	if g.ctx.UpdateBounds(width, height) {
		g.logger.Debug("entities clamped", "paddle_y", g.ctx.Paddle.Y, "ball", g.ctx.Ball.Position)
	}
}

func (g *Game) terminate(reason Reason) {
	g.state = StateTerminated
	g.reason = reason
	g.logger.Info("game over",
		"reason", reason.String(),
		"score", g.ctx.Paddle.Score,
		"frames", g.frames,
		"elapsed", g.Elapsed(),
	)
}
