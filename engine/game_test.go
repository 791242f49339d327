package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/terminal"
)

func TestNewGameContextPlacement(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		expectLen     int
		expectTop     int
	}{
		{"Standard terminal", 80, 24, 6, 11},
		{"Tall terminal", 80, 40, 10, 11},
		{"Short terminal pulls paddle up", 80, 12, 3, 9},
		{"Tiny terminal", 10, 3, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewGameContext(tt.width, tt.height)

			assert.Equal(t, tt.expectLen, ctx.Paddle.Length)
			assert.Equal(t, tt.expectTop, ctx.Paddle.Y)
			assert.Equal(t, constants.PaddleColumn, ctx.Paddle.X)
			assert.LessOrEqual(t, ctx.Paddle.Y+ctx.Paddle.Length, tt.height)
			assert.Equal(t, components.PositionComponent{X: tt.width / 2, Y: tt.height / 2}, ctx.Ball.Position)
			assert.Equal(t, components.VelocityComponent{X: 1, Y: 1}, ctx.Ball.Velocity)
		})
	}
}

func TestGameStartsRunning(t *testing.T) {
	g, term, clock := newTestGame(t, 80, 24)

	assert.Equal(t, StateRunning, g.State())
	assert.Equal(t, StateAwaitingInput, g.Step())
	assert.Zero(t, term.clears, "entering the loop must not render")
	assert.Zero(t, clock.Sleeps())
}

func TestGameFrameWithoutKeys(t *testing.T) {
	g, term, clock := newTestGame(t, 80, 24)
	g.Step()

	before := g.Context().Ball.Position
	state := g.Step()

	assert.Equal(t, StateAwaitingInput, state)
	assert.Equal(t, 1, term.clears)
	assert.Equal(t, 1, term.shows)
	assert.Equal(t, 1, clock.Sleeps())
	assert.Equal(t, int64(1), g.Result().Frames)
	assert.Equal(t, 'O', term.cells[[2]int{before.X, before.Y}], "ball drawn before it moves")
	assert.Equal(t, components.PositionComponent{X: before.X + 1, Y: before.Y + 1}, g.Context().Ball.Position)
	assert.Zero(t, term.ungets, "no key to push back")
}

func TestGameQuitKey(t *testing.T) {
	g, term, clock := newTestGame(t, 80, 24)
	term.press('q')

	res := g.Run()

	assert.Equal(t, StateTerminated, g.State())
	assert.Equal(t, ReasonQuit, res.Reason)
	assert.Zero(t, res.Frames)
	assert.Zero(t, res.Score)
	assert.Zero(t, clock.Sleeps())
	assert.Equal(t, 1, term.ungets, "key is peeked before it is consumed")
	assert.Zero(t, term.buffered())
}

func TestGameTerminatedIsAbsorbing(t *testing.T) {
	g, term, _ := newTestGame(t, 80, 24)
	term.press('q')
	g.Run()

	term.press('j', 'p')
	for i := 0; i < 5; i++ {
		assert.Equal(t, StateTerminated, g.Step())
	}
	assert.Equal(t, 2, term.buffered(), "terminated state reads no keys")
	assert.Equal(t, ReasonQuit, g.Result().Reason)
}

func TestGameMissEndsGame(t *testing.T) {
	g, term, clock := newTestGame(t, 80, 24)
	ctx := g.Context()
	ctx.Paddle.Y = 0
	ctx.Ball.Position = components.PositionComponent{X: 3, Y: 20}
	ctx.Ball.Velocity = components.VelocityComponent{X: -1, Y: 1}

	res := g.Run()

	assert.Equal(t, ReasonMissed, res.Reason)
	// Frames at x=3,2,1 advance, the frame at x=0 signals the miss
	assert.Equal(t, int64(4), res.Frames)
	assert.Equal(t, 4, clock.Sleeps())
	assert.Equal(t, 4, term.clears)
	assert.Equal(t, 0, ctx.Ball.Position.X, "no mutation on the terminating frame")
	assert.Equal(t, 23, ctx.Ball.Position.Y)
}

func TestGamePaddleReturnScores(t *testing.T) {
	g, term, _ := newTestGame(t, 80, 40)
	ctx := g.Context()
	require.Equal(t, 11, ctx.Paddle.Y)
	require.Equal(t, 10, ctx.Paddle.Length)
	ctx.Ball.Position = components.PositionComponent{X: 6, Y: 15}
	ctx.Ball.Velocity = components.VelocityComponent{X: -1, Y: 1}

	g.Step()
	g.Step()

	assert.Equal(t, 1, ctx.Paddle.Score)
	assert.Equal(t, 1, ctx.Ball.Velocity.X)
	assert.Equal(t, components.PositionComponent{X: 7, Y: 16}, ctx.Ball.Position)

	// Next frame shows the updated score
	g.Step()
	x := 80/2 - constants.ScoreCenterOffset
	assert.Equal(t, '1', term.cells[[2]int{x + len("Score: "), constants.ScoreRow}])
}

func TestGameMoveKeys(t *testing.T) {
	g, term, clock := newTestGame(t, 80, 24)
	g.Step()
	paddle := g.Context().Paddle

	term.press('j')
	g.Step()
	assert.Equal(t, 12, paddle.Y)

	term.press('k', 'k')
	g.Step()
	g.Step()
	assert.Equal(t, 10, paddle.Y)

	assert.Zero(t, clock.Sleeps(), "key dispatch does not advance a frame")
	assert.Equal(t, StateAwaitingInput, g.State())
}

func TestGameMoveUpAtTopIsNoop(t *testing.T) {
	g, term, _ := newTestGame(t, 80, 24)
	g.Step()
	g.Context().Paddle.Y = 0

	term.press('k')
	g.Step()

	assert.Equal(t, 0, g.Context().Paddle.Y)
}

func TestGameMoveDownAtBottomIsNoop(t *testing.T) {
	g, term, _ := newTestGame(t, 80, 40)
	g.Step()
	paddle := g.Context().Paddle
	paddle.Y = 40 - paddle.Length

	term.press('j')
	g.Step()

	assert.Equal(t, 40-paddle.Length, paddle.Y)
}

func TestGameIgnoredKey(t *testing.T) {
	g, term, clock := newTestGame(t, 80, 24)
	g.Step()
	before := *g.Context().Paddle

	term.press('x')
	assert.Equal(t, StateAwaitingInput, g.Step())

	assert.Equal(t, before, *g.Context().Paddle)
	assert.Zero(t, clock.Sleeps())
	assert.Zero(t, term.buffered())
}

func TestGamePauseAndResume(t *testing.T) {
	g, term, clock := newTestGame(t, 80, 24)
	g.Step()
	g.Step() // one frame on screen
	ball := g.Context().Ball.Position
	clears := term.clears

	term.press('p')
	assert.Equal(t, StatePaused, g.Step())
	assert.Equal(t, 'P', term.cells[[2]int{constants.PauseBannerCol, constants.PauseBannerRow}])
	assert.Equal(t, 2, term.shows, "banner presented immediately")

	// Idle while no key: sleep only, no frame
	for i := 0; i < 3; i++ {
		assert.Equal(t, StatePaused, g.Step())
	}
	assert.Equal(t, 1+3, clock.Sleeps())
	assert.Equal(t, clears, term.clears)
	assert.Equal(t, ball, g.Context().Ball.Position)

	// Resume key is consumed without effect, even if it is bound
	term.press('q')
	assert.Equal(t, StateRunning, g.Step())
	assert.Zero(t, term.buffered())
	assert.Equal(t, StateAwaitingInput, g.Step())
	assert.Equal(t, StateAwaitingInput, g.Step())
	assert.Equal(t, clears+1, term.clears, "rendering resumes")
}

func TestGameResizeClampsEntities(t *testing.T) {
	g, term, _ := newTestGame(t, 80, 40)
	g.Step()
	ctx := g.Context()
	ctx.Paddle.Y = 28
	ctx.Ball.Position = components.PositionComponent{X: 70, Y: 35}

	term.width, term.height = 40, 20
	g.Step()

	assert.Equal(t, components.BoundsComponent{MaxX: 40, MaxY: 20}, ctx.Bounds)
	assert.Equal(t, 10, ctx.Paddle.Y, "paddle pulled inside the new height")
	assert.True(t, ctx.Bounds.Contains(ctx.Ball.Position))
}

// TestGameInvariantsUnderRandomInput drives the loop with random keys and checks every step
func TestGameInvariantsUnderRandomInput(t *testing.T) {
	g, term, _ := newTestGame(t, 60, 30)
	rng := rand.New(rand.NewSource(42))
	keys := []rune{'j', 'k', 'j', 'k', 'x'}
	ctx := g.Context()

	for step := 0; step < 20000 && g.State() != StateTerminated; step++ {
		if rng.Intn(3) == 0 {
			term.press(keys[rng.Intn(len(keys))])
		}
		// Keep the ball in play so the run is long
		if ctx.Ball.Position.X < 8 {
			ctx.Ball.Velocity.X = 1
		}

		g.Step()

		require.GreaterOrEqual(t, ctx.Paddle.Y, 0, "step %d", step)
		require.LessOrEqual(t, ctx.Paddle.Y, 30-ctx.Paddle.Length, "step %d", step)
		require.Contains(t, []int{-1, 1}, ctx.Ball.Velocity.X, "step %d", step)
		require.Contains(t, []int{-1, 1}, ctx.Ball.Velocity.Y, "step %d", step)
	}
	assert.NotEqual(t, StateTerminated, g.State())
}

func TestGameCtrlCQuits(t *testing.T) {
	g, term, _ := newTestGame(t, 80, 24)
	term.queue = append(term.queue, terminal.KeyEvent{Key: terminal.KeyCtrlC})

	res := g.Run()

	assert.Equal(t, ReasonQuit, res.Reason)
}

func TestStateAndReasonStrings(t *testing.T) {
	assert.Equal(t, "awaiting_input", StateAwaitingInput.String())
	assert.Equal(t, "terminated", StateTerminated.String())
	assert.Equal(t, "unknown", State(99).String())
	assert.Equal(t, "missed", ReasonMissed.String())
	assert.Equal(t, "quit", ReasonQuit.String())
	assert.Equal(t, "none", ReasonNone.String())
}

func TestGameElapsedFollowsClock(t *testing.T) {
	g, _, clock := newTestGame(t, 80, 24)
	assert.Zero(t, g.Elapsed())

	g.Step()
	g.Step()
	g.Step()

	assert.Equal(t, 2, clock.Sleeps())
	assert.Equal(t, 2*constants.TickDelay, g.Elapsed())
}
