package render

import (
	"fmt"

	"github.com/lixenwraith/vi-pong/constants"
)

// BallRenderer draws the ball at its committed position
type BallRenderer struct{}

func (r *BallRenderer) Render(ctx RenderContext, s Surface) {
	s.SetString(ctx.Ball.Position.X, ctx.Ball.Position.Y, constants.BallGlyph)
}

// PaddleRenderer draws one glyph per paddle row
type PaddleRenderer struct{}

func (r *PaddleRenderer) Render(ctx RenderContext, s Surface) {
	p := ctx.Paddle
	for i := 0; i < p.Length; i++ {
		s.SetString(p.X, p.Y+i, constants.PaddleGlyph)
	}
}

// ScoreRenderer draws the score near the top centre
type ScoreRenderer struct{}

func (r *ScoreRenderer) Render(ctx RenderContext, s Surface) {
	x := ctx.Bounds.MaxX/2 - constants.ScoreCenterOffset
	s.SetString(x, constants.ScoreRow, fmt.Sprintf(constants.ScoreFormat, ctx.Paddle.Score))
}

// PauseRenderer draws the pause banner
type PauseRenderer struct{}

func (r *PauseRenderer) Render(_ RenderContext, s Surface) {
	s.SetString(constants.PauseBannerCol, constants.PauseBannerRow, constants.PauseBanner)
}
