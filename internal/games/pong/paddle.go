package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// PaddleWidth is the fixed width of both paddles in field units.
const PaddleWidth = 2

// Paddle is a player's bat. X never changes after creation; Y is the top edge.
type Paddle struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewPaddle places the paddle of the given side at its start position:
// flush with its edge, a quarter of the field tall, its top at 3/8 of the height.
func NewPaddle(side core.PlayerID, fieldW, fieldH int) Paddle {
	x := 0
	if side == core.Player2 {
		x = fieldW - PaddleWidth
	}
	return Paddle{
		X:      x,
		Y:      3 * fieldH / 8,
		Width:  PaddleWidth,
		Height: fieldH / 4,
	}
}

// MoveUp moves the paddle toward the top edge by amount and keeps Y >= upperLimit.
func (p *Paddle) MoveUp(amount, upperLimit int) {
	p.Y -= amount
	if p.Y < upperLimit {
		p.Y = upperLimit
	}
}

// MoveDown applies a negative amount (moving toward the bottom edge) and keeps
// the bottom of the paddle at or above lowerLimit.
func (p *Paddle) MoveDown(amount, lowerLimit int) {
	p.Y -= amount
	if p.Y+p.Height > lowerLimit {
		p.Y = lowerLimit - p.Height
	}
}

// Shift dispatches an input delta: positive moves up, negative moves down,
// zero leaves the paddle in place.
func (p *Paddle) Shift(delta, fieldH int) {
	switch {
	case delta > 0:
		p.MoveUp(delta, 0)
	case delta < 0:
		p.MoveDown(delta, fieldH)
	}
}

// Rect returns the paddle's rectangle.
func (p Paddle) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}
