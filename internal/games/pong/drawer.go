package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Drawer is the rendering sink a host implements.
type Drawer interface {
	// DrawBall draws the ball as a filled circle centred on (X, Y) with radius R.
	DrawBall(b Ball)
	// DrawPlayer draws a paddle as a filled rectangle.
	DrawPlayer(p Paddle)
	// DrawScore renders both scores in their fixed slots.
	DrawScore(s Score)
}

// Render draws one frame: score first, then the ball and both paddles.
func Render(d Drawer, p Progress, s Score) {
	d.DrawScore(s)
	d.DrawBall(p.Ball)
	d.DrawPlayer(p.Player1)
	d.DrawPlayer(p.Player2)
}

// Score is the match score kept by the host.
type Score struct {
	Player1 int
	Player2 int
}

// Credit returns the score with the goal of a RallyOver result added.
// Any other result leaves the score unchanged.
func (s Score) Credit(r Result) Score {
	if r.Kind != RallyOver {
		return s
	}
	switch r.Scorer() {
	case core.Player1:
		s.Player1++
	case core.Player2:
		s.Player2++
	}
	return s
}

// Of returns the points of one player.
func (s Score) Of(id core.PlayerID) int {
	if id == core.Player2 {
		return s.Player2
	}
	return s.Player1
}
