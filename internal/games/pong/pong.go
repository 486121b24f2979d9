// Package pong implements the deterministic two-paddle simulation core.
//
// The simulation advances exactly one discrete step per Step call and knows
// nothing about time, rendering or input devices. Hosts sample paddle deltas,
// call Step once per tick and dispatch on the returned Result.
package pong

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/core"
)

var (
	// ErrInvalidField is returned when the field cannot hold both paddles and the ball.
	ErrInvalidField = errors.New("pong: invalid field size")
	// ErrNilRandom is returned when no random source is supplied.
	ErrNilRandom = errors.New("pong: nil random source")
)

// Smallest field the paddles and ball fit into.
const (
	MinFieldWidth  = 2*PaddleWidth + 2*BallRadius + 1
	MinFieldHeight = 8
)

// Progress is a value snapshot of everything a renderer needs for one frame.
type Progress struct {
	Ball    Ball
	Player1 Paddle
	Player2 Paddle
}

// Status is the state of the simulation. While Over is set the ball and both
// paddles are frozen until Reinit.
type Status struct {
	Over     bool
	Conceded core.PlayerID // Side the last goal went past; valid only when Over
}

// InProgress reports whether a rally is being played.
func (s Status) InProgress() bool {
	return !s.Over
}

// ResultKind tells the host how to dispatch a Step result.
type ResultKind int

const (
	// Continuing means the rally goes on and Progress holds the new frame.
	Continuing ResultKind = iota
	// RallyOver means a goal was scored this tick; Conceded names the side it went past.
	RallyOver
	// Rejected means Step was called while the rally was already over.
	Rejected
)

// String returns a human-readable name for the result kind.
func (k ResultKind) String() string {
	switch k {
	case Continuing:
		return "Continuing"
	case RallyOver:
		return "RallyOver"
	case Rejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// Result is returned by Step.
type Result struct {
	Kind     ResultKind
	Progress Progress      // Set for Continuing
	Conceded core.PlayerID // Set for RallyOver
}

// Scorer returns the player credited with the goal of a RallyOver result.
func (r Result) Scorer() core.PlayerID {
	return r.Conceded.Opponent()
}

// Pong is the simulation: one ball, two paddles and the rally state.
// It does not keep the match score; hosts accumulate it from RallyOver results.
type Pong struct {
	width    int
	height   int
	progress Progress
	status   Status
	rng      Random
}

// New creates a simulation for a width x height field in progress with a
// randomly served ball.
func New(width, height int, rng Random) (*Pong, error) {
	if width < MinFieldWidth || height < MinFieldHeight {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrInvalidField, width, height, MinFieldWidth, MinFieldHeight)
	}
	if rng == nil {
		return nil, ErrNilRandom
	}

	p := &Pong{
		width:  width,
		height: height,
		rng:    rng,
	}
	p.resetPaddles()
	p.progress.Ball.Serve(width, height, rng)
	return p, nil
}

// Field returns the field dimensions.
func (p *Pong) Field() (width, height int) {
	return p.width, p.height
}

// Status returns the current simulation state.
func (p *Pong) Status() Status {
	return p.status
}

// Progress returns a copy of the current ball and paddles.
func (p *Pong) Progress() Progress {
	return p.progress
}

// Step advances the simulation by one tick. delta1 and delta2 move the
// paddles: positive toward the top edge, negative toward the bottom.
func (p *Pong) Step(delta1, delta2 int) Result {
	if p.status.Over {
		return Result{Kind: Rejected}
	}

	p.progress.Player1.Shift(delta1, p.height)
	p.progress.Player2.Shift(delta2, p.height)

	if conceded, goal := p.moveBall(); goal {
		p.status = Status{Over: true, Conceded: conceded}
		return Result{Kind: RallyOver, Conceded: conceded}
	}
	return Result{Kind: Continuing, Progress: p.progress}
}

// moveBall runs one tick of ball physics in fixed order: advance, paddle
// bounce, border bounce, goal check. Only the first overlapping paddle
// bounces, whichever way the ball moves. The ball is not pulled back onto
// the field, so it may leave it on the same tick it bounced.
func (p *Pong) moveBall() (core.PlayerID, bool) {
	ball := &p.progress.Ball
	ball.Advance()

	switch {
	case ball.PaddleCollision(p.progress.Player1):
		ball.BounceOffPaddle(p.rng)
	case ball.PaddleCollision(p.progress.Player2):
		ball.BounceOffPaddle(p.rng)
	}

	if ball.BorderCollision(0, p.height) {
		ball.BounceOffBorder()
	}

	switch {
	case ball.X < 0:
		return core.Player1, true
	case ball.X > float64(p.width):
		return core.Player2, true
	}
	return 0, false
}

// Reinit starts a new rally. After a goal the ball is served toward the side
// that conceded; otherwise the direction is drawn at random. Both paddles
// return to their start positions.
func (p *Pong) Reinit() {
	if p.status.Over {
		p.progress.Ball.ServeToward(p.width, p.height, p.status.Conceded)
	} else {
		p.progress.Ball.Serve(p.width, p.height, p.rng)
	}
	p.resetPaddles()
	p.status = Status{}
}

func (p *Pong) resetPaddles() {
	p.progress.Player1 = NewPaddle(core.Player1, p.width, p.height)
	p.progress.Player2 = NewPaddle(core.Player2, p.width, p.height)
}
