package pong

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Ball settings in field units per tick.
const (
	BallRadius       = 3
	BallMaxSpeed     = 1.5
	MaxVerticalSpeed = BallMaxSpeed / 2.5
)

// spinRange is the number of distinct spin values a paddle bounce can add.
// Draws map onto [-6, 6] and are scaled by spinScale.
const (
	spinRange = 13
	spinScale = 5.0
)

// Ball is the ball in play. Its speed is BallMaxSpeed between any two ticks.
type Ball struct {
	X float64
	Y float64
	R int

	vx float64
	vy float64
}

// Serve places the ball at the centre of the field moving horizontally.
// An even draw sends it toward Player2, an odd one toward Player1.
func (b *Ball) Serve(fieldW, fieldH int, rng Random) {
	side := core.Player2
	if rng.Next()%2 != 0 {
		side = core.Player1
	}
	b.ServeToward(fieldW, fieldH, side)
}

// ServeToward places the ball at the centre of the field moving horizontally
// toward the given side. No randomness is consumed.
func (b *Ball) ServeToward(fieldW, fieldH int, side core.PlayerID) {
	b.X = float64(fieldW) / 2.0
	b.Y = float64(fieldH) / 2.0
	b.R = BallRadius
	b.vy = 0
	if side == core.Player1 {
		b.vx = -BallMaxSpeed
	} else {
		b.vx = BallMaxSpeed
	}
}

// Advance moves the ball by one tick of velocity.
func (b *Ball) Advance() {
	b.X += b.vx
	b.Y += b.vy
}

// Velocity returns the horizontal and vertical speed components.
func (b Ball) Velocity() (x, y float64) {
	return b.vx, b.vy
}

// Speed returns the magnitude of the velocity vector.
func (b Ball) Speed() float64 {
	return math.Hypot(b.vx, b.vy)
}

// Approaching reports whether the ball is moving toward the given side's edge.
func (b Ball) Approaching(side core.PlayerID) bool {
	if side == core.Player1 {
		return b.vx < 0
	}
	return b.vx > 0
}

// bounds returns the ball's square bounding box as left, top, right, bottom.
func (b Ball) bounds() (left, top, right, bottom float64) {
	r := float64(b.R)
	return b.X - r, b.Y - r, b.X + r, b.Y + r
}

// PaddleCollision reports whether the ball's bounding box and the paddle
// overlap. Both are closed: touching edges collide.
func (b Ball) PaddleCollision(p Paddle) bool {
	left, top, right, bottom := b.bounds()
	r := p.Rect()

	// Closed intervals, so equality still overlaps
	if top > float64(r.Bottom()) || bottom < float64(r.Y) {
		return false
	}
	if left > float64(r.Right()) || right < float64(r.X) {
		return false
	}
	return true
}

// BorderCollision reports whether the ball is at or past the border it is
// moving toward. A ball leaving a border it already bounced off never collides.
func (b Ball) BorderCollision(top, bottom int) bool {
	_, ballTop, _, ballBottom := b.bounds()

	if b.vy > 0 {
		return ballBottom >= float64(bottom)
	}
	return ballTop <= float64(top)
}

// BounceOffPaddle reverses the horizontal direction and adds a random spin to
// the vertical speed, then restores the total speed to BallMaxSpeed.
func (b *Ball) BounceOffPaddle(rng Random) {
	b.vx = -b.vx
	b.addSpin(rng)
}

// BounceOffBorder reverses the vertical direction.
func (b *Ball) BounceOffBorder() {
	b.vy = -b.vy
}

func (b *Ball) addSpin(rng Random) {
	n := euclidMod(rng.Next(), spinRange) - spinRange/2
	b.vy += float64(n) / spinScale
	b.normalize()
}

// normalize clamps the vertical speed and recomputes the horizontal one so the
// velocity magnitude is exactly BallMaxSpeed. The horizontal sign is kept.
func (b *Ball) normalize() {
	b.vy = core.ClampF(b.vy, -MaxVerticalSpeed, MaxVerticalSpeed)

	vx := math.Sqrt(BallMaxSpeed*BallMaxSpeed - b.vy*b.vy)
	if b.vx > 0 {
		b.vx = vx
	} else {
		b.vx = -vx
	}
}
