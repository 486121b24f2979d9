package control

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// Default CPU tuning.
const (
	DefaultCPUSpeed = 3
	DefaultCPUSkill = 0.6
)

// CPU steers a paddle toward the ball of the last observed frame.
// It only reacts while the ball is heading to its side.
type CPU struct {
	side     core.PlayerID
	maxSpeed int
	skill    float64

	frame pong.Progress
	seen  bool
}

// NewCPU creates a CPU player for one side. skill in [0, 1] scales maxSpeed.
func NewCPU(side core.PlayerID, maxSpeed int, skill float64) *CPU {
	if maxSpeed <= 0 {
		maxSpeed = DefaultCPUSpeed
	}
	c := &CPU{side: side, maxSpeed: maxSpeed}
	c.SetSkill(skill)
	return c
}

// SetSkill changes the reaction skill, clamped to [0, 1].
func (c *CPU) SetSkill(skill float64) {
	c.skill = core.ClampF(skill, 0, 1)
}

// Skill returns the current skill.
func (c *CPU) Skill() float64 {
	return c.skill
}

// Observe records the latest frame the CPU reacts to.
func (c *CPU) Observe(p pong.Progress) {
	c.frame = p
	c.seen = true
}

// Forget drops the observed frame, e.g. when a new rally starts.
func (c *CPU) Forget() {
	c.seen = false
}

// Delta moves the paddle centre toward the ball.
func (c *CPU) Delta() int {
	if !c.seen || !c.frame.Ball.Approaching(c.side) {
		return 0
	}

	paddle := c.frame.Player1
	if c.side == core.Player2 {
		paddle = c.frame.Player2
	}

	speed := max(1, int(math.Round(float64(c.maxSpeed)*c.skill)))
	centre := float64(paddle.Y) + float64(paddle.Height)/2.0
	diff := c.frame.Ball.Y - centre

	if math.Abs(diff) <= float64(speed) {
		return 0
	}
	if diff > 0 {
		return -speed
	}
	return speed
}

// Any is always false: a CPU never resumes play.
func (c *CPU) Any() bool {
	return false
}
