package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/control"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/rnd"
)

// player is one side of the match and the input source steering it.
// At most one of buttons, wheel and cpu is set.
type player struct {
	id      core.PlayerID
	kind    string
	source  control.Source
	buttons *control.Buttons
	wheel   *control.WheelCounter
	cpu     *control.CPU
}

func newPlayer(id core.PlayerID, kind string, cfg config.PongConfig) *player {
	p := &player{id: id, kind: kind}
	switch kind {
	case config.ControlWheel:
		p.wheel = control.NewWheelCounter(cfg.Controls.WheelStep)
		p.source = control.NewEncoder(p.wheel)
	case config.ControlCPU:
		p.cpu = control.NewCPU(id, cfg.CPU.MaxSpeed, cfg.CPU.MinSkill)
		p.source = p.cpu
	default:
		p.kind = config.ControlKeys
		p.buttons = control.NewButtons(cfg.Controls.Acceleration, cfg.Controls.HoldTicks)
		p.source = p.buttons
	}
	return p
}

// newRandom picks the configured generator kind.
func newRandom(cfg config.PongConfig) pong.Random {
	if cfg.Random == config.RandomLFSR16 {
		return rnd.NewSeeded16(cfg.Seed)
	}
	return rnd.NewSeeded(cfg.Seed)
}

// SessionOptions configures a Session.
type SessionOptions struct {
	Config config.PongConfig
	// Random overrides the seeded generator, mainly for tests.
	Random pong.Random
	// AutoResume starts the next rally right after a goal instead of waiting
	// for a press and release.
	AutoResume bool
	Logger     *log.Logger
}

// Outcome describes what one Session tick did.
type Outcome struct {
	Result     pong.Result
	Played     bool // Step was called this tick
	Resumed    bool // A new rally was started this tick
	RallyTicks int  // Length of the rally that just ended, set on RallyOver
}

// Session runs the host loop around a simulation: sample inputs, step,
// dispatch the result, keep the score and wait for players between rallies.
type Session struct {
	sim        *pong.Pong
	players    [2]*player
	resume     *control.Trigger
	gate       control.ResumeGate
	difficulty *config.DifficultyManager
	cpuCfg     config.CPUConfig
	log        *log.Logger

	autoResume bool
	waiting    bool
	score      pong.Score
	frame      pong.Progress
	ticks      int
	rallyTicks int
	goals      int
}

// NewSession creates a session with a freshly served rally.
func NewSession(opts SessionOptions) (*Session, error) {
	cfg := opts.Config

	rng := opts.Random
	if rng == nil {
		rng = newRandom(cfg)
	}

	sim, err := pong.New(cfg.Field.Width, cfg.Field.Height, rng)
	if err != nil {
		return nil, fmt.Errorf("create simulation: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		sim: sim,
		players: [2]*player{
			newPlayer(core.Player1, cfg.Controls.Player1, cfg),
			newPlayer(core.Player2, cfg.Controls.Player2, cfg),
		},
		resume:     control.NewTrigger(cfg.Controls.HoldTicks),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		cpuCfg:     cfg.CPU,
		log:        logger,
		autoResume: opts.AutoResume,
		frame:      sim.Progress(),
	}
	s.updateSkill()
	s.observe()
	return s, nil
}

// Tick runs one iteration of the host loop.
func (s *Session) Tick() Outcome {
	if s.waiting {
		if !s.autoResume && !s.gate.Poll(s.sources()...) {
			return Outcome{}
		}
		s.startRally()
		return Outcome{Resumed: true}
	}

	s.updateSkill()
	delta1 := s.players[0].source.Delta()
	delta2 := s.players[1].source.Delta()
	r := s.sim.Step(delta1, delta2)
	out := Outcome{Result: r, Played: true}

	switch r.Kind {
	case pong.Continuing:
		s.ticks++
		s.rallyTicks++
		s.frame = r.Progress
		s.observe()
	case pong.RallyOver:
		s.score = s.score.Credit(r)
		s.goals++
		out.RallyTicks = s.rallyTicks
		s.log.Info("goal",
			"scorer", r.Scorer(),
			"score", fmt.Sprintf("%d:%d", s.score.Player1, s.score.Player2),
			"rally_ticks", s.rallyTicks)
		s.pause()
	case pong.Rejected:
		s.log.Warn("step rejected while rally is over")
		s.pause()
	}
	return out
}

func (s *Session) pause() {
	s.waiting = true
	s.gate.Reset()
}

func (s *Session) startRally() {
	s.sim.Reinit()
	s.waiting = false
	s.rallyTicks = 0
	s.frame = s.sim.Progress()
	for _, p := range s.players {
		if p.cpu != nil {
			p.cpu.Forget()
		}
		if p.buttons != nil {
			p.buttons.Release()
		}
	}
	s.observe()

	vx, _ := s.frame.Ball.Velocity()
	s.log.Debug("rally started", "ball_vx", vx)
}

// sources returns every input the resume gate listens to.
func (s *Session) sources() []control.Source {
	return []control.Source{s.players[0].source, s.players[1].source, s.resume}
}

func (s *Session) observe() {
	for _, p := range s.players {
		if p.cpu != nil {
			p.cpu.Observe(s.frame)
		}
	}
}

func (s *Session) updateSkill() {
	skill := s.difficulty.Skill(s.cpuCfg, s.goals, s.ticks)
	for _, p := range s.players {
		if p.cpu != nil {
			p.cpu.SetSkill(skill)
		}
	}
}

// Press handles a paddle key for the given player; non-keyboard players ignore it.
func (s *Session) Press(id core.PlayerID, d control.Direction) {
	if p := s.player(id); p != nil && p.buttons != nil {
		p.buttons.Press(d)
	}
}

// Turn handles mouse wheel notches for the given player; non-wheel players ignore it.
func (s *Session) Turn(id core.PlayerID, notches int) {
	if p := s.player(id); p != nil && p.wheel != nil {
		p.wheel.Turn(notches)
	}
}

// PressResume handles the serve key.
func (s *Session) PressResume() {
	s.resume.Press()
}

func (s *Session) player(id core.PlayerID) *player {
	if !id.Valid() {
		return nil
	}
	return s.players[id-core.Player1]
}

// Kind returns the control kind of a player.
func (s *Session) Kind(id core.PlayerID) string {
	if p := s.player(id); p != nil {
		return p.kind
	}
	return ""
}

// Waiting reports whether the session is paused between rallies.
func (s *Session) Waiting() bool { return s.waiting }

// Score returns the match score.
func (s *Session) Score() pong.Score { return s.score }

// Frame returns the last frame produced by the simulation.
func (s *Session) Frame() pong.Progress { return s.frame }

// Field returns the simulation field size.
func (s *Session) Field() (int, int) { return s.sim.Field() }

// Ticks returns the number of ticks played across all rallies.
func (s *Session) Ticks() int { return s.ticks }

// Render draws the last frame and the score.
func (s *Session) Render(d pong.Drawer) {
	pong.Render(d, s.frame, s.score)
}
