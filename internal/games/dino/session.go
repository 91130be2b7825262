package dino

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// Mode is the top-level phase of a session.
type Mode int

const (
	ModeIntro Mode = iota
	ModeRollOut
	ModeRunning
	ModeEnded
)

var modeNames = [...]string{"intro", "rollout", "running", "ended"}

// String returns the mode name.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// HighScoreKey is the key the best score is stored under.
const HighScoreKey = "highScore"

// ValueStore persists integer values between sessions.
// GetInt returns 0 for a key that was never set. RaiseInt stores value only
// if it beats the stored one and returns what is stored afterwards, so
// sessions sharing a store never lower each other's best.
type ValueStore interface {
	GetInt(key string) (int, error)
	RaiseInt(key string, value int) (int, error)
}

// Session is one play session: the mode machine plus every component it drives.
type Session struct {
	cfg    config.DinoConfig
	logger *log.Logger
	store  ValueStore

	mode       Mode
	scorer     *Scorer
	difficulty *config.DifficultyManager
	spawner    *Spawner
	obstacles  Obstacles
	player     *Player
	trigger    StartTrigger
	rollOut    RollOut
	scenery    Scenery
	flicker    Flicker

	highScore   int
	scrollSpeed float64
	animMs      float64 // Running-time clock for flyer animation
	ticks       uint64
	lastHit     int // ID of the obstacle that ended the last run
	cues        []core.Cue
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithSessionLogger sets the logger transitions are reported to.
func WithSessionLogger(l *log.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSessionStore sets where the high score is loaded from and saved to.
// Without a store the high score lasts for the life of the session.
func WithSessionStore(store ValueStore) SessionOption {
	return func(s *Session) {
		if store != nil {
			s.store = store
		}
	}
}

// NewSession creates a session in Intro. The high score is read once from
// the store; a failed read starts from zero.
func NewSession(cfg config.DinoConfig, seed int64, opts ...SessionOption) *Session {
	s := &Session{
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.scorer = NewScorer(cfg.Scoring)
	s.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	s.spawner = NewSpawner(cfg, rand.New(rand.NewSource(seed)))
	s.player = NewPlayer(cfg)
	s.trigger = NewStartTrigger(cfg)
	s.rollOut = NewRollOut(cfg)
	s.scenery = NewScenery(cfg)
	s.flicker = NewFlicker(cfg.Scoring)
	s.scrollSpeed = cfg.Physics.BaseSpeed

	if s.store != nil {
		best, err := s.store.GetInt(HighScoreKey)
		if err != nil {
			s.logger.Warn("high score unavailable", "err", err)
		}
		s.highScore = best
	}

	s.logger.Debug("session created", "seed", seed, "highScore", s.highScore)
	return s
}

// Tick advances the session by one frame and returns the sound cues it produced.
func (s *Session) Tick(deltaMs float64, in core.InputFrame) []core.Cue {
	s.cues = nil
	s.ticks++

	switch s.mode {
	case ModeIntro:
		s.tickIntro(deltaMs, in)
	case ModeRollOut:
		s.tickRollOut(deltaMs)
	case ModeRunning:
		s.tickRunning(deltaMs, in)
	case ModeEnded:
		if in.Pressed(core.ActionRestart) {
			s.restart()
		}
	}
	return s.cues
}

func (s *Session) tickIntro(deltaMs float64, in core.InputFrame) {
	s.player.Integrate(deltaMs)
	if s.player.HandleInput(in) {
		s.emit(core.CueJump)
	}
	if s.trigger.Check(s.player.Hitbox()) {
		s.setMode(ModeRollOut)
	}
}

// tickRollOut takes no input: the player runs on its own until the ground
// is fully drawn, and a jump pressed meanwhile is dropped.
func (s *Session) tickRollOut(deltaMs float64) {
	done := s.rollOut.Advance(deltaMs, &s.scenery.Ground, s.player)
	s.player.Integrate(deltaMs)
	s.player.Run(deltaMs)
	if done {
		s.setMode(ModeRunning)
	}
}

func (s *Session) tickRunning(deltaMs float64, in core.InputFrame) {
	s.animMs += deltaMs

	if s.scorer.Advance(deltaMs) {
		s.difficulty.OnMilestone()
		s.flicker.Start()
		s.emit(core.CueProgress)
		s.logger.Debug("milestone", "score", s.scorer.Score(), "modifier", s.difficulty.Modifier())
	}
	s.flicker.Advance(deltaMs)

	if o, ok := s.spawner.Tick(deltaMs); ok {
		o = s.obstacles.Add(o)
		s.logger.Debug("spawn", "id", o.ID, "kind", o.Kind, "variant", o.Variant, "x", o.X)
	}

	s.scrollSpeed = s.difficulty.Speed(s.cfg.Physics.BaseSpeed)
	s.obstacles.Advance(-s.scrollSpeed)
	s.scenery.Scroll(s.scrollSpeed)
	s.obstacles.Sweep()

	if o, hit := FirstOverlap(s.player.Hitbox(), s.obstacles.All()); hit {
		s.end(o)
		return
	}

	s.player.Integrate(deltaMs)
	if s.player.HandleInput(in) {
		s.emit(core.CueJump)
	}
	s.player.SelectPose(deltaMs)
}

// end enters Ended after a collision with o.
func (s *Session) end(o Obstacle) {
	s.lastHit = o.ID
	s.player.Die()
	s.flicker.Stop()
	s.emit(core.CueHit)

	score := s.scorer.Score()
	if score > s.highScore {
		s.highScore = score
		if s.store != nil {
			best, err := s.store.RaiseInt(HighScoreKey, score)
			if err != nil {
				s.logger.Error("save high score", "err", err)
			} else if best > s.highScore {
				s.highScore = best
			}
		}
	}

	s.scrollSpeed = s.cfg.Physics.BaseSpeed
	s.spawner.Reset()
	s.setMode(ModeEnded)
	s.logger.Info("game over", "score", score, "highScore", s.highScore, "obstacle", o.ID, "kind", o.Kind)
}

// restart clears the field and resumes running without replaying the intro.
func (s *Session) restart() {
	s.obstacles.Clear()
	s.scorer.Reset()
	s.difficulty.Reset()
	s.flicker.Stop()
	s.spawner.Reset()
	s.player.Revive()
	s.scrollSpeed = s.cfg.Physics.BaseSpeed
	s.lastHit = 0
	s.setMode(ModeRunning)
}

func (s *Session) setMode(m Mode) {
	s.logger.Debug("mode", "from", s.mode, "to", m, "tick", s.ticks)
	s.mode = m
}

func (s *Session) emit(c core.Cue) {
	s.cues = append(s.cues, c)
}

// Mode returns the current mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Score returns the current run's score.
func (s *Session) Score() int {
	return s.scorer.Score()
}

// HighScore returns the best score seen by this session, including the stored one.
func (s *Session) HighScore() int {
	return s.highScore
}

// SpeedModifier returns the current difficulty multiplier.
func (s *Session) SpeedModifier() float64 {
	return s.difficulty.Modifier()
}

// ScrollSpeed returns the displacement applied to the world on the last running tick.
func (s *Session) ScrollSpeed() float64 {
	return s.scrollSpeed
}

// Obstacles returns a copy of the live obstacles.
func (s *Session) Obstacles() []Obstacle {
	return append([]Obstacle(nil), s.obstacles.All()...)
}

// Player returns the player.
func (s *Session) Player() *Player {
	return s.player
}

// LastHit returns the ID of the obstacle that ended the last run, or 0.
func (s *Session) LastHit() int {
	return s.lastHit
}

// Ticks returns the number of ticks processed.
func (s *Session) Ticks() uint64 {
	return s.ticks
}
