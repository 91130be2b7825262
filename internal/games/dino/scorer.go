package dino

import (
	"fmt"

	"github.com/vovakirdan/dino-runner/internal/config"
)

// Scorer accumulates time-based score and reports milestones.
type Scorer struct {
	interval float64
	every    int
	digits   int
	score    int
	timer    float64
}

// NewScorer creates a scorer at zero.
func NewScorer(cfg config.ScoringConfig) *Scorer {
	return &Scorer{
		interval: cfg.IntervalMs,
		every:    cfg.MilestoneEvery,
		digits:   cfg.Digits,
	}
}

// Advance adds elapsed time. When the timer reaches the interval it resets
// to zero and the score goes up by one. Returns true when the new score is
// a milestone.
func (s *Scorer) Advance(deltaMs float64) bool {
	s.timer += deltaMs
	if s.timer < s.interval {
		return false
	}
	s.timer = 0
	s.score++
	return s.score%s.every == 0
}

// Score returns the current score.
func (s *Scorer) Score() int {
	return s.score
}

// Timer returns the milliseconds accumulated toward the next point.
func (s *Scorer) Timer() float64 {
	return s.timer
}

// Display returns the zero-padded score string.
func (s *Scorer) Display() string {
	return PadScore(s.score, s.digits)
}

// Reset returns score and timer to zero.
func (s *Scorer) Reset() {
	s.score = 0
	s.timer = 0
}

// PadScore formats a score as a fixed-width zero-padded decimal.
func PadScore(score, digits int) string {
	return fmt.Sprintf("%0*d", digits, score)
}
