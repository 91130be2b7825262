package dino

import (
	"math/rand"

	"github.com/vovakirdan/dino-runner/internal/config"
)

// Spawner decides when and what kind of obstacle to create.
type Spawner struct {
	cfg      config.DinoObstacles
	fieldW   float64
	groundY  float64
	rng      *rand.Rand
	timer    float64
	interval float64
}

// NewSpawner creates a spawner drawing from the given RNG.
func NewSpawner(cfg config.DinoConfig, rng *rand.Rand) *Spawner {
	s := &Spawner{
		cfg:     cfg.Obstacles,
		fieldW:  cfg.Field.Width,
		groundY: cfg.Field.Height,
		rng:     rng,
	}
	s.Reset()
	return s
}

// Reset zeroes the timer and restores the initial spawn interval.
func (s *Spawner) Reset() {
	s.timer = 0
	s.interval = s.cfg.SpawnIntervalMs
}

// Timer returns the milliseconds accumulated since the last spawn.
func (s *Spawner) Timer() float64 {
	return s.timer
}

// Interval returns the current spawn interval in milliseconds.
func (s *Spawner) Interval() float64 {
	return s.interval
}

// Tick advances the spawn timer. Once the timer exceeds the interval it
// resets and exactly one obstacle is returned.
func (s *Spawner) Tick(deltaMs float64) (Obstacle, bool) {
	s.timer += deltaMs
	if s.timer <= s.interval {
		return Obstacle{}, false
	}
	s.timer = 0
	return s.spawn(), true
}

// spawn draws a uniform value in [1, GroundKinds+1]. The top value is a flyer
// at a random altitude class; the rest select a ground variant.
func (s *Spawner) spawn() Obstacle {
	draw := s.rng.Intn(config.GroundKinds+1) + 1
	offset := s.cfg.MinOffset + s.rng.Intn(s.cfg.MaxOffset-s.cfg.MinOffset+1)
	x := s.fieldW + float64(offset)

	if draw > config.GroundKinds {
		altitude := s.cfg.FlyingAltitudes[s.rng.Intn(len(s.cfg.FlyingAltitudes))]
		return Obstacle{
			Kind:      KindFlying,
			X:         x,
			Bottom:    s.groundY - altitude,
			Width:     s.cfg.Flying.Width,
			Height:    s.cfg.Flying.Height,
			Altitude:  altitude,
			Immovable: true,
		}
	}

	size := s.cfg.Ground[draw-1]
	return Obstacle{
		Kind:      KindGround,
		Variant:   draw,
		X:         x,
		Bottom:    s.groundY,
		Width:     size.Width,
		Height:    size.Height,
		Immovable: true,
	}
}
