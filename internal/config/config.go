// Package config provides YAML-based game configuration loading and
// difficulty management for the runner.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// GroundKinds is the number of ground obstacle variants the spawner draws from.
const GroundKinds = 6

// DinoConfig contains every tunable constant of the runner.
// Distances are world pixels, durations are milliseconds.
type DinoConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Physics    DinoPhysics      `yaml:"physics"`
	Player     DinoPlayer       `yaml:"player"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Obstacles  DinoObstacles    `yaml:"obstacles"`
	RollOut    RollOutConfig    `yaml:"rollout"`
	Trigger    TriggerConfig    `yaml:"start_trigger"`
	Scenery    SceneryConfig    `yaml:"scenery"`
}

// FieldConfig is the visible playfield. The ground plane is at y = Height.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DinoPhysics defines motion parameters.
type DinoPhysics struct {
	Gravity     float64 `yaml:"gravity"`      // px/s², downward
	JumpImpulse float64 `yaml:"jump_impulse"` // px/s, negative is up
	BaseSpeed   float64 `yaml:"base_speed"`   // px per tick before the modifier
}

// DinoPlayer defines the player sprite and hitbox geometry.
// Hitbox offsets are measured from the sprite's left edge; the hitbox base
// always rests on the sprite base.
type DinoPlayer struct {
	StartX          float64 `yaml:"start_x"`
	SpriteWidth     float64 `yaml:"sprite_width"`
	SpriteHeight    float64 `yaml:"sprite_height"`
	DuckSpriteWidth float64 `yaml:"duck_sprite_width"`
	HitboxWidth     float64 `yaml:"hitbox_width"`
	HitboxHeight    float64 `yaml:"hitbox_height"`
	HitboxOffsetX   float64 `yaml:"hitbox_offset_x"`
	DuckHeight      float64 `yaml:"duck_height"`
	DuckOffsetX     float64 `yaml:"duck_offset_x"`
	RunFrameMs      float64 `yaml:"run_frame_ms"`
}

// ScoringConfig defines time-based scoring and its presentation.
type ScoringConfig struct {
	IntervalMs      float64 `yaml:"interval_ms"`
	MilestoneEvery  int     `yaml:"milestone_every"`
	Digits          int     `yaml:"digits"`
	HighScorePrefix string  `yaml:"high_score_prefix"`
	FlickerHalfMs   float64 `yaml:"flicker_half_ms"`
	FlickerCycles   int     `yaml:"flicker_cycles"`
}

// DifficultyConfig defines speed progression per milestone.
type DifficultyConfig struct {
	ModifierStep float64 `yaml:"modifier_step"` // Added to the speed modifier on each milestone
}

// ObstacleSize is the hitbox of one obstacle variant.
type ObstacleSize struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DinoObstacles defines obstacle spawning.
type DinoObstacles struct {
	SpawnIntervalMs float64        `yaml:"spawn_interval_ms"`
	MinOffset       int            `yaml:"min_offset"` // Beyond the right edge of the field
	MaxOffset       int            `yaml:"max_offset"`
	Ground          []ObstacleSize `yaml:"ground"`
	Flying          ObstacleSize   `yaml:"flying"`
	FlyingAltitudes []float64      `yaml:"flying_altitudes"` // Height of the flyer's base above ground
	FlyingFrameMs   float64        `yaml:"flying_frame_ms"`
}

// RollOutConfig defines the transient entrance between Intro and Running.
type RollOutConfig struct {
	StepsPerSecond int     `yaml:"steps_per_second"`
	GroundStart    float64 `yaml:"ground_start"`
	GroundGrowth   float64 `yaml:"ground_growth"`   // Added to ground width per step
	PlayerVelocity float64 `yaml:"player_velocity"` // px/s while rolling out
}

// TriggerConfig is the size of the start trigger zone.
type TriggerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CloudConfig is the initial position of one background cloud.
type CloudConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// SceneryConfig defines background decoration.
type SceneryConfig struct {
	GroundTile   float64       `yaml:"ground_tile"` // Width of one repeating ground tile
	Clouds       []CloudConfig `yaml:"clouds"`
	CloudWidth   float64       `yaml:"cloud_width"`
	CloudHeight  float64       `yaml:"cloud_height"`
	CloudRespawn float64       `yaml:"cloud_respawn"` // Distance past the right edge a wrapped cloud reappears at
}

// Validate checks the config for values the simulation cannot run with.
func (c DinoConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field size must be positive", ErrInvalidConfig)
	case c.Physics.BaseSpeed <= 0:
		return fmt.Errorf("%w: physics.base_speed must be positive", ErrInvalidConfig)
	case c.Physics.JumpImpulse >= 0:
		return fmt.Errorf("%w: physics.jump_impulse must be negative (upward)", ErrInvalidConfig)
	case c.Player.HitboxHeight <= 0 || c.Player.HitboxWidth <= 0:
		return fmt.Errorf("%w: player hitbox must be positive", ErrInvalidConfig)
	case c.Player.DuckHeight <= 0 || c.Player.DuckHeight >= c.Player.HitboxHeight:
		return fmt.Errorf("%w: player.duck_height must be positive and below hitbox_height", ErrInvalidConfig)
	case c.Scoring.IntervalMs <= 0:
		return fmt.Errorf("%w: scoring.interval_ms must be positive", ErrInvalidConfig)
	case c.Scoring.MilestoneEvery <= 0:
		return fmt.Errorf("%w: scoring.milestone_every must be positive", ErrInvalidConfig)
	case c.Scoring.Digits <= 0:
		return fmt.Errorf("%w: scoring.digits must be positive", ErrInvalidConfig)
	case c.Difficulty.ModifierStep < 0:
		return fmt.Errorf("%w: difficulty.modifier_step must not be negative", ErrInvalidConfig)
	case c.Obstacles.SpawnIntervalMs <= 0:
		return fmt.Errorf("%w: obstacles.spawn_interval_ms must be positive", ErrInvalidConfig)
	case c.Obstacles.MinOffset < 0 || c.Obstacles.MaxOffset < c.Obstacles.MinOffset:
		return fmt.Errorf("%w: obstacles offset range [%d, %d] is invalid",
			ErrInvalidConfig, c.Obstacles.MinOffset, c.Obstacles.MaxOffset)
	case len(c.Obstacles.Ground) != GroundKinds:
		return fmt.Errorf("%w: obstacles.ground needs %d kinds, got %d",
			ErrInvalidConfig, GroundKinds, len(c.Obstacles.Ground))
	case len(c.Obstacles.FlyingAltitudes) == 0:
		return fmt.Errorf("%w: obstacles.flying_altitudes is empty", ErrInvalidConfig)
	case c.RollOut.StepsPerSecond <= 0 || c.RollOut.GroundGrowth <= 0:
		return fmt.Errorf("%w: rollout steps and growth must be positive", ErrInvalidConfig)
	}

	for i, g := range c.Obstacles.Ground {
		if g.Width <= 0 || g.Height <= 0 {
			return fmt.Errorf("%w: obstacles.ground[%d] size must be positive", ErrInvalidConfig, i)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Empty means "use the config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyDinoPreset modifies the config based on a difficulty preset.
func ApplyDinoPreset(cfg *DinoConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.BaseSpeed = 5
	case DifficultyNormal:
		cfg.Physics.BaseSpeed = 7
	case DifficultyHard:
		cfg.Physics.BaseSpeed = 9
		cfg.Difficulty.ModifierStep = 0.15
	case DifficultyFixed:
		cfg.Difficulty.ModifierStep = 0
	}
}
