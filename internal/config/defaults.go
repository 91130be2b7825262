package config

import (
	_ "embed"
)

//go:embed defaults/dino.yaml
var defaultDinoYAML []byte

// DefaultDinoConfig returns the built-in configuration. It matches the
// embedded defaults/dino.yaml and is the last fallback when YAML fails.
func DefaultDinoConfig() DinoConfig {
	return DinoConfig{
		Field: FieldConfig{
			Width:  1000,
			Height: 340,
		},
		Physics: DinoPhysics{
			Gravity:     5000,
			JumpImpulse: -1600,
			BaseSpeed:   7,
		},
		Player: DinoPlayer{
			StartX:          0,
			SpriteWidth:     88,
			SpriteHeight:    94,
			DuckSpriteWidth: 118,
			HitboxWidth:     42,
			HitboxHeight:    92,
			HitboxOffsetX:   20,
			DuckHeight:      58,
			DuckOffsetX:     60,
			RunFrameMs:      100,
		},
		Scoring: ScoringConfig{
			IntervalMs:      200,
			MilestoneEvery:  100,
			Digits:          9,
			HighScorePrefix: "Highest: ",
			FlickerHalfMs:   100,
			FlickerCycles:   4,
		},
		Difficulty: DifficultyConfig{
			ModifierStep: 0.1,
		},
		Obstacles: DinoObstacles{
			SpawnIntervalMs: 1500,
			MinOffset:       150,
			MaxOffset:       300,
			Ground: []ObstacleSize{
				{Width: 34, Height: 70},
				{Width: 68, Height: 70},
				{Width: 102, Height: 70},
				{Width: 50, Height: 100},
				{Width: 100, Height: 100},
				{Width: 150, Height: 100},
			},
			Flying:          ObstacleSize{Width: 92, Height: 77},
			FlyingAltitudes: []float64{20, 70},
			FlyingFrameMs:   166,
		},
		RollOut: RollOutConfig{
			StepsPerSecond: 60,
			GroundStart:    88,
			GroundGrowth:   34,
			PlayerVelocity: 80,
		},
		Trigger: TriggerConfig{
			Width:  32,
			Height: 32,
		},
		Scenery: SceneryConfig{
			GroundTile: 88,
			Clouds: []CloudConfig{
				{X: 500, Y: 170},
				{X: 920, Y: 80},
				{X: 769, Y: 100},
			},
			CloudWidth:   92,
			CloudHeight:  27,
			CloudRespawn: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDinoYAML
}
