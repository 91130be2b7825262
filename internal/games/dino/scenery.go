package dino

import (
	"math"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// Ground is the scrolling ground strip. Offset wraps at the tile width.
type Ground struct {
	Width  float64
	Offset float64
	tile   float64
}

// Scroll moves the ground pattern by dx.
func (g *Ground) Scroll(dx float64) {
	if g.tile <= 0 {
		return
	}
	g.Offset = math.Mod(g.Offset+dx, g.tile)
}

// Cloud is one background decoration.
type Cloud struct {
	X, Y float64
	W, H float64
}

// Box returns the cloud extent.
func (c Cloud) Box() core.Box {
	return core.NewBox(c.X, c.Y, c.W, c.H)
}

// Scenery holds the ground and clouds.
type Scenery struct {
	Ground  Ground
	Clouds  []Cloud
	fieldW  float64
	respawn float64
	initial []Cloud
}

// NewScenery creates scenery with the ground at its rollout start width.
func NewScenery(cfg config.DinoConfig) Scenery {
	clouds := make([]Cloud, len(cfg.Scenery.Clouds))
	for i, c := range cfg.Scenery.Clouds {
		clouds[i] = Cloud{X: c.X, Y: c.Y, W: cfg.Scenery.CloudWidth, H: cfg.Scenery.CloudHeight}
	}
	return Scenery{
		Ground:  Ground{Width: cfg.RollOut.GroundStart, tile: cfg.Scenery.GroundTile},
		Clouds:  clouds,
		fieldW:  cfg.Field.Width,
		respawn: cfg.Scenery.CloudRespawn,
		initial: append([]Cloud(nil), clouds...),
	}
}

// Scroll advances the ground pattern and moves clouds left by speed.
// A cloud fully past the left edge reappears beyond the right edge.
func (s *Scenery) Scroll(speed float64) {
	s.Ground.Scroll(speed)
	for i := range s.Clouds {
		c := &s.Clouds[i]
		c.X -= speed
		if c.X+c.W < 0 {
			c.X = s.fieldW + s.respawn
		}
	}
}

// ResetClouds puts the clouds back at their starting positions.
func (s *Scenery) ResetClouds() {
	copy(s.Clouds, s.initial)
}
