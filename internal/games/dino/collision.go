package dino

import "github.com/vovakirdan/dino-runner/internal/core"

// FirstOverlap returns the first obstacle, in spawn order, whose box
// overlaps the hitbox. Checking stops at the first hit.
func FirstOverlap(hitbox core.Box, obstacles []Obstacle) (Obstacle, bool) {
	for _, o := range obstacles {
		if hitbox.Intersects(o.Box()) {
			return o, true
		}
	}
	return Obstacle{}, false
}
