package dino

import (
	"github.com/vovakirdan/dino-runner/internal/core"
)

// ObstacleKind separates obstacles the player must jump from flyers that can
// also be ducked under.
type ObstacleKind int

const (
	KindGround ObstacleKind = iota
	KindFlying
)

// String returns the kind name.
func (k ObstacleKind) String() string {
	if k == KindFlying {
		return "flying"
	}
	return "ground"
}

// Obstacle is one hazard scrolling toward the player.
// Position is the left edge and base in world pixels.
type Obstacle struct {
	ID        int
	Kind      ObstacleKind
	Variant   int     // 1..6 for ground obstacles, 0 for flyers
	X         float64 // Left edge
	Bottom    float64 // Base y
	Width     float64
	Height    float64
	Altitude  float64 // Height class: base height above the ground plane
	Immovable bool    // Never pushed by collisions
}

// Box returns the collision box of the obstacle.
func (o Obstacle) Box() core.Box {
	return core.BoxFromBottom(o.X, o.Bottom, o.Width, o.Height)
}

// Right returns the x-coordinate of the obstacle's right edge.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

// Obstacles is the live obstacle collection in spawn order.
type Obstacles struct {
	items  []Obstacle
	nextID int
}

// Add appends an obstacle, assigning it the next ID.
func (c *Obstacles) Add(o Obstacle) Obstacle {
	c.nextID++
	o.ID = c.nextID
	c.items = append(c.items, o)
	return o
}

// Advance moves every obstacle horizontally by dx.
func (c *Obstacles) Advance(dx float64) {
	for i := range c.items {
		c.items[i].X += dx
	}
}

// Sweep removes obstacles whose right edge has crossed the left boundary
// of the field (x = 0). Survivors keep their relative order.
// Returns the number removed.
func (c *Obstacles) Sweep() int {
	kept := c.items[:0]
	for _, o := range c.items {
		if o.Right() >= 0 {
			kept = append(kept, o)
		}
	}
	removed := len(c.items) - len(kept)
	clear(c.items[len(kept):])
	c.items = kept
	return removed
}

// Clear removes every obstacle. IDs keep increasing across clears.
func (c *Obstacles) Clear() {
	clear(c.items)
	c.items = c.items[:0]
}

// All returns the live obstacles. The slice must not be retained across ticks.
func (c *Obstacles) All() []Obstacle {
	return c.items
}

// Len returns the number of live obstacles.
func (c *Obstacles) Len() int {
	return len(c.items)
}
