package dino

import (
	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// TriggerPhase tracks the two-stage start trigger.
type TriggerPhase int

const (
	// TriggerArmed sits at the top of the field and waits for a jump.
	TriggerArmed TriggerPhase = iota
	// TriggerPrimed sits on the ground and waits for the landing.
	TriggerPrimed
	// TriggerDisabled no longer reacts to the player.
	TriggerDisabled
)

// StartTrigger is the invisible zone that turns the first jump into a run.
type StartTrigger struct {
	phase  TriggerPhase
	width  float64
	height float64
	fieldH float64
}

// NewStartTrigger creates an armed trigger in the top-left corner.
func NewStartTrigger(cfg config.DinoConfig) StartTrigger {
	return StartTrigger{
		width:  cfg.Trigger.Width,
		height: cfg.Trigger.Height,
		fieldH: cfg.Field.Height,
	}
}

// Phase returns the current trigger phase.
func (t StartTrigger) Phase() TriggerPhase {
	return t.phase
}

// Box returns the trigger zone in world pixels.
func (t StartTrigger) Box() core.Box {
	if t.phase == TriggerArmed {
		return core.NewBox(0, 0, t.width, t.height)
	}
	return core.BoxFromBottom(0, t.fieldH, t.width, t.height)
}

// Check tests the player hitbox against the trigger. The first overlap moves
// the trigger to the ground; the second disables it and returns true.
func (t *StartTrigger) Check(hitbox core.Box) bool {
	if t.phase == TriggerDisabled || !hitbox.Intersects(t.Box()) {
		return false
	}
	if t.phase == TriggerArmed {
		t.phase = TriggerPrimed
		return false
	}
	t.phase = TriggerDisabled
	return true
}

// RollOut widens the ground from the sprite width to the field width in
// fixed steps while the player walks in.
type RollOut struct {
	stepMs   float64
	growth   float64
	velocity float64
	fieldW   float64
	acc      float64
	steps    int
	done     bool
}

// NewRollOut creates a rollout for the given field.
func NewRollOut(cfg config.DinoConfig) RollOut {
	return RollOut{
		stepMs:   1000 / float64(cfg.RollOut.StepsPerSecond),
		growth:   cfg.RollOut.GroundGrowth,
		velocity: cfg.RollOut.PlayerVelocity,
		fieldW:   cfg.Field.Width,
	}
}

// Steps returns how many steps have run.
func (r *RollOut) Steps() int {
	return r.steps
}

// Done reports whether the ground reached the field width.
func (r *RollOut) Done() bool {
	return r.done
}

// Advance runs every step that fits in the accumulated time. Each step grows
// the ground and walks the player right; the step that reaches the field
// width clamps the ground and stops the player. Returns true once done.
func (r *RollOut) Advance(deltaMs float64, ground *Ground, player *Player) bool {
	if r.done {
		return true
	}

	r.acc += deltaMs
	for r.acc >= r.stepMs && !r.done {
		r.acc -= r.stepMs
		r.steps++

		ground.Width += r.growth
		player.VelX = r.velocity
		if ground.Width >= r.fieldW {
			ground.Width = r.fieldW
			player.VelX = 0
			r.done = true
		}
	}
	return r.done
}
