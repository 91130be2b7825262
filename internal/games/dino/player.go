package dino

import (
	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// Pose is the visual state of the player.
type Pose int

const (
	PoseIdle Pose = iota
	PoseRun
	PoseDuck
	PoseJump
	PoseDead
)

var poseNames = [...]string{"idle", "run", "duck", "jump", "dead"}

// String returns the pose name.
func (p Pose) String() string {
	if int(p) < len(poseNames) {
		return poseNames[p]
	}
	return "unknown"
}

// Player is the controllable runner. Bottom is the sprite base in world
// pixels; the ground plane is groundY.
type Player struct {
	cfg         config.DinoPlayer
	gravity     float64
	jumpImpulse float64
	groundY     float64

	X      float64
	Bottom float64
	VelX   float64
	VelY   float64

	ducked     bool
	airborne   bool
	pose       Pose
	frame      int
	frameTimer float64
}

// NewPlayer creates an idle player standing on the ground.
func NewPlayer(cfg config.DinoConfig) *Player {
	return &Player{
		cfg:         cfg.Player,
		gravity:     cfg.Physics.Gravity,
		jumpImpulse: cfg.Physics.JumpImpulse,
		groundY:     cfg.Field.Height,
		X:           cfg.Player.StartX,
		Bottom:      cfg.Field.Height,
	}
}

// Grounded reports whether the player rests on the ground with no vertical motion.
func (p *Player) Grounded() bool {
	return p.Bottom >= p.groundY && p.VelY == 0
}

// Airborne reports whether the player moved vertically during the last integration.
func (p *Player) Airborne() bool {
	return p.airborne
}

// Ducked reports whether the reduced hitbox is active.
func (p *Player) Ducked() bool {
	return p.ducked
}

// Pose returns the current pose.
func (p *Player) Pose() Pose {
	return p.pose
}

// Frame returns the current animation frame index.
func (p *Player) Frame() int {
	return p.frame
}

// Hitbox returns the collision box. Ducking shortens and shifts it; the
// base stays on the sprite base.
func (p *Player) Hitbox() core.Box {
	if p.ducked {
		return core.BoxFromBottom(p.X+p.cfg.DuckOffsetX, p.Bottom, p.cfg.HitboxWidth, p.cfg.DuckHeight)
	}
	return core.BoxFromBottom(p.X+p.cfg.HitboxOffsetX, p.Bottom, p.cfg.HitboxWidth, p.cfg.HitboxHeight)
}

// Sprite returns the drawn extent of the player.
func (p *Player) Sprite() core.Box {
	w := p.cfg.SpriteWidth
	if p.pose == PoseDuck {
		w = p.cfg.DuckSpriteWidth
	}
	return core.BoxFromBottom(p.X, p.Bottom, w, p.cfg.SpriteHeight)
}

// Integrate applies gravity and velocity for one tick and clamps the
// player to the ground.
func (p *Player) Integrate(deltaMs float64) {
	dt := deltaMs / 1000
	prev := p.Bottom

	p.VelY += p.gravity * dt
	p.Bottom += p.VelY * dt
	if p.Bottom >= p.groundY {
		p.Bottom = p.groundY
		p.VelY = 0
	}
	p.X += p.VelX * dt

	p.airborne = p.Bottom != prev
}

// HandleInput applies jump and duck edges. Both are ignored unless the
// player is grounded at the start of the call. Returns true if a jump started.
func (p *Player) HandleInput(in core.InputFrame) bool {
	if !p.Grounded() {
		return false
	}

	jumped := false
	if in.JumpPressed() {
		p.VelY = p.jumpImpulse
		jumped = true
	}
	if in.Pressed(core.ActionDuck) {
		p.ducked = true
	}
	if in.Released(core.ActionDuck) {
		p.ducked = false
	}
	return jumped
}

// SelectPose picks the running pose for this tick: the first frame of the
// run cycle while airborne, otherwise the animated run or duck cycle.
func (p *Player) SelectPose(deltaMs float64) {
	if p.airborne {
		p.setPose(PoseJump)
		return
	}
	p.Run(deltaMs)
}

// Run plays the run or duck cycle regardless of vertical motion.
func (p *Player) Run(deltaMs float64) {
	if p.ducked {
		p.setPose(PoseDuck)
	} else {
		p.setPose(PoseRun)
	}

	p.frameTimer += deltaMs
	if p.frameTimer >= p.cfg.RunFrameMs {
		p.frameTimer -= p.cfg.RunFrameMs
		p.frame = (p.frame + 1) % 2
	}
}

// Die freezes the player in the dead pose.
func (p *Player) Die() {
	p.pose = PoseDead
}

// Revive returns the player to a standing run on the ground.
func (p *Player) Revive() {
	p.VelY = 0
	p.VelX = 0
	p.Bottom = p.groundY
	p.ducked = false
	p.airborne = false
	p.setPose(PoseRun)
}

func (p *Player) setPose(pose Pose) {
	if p.pose == pose {
		return
	}
	p.pose = pose
	p.frame = 0
	p.frameTimer = 0
}
