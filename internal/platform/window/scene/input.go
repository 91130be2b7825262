package scene

import (
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/games/dino"
)

// Key identifies a physical key independently of the graphics library.
type Key int

const (
	KeySpace Key = iota
	KeyUp
	KeyW
	KeyDown
	KeyS
	KeyR
	KeyEnter
	KeyM
	KeyQ
	KeyEscape
)

// Edges reports what changed on the input devices since the last frame.
type Edges interface {
	JustPressed(k Key) bool
	JustReleased(k Key) bool
	// JustTapped reports a mouse click or touch in logical screen pixels.
	JustTapped() (x, y float64, ok bool)
}

// Bindings maps keys to game actions.
type Bindings map[Key]core.Action

// DefaultBindings returns the desktop key layout.
func DefaultBindings() Bindings {
	return Bindings{
		KeySpace:  core.ActionJumpPrimary,
		KeyUp:     core.ActionJumpSecondary,
		KeyW:      core.ActionJumpSecondary,
		KeyDown:   core.ActionDuck,
		KeyS:      core.ActionDuck,
		KeyR:      core.ActionRestart,
		KeyEnter:  core.ActionRestart,
		KeyQ:      core.ActionQuit,
		KeyEscape: core.ActionQuit,
	}
}

// Input collects this frame's edges into an input frame. A tap on the
// restart control restarts; a tap anywhere else jumps.
func Input(e Edges, b Bindings, v dino.View) core.InputFrame {
	in := core.NewInputFrame()
	for k, a := range b {
		if e.JustPressed(k) {
			in.Press(a)
		}
		if e.JustReleased(k) {
			in.Release(a)
		}
	}

	if x, y, ok := e.JustTapped(); ok {
		if v.GameOverVisible && contains(v.RestartBox, x, y) {
			in.Press(core.ActionRestart)
		} else if !v.GameOverVisible {
			in.Press(core.ActionJumpPrimary)
		}
	}
	return in
}

func contains(b core.Box, x, y float64) bool {
	return x >= b.X && x < b.Right() && y >= b.Y && y < b.Bottom()
}
