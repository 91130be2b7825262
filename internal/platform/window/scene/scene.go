// Package scene turns a game View into flat drawing primitives and physical
// input into game actions. It knows nothing about the graphics library, so
// the window frontend stays a thin loop and all layout is testable.
package scene

import (
	"fmt"
	"image/color"
	"math"

	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/games/dino"
)

// Palette (dark mode)
var (
	Background = color.RGBA{0x20, 0x21, 0x24, 0xff}
	Ink        = color.RGBA{0xac, 0xac, 0xac, 0xff}
	Faint      = color.RGBA{0x3c, 0x3d, 0x41, 0xff}
	Danger     = color.RGBA{0xe5, 0x53, 0x4b, 0xff}
)

// GroundDepth is the strip drawn below the ground plane.
const GroundDepth = 24

// Debug font metrics.
const (
	charWidth  = 6
	lineHeight = 16
)

// Rect is a filled rectangle in world pixels.
type Rect struct {
	X, Y, W, H float32
	Color      color.RGBA
}

// Label is a line of text anchored at its top-left corner.
type Label struct {
	Text string
	X, Y int
}

// Frame is everything drawn for one View, back to front.
type Frame struct {
	Rects  []Rect
	Labels []Label
}

func (f *Frame) fill(x, y, w, h float64, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	f.Rects = append(f.Rects, Rect{X: float32(x), Y: float32(y), W: float32(w), H: float32(h), Color: c})
}

func (f *Frame) fillBox(b core.Box, c color.RGBA) {
	f.fill(b.X, b.Y, b.W, b.H, c)
}

func (f *Frame) text(s string, x, y int) {
	f.Labels = append(f.Labels, Label{Text: s, X: x, Y: y})
}

func (f *Frame) textCentered(s string, cx float64, y int) {
	f.text(s, int(cx)-textWidth(s)/2, y)
}

func textWidth(s string) int {
	return len([]rune(s)) * charWidth
}

// Size returns the logical screen size for a View.
func Size(v dino.View) (int, int) {
	return int(v.FieldW), int(v.FieldH) + GroundDepth
}

// Build lays out a View.
func Build(v dino.View) Frame {
	var f Frame
	if v.FieldW <= 0 || v.FieldH <= 0 {
		return f
	}

	if v.CloudsVisible {
		for _, c := range v.Clouds {
			f.fillBox(c, Faint)
		}
	}
	buildGround(&f, v)
	for _, o := range v.Obstacles {
		buildObstacle(&f, o)
	}
	buildPlayer(&f, v.Player)
	buildHUD(&f, v)
	return f
}

func buildGround(f *Frame, v dino.View) {
	w := math.Min(v.GroundWidth, v.FieldW)
	f.fill(0, v.FieldH-3, w, 2, Ink)

	if v.GroundTile <= 0 {
		return
	}
	// Pebbles scroll with the ground offset.
	start := -math.Mod(v.GroundOffset, v.GroundTile)
	for x := start; x < w; x += v.GroundTile {
		for _, p := range [...]struct{ dx, dy, w float64 }{{0.1, 4, 6}, {0.45, 9, 3}, {0.8, 5, 4}} {
			px := x + p.dx*v.GroundTile
			if px >= 0 && px+p.w <= w {
				f.fill(px, v.FieldH+p.dy, p.w, 2, Ink)
			}
		}
	}
}

func buildObstacle(f *Frame, o dino.ObstacleView) {
	b := o.Box
	if o.Kind == dino.KindFlying {
		body := core.NewBox(b.X, b.Y+b.H/3, b.W, b.H/3)
		f.fillBox(body, Ink)
		wing := core.NewBox(b.X+b.W/3, b.Y, b.W/3, b.H/3)
		if o.Frame == 1 {
			wing.Y = b.Y + 2*b.H/3
		}
		f.fillBox(wing, Ink)
		return
	}

	// Cactus: a trunk per stem, joined by arms.
	stems := max(o.Variant, 1)
	stemW := b.W / float64(stems)
	for i := range stems {
		x := b.X + float64(i)*stemW
		f.fill(x+stemW*0.3, b.Y, stemW*0.4, b.H, Ink)
	}
	f.fill(b.X, b.Y+b.H*0.35, b.W, b.H*0.15, Ink)
}

func buildPlayer(f *Frame, p dino.PlayerView) {
	s := p.Sprite
	top := s.Y
	if p.Pose == dino.PoseDuck {
		top = p.Hitbox.Y
	}
	legH := math.Min(16, (s.Bottom()-top)/4)
	bodyBottom := s.Bottom() - legH

	// Head and body
	f.fill(s.X+s.W*0.5, top, s.W*0.5, (bodyBottom-top)*0.4, Ink)
	f.fill(s.X, top+(bodyBottom-top)*0.35, s.W*0.75, (bodyBottom-top)*0.65, Ink)

	// Eye
	eye := Background
	if p.Pose == dino.PoseDead {
		eye = Danger
	}
	f.fill(s.Right()-s.W*0.2, top+6, 6, 6, eye)

	// Legs alternate on the run cycle.
	left, right := legH, legH
	if p.Pose == dino.PoseRun || p.Pose == dino.PoseDuck {
		if p.Frame%2 == 0 {
			left = legH / 2
		} else {
			right = legH / 2
		}
	}
	f.fill(s.X+s.W*0.2, bodyBottom, 8, left, Ink)
	f.fill(s.X+s.W*0.5, bodyBottom, 8, right, Ink)
}

func buildHUD(f *Frame, v dino.View) {
	scoreX := int(v.FieldW) - textWidth(v.ScoreText) - 12
	if v.ScoreVisible && v.ScoreAlpha >= 0.5 {
		f.text(v.ScoreText, scoreX, 8)
	}
	if v.HighScoreVisible {
		f.text(v.HighScoreText, scoreX-textWidth(v.HighScoreText)-18, 8)
	}
	if v.Mode == dino.ModeRunning && v.SpeedModifier > 1 {
		f.text(fmt.Sprintf("speed x%.1f", v.SpeedModifier), 12, 8)
	}

	switch v.Mode {
	case dino.ModeIntro:
		f.textCentered("Press SPACE or tap to start", v.FieldW/2, int(v.FieldH/3))
	case dino.ModeEnded:
		f.textCentered("G A M E   O V E R", v.FieldW/2, int(v.FieldH/2)-lineHeight)
	}

	if v.GameOverVisible {
		r := v.RestartBox
		f.fillBox(r, Ink)
		f.fill(r.X+4, r.Y+4, r.W-8, r.H-8, Background)
		f.textCentered("R", r.X+r.W/2, int(r.Y+r.H/2)-lineHeight/2)
	}
}
