package dino

import (
	"fmt"
	"math"

	"github.com/vovakirdan/dino-runner/internal/core"
)

// Visual characters for rendering
const (
	DinoBody   = '█'
	DinoEye    = 'o'
	DeadEye    = 'x'
	DinoLeg1   = '╱'
	DinoLeg2   = '╲'
	CactusChar = '▓'
	BirdBody   = '▼'
	WingUp     = '^'
	WingDown   = 'v'
	CloudChar  = '~'
	GroundChar = '═'
	GroundBump = '╤'
)

// StartHint is shown while the session waits for the first jump.
const StartHint = "SPACE / ↑ to start"

// projection maps world pixels to screen cells. Row 0 is the HUD and the
// last row is the ground line; the field fills the rows in between.
type projection struct {
	cols, rows     float64
	fieldW, fieldH float64
	ground         int
}

func newProjection(dst *core.Screen, v View) projection {
	return projection{
		cols:   float64(dst.Width()),
		rows:   float64(max(dst.Height()-2, 1)),
		fieldW: v.FieldW,
		fieldH: v.FieldH,
		ground: dst.Height() - 1,
	}
}

func (p projection) x(wx float64) float64 {
	return wx * p.cols / p.fieldW
}

func (p projection) y(wy float64) float64 {
	return wy * p.rows / p.fieldH
}

// rect returns the cells covered by b, at least one cell in each direction.
func (p projection) rect(b core.Box) core.Rect {
	x0 := int(math.Floor(p.x(b.X)))
	y0 := 1 + int(math.Floor(p.y(b.Y)))
	x1 := max(int(math.Ceil(p.x(b.Right()))), x0+1)
	y1 := max(1+int(math.Ceil(p.y(b.Bottom()))), y0+1)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Render draws a view into the screen buffer.
func Render(dst *core.Screen, v View) {
	dst.Clear()
	if dst.Width() <= 0 || dst.Height() < 3 || v.FieldW <= 0 || v.FieldH <= 0 {
		return
	}
	p := newProjection(dst, v)

	if v.CloudsVisible {
		for _, c := range v.Clouds {
			r := p.rect(c)
			for x := r.X; x < r.Right(); x++ {
				dst.SetColored(x, r.Y, CloudChar, core.ColorGray)
			}
		}
	}

	drawGround(dst, p, v)

	for _, o := range v.Obstacles {
		drawObstacle(dst, p, o)
	}

	drawPlayer(dst, p, v.Player)
	drawHUD(dst, v)

	switch v.Mode {
	case ModeIntro:
		dst.DrawTextCentered(dst.Height()/3, StartHint)
	case ModeEnded:
		drawCenteredMessage(dst, "G A M E   O V E R", "Press R to restart")
	}
}

func drawGround(dst *core.Screen, p projection, v View) {
	cols := min(int(math.Ceil(p.x(v.GroundWidth))), dst.Width())
	for c := 0; c < cols; c++ {
		ch := GroundChar
		if v.GroundTile > 0 {
			x := (float64(c)+0.5)*p.fieldW/p.cols + v.GroundOffset
			if math.Mod(x, v.GroundTile) < v.GroundTile/8 {
				ch = GroundBump
			}
		}
		dst.SetColored(c, p.ground, ch, core.ColorYellow)
	}
}

func drawObstacle(dst *core.Screen, p projection, o ObstacleView) {
	r := p.rect(o.Box)
	if o.Kind == KindGround {
		dst.DrawRectColored(r, CactusChar, core.ColorGreen)
		return
	}

	dst.DrawRectColored(core.NewRect(r.X, r.Bottom()-1, r.W, 1), BirdBody, core.ColorOrange)
	if r.H < 2 {
		return
	}
	wing := WingUp
	if o.Frame == 1 {
		wing = WingDown
	}
	for x := r.X; x < r.Right(); x++ {
		dst.SetColored(x, r.Bottom()-2, wing, core.ColorOrange)
	}
}

func drawPlayer(dst *core.Screen, p projection, pv PlayerView) {
	box := pv.Sprite
	color := core.ColorBrightWhite
	if pv.Pose == PoseDead {
		color = core.ColorRed
	}
	if pv.Pose == PoseDuck {
		box = pv.Hitbox
		box.X = pv.Sprite.X
		box.W = pv.Sprite.W
	}

	r := p.rect(box)
	dst.DrawRectColored(r, DinoBody, color)

	eye := DinoEye
	if pv.Pose == PoseDead {
		eye = DeadEye
	}
	dst.SetColored(r.Right()-1, r.Y, eye, color)

	if r.H < 2 {
		return
	}
	legs := r.Bottom() - 1
	for x := r.X; x < r.Right(); x++ {
		dst.Set(x, legs, ' ')
	}
	switch pv.Pose {
	case PoseRun, PoseDuck:
		left, right := DinoLeg1, ' '
		if pv.Frame == 1 {
			left, right = ' ', DinoLeg2
		}
		dst.SetColored(r.X, legs, left, color)
		dst.SetColored(r.Right()-1, legs, right, color)
	default:
		dst.SetColored(r.X, legs, DinoLeg1, color)
		dst.SetColored(r.Right()-1, legs, DinoLeg2, color)
	}
}

func drawHUD(dst *core.Screen, v View) {
	if v.ScoreVisible && v.ScoreAlpha >= 0.5 {
		dst.DrawTextColored(dst.Width()-len(v.ScoreText)-1, 0, v.ScoreText, core.ColorWhite)
	}
	if v.HighScoreVisible {
		dst.DrawTextColored(dst.Width()-len(v.ScoreText)-len(v.HighScoreText)-3, 0, v.HighScoreText, core.ColorGray)
	}
	if v.Mode == ModeRunning && v.SpeedModifier > 1 {
		dst.DrawTextColored(1, 0, fmt.Sprintf("x%.1f", v.SpeedModifier), core.ColorCyan)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorRed)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
