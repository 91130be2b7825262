package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/dino-runner/internal/platform/window/scene"
)

// ebitenEdges reads input edges from ebiten's per-tick input state.
type ebitenEdges struct {
	touches []ebiten.TouchID
}

// convertKey maps a scene key to an ebiten key.
func convertKey(k scene.Key) ebiten.Key {
	switch k {
	case scene.KeySpace:
		return ebiten.KeySpace
	case scene.KeyUp:
		return ebiten.KeyArrowUp
	case scene.KeyW:
		return ebiten.KeyW
	case scene.KeyDown:
		return ebiten.KeyArrowDown
	case scene.KeyS:
		return ebiten.KeyS
	case scene.KeyR:
		return ebiten.KeyR
	case scene.KeyEnter:
		return ebiten.KeyEnter
	case scene.KeyM:
		return ebiten.KeyM
	case scene.KeyQ:
		return ebiten.KeyQ
	case scene.KeyEscape:
		return ebiten.KeyEscape
	default:
		return ebiten.KeyMax
	}
}

func (e *ebitenEdges) JustPressed(k scene.Key) bool {
	return inpututil.IsKeyJustPressed(convertKey(k))
}

func (e *ebitenEdges) JustReleased(k scene.Key) bool {
	return inpututil.IsKeyJustReleased(convertKey(k))
}

func (e *ebitenEdges) JustTapped() (float64, float64, bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return float64(x), float64(y), true
	}
	e.touches = inpututil.AppendJustPressedTouchIDs(e.touches[:0])
	if len(e.touches) > 0 {
		x, y := ebiten.TouchPosition(e.touches[0])
		return float64(x), float64(y), true
	}
	return 0, 0, false
}
