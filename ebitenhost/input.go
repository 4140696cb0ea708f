package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/cadence"
)

var keyMap = map[cadence.Key]ebiten.Key{
	cadence.KeyLeft:  ebiten.KeyArrowLeft,
	cadence.KeyRight: ebiten.KeyArrowRight,
	cadence.KeyUp:    ebiten.KeyArrowUp,
	cadence.KeyDown:  ebiten.KeyArrowDown,
}

// Input reads the mouse cursor and arrow keys. It implements
// cadence.InputState.
type Input struct{}

// Pointer returns the cursor position in screen pixels.
func (Input) Pointer() (x, y float64) {
	cx, cy := ebiten.CursorPosition()
	return float64(cx), float64(cy)
}

// KeyPressed reports whether the arrow key mapped to k is held.
func (Input) KeyPressed(k cadence.Key) bool {
	ek, ok := keyMap[k]
	return ok && ebiten.IsKeyPressed(ek)
}
