package ebitenhost

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often the overlay text is redrawn, in seconds.
const fpsRefresh = 0.5

// fpsOverlay shows FPS, TPS, and the playback clock in the top-left corner.
// The text is re-rendered into its own image at most every fpsRefresh
// seconds so it stays readable.
type fpsOverlay struct {
	img   *ebiten.Image
	since float64
	text  string
}

func newFPSOverlay() *fpsOverlay {
	// 120x48 fits three lines of debug font.
	return &fpsOverlay{img: ebiten.NewImage(120, 48), since: fpsRefresh}
}

// update refreshes the text when due.
func (o *fpsOverlay) update(dt, clock float64) {
	o.since += dt
	if o.since < fpsRefresh {
		return
	}
	o.since = 0
	o.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nt: %.2fs", ebiten.ActualFPS(), ebiten.ActualTPS(), clock)
	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, o.text)
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}
