// Package ebitenhost runs a cadence.Director inside an Ebitengine game loop.
package ebitenhost

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/cadence"
)

// DefaultScreenshotDir is used when RunConfig.ScreenshotDir is empty.
const DefaultScreenshotDir = "screenshots"

// RunConfig configures the window and the draw pass.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	TPS        int
	ShowFPS    bool
	ClearColor color.Color

	// ScreenshotDir receives the PNGs queued with Game.Screenshot.
	ScreenshotDir string

	// Punch, when set, brightens every sprite by 1+Punch.Value().
	Punch *cadence.Impulse
}

// RunConfigFrom derives a RunConfig from a cadence.Config.
func RunConfigFrom(cfg cadence.Config) RunConfig {
	return RunConfig{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		TPS:        cfg.TPS,
		ShowFPS:    cfg.Debug,
		ClearColor: color.Black,
	}
}

// Background is a repeating image tiled across the screen, offset by a
// Scroller. Backgrounds draw in screen space, under every sprite.
type Background struct {
	Image    *ebiten.Image
	Scroller *cadence.Scroller
	Tint     ebiten.ColorScale
}

// Game implements ebiten.Game for a Director.
type Game struct {
	d   *cadence.Director
	cfg RunConfig

	images      map[*cadence.Sprite][]*ebiten.Image
	backgrounds []*Background
	op          ebiten.DrawImageOptions
	fps         *fpsOverlay
	shots       []string

	// UpdateFunc, when set, runs every tick before the Director updates.
	// Returning an error stops the game.
	UpdateFunc func() error
}

// NewGame creates a game that drives d.
func NewGame(d *cadence.Director, cfg RunConfig) *Game {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		c := d.Config()
		cfg.Width, cfg.Height = c.Width, c.Height
	}
	if cfg.TPS <= 0 {
		cfg.TPS = ebiten.DefaultTPS
	}
	if cfg.ClearColor == nil {
		cfg.ClearColor = color.Black
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = DefaultScreenshotDir
	}
	g := &Game{
		d:      d,
		cfg:    cfg,
		images: make(map[*cadence.Sprite][]*ebiten.Image),
	}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	return g
}

// Bind sets the images drawn for s, one per animation frame.
func (g *Game) Bind(s *cadence.Sprite, frames ...*ebiten.Image) {
	g.images[s] = frames
}

// AddBackground adds a repeating background. Its Scroller is updated by the
// Director.
func (g *Game) AddBackground(b *Background) {
	if b.Scroller != nil {
		g.d.AddScroller(b.Scroller)
	}
	g.backgrounds = append(g.backgrounds, b)
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.UpdateFunc != nil {
		if err := g.UpdateFunc(); err != nil {
			return err
		}
	}
	dt := 1 / float64(ebiten.TPS())
	g.d.Update(dt)
	if g.fps != nil {
		g.fps.update(dt, g.d.Time())
	}
	return nil
}

// Draw implements ebiten.Game. The camera effects are applied for the
// duration of the pass.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.ClearColor)

	g.d.Apply()
	defer g.d.Reset()

	for _, b := range g.backgrounds {
		g.drawBackground(screen, b)
	}

	view := geoM(g.d.Camera().ViewMatrix())
	punch := float32(1)
	if g.cfg.Punch != nil {
		punch += float32(g.cfg.Punch.Value())
	}

	op := &g.op
	for _, s := range g.d.Sprites() {
		if !s.Visible || s.Opacity() <= 0 {
			continue
		}
		frames := g.images[s]
		if len(frames) == 0 {
			continue
		}
		img := frames[s.Frame()%len(frames)]

		op.GeoM.Reset()
		w, h := s.Size()
		iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
		if iw > 0 && ih > 0 {
			op.GeoM.Scale(w/float64(iw), h/float64(ih))
		}
		op.GeoM.Concat(geoM(s.Transform()))
		op.GeoM.Concat(view)

		op.ColorScale.Reset()
		op.ColorScale.Scale(punch, punch, punch, 1)
		op.ColorScale.ScaleAlpha(float32(s.Opacity()))
		screen.DrawImage(img, op)
	}

	if g.fps != nil {
		g.fps.draw(screen)
	}
	g.flushScreenshots(screen)
}

func (g *Game) drawBackground(screen *ebiten.Image, b *Background) {
	if b.Image == nil {
		return
	}
	bw, bh := float64(b.Image.Bounds().Dx()), float64(b.Image.Bounds().Dy())
	if bw <= 0 || bh <= 0 {
		return
	}
	var ox, oy float64
	if b.Scroller != nil {
		ox, oy = b.Scroller.Offset()
	}
	sw, sh := float64(g.cfg.Width), float64(g.cfg.Height)

	op := &g.op
	for y := -tileStart(oy, bh); y < sh; y += bh {
		for x := -tileStart(ox, bw); x < sw; x += bw {
			op.GeoM.Reset()
			op.GeoM.Translate(x, y)
			op.ColorScale = b.Tint
			screen.DrawImage(b.Image, op)
		}
	}
}

// tileStart maps a scroll offset to the first tile's distance left of (or
// above) the screen edge, in [0, size).
func tileStart(off, size float64) float64 {
	for off >= size {
		off -= size
	}
	for off < 0 {
		off += size
	}
	return off
}

// Layout implements ebiten.Game.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens the window and blocks until the game exits.
func (g *Game) Run() error {
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetTPS(g.cfg.TPS)
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}

// Run creates a Game for d and runs it.
func Run(d *cadence.Director, cfg RunConfig) error {
	return NewGame(d, cfg).Run()
}

// geoM converts a cadence affine matrix [a, b, c, d, tx, ty] to an
// ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}
