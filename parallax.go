package cadence

import "math"

type parallaxLayer struct {
	target     Target
	strength   float64
	smoothness float64
	originX    float64
	originY    float64
}

// Parallax moves registered layers against the pointer and the directional
// keys. It is not a tween: every Update each layer covers a fixed fraction
// of the remaining distance to its goal, forever.
type Parallax struct {
	input    InputState
	viewport Rect
	keyX     float64
	keyY     float64

	layers  []parallaxLayer
	offsetX float64
	offsetY float64
}

// NewParallax creates a Parallax reading input over the given viewport. Key
// strengths default to the viewport half extents.
func NewParallax(input InputState, viewport Rect) *Parallax {
	if input == nil {
		panic("cadence: NewParallax with nil input")
	}
	return &Parallax{
		input:    input,
		viewport: viewport,
		keyX:     viewport.Width / 2,
		keyY:     viewport.Height / 2,
	}
}

// SetKeyStrength sets how far a held arrow key pushes the offset on each
// axis.
func (p *Parallax) SetKeyStrength(x, y float64) {
	p.keyX, p.keyY = x, y
}

// AddLayer registers target with its current position as origin. strength
// scales the offset (0.02 is subtle); smoothness is the fraction of the
// remaining distance covered each frame, in (0, 1].
func (p *Parallax) AddLayer(target Target, strength, smoothness float64) {
	mustTarget(target, "Parallax.AddLayer")
	x, y := target.Position()
	p.layers = append(p.layers, parallaxLayer{
		target:     target,
		strength:   strength,
		smoothness: smoothness,
		originX:    x,
		originY:    y,
	})
}

// AddCenteredLayer centres a width x height target in the viewport, then
// registers it as AddLayer does.
func (p *Parallax) AddCenteredLayer(target Target, width, height, strength, smoothness float64) {
	mustTarget(target, "Parallax.AddCenteredLayer")
	cx, cy := p.viewport.Center()
	target.SetPosition(cx-width/2, cy-height/2)
	p.AddLayer(target, strength, smoothness)
}

// RemoveLayer unregisters target. The target keeps its current position.
func (p *Parallax) RemoveLayer(target Target) bool {
	for i := range p.layers {
		if p.layers[i].target == target {
			p.layers = append(p.layers[:i], p.layers[i+1:]...)
			return true
		}
	}
	return false
}

// Layers returns the number of registered layers.
func (p *Parallax) Layers() int {
	return len(p.layers)
}

// Offset returns the clamped offset computed by the last Update.
func (p *Parallax) Offset() (x, y float64) {
	return p.offsetX, p.offsetY
}

// Update recomputes the offset and moves every layer toward
// origin - offset*strength.
func (p *Parallax) Update() {
	cx, cy := p.viewport.Center()
	px, py := p.input.Pointer()
	ox := px - cx
	oy := py - cy

	if p.input.KeyPressed(KeyLeft) {
		ox -= p.keyX
	}
	if p.input.KeyPressed(KeyRight) {
		ox += p.keyX
	}
	if p.input.KeyPressed(KeyUp) {
		oy -= p.keyY
	}
	if p.input.KeyPressed(KeyDown) {
		oy += p.keyY
	}

	hw, hh := p.viewport.Width/2, p.viewport.Height/2
	p.offsetX = clamp(ox, -hw, hw)
	p.offsetY = clamp(oy, -hh, hh)

	for i := range p.layers {
		l := &p.layers[i]
		goalX := l.originX - p.offsetX*l.strength
		goalY := l.originY - p.offsetY*l.strength
		x, y := l.target.Position()
		l.target.SetPosition(
			x+(goalX-x)*l.smoothness,
			y+(goalY-y)*l.smoothness,
		)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Scroller auto-scrolls a repeating background at a constant speed. The
// offset wraps to the texture size so it stays small over long runs.
type Scroller struct {
	SpeedX, SpeedY float64

	width, height float64
	x, y          float64
}

// NewScroller creates a scroller for a width x height repeating texture.
func NewScroller(width, height, speedX, speedY float64) *Scroller {
	return &Scroller{SpeedX: speedX, SpeedY: speedY, width: width, height: height}
}

// Update advances the scroll offset by speed*dt.
func (s *Scroller) Update(dt float64) {
	s.x = wrap(s.x+s.SpeedX*dt, s.width)
	s.y = wrap(s.y+s.SpeedY*dt, s.height)
}

// Offset returns the scroll offset, in [0, width) and [0, height).
func (s *Scroller) Offset() (x, y float64) {
	return s.x, s.y
}

// Size returns the texture size the offset wraps to.
func (s *Scroller) Size() (w, h float64) {
	return s.width, s.height
}

func wrap(v, size float64) float64 {
	if size <= 0 {
		return v
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	return v
}
