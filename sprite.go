package cadence

import "fmt"

// Sprite is a plain Target: a named rectangle with position, scale,
// rotation, and opacity, plus optional frame cycling. Position is the
// top-left corner of the unscaled rectangle; scale and rotation pivot on
// its center. Hosts bind images to sprites and draw them with Transform.
type Sprite struct {
	Name    string
	Visible bool

	// UserData is free for the host or application.
	UserData any

	x, y          float64
	width, height float64
	scaleX        float64
	scaleY        float64
	rotation      float64
	alpha         float64

	frames    int
	frameTime float64
	frame     int
	timer     float64

	disposed bool
}

// NewSprite creates a visible, opaque, unscaled width x height sprite at
// (0, 0).
func NewSprite(name string, width, height float64) *Sprite {
	return &Sprite{
		Name:    name,
		Visible: true,
		width:   width,
		height:  height,
		scaleX:  1,
		scaleY:  1,
		alpha:   1,
	}
}

// Position implements Target.
func (s *Sprite) Position() (x, y float64) { return s.x, s.y }

// SetPosition implements Target.
func (s *Sprite) SetPosition(x, y float64) { s.x, s.y = x, y }

// Opacity implements Target.
func (s *Sprite) Opacity() float64 { return s.alpha }

// SetOpacity implements Target.
func (s *Sprite) SetOpacity(a float64) { s.alpha = a }

// Scale implements Target.
func (s *Sprite) Scale() (sx, sy float64) { return s.scaleX, s.scaleY }

// SetScale implements Target.
func (s *Sprite) SetScale(sx, sy float64) { s.scaleX, s.scaleY = sx, sy }

// Rotation implements Target.
func (s *Sprite) Rotation() float64 { return s.rotation }

// SetRotation implements Target.
func (s *Sprite) SetRotation(r float64) { s.rotation = r }

// Size returns the unscaled size.
func (s *Sprite) Size() (w, h float64) { return s.width, s.height }

// SetSize changes the unscaled size.
func (s *Sprite) SetSize(w, h float64) { s.width, s.height = w, h }

// SetFrames enables frame cycling over n frames, advancing one frame every
// frameTime seconds. n <= 1 or frameTime <= 0 disables cycling.
func (s *Sprite) SetFrames(n int, frameTime float64) {
	s.frames = n
	s.frameTime = frameTime
	s.frame = 0
	s.timer = 0
}

// Frame returns the index of the current frame.
func (s *Sprite) Frame() int { return s.frame }

// update advances frame cycling.
func (s *Sprite) update(dt float64) {
	if s.frames <= 1 || s.frameTime <= 0 {
		return
	}
	s.timer += dt
	if s.timer > s.frameTime {
		s.timer = 0
		s.frame++
		if s.frame >= s.frames {
			s.frame = 0
		}
	}
}

// Transform returns the sprite's local affine matrix [a, b, c, d, tx, ty],
// mapping unscaled sprite pixels to world space.
func (s *Sprite) Transform() [6]float64 {
	px, py := s.width/2, s.height/2
	return spriteTransform(s.x+px, s.y+py, s.scaleX, s.scaleY, s.rotation, px, py)
}

// Bounds returns the world-space rectangle covered by the scaled, unrotated
// sprite.
func (s *Sprite) Bounds() Rect {
	w, h := s.width*s.scaleX, s.height*s.scaleY
	return Rect{
		X:      s.x + s.width/2*(1-s.scaleX),
		Y:      s.y + s.height/2*(1-s.scaleY),
		Width:  w,
		Height: h,
	}
}

// Dispose marks the sprite as released. Disposing twice panics.
func (s *Sprite) Dispose() {
	if s.disposed {
		panic(fmt.Sprintf("cadence: Dispose on disposed sprite %q", s.Name))
	}
	s.disposed = true
	s.Visible = false
}

// Disposed reports whether Dispose has been called.
func (s *Sprite) Disposed() bool { return s.disposed }
