package cadence

// Target is the drawable capability the engine animates. Implementations are
// plain attribute holders; the engine never reads pixel data and never owns
// a Target. A Target must outlive every job or layer that references it.
type Target interface {
	Position() (x, y float64)
	SetPosition(x, y float64)
	Opacity() float64
	SetOpacity(a float64)
	Scale() (sx, sy float64)
	SetScale(sx, sy float64)
	Rotation() float64
	SetRotation(r float64)
}

// AudioStream is the playback capability consumed by Crossfade. Seek
// positions are in seconds, volumes in [0, 1].
type AudioStream interface {
	Play()
	Stop()
	SetVolume(v float64)
	SetLooping(loop bool)
	Seek(seconds float64)
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (x, y float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

func mustTarget(t Target, op string) {
	if t == nil {
		panic("cadence: " + op + " with nil target")
	}
}
