package cadence

import "testing"

func TestNewSpriteDefaults(t *testing.T) {
	s := NewSprite("logo", 256, 128)
	if !s.Visible || s.Opacity() != 1 {
		t.Errorf("Visible=%v Opacity=%v", s.Visible, s.Opacity())
	}
	if sx, sy := s.Scale(); sx != 1 || sy != 1 {
		t.Errorf("Scale = (%v, %v)", sx, sy)
	}
	if w, h := s.Size(); w != 256 || h != 128 {
		t.Errorf("Size = (%v, %v)", w, h)
	}
}

func TestSpriteFrames(t *testing.T) {
	s := NewSprite("keyboard", 10, 10)
	s.SetFrames(2, 0.5)
	s.update(0.5)
	if s.Frame() != 0 {
		t.Fatalf("Frame = %d at exactly frameTime, want 0", s.Frame())
	}
	s.update(0.1)
	if s.Frame() != 1 {
		t.Fatalf("Frame = %d, want 1", s.Frame())
	}
	s.update(0.6)
	if s.Frame() != 0 {
		t.Errorf("Frame = %d, want wrap to 0", s.Frame())
	}
}

func TestSpriteSingleFrameStays(t *testing.T) {
	s := NewSprite("s", 10, 10)
	s.SetFrames(1, 0.1)
	s.update(1)
	if s.Frame() != 0 {
		t.Errorf("Frame = %d, want 0", s.Frame())
	}
}

func TestSpriteBoundsScalesAboutCenter(t *testing.T) {
	s := NewSprite("s", 100, 50)
	s.SetPosition(10, 20)
	s.SetScale(3, 3)
	b := s.Bounds()
	want := Rect{X: -90, Y: -30, Width: 300, Height: 150}
	if b != want {
		t.Errorf("Bounds = %+v, want %+v", b, want)
	}
	cx, cy := b.Center()
	if cx != 60 || cy != 45 {
		t.Errorf("center = (%v, %v), want (60, 45)", cx, cy)
	}
}

func TestSpriteTransformMatchesBounds(t *testing.T) {
	s := NewSprite("s", 100, 50)
	s.SetPosition(10, 20)
	s.SetScale(2, 2)
	m := s.Transform()
	x0, y0 := transformPoint(m, 0, 0)
	x1, y1 := transformPoint(m, 100, 50)
	b := s.Bounds()
	if !approxEqual(x0, b.X, epsilon) || !approxEqual(y0, b.Y, epsilon) ||
		!approxEqual(x1, b.X+b.Width, epsilon) || !approxEqual(y1, b.Y+b.Height, epsilon) {
		t.Errorf("corners (%v, %v)-(%v, %v), bounds %+v", x0, y0, x1, y1, b)
	}
}

func TestSpriteDoubleDisposePanics(t *testing.T) {
	s := NewSprite("s", 1, 1)
	s.Dispose()
	if !s.Disposed() || s.Visible {
		t.Fatalf("Disposed=%v Visible=%v", s.Disposed(), s.Visible)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic on second Dispose")
		}
	}()
	s.Dispose()
}
