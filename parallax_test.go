package cadence

import "testing"

var testViewport = Rect{Width: 800, Height: 600}

func TestParallaxConvergesWithoutReaching(t *testing.T) {
	in := NewManualInput(800, 600)
	p := NewParallax(in, testViewport)
	s := NewSprite("bg", 10, 10)
	s.SetPosition(100, 100)
	p.AddLayer(s, 0.02, 0.1)

	// Offset (400, 300) gives goal (92, 94).
	prevX, prevY := 100.0, 100.0
	for i := 0; i < 30; i++ {
		p.Update()
		x, y := s.Position()
		if x >= prevX || y >= prevY {
			t.Fatalf("frame %d: position (%v, %v) did not move toward goal", i, x, y)
		}
		if x <= 92 || y <= 94 {
			t.Fatalf("frame %d: position (%v, %v) reached or passed goal", i, x, y)
		}
		prevX, prevY = x, y
	}
}

func TestParallaxFirstStep(t *testing.T) {
	in := NewManualInput(800, 600)
	p := NewParallax(in, testViewport)
	s := NewSprite("bg", 10, 10)
	s.SetPosition(100, 100)
	p.AddLayer(s, 0.02, 0.1)
	p.Update()
	x, y := s.Position()
	if !approxEqual(x, 99.2, 1e-9) || !approxEqual(y, 99.4, 1e-9) {
		t.Errorf("position = (%v, %v), want (99.2, 99.4)", x, y)
	}
}

func TestParallaxCenteredPointerHoldsOrigin(t *testing.T) {
	in := NewManualInput(400, 300)
	p := NewParallax(in, testViewport)
	s := NewSprite("bg", 10, 10)
	s.SetPosition(50, 60)
	p.AddLayer(s, 0.5, 1)
	p.Update()
	if x, y := s.Position(); x != 50 || y != 60 {
		t.Errorf("position = (%v, %v), want origin", x, y)
	}
}

func TestParallaxOffsetClamped(t *testing.T) {
	in := NewManualInput(5000, -5000)
	p := NewParallax(in, testViewport)
	p.Update()
	if x, y := p.Offset(); x != 400 || y != -300 {
		t.Errorf("Offset = (%v, %v), want (400, -300)", x, y)
	}
}

func TestParallaxKeys(t *testing.T) {
	in := NewManualInput(400, 300)
	p := NewParallax(in, testViewport)
	p.SetKeyStrength(100, 50)

	in.SetKey(KeyLeft, true)
	in.SetKey(KeyDown, true)
	p.Update()
	if x, y := p.Offset(); x != -100 || y != 50 {
		t.Errorf("Offset = (%v, %v), want (-100, 50)", x, y)
	}

	in.SetKey(KeyLeft, false)
	in.SetKey(KeyDown, false)
	in.SetKey(KeyRight, true)
	in.SetKey(KeyUp, true)
	p.Update()
	if x, y := p.Offset(); x != 100 || y != -50 {
		t.Errorf("Offset = (%v, %v), want (100, -50)", x, y)
	}
}

func TestParallaxKeysDefaultToHalfExtents(t *testing.T) {
	in := NewManualInput(400, 300)
	p := NewParallax(in, testViewport)
	in.SetKey(KeyRight, true)
	in.SetKey(KeyUp, true)
	p.Update()
	if x, y := p.Offset(); x != 400 || y != -300 {
		t.Errorf("Offset = (%v, %v), want (400, -300)", x, y)
	}
}

func TestAddCenteredLayer(t *testing.T) {
	in := NewManualInput(400, 300)
	p := NewParallax(in, testViewport)
	s := NewSprite("bg", 1000, 800)
	p.AddCenteredLayer(s, 1000, 800, 0.02, 0.1)
	if x, y := s.Position(); x != -100 || y != -100 {
		t.Errorf("position = (%v, %v), want (-100, -100)", x, y)
	}
	if p.Layers() != 1 {
		t.Errorf("Layers = %d, want 1", p.Layers())
	}
}

func TestRemoveLayer(t *testing.T) {
	in := NewManualInput(800, 600)
	p := NewParallax(in, testViewport)
	a := NewSprite("a", 1, 1)
	b := NewSprite("b", 1, 1)
	p.AddLayer(a, 1, 1)
	p.AddLayer(b, 1, 1)

	if !p.RemoveLayer(a) {
		t.Fatal("RemoveLayer(a) = false")
	}
	if p.RemoveLayer(a) {
		t.Error("second RemoveLayer(a) = true")
	}
	p.Update()
	if x, y := a.Position(); x != 0 || y != 0 {
		t.Errorf("removed layer moved to (%v, %v)", x, y)
	}
	if x, _ := b.Position(); x != -400 {
		t.Errorf("remaining layer x = %v, want -400", x)
	}
}

func TestNewParallaxNilInputPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil input")
		}
	}()
	NewParallax(nil, testViewport)
}

func TestScrollerWraps(t *testing.T) {
	s := NewScroller(100, 50, 30, -20)
	s.Update(2)
	s.Update(2)
	x, y := s.Offset()
	// 120 mod 100, -80 mod 50.
	if !approxEqual(x, 20, 1e-9) || !approxEqual(y, 20, 1e-9) {
		t.Errorf("Offset = (%v, %v), want (20, 20)", x, y)
	}
	if w, h := s.Size(); w != 100 || h != 50 {
		t.Errorf("Size = (%v, %v)", w, h)
	}
}

func TestScrollerZeroSize(t *testing.T) {
	s := NewScroller(0, 0, 10, 10)
	s.Update(1)
	if x, y := s.Offset(); x != 10 || y != 10 {
		t.Errorf("Offset = (%v, %v), want unwrapped (10, 10)", x, y)
	}
}
