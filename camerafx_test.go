package cadence

import (
	"math"
	"math/rand/v2"
	"testing"
)

type fakeCamera struct {
	x, y     float64
	rotation float64
	rotates  int
}

func (c *fakeCamera) Translate(dx, dy float64) { c.x += dx; c.y += dy }
func (c *fakeCamera) Rotate(delta float64)     { c.rotation += delta; c.rotates++ }

func newTestEffects() (*CameraEffects, *fakeCamera) {
	cam := &fakeCamera{}
	fx := NewCameraEffects(cam, 2)
	fx.SetRand(rand.New(rand.NewPCG(1, 2)))
	return fx, cam
}

func TestShakeOffsetWithinIntensity(t *testing.T) {
	fx, _ := newTestEffects()
	fx.Shake(1, 5, 0.01)
	for i := 0; i < 50; i++ {
		fx.Update(0.01)
		x, y := fx.ShakeOffset()
		if math.Abs(x) > 5 || math.Abs(y) > 5 {
			t.Fatalf("offset (%v, %v) exceeds intensity", x, y)
		}
	}
}

func TestShakeFirstOffsetOnNextUpdate(t *testing.T) {
	fx, _ := newTestEffects()
	fx.Shake(1, 5, 0.1)
	if x, y := fx.ShakeOffset(); x != 0 || y != 0 {
		t.Fatalf("offset before Update = (%v, %v)", x, y)
	}
	fx.Update(0.01)
	if x, y := fx.ShakeOffset(); x == 0 && y == 0 {
		t.Error("no offset drawn on first Update")
	}
}

func TestShakeHoldsOffsetForInterval(t *testing.T) {
	fx, _ := newTestEffects()
	fx.Shake(1, 5, 0.1)
	fx.Update(0.05)
	x0, y0 := fx.ShakeOffset()
	fx.Update(0.02)
	x1, y1 := fx.ShakeOffset()
	if x0 != x1 || y0 != y1 {
		t.Errorf("offset changed within interval: (%v, %v) -> (%v, %v)", x0, y0, x1, y1)
	}
}

func TestShakeEndsAndResets(t *testing.T) {
	fx, _ := newTestEffects()
	fx.Shake(0.5, 5, 0.05)
	fx.Update(0.1)
	if !fx.Shaking() {
		t.Fatal("Shaking = false mid-window")
	}
	fx.Update(0.5)
	if fx.Shaking() {
		t.Error("Shaking = true after window")
	}
	if x, y := fx.ShakeOffset(); x != 0 || y != 0 {
		t.Errorf("offset after window = (%v, %v), want (0, 0)", x, y)
	}
}

func TestApplyResetRestoresCamera(t *testing.T) {
	fx, cam := newTestEffects()
	fx.Shake(1, 10, 0.1)
	fx.Update(0.05)
	ox, oy := fx.ShakeOffset()

	fx.Apply()
	if !approxEqual(cam.x, ox, epsilon) || !approxEqual(cam.y, oy, epsilon) {
		t.Errorf("applied camera = (%v, %v), want (%v, %v)", cam.x, cam.y, ox, oy)
	}
	fx.Reset()
	if !approxEqual(cam.x, 0, epsilon) || !approxEqual(cam.y, 0, epsilon) {
		t.Errorf("camera after Reset = (%v, %v), want (0, 0)", cam.x, cam.y)
	}
}

func TestApplyTwicePanics(t *testing.T) {
	fx, _ := newTestEffects()
	fx.Apply()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for Apply without Reset")
		}
	}()
	fx.Apply()
}

func TestResetWithoutApplyPanics(t *testing.T) {
	fx, _ := newTestEffects()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for Reset without Apply")
		}
	}()
	fx.Reset()
}

func TestUpdateWhileAppliedPanics(t *testing.T) {
	fx, _ := newTestEffects()
	fx.Apply()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for Update between Apply and Reset")
		}
	}()
	fx.Update(0.1)
}

func TestSetRotationAppliesDeltas(t *testing.T) {
	fx, cam := newTestEffects()
	fx.SetRotation(1, 1, Linear)
	fx.Update(0.5)
	if !approxEqual(cam.rotation, 0.5, epsilon) {
		t.Errorf("mid rotation = %v, want 0.5", cam.rotation)
	}
	fx.Update(0.5)
	if !approxEqual(cam.rotation, 1, epsilon) {
		t.Errorf("end rotation = %v, want 1", cam.rotation)
	}
	if fx.Rotating() {
		t.Error("Rotating = true after finishing")
	}
	if fx.CurrentRotation() != 1 {
		t.Errorf("CurrentRotation = %v, want 1", fx.CurrentRotation())
	}
}

func TestRotationComposesWithExternalRotation(t *testing.T) {
	fx, cam := newTestEffects()
	cam.rotation = 2
	fx.Rotate(math.Pi/90, 4, Linear)
	fx.Update(4)
	if !approxEqual(cam.rotation, 2+math.Pi/90, epsilon) {
		t.Errorf("rotation = %v, want %v", cam.rotation, 2+math.Pi/90)
	}
}

func TestNewRotationCancelsPrevious(t *testing.T) {
	fx, cam := newTestEffects()
	fx.SetRotation(1, 1, Linear)
	fx.Update(0.5)
	fx.SetRotation(0, 1, Linear)
	fx.Update(0.5)
	if !approxEqual(cam.rotation, 0.25, epsilon) {
		t.Errorf("rotation = %v, want 0.25", cam.rotation)
	}
	fx.Update(0.5)
	if !approxEqual(cam.rotation, 0, epsilon) {
		t.Errorf("rotation = %v, want 0", cam.rotation)
	}
	if fx.rotations.idle() != fx.rotations.size() {
		t.Errorf("idle = %d of %d, want all idle", fx.rotations.idle(), fx.rotations.size())
	}
}

func TestRotateIsRelativeToCurrent(t *testing.T) {
	fx, cam := newTestEffects()
	fx.SetRotation(1, 0, Linear)
	fx.Update(0)
	fx.Rotate(0.5, 1, Linear)
	fx.Update(1)
	if !approxEqual(cam.rotation, 1.5, epsilon) {
		t.Errorf("rotation = %v, want 1.5", cam.rotation)
	}
}

func TestNewCameraEffectsNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil camera")
		}
	}()
	NewCameraEffects(nil, 0)
}
