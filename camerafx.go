package cadence

import "math/rand/v2"

// shakeState is a stepped random walk: the offset is re-rolled every
// interval seconds and held in between.
type shakeState struct {
	remaining float64
	intensity float64
	interval  float64
	timer     float64
	offX      float64
	offY      float64
}

// CameraEffects layers transient effects over a camera: a stepped random
// shake and a single eased rotation goal.
//
// The shake offset is only visible between Apply and Reset, which bracket a
// render pass. Rotation is applied to the camera as per-frame deltas, so
// rotation from other sources composes additively.
type CameraEffects struct {
	cam CameraTarget
	rng *rand.Rand

	shake shakeState

	rotations slotPool[scalarTween]
	active    []int32
	current   float64

	applied bool
}

// NewCameraEffects creates effects for cam with prealloc pooled rotation
// tweens.
func NewCameraEffects(cam CameraTarget, prealloc int) *CameraEffects {
	if cam == nil {
		panic("cadence: NewCameraEffects with nil camera")
	}
	if prealloc < 0 {
		prealloc = 0
	}
	return &CameraEffects{
		cam:       cam,
		rotations: newSlotPool[scalarTween](prealloc),
		active:    make([]int32, 0, prealloc),
	}
}

// SetRand sets the random source used for shake offsets. A nil source
// selects the package-level generator.
func (e *CameraEffects) SetRand(r *rand.Rand) {
	e.rng = r
}

func (e *CameraEffects) random() float64 {
	if e.rng != nil {
		return e.rng.Float64()*2 - 1
	}
	return rand.Float64()*2 - 1
}

// Shake (re)starts a shake window of duration seconds. Every interval
// seconds a new offset in [-intensity, intensity] is drawn on each axis.
// The first offset is drawn on the next Update.
func (e *CameraEffects) Shake(duration, intensity, interval float64) {
	e.shake = shakeState{
		remaining: duration,
		intensity: intensity,
		interval:  interval,
		offX:      e.shake.offX,
		offY:      e.shake.offY,
	}
}

// Shaking reports whether a shake window is open.
func (e *CameraEffects) Shaking() bool {
	return e.shake.remaining > 0
}

// ShakeOffset returns the offset Apply will translate the camera by.
func (e *CameraEffects) ShakeOffset() (x, y float64) {
	return e.shake.offX, e.shake.offY
}

// SetRotation tweens the camera rotation to the absolute angle (radians),
// cancelling any rotation already in flight.
func (e *CameraEffects) SetRotation(angle, duration float64, curve Curve) {
	e.startRotation(angle, duration, curve)
}

// Rotate tweens the camera rotation by delta radians relative to where it
// currently is, cancelling any rotation already in flight.
func (e *CameraEffects) Rotate(delta, duration float64, curve Curve) {
	e.startRotation(e.current+delta, duration, curve)
}

func (e *CameraEffects) startRotation(to, duration float64, curve Curve) {
	tw := newScalarTween(e.current, to, duration, curve)
	e.clearRotations()
	id := e.rotations.acquire()
	*e.rotations.at(id) = tw
	e.active = append(e.active, id)
}

func (e *CameraEffects) clearRotations() {
	for _, id := range e.active {
		e.rotations.release(id)
	}
	e.active = e.active[:0]
}

// Rotating reports whether a rotation tween is in flight.
func (e *CameraEffects) Rotating() bool {
	return len(e.active) > 0
}

// CurrentRotation returns the rotation contributed by these effects.
func (e *CameraEffects) CurrentRotation() float64 {
	return e.current
}

// Update advances the rotation tween, applying its delta to the camera, then
// the shake window.
func (e *CameraEffects) Update(dt float64) {
	if e.applied {
		panic("cadence: CameraEffects.Update between Apply and Reset")
	}
	e.updateRotation(dt)
	e.updateShake(dt)
}

func (e *CameraEffects) updateRotation(dt float64) {
	kept := e.active[:0]
	for _, id := range e.active {
		tw := e.rotations.at(id)
		prev := tw.value
		next, done := tw.update(dt)
		if d := next - prev; d != 0 {
			e.cam.Rotate(d)
		}
		e.current = next
		if done {
			e.rotations.release(id)
			continue
		}
		kept = append(kept, id)
	}
	e.active = kept
}

func (e *CameraEffects) updateShake(dt float64) {
	s := &e.shake
	if s.remaining <= 0 {
		return
	}
	s.remaining -= dt
	s.timer -= dt
	if s.remaining <= 0 {
		*s = shakeState{}
		return
	}
	if s.timer <= 0 {
		s.timer = s.interval
		s.offX = e.random() * s.intensity
		s.offY = e.random() * s.intensity
	}
}

// Apply translates the camera by the current shake offset. It must be
// matched by exactly one Reset before the next Update.
func (e *CameraEffects) Apply() {
	if e.applied {
		panic("cadence: CameraEffects.Apply called twice without Reset")
	}
	e.applied = true
	e.cam.Translate(e.shake.offX, e.shake.offY)
}

// Reset undoes the translation made by Apply.
func (e *CameraEffects) Reset() {
	if !e.applied {
		panic("cadence: CameraEffects.Reset without Apply")
	}
	e.applied = false
	e.cam.Translate(-e.shake.offX, -e.shake.offY)
}
