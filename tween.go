package cadence

import "math"

// tweenClock is the interpolation primitive shared by every finite tween in
// the package: the animator's jobs, camera rotation and scroll, and audio
// crossfades. It owns elapsed time and the curve; callers lerp their own
// endpoints with the eased progress it returns.
type tweenClock struct {
	duration float64
	elapsed  float64
	curve    Curve
}

func newTweenClock(duration float64, curve Curve) tweenClock {
	if duration < 0 || math.IsNaN(duration) {
		panic("cadence: tween duration must be >= 0")
	}
	return tweenClock{duration: duration, curve: curve}
}

// advance moves the clock forward by dt and returns the eased progress.
// Once elapsed reaches duration it is clamped to duration, progress is
// exactly 1 and done is true, so the caller writes exactly its end value.
func (c *tweenClock) advance(dt float64) (eased float64, done bool) {
	c.elapsed += dt
	progress := 1.0
	if c.duration > 0 {
		progress = math.Min(1, c.elapsed/c.duration)
	}
	if progress >= 1 {
		c.elapsed = c.duration
		return Evaluate(c.curve, 1), true
	}
	return Evaluate(c.curve, progress), false
}

// finished reports whether the clock has run its full duration.
func (c *tweenClock) finished() bool {
	return c.elapsed >= c.duration
}

// scalarTween interpolates a single value. Value holds the most recently
// computed sample.
type scalarTween struct {
	clock tweenClock
	from  float64
	to    float64
	value float64
}

func newScalarTween(from, to, duration float64, curve Curve) scalarTween {
	return scalarTween{
		clock: newTweenClock(duration, curve),
		from:  from,
		to:    to,
		value: from,
	}
}

// update advances by dt and returns the new value.
func (s *scalarTween) update(dt float64) (float64, bool) {
	eased, done := s.clock.advance(dt)
	s.value = lerp(s.from, s.to, eased)
	return s.value, done
}

// lerp performs linear interpolation between a and b. The endpoints are
// returned as-is: a+(b-a)*1 is not always b in floating point.
func lerp(a, b, t float64) float64 {
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	return a + (b-a)*t
}
