package cadence

// Crossfade ramps between two mixes of the same music: a muffled track that
// fades out and a clear track that fades in, while the overall volume moves
// from a start to an end level.
type Crossfade struct {
	muffled AudioStream
	clear   AudioStream
	curve   Curve

	clock       tweenClock
	start, end  float64
	muffledVol  float64
	clearVol    float64
	active      bool
	transitions int
}

// NewCrossfade creates a crossfade between two streams. The default curve is
// InQuad.
func NewCrossfade(muffled, clear AudioStream) *Crossfade {
	if muffled == nil || clear == nil {
		panic("cadence: NewCrossfade with nil stream")
	}
	return &Crossfade{muffled: muffled, clear: clear, curve: InQuad}
}

// SetCurve sets the curve applied to transition progress. It takes effect
// on the next StartTransition.
func (c *Crossfade) SetCurve(curve Curve) {
	c.curve = curve
}

// Curve returns the curve applied to transition progress.
func (c *Crossfade) Curve() Curve {
	return c.curve
}

// StartTransition starts both tracks looping from position seconds, the
// muffled one at startVolume and the clear one silent, and begins a
// duration-second ramp. Calling it mid-transition restarts the ramp.
func (c *Crossfade) StartTransition(duration, startVolume, endVolume, position float64) {
	c.clock = newTweenClock(duration, c.curve)
	c.start, c.end = startVolume, endVolume
	c.active = true
	c.transitions++

	c.muffledVol, c.clearVol = startVolume, 0
	c.muffled.SetVolume(startVolume)
	c.clear.SetVolume(0)
	c.muffled.SetLooping(true)
	c.clear.SetLooping(true)
	c.muffled.Play()
	c.clear.Play()
	c.muffled.Seek(position)
	c.clear.Seek(position)
}

// Update advances an active transition by dt seconds. On completion the
// muffled track is stopped and the clear track is pinned to the end volume.
func (c *Crossfade) Update(dt float64) {
	if !c.active {
		return
	}
	eased, done := c.clock.advance(dt)
	overall := lerp(c.start, c.end, eased)

	c.muffledVol = (1 - eased) * overall
	c.clearVol = eased * overall
	c.muffled.SetVolume(c.muffledVol)
	c.clear.SetVolume(c.clearVol)

	if done {
		c.muffled.Stop()
		c.muffledVol = 0
		c.clearVol = c.end
		c.clear.SetVolume(c.end)
		c.active = false
	}
}

// Active reports whether a transition is in progress.
func (c *Crossfade) Active() bool {
	return c.active
}

// Volumes returns the volumes last written to the muffled and clear tracks.
// After completion muffled reports 0 because the track is stopped.
func (c *Crossfade) Volumes() (muffled, clear float64) {
	return c.muffledVol, c.clearVol
}

// Transitions returns how many transitions have been started.
func (c *Crossfade) Transitions() int {
	return c.transitions
}
