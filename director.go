package cadence

// Director is the context object a cutscene runs in. It owns the playback
// clock and every manager, tracks the sprites the host draws, and advances
// everything in a fixed order once per frame:
//
//	input, clock, scheduler, animator, camera, camera effects, parallax,
//	scrollers, crossfades, impulses, sprite frames
//
// Scheduled callbacks therefore see this frame's clock, and tweens they start
// take their first step in the same frame. A Director is driven from a single
// goroutine; nothing in it is safe for concurrent use.
type Director struct {
	cfg   Config
	time  float64
	frame uint64

	input     InputState
	scheduler *Scheduler
	animator  *Animator
	camera    *Camera
	effects   *CameraEffects
	parallax  *Parallax

	crossfades []*Crossfade
	impulses   []*Impulse
	scrollers  []*Scroller
	sprites    []*Sprite

	runner *TestRunner
	debug  debugState
}

// NewDirector builds a Director from cfg. A nil input is replaced by a
// ManualInput resting at the viewport center, which leaves parallax still.
func NewDirector(cfg Config, input InputState) *Director {
	if err := cfg.Validate(); err != nil {
		panic(err.Error())
	}
	vp := cfg.Viewport()
	if input == nil {
		input = NewManualInput(vp.Center())
	}
	cam := NewCamera(vp)
	d := &Director{
		cfg:       cfg,
		input:     input,
		scheduler: NewScheduler(),
		animator:  NewAnimator(cfg.TweenPoolSize),
		camera:    cam,
		effects:   NewCameraEffects(cam, cfg.CameraPoolSize),
		parallax:  NewParallax(input, vp),
	}
	d.parallax.SetKeyStrength(cfg.keyStrength())
	d.debug = newDebugState(cfg.Debug)
	return d
}

// Config returns the configuration the Director was built from.
func (d *Director) Config() Config { return d.cfg }

// Time returns the playback clock in seconds.
func (d *Director) Time() float64 { return d.time }

// Frame returns the number of completed Updates.
func (d *Director) Frame() uint64 { return d.frame }

// Input returns the input source read by Parallax.
func (d *Director) Input() InputState { return d.input }

// Scheduler returns the event scheduler.
func (d *Director) Scheduler() *Scheduler { return d.scheduler }

// Animator returns the tween engine.
func (d *Director) Animator() *Animator { return d.animator }

// Camera returns the camera.
func (d *Director) Camera() *Camera { return d.camera }

// Effects returns the camera effects.
func (d *Director) Effects() *CameraEffects { return d.effects }

// Parallax returns the parallax manager.
func (d *Director) Parallax() *Parallax { return d.parallax }

// At schedules fn at playback time t.
func (d *Director) At(t float64, fn func()) {
	if t < d.time {
		d.debugf("event at %.3fs scheduled behind clock %.3fs; fires next frame", t, d.time)
	}
	d.scheduler.AddEvent(t, fn)
}

// NewCrossfade creates a crossfade using the configured curve and updates it
// every frame.
func (d *Director) NewCrossfade(muffled, clear AudioStream) *Crossfade {
	c := NewCrossfade(muffled, clear)
	c.SetCurve(d.cfg.Crossfade.Curve)
	d.crossfades = append(d.crossfades, c)
	return c
}

// NewImpulse creates an impulse decaying decay units per second and updates
// it every frame.
func (d *Director) NewImpulse(decay float64) *Impulse {
	i := NewImpulse(decay)
	d.impulses = append(d.impulses, i)
	return i
}

// AddScroller updates s every frame.
func (d *Director) AddScroller(s *Scroller) {
	d.scrollers = append(d.scrollers, s)
}

// Track adds sprites to the draw list, in draw order.
func (d *Director) Track(sprites ...*Sprite) {
	for _, s := range sprites {
		if s == nil {
			panic("cadence: Track with nil sprite")
		}
		if s.disposed {
			panic("cadence: Track on disposed sprite " + s.Name)
		}
		d.sprites = append(d.sprites, s)
	}
}

// Untrack removes s from the draw list.
func (d *Director) Untrack(s *Sprite) bool {
	for i, t := range d.sprites {
		if t == s {
			d.sprites = append(d.sprites[:i], d.sprites[i+1:]...)
			return true
		}
	}
	return false
}

// Sprites returns the draw list. The slice is owned by the Director.
func (d *Director) Sprites() []*Sprite { return d.sprites }

// Dispose stops every tween on s, removes it from parallax and the draw
// list, then disposes it.
func (d *Director) Dispose(s *Sprite) {
	d.animator.StopAll(s)
	d.parallax.RemoveLayer(s)
	d.Untrack(s)
	s.Dispose()
}

// Update advances the clock by dt seconds and every manager after it.
func (d *Director) Update(dt float64) {
	if dt < 0 {
		panic("cadence: Director.Update with negative dt")
	}
	if d.runner != nil {
		d.runner.step(d)
	}
	if st, ok := d.input.(inputStepper); ok {
		st.step()
	}
	d.time += dt
	fired := d.scheduler.Update(d.time)
	d.animator.Update(dt)
	d.camera.update(dt)
	d.effects.Update(dt)
	d.parallax.Update()
	for _, s := range d.scrollers {
		s.Update(dt)
	}
	for _, c := range d.crossfades {
		c.Update(dt)
	}
	for _, i := range d.impulses {
		i.Update(dt)
	}
	for _, s := range d.sprites {
		s.update(dt)
	}
	d.frame++

	if d.debug.enabled {
		d.debugLog(frameStats{
			time:    d.time,
			frame:   d.frame,
			fired:   fired,
			pending: d.scheduler.Pending(),
			active:  d.animator.Active(),
			idle:    d.animator.Idle(),
		})
	}
}

// Apply brackets a draw pass with the camera effects. Pair with Reset.
func (d *Director) Apply() { d.effects.Apply() }

// Reset undoes Apply.
func (d *Director) Reset() { d.effects.Reset() }
