package cadence

import "math"

// attr indexes an animatable attribute of a Target.
type attr uint8

const (
	attrX attr = iota
	attrY
	attrOpacity
	attrScaleX
	attrScaleY
	attrRotation

	attrCount
)

// channel is one animated attribute. set == false means "not animated"; no
// value of from/to is reserved as a sentinel.
type channel struct {
	from, to float64
	set      bool
}

// pulseState drives an unbounded scale oscillation around a captured
// baseline.
type pulseState struct {
	period         float64 // seconds per beat
	peak           float64
	baseSX, baseSY float64
	elapsed        float64
}

// tweenJob is a pooled animation record. The zero value is the neutral
// state a slot returns to on release: no target, no channels set, no
// pulse, no callback.
type tweenJob struct {
	target     Target
	clock      tweenClock
	channels   [attrCount]channel
	isPulse    bool
	pulse      pulseState
	onComplete func()
}

func (j *tweenJob) begin(target Target, duration float64, curve Curve) {
	j.target = target
	j.clock = newTweenClock(duration, curve)
}

func (j *tweenJob) initMove(target Target, toX, toY, duration float64, curve Curve) {
	j.begin(target, duration, curve)
	x, y := target.Position()
	j.channels[attrX] = channel{from: x, to: toX, set: true}
	j.channels[attrY] = channel{from: y, to: toY, set: true}
}

func (j *tweenJob) initFade(target Target, to, duration float64, curve Curve) {
	j.begin(target, duration, curve)
	j.channels[attrOpacity] = channel{from: target.Opacity(), to: to, set: true}
}

func (j *tweenJob) initScale(target Target, toSX, toSY, duration float64, curve Curve) {
	j.begin(target, duration, curve)
	sx, sy := target.Scale()
	j.channels[attrScaleX] = channel{from: sx, to: toSX, set: true}
	j.channels[attrScaleY] = channel{from: sy, to: toSY, set: true}
}

func (j *tweenJob) initRotate(target Target, to, duration float64, curve Curve) {
	j.begin(target, duration, curve)
	j.channels[attrRotation] = channel{from: target.Rotation(), to: to, set: true}
}

func (j *tweenJob) initPulse(target Target, bpm, peak float64) {
	if !(bpm > 0) {
		panic("cadence: AnimatePulse requires bpm > 0")
	}
	sx, sy := target.Scale()
	j.target = target
	j.isPulse = true
	j.pulse = pulseState{
		period: 60 / bpm,
		peak:   peak,
		baseSX: sx,
		baseSY: sy,
	}
}

// step advances the job by dt, writes the current values to the target and
// reports whether the job has finished. Pulse jobs never finish.
func (j *tweenJob) step(dt float64) bool {
	if j.isPulse {
		p := &j.pulse
		p.elapsed += dt
		phase := math.Mod(p.elapsed, p.period) / p.period
		f := math.Sin(phase * math.Pi)
		j.target.SetScale(
			p.baseSX+(p.baseSX*p.peak-p.baseSX)*f,
			p.baseSY+(p.baseSY*p.peak-p.baseSY)*f,
		)
		return false
	}

	eased, done := j.clock.advance(dt)
	j.apply(eased)
	return done
}

// apply writes every set channel at the given eased progress.
func (j *tweenJob) apply(eased float64) {
	c := &j.channels
	t := j.target
	if c[attrX].set || c[attrY].set {
		x, y := t.Position()
		if c[attrX].set {
			x = lerp(c[attrX].from, c[attrX].to, eased)
		}
		if c[attrY].set {
			y = lerp(c[attrY].from, c[attrY].to, eased)
		}
		t.SetPosition(x, y)
	}
	if c[attrOpacity].set {
		t.SetOpacity(lerp(c[attrOpacity].from, c[attrOpacity].to, eased))
	}
	if c[attrScaleX].set || c[attrScaleY].set {
		sx, sy := t.Scale()
		if c[attrScaleX].set {
			sx = lerp(c[attrScaleX].from, c[attrScaleX].to, eased)
		}
		if c[attrScaleY].set {
			sy = lerp(c[attrScaleY].from, c[attrScaleY].to, eased)
		}
		t.SetScale(sx, sy)
	}
	if c[attrRotation].set {
		t.SetRotation(lerp(c[attrRotation].from, c[attrRotation].to, eased))
	}
}

// TweenHandle identifies a job started by an Animator. A handle goes stale
// once its job retires; operations on a stale handle are no-ops, even after
// the underlying slot has been reused.
type TweenHandle struct {
	slot int32
	gen  uint32
}

// Animator owns the pooled job list and advances every live job once per
// Update. Jobs capture their start values when they are created, so a new
// tween on an attribute takes over from wherever the previous one left it.
//
// Several jobs may animate the same attribute of the same target. They race:
// the job later in the active list writes last each frame. Use StopAll
// first when one goal must replace another.
//
// Animator is not safe for concurrent use. Callers drive it from one loop.
type Animator struct {
	jobs      slotPool[tweenJob]
	active    []int32
	finished  []int32
	callbacks []func()
	updating  bool
}

// NewAnimator creates an Animator with prealloc job slots ready on its
// free-list.
func NewAnimator(prealloc int) *Animator {
	if prealloc < 0 {
		prealloc = 0
	}
	return &Animator{
		jobs:     newSlotPool[tweenJob](prealloc),
		active:   make([]int32, 0, prealloc),
		finished: make([]int32, 0, prealloc),
	}
}

func (a *Animator) start() (*tweenJob, TweenHandle) {
	id := a.jobs.acquire()
	a.active = append(a.active, id)
	return a.jobs.at(id), TweenHandle{slot: id, gen: a.jobs.gen[id]}
}

// AnimateMove tweens the target's position to (toX, toY) over duration
// seconds.
func (a *Animator) AnimateMove(target Target, toX, toY, duration float64, curve Curve) TweenHandle {
	mustTarget(target, "AnimateMove")
	job, h := a.start()
	job.initMove(target, toX, toY, duration, curve)
	return h
}

// AnimateFade tweens the target's opacity to the given value.
func (a *Animator) AnimateFade(target Target, to, duration float64, curve Curve) TweenHandle {
	mustTarget(target, "AnimateFade")
	job, h := a.start()
	job.initFade(target, to, duration, curve)
	return h
}

// AnimateScale tweens the target's scale to (toSX, toSY).
func (a *Animator) AnimateScale(target Target, toSX, toSY, duration float64, curve Curve) TweenHandle {
	mustTarget(target, "AnimateScale")
	job, h := a.start()
	job.initScale(target, toSX, toSY, duration, curve)
	return h
}

// AnimateRotate tweens the target's rotation to the given angle.
func (a *Animator) AnimateRotate(target Target, to, duration float64, curve Curve) TweenHandle {
	mustTarget(target, "AnimateRotate")
	job, h := a.start()
	job.initRotate(target, to, duration, curve)
	return h
}

// AnimatePulse starts an unbounded beat-synchronised scale pulse. The
// target's current scale is the baseline; each beat the scale rises to
// baseline*peak and falls back along half a sine wave. A pulse never
// finishes on its own; stop it with Cancel or StopAll.
func (a *Animator) AnimatePulse(target Target, bpm, peak float64) TweenHandle {
	mustTarget(target, "AnimatePulse")
	job, h := a.start()
	job.initPulse(target, bpm, peak)
	return h
}

// OnComplete registers fn to run after the job finishes. Callbacks run at
// the end of Update, after every finished job has been retired, so they may
// start or stop tweens freely. Returns false if the handle is stale.
func (a *Animator) OnComplete(h TweenHandle, fn func()) bool {
	if !a.jobs.live(h.slot, h.gen) {
		return false
	}
	a.jobs.at(h.slot).onComplete = fn
	return true
}

// Running reports whether the job behind h is still live.
func (a *Animator) Running(h TweenHandle) bool {
	return a.jobs.live(h.slot, h.gen)
}

// Cancel retires the job behind h immediately, leaving the target's
// attributes at their last written values. Completion callbacks do not run.
func (a *Animator) Cancel(h TweenHandle) bool {
	if !a.jobs.live(h.slot, h.gen) {
		return false
	}
	for i, id := range a.active {
		if id == h.slot {
			a.active = append(a.active[:i], a.active[i+1:]...)
			break
		}
	}
	a.jobs.release(h.slot)
	return true
}

// StopAll retires every job referencing target, pulse jobs included, and
// returns how many were removed. Attributes keep their last written values.
func (a *Animator) StopAll(target Target) int {
	mustTarget(target, "StopAll")
	removed := 0
	kept := a.active[:0]
	for _, id := range a.active {
		if a.jobs.at(id).target == target {
			a.jobs.release(id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	a.active = kept
	return removed
}

// Update advances every live job by dt seconds. Jobs that reach their
// duration write their exact end values and are returned to the pool within
// the same call.
func (a *Animator) Update(dt float64) {
	if a.updating {
		panic("cadence: Animator.Update called re-entrantly")
	}
	a.updating = true
	defer func() { a.updating = false }()

	kept := a.active[:0]
	for _, id := range a.active {
		if a.jobs.at(id).step(dt) {
			a.finished = append(a.finished, id)
			continue
		}
		kept = append(kept, id)
	}
	a.active = kept

	for _, id := range a.finished {
		if fn := a.jobs.at(id).onComplete; fn != nil {
			a.callbacks = append(a.callbacks, fn)
		}
		a.jobs.release(id)
	}
	a.finished = a.finished[:0]

	for i, fn := range a.callbacks {
		a.callbacks[i] = nil
		fn()
	}
	a.callbacks = a.callbacks[:0]
}

// Active returns the number of live jobs.
func (a *Animator) Active() int {
	return len(a.active)
}

// Idle returns the number of pooled job slots waiting for reuse.
func (a *Animator) Idle() int {
	return a.jobs.idle()
}

// Animating reports whether any live job references target.
func (a *Animator) Animating(target Target) bool {
	for _, id := range a.active {
		if a.jobs.at(id).target == target {
			return true
		}
	}
	return false
}
