package cadence

import "sort"

// scheduledEvent is an immutable (trigger time, callback) pair. seq records
// scheduling order and breaks ties between equal trigger times.
type scheduledEvent struct {
	at  float64
	seq uint64
	fn  func()
}

// Scheduler fires one-shot callbacks when the playback clock passes their
// trigger time. The clock is fed externally, once per frame, and must never
// move backwards.
//
// Callbacks run synchronously inside Update. A callback may schedule more
// events; those are held until the next Update even when their trigger time
// has already passed, so a frame never cascades.
type Scheduler struct {
	pending []scheduledEvent // sorted by (at, seq)
	firing  []scheduledEvent
	now     float64
	seq     uint64
	fired   int

	updating bool
}

// NewScheduler creates an empty scheduler with its clock at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// AddEvent schedules fn to run on the first Update whose time is at or past
// at. Times at or before the current clock fire on the next Update.
func (s *Scheduler) AddEvent(at float64, fn func()) {
	if fn == nil {
		panic("cadence: AddEvent with nil callback")
	}
	s.seq++
	ev := scheduledEvent{at: at, seq: s.seq, fn: fn}
	// Insert after every event with at <= ev.at to keep ties in scheduling
	// order.
	i := sort.Search(len(s.pending), func(i int) bool { return s.pending[i].at > at })
	s.pending = append(s.pending, scheduledEvent{})
	copy(s.pending[i+1:], s.pending[i:])
	s.pending[i] = ev
}

// AddEventAfter schedules fn delay seconds after the current clock.
func (s *Scheduler) AddEventAfter(delay float64, fn func()) {
	s.AddEvent(s.now+delay, fn)
}

// Update sets the clock to now and fires every pending event whose trigger
// time is at or before it, in trigger-time order, ties in scheduling order.
// It returns the number of events fired.
func (s *Scheduler) Update(now float64) int {
	if now < s.now {
		panic("cadence: scheduler clock moved backwards")
	}
	if s.updating {
		panic("cadence: Scheduler.Update called re-entrantly")
	}
	s.now = now

	due := sort.Search(len(s.pending), func(i int) bool { return s.pending[i].at > now })
	if due == 0 {
		s.fired = 0
		return 0
	}

	// Detach the due prefix before running anything: callbacks append to
	// pending and must not be seen by this pass.
	s.firing = append(s.firing[:0], s.pending[:due]...)
	n := copy(s.pending, s.pending[due:])
	for i := n; i < len(s.pending); i++ {
		s.pending[i] = scheduledEvent{}
	}
	s.pending = s.pending[:n]

	s.updating = true
	defer func() { s.updating = false }()
	for i := range s.firing {
		fn := s.firing[i].fn
		s.firing[i] = scheduledEvent{}
		fn()
	}
	s.fired = due
	return due
}

// Now returns the clock value passed to the most recent Update.
func (s *Scheduler) Now() float64 {
	return s.now
}

// Pending returns the number of events that have not fired yet.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Reset drops every pending event and rewinds the clock to zero.
func (s *Scheduler) Reset() {
	clear(s.pending)
	s.pending = s.pending[:0]
	s.now = 0
	s.fired = 0
}
