package cadence

// syntheticInput is one queued frame of injected input.
type syntheticInput struct {
	x, y    float64
	move    bool
	key     Key
	keySet  bool
	keyDown bool
}

// ManualInput is an InputState whose pointer and keys are set by code. Use
// it in tests and scripted runs, or to drive parallax from a source other
// than the host's devices.
//
// Direct setters take effect immediately. Inject* calls queue changes that
// are applied one per frame when a Director steps the input.
type ManualInput struct {
	x, y  float64
	keys  [keyCount]bool
	queue []syntheticInput
}

// NewManualInput creates a ManualInput with the pointer at (x, y) and no
// keys held.
func NewManualInput(x, y float64) *ManualInput {
	return &ManualInput{x: x, y: y}
}

// Pointer implements InputState.
func (m *ManualInput) Pointer() (x, y float64) {
	return m.x, m.y
}

// KeyPressed implements InputState.
func (m *ManualInput) KeyPressed(k Key) bool {
	return k < keyCount && m.keys[k]
}

// SetPointer moves the pointer immediately.
func (m *ManualInput) SetPointer(x, y float64) {
	m.x, m.y = x, y
}

// SetKey presses or releases k immediately.
func (m *ManualInput) SetKey(k Key, down bool) {
	if k < keyCount {
		m.keys[k] = down
	}
}

// InjectMove queues a pointer move to (x, y) for a future frame.
func (m *ManualInput) InjectMove(x, y float64) {
	m.queue = append(m.queue, syntheticInput{x: x, y: y, move: true})
}

// InjectKey queues a key press or release for a future frame.
func (m *ManualInput) InjectKey(k Key, down bool) {
	m.queue = append(m.queue, syntheticInput{key: k, keySet: true, keyDown: down})
}

// InjectSweep queues a pointer sweep from (fromX, fromY) to (toX, toY) that
// lasts frames frames, both ends included. Minimum frames is 2.
func (m *ManualInput) InjectSweep(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		m.InjectMove(lerp(fromX, toX, t), lerp(fromY, toY, t))
	}
}

// Queued returns the number of injected frames not yet applied.
func (m *ManualInput) Queued() int {
	return len(m.queue)
}

// step applies the oldest queued event, if any.
func (m *ManualInput) step() {
	if len(m.queue) == 0 {
		return
	}
	ev := m.queue[0]
	copy(m.queue, m.queue[1:])
	m.queue = m.queue[:len(m.queue)-1]

	if ev.move {
		m.x, m.y = ev.x, ev.y
	}
	if ev.keySet {
		m.SetKey(ev.key, ev.keyDown)
	}
}
