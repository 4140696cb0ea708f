package cadence

// slotPool is an arena of reusable T slots with an explicit free-list.
// Slots are addressed by index so the backing slice may grow without
// invalidating live references. Releasing a slot resets it to the zero
// value, which every pooled type treats as its neutral/absent state.
type slotPool[T any] struct {
	slots []T
	inUse []bool
	gen   []uint32
	free  []int32
}

// newSlotPool creates a pool with n slots preallocated on the free-list.
func newSlotPool[T any](n int) slotPool[T] {
	p := slotPool[T]{
		slots: make([]T, n),
		inUse: make([]bool, n),
		gen:   make([]uint32, n),
		free:  make([]int32, 0, n),
	}
	// Pop order hands out slot 0 first.
	for i := n - 1; i >= 0; i-- {
		p.free = append(p.free, int32(i))
	}
	return p
}

// acquire returns a free slot index, growing the arena when the free-list
// is empty.
func (p *slotPool[T]) acquire() int32 {
	var id int32
	if n := len(p.free); n > 0 {
		id = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		var zero T
		p.slots = append(p.slots, zero)
		p.inUse = append(p.inUse, false)
		p.gen = append(p.gen, 0)
		id = int32(len(p.slots) - 1)
	}
	p.inUse[id] = true
	p.gen[id]++
	return id
}

// release resets the slot and returns it to the free-list. Releasing a slot
// twice is a programming error.
func (p *slotPool[T]) release(id int32) {
	if id < 0 || int(id) >= len(p.slots) || !p.inUse[id] {
		panic("cadence: release of a pooled slot that is not in use")
	}
	var zero T
	p.slots[id] = zero
	p.inUse[id] = false
	p.free = append(p.free, id)
}

// at returns the slot for id. The pointer is only valid until the next
// acquire.
func (p *slotPool[T]) at(id int32) *T {
	return &p.slots[id]
}

// live reports whether id is in use under generation g.
func (p *slotPool[T]) live(id int32, g uint32) bool {
	return id >= 0 && int(id) < len(p.slots) && p.inUse[id] && p.gen[id] == g
}

// idle returns the number of slots waiting on the free-list.
func (p *slotPool[T]) idle() int {
	return len(p.free)
}

// size returns the total number of slots ever allocated.
func (p *slotPool[T]) size() int {
	return len(p.slots)
}
