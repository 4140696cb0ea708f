package cadence

// Impulse is a scalar that decays linearly to zero, such as a post-process
// punch set to 1 on a beat and faded out over the following frames.
type Impulse struct {
	value float64
	decay float64
}

// NewImpulse creates an impulse that loses decay units per second.
func NewImpulse(decay float64) *Impulse {
	return &Impulse{decay: decay}
}

// Set replaces the current value.
func (i *Impulse) Set(v float64) {
	i.value = v
}

// Value returns the current value.
func (i *Impulse) Value() float64 {
	return i.value
}

// Update decays the value by decay*dt, stopping at zero.
func (i *Impulse) Update(dt float64) {
	if i.value <= 0 {
		return
	}
	i.value -= i.decay * dt
	if i.value < 0 {
		i.value = 0
	}
}
