package cadence

// Key identifies a directional key read by Parallax.
type Key uint8

// Directional keys.
const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown

	keyCount
)

var keyNames = [keyCount]string{"left", "right", "up", "down"}

// String returns the lower-case key name.
func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return "unknown"
}

// ParseKey returns the Key named s ("left", "right", "up", "down").
func ParseKey(s string) (Key, bool) {
	for i, n := range keyNames {
		if n == s {
			return Key(i), true
		}
	}
	return 0, false
}

// InputState is the read-only pointer and key capability consumed by
// Parallax. Pointer coordinates are in screen space, Y down.
type InputState interface {
	Pointer() (x, y float64)
	KeyPressed(k Key) bool
}

// inputStepper is implemented by input sources that advance queued state
// once per frame. Director steps its input before anything reads it.
type inputStepper interface {
	step()
}
