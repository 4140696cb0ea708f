package cadence

import (
	"fmt"
	"io"
	"os"
)

// frameStats holds per-frame counters. Only gathered in debug mode.
type frameStats struct {
	time    float64
	frame   uint64
	fired   int
	pending int
	active  int
	idle    int
}

type debugState struct {
	enabled bool
	out     io.Writer
}

func newDebugState(enabled bool) debugState {
	return debugState{enabled: enabled, out: os.Stderr}
}

// SetDebugMode enables or disables per-frame stats and warnings.
func (d *Director) SetDebugMode(enabled bool) {
	d.debug.enabled = enabled
}

// SetDebugOutput redirects debug output. A nil writer restores stderr.
func (d *Director) SetDebugOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	d.debug.out = w
}

// debugLog prints frame stats to the debug writer.
func (d *Director) debugLog(st frameStats) {
	if !d.debug.enabled {
		return
	}
	_, _ = fmt.Fprintf(d.debug.out,
		"[cadence] frame %d | t=%.3fs | events fired: %d pending: %d | tweens active: %d idle: %d\n",
		st.frame, st.time, st.fired, st.pending, st.active, st.idle)
}

// debugf prints a warning when debug mode is on.
func (d *Director) debugf(format string, args ...any) {
	if !d.debug.enabled {
		return
	}
	_, _ = fmt.Fprintf(d.debug.out, "[cadence] warning: "+format+"\n", args...)
}
