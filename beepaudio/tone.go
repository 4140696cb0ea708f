package beepaudio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Tone renders a seconds-long mix of sine partials at the given
// frequencies into memory. Each partial has amplitude amp/len(freqs).
// Useful as a placeholder when no music files are available.
func Tone(format beep.Format, seconds, amp float64, freqs ...float64) *Track {
	n := format.SampleRate.N(time.Duration(seconds * float64(time.Second)))
	gain := 0.0
	if len(freqs) > 0 {
		gain = amp / float64(len(freqs))
	}
	pos := 0
	gen := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= n {
			return 0, false
		}
		k := 0
		for ; k < len(samples) && pos < n; k++ {
			t := float64(pos) / float64(format.SampleRate)
			v := 0.0
			for _, f := range freqs {
				v += math.Sin(2 * math.Pi * f * t)
			}
			samples[k][0] = v * gain
			samples[k][1] = v * gain
			pos++
		}
		return k, true
	})

	buf := beep.NewBuffer(format)
	buf.Append(gen)
	return NewTrack(buf.Streamer(0, buf.Len()), format)
}
