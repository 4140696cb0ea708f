package beepaudio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// DefaultSampleRate is the speaker rate used by NewOutput when none is
// given.
const DefaultSampleRate = beep.SampleRate(48000)

// speakerLocker serialises track changes with the speaker goroutine.
type speakerLocker struct{}

func (speakerLocker) Lock()   { speaker.Lock() }
func (speakerLocker) Unlock() { speaker.Unlock() }

// Output mixes tracks to the system speaker.
type Output struct {
	rate        beep.SampleRate
	mixer       *beep.Mixer
	tracks      []*Track
	initialized bool
}

// NewOutput creates an output at the given sample rate. A zero rate selects
// DefaultSampleRate.
func NewOutput(rate beep.SampleRate) *Output {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	return &Output{rate: rate, mixer: &beep.Mixer{}}
}

// Init opens the speaker with the given buffer length and starts the mixer.
func (o *Output) Init(buffer time.Duration) error {
	if o.initialized {
		return nil
	}
	if err := speaker.Init(o.rate, o.rate.N(buffer)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	for _, t := range o.tracks {
		t.locker = speakerLocker{}
	}
	speaker.Play(o.mixer)
	o.initialized = true
	return nil
}

// Add attaches tracks to the mixer, resampling any whose rate differs from
// the output. Attached tracks synchronise with the speaker for every
// change.
func (o *Output) Add(tracks ...*Track) {
	streams := make([]beep.Streamer, 0, len(tracks))
	for _, t := range tracks {
		if t.format.SampleRate != o.rate {
			t.out = beep.Resample(4, t.format.SampleRate, o.rate, t.vol)
		}
		if o.initialized {
			t.locker = speakerLocker{}
		}
		streams = append(streams, t)
		o.tracks = append(o.tracks, t)
	}
	o.lock()
	o.mixer.Add(streams...)
	o.unlock()
}

// Tracks returns the number of tracks added.
func (o *Output) Tracks() int {
	return len(o.tracks)
}

// Stream implements beep.Streamer so an Output can be drained without a
// speaker, for rendering offline or in tests.
func (o *Output) Stream(samples [][2]float64) (int, bool) {
	return o.mixer.Stream(samples)
}

// Err implements beep.Streamer.
func (o *Output) Err() error { return nil }

// Close clears the mixer and releases the speaker.
func (o *Output) Close() {
	if !o.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	for _, t := range o.tracks {
		t.locker = &sync.Mutex{}
	}
	o.initialized = false
}

func (o *Output) lock() {
	if o.initialized {
		speaker.Lock()
	}
}

func (o *Output) unlock() {
	if o.initialized {
		speaker.Unlock()
	}
}
