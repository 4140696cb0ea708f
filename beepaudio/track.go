package beepaudio

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"
)

// looper repeats a seekable source while loop is set. When loop is off an
// exhausted source yields silence instead of ending, so the track stays in
// the mixer and can be seeked and replayed.
type looper struct {
	src  beep.StreamSeeker
	loop bool
}

func (l *looper) Stream(samples [][2]float64) (int, bool) {
	filled := 0
	for filled < len(samples) {
		n, ok := l.src.Stream(samples[filled:])
		filled += n
		if ok && n > 0 {
			continue
		}
		if err := l.src.Err(); err != nil {
			return filled, false
		}
		if !l.loop || l.src.Len() == 0 {
			clear(samples[filled:])
			break
		}
		if err := l.src.Seek(0); err != nil {
			return filled, false
		}
	}
	return len(samples), true
}

func (l *looper) Err() error { return l.src.Err() }

// Track is a seekable audio stream with pause and volume control. It
// implements cadence.AudioStream and beep.Streamer.
//
// A new track is paused at position 0 with volume 1.
type Track struct {
	format beep.Format
	src    beep.StreamSeeker
	loop   *looper
	ctrl   *beep.Ctrl
	vol    *effects.Volume
	out    beep.Streamer

	locker sync.Locker
	volume float64
}

// NewTrack wraps src, whose samples are in format.
func NewTrack(src beep.StreamSeeker, format beep.Format) *Track {
	t := &Track{
		format: format,
		src:    src,
		locker: &sync.Mutex{},
	}
	t.loop = &looper{src: src}
	t.ctrl = &beep.Ctrl{Streamer: t.loop, Paused: true}
	t.vol = &effects.Volume{Streamer: t.ctrl, Base: 2}
	t.out = t.vol
	t.setVolume(1)
	return t
}

// LoadTrack decodes an .mp3 or .wav file into memory and wraps it in a
// Track.
func LoadTrack(path string) (*Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open audio %s: %w", path, err)
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("unsupported audio format %q (supported: .mp3, .wav)", ext)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode audio %s: %w", path, err)
	}
	defer stream.Close()

	// Buffer the decoded samples so seeking is cheap and the file can close.
	buf := beep.NewBuffer(format)
	buf.Append(stream)
	return NewTrack(buf.Streamer(0, buf.Len()), format), nil
}

// Format returns the sample format of the source.
func (t *Track) Format() beep.Format {
	return t.format
}

// Stream implements beep.Streamer.
func (t *Track) Stream(samples [][2]float64) (int, bool) {
	return t.out.Stream(samples)
}

// Err implements beep.Streamer.
func (t *Track) Err() error {
	return t.out.Err()
}

// Play resumes playback from the current position.
func (t *Track) Play() {
	t.locker.Lock()
	t.ctrl.Paused = false
	t.locker.Unlock()
}

// Stop pauses playback and rewinds to the start.
func (t *Track) Stop() {
	t.locker.Lock()
	defer t.locker.Unlock()
	t.ctrl.Paused = true
	if err := t.src.Seek(0); err != nil {
		log.Printf("[beepaudio] rewind: %v", err)
	}
}

// Playing reports whether the track is unpaused.
func (t *Track) Playing() bool {
	t.locker.Lock()
	defer t.locker.Unlock()
	return !t.ctrl.Paused
}

// SetVolume sets a linear volume; 0 or less is silent.
func (t *Track) SetVolume(v float64) {
	t.locker.Lock()
	t.setVolume(v)
	t.locker.Unlock()
}

func (t *Track) setVolume(v float64) {
	t.volume = v
	if v <= 0 {
		t.vol.Volume = 0
		t.vol.Silent = true
		return
	}
	t.vol.Volume = math.Log2(v)
	t.vol.Silent = false
}

// Volume returns the linear volume last set.
func (t *Track) Volume() float64 {
	t.locker.Lock()
	defer t.locker.Unlock()
	return t.volume
}

// SetLooping sets whether playback wraps to the start at the end.
func (t *Track) SetLooping(loop bool) {
	t.locker.Lock()
	t.loop.loop = loop
	t.locker.Unlock()
}

// Seek moves playback to seconds from the start. Looping tracks wrap the
// position; others clamp it to the length.
func (t *Track) Seek(seconds float64) {
	t.locker.Lock()
	defer t.locker.Unlock()

	n := t.format.SampleRate.N(time.Duration(seconds * float64(time.Second)))
	length := t.src.Len()
	switch {
	case n < 0:
		n = 0
	case length > 0 && n >= length && t.loop.loop:
		n %= length
	case n > length:
		n = length
	}
	if err := t.src.Seek(n); err != nil {
		log.Printf("[beepaudio] seek %.3fs: %v", seconds, err)
	}
}

// Position returns the playback position in seconds.
func (t *Track) Position() float64 {
	t.locker.Lock()
	defer t.locker.Unlock()
	return t.format.SampleRate.D(t.src.Position()).Seconds()
}
