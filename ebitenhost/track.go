package ebitenhost

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// bytesPerFrame is the size of one 16-bit stereo sample frame.
const bytesPerFrame = 4

// Source is a decoded 16-bit stereo PCM stream of known length.
type Source interface {
	io.ReadSeeker
	Length() int64
}

// Track plays a Source through an audio.Player. It implements
// cadence.AudioStream. Switching looping on or off rebuilds the player at
// the current position.
type Track struct {
	ctx    *audio.Context
	src    Source
	player *audio.Player
	loop   bool
	volume float64
}

// NewTrack wraps src, which must be decoded at ctx's sample rate.
func NewTrack(ctx *audio.Context, src Source) (*Track, error) {
	t := &Track{ctx: ctx, src: src, volume: 1}
	if err := t.rebuild(0, false); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadTrack reads and decodes an .mp3 or .wav file at ctx's sample rate.
func LoadTrack(ctx *audio.Context, path string) (*Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}
	reader := bytes.NewReader(data)

	var src Source
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		src, err = mp3.DecodeWithSampleRate(ctx.SampleRate(), reader)
	case ".wav":
		src, err = wav.DecodeWithSampleRate(ctx.SampleRate(), reader)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .wav)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio %s: %w", path, err)
	}
	return NewTrack(ctx, src)
}

func (t *Track) rebuild(pos time.Duration, play bool) error {
	if t.player != nil {
		if err := t.player.Close(); err != nil {
			log.Printf("[ebitenhost] close player: %v", err)
		}
	}
	if _, err := t.src.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind audio source: %w", err)
	}
	var stream io.ReadSeeker = t.src
	if t.loop {
		stream = audio.NewInfiniteLoop(t.src, t.src.Length())
	}
	p, err := t.ctx.NewPlayer(stream)
	if err != nil {
		return fmt.Errorf("failed to create audio player: %w", err)
	}
	p.SetVolume(t.volume)
	if pos > 0 {
		if err := p.SetPosition(pos); err != nil {
			log.Printf("[ebitenhost] seek: %v", err)
		}
	}
	if play {
		p.Play()
	}
	t.player = p
	return nil
}

// Play starts or resumes playback.
func (t *Track) Play() {
	t.player.Play()
}

// Stop pauses playback and rewinds to the start.
func (t *Track) Stop() {
	t.player.Pause()
	if err := t.player.SetPosition(0); err != nil {
		log.Printf("[ebitenhost] rewind: %v", err)
	}
}

// SetVolume sets the player volume in [0, 1].
func (t *Track) SetVolume(v float64) {
	t.volume = v
	t.player.SetVolume(v)
}

// SetLooping switches between looping and one-shot playback.
func (t *Track) SetLooping(loop bool) {
	if loop == t.loop {
		return
	}
	pos, playing := t.player.Position(), t.player.IsPlaying()
	t.loop = loop
	if err := t.rebuild(pos, playing); err != nil {
		log.Printf("[ebitenhost] set looping: %v", err)
	}
}

// Seek moves playback to seconds from the start. Looping tracks wrap the
// position; others clamp it to the length.
func (t *Track) Seek(seconds float64) {
	if err := t.player.SetPosition(clampPosition(seconds, t.length(), t.loop)); err != nil {
		log.Printf("[ebitenhost] seek %.3fs: %v", seconds, err)
	}
}

// length returns the duration of the source.
func (t *Track) length() time.Duration {
	frames := t.src.Length() / bytesPerFrame
	return time.Duration(frames) * time.Second / time.Duration(t.ctx.SampleRate())
}

// Playing reports whether the player is playing.
func (t *Track) Playing() bool {
	return t.player.IsPlaying()
}

// Close releases the player.
func (t *Track) Close() error {
	return t.player.Close()
}

func clampPosition(seconds float64, length time.Duration, loop bool) time.Duration {
	pos := time.Duration(seconds * float64(time.Second))
	switch {
	case pos < 0:
		return 0
	case length <= 0:
		return 0
	case loop:
		return pos % length
	case pos > length:
		return length
	}
	return pos
}
