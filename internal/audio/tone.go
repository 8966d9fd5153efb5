// Package audio generates a continuous 500Hz sine tone and exposes a
// single write-only toggle, the audio collaborator spec §5 and §6
// describe. Adapted from the teacher's internal/chip8.ManageAudio,
// which decodes and plays a one-shot assets/beep.mp3 sample on every
// sound-timer-reaches-zero event; that shape doesn't fit a
// level-triggered continuous tone, so the beep.mp3/mp3.Decode call is
// replaced by a hand-rolled beep.Streamer, while the underlying
// speaker.Init/speaker.Play plumbing (github.com/faiface/beep,
// github.com/faiface/beep/speaker) is kept.
package audio

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	toneHz     = 500.0
)

// Tone is a continuously-playing streamer gated by an atomic enabled
// flag. SetToneEnabled is the only mutation the step loop is allowed
// to make, matching spec §5's "write-only... toggling a single atomic
// boolean".
type Tone struct {
	enabled atomic.Bool
	phase   float64
}

// NewTone initializes the speaker backend and starts the tone
// streamer playing silently (enabled defaults to false).
func NewTone() (*Tone, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	t := &Tone{}
	speaker.Play(t)
	return t, nil
}

// SetToneEnabled toggles the tone on or off. Safe to call from the
// step loop's frame goroutine while Stream runs on the speaker's
// mixing goroutine.
func (t *Tone) SetToneEnabled(enabled bool) {
	t.enabled.Store(enabled)
}

// Stream implements beep.Streamer, synthesizing a continuous sine wave
// while enabled and silence otherwise. Grounded in the teacher's use
// of github.com/faiface/beep for playback, generalized from decoding a
// file to generating samples directly.
func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	step := toneHz * 2 * math.Pi / float64(sampleRate)
	on := t.enabled.Load()

	for i := range samples {
		var v float64
		if on {
			v = math.Sin(t.phase)
		}
		samples[i][0], samples[i][1] = v, v
		t.phase += step
		if t.phase > 2*math.Pi {
			t.phase -= 2 * math.Pi
		}
	}
	return len(samples), true
}

// Err always returns nil; a generated tone never fails.
func (t *Tone) Err() error {
	return nil
}
