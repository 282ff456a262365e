// Package audio renders the game's buzzer sounds through the speaker: square
// wave tones, short tunes and the looping background melody. Everything
// degrades to a no-op when audio is disabled or the device fails to open.
package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// tone is a square-wave streamer of fixed pitch and length, matching the
// character of a piezo buzzer.
type tone struct {
	freq     float64
	phase    float64
	samples  int
	position int
	rate     beep.SampleRate
}

// NewTone creates a square-wave streamer. A frequency of 0 produces silence
// for the duration, used as a rest between notes.
func NewTone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:    freq,
		samples: rate.N(d),
		rate:    rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.samples {
			return i, false
		}

		var val float64
		if t.freq > 0 {
			if t.phase < 0.5 {
				val = volume
			} else {
				val = -volume
			}
			t.phase += t.freq / float64(t.rate)
			if t.phase >= 1 {
				t.phase -= 1
			}
		}

		samples[i][0] = val
		samples[i][1] = val
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// volume keeps the square wave well below clipping when tones overlap in the
// mixer.
const volume = 0.25

// Note is one step of a tune.
type Note struct {
	Freq float64 // Hz, 0 for a rest
	Ms   int
}

// tuneStreamer builds a sequential streamer from a note table.
func tuneStreamer(notes []Note, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, NewTone(n.Freq, time.Duration(n.Ms)*time.Millisecond, rate))
	}
	return beep.Seq(parts...)
}
