package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Note tables for the built-in tunes. The startup jingle doubles as the
// background melody.
var (
	startupTune = []Note{
		{Freq: 220, Ms: 200},  // A3
		{Freq: 523, Ms: 300},  // C5
		{Freq: 123, Ms: 400},  // B2
		{Freq: 37, Ms: 100},   // D1
		{Freq: 1397, Ms: 500}, // F6
	}

	victoryFanfare = []Note{
		{Freq: 800, Ms: 200},
		{Freq: 1000, Ms: 200},
		{Freq: 1200, Ms: 200},
		{Freq: 1500, Ms: 400},
	}
)

// Player owns the speaker and mixes game sounds into it. A disabled or
// failed-to-initialize Player accepts every call and does nothing, so the
// rest of the program never branches on audio availability.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	background  *beep.Ctrl
	initialized bool
}

// NewPlayer creates an uninitialized Player.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker and starts the mixer. Safe to call more than once.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences everything. The speaker itself stays open; beep has no
// teardown call.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	if p.background != nil {
		p.background.Paused = true
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// play adds a one-shot streamer to the mixer.
func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// PlayPickup sounds the heart-collection note.
func (p *Player) PlayPickup(freq, ms int) {
	p.play(NewTone(float64(freq), time.Duration(ms)*time.Millisecond, sampleRate))
}

// PlayStartup plays the startup jingle once.
func (p *Player) PlayStartup() {
	p.play(tuneStreamer(startupTune, sampleRate))
}

// PlayFanfare plays the four-note victory fanfare.
func (p *Player) PlayFanfare() {
	p.play(tuneStreamer(victoryFanfare, sampleRate))
}

// StartBackground starts the looping background melody. Calling it while the
// loop is already running resumes a paused loop and otherwise does nothing.
func (p *Player) StartBackground() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()

	if p.background != nil {
		p.background.Paused = false
		return
	}
	p.background = &beep.Ctrl{Streamer: newLoopingTune(startupTune, sampleRate)}
	p.mixer.Add(p.background)
}

// StopBackground pauses the background melody.
func (p *Player) StopBackground() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.background == nil {
		return
	}
	speaker.Lock()
	p.background.Paused = true
	speaker.Unlock()
}

// loopingTune replays a note table forever. It rebuilds the sequence
// whenever the current pass drains, so it never reports exhaustion.
type loopingTune struct {
	notes   []Note
	rate    beep.SampleRate
	current beep.Streamer
}

func newLoopingTune(notes []Note, rate beep.SampleRate) *loopingTune {
	return &loopingTune{notes: notes, rate: rate}
}

func (l *loopingTune) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		if l.current == nil {
			l.current = tuneStreamer(l.notes, l.rate)
		}
		m, more := l.current.Stream(samples[n:])
		n += m
		if !more {
			l.current = nil
		}
	}
	return n, true
}

func (l *loopingTune) Err() error { return nil }
