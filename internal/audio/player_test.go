package audio

import (
	"testing"
	"time"
)

func TestToneLength(t *testing.T) {
	s := NewTone(440, 100*time.Millisecond, sampleRate)
	want := sampleRate.N(100 * time.Millisecond)

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if total != want {
		t.Errorf("tone produced %d samples, want %d", total, want)
	}
}

func TestToneRestIsSilent(t *testing.T) {
	s := NewTone(0, 10*time.Millisecond, sampleRate)
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] != 0 || buf[i][1] != 0 {
				t.Fatal("rest tone produced a nonzero sample")
			}
		}
		if !ok {
			break
		}
	}
}

func TestToneAmplitudeBounded(t *testing.T) {
	s := NewTone(880, 20*time.Millisecond, sampleRate)
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v < -volume || v > volume {
				t.Fatalf("sample %f outside [-%f, %f]", v, volume, volume)
			}
		}
		if !ok {
			break
		}
	}
}

func TestTuneStreamerDuration(t *testing.T) {
	notes := []Note{{Freq: 440, Ms: 50}, {Freq: 0, Ms: 25}, {Freq: 660, Ms: 50}}
	s := tuneStreamer(notes, sampleRate)

	want := 0
	for _, n := range notes {
		want += sampleRate.N(time.Duration(n.Ms) * time.Millisecond)
	}

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if total != want {
		t.Errorf("tune produced %d samples, want %d", total, want)
	}
}

func TestLoopingTuneNeverDrains(t *testing.T) {
	notes := []Note{{Freq: 440, Ms: 1}}
	l := newLoopingTune(notes, sampleRate)

	buf := make([][2]float64, 4096)
	for i := 0; i < 20; i++ {
		n, ok := l.Stream(buf)
		if n != len(buf) || !ok {
			t.Fatalf("loop drained on pass %d: n=%d ok=%v", i, n, ok)
		}
	}
}

func TestUninitializedPlayerIsNoOp(t *testing.T) {
	// No speaker in CI; every call must be safe without Init.
	p := NewPlayer()
	p.PlayPickup(500, 500)
	p.PlayStartup()
	p.PlayFanfare()
	p.StartBackground()
	p.StopBackground()
	p.Close()
}
