package core

import "testing"

func TestClockAdvance(t *testing.T) {
	c := NewClock()

	if c.Now() != 0 {
		t.Errorf("new clock Now = %d, want 0", c.Now())
	}

	c.Advance(400)
	if c.Now() != 400 {
		t.Errorf("Now after Advance(400) = %d, want 400", c.Now())
	}

	c.Advance(1)
	if c.Now() != 401 {
		t.Errorf("Now after Advance(1) = %d, want 401", c.Now())
	}
}

func TestClockWaitUntilAlreadyPassed(t *testing.T) {
	c := NewClock()
	c.Advance(1000)

	// Target already reached: must return immediately
	c.WaitUntil(500)
	if c.Now() != 1000 {
		t.Errorf("Now = %d, want 1000", c.Now())
	}
}

func TestClockStartStop(t *testing.T) {
	c := NewClock()
	c.Start()
	defer c.Stop()

	// The producer should advance the counter past 2ms reasonably soon
	c.WaitUntil(2)
	if c.Now() < 2 {
		t.Errorf("Now = %d, want >= 2", c.Now())
	}

	// Double Start is a no-op, Stop is idempotent after the deferred call
	c.Start()
}
