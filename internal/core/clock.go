package core

import (
	"context"
	"sync/atomic"
	"time"
)

// Clock is a monotonic millisecond counter with a single producer goroutine,
// modeled after a periodic timer interrupt. Consumers read the counter
// without locks; the 32-bit width is torn-read-safe via atomics and wraps
// after ~49 days, which outlives any session.
type Clock struct {
	ms      atomic.Uint32
	cancel  context.CancelFunc
	stopped chan struct{}
}

// NewClock creates a stopped clock. Call Start to begin counting.
func NewClock() *Clock {
	return &Clock{}
}

// Start launches the producer goroutine incrementing the counter every
// millisecond. Starting an already-started clock is a no-op.
func (c *Clock) Start() {
	if c.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.stopped = make(chan struct{})

	go func() {
		defer close(c.stopped)
		ticker := time.NewTicker(time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.ms.Add(1)
			}
		}
	}()
}

// Stop halts the producer goroutine and waits for it to exit.
func (c *Clock) Stop() {
	if c.cancel == nil {
		return
	}
	c.cancel()
	<-c.stopped
	c.cancel = nil
}

// Now returns the current millisecond count.
func (c *Clock) Now() uint32 {
	return c.ms.Load()
}

// WaitUntil blocks until the counter reaches at least target.
// There is no cancellation; a wait always runs to completion.
func (c *Clock) WaitUntil(target uint32) {
	for c.ms.Load() < target {
		time.Sleep(time.Millisecond)
	}
}

// Sleep blocks for the given number of milliseconds of clock time.
func (c *Clock) Sleep(ms uint32) {
	c.WaitUntil(c.ms.Load() + ms)
}

// Advance adds to the counter directly. Intended for tests that need to
// drive the clock without the producer goroutine.
func (c *Clock) Advance(ms uint32) {
	c.ms.Add(ms)
}
