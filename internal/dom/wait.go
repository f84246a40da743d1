package dom

import (
	"context"
	"time"
)

// Waiter polls a condition with bounded retries. It replaces a flat settle
// sleep after invoking a control: asynchronous panel content gets a fixed
// window to render, and tests can inject a fake sleep.
type Waiter struct {
	Interval time.Duration
	Attempts int
	Sleep    func(time.Duration)
}

// NewWaiter builds a Waiter with a real sleep function.
func NewWaiter(interval time.Duration, attempts int) Waiter {
	return Waiter{Interval: interval, Attempts: attempts, Sleep: time.Sleep}
}

// Wait polls condition up to Attempts times, pausing Interval between polls.
// It returns true as soon as the condition holds, false when attempts are
// exhausted or the context is done.
func (w Waiter) Wait(ctx context.Context, condition func() bool) bool {
	attempts := w.Attempts
	if attempts < 1 {
		attempts = 1
	}
	sleep := w.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	for i := 0; i < attempts; i++ {
		if ctx != nil && ctx.Err() != nil {
			return false
		}
		if condition() {
			return true
		}
		if i < attempts-1 && w.Interval > 0 {
			sleep(w.Interval)
		}
	}
	return false
}
