package dom

import (
	"context"
	"testing"
	"time"
)

func TestWaitReturnsOnFirstSuccess(t *testing.T) {
	t.Parallel()

	slept := 0
	w := Waiter{Interval: time.Second, Attempts: 5, Sleep: func(time.Duration) { slept++ }}

	polls := 0
	ok := w.Wait(context.Background(), func() bool {
		polls++
		return polls == 3
	})
	if !ok {
		t.Fatalf("expected condition to be met")
	}
	if polls != 3 {
		t.Fatalf("expected 3 polls, got %d", polls)
	}
	if slept != 2 {
		t.Fatalf("expected 2 sleeps, got %d", slept)
	}
}

func TestWaitGivesUpAfterBoundedAttempts(t *testing.T) {
	t.Parallel()

	w := Waiter{Interval: time.Second, Attempts: 4, Sleep: func(time.Duration) {}}

	polls := 0
	ok := w.Wait(context.Background(), func() bool {
		polls++
		return false
	})
	if ok {
		t.Fatalf("expected wait to give up")
	}
	if polls != 4 {
		t.Fatalf("expected 4 polls, got %d", polls)
	}
}

func TestWaitStopsWhenContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := Waiter{Interval: time.Second, Attempts: 10, Sleep: func(time.Duration) {}}
	if w.Wait(ctx, func() bool { return true }) {
		t.Fatalf("expected cancelled context to stop the wait")
	}
}
