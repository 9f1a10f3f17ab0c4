package xtime

import (
	"context"
	"sync"
	"time"
)

// Fake is a Clock whose time only moves when Sleep or Advance is called.
type Fake struct {
	mu      sync.Mutex
	now     time.Time
	sleeps  int
	limit   int
	onLimit func()
}

var _ Clock = (*Fake)(nil)

func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Sleep advances the fake time by d without blocking.
func (f *Fake) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	f.now = f.now.Add(d)
	f.sleeps++
	hook := f.onLimit
	fire := hook != nil && f.sleeps == f.limit
	f.mu.Unlock()

	if fire {
		hook()
	}
	return ctx.Err()
}

func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

// Sleeps returns how many times Sleep has completed.
func (f *Fake) Sleeps() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sleeps
}

// AfterSleeps calls fn once the nth Sleep has advanced the clock, before that
// Sleep returns. Tests use it to cancel loops that never end on their own.
func (f *Fake) AfterSleeps(n int, fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.limit = n
	f.onLimit = fn
}
