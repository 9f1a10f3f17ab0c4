package xtime

import (
	"context"
	"time"
)

// Clock is the time source for tick loops.
type Clock interface {
	Now() time.Time
	// Sleep blocks for d or until ctx is done, whichever comes first.
	Sleep(ctx context.Context, d time.Duration) error
}

type System struct{}

var _ Clock = System{}

func (System) Now() time.Time {
	return time.Now()
}

func (System) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
