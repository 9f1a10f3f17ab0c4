package source

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"
)

const clockLayout = "03:04 PM"

var ErrInvalidTimezone = errors.New("invalid time zone")

// Clock shows the wall time of a timezone as "hh:mm AM/PM".
type Clock struct {
	loc *time.Location
}

var _ Source = (*Clock)(nil)

// NewClock resolves an IANA timezone name such as "America/New_York".
func NewClock(tz string) (*Clock, error) {
	tz = strings.TrimSpace(tz)
	if tz == "" || tz == "Local" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, tz)
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTimezone, err)
	}
	return &Clock{loc: loc}, nil
}

func (c *Clock) Location() *time.Location {
	return c.loc
}

func (c *Clock) Next(now time.Time) (string, bool) {
	return now.In(c.loc).Format(clockLayout), true
}

func (c *Clock) Policy() Policy {
	return RenderOnChange
}
