package date

import (
	"cmp"
	"fmt"
	"time"
)

// ClockFormat is the format used to write wall-clock times.
const ClockFormat = "15:04:05"

// Clock is a wall-clock time of day with second granularity and no timezone.
type Clock struct {
	h, m, s int
}

// NewClock returns the Clock for the given hour, minute and second.
// Values out of range are normalized into [00:00:00, 23:59:59] as time.Date would.
func NewClock(hour, min, sec int) Clock {
	t := time.Date(0, time.January, 1, hour, min, sec, 0, time.UTC)
	return Clock{t.Hour(), t.Minute(), t.Second()}
}

// ClockOf returns the wall-clock part of t.
func ClockOf(t time.Time) Clock { return Clock{t.Hour(), t.Minute(), t.Second()} }

// Now returns the current wall-clock time.
func Now() Clock { return ClockOf(time.Now()) }

func (c Clock) Hour() int   { return c.h }
func (c Clock) Minute() int { return c.m }
func (c Clock) Second() int { return c.s }

// String formats the clock as HH:mm:ss.
func (c Clock) String() string { return fmt.Sprintf("%02d:%02d:%02d", c.h, c.m, c.s) }

// Compare returns -1, 0 or +1 whether c is before, equal or after x.
func (c Clock) Compare(x Clock) int {
	if r := cmp.Compare(c.h, x.h); r != 0 {
		return r
	}
	if r := cmp.Compare(c.m, x.m); r != 0 {
		return r
	}
	return cmp.Compare(c.s, x.s)
}

// ParseClock parses a wall-clock time in "15:04:05" or "15:04" format.
func ParseClock(str string) (Clock, error) {
	t, err := time.Parse(ClockFormat, str)
	if err != nil {
		var err2 error
		if t, err2 = time.Parse("15:04", str); err2 != nil {
			return Clock{}, fmt.Errorf("invalid time %q want format %q: %w", str, ClockFormat, err)
		}
	}
	return ClockOf(t), nil
}

// MustParseClock is like ParseClock but panics on error.
func MustParseClock(str string) Clock {
	c, err := ParseClock(str)
	if err != nil {
		panic(err.Error())
	}
	return c
}
