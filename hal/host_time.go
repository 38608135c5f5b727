//go:build !tinygo

package hal

import "time"

// HostCyclesPerMicrosecond is the nominal rate of the host cycle counter.
const HostCyclesPerMicrosecond = 2000

type hostClock struct {
	now   func() time.Time
	start time.Time
}

func newHostClock(now func() time.Time) *hostClock {
	return &hostClock{now: now, start: now()}
}

func (c *hostClock) GetTime() (Time, error) {
	t := c.now().UTC()
	return Time{
		Year:       t.Year(),
		Month:      int(t.Month()),
		Day:        t.Day(),
		Hour:       t.Hour(),
		Minute:     t.Minute(),
		Second:     t.Second(),
		Nanosecond: t.Nanosecond(),
	}, nil
}

// Cycles emulates a free-running counter from the monotonic clock.
func (c *hostClock) Cycles() uint64 {
	ns := c.now().Sub(c.start).Nanoseconds()
	if ns < 0 {
		ns = 0
	}
	return uint64(ns) * (HostCyclesPerMicrosecond / 1000)
}
