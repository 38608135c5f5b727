package adapter

import (
	"fmt"

	"efiboy/interp"
)

// ClockMode selects the time source behind Clock.
type ClockMode uint8

const (
	// ClockCounter divides the cycle counter by a calibration constant.
	ClockCounter ClockMode = iota
	// ClockCalendar derives time from the firmware calendar.
	ClockCalendar
)

func (m ClockMode) String() string {
	switch m {
	case ClockCounter:
		return "counter"
	case ClockCalendar:
		return "calendar"
	}
	return fmt.Sprintf("ClockMode(%d)", uint8(m))
}

// Config holds the adapter's static settings. Intervals are in clock units
// (microseconds).
type Config struct {
	Clock                ClockMode
	CyclesPerMicrosecond uint64

	PollInterval    uint64
	ReleaseAfter    uint64
	RefreshInterval uint64
	PaceStall       uint64
	ShutdownDelay   uint64

	// Unthrottled disables the pacing stall.
	Unthrottled bool
	Debug       bool

	FrameWidth  int
	FrameHeight int
}

// DefaultConfig returns the built-in settings. The clock mode is fixed at
// build time (see clock_counter.go and clock_calendar.go).
func DefaultConfig() Config {
	return Config{
		Clock:                defaultClockMode,
		CyclesPerMicrosecond: 2000,
		PollInterval:         20_000,
		ReleaseAfter:         200_000,
		RefreshInterval:      50_000,
		PaceStall:            1_000_000 / 600,
		ShutdownDelay:        3_000_000,
		FrameWidth:           interp.VRAMWidth,
		FrameHeight:          interp.VRAMHeight,
	}
}

func (c Config) validate() error {
	if c.Clock != ClockCounter && c.Clock != ClockCalendar {
		return fmt.Errorf("%w: clock mode %d", ErrConfig, c.Clock)
	}
	if c.Clock == ClockCounter && c.CyclesPerMicrosecond == 0 {
		return fmt.Errorf("%w: zero cycles per microsecond", ErrConfig)
	}
	if c.FrameWidth <= 0 || c.FrameHeight <= 0 {
		return fmt.Errorf("%w: frame %dx%d", ErrConfig, c.FrameWidth, c.FrameHeight)
	}
	return nil
}
