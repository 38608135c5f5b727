package adapter

import "efiboy/hal"

const (
	usPerSecond = 1_000_000
	usPerMinute = 60 * usPerSecond
	usPerHour   = 60 * usPerMinute
	usPerDay    = 24 * usPerHour
)

// clockSource turns the firmware time primitives into microseconds.
type clockSource struct {
	clk         hal.Clock
	mode        ClockMode
	cyclesPerUS uint64
}

// Now never blocks. A calendar read failure panics.
func (c *clockSource) Now() uint64 {
	if c.mode == ClockCalendar {
		t, err := c.clk.GetTime()
		if err != nil {
			panic(firmwareFailure("get time", err))
		}
		return CalendarMicros(t)
	}
	return c.clk.Cycles() / c.cyclesPerUS
}

// CalendarMicros converts a calendar reading to microseconds since
// 1970-01-01.
func CalendarMicros(t hal.Time) uint64 {
	days := DaysFromCivil(int64(t.Year), int64(t.Month), int64(t.Day))
	return uint64(days)*usPerDay +
		uint64(t.Hour)*usPerHour +
		uint64(t.Minute)*usPerMinute +
		uint64(t.Second)*usPerSecond +
		uint64(t.Nanosecond/1000)
}

// DaysFromCivil returns the number of days from 1970-01-01 to the given
// proleptic Gregorian date.
func DaysFromCivil(y, m, d int64) int64 {
	if m <= 2 {
		y--
	}
	era := y
	if era < 0 {
		era -= 399
	}
	era /= 400
	yoe := y - era*400
	mp := m - 3
	if m <= 2 {
		mp = m + 9
	}
	doy := (153*mp+2)/5 + d - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// CivilFromDays is the inverse of DaysFromCivil.
func CivilFromDays(z int64) (y, m, d int64) {
	z += 719468
	era := z
	if era < 0 {
		era -= 146096
	}
	era /= 146097
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y = yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d = doy - (153*mp+2)/5 + 1
	if mp < 10 {
		m = mp + 3
	} else {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return y, m, d
}
