package adapter

import (
	"errors"
	"testing"
	"time"

	"efiboy/hal"
)

func TestDaysFromCivilKnownDates(t *testing.T) {
	tests := []struct {
		y, m, d int64
		want    int64
	}{
		{1970, 1, 1, 0},
		{2000, 3, 1, 11017},
		{1969, 12, 31, -1},
		{2000, 2, 29, 11016},
		{2024, 1, 1, 19723},
		{0, 3, 1, -719468},
	}
	for _, tt := range tests {
		if got := DaysFromCivil(tt.y, tt.m, tt.d); got != tt.want {
			t.Fatalf("DaysFromCivil(%d, %d, %d) = %d, want %d", tt.y, tt.m, tt.d, got, tt.want)
		}
	}
}

func TestCivilFromDaysMatchesTimePackage(t *testing.T) {
	// Years 0001..9999.
	for z := int64(-719162); z <= 2932896; z += 37 {
		y, m, d := CivilFromDays(z)
		ref := time.Unix(z*86400, 0).UTC()
		if y != int64(ref.Year()) || m != int64(ref.Month()) || d != int64(ref.Day()) {
			t.Fatalf("CivilFromDays(%d) = %d-%d-%d, want %s", z, y, m, d, ref.Format("2006-01-02"))
		}
		if back := DaysFromCivil(y, m, d); back != z {
			t.Fatalf("DaysFromCivil(CivilFromDays(%d)) = %d", z, back)
		}
	}
}

func TestCivilRoundTripNegativeYears(t *testing.T) {
	for z := int64(-2_000_000); z < -700_000; z += 101 {
		y, m, d := CivilFromDays(z)
		if m < 1 || m > 12 || d < 1 || d > 31 {
			t.Fatalf("CivilFromDays(%d) = %d-%d-%d, invalid date", z, y, m, d)
		}
		if back := DaysFromCivil(y, m, d); back != z {
			t.Fatalf("DaysFromCivil(CivilFromDays(%d)) = %d", z, back)
		}
	}
}

func TestCalendarClockMidnight(t *testing.T) {
	c := &clockSource{
		clk:  &fakeClock{t: hal.Time{Year: 2024, Month: 1, Day: 1}},
		mode: ClockCalendar,
	}
	want := uint64(DaysFromCivil(2024, 1, 1)) * 86_400_000_000
	if got := c.Now(); got != want {
		t.Fatalf("Now() = %d, want %d", got, want)
	}
}

func TestCalendarClockAddsTimeOfDay(t *testing.T) {
	c := &clockSource{
		clk: &fakeClock{t: hal.Time{
			Year: 1970, Month: 1, Day: 2,
			Hour: 1, Minute: 2, Second: 3, Nanosecond: 4_567_890,
		}},
		mode: ClockCalendar,
	}
	want := uint64(86_400_000_000 + 3_600_000_000 + 2*60_000_000 + 3_000_000 + 4_567)
	if got := c.Now(); got != want {
		t.Fatalf("Now() = %d, want %d", got, want)
	}
}

func TestCalendarClockReadFailurePanics(t *testing.T) {
	readErr := errors.New("rtc offline")
	c := &clockSource{clk: &fakeClock{err: readErr}, mode: ClockCalendar}
	mustPanicWith(t, ErrFirmware, func() { c.Now() })
	mustPanicWith(t, readErr, func() { c.Now() })
}

func TestCounterClockDivides(t *testing.T) {
	fc := &fakeClock{cycles: 2_000_000_123}
	c := &clockSource{clk: fc, mode: ClockCounter, cyclesPerUS: 2000}
	if got := c.Now(); got != 1_000_000 {
		t.Fatalf("Now() = %d, want 1000000", got)
	}
}

func TestElapsedAcrossWraparound(t *testing.T) {
	for _, d := range []uint64{0, 1, 25_000, 200_000, 1 << 40} {
		t1 := ^uint64(0) - 10
		t2 := t1 + d
		if got := elapsed(t2, t1); got != d {
			t.Fatalf("elapsed(%d, %d) = %d, want %d", t2, t1, got, d)
		}
	}
}

func TestGateFirstCallDue(t *testing.T) {
	g := gate{interval: 100}
	if !g.due(5) {
		t.Fatal("first due() = false, want true")
	}
	if g.due(105) {
		t.Fatal("due() at exactly one interval = true, want false")
	}
	if !g.due(106) {
		t.Fatal("due() past interval = false, want true")
	}
}

func TestGateAcrossWraparound(t *testing.T) {
	g := gate{interval: 100}
	start := ^uint64(0) - 50
	g.due(start)
	if g.due(start + 80) {
		t.Fatal("due() before interval across wrap = true, want false")
	}
	if !g.due(start + 150) {
		t.Fatal("due() after interval across wrap = false, want true")
	}
}
