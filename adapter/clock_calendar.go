//go:build calendarclock

package adapter

const defaultClockMode = ClockCalendar
