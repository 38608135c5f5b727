package adapter

import (
	"fmt"

	"efiboy/hal"
)

type logger struct {
	out   hal.Logger
	debug bool
}

func (l *logger) infof(format string, args ...any) {
	if l == nil || l.out == nil {
		return
	}
	l.out.WriteLineString("info: " + fmt.Sprintf(format, args...))
}

func (l *logger) debugf(format string, args ...any) {
	if l == nil || l.out == nil || !l.debug {
		return
	}
	l.out.WriteLineString("debug: " + fmt.Sprintf(format, args...))
}
