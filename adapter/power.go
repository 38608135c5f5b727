package adapter

import (
	"fmt"

	"efiboy/hal"
)

// powerSequencer runs the final shutdown: clear, optional diagnostic, delay,
// power off.
type powerSequencer struct {
	h     hal.HAL
	log   *logger
	comp  *frameCompositor
	delay uint64
	done  bool

	// started is the calendar time of Open in microseconds; zero when the
	// session runs on the cycle counter.
	started uint64
}

// Shutdown runs once; later calls return immediately. On real firmware it
// does not return.
func (p *powerSequencer) Shutdown(cause error) {
	if p.done {
		return
	}
	p.done = true

	if err := p.comp.Clear(); err != nil {
		p.log.infof("clear: %v", err)
	}
	if cause != nil {
		p.log.infof("fatal: %v", cause)
		p.showDiagnostic(cause)
	}

	p.log.infof("Shutting down in %d seconds...", p.delay/usPerSecond)
	p.h.Stall(p.delay)
	p.h.Reset(hal.ResetShutdown, hal.StatusSuccess)
}

func (p *powerSequencer) showDiagnostic(cause error) {
	v, err := p.h.LocateVideo()
	if err != nil {
		return
	}
	if err := drawDiagnostic(v, p.diagnosticLines(cause)); err != nil {
		p.log.infof("diagnostic: %v", err)
	}
}

func (p *powerSequencer) diagnosticLines(cause error) []string {
	lines := []string{"efiboy stopped:", cause.Error(), ""}
	if p.started != 0 {
		y, m, d := CivilFromDays(int64(p.started / usPerDay))
		lines = append(lines, fmt.Sprintf("session started %04d-%02d-%02d", y, m, d))
	}
	return append(lines, "Shutting down...")
}
