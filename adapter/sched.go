package adapter

import "efiboy/hal"

// scheduler is the per-step entry point called by the interpreter.
type scheduler struct {
	h     hal.HAL
	clock *clockSource
	input *inputDebouncer
	comp  *frameCompositor

	pace        uint64
	unthrottled bool

	stopped bool
	inTick  bool
}

// tick returns false once, when the cancel key is read. Calling it again
// after that, or from inside a firmware call made by tick, panics.
func (s *scheduler) tick() bool {
	if s.stopped {
		panic(ErrSessionClosed)
	}
	if s.inTick {
		panic(ErrReentrant)
	}
	s.inTick = true
	defer func() { s.inTick = false }()

	now := s.clock.Now()
	if !s.input.tick(now) {
		s.stopped = true
		return false
	}
	s.comp.Flush(now)
	if !s.unthrottled && s.pace > 0 {
		s.h.Stall(s.pace)
	}
	return true
}
