package adapter

import (
	"fmt"

	"efiboy/hal"
	"efiboy/interp"
)

// Session owns the firmware handle for the adapter's lifetime. Close must
// run on every exit path; it powers the machine off.
type Session struct {
	h     hal.HAL
	log   *logger
	hw    *Adapter
	power *powerSequencer
}

// Open selects the first video mode, clears the surface and builds the
// adapter.
func Open(h hal.HAL, cfg Config) (*Session, error) {
	if h == nil {
		return nil, fmt.Errorf("%w: nil HAL", ErrConfig)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	log := &logger{out: h.Logger(), debug: cfg.Debug}

	v, err := h.LocateVideo()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoVideo, err)
	}
	modes := v.Modes()
	if len(modes) == 0 {
		return nil, ErrNoMode
	}
	if err := v.SetMode(modes[0]); err != nil {
		return nil, fmt.Errorf("set video mode %d: %w", modes[0].Index, err)
	}
	res := v.Resolution()
	log.infof("resolution %dx%d stride %d", res.Width, res.Height, res.Stride)

	comp, err := newFrameCompositor(h, cfg.FrameWidth, cfg.FrameHeight, res, cfg.RefreshInterval)
	if err != nil {
		return nil, err
	}
	if err := comp.Clear(); err != nil {
		return nil, err
	}
	log.debugf("scale %d offset %d,%d", comp.scale, comp.offX, comp.offY)

	clock := &clockSource{clk: h.Clock(), mode: cfg.Clock, cyclesPerUS: cfg.CyclesPerMicrosecond}
	var started uint64
	if cfg.Clock == ClockCalendar {
		t, err := h.Clock().GetTime()
		if err != nil {
			return nil, firmwareFailure("get time", err)
		}
		started = CalendarMicros(t)
		log.infof("clock: calendar, %04d-%02d-%02d %02d:%02d:%02d", t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second)
	} else {
		log.infof("clock: counter, %d cycles/us", cfg.CyclesPerMicrosecond)
	}

	input := newInputDebouncer(h, log, cfg.PollInterval, cfg.ReleaseAfter)
	hw := &Adapter{
		log:   log,
		clock: clock,
		input: input,
		comp:  comp,
		sched: &scheduler{
			h:           h,
			clock:       clock,
			input:       input,
			comp:        comp,
			pace:        cfg.PaceStall,
			unthrottled: cfg.Unthrottled,
		},
	}

	return &Session{
		h:     h,
		log:   log,
		hw:    hw,
		power: &powerSequencer{h: h, log: log, comp: comp, delay: cfg.ShutdownDelay, started: started},
	}, nil
}

// Hardware returns the capability implementation for the interpreter.
func (s *Session) Hardware() *Adapter { return s.hw }

// Run calls fn with the adapter. A fatal firmware failure or contract
// violation inside fn is returned as an error.
func (s *Session) Run(fn func(hw interp.Hardware) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = panicError(r)
		}
	}()
	return fn(s.hw)
}

// Close runs the power sequence. A non-nil cause is shown on screen first.
func (s *Session) Close(cause error) {
	s.power.Shutdown(cause)
}
