//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNoReset is returned when the application returns without requesting a
// platform reset.
var ErrNoReset = errors.New("application returned without reset")

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	// Stdin reads keys from the controlling terminal.
	Stdin bool
	// Duration injects an escape key after the given time (0 = never).
	Duration time.Duration
}

// RunHeadless runs the application without opening a window and returns the
// status passed to Reset.
func RunHeadless(ctx context.Context, run func(HAL), cfg HeadlessConfig) (Status, error) {
	h := newHostHAL()

	var kbd *terminalKeyboard
	if cfg.Stdin {
		k, err := startTerminalKeyboard(h.keys, h.logger)
		if err != nil {
			h.logger.WriteLineString(fmt.Sprintf("keyboard: %v", err))
		} else {
			kbd = k
		}
	}
	defer kbd.restore()

	var timeout <-chan time.Time
	if cfg.Duration > 0 {
		t := time.NewTimer(cfg.Duration)
		defer t.Stop()
		timeout = t.C
	}

	returned := h.start(run)
	for {
		select {
		case st := <-h.resetCh:
			return st, nil
		case <-returned:
			return 0, ErrNoReset
		case <-timeout:
			timeout = nil
			h.keys.push(Key{Scan: ScanEscape})
		case <-ctx.Done():
			// Ask the application to stop and wait for its reset.
			h.keys.push(Key{Scan: ScanEscape})
			ctx = context.Background()
		}
	}
}
