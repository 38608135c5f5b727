package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrFirmware wraps any failed firmware service call.
	ErrFirmware = errors.New("firmware service failed")
	// ErrNoVideo is returned when no video service can be located.
	ErrNoVideo = errors.New("no video service available")
	// ErrNoMode is returned when the video service lists no modes.
	ErrNoMode = errors.New("no video mode available")
	// ErrSurfaceTooSmall is returned when the frame does not fit the surface.
	ErrSurfaceTooSmall = errors.New("video surface smaller than frame")
	// ErrScanline is a scanline write that does not match the frame.
	ErrScanline = errors.New("bad scanline")
	// ErrSessionClosed is a tick after the scheduler has stopped.
	ErrSessionClosed = errors.New("session closed")
	// ErrReentrant is a tick started from inside another tick.
	ErrReentrant = errors.New("recursive tick")
	// ErrConfig is an unusable configuration.
	ErrConfig = errors.New("invalid config")
)

func firmwareFailure(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrFirmware, op, err)
}

// panicError converts a recovered panic value into an error.
func panicError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", r)
}
