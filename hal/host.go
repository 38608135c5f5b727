//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Host video modes, in firmware enumeration order.
var hostModes = []Resolution{
	{Width: 800, Height: 600, Stride: 800},
	{Width: 1024, Height: 768, Stride: 1024},
	{Width: 640, Height: 480, Stride: 640},
}

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	keys   *hostKeyQueue
	clock  *hostClock

	resetOnce sync.Once
	resetCh   chan Status
}

func newHostHAL() *hostHAL {
	return &hostHAL{
		logger:  &hostLogger{w: os.Stderr, eol: "\n"},
		fb:      newHostFramebuffer(hostModes...),
		keys:    newHostKeyQueue(),
		clock:   newHostClock(time.Now),
		resetCh: make(chan Status, 1),
	}
}

func (h *hostHAL) Logger() Logger { return h.logger }
func (h *hostHAL) Clock() Clock   { return h.clock }

func (h *hostHAL) LocateVideo() (Video, error)     { return h.fb, nil }
func (h *hostHAL) LocateInput() (TextInput, error) { return h.keys, nil }

func (h *hostHAL) Stall(us uint64) {
	time.Sleep(time.Duration(us) * time.Microsecond)
}

// Reset hands the status to the runner and parks the calling goroutine.
// The runner owns process exit.
func (h *hostHAL) Reset(kind ResetKind, status Status) {
	h.resetOnce.Do(func() {
		h.logger.WriteLineString(fmt.Sprintf("reset: kind=%d status=%d", kind, status))
		h.resetCh <- status
	})
	select {}
}

// start runs the firmware application on its own goroutine, the way the
// firmware would call the image entry point.
func (h *hostHAL) start(run func(HAL)) <-chan struct{} {
	returned := make(chan struct{})
	go func() {
		defer close(returned)
		run(h)
	}()
	return returned
}

type hostLogger struct {
	mu  sync.Mutex
	w   io.Writer
	eol string
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.w, s)
	io.WriteString(l.w, l.eol)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	io.WriteString(l.w, l.eol)
}

func (l *hostLogger) setEOL(eol string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.eol = eol
}
