//go:build !tinygo

package hal

import (
	"errors"
	"fmt"
	"os"
	"sync"
)

var errNoModeSet = errors.New("no video mode set")

// hostFramebuffer emulates the firmware video surface in memory.
type hostFramebuffer struct {
	mu    sync.Mutex
	modes []Mode
	cur   Mode
	set   bool
	buf   []Pixel
}

func newHostFramebuffer(res ...Resolution) *hostFramebuffer {
	modes := make([]Mode, 0, len(res))
	for i, r := range res {
		if r.Stride < r.Width {
			r.Stride = r.Width
		}
		modes = append(modes, Mode{Index: i, Resolution: r})
	}
	return &hostFramebuffer{modes: modes}
}

func (f *hostFramebuffer) Modes() []Mode {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Mode, len(f.modes))
	copy(out, f.modes)
	return out
}

func (f *hostFramebuffer) SetMode(m Mode) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if m.Index < 0 || m.Index >= len(f.modes) {
		return fmt.Errorf("set mode %d: %w", m.Index, os.ErrInvalid)
	}
	f.cur = f.modes[m.Index]
	f.set = true
	res := f.cur.Resolution
	f.buf = make([]Pixel, res.Stride*res.Height)
	return nil
}

func (f *hostFramebuffer) Resolution() Resolution {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cur.Resolution
}

func (f *hostFramebuffer) Blt(op BltOp) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.set {
		return errNoModeSet
	}

	res := f.cur.Resolution
	if op.Width <= 0 || op.Height <= 0 {
		return nil
	}
	if op.X < 0 || op.Y < 0 || op.X+op.Width > res.Width || op.Y+op.Height > res.Height {
		return fmt.Errorf("blt %d,%d %dx%d: %w", op.X, op.Y, op.Width, op.Height, os.ErrInvalid)
	}

	switch op.Kind {
	case BltVideoFill:
		for y := op.Y; y < op.Y+op.Height; y++ {
			row := f.buf[y*res.Stride+op.X : y*res.Stride+op.X+op.Width]
			for i := range row {
				row[i] = op.Color
			}
		}
	case BltBufferToVideo:
		if len(op.Src) < op.Width*op.Height {
			return fmt.Errorf("blt source %d pixels for %dx%d: %w", len(op.Src), op.Width, op.Height, os.ErrInvalid)
		}
		for y := 0; y < op.Height; y++ {
			dst := (op.Y+y)*res.Stride + op.X
			copy(f.buf[dst:dst+op.Width], op.Src[y*op.Width:(y+1)*op.Width])
		}
	default:
		return fmt.Errorf("blt kind %d: %w", op.Kind, ErrUnsupported)
	}
	return nil
}

// snapshotRGBA copies the visible surface into dst as RGBA bytes and returns
// the resolution. dst is reallocated when it is too small.
func (f *hostFramebuffer) snapshotRGBA(dst []byte) (Resolution, []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()

	res := f.cur.Resolution
	need := res.Width * res.Height * 4
	if cap(dst) < need {
		dst = make([]byte, need)
	}
	dst = dst[:need]
	if !f.set {
		return res, dst
	}
	for y := 0; y < res.Height; y++ {
		src := f.buf[y*res.Stride : y*res.Stride+res.Width]
		j := y * res.Width * 4
		for _, p := range src {
			dst[j+0] = p.Red
			dst[j+1] = p.Green
			dst[j+2] = p.Blue
			dst[j+3] = 0xFF
			j += 4
		}
	}
	return res, dst
}
