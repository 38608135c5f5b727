package adapter

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"efiboy/hal"
)

type fakeLogger struct {
	lines []string
}

func (l *fakeLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *fakeLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func (l *fakeLogger) contains(sub string) bool {
	for _, line := range l.lines {
		if strings.Contains(line, sub) {
			return true
		}
	}
	return false
}

type fakeVideo struct {
	hal    *fakeHAL
	modes  []hal.Mode
	res    hal.Resolution
	set    int
	pix    []hal.Pixel
	setErr error
	bltErr error
	blts   int
}

func newFakeVideo(res ...hal.Resolution) *fakeVideo {
	v := &fakeVideo{set: -1}
	for i, r := range res {
		v.modes = append(v.modes, hal.Mode{Index: i, Resolution: r})
	}
	return v
}

func (v *fakeVideo) Modes() []hal.Mode { return v.modes }

func (v *fakeVideo) SetMode(m hal.Mode) error {
	if v.setErr != nil {
		return v.setErr
	}
	v.set = m.Index
	v.res = m.Resolution
	v.pix = make([]hal.Pixel, v.res.Stride*v.res.Height)
	return nil
}

func (v *fakeVideo) Resolution() hal.Resolution { return v.res }

func (v *fakeVideo) Blt(op hal.BltOp) error {
	if v.bltErr != nil {
		return v.bltErr
	}
	if op.X < 0 || op.Y < 0 || op.X+op.Width > v.res.Width || op.Y+op.Height > v.res.Height {
		return fmt.Errorf("blt out of bounds")
	}
	v.blts++
	switch op.Kind {
	case hal.BltVideoFill:
		v.hal.record("fill")
		for y := op.Y; y < op.Y+op.Height; y++ {
			for x := op.X; x < op.X+op.Width; x++ {
				v.pix[y*v.res.Stride+x] = op.Color
			}
		}
	case hal.BltBufferToVideo:
		v.hal.record("blt")
		for y := 0; y < op.Height; y++ {
			copy(v.pix[(op.Y+y)*v.res.Stride+op.X:], op.Src[y*op.Width:(y+1)*op.Width])
		}
	default:
		return hal.ErrUnsupported
	}
	return nil
}

func (v *fakeVideo) at(x, y int) hal.Pixel {
	return v.pix[y*v.res.Stride+x]
}

func (v *fakeVideo) snapshot() []hal.Pixel {
	out := make([]hal.Pixel, len(v.pix))
	copy(out, v.pix)
	return out
}

type fakeInput struct {
	keys  []hal.Key
	reads int
	err   error
}

func (in *fakeInput) ReadKey() (hal.Key, bool, error) {
	in.reads++
	if in.err != nil {
		return hal.Key{}, false, in.err
	}
	if len(in.keys) == 0 {
		return hal.Key{}, false, nil
	}
	k := in.keys[0]
	in.keys = in.keys[1:]
	return k, true, nil
}

func (in *fakeInput) push(keys ...hal.Key) { in.keys = append(in.keys, keys...) }

type fakeClock struct {
	cycles uint64
	t      hal.Time
	err    error
}

func (c *fakeClock) GetTime() (hal.Time, error) { return c.t, c.err }
func (c *fakeClock) Cycles() uint64             { return c.cycles }

type fakeHAL struct {
	log      *fakeLogger
	video    *fakeVideo
	input    *fakeInput
	clock    *fakeClock
	videoErr error
	inputErr error

	events []string
	stalls []uint64
	resets []hal.Status

	// onStall runs inside Stall, after the stall is recorded.
	onStall func()
}

func newFakeHAL(res ...hal.Resolution) *fakeHAL {
	if len(res) == 0 {
		res = []hal.Resolution{{Width: 800, Height: 600, Stride: 800}}
	}
	h := &fakeHAL{
		log:   &fakeLogger{},
		video: newFakeVideo(res...),
		input: &fakeInput{},
		clock: &fakeClock{},
	}
	h.video.hal = h
	return h
}

func (h *fakeHAL) record(ev string) { h.events = append(h.events, ev) }

func (h *fakeHAL) Logger() hal.Logger { return h.log }
func (h *fakeHAL) Clock() hal.Clock   { return h.clock }

func (h *fakeHAL) LocateVideo() (hal.Video, error) {
	if h.videoErr != nil {
		return nil, h.videoErr
	}
	return h.video, nil
}

func (h *fakeHAL) LocateInput() (hal.TextInput, error) {
	if h.inputErr != nil {
		return nil, h.inputErr
	}
	return h.input, nil
}

func (h *fakeHAL) Stall(us uint64) {
	h.record(fmt.Sprintf("stall %d", us))
	h.stalls = append(h.stalls, us)
	if h.onStall != nil {
		h.onStall()
	}
}

func (h *fakeHAL) Reset(kind hal.ResetKind, status hal.Status) {
	h.record(fmt.Sprintf("reset %d", kind))
	h.resets = append(h.resets, status)
}

// testConfig uses the cycle counter as a 1:1 microsecond clock.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Clock = ClockCounter
	cfg.CyclesPerMicrosecond = 1
	cfg.Unthrottled = true
	return cfg
}

func openTestSession(t *testing.T, h *fakeHAL, cfg Config) *Session {
	t.Helper()
	s, err := Open(h, cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	h.events = nil
	return s
}

func mustPanicWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %v", target)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("panic = %v, want %v", r, target)
		}
	}()
	fn()
}

var (
	white = hal.RGB(0xFF, 0xFF, 0xFF)
	red   = hal.RGB(0xFF, 0, 0)
	black = hal.RGB(0, 0, 0)
)

func printable(r rune) hal.Key { return hal.Key{Rune: r} }

var escape = hal.Key{Scan: hal.ScanEscape}
