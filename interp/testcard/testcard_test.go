package testcard

import (
	"errors"
	"testing"

	"efiboy/interp"
	"efiboy/rom"
)

type fakeHardware struct {
	budget  int
	scheds  int
	clock   uint64
	lines   map[int]int
	held    map[interp.Key]bool
	saved   int
	loaded  int
	sent    []byte
	badRows int
}

func newFakeHardware(budget int) *fakeHardware {
	return &fakeHardware{budget: budget, lines: map[int]int{}, held: map[interp.Key]bool{}}
}

func (f *fakeHardware) JoypadPressed(k interp.Key) bool { return f.held[k] }

func (f *fakeHardware) VRAMUpdate(line int, row []uint32) {
	if len(row) != interp.VRAMWidth {
		f.badRows++
	}
	f.lines[line]++
}

func (f *fakeHardware) SoundPlay(interp.SoundID, interp.Stream) {}
func (f *fakeHardware) SoundStop(interp.SoundID)                {}
func (f *fakeHardware) SendByte(b byte)                         { f.sent = append(f.sent, b) }
func (f *fakeHardware) RecvByte() (byte, bool)                  { return 0, false }

func (f *fakeHardware) LoadRAM(size int) []byte {
	f.loaded = size
	return make([]byte, size)
}

func (f *fakeHardware) SaveRAM(ram []byte) { f.saved = len(ram) }

func (f *fakeHardware) Clock() uint64 {
	f.clock += 100
	return f.clock
}

func (f *fakeHardware) Sched() bool {
	f.scheds++
	return f.scheds <= f.budget
}

func TestRunStopsWhenSchedFails(t *testing.T) {
	hw := newFakeHardware(interp.VRAMHeight*3 + 10)
	if err := New().Run(interp.Config{NativeSpeed: true}, rom.TestCard, hw); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if hw.scheds != hw.budget+1 {
		t.Fatalf("Sched calls = %d, want %d", hw.scheds, hw.budget+1)
	}
	if hw.lines[0] != 4 || hw.lines[interp.VRAMHeight-1] != 3 {
		t.Fatalf("line 0 drawn %d times, last line %d times, want 4 and 3", hw.lines[0], hw.lines[interp.VRAMHeight-1])
	}
	if hw.badRows != 0 {
		t.Fatalf("%d rows with wrong width", hw.badRows)
	}
	if hw.loaded != saveSize || hw.saved != saveSize {
		t.Fatalf("ram loaded %d saved %d, want %d", hw.loaded, hw.saved, saveSize)
	}
}

func TestRunThrottledKeepsScheduling(t *testing.T) {
	hw := newFakeHardware(interp.VRAMHeight + 50)
	if err := New().Run(interp.Config{}, rom.TestCard, hw); err != nil {
		t.Fatalf("Run: %v", err)
	}
	// The pacing loop stopped before a second frame was started.
	if hw.lines[0] != 1 {
		t.Fatalf("line 0 drawn %d times, want 1", hw.lines[0])
	}
}

func TestRunRejectsBadImage(t *testing.T) {
	err := New().Run(interp.Config{}, []byte("nope"), newFakeHardware(1))
	if !errors.Is(err, rom.ErrSize) {
		t.Fatalf("Run() err = %v, want rom.ErrSize", err)
	}
}

func TestCursorFollowsJoypad(t *testing.T) {
	im, err := rom.Decode(rom.TestCard)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	m := newMachine(im)
	hw := newFakeHardware(0)
	x0, y0 := m.cx, m.cy

	hw.held[interp.KeyRight] = true
	for i := 0; i < 5; i++ {
		m.endFrame(hw)
	}
	if m.cx != x0+5 || m.cy != y0 {
		t.Fatalf("cursor = %d,%d, want %d,%d", m.cx, m.cy, x0+5, y0)
	}

	hw.held[interp.KeyRight] = false
	hw.held[interp.KeyStart] = true
	m.endFrame(hw)
	if m.cx != x0 || m.cy != y0 {
		t.Fatalf("cursor after start = %d,%d, want %d,%d", m.cx, m.cy, x0, y0)
	}
}

func TestButtonsActOnPress(t *testing.T) {
	im, err := rom.Decode(rom.TestCard)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	m := newMachine(im)
	hw := newFakeHardware(0)

	hw.held[interp.KeyA] = true
	m.endFrame(hw)
	m.endFrame(hw)
	if !m.invert {
		t.Fatal("invert = false after holding A, want true")
	}
	hw.held[interp.KeyA] = false
	m.endFrame(hw)
	hw.held[interp.KeyA] = true
	m.endFrame(hw)
	if m.invert {
		t.Fatal("invert = true after second press, want false")
	}

	hw.held[interp.KeyB] = true
	m.endFrame(hw)
	m.endFrame(hw)
	if len(hw.sent) != 1 {
		t.Fatalf("bytes sent = %d, want 1", len(hw.sent))
	}
}

func TestCursorIsDrawnInverted(t *testing.T) {
	im, err := rom.Decode(rom.TestCard)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	m := newMachine(im)
	m.renderLine(m.cy)
	want := im.At(m.cx, m.cy) ^ 0xFFFFFF
	if got := m.row[m.cx]; got != want {
		t.Fatalf("cursor pixel = %#06x, want %#06x", got, want)
	}
}
