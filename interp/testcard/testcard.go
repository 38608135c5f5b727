// Package testcard is a small stand-in interpreter. It scrolls the tile from
// a program image across the display and moves a cursor with the joypad, which
// is enough to exercise every path of a Hardware implementation.
package testcard

import (
	"fmt"
	"time"

	"efiboy/interp"
	"efiboy/rom"
)

const (
	cursorSize = 8
	saveSize   = 8 * 1024

	// frameMicros is one frame at the native refresh rate (~59.7 Hz).
	frameMicros = uint64(time.Second/time.Microsecond) * 10 / 597
)

// Interpreter implements interp.Interpreter.
type Interpreter struct{}

func New() *Interpreter { return &Interpreter{} }

var _ interp.Interpreter = (*Interpreter)(nil)

// Run renders frames until hw.Sched reports false.
func (*Interpreter) Run(cfg interp.Config, image []byte, hw interp.Hardware) error {
	im, err := rom.Decode(image)
	if err != nil {
		return fmt.Errorf("testcard: %w", err)
	}
	m := newMachine(im)
	ram := hw.LoadRAM(saveSize)

	for {
		start := hw.Clock()
		for line := 0; line < interp.VRAMHeight; line++ {
			m.renderLine(line)
			hw.VRAMUpdate(line, m.row[:])
			if !hw.Sched() {
				hw.SaveRAM(ram)
				return nil
			}
		}
		m.endFrame(hw)

		if cfg.NativeSpeed {
			continue
		}
		for hw.Clock()-start < frameMicros {
			if !hw.Sched() {
				hw.SaveRAM(ram)
				return nil
			}
		}
	}
}

type machine struct {
	im *rom.Image

	frame   uint64
	cx, cy  int
	invert  bool
	rotate  int
	prevBtn [8]bool

	row [interp.VRAMWidth]uint32
}

func newMachine(im *rom.Image) *machine {
	m := &machine{im: im}
	m.home()
	return m
}

func (m *machine) home() {
	m.cx = (interp.VRAMWidth - cursorSize) / 2
	m.cy = (interp.VRAMHeight - cursorSize) / 2
}

func (m *machine) renderLine(line int) {
	scroll := int(m.frame % uint64(m.im.Width*m.im.Height))
	for x := range m.row {
		c := m.color(x+scroll, line+scroll/2)
		if x >= m.cx && x < m.cx+cursorSize && line >= m.cy && line < m.cy+cursorSize {
			c ^= 0xFFFFFF
		}
		m.row[x] = c
	}
}

func (m *machine) color(x, y int) uint32 {
	if m.rotate == 0 && !m.invert {
		return m.im.At(x, y)
	}
	idx := m.im.Pix[(y%m.im.Height)*m.im.Width+x%m.im.Width]
	c := m.im.Palette[(int(idx)+m.rotate)%rom.Colors]
	if m.invert {
		c ^= 0xFFFFFF
	}
	return c
}

// endFrame applies joypad input. Buttons act on press, the d-pad while held.
func (m *machine) endFrame(hw interp.Hardware) {
	m.frame++

	if hw.JoypadPressed(interp.KeyLeft) && m.cx > 0 {
		m.cx--
	}
	if hw.JoypadPressed(interp.KeyRight) && m.cx < interp.VRAMWidth-cursorSize {
		m.cx++
	}
	if hw.JoypadPressed(interp.KeyUp) && m.cy > 0 {
		m.cy--
	}
	if hw.JoypadPressed(interp.KeyDown) && m.cy < interp.VRAMHeight-cursorSize {
		m.cy++
	}

	if m.edge(hw, interp.KeyA) {
		m.invert = !m.invert
	}
	if m.edge(hw, interp.KeyB) {
		hw.SendByte(byte(m.frame))
	}
	if m.edge(hw, interp.KeySelect) {
		m.rotate = (m.rotate + 1) % rom.Colors
	}
	if m.edge(hw, interp.KeyStart) {
		m.home()
	}
}

func (m *machine) edge(hw interp.Hardware, k interp.Key) bool {
	down := hw.JoypadPressed(k)
	pressed := down && !m.prevBtn[k]
	m.prevBtn[k] = down
	return pressed
}
