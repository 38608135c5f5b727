// Package adapter runs an interpreter on bare firmware services: it keeps
// the clock, debounces the key queue, scales frames onto the video surface
// and powers the machine off when the session ends.
package adapter

import (
	"bytes"

	"efiboy/interp"
)

// ramFiller is the content of a freshly loaded save RAM.
const ramFiller = 0xFF

// Adapter implements interp.Hardware.
type Adapter struct {
	log   *logger
	clock *clockSource
	input *inputDebouncer
	comp  *frameCompositor
	sched *scheduler
}

var _ interp.Hardware = (*Adapter)(nil)

// JoypadPressed reports whether the held key maps to k.
func (a *Adapter) JoypadPressed(k interp.Key) bool {
	return a.input.Pressed(k)
}

// VRAMUpdate stores one row of the frame. It panics on a row that does not
// fit the frame.
func (a *Adapter) VRAMUpdate(line int, row []uint32) {
	a.comp.WriteScanline(line, row)
}

// SoundPlay is a no-op; there is no audio output.
func (a *Adapter) SoundPlay(id interp.SoundID, s interp.Stream) {}

// SoundStop is a no-op.
func (a *Adapter) SoundStop(id interp.SoundID) {}

// SendByte drops b; there is no serial link.
func (a *Adapter) SendByte(b byte) {}

// RecvByte never has a byte.
func (a *Adapter) RecvByte() (byte, bool) {
	return 0, false
}

// LoadRAM returns size bytes of filler. Nothing is persisted.
func (a *Adapter) LoadRAM(size int) []byte {
	if size <= 0 {
		return nil
	}
	return bytes.Repeat([]byte{ramFiller}, size)
}

// SaveRAM discards ram.
func (a *Adapter) SaveRAM(ram []byte) {
	a.log.debugf("save ram: discarding %d bytes", len(ram))
}

// Clock returns the current time in microseconds.
func (a *Adapter) Clock() uint64 {
	return a.clock.Now()
}

// Sched runs one scheduler step. It returns false once the cancel key is
// read; calling it again after that panics.
func (a *Adapter) Sched() bool {
	return a.sched.tick()
}
