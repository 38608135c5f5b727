// Package interp defines the contract between an emulation interpreter and the
// platform that hosts it.
package interp

// Native VRAM geometry of the emulated display.
const (
	VRAMWidth  = 160
	VRAMHeight = 144
)

// Key is a logical joypad button.
type Key uint8

const (
	KeyRight Key = iota
	KeyLeft
	KeyUp
	KeyDown
	KeyA
	KeyB
	KeySelect
	KeyStart
)

var keyNames = [...]string{
	KeyRight:  "right",
	KeyLeft:   "left",
	KeyUp:     "up",
	KeyDown:   "down",
	KeyA:      "a",
	KeyB:      "b",
	KeySelect: "select",
	KeyStart:  "start",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// SoundID identifies an audio channel.
type SoundID uint8

// Stream produces audio samples for a channel.
type Stream interface {
	Next(rate uint32) uint16
}

// Hardware is the set of operations an interpreter needs from its platform.
type Hardware interface {
	// JoypadPressed reports whether the logical button is held.
	JoypadPressed(k Key) bool
	// VRAMUpdate replaces one scanline of the display. len(row) must equal
	// the display width.
	VRAMUpdate(line int, row []uint32)

	SoundPlay(id SoundID, s Stream)
	SoundStop(id SoundID)

	SendByte(b byte)
	RecvByte() (byte, bool)

	LoadRAM(size int) []byte
	SaveRAM(ram []byte)

	// Clock returns a monotonic microsecond counter.
	Clock() uint64
	// Sched is called between instruction batches. Returning false stops
	// the interpreter.
	Sched() bool
}

// Config is the interpreter run configuration.
type Config struct {
	// NativeSpeed runs as fast as possible instead of pacing to real time.
	NativeSpeed bool
}

// Interpreter runs a program image against a Hardware until Sched reports
// false or the program fails.
type Interpreter interface {
	Run(cfg Config, image []byte, hw Hardware) error
}
