package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrUnsupported    = errors.New("unsupported")
)

// Resolution describes the active video mode.
//
// Stride is in pixels, not bytes.
type Resolution struct {
	Width  int
	Height int
	Stride int
}

// Mode is one entry of the firmware's video mode list.
type Mode struct {
	Index      int
	Resolution Resolution
}

// Pixel is a 32-bit blue/green/red/reserved surface pixel.
type Pixel struct {
	Blue     uint8
	Green    uint8
	Red      uint8
	Reserved uint8
}

// RGB builds a Pixel from 8-bit channels.
func RGB(r, g, b uint8) Pixel {
	return Pixel{Red: r, Green: g, Blue: b}
}

// BltKind selects a block transfer operation.
type BltKind uint8

const (
	// BltVideoFill fills a rectangle of the surface with Color.
	BltVideoFill BltKind = iota + 1
	// BltBufferToVideo copies Src (Width*Height pixels, row-major) to the surface.
	BltBufferToVideo
)

// BltOp is a single block transfer request.
type BltOp struct {
	Kind   BltKind
	Color  Pixel
	Src    []Pixel
	X, Y   int
	Width  int
	Height int
}

// Video is a short-lived handle to the video surface.
//
// Handles must not be kept across operations.
type Video interface {
	Modes() []Mode
	SetMode(m Mode) error
	Resolution() Resolution
	Blt(op BltOp) error
}

// ScanCode identifies a non-printable key.
type ScanCode uint16

const (
	ScanNull   ScanCode = 0x00
	ScanUp     ScanCode = 0x01
	ScanDown   ScanCode = 0x02
	ScanRight  ScanCode = 0x03
	ScanLeft   ScanCode = 0x04
	ScanEscape ScanCode = 0x17
)

// Key is a single entry of the firmware key queue.
//
// Either Scan is non-zero (a special key) or Rune holds a printable character.
type Key struct {
	Scan ScanCode
	Rune rune
}

// Special reports whether k names a special key.
func (k Key) Special() bool { return k.Scan != ScanNull }

// TextInput is a short-lived handle to the firmware key queue.
type TextInput interface {
	// ReadKey returns the next queued key without blocking.
	ReadKey() (Key, bool, error)
}

// Time is a calendar reading.
type Time struct {
	Year       int
	Month      int
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// Clock provides the firmware time sources.
type Clock interface {
	GetTime() (Time, error)
	Cycles() uint64
}

// ResetKind selects the kind of platform reset.
type ResetKind uint8

const (
	ResetCold ResetKind = iota
	ResetWarm
	ResetShutdown
)

// Status is the status code passed along with a reset request.
type Status uint64

const (
	StatusSuccess Status = 0
	// StatusAborted is reported when the application could not start.
	StatusAborted Status = 1<<63 | 21
)

// HAL provides the only contact point between the adapter and the firmware.
type HAL interface {
	Logger() Logger
	LocateVideo() (Video, error)
	LocateInput() (TextInput, error)
	Clock() Clock

	// Stall busy-waits for the given number of microseconds.
	Stall(us uint64)

	// Reset requests a platform reset. It does not return on real firmware.
	Reset(kind ResetKind, status Status)
}
