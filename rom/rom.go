// Package rom holds the program image linked into the firmware binary.
//
// Image layout:
//
//	0  magic "EBTC"
//	4  version (1)
//	5  tile width, tile height
//	7  palette: 4 x RGB
//	19 width*height palette indices, row-major
package rom

import (
	_ "embed"
	"errors"
	"fmt"
)

const (
	Version    = 1
	headerSize = 19
	Colors     = 4
)

var magic = [4]byte{'E', 'B', 'T', 'C'}

var (
	ErrMagic   = errors.New("rom: bad magic")
	ErrVersion = errors.New("rom: unsupported version")
	ErrSize    = errors.New("rom: bad size")
	ErrIndex   = errors.New("rom: palette index out of range")
)

// TestCard is the default program image.
//
//go:embed testcard.bin
var TestCard []byte

// Image is a decoded program image: one tile repeated over the display.
type Image struct {
	Width   int
	Height  int
	Palette [Colors]uint32
	Pix     []uint8
}

// Decode parses and validates an image.
func Decode(b []byte) (*Image, error) {
	if len(b) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrSize, len(b))
	}
	if [4]byte(b[0:4]) != magic {
		return nil, ErrMagic
	}
	if b[4] != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, b[4])
	}
	w, h := int(b[5]), int(b[6])
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("%w: tile %dx%d", ErrSize, w, h)
	}
	if len(b) != headerSize+w*h {
		return nil, fmt.Errorf("%w: %d bytes for tile %dx%d", ErrSize, len(b), w, h)
	}

	im := &Image{Width: w, Height: h, Pix: make([]uint8, w*h)}
	for i := 0; i < Colors; i++ {
		p := b[7+i*3:]
		im.Palette[i] = uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2])
	}
	for i, c := range b[headerSize:] {
		if c >= Colors {
			return nil, fmt.Errorf("%w: %d at %d", ErrIndex, c, i)
		}
		im.Pix[i] = c
	}
	return im, nil
}

// Encode serializes im. It does not validate.
func (im *Image) Encode() []byte {
	out := make([]byte, 0, headerSize+len(im.Pix))
	out = append(out, magic[:]...)
	out = append(out, Version, byte(im.Width), byte(im.Height))
	for _, c := range im.Palette {
		out = append(out, byte(c>>16), byte(c>>8), byte(c))
	}
	return append(out, im.Pix...)
}

// At returns the 0xRRGGBB color at (x, y), wrapping around the tile.
func (im *Image) At(x, y int) uint32 {
	x %= im.Width
	if x < 0 {
		x += im.Width
	}
	y %= im.Height
	if y < 0 {
		y += im.Height
	}
	return im.Palette[im.Pix[y*im.Width+x]]
}
