package adapter

import (
	"fmt"

	"efiboy/hal"
)

var clearColor = hal.RGB(0xFF, 0xFF, 0xFF)

// frameCompositor keeps the logical frame and scales it onto the surface.
type frameCompositor struct {
	h hal.HAL

	width  int
	height int
	frame  []uint32

	scale      int
	offX, offY int
	staging    []hal.Pixel

	gate gate
}

func newFrameCompositor(h hal.HAL, width, height int, res hal.Resolution, interval uint64) (*frameCompositor, error) {
	scale := min(res.Width/width, res.Height/height)
	if scale < 1 {
		scale = 1
	}
	if width*scale > res.Width || height*scale > res.Height {
		return nil, fmt.Errorf("%w: frame %dx%d, surface %dx%d", ErrSurfaceTooSmall, width, height, res.Width, res.Height)
	}
	return &frameCompositor{
		h:       h,
		width:   width,
		height:  height,
		frame:   make([]uint32, width*height),
		scale:   scale,
		offX:    (res.Width - width*scale) / 2,
		offY:    (res.Height - height*scale) / 2,
		staging: make([]hal.Pixel, width*scale*height*scale),
		gate:    gate{interval: interval},
	}, nil
}

func (c *frameCompositor) video() hal.Video {
	v, err := c.h.LocateVideo()
	if err != nil {
		panic(firmwareFailure("locate video", err))
	}
	return v
}

// WriteScanline replaces one row of the frame. A row of the wrong length
// panics.
func (c *frameCompositor) WriteScanline(line int, pixels []uint32) {
	if line < 0 || line >= c.height {
		panic(fmt.Errorf("%w: line %d outside 0..%d", ErrScanline, line, c.height-1))
	}
	if len(pixels) != c.width {
		panic(fmt.Errorf("%w: line %d has %d pixels, want %d", ErrScanline, line, len(pixels), c.width))
	}
	copy(c.frame[line*c.width:], pixels)
}

// Flush composites the frame if the refresh interval has passed.
func (c *frameCompositor) Flush(now uint64) {
	if !c.gate.due(now) {
		return
	}
	c.composite()
}

func (c *frameCompositor) composite() {
	sw := c.width * c.scale
	for y := 0; y < c.height; y++ {
		src := c.frame[y*c.width : (y+1)*c.width]
		base := y * c.scale * sw
		dst := c.staging[base : base+sw]
		for x, col := range src {
			p := hal.PixelFromRGB24(col)
			block := dst[x*c.scale : (x+1)*c.scale]
			for i := range block {
				block[i] = p
			}
		}
		for r := 1; r < c.scale; r++ {
			copy(c.staging[base+r*sw:base+(r+1)*sw], dst)
		}
	}

	err := c.video().Blt(hal.BltOp{
		Kind:   hal.BltBufferToVideo,
		Src:    c.staging,
		X:      c.offX,
		Y:      c.offY,
		Width:  sw,
		Height: c.height * c.scale,
	})
	if err != nil {
		panic(firmwareFailure("blt frame", err))
	}
}

// Clear fills the whole surface with white.
func (c *frameCompositor) Clear() error {
	v, err := c.h.LocateVideo()
	if err != nil {
		return firmwareFailure("locate video", err)
	}
	res := v.Resolution()
	err = v.Blt(hal.BltOp{
		Kind:   hal.BltVideoFill,
		Color:  clearColor,
		Width:  res.Width,
		Height: res.Height,
	})
	if err != nil {
		return firmwareFailure("fill screen", err)
	}
	return nil
}
