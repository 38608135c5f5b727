package adapter

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"efiboy/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	diagMargin     = 8
	diagLineHeight = 12
	diagFontOffset = 9
)

var diagFont = &proggy.TinySZ8pt7b

// diagDisplay draws text into a pixel buffer that is later blitted to the
// surface.
type diagDisplay struct {
	w, h int
	pix  []hal.Pixel
}

var _ drivers.Displayer = (*diagDisplay)(nil)

func newDiagDisplay(w, h int) *diagDisplay {
	d := &diagDisplay{w: w, h: h, pix: make([]hal.Pixel, w*h)}
	for i := range d.pix {
		d.pix[i] = clearColor
	}
	return d
}

func (d *diagDisplay) Size() (x, y int16) { return int16(d.w), int16(d.h) }

func (d *diagDisplay) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.w || iy < 0 || iy >= d.h {
		return
	}
	d.pix[iy*d.w+ix] = hal.RGB(c.R, c.G, c.B)
}

func (d *diagDisplay) Display() error { return nil }

// drawDiagnostic writes lines of black text at the top of the surface.
func drawDiagnostic(v hal.Video, lines []string) error {
	res := v.Resolution()
	if res.Width <= 2*diagMargin || res.Height <= 2*diagMargin {
		return nil
	}

	_, charW := tinyfont.LineWidth(diagFont, "0")
	if charW == 0 {
		charW = 6
	}
	cols := (res.Width - 2*diagMargin) / int(charW)
	if cols <= 0 {
		cols = 1
	}

	var wrapped []string
	for _, line := range lines {
		for len(line) > 0 {
			chunk, rest := takeRunes(line, cols)
			wrapped = append(wrapped, chunk)
			line = strings.TrimLeft(rest, " ")
		}
	}

	h := len(wrapped)*diagLineHeight + 2*diagMargin
	if h > res.Height {
		h = res.Height
	}
	d := newDiagDisplay(res.Width, h)
	fg := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	y := int16(diagMargin)
	for _, line := range wrapped {
		if int(y)+diagLineHeight > h {
			break
		}
		tinyfont.WriteLine(d, diagFont, diagMargin, y+diagFontOffset, line, fg)
		y += diagLineHeight
	}

	return v.Blt(hal.BltOp{
		Kind:   hal.BltBufferToVideo,
		Src:    d.pix,
		Width:  d.w,
		Height: d.h,
	})
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	i, count := 0, 0
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
