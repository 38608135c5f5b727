//go:build !tinygo

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"efiboy/rom"
)

const (
	defaultROMPath = "rom/testcard.bin"
	defaultPalette = "e0f8d0,88c070,346856,081820"
)

func main() {
	out := flag.String("o", defaultROMPath, "Output image path.")
	size := flag.Int("size", 16, "Tile width and height (1..255).")
	pattern := flag.String("pattern", "diamond", "Tile pattern: diamond, checker or stripes.")
	palette := flag.String("palette", defaultPalette, "Four comma-separated RRGGBB colors, lightest first.")
	flag.Parse()

	im, err := build(*size, *pattern, *palette)
	if err != nil {
		fmt.Fprintln(os.Stderr, "mkrom:", err)
		os.Exit(2)
	}
	if err := os.WriteFile(*out, im.Encode(), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "mkrom:", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%dx%d %s)\n", *out, im.Width, im.Height, *pattern)
}

func build(size int, pattern, palette string) (*rom.Image, error) {
	if size < 1 || size > 255 {
		return nil, fmt.Errorf("tile size %d out of range 1..255", size)
	}
	pal, err := parsePalette(palette)
	if err != nil {
		return nil, err
	}
	shade, ok := patterns[pattern]
	if !ok {
		return nil, fmt.Errorf("unknown pattern %q", pattern)
	}

	im := &rom.Image{Width: size, Height: size, Palette: pal, Pix: make([]uint8, size*size)}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			im.Pix[y*size+x] = shade(x, y, size)
		}
	}
	return im, nil
}

var patterns = map[string]func(x, y, size int) uint8{
	"diamond": func(x, y, size int) uint8 {
		d := abs(2*x-(size-1)) + abs(2*y-(size-1))
		switch {
		case d <= size*3/8:
			return 3
		case d <= size*3/4:
			return 2
		case d <= size*5/4:
			return 1
		}
		return 0
	},
	"checker": func(x, y, size int) uint8 {
		half := max(size/2, 1)
		if (x/half+y/half)%2 == 0 {
			return 0
		}
		return 3
	},
	"stripes": func(x, y, size int) uint8 {
		return uint8(x * rom.Colors / size)
	},
}

func parsePalette(s string) ([rom.Colors]uint32, error) {
	var pal [rom.Colors]uint32
	parts := strings.Split(s, ",")
	if len(parts) != rom.Colors {
		return pal, fmt.Errorf("palette needs %d colors, got %d", rom.Colors, len(parts))
	}
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(p), "#"), 16, 32)
		if err != nil || v > 0xFFFFFF {
			return pal, fmt.Errorf("palette color %q: want RRGGBB", p)
		}
		pal[i] = uint32(v)
	}
	return pal, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
