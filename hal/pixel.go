package hal

// PixelFromRGB24 unpacks a 0xRRGGBB value. The top byte is ignored.
func PixelFromRGB24(c uint32) Pixel {
	return Pixel{
		Red:   uint8((c >> 16) & 0xFF),
		Green: uint8((c >> 8) & 0xFF),
		Blue:  uint8(c & 0xFF),
	}
}

// RGB24 packs p into 0xRRGGBB.
func (p Pixel) RGB24() uint32 {
	return uint32(p.Red)<<16 | uint32(p.Green)<<8 | uint32(p.Blue)
}
