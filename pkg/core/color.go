package core

// PackRGB quantizes a color in [0,1] to a 0xFFRRGGBB pixel. Components are
// truncated, not rounded, and anything outside [0,1] is clamped first.
func PackRGB(color Vec3) uint32 {
	c := color.Clamp(0.0, 1.0)
	r := uint32(uint8(c.X * 255))
	g := uint32(uint8(c.Y * 255))
	b := uint32(uint8(c.Z * 255))
	return 0xFF<<24 | r<<16 | g<<8 | b
}

// UnpackRGB splits a packed pixel into its 8-bit channels
func UnpackRGB(pixel uint32) (r, g, b uint8) {
	return uint8(pixel >> 16), uint8(pixel >> 8), uint8(pixel)
}
