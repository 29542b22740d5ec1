package softgl

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 0xFF} }

// RGBf converts channels in [0,1] to a Color. Out of range values are clamped.
func RGBf(r, g, b float32) Color {
	return Color{R: unit8(r), G: unit8(g), B: unit8(b), A: 0xFF}
}

func unit8(v float32) uint8 {
	return uint8(clampF32(v, 0, 1)*255 + 0.5)
}

// MulScalar scales the color channels by s in [0,1]. Alpha is kept.
func (c Color) MulScalar(s float32) Color {
	t := uint32(clampF32(s, 0, 1) * 255)
	mul := func(ch uint8) uint8 {
		return uint8((uint32(ch) * t) / 255)
	}
	return Color{R: mul(c.R), G: mul(c.G), B: mul(c.B), A: c.A}
}
