package tile

// Color is an 8-bit per channel RGBA colour, used engine-wide.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque colour.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// EqRGB reports whether two colours match, ignoring alpha.
func (c Color) EqRGB(o Color) bool {
	return c.R == o.R && c.G == o.G && c.B == o.B
}

// WithAlpha returns the colour with a replaced alpha channel.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

func lerpU8(a, b uint8, t float64) uint8 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// Lerp interpolates each channel toward target.
// Alpha interpolates like the colour channels but independently,
// so fades don't shift hue.
func (c Color) Lerp(target Color, t float64) Color {
	return Color{
		R: lerpU8(c.R, target.R, t),
		G: lerpU8(c.G, target.G, t),
		B: lerpU8(c.B, target.B, t),
		A: lerpU8(c.A, target.A, t),
	}
}
