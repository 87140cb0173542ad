package rendering

import "image/color"

type Color struct {
	R, G, B, A float32
}

// DarkBlue is the clear colour of every chapter after the first.
var DarkBlue = Color{0.1, 0.2, 0.3, 0.4}

func ColorFromRGBA(c color.RGBA) Color {
	return Color{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}
