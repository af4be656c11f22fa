package core

import (
	"image/color"
	"math"
)

// Color is an RGBA color with unclamped float channels on a 0-255 scale.
// Interpolation may push channels outside that range; they are clamped only
// when converted to bytes.
type Color struct {
	R, G, B, A float64
}

// RGB returns an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

var (
	Black  = RGB(0, 0, 0)
	White  = RGB(255, 255, 255)
	Blue   = RGB(0, 122, 255)
	Green  = RGB(52, 199, 89)
	Indigo = RGB(88, 86, 214)
	Orange = RGB(255, 149, 0)
	Pink   = RGB(255, 45, 85)
	Purple = RGB(175, 82, 222)
	Red    = RGB(255, 59, 48)
	Teal   = RGB(90, 200, 250)
	Yellow = RGB(255, 204, 0)
)

// Lerp interpolates each channel independently: (1-t)*a + t*b.
func Lerp(a, b Color, t float64) Color {
	return Color{
		R: lerp(a.R, b.R, t),
		G: lerp(a.G, b.G, t),
		B: lerp(a.B, b.B, t),
		A: lerp(a.A, b.A, t),
	}
}

func lerp(v0, v1, t float64) float64 {
	return (1-t)*v0 + t*v1
}

// MapTo linearly remaps v from [inMin, inMax] to [outMin, outMax].
func MapTo(v, inMin, inMax, outMin, outMax float64) float64 {
	return (v-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}

// Channel8 rounds and clamps a channel value to a byte.
func Channel8(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}

// NRGBA converts the color to a clamped 8-bit color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: Channel8(c.R), G: Channel8(c.G), B: Channel8(c.B), A: Channel8(c.A)}
}
