package core

import "math"

// RGB is an 8-bit-per-channel pixel color
type RGB struct {
	R, G, B uint8
}

// ToRGB clamps each channel to [0,1] and scales it to [0,255], rounding to nearest
func (v Vec3) ToRGB() RGB {
	c := v.Clamp(0, 1)
	return RGB{
		R: toByte(c.X),
		G: toByte(c.Y),
		B: toByte(c.Z),
	}
}

func toByte(x float64) uint8 {
	// NaN from a degenerate sample collapses to black
	if math.IsNaN(x) {
		return 0
	}
	return uint8(math.Round(x * 255))
}
