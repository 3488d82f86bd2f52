// Package colour provides shared a colour object for use by workers and the master.
package colour

import "math"

// RGB represents a colour with red, green, and blue channels.
// Channels are linear and unbounded while light accumulates; they're only clamped to [0, 1] on the way out.
type RGB struct {
	R float64
	G float64
	B float64
}

// NewRGB returns a new RGB object with the specified channels.
func NewRGB(r, g, b float64) RGB {
	return RGB{R: r, G: g, B: b}
}

// NewRGBFromFloats returns a new RGB object with the specified channels (after clamping them to the range [0, 1]).
func NewRGBFromFloats(r, g, b float32) RGB {
	return RGB{R: math.Max(0.0, math.Min(float64(r), 1.0)), G: math.Max(0.0, math.Min(float64(g), 1.0)), B: math.Max(0.0, math.Min(float64(b), 1.0))}
}

// Add returns the sum of the RGB objects a and b, without clamping.
func (a RGB) Add(b RGB) RGB {
	return RGB{R: a.R + b.R, G: a.G + b.G, B: a.B + b.B}
}

// Scale returns the RGB object a scaled by the scalar s, without clamping.
func (a RGB) Scale(s float64) RGB {
	return RGB{R: s * a.R, G: s * a.G, B: s * a.B}
}

// Multiply returns the channel-wise product of the RGB objects a and b.
func (a RGB) Multiply(b RGB) RGB {
	return RGB{R: a.R * b.R, G: a.G * b.G, B: a.B * b.B}
}

// RGB returns the three colour channels of an RGB object clamped and scaled to the range [0, 255].
func (rgb RGB) RGB() (uint8, uint8, uint8) {
	clamp := func(c float64) uint8 {
		return uint8(255 * math.Max(0.0, math.Min(c, 1.0)))
	}
	return clamp(rgb.R), clamp(rgb.G), clamp(rgb.B)
}
