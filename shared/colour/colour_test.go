package colour

import (
	"math"
	"testing"
)

func TestRGBAccumulatesUnclamped(t *testing.T) {
	sum := NewRGB(0.9, 0.5, 0).Add(NewRGB(0.9, 0.25, 0.125))
	if math.Abs(sum.R-1.8) > 1e-12 || math.Abs(sum.G-0.75) > 1e-12 || math.Abs(sum.B-0.125) > 1e-12 {
		t.Errorf("Expected {1.8 0.75 0.125}, got %v", sum)
	}

	scaled := sum.Scale(2)
	if math.Abs(scaled.R-3.6) > 1e-12 {
		t.Errorf("Expected scaling to exceed 1 freely, got %v", scaled)
	}
}

func TestRGBMultiply(t *testing.T) {
	got := NewRGB(0.5, 1, 0).Multiply(NewRGB(0.5, 0.25, 4))
	if math.Abs(got.R-0.25) > 1e-12 || math.Abs(got.G-0.25) > 1e-12 || got.B != 0 {
		t.Errorf("Expected {0.25 0.25 0}, got %v", got)
	}
}

func TestRGBClampsOnOutput(t *testing.T) {
	r, g, b := NewRGB(2.5, -1, 1).RGB()
	if r != 255 || g != 0 || b != 255 {
		t.Errorf("Expected (255, 0, 255), got (%d, %d, %d)", r, g, b)
	}

	r, g, b = NewRGB(0.5, 0, 1).RGB()
	if r != 127 || g != 0 || b != 255 {
		t.Errorf("Expected (127, 0, 255), got (%d, %d, %d)", r, g, b)
	}
}

func TestNewRGBFromFloatsClamps(t *testing.T) {
	c := NewRGBFromFloats(-0.5, 0.25, 1.5)
	if c.R != 0 || math.Abs(c.G-0.25) > 1e-7 || c.B != 1 {
		t.Errorf("Expected {0 0.25 1}, got %v", c)
	}
}
