// Package scene provides the shared scene description for use by workers and the master.
package scene

import (
	"github.com/alycolumbres/GDEV32-FinalProject/shared/colour"
	"github.com/alycolumbres/GDEV32-FinalProject/shared/geom"
)

// Light represents a light source in 3-dimensional space.
// Pos and W together form a homogeneous position: W == 1 places a point light
// at Pos, while W == 0 makes a directional light whose rays travel along Pos.
type Light struct {
	Pos geom.Vector
	W   float64

	Ambient  colour.RGB
	Diffuse  colour.RGB
	Specular colour.RGB

	Constant  float64
	Linear    float64
	Quadratic float64
}

// Point returns whether the light l is a point light.
func (l Light) Point() bool {
	return l.W == 1.0
}

// Directional returns whether the light l is a directional light.
func (l Light) Directional() bool {
	return l.W == 0.0
}

// Attenuation returns the factor by which the light l dims over the given distance.
// Only point lights attenuate.
func (l Light) Attenuation(dist float64) float64 {
	return 1.0 / (l.Constant + l.Linear*dist + l.Quadratic*dist*dist)
}
