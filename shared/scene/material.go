// Package scene provides the shared scene description for use by workers and the master.
package scene

import "github.com/alycolumbres/GDEV32-FinalProject/shared/colour"

// Material represents the Phong material properties of one or more primitives.
type Material struct {
	Ka, Kd, Ks colour.RGB // The ambient, diffuse, and specular reflectances respectively.
	Ns         float64    // The specular exponent.
}

// Reflectivity returns the fraction of a reflected ray's colour contributed by the material m.
// Shinier materials are better mirrors.
func (m Material) Reflectivity() float64 {
	return m.Ns / 128.0
}
