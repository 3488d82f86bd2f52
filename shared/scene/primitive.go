// Package scene provides the shared scene description for use by workers and the master.
package scene

import "github.com/alycolumbres/GDEV32-FinalProject/shared/geom"

// Shape enumerates the kinds of geometry a primitive can carry.
type Shape int

const (
	// ShapeSphere marks a primitive whose geometry is its Sphere field.
	ShapeSphere Shape = iota
	// ShapeTriangle marks a primitive whose geometry is its Triangle field.
	ShapeTriangle
)

// Primitive represents a single renderable shape and its material.
// Exactly one of the geometry fields is meaningful, selected by Shape.
type Primitive struct {
	Shape    Shape
	Sphere   geom.Sphere
	Triangle geom.Triangle
	Mat      Material
}

// NewSphere returns a primitive wrapping a sphere.
func NewSphere(center geom.Vector, radius float64, mat Material) Primitive {
	return Primitive{Shape: ShapeSphere, Sphere: geom.Sphere{Center: center, Radius: radius}, Mat: mat}
}

// NewTriangle returns a primitive wrapping a triangle.
func NewTriangle(a, b, c geom.Vector, mat Material) Primitive {
	return Primitive{Shape: ShapeTriangle, Triangle: geom.Triangle{A: a, B: b, C: c}, Mat: mat}
}

// Intersection returns the distance, point, and normal of the intersection between the ray r and the primitive p (and true) if an intersection exists.
// If no intersection exists, false is returned instead of true.
func (p Primitive) Intersection(r geom.Ray) (float64, geom.Vector, geom.Vector, bool) {
	switch p.Shape {
	case ShapeSphere:
		return p.Sphere.Intersection(r)
	case ShapeTriangle:
		return p.Triangle.Intersection(r)
	}
	return 0.0, geom.Vector{}, geom.Vector{}, false
}
