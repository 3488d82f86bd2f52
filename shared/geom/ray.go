// Package geom provides shared geometry functionality for use by workers and the master.
package geom

// Ray represents a ray cast from an origin point in a direction.
// Directions are expected to be normalized by whoever builds the ray.
type Ray struct {
	Origin Vector
	Dir    Vector
}

// At returns the point along the ray r at the given distance.
func (r Ray) At(dist float64) Vector {
	return r.Origin.Add(r.Dir.Scale(dist))
}
