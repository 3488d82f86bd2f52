// Package geom provides shared geometry functionality for use by workers and the master.
package geom

import "math"

// Sphere represents a sphere in 3-dimensional space.
type Sphere struct {
	Center Vector
	Radius float64
}

// Intersection returns the distance, point, and normal of the nearest intersection between the ray r and the sphere s (and true) if an intersection exists.
// If no intersection exists, false is returned instead of true.
// A grazing ray can report a non-positive distance, which callers must treat as a miss.
func (s Sphere) Intersection(r Ray) (float64, Vector, Vector, bool) {
	m := r.Origin.Sub(s.Center)
	b := m.Dot(r.Dir)
	c := m.Dot(m) - s.Radius*s.Radius

	disc := b*b - c
	if disc < 0.0 {
		return 0.0, Vector{}, Vector{}, false
	}

	var dist float64
	if disc == 0.0 {
		// The ray grazes the sphere at a single point.
		dist = -b
	} else {
		root := math.Sqrt(disc)
		near, far := -b-root, -b+root
		if near < 0.0 && far < 0.0 {
			return 0.0, Vector{}, Vector{}, false
		} else if near < 0.0 || far < 0.0 {
			// The ray starts inside the sphere, so only one intersection is ahead of it.
			dist = math.Max(near, far)
		} else {
			dist = math.Min(near, far)
		}
	}

	// The normal always points away from the sphere's center, even for rays cast from inside it.
	point := r.At(dist)
	return dist, point, point.Sub(s.Center).Norm(), true
}
