// Package geom provides shared geometry functionality for use by workers and the master.
package geom

// Triangle represents a triangle in 3-dimensional space.
// Its vertices wind counter-clockwise when viewed from the front face.
type Triangle struct {
	A Vector
	B Vector
	C Vector
}

// Intersection returns the distance, point, and normal of the intersection between the ray r and the triangle t (and true) if an intersection exists.
// If no intersection exists, false is returned instead of true.
// Rays parallel to the triangle's plane, and rays striking its back face, do not intersect it.
func (t Triangle) Intersection(r Ray) (float64, Vector, Vector, bool) {
	// Compute the triangle's (unnormalized) normal.
	n := t.B.Sub(t.A).Cross(t.C.Sub(t.A))

	toOrigin := r.Origin.Sub(t.A)
	e := r.Dir.Scale(-1.0).Cross(toOrigin)
	f := r.Dir.Scale(-1.0).Dot(n)

	// A non-positive f means the ray is parallel to the plane or facing the back of the triangle.
	if f <= 0.0 {
		return 0.0, Vector{}, Vector{}, false
	}

	// Make sure the intersection point is ahead of the ray.
	dist := toOrigin.Dot(n) / f
	if dist <= 0.0 {
		return 0.0, Vector{}, Vector{}, false
	}

	// Make sure the intersection point's barycentric coordinates place it inside the triangle.
	u := t.C.Sub(t.A).Dot(e) / f
	v := -(t.B.Sub(t.A).Dot(e)) / f
	if u <= 0.0 || v <= 0.0 || u+v > 1.0 {
		return 0.0, Vector{}, Vector{}, false
	}

	// The geometric normal is reported as-is, never flipped towards the ray.
	return dist, r.At(dist), n.Norm(), true
}
