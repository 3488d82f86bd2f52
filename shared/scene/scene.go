// Package scene provides the shared scene description for use by workers and the master.
package scene

import "fmt"

// Scene represents a 3-dimensional space full of primitives and lights.
// Once loaded, a scene is read-only; any number of goroutines may trace rays through it concurrently.
type Scene struct {
	Objs     []Primitive
	Lights   []Light
	Cam      Camera
	MaxDepth int // The number of reflection bounces allowed per primary ray.
}

// Validate returns an error describing the first problem which would make the
// scene s unrenderable. It is run once at load time so bad descriptions fail
// before any tracing begins.
func (s *Scene) Validate() error {
	if err := s.Cam.validate(); err != nil {
		return err
	}
	if s.MaxDepth < 0 {
		return fmt.Errorf("max depth %d is negative", s.MaxDepth)
	}
	if len(s.Lights) == 0 {
		return fmt.Errorf("scene has no lights")
	}
	for i, l := range s.Lights {
		if !l.Point() && !l.Directional() {
			return fmt.Errorf("light %d has w = %g, expected 0 or 1", i, l.W)
		}
	}
	for i, p := range s.Objs {
		if p.Shape == ShapeSphere && p.Sphere.Radius <= 0.0 {
			return fmt.Errorf("sphere %d has radius %g, expected a positive radius", i, p.Sphere.Radius)
		}
	}
	return nil
}
