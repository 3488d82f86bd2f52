// Package scene provides the shared scene description for use by workers and the master.
package scene

import (
	"fmt"
	"math"

	"github.com/alycolumbres/GDEV32-FinalProject/shared/geom"
)

// Camera represents a pinhole camera in 3-dimensional space.
type Camera struct {
	Pos    geom.Vector
	Target geom.Vector // The point the camera looks at.
	Up     geom.Vector // Need not be normalized, but must not be parallel to the view direction.

	Fov   float64 // The vertical field of view in radians.
	Focal float64 // The distance from Pos to the viewport.

	Width  int // The image width in pixels.
	Height int // The image height in pixels.
}

// validate returns an error if the camera c cannot generate rays.
func (c Camera) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image dimensions %dx%d are not positive", c.Width, c.Height)
	}
	if c.Focal <= 0.0 {
		return fmt.Errorf("focal length %g is not positive", c.Focal)
	}
	if c.Fov <= 0.0 || c.Fov >= math.Pi {
		return fmt.Errorf("field of view %g is outside (0, pi)", c.Fov)
	}
	if c.Target.Sub(c.Pos).Zero() {
		return fmt.Errorf("camera target %v coincides with its position", c.Target)
	}
	if c.Target.Sub(c.Pos).Cross(c.Up).Zero() {
		return fmt.Errorf("camera up %v is parallel to its view direction", c.Up)
	}
	return nil
}

// GetRay returns the ray cast from the camera c through the centre of pixel (x, y).
// Pixel rows are counted from the bottom of the viewport, so callers flip y
// when filling a top-down framebuffer.
func (c Camera) GetRay(x, y int) geom.Ray {
	forward := c.Target.Sub(c.Pos).Norm()
	right := forward.Cross(c.Up).Norm()
	up := right.Cross(forward) // This is already normalized.

	viewHeight := 2.0 * c.Focal * math.Tan(c.Fov/2.0)
	viewWidth := viewHeight * float64(c.Width) / float64(c.Height)

	// Walk from the viewport's lower left corner to the pixel's centre.
	lowerLeft := c.Pos.Add(forward.Scale(c.Focal)).Sub(right.Scale(viewWidth / 2.0)).Sub(up.Scale(viewHeight / 2.0))
	s := (float64(x) + 0.5) * viewWidth / float64(c.Width)
	t := (float64(y) + 0.5) * viewHeight / float64(c.Height)
	point := lowerLeft.Add(right.Scale(s)).Add(up.Scale(t))

	return geom.Ray{Origin: c.Pos, Dir: point.Sub(c.Pos).Norm()}
}
