package tracer

import (
	"math"
	"testing"

	"github.com/alycolumbres/GDEV32-FinalProject/shared/colour"
	"github.com/alycolumbres/GDEV32-FinalProject/shared/geom"
	"github.com/alycolumbres/GDEV32-FinalProject/shared/scene"
)

// floorScene builds a scene with a large upward-facing floor triangle lit by a
// single directional light shining straight down. Rays cast straight down from
// the camera hit the floor at the origin with a normal of exactly (0, 1, 0),
// and all the material and light terms are powers of two, so the Phong sum
// comes out exact in floating point.
func floorScene() *scene.Scene {
	grey := scene.Material{
		Ka: colour.NewRGB(0.25, 0.25, 0.25),
		Kd: colour.NewRGB(0.5, 0.5, 0.5),
	}
	return &scene.Scene{
		Objs: []scene.Primitive{
			scene.NewTriangle(geom.Vector{X: -8, Z: 8}, geom.Vector{X: 8, Z: 8}, geom.Vector{Z: -8}, grey),
		},
		Lights: []scene.Light{
			{
				Pos:      geom.Vector{Y: -1},
				Ambient:  colour.NewRGB(0.5, 0.5, 0.5),
				Diffuse:  colour.NewRGB(0.5, 0.5, 0.5),
				Specular: colour.NewRGB(1, 1, 1),
			},
		},
		Cam: scene.Camera{
			Pos:    geom.Vector{Y: 2},
			Target: geom.Vector{},
			Up:     geom.Vector{Z: -1},
			Fov:    math.Pi / 3.0,
			Focal:  1,
			Width:  4,
			Height: 4,
		},
		MaxDepth: 4,
	}
}

func TestTracePhongTermsExactly(t *testing.T) {
	scn := floorScene()
	down := geom.Ray{Origin: geom.Vector{Y: 2}, Dir: geom.Vector{Y: -1}}

	// Ambient is 0.25 * 0.5 and diffuse is 0.5 * 0.5 * 1, so the floor shades
	// to exactly 0.375 under a single light.
	got := Trace(down, scn, 0)
	if got != colour.NewRGB(0.375, 0.375, 0.375) {
		t.Errorf("Expected (0.375, 0.375, 0.375), got %v", got)
	}
}

func TestTraceMissesReturnBackground(t *testing.T) {
	scn := floorScene()
	up := geom.Ray{Origin: geom.Vector{Y: 2}, Dir: geom.Vector{Y: 1}}

	if got := Trace(up, scn, scn.MaxDepth); got != Background {
		t.Errorf("Expected the background colour, got %v", got)
	}
}

func TestRaycastNearestWins(t *testing.T) {
	near := scene.NewSphere(geom.Vector{Z: -2}, 0.5, scene.Material{})
	far := scene.NewSphere(geom.Vector{Z: -6}, 0.5, scene.Material{})
	ray := geom.Ray{Origin: geom.Vector{}, Dir: geom.Vector{Z: -1}}

	for _, objs := range [][]scene.Primitive{{near, far}, {far, near}} {
		hit := Raycast(ray, &scene.Scene{Objs: objs})
		if hit.Obj == nil {
			t.Fatal("Expected a hit")
		}
		if hit.Dist != 1.5 {
			t.Errorf("Expected the nearer sphere at distance 1.5, got %g", hit.Dist)
		}
		if hit.Obj.Sphere.Center.Z != -2 {
			t.Errorf("Expected the sphere at z = -2, got the one at z = %g", hit.Obj.Sphere.Center.Z)
		}
	}
}

func TestRaycastIgnoresHitsBehind(t *testing.T) {
	behind := scene.NewSphere(geom.Vector{Z: 5}, 0.5, scene.Material{})
	ray := geom.Ray{Origin: geom.Vector{}, Dir: geom.Vector{Z: -1}}

	if hit := Raycast(ray, &scene.Scene{Objs: []scene.Primitive{behind}}); hit.Obj != nil {
		t.Errorf("Expected no hit behind the ray, got one at distance %g", hit.Dist)
	}
}

func TestTraceShadowKeepsAmbient(t *testing.T) {
	grey := scene.Material{
		Ka: colour.NewRGB(0.25, 0.25, 0.25),
		Kd: colour.NewRGB(0.5, 0.5, 0.5),
	}
	scn := &scene.Scene{
		Objs: []scene.Primitive{
			scene.NewTriangle(geom.Vector{X: -8, Z: 8}, geom.Vector{X: 8, Z: 8}, geom.Vector{Z: -8}, grey),
			scene.NewSphere(geom.Vector{Y: 2}, 0.5, grey),
		},
		Lights: []scene.Light{
			{
				Pos:      geom.Vector{Y: 4},
				W:        1,
				Ambient:  colour.NewRGB(0.5, 0.5, 0.5),
				Diffuse:  colour.NewRGB(0.5, 0.5, 0.5),
				Specular: colour.NewRGB(1, 1, 1),
				Constant: 2,
			},
		},
		Cam: scene.Camera{
			Pos:    geom.Vector{X: 2, Y: 2},
			Target: geom.Vector{},
			Up:     geom.Vector{Y: 1},
			Fov:    math.Pi / 3.0,
			Focal:  1,
			Width:  4,
			Height: 4,
		},
		MaxDepth: 4,
	}

	// The ray lands on the floor beneath the sphere, which blocks the light
	// overhead. Only the attenuated ambient term survives: 0.25 * 0.5 * 0.5.
	ray := geom.Ray{Origin: geom.Vector{X: 2, Y: 2}, Dir: geom.Vector{X: -1, Y: -1}.Norm()}
	got := Trace(ray, scn, 3)
	if got != colour.NewRGB(0.0625, 0.0625, 0.0625) {
		t.Errorf("Expected (0.0625, 0.0625, 0.0625), got %v", got)
	}
}

func TestTraceDepthGatesReflection(t *testing.T) {
	scn := floorScene()
	scn.Objs[0].Mat.Ns = 64
	down := geom.Ray{Origin: geom.Vector{Y: 2}, Dir: geom.Vector{Y: -1}}

	c0 := Trace(down, scn, 0)
	c1 := Trace(down, scn, 1)
	c2 := Trace(down, scn, 2)

	// At Ns = 64 the floor is a half mirror, and its bounce ray escapes
	// straight up into the background.
	want := Background.Scale(0.5)
	if math.Abs((c1.R-c0.R)-want.R) > 1e-12 ||
		math.Abs((c1.G-c0.G)-want.G) > 1e-12 ||
		math.Abs((c1.B-c0.B)-want.B) > 1e-12 {
		t.Errorf("Expected depth 1 to add half the background, got %v over %v", c1, c0)
	}

	// The first bounce already left the scene, so further depth changes nothing.
	if c2 != c1 {
		t.Errorf("Expected depth 2 to match depth 1, got %v and %v", c2, c1)
	}
}

func TestTraceAveragesAmbient(t *testing.T) {
	scn := floorScene()
	down := geom.Ray{Origin: geom.Vector{Y: 2}, Dir: geom.Vector{Y: -1}}
	one := Trace(down, scn, 0)

	scn.Lights = append(scn.Lights, scn.Lights[0])
	two := Trace(down, scn, 0)

	// Doubling the light doubles the diffuse term, but the ambient terms
	// average over the lights and stay put.
	if two.R-one.R != 0.25 || two.G-one.G != 0.25 || two.B-one.B != 0.25 {
		t.Errorf("Expected a second light to add exactly the diffuse term, got %v over %v", two, one)
	}
}
