package scene

import (
	"math"
	"testing"

	"github.com/alycolumbres/GDEV32-FinalProject/shared/geom"
)

func validScene() *Scene {
	return &Scene{
		Objs:   []Primitive{NewSphere(geom.Vector{Z: -3}, 1, Material{})},
		Lights: []Light{{Pos: geom.Vector{Y: 5, Z: -3}, W: 1, Constant: 1}},
		Cam: Camera{
			Pos:    geom.Vector{},
			Target: geom.Vector{Z: -1},
			Up:     geom.Vector{Y: 1},
			Fov:    math.Pi / 3,
			Focal:  1,
			Width:  8,
			Height: 8,
		},
		MaxDepth: 2,
	}
}

func TestValidateAcceptsGoodScene(t *testing.T) {
	if err := validScene().Validate(); err != nil {
		t.Fatalf("Expected a valid scene, got %v", err)
	}
}

func TestValidateRejectsBadDimensions(t *testing.T) {
	scn := validScene()
	scn.Cam.Width = 0
	if err := scn.Validate(); err == nil {
		t.Error("Expected an error for a zero width image")
	}
}

func TestValidateRejectsBadFocal(t *testing.T) {
	scn := validScene()
	scn.Cam.Focal = -1
	if err := scn.Validate(); err == nil {
		t.Error("Expected an error for a negative focal length")
	}
}

func TestValidateRejectsBadFov(t *testing.T) {
	scn := validScene()
	scn.Cam.Fov = math.Pi
	if err := scn.Validate(); err == nil {
		t.Error("Expected an error for a field of view of pi")
	}
}

func TestValidateRejectsTargetAtCamera(t *testing.T) {
	scn := validScene()
	scn.Cam.Target = scn.Cam.Pos
	if err := scn.Validate(); err == nil {
		t.Error("Expected an error for a camera looking at itself")
	}
}

func TestValidateRejectsParallelUp(t *testing.T) {
	scn := validScene()
	scn.Cam.Up = geom.Vector{Z: -2}
	if err := scn.Validate(); err == nil {
		t.Error("Expected an error for an up vector parallel to the view direction")
	}
}

func TestValidateRejectsNegativeDepth(t *testing.T) {
	scn := validScene()
	scn.MaxDepth = -1
	if err := scn.Validate(); err == nil {
		t.Error("Expected an error for a negative max depth")
	}
}

func TestValidateRejectsNoLights(t *testing.T) {
	scn := validScene()
	scn.Lights = nil
	if err := scn.Validate(); err == nil {
		t.Error("Expected an error for a scene with no lights")
	}
}

func TestValidateRejectsBadLightW(t *testing.T) {
	scn := validScene()
	scn.Lights[0].W = 0.5
	if err := scn.Validate(); err == nil {
		t.Error("Expected an error for a light with w = 0.5")
	}
}

func TestValidateRejectsBadRadius(t *testing.T) {
	scn := validScene()
	scn.Objs[0].Sphere.Radius = 0
	if err := scn.Validate(); err == nil {
		t.Error("Expected an error for a sphere with no radius")
	}
}
