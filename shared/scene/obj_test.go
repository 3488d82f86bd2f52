package scene

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/alycolumbres/GDEV32-FinalProject/shared/colour"
	"github.com/alycolumbres/GDEV32-FinalProject/shared/geom"
)

func TestModelTriangles(t *testing.T) {
	dir := t.TempDir()
	obj := `mtllib quad.mtl
o quad
usemtl red
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3
f 1 3 4
`
	mtl := `newmtl red
Ka 0.25 0 0
Kd 0.75 0 0
Ks 0.5 0.5 0.5
Ns 16
`
	if err := os.WriteFile(filepath.Join(dir, "quad.obj"), []byte(obj), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "quad.mtl"), []byte(mtl), 0644); err != nil {
		t.Fatal(err)
	}

	tris, err := modelTriangles(filepath.Join(dir, "quad.obj"), geom.Vector{X: 10}, Material{})
	if err != nil {
		t.Fatalf("Expected the model to load, got %v", err)
	}

	if len(tris) != 2 {
		t.Fatalf("Expected 2 triangles, got %d", len(tris))
	}
	for _, tri := range tris {
		if tri.Shape != ShapeTriangle {
			t.Fatalf("Expected triangle primitives, got %+v", tri)
		}
		if math.Abs(tri.Mat.Ns-16) > 1e-6 || math.Abs(tri.Mat.Kd.R-0.75) > 1e-6 {
			t.Errorf("Expected the red material from the library, got %+v", tri.Mat)
		}
	}
	if !vecsClose(tris[0].Triangle.A, geom.Vector{X: 10}) {
		t.Errorf("Expected vertices offset by the model position, got %v", tris[0].Triangle.A)
	}
}

func TestModelFallbackMaterial(t *testing.T) {
	objPath := filepath.Join(t.TempDir(), "bare.obj")
	obj := `v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`
	if err := os.WriteFile(objPath, []byte(obj), 0644); err != nil {
		t.Fatal(err)
	}

	fallback := Material{Kd: colour.NewRGB(0.25, 0.5, 0.75), Ns: 8}
	tris, err := modelTriangles(objPath, geom.Vector{}, fallback)
	if err != nil {
		t.Fatalf("Expected the model to load, got %v", err)
	}

	if len(tris) != 1 {
		t.Fatalf("Expected 1 triangle, got %d", len(tris))
	}
	if tris[0].Mat != fallback {
		t.Errorf("Expected the fallback material, got %+v", tris[0].Mat)
	}
}

func TestModelMissingFile(t *testing.T) {
	if _, err := modelTriangles(filepath.Join(t.TempDir(), "missing.obj"), geom.Vector{}, Material{}); err == nil {
		t.Error("Expected an error for a missing model")
	}
}

func TestSceneWithModel(t *testing.T) {
	dir := t.TempDir()
	obj := `v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`
	if err := os.WriteFile(filepath.Join(dir, "tri.obj"), []byte(obj), 0644); err != nil {
		t.Fatal(err)
	}

	// The model path is relative to the scene file.
	sceneJSON := `{
	"width": 2, "height": 2,
	"camera": {"position": [0, 0, 5], "target": [0, 0, 0], "up": [0, 1, 0], "fov": 60, "focal": 1},
	"maxDepth": 1,
	"models": [{"model": "tri.obj", "pos": [0, 0, -2], "material": {"diffuse": [1, 0, 0]}}],
	"lights": [{"position": [0, 0, -1, 0], "ambient": [0.1, 0.1, 0.1], "diffuse": [1, 1, 1], "specular": [0, 0, 0]}]
}`
	scenePath := filepath.Join(dir, "scene.json")
	if err := os.WriteFile(scenePath, []byte(sceneJSON), 0644); err != nil {
		t.Fatal(err)
	}

	scn, err := SceneFromFile(scenePath)
	if err != nil {
		t.Fatalf("Expected the scene to load, got %v", err)
	}

	if len(scn.Objs) != 1 {
		t.Fatalf("Expected the model's triangle, got %d objects", len(scn.Objs))
	}
	got := scn.Objs[0]
	if got.Shape != ShapeTriangle || !vecsClose(got.Triangle.A, geom.Vector{Z: -2}) {
		t.Errorf("Expected the triangle moved to z = -2, got %+v", got)
	}
	if got.Mat.Kd.R != 1 || got.Mat.Kd.G != 0 {
		t.Errorf("Expected the model entry's material, got %+v", got.Mat)
	}
}
