// Package scene provides the shared scene description for use by workers and the master.
package scene

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// SceneFromFile reads, builds, and validates a scene from the file at the given path.
// Files ending in .json use the JSON format; anything else is read as the whitespace text format.
func SceneFromFile(path string) (*Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer file.Close()

	var scn *Scene
	if strings.EqualFold(filepath.Ext(path), ".json") {
		scn, err = sceneFromJSON(file, path)
	} else {
		scn, err = sceneFromText(file)
	}
	if err != nil {
		return nil, err
	}

	if err := scn.Validate(); err != nil {
		return nil, fmt.Errorf("validate scene: %w", err)
	}
	return scn, nil
}

// sceneFromText reads the whitespace-separated text format.
// Fields appear in a fixed order: image size, camera, max depth, then
// counted lists of objects and lights.
func sceneFromText(r io.Reader) (*Scene, error) {
	in := bufio.NewReader(r)
	scn := &Scene{}

	if _, err := fmt.Fscan(in, &scn.Cam.Width, &scn.Cam.Height); err != nil {
		return nil, fmt.Errorf("read image size: %w", err)
	}

	var fovDegrees float64
	if _, err := fmt.Fscan(in,
		&scn.Cam.Pos.X, &scn.Cam.Pos.Y, &scn.Cam.Pos.Z,
		&scn.Cam.Target.X, &scn.Cam.Target.Y, &scn.Cam.Target.Z,
		&scn.Cam.Up.X, &scn.Cam.Up.Y, &scn.Cam.Up.Z,
		&fovDegrees, &scn.Cam.Focal,
	); err != nil {
		return nil, fmt.Errorf("read camera: %w", err)
	}
	scn.Cam.Fov = fovDegrees * math.Pi / 180.0

	if _, err := fmt.Fscan(in, &scn.MaxDepth); err != nil {
		return nil, fmt.Errorf("read max depth: %w", err)
	}

	var objCount int
	if _, err := fmt.Fscan(in, &objCount); err != nil {
		return nil, fmt.Errorf("read object count: %w", err)
	}
	for i := 0; i < objCount; i++ {
		obj, err := readObject(in)
		if err != nil {
			return nil, fmt.Errorf("read object %d: %w", i, err)
		}
		scn.Objs = append(scn.Objs, obj)
	}

	var lightCount int
	if _, err := fmt.Fscan(in, &lightCount); err != nil {
		return nil, fmt.Errorf("read light count: %w", err)
	}
	for i := 0; i < lightCount; i++ {
		light, err := readLight(in)
		if err != nil {
			return nil, fmt.Errorf("read light %d: %w", i, err)
		}
		scn.Lights = append(scn.Lights, light)
	}

	return scn, nil
}

// readObject reads one typed object record and its trailing material.
func readObject(in io.Reader) (Primitive, error) {
	var kind string
	if _, err := fmt.Fscan(in, &kind); err != nil {
		return Primitive{}, err
	}

	var obj Primitive
	switch kind {
	case "sphere":
		obj.Shape = ShapeSphere
		if _, err := fmt.Fscan(in,
			&obj.Sphere.Center.X, &obj.Sphere.Center.Y, &obj.Sphere.Center.Z,
			&obj.Sphere.Radius,
		); err != nil {
			return Primitive{}, err
		}
	case "tri":
		obj.Shape = ShapeTriangle
		if _, err := fmt.Fscan(in,
			&obj.Triangle.A.X, &obj.Triangle.A.Y, &obj.Triangle.A.Z,
			&obj.Triangle.B.X, &obj.Triangle.B.Y, &obj.Triangle.B.Z,
			&obj.Triangle.C.X, &obj.Triangle.C.Y, &obj.Triangle.C.Z,
		); err != nil {
			return Primitive{}, err
		}
	default:
		return Primitive{}, fmt.Errorf("unknown object type %q", kind)
	}

	mat, err := readMaterial(in)
	if err != nil {
		return Primitive{}, err
	}
	obj.Mat = mat
	return obj, nil
}

// readMaterial reads the 10 material floats shared by every object record.
func readMaterial(in io.Reader) (Material, error) {
	var mat Material
	if _, err := fmt.Fscan(in,
		&mat.Ka.R, &mat.Ka.G, &mat.Ka.B,
		&mat.Kd.R, &mat.Kd.G, &mat.Kd.B,
		&mat.Ks.R, &mat.Ks.G, &mat.Ks.B,
		&mat.Ns,
	); err != nil {
		return Material{}, err
	}
	return mat, nil
}

// readLight reads the 16 floats of one light record.
func readLight(in io.Reader) (Light, error) {
	var light Light
	if _, err := fmt.Fscan(in,
		&light.Pos.X, &light.Pos.Y, &light.Pos.Z, &light.W,
		&light.Ambient.R, &light.Ambient.G, &light.Ambient.B,
		&light.Diffuse.R, &light.Diffuse.G, &light.Diffuse.B,
		&light.Specular.R, &light.Specular.G, &light.Specular.B,
		&light.Constant, &light.Linear, &light.Quadratic,
	); err != nil {
		return Light{}, err
	}
	return light, nil
}
