// Package scene provides the shared scene description for use by workers and the master.
package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/alycolumbres/GDEV32-FinalProject/shared/colour"
	"github.com/alycolumbres/GDEV32-FinalProject/shared/geom"
)

// The stored* types mirror the JSON scene format.
// Vectors and colours are written as 3-element arrays, light positions as
// homogeneous 4-element arrays, and angles in degrees.
type storedScene struct {
	Width     int              `json:"width"`
	Height    int              `json:"height"`
	Camera    storedCamera     `json:"camera"`
	MaxDepth  int              `json:"maxDepth"`
	Spheres   []storedSphere   `json:"spheres"`
	Triangles []storedTriangle `json:"triangles"`
	Models    []storedModel    `json:"models"`
	Lights    []storedLight    `json:"lights"`
}

type storedCamera struct {
	Pos    [3]float64 `json:"position"`
	Target [3]float64 `json:"target"`
	Up     [3]float64 `json:"up"`
	Fov    float64    `json:"fov"`
	Focal  float64    `json:"focal"`
}

type storedMaterial struct {
	Ambient   [3]float64 `json:"ambient"`
	Diffuse   [3]float64 `json:"diffuse"`
	Specular  [3]float64 `json:"specular"`
	Shininess float64    `json:"shininess"`
}

type storedSphere struct {
	Center   [3]float64     `json:"center"`
	Radius   float64        `json:"radius"`
	Material storedMaterial `json:"material"`
}

type storedTriangle struct {
	Vertices [3][3]float64  `json:"vertices"`
	Material storedMaterial `json:"material"`
}

type storedModel struct {
	Model    string          `json:"model"`
	Pos      [3]float64      `json:"pos"`
	Material *storedMaterial `json:"material"` // Used when the model has no material library.
}

type storedLight struct {
	Pos         [4]float64 `json:"position"`
	Ambient     [3]float64 `json:"ambient"`
	Diffuse     [3]float64 `json:"diffuse"`
	Specular    [3]float64 `json:"specular"`
	Attenuation [3]float64 `json:"attenuation"` // Constant, linear, and quadratic coefficients.
}

// sceneFromJSON reads the JSON scene format.
// Model entries name Wavefront OBJ files relative to the scene file at scenePath.
func sceneFromJSON(r io.Reader, scenePath string) (*Scene, error) {
	var stored storedScene
	if err := json.NewDecoder(r).Decode(&stored); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return stored.build(scenePath)
}

// build converts the stored form of a scene into its runtime form.
func (stored *storedScene) build(scenePath string) (*Scene, error) {
	scn := &Scene{
		Cam: Camera{
			Pos:    vec(stored.Camera.Pos),
			Target: vec(stored.Camera.Target),
			Up:     vec(stored.Camera.Up),
			Fov:    stored.Camera.Fov * math.Pi / 180.0,
			Focal:  stored.Camera.Focal,
			Width:  stored.Width,
			Height: stored.Height,
		},
		MaxDepth: stored.MaxDepth,
	}

	for _, s := range stored.Spheres {
		scn.Objs = append(scn.Objs, NewSphere(vec(s.Center), s.Radius, s.Material.build()))
	}
	for _, t := range stored.Triangles {
		scn.Objs = append(scn.Objs, NewTriangle(vec(t.Vertices[0]), vec(t.Vertices[1]), vec(t.Vertices[2]), t.Material.build()))
	}
	for _, m := range stored.Models {
		fallback := defaultMaterial
		if m.Material != nil {
			fallback = m.Material.build()
		}
		tris, err := modelTriangles(relativePath(scenePath, m.Model), vec(m.Pos), fallback)
		if err != nil {
			return nil, fmt.Errorf("load model %q: %w", m.Model, err)
		}
		scn.Objs = append(scn.Objs, tris...)
	}
	for _, l := range stored.Lights {
		scn.Lights = append(scn.Lights, Light{
			Pos:       geom.Vector{X: l.Pos[0], Y: l.Pos[1], Z: l.Pos[2]},
			W:         l.Pos[3],
			Ambient:   col(l.Ambient),
			Diffuse:   col(l.Diffuse),
			Specular:  col(l.Specular),
			Constant:  l.Attenuation[0],
			Linear:    l.Attenuation[1],
			Quadratic: l.Attenuation[2],
		})
	}

	return scn, nil
}

// build converts a stored material into its runtime form.
func (stored storedMaterial) build() Material {
	return Material{Ka: col(stored.Ambient), Kd: col(stored.Diffuse), Ks: col(stored.Specular), Ns: stored.Shininess}
}

// vec converts a stored 3-element array into a vector.
func vec(a [3]float64) geom.Vector {
	return geom.Vector{X: a[0], Y: a[1], Z: a[2]}
}

// col converts a stored 3-element array into a colour.
func col(a [3]float64) colour.RGB {
	return colour.NewRGB(a[0], a[1], a[2])
}
