// Package scene provides the shared scene description for use by workers and the master.
package scene

import (
	"log"

	"github.com/alycolumbres/GDEV32-FinalProject/shared/colour"
	"github.com/alycolumbres/GDEV32-FinalProject/shared/geom"
	"github.com/udhos/gwob"
)

// defaultMaterial is used for model groups with no material of their own.
// Because Go doesn't support constant structures, this has to be a variable.
var defaultMaterial = Material{
	Ka: colour.NewRGB(0.0625, 0.0625, 0.0625),
	Kd: colour.NewRGB(1.0, 1.0, 1.0),
	Ks: colour.NewRGB(0.0, 0.0, 0.0),
	Ns: 0.0,
}

// modelTriangles reads a Wavefront OBJ file and returns its faces as triangle
// primitives offset by pos. Groups with an entry in the model's material
// library shade with that entry's Phong properties; anything else shades with
// the fallback material. Vertex normals are ignored, so faces shade flat.
func modelTriangles(path string, pos geom.Vector, fallback Material) ([]Primitive, error) {
	options := gwob.ObjParserOptions{LogStats: true, Logger: func(s string) { log.Println(s) }, IgnoreNormals: true}

	// Read in the model from the file.
	inputMesh, err := gwob.NewObjFromFile(path, &options)
	if err != nil {
		return nil, err
	}

	// Read in the material library associated with the model.
	inputMatlib := gwob.NewMaterialLib()
	if len(inputMesh.Mtllib) > 0 {
		inputMatlib, err = gwob.ReadMaterialLibFromFile(relativePath(path, inputMesh.Mtllib), &options)
		if err != nil {
			// If the material can't be found at the relative path, try the absolute path.
			inputMatlib, err = gwob.ReadMaterialLibFromFile(inputMesh.Mtllib, &options)
			if err != nil {
				return nil, err
			}
		}
	}

	vertexStride := inputMesh.StrideSize / 4
	vertexOffset := inputMesh.StrideOffsetPosition / 4

	// vertex returns the position of the i-th index entry, offset by pos.
	vertex := func(i int) geom.Vector {
		return geom.Vector{
			X: inputMesh.Coord64(vertexStride*inputMesh.Indices[i] + vertexOffset),
			Y: inputMesh.Coord64(vertexStride*inputMesh.Indices[i] + vertexOffset + 1),
			Z: inputMesh.Coord64(vertexStride*inputMesh.Indices[i] + vertexOffset + 2),
		}.Add(pos)
	}

	// Assemble the triangle list one group at a time.
	tris := make([]Primitive, 0, len(inputMesh.Indices)/3)
	for _, g := range inputMesh.Groups {
		mat := fallback
		if gMat, exists := inputMatlib.Lib[g.Usemtl]; exists {
			// If a material exists for this group, use it instead.
			mat = Material{
				Ka: colour.NewRGBFromFloats(gMat.Ka[0], gMat.Ka[1], gMat.Ka[2]),
				Kd: colour.NewRGBFromFloats(gMat.Kd[0], gMat.Kd[1], gMat.Kd[2]),
				Ks: colour.NewRGBFromFloats(gMat.Ks[0], gMat.Ks[1], gMat.Ks[2]),
				Ns: float64(gMat.Ns),
			}
		}

		for f := 0; f < g.IndexCount/3; f++ {
			first := g.IndexBegin + 3*f
			tris = append(tris, NewTriangle(vertex(first), vertex(first+1), vertex(first+2), mat))
		}
	}

	return tris, nil
}
