// Package tracer provides ray-tracing functionality shared by the distributed and sequential workers.
package tracer

import (
	"math"

	"github.com/alycolumbres/GDEV32-FinalProject/shared/colour"
	"github.com/alycolumbres/GDEV32-FinalProject/shared/geom"
	"github.com/alycolumbres/GDEV32-FinalProject/shared/scene"
)

// Background is the colour seen along rays which strike nothing.
// Because Go doesn't support constant structures, this has to be a variable.
var Background = colour.NewRGB(0.33, 0.6, 0.75)

// Secondary rays start slightly off their surface along its normal, so a
// surface can't shadow or reflect onto itself.
const (
	pointShadowBias       = 0.001
	directionalShadowBias = 0.0001
	reflectionBias        = 0.001
)

// IntersectionInfo describes the nearest intersection found by Raycast.
// A nil Obj means the ray hit nothing, in which case no other field means anything.
type IntersectionInfo struct {
	Ray    geom.Ray
	Dist   float64
	Obj    *scene.Primitive
	Point  geom.Vector
	Normal geom.Vector
}

// Raycast finds the nearest primitive intersected by the ray r.
// Distances are measured from the ray's origin, and only intersections
// strictly ahead of it count. Among equally near intersections, the earliest
// primitive in the scene's list wins.
func Raycast(r geom.Ray, scn *scene.Scene) IntersectionInfo {
	nearest := IntersectionInfo{Ray: r}
	for i := range scn.Objs {
		if dist, point, normal, hit := scn.Objs[i].Intersection(r); hit && dist > 0.0 {
			if nearest.Obj == nil || dist < nearest.Dist {
				nearest.Obj = &scn.Objs[i]
				nearest.Dist = dist
				nearest.Point = point
				nearest.Normal = normal
			}
		}
	}
	return nearest
}

// Trace returns the colour seen along the ray r.
// Each light contributes Phong ambient, diffuse, and specular terms, with the
// diffuse and specular terms cut off by shadow rays. Every unshadowed light
// also lets the surface bounce a reflection ray while depth permits, weighted
// by the material's reflectivity.
func Trace(r geom.Ray, scn *scene.Scene, depth int) colour.RGB {
	hit := Raycast(r, scn)
	if hit.Obj == nil {
		return Background
	}

	mat := hit.Obj.Mat
	final := colour.RGB{}
	var ambient, diffuse, specular colour.RGB
	for _, l := range scn.Lights {
		if l.Point() {
			// A point light's ambient term is attenuated, and arrives even in shadow.
			dist := l.Pos.Sub(hit.Point).Len()
			atten := l.Attenuation(dist)
			ambient = ambient.Add(mat.Ka.Multiply(l.Ambient).Scale(atten))

			// The light only shines on the point if nothing sits between the two.
			shadowOrigin := hit.Point.Add(hit.Normal.Scale(pointShadowBias))
			shadow := Raycast(geom.Ray{Origin: shadowOrigin, Dir: l.Pos.Sub(shadowOrigin).Norm()}, scn)
			if shadow.Obj == nil || dist < shadow.Dist {
				lightDir := l.Pos.Sub(hit.Point).Norm()
				viewDir := scn.Cam.Pos.Sub(hit.Point).Norm()
				reflectDir := lightDir.Reflect(hit.Normal)

				diffuse = diffuse.Add(mat.Kd.Multiply(l.Diffuse).Scale(math.Max(hit.Normal.Dot(lightDir), 0.0) * atten))
				specular = specular.Add(mat.Ks.Multiply(l.Specular).Scale(math.Pow(math.Max(reflectDir.Dot(viewDir), 0.0), mat.Ns) * atten))
				if depth > 0 {
					bounce := geom.Ray{Origin: hit.Point.Add(hit.Normal.Scale(reflectionBias)), Dir: r.Dir.Reflect(hit.Normal)}
					final = final.Add(Trace(bounce, scn, depth-1).Scale(mat.Reflectivity()))
				}
			}
		} else {
			// A directional light's position is the direction its rays travel.
			// It never attenuates, and its ambient term also arrives in shadow.
			ambient = ambient.Add(mat.Ka.Multiply(l.Ambient))

			shadowOrigin := hit.Point.Add(hit.Normal.Scale(directionalShadowBias))
			shadow := Raycast(geom.Ray{Origin: shadowOrigin, Dir: l.Pos.Scale(-1.0).Norm()}, scn)
			if shadow.Obj == nil {
				lightDir := l.Pos.Norm()
				viewDir := scn.Cam.Pos.Sub(hit.Point).Norm()
				reflectDir := lightDir.Reflect(hit.Normal)

				diffuse = diffuse.Add(mat.Kd.Multiply(l.Diffuse).Scale(math.Max(hit.Normal.Dot(lightDir.Scale(-1.0)), 0.0)))
				specular = specular.Add(mat.Ks.Multiply(l.Specular).Scale(math.Pow(math.Max(reflectDir.Dot(viewDir), 0.0), mat.Ns)))
				if depth > 0 {
					bounce := geom.Ray{Origin: hit.Point.Add(hit.Normal.Scale(reflectionBias)), Dir: r.Dir.Reflect(hit.Normal)}
					final = final.Add(Trace(bounce, scn, depth-1).Scale(mat.Reflectivity()))
				}
			}
		}
	}

	// The ambient terms average over the lights; everything else accumulates.
	return final.Add(ambient.Scale(1.0 / float64(len(scn.Lights)))).Add(diffuse).Add(specular)
}
