// Package sheet tessellates planar sheet tiles: textured quads, optionally
// clipped against a polygonal region, turned into drawable meshes for 2D
// content attached to a 3D view.
package sheet

import (
	"github.com/gogpu/glview"
	"github.com/gogpu/glview/geom"
)

// TilePolyfaces clips a quadrilateral tile against an optional clip shape
// and triangulates the result into a single combined polyface.
//
// UV params are computed against the unclipped tile's own bounding range,
// so UV spans [0, 1] across the full tile no matter how many clip
// fragments survive. Polygons left with fewer than three vertices are
// skipped; triangles and quads become facets directly, larger polygons go
// through general triangulation, which keeps only interior faces.
//
// Corners are ordered counter-clockwise starting at the tile origin. The
// returned slice is empty when clipping removes the whole tile.
func TilePolyfaces(corners [4]geom.Point3, clip *geom.ClipShape) []*geom.Polyface {
	rng := geom.NewRange2()
	for _, c := range corners {
		rng.Extend(c.XY())
	}
	if rng.IsEmpty() || rng.Width() == 0 || rng.Height() == 0 {
		return nil
	}

	quad := make([]geom.Point2, 0, 4)
	for _, c := range corners {
		quad = append(quad, c.XY())
	}

	polygons := [][]geom.Point2{quad}
	if clip.IsValid() {
		clipped := geom.ClipPolygon(quad, clip)
		if clipped == nil {
			return nil
		}
		polygons = [][]geom.Point2{clipped}
	}

	zOf := planeZ(corners)
	pf := &geom.Polyface{}
	for _, poly := range polygons {
		if len(poly) < 3 {
			continue
		}
		if len(poly) <= 4 {
			addFacet(pf, poly, rng, zOf)
			continue
		}
		for _, tri := range geom.Triangulate(poly) {
			addFacet(pf, []geom.Point2{poly[tri[0]], poly[tri[1]], poly[tri[2]]}, rng, zOf)
		}
	}

	if pf.IsEmpty() {
		return nil
	}
	return []*geom.Polyface{pf}
}

// addFacet appends one facet, deriving each vertex's UV from its position
// within the tile range. Point and param pools stay independently indexed.
func addFacet(pf *geom.Polyface, poly []geom.Point2, rng geom.Range2, zOf func(geom.Point2) float32) {
	pointIdx := make([]int, len(poly))
	paramIdx := make([]int, len(poly))
	for i, p := range poly {
		pointIdx[i] = pf.FindOrAddPoint(geom.Pt3(p.X, p.Y, zOf(p)))
		paramIdx[i] = pf.FindOrAddParam(rng.Fractions(p))
	}
	pf.AddFacet(pointIdx, paramIdx)
}

// planeZ returns an interpolator recovering Z for clipped vertices from
// the tile plane spanned by the first three corners.
func planeZ(corners [4]geom.Point3) func(geom.Point2) float32 {
	a, b, c := corners[0], corners[1], corners[3]
	ab := b.Sub(a)
	ac := c.Sub(a)
	// Plane normal; a degenerate (vertical or zero-area) frame falls back
	// to the first corner's Z.
	nx := ab.Y*ac.Z - ab.Z*ac.Y
	ny := ab.Z*ac.X - ab.X*ac.Z
	nz := ab.X*ac.Y - ab.Y*ac.X
	if nz == 0 {
		z := a.Z
		return func(geom.Point2) float32 { return z }
	}
	return func(p geom.Point2) float32 {
		return a.Z - (nx*(p.X-a.X)+ny*(p.Y-a.Y))/nz
	}
}

// TileMesh is a drawable sheet-tile fragment: positions and UVs are
// co-indexed, so the single index array addresses both in lockstep.
type TileMesh struct {
	Texture *glview.Texture
	Tint    glview.Color
	Points  []geom.Point3
	UVs     []geom.Point2
	Indices []uint32
}

// BuildTile rebuilds a drawable mesh per polyface. The polyface's point
// and param pools are indexed independently, so an explicit re-indexing
// pass merges each (point, param) pair into one mesh vertex before facets
// are fanned into triangles.
func BuildTile(texture *glview.Texture, polyfaces []*geom.Polyface, tint glview.Color) []*TileMesh {
	meshes := make([]*TileMesh, 0, len(polyfaces))

	for _, pf := range polyfaces {
		if pf.IsEmpty() {
			continue
		}
		mesh := &TileMesh{Texture: texture, Tint: tint}

		type vertex struct{ point, param int }
		merged := make(map[vertex]uint32)
		emit := func(point, param int) uint32 {
			key := vertex{point, param}
			if idx, ok := merged[key]; ok {
				return idx
			}
			idx := uint32(len(mesh.Points))
			merged[key] = idx
			mesh.Points = append(mesh.Points, pf.Points[point])
			mesh.UVs = append(mesh.UVs, pf.Params[param])
			return idx
		}

		for _, facet := range pf.Facets {
			root := emit(facet.PointIndices[0], facet.ParamIndices[0])
			for i := 1; i+1 < len(facet.PointIndices); i++ {
				mesh.Indices = append(mesh.Indices,
					root,
					emit(facet.PointIndices[i], facet.ParamIndices[i]),
					emit(facet.PointIndices[i+1], facet.ParamIndices[i+1]))
			}
		}

		if len(mesh.Indices) > 0 {
			meshes = append(meshes, mesh)
		}
	}
	return meshes
}
