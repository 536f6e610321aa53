package geom

// Facet is a single face of a polyface. Point and param indices are
// independent arrays: a facet's positions and UV params are not co-indexed
// until a consumer explicitly re-indexes them.
type Facet struct {
	PointIndices []int
	ParamIndices []int
}

// Polyface is an indexed mesh with per-vertex UV params held in a separate
// pool from positions.
type Polyface struct {
	Points []Point3
	Params []Point2
	Facets []Facet
}

// FindOrAddPoint returns the index of p in the point pool, appending it
// when absent.
func (pf *Polyface) FindOrAddPoint(p Point3) int {
	for i, q := range pf.Points {
		if p == q {
			return i
		}
	}
	pf.Points = append(pf.Points, p)
	return len(pf.Points) - 1
}

// FindOrAddParam returns the index of uv in the param pool, appending it
// when absent.
func (pf *Polyface) FindOrAddParam(uv Point2) int {
	for i, q := range pf.Params {
		if uv == q {
			return i
		}
	}
	pf.Params = append(pf.Params, uv)
	return len(pf.Params) - 1
}

// AddFacet appends a facet. Both index slices must have equal length;
// facets with fewer than three vertices are ignored.
func (pf *Polyface) AddFacet(pointIdx, paramIdx []int) {
	if len(pointIdx) < 3 || len(pointIdx) != len(paramIdx) {
		return
	}
	pi := make([]int, len(pointIdx))
	copy(pi, pointIdx)
	qi := make([]int, len(paramIdx))
	copy(qi, paramIdx)
	pf.Facets = append(pf.Facets, Facet{PointIndices: pi, ParamIndices: qi})
}

// IsEmpty reports whether the polyface has no facets.
func (pf *Polyface) IsEmpty() bool {
	return pf == nil || len(pf.Facets) == 0
}
