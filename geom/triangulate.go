package geom

import "github.com/chewxy/math32"

// Triangulate decomposes a simple polygon into triangles by ear clipping
// and returns index triples into the input. Degenerate (zero-area) ears
// are dropped, so only interior faces survive. Returns nil for polygons
// with fewer than three vertices.
func Triangulate(polygon []Point2) [][3]int {
	n := len(polygon)
	if n < 3 {
		return nil
	}
	if n == 3 {
		return [][3]int{{0, 1, 2}}
	}

	// Work on a mutable index ring, oriented counter-clockwise.
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	if signedArea(polygon) < 0 {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			indices[i], indices[j] = indices[j], indices[i]
		}
	}

	tris := make([][3]int, 0, n-2)
	remaining := len(indices)
	guard := remaining * remaining // bail out on malformed input

	for remaining > 3 && guard > 0 {
		guard--
		clipped := false
		for i := 0; i < remaining; i++ {
			prev := indices[(i+remaining-1)%remaining]
			cur := indices[i]
			next := indices[(i+1)%remaining]

			if !isEar(polygon, indices[:remaining], prev, cur, next) {
				continue
			}
			if triangleArea(polygon[prev], polygon[cur], polygon[next]) > epsilonArea {
				tris = append(tris, [3]int{prev, cur, next})
			}
			copy(indices[i:], indices[i+1:remaining])
			remaining--
			clipped = true
			break
		}
		if !clipped {
			// No ear found: collinear or self-intersecting leftovers.
			break
		}
	}
	if remaining == 3 {
		a, b, c := indices[0], indices[1], indices[2]
		if triangleArea(polygon[a], polygon[b], polygon[c]) > epsilonArea {
			tris = append(tris, [3]int{a, b, c})
		}
	}
	return tris
}

const epsilonArea = 1e-10

// signedArea returns twice the polygon's signed area (positive for CCW).
func signedArea(polygon []Point2) float32 {
	var area float32
	n := len(polygon)
	for i := 0; i < n; i++ {
		a := polygon[i]
		b := polygon[(i+1)%n]
		area += a.X*b.Y - b.X*a.Y
	}
	return area
}

// triangleArea returns the unsigned area of triangle abc.
func triangleArea(a, b, c Point2) float32 {
	return math32.Abs(b.Sub(a).Cross(c.Sub(a))) / 2
}

// isEar reports whether cur forms a convex ear of the index ring with no
// other ring vertex inside it.
func isEar(polygon []Point2, ring []int, prev, cur, next int) bool {
	a, b, c := polygon[prev], polygon[cur], polygon[next]
	if b.Sub(a).Cross(c.Sub(b)) <= 0 {
		return false // reflex corner
	}
	for _, idx := range ring {
		if idx == prev || idx == cur || idx == next {
			continue
		}
		if pointInTriangle(polygon[idx], a, b, c) {
			return false
		}
	}
	return true
}

// pointInTriangle reports whether p lies strictly inside triangle abc.
func pointInTriangle(p, a, b, c Point2) bool {
	d1 := b.Sub(a).Cross(p.Sub(a))
	d2 := c.Sub(b).Cross(p.Sub(b))
	d3 := a.Sub(c).Cross(p.Sub(c))
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}
