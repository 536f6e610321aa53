// Package geom provides the small set of geometry primitives glview needs
// for sheet-tile tessellation and clip volumes: float32 points and ranges
// (matching GPU vertex precision), planar clip shapes, polygon clipping,
// and triangulation.
package geom

import "github.com/chewxy/math32"

// Point2 is a 2D point or vector.
type Point2 struct {
	X, Y float32
}

// Pt2 creates a Point2.
func Pt2(x, y float32) Point2 {
	return Point2{X: x, Y: y}
}

// Sub returns p - q.
func (p Point2) Sub(q Point2) Point2 {
	return Point2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Cross returns the scalar 2D cross product.
func (p Point2) Cross(q Point2) float32 {
	return p.X*q.Y - p.Y*q.X
}

// Point3 is a 3D point or vector.
type Point3 struct {
	X, Y, Z float32
}

// Pt3 creates a Point3.
func Pt3(x, y, z float32) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Sub returns p - q.
func (p Point3) Sub(q Point3) Point3 {
	return Point3{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// XY projects the point onto the XY plane.
func (p Point3) XY() Point2 {
	return Point2{X: p.X, Y: p.Y}
}

// Distance returns the distance between two points.
func (p Point3) Distance(q Point3) float32 {
	d := p.Sub(q)
	return math32.Sqrt(d.X*d.X + d.Y*d.Y + d.Z*d.Z)
}

// Range2 is an axis-aligned 2D bounding range.
type Range2 struct {
	Low, High Point2
}

// NewRange2 returns an empty (inverted) range ready to be extended.
func NewRange2() Range2 {
	inf := math32.Inf(1)
	return Range2{
		Low:  Point2{X: inf, Y: inf},
		High: Point2{X: -inf, Y: -inf},
	}
}

// Extend grows the range to include p.
func (r *Range2) Extend(p Point2) {
	r.Low.X = math32.Min(r.Low.X, p.X)
	r.Low.Y = math32.Min(r.Low.Y, p.Y)
	r.High.X = math32.Max(r.High.X, p.X)
	r.High.Y = math32.Max(r.High.Y, p.Y)
}

// IsEmpty reports whether the range contains no points.
func (r Range2) IsEmpty() bool {
	return r.Low.X > r.High.X || r.Low.Y > r.High.Y
}

// Width returns the X extent.
func (r Range2) Width() float32 { return r.High.X - r.Low.X }

// Height returns the Y extent.
func (r Range2) Height() float32 { return r.High.Y - r.Low.Y }

// Fractions returns p's coordinates as fractions of the range extents,
// so points inside the range map into [0, 1]². Degenerate extents map
// to zero.
func (r Range2) Fractions(p Point2) Point2 {
	var u, v float32
	if w := r.Width(); w > 0 {
		u = (p.X - r.Low.X) / w
	}
	if h := r.Height(); h > 0 {
		v = (p.Y - r.Low.Y) / h
	}
	return Point2{X: u, Y: v}
}
