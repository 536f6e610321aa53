package geom

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/chewxy/math32"
)

// ClipPlane is a half-space in the XY plane: points p with
// Normal·p + Distance >= 0 are kept.
type ClipPlane struct {
	Normal   Point2
	Distance float32
}

// Evaluate returns the signed distance of p from the plane.
func (c ClipPlane) Evaluate(p Point2) float32 {
	return c.Normal.X*p.X + c.Normal.Y*p.Y + c.Distance
}

// ClipShape is a planar polygonal clip region. The boundary is implicitly
// closed; vertices are expected in counter-clockwise order.
type ClipShape struct {
	Points []Point2
}

// NewClipShape creates a clip shape from boundary vertices.
func NewClipShape(pts ...Point2) *ClipShape {
	return &ClipShape{Points: pts}
}

// IsValid reports whether the shape encloses any area.
func (s *ClipShape) IsValid() bool {
	return s != nil && len(s.Points) >= 3
}

// Contains reports whether p lies inside the shape (even-odd rule,
// boundary-inclusive within float tolerance).
func (s *ClipShape) Contains(p Point2) bool {
	if !s.IsValid() {
		return false
	}
	inside := false
	n := len(s.Points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := s.Points[i], s.Points[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// Planes derives the bounding half-planes of a convex shape, one per edge.
// Results are meaningless for concave input; callers choose mask volumes
// for those.
func (s *ClipShape) Planes() []ClipPlane {
	if !s.IsValid() {
		return nil
	}
	n := len(s.Points)
	planes := make([]ClipPlane, 0, n)
	for i := 0; i < n; i++ {
		a := s.Points[i]
		b := s.Points[(i+1)%n]
		edge := b.Sub(a)
		length := math32.Sqrt(edge.X*edge.X + edge.Y*edge.Y)
		if length == 0 {
			continue
		}
		// Inward normal for CCW winding.
		normal := Point2{X: -edge.Y / length, Y: edge.X / length}
		planes = append(planes, ClipPlane{
			Normal:   normal,
			Distance: -(normal.X*a.X + normal.Y*a.Y),
		})
	}
	return planes
}

// IsConvex reports whether all boundary turns share one orientation.
func (s *ClipShape) IsConvex() bool {
	if !s.IsValid() {
		return false
	}
	n := len(s.Points)
	sign := float32(0)
	for i := 0; i < n; i++ {
		a := s.Points[i]
		b := s.Points[(i+1)%n]
		c := s.Points[(i+2)%n]
		cross := b.Sub(a).Cross(c.Sub(b))
		if cross == 0 {
			continue
		}
		if sign == 0 {
			sign = cross
		} else if (sign > 0) != (cross > 0) {
			return false
		}
	}
	return true
}

// ClipPrimitive is one element of a ClipVector: either a polygonal shape
// or an explicit set of half-planes.
type ClipPrimitive struct {
	Shape  *ClipShape
	Planes []ClipPlane
}

// ClipVector is an ordered list of clip primitives describing a clipping
// region. It is a value: two vectors with equal contents identify the same
// region and share one cache key.
type ClipVector struct {
	Primitives []ClipPrimitive
}

// IsValid reports whether the vector carries any usable primitive.
func (v *ClipVector) IsValid() bool {
	return v != nil && len(v.Primitives) > 0
}

// SingleShape returns the vector's shape when it consists of exactly one
// shape primitive, or nil. Mask-based clip volumes are only expressible
// for this case.
func (v *ClipVector) SingleShape() *ClipShape {
	if v == nil || len(v.Primitives) != 1 {
		return nil
	}
	return v.Primitives[0].Shape
}

// Key returns a structural hash key for the vector: equal contents yield
// equal keys independent of object identity.
func (v *ClipVector) Key() uint64 {
	h := fnv.New64a()
	var buf [4]byte
	writeF32 := func(f float32) {
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(f))
		_, _ = h.Write(buf[:])
	}
	for _, prim := range v.Primitives {
		if prim.Shape != nil {
			_, _ = h.Write([]byte{'s'})
			for _, p := range prim.Shape.Points {
				writeF32(p.X)
				writeF32(p.Y)
			}
		}
		if len(prim.Planes) > 0 {
			_, _ = h.Write([]byte{'p'})
			for _, pl := range prim.Planes {
				writeF32(pl.Normal.X)
				writeF32(pl.Normal.Y)
				writeF32(pl.Distance)
			}
		}
	}
	return h.Sum64()
}

// ClipPolygon clips a subject polygon against a convex clip shape using
// Sutherland-Hodgman. The subject may be any polygon; the clip shape must
// be convex. Returns nil when nothing survives.
func ClipPolygon(subject []Point2, clip *ClipShape) []Point2 {
	if !clip.IsValid() {
		out := make([]Point2, len(subject))
		copy(out, subject)
		return out
	}

	output := make([]Point2, len(subject))
	copy(output, subject)

	for _, plane := range clip.Planes() {
		if len(output) == 0 {
			return nil
		}
		input := output
		output = make([]Point2, 0, len(input)+2)

		for i := range input {
			cur := input[i]
			prev := input[(i+len(input)-1)%len(input)]
			curIn := plane.Evaluate(cur) >= 0
			prevIn := plane.Evaluate(prev) >= 0

			if curIn != prevIn {
				output = append(output, intersectPlane(prev, cur, plane))
			}
			if curIn {
				output = append(output, cur)
			}
		}
	}

	if len(output) < 3 {
		return nil
	}
	return output
}

// intersectPlane returns the point where segment a-b crosses the plane.
func intersectPlane(a, b Point2, plane ClipPlane) Point2 {
	da := plane.Evaluate(a)
	db := plane.Evaluate(b)
	t := da / (da - db)
	return Point2{
		X: a.X + t*(b.X-a.X),
		Y: a.Y + t*(b.Y-a.Y),
	}
}
