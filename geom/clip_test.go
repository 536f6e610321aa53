package geom

import "testing"

func square(size float32) *ClipShape {
	return NewClipShape(Pt2(0, 0), Pt2(size, 0), Pt2(size, size), Pt2(0, size))
}

func TestClipShapeContains(t *testing.T) {
	s := square(2)
	tests := []struct {
		name string
		p    Point2
		want bool
	}{
		{"center", Pt2(1, 1), true},
		{"outside right", Pt2(3, 1), false},
		{"outside above", Pt2(1, 3), false},
		{"near corner inside", Pt2(0.01, 0.01), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}

	var nilShape *ClipShape
	if nilShape.Contains(Pt2(0, 0)) {
		t.Error("nil shape must contain nothing")
	}
}

func TestClipShapeIsValid(t *testing.T) {
	if NewClipShape(Pt2(0, 0), Pt2(1, 0)).IsValid() {
		t.Error("two points are not a valid shape")
	}
	if !square(1).IsValid() {
		t.Error("square must be valid")
	}
	var nilShape *ClipShape
	if nilShape.IsValid() {
		t.Error("nil shape must be invalid")
	}
}

func TestClipShapePlanesPointInward(t *testing.T) {
	planes := square(2).Planes()
	if len(planes) != 4 {
		t.Fatalf("expected 4 planes, got %d", len(planes))
	}
	center := Pt2(1, 1)
	outside := Pt2(5, 5)
	for i, pl := range planes {
		if pl.Evaluate(center) < 0 {
			t.Errorf("plane %d excludes the interior point", i)
		}
	}
	excluded := false
	for _, pl := range planes {
		if pl.Evaluate(outside) < 0 {
			excluded = true
		}
	}
	if !excluded {
		t.Error("no plane excludes an exterior point")
	}
}

func TestClipShapeIsConvex(t *testing.T) {
	if !square(1).IsConvex() {
		t.Error("square must be convex")
	}
	lShape := NewClipShape(
		Pt2(0, 0), Pt2(2, 0), Pt2(2, 1), Pt2(1, 1), Pt2(1, 2), Pt2(0, 2),
	)
	if lShape.IsConvex() {
		t.Error("L-shape must be concave")
	}
}

func TestClipVectorKeyStructural(t *testing.T) {
	v1 := &ClipVector{Primitives: []ClipPrimitive{{Shape: square(2)}}}
	v2 := &ClipVector{Primitives: []ClipPrimitive{{Shape: square(2)}}}
	if v1.Key() != v2.Key() {
		t.Error("equal contents must produce equal keys")
	}

	v3 := &ClipVector{Primitives: []ClipPrimitive{{Shape: square(3)}}}
	if v1.Key() == v3.Key() {
		t.Error("different contents should produce different keys")
	}

	v4 := &ClipVector{Primitives: []ClipPrimitive{{
		Planes: []ClipPlane{{Normal: Pt2(1, 0), Distance: -1}},
	}}}
	if v1.Key() == v4.Key() {
		t.Error("shape and plane primitives should produce different keys")
	}
}

func TestClipVectorSingleShape(t *testing.T) {
	s := square(1)
	v := &ClipVector{Primitives: []ClipPrimitive{{Shape: s}}}
	if v.SingleShape() != s {
		t.Error("expected the single shape back")
	}

	multi := &ClipVector{Primitives: []ClipPrimitive{{Shape: s}, {Shape: s}}}
	if multi.SingleShape() != nil {
		t.Error("multiple primitives have no single shape")
	}
}

func TestClipPolygon(t *testing.T) {
	subject := []Point2{Pt2(0, 0), Pt2(4, 0), Pt2(4, 4), Pt2(0, 4)}

	// Clip region covering the right half.
	clip := NewClipShape(Pt2(2, -1), Pt2(5, -1), Pt2(5, 5), Pt2(2, 5))
	out := ClipPolygon(subject, clip)
	if len(out) != 4 {
		t.Fatalf("expected 4 vertices, got %d: %v", len(out), out)
	}
	for _, p := range out {
		if p.X < 2 || p.X > 4 {
			t.Errorf("vertex %v escapes the clipped half", p)
		}
	}

	// Disjoint clip region removes everything.
	far := NewClipShape(Pt2(10, 10), Pt2(11, 10), Pt2(11, 11), Pt2(10, 11))
	if out := ClipPolygon(subject, far); out != nil {
		t.Errorf("expected nil for disjoint clip, got %v", out)
	}

	// An invalid clip shape passes the subject through.
	out = ClipPolygon(subject, nil)
	if len(out) != len(subject) {
		t.Errorf("invalid clip must pass subject through, got %v", out)
	}
}

func TestClipPolygonContained(t *testing.T) {
	subject := []Point2{Pt2(1, 1), Pt2(2, 1), Pt2(2, 2), Pt2(1, 2)}
	out := ClipPolygon(subject, square(4))
	if len(out) != 4 {
		t.Fatalf("fully contained subject must survive intact, got %v", out)
	}
}
