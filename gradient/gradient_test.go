package gradient

import (
	"math"
	"testing"
)

func redBlue() []KeyColor {
	return []KeyColor{
		{Value: 0, Color: RGBA{R: 1, A: 1}},
		{Value: 1, Color: RGBA{B: 1, A: 1}},
	}
}

func TestKeyStructuralEquality(t *testing.T) {
	a := &Symbol{Mode: Linear, Angle: 0.5, Keys: redBlue()}
	b := &Symbol{Mode: Linear, Angle: 0.5, Keys: redBlue()}
	if a.Key() != b.Key() {
		t.Error("field-equal symbols must share a key")
	}

	tests := []struct {
		name string
		s    *Symbol
	}{
		{"mode", &Symbol{Mode: Spherical, Angle: 0.5, Keys: redBlue()}},
		{"flags", &Symbol{Mode: Linear, Flags: FlagInvert, Angle: 0.5, Keys: redBlue()}},
		{"angle", &Symbol{Mode: Linear, Angle: 0.25, Keys: redBlue()}},
		{"shift", &Symbol{Mode: Linear, Angle: 0.5, Shift: 0.1, Keys: redBlue()}},
		{"stops", &Symbol{Mode: Linear, Angle: 0.5, Keys: redBlue()[:1]}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.s.Key() == a.Key() {
				t.Error("differing field must change the key")
			}
		})
	}
}

func TestColorAt(t *testing.T) {
	keys := sortKeys(redBlue())

	mid := colorAt(keys, 0.5)
	if math.Abs(mid.R-0.5) > 1e-9 || math.Abs(mid.B-0.5) > 1e-9 {
		t.Errorf("midpoint = %+v, want R=B=0.5", mid)
	}

	// Pad-extend outside the stop range.
	if c := colorAt(keys, -1); c != keys[0].Color {
		t.Errorf("below range = %+v, want first stop", c)
	}
	if c := colorAt(keys, 2); c != keys[1].Color {
		t.Errorf("above range = %+v, want last stop", c)
	}

	if c := colorAt(nil, 0.5); c != (RGBA{}) {
		t.Errorf("no stops = %+v, want zero color", c)
	}
	single := []KeyColor{{Value: 0.5, Color: RGBA{G: 1}}}
	if c := colorAt(single, 0.9); c.G != 1 {
		t.Errorf("single stop = %+v, want constant fill", c)
	}
}

func TestFraction(t *testing.T) {
	tests := []struct {
		name string
		s    Symbol
		u, v float64
		want float64
	}{
		{"linear left", Symbol{Mode: Linear}, 0, 0.5, 0},
		{"linear right", Symbol{Mode: Linear}, 1, 0.5, 1},
		{"linear vertical", Symbol{Mode: Linear, Angle: math.Pi / 2}, 0.5, 0.75, 0.75},
		{"cylindrical center", Symbol{Mode: Cylindrical}, 0.5, 0.5, 0},
		{"cylindrical edge", Symbol{Mode: Cylindrical}, 0, 0.5, 1},
		{"spherical center", Symbol{Mode: Spherical}, 0.5, 0.5, 0},
		{"spherical corner capped", Symbol{Mode: Spherical}, 0, 0, 1},
		{"hemispherical bottom center", Symbol{Mode: Hemispherical}, 0.5, 1, 0},
		{"inverted", Symbol{Mode: Linear, Flags: FlagInvert}, 0, 0.5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.s.fraction(tt.u, tt.v)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("fraction(%v, %v) = %v, want %v", tt.u, tt.v, got, tt.want)
			}
		})
	}
}

func TestFractionShiftWraps(t *testing.T) {
	s := Symbol{Mode: Linear, Shift: 0.25}
	if got := s.fraction(0.9, 0); math.Abs(got-0.15) > 1e-9 {
		t.Errorf("shifted fraction = %v, want 0.15", got)
	}
}

func TestRasterize(t *testing.T) {
	s := &Symbol{Mode: Linear, Keys: redBlue()}
	img := s.Rasterize()

	b := img.Bounds()
	if b.Dx() != ImageSize || b.Dy() != ImageSize {
		t.Fatalf("unexpected size %dx%d", b.Dx(), b.Dy())
	}

	// Left edge is the first stop, right edge the last.
	left := img.RGBAAt(0, ImageSize/2)
	if left.R != 255 || left.B != 0 {
		t.Errorf("left edge = %+v, want pure red", left)
	}
	right := img.RGBAAt(ImageSize-1, ImageSize/2)
	if right.B != 255 || right.R != 0 {
		t.Errorf("right edge = %+v, want pure blue", right)
	}
}

func TestRasterizeUnsortedStops(t *testing.T) {
	s := &Symbol{Mode: Linear, Keys: []KeyColor{
		{Value: 1, Color: RGBA{B: 1, A: 1}},
		{Value: 0, Color: RGBA{R: 1, A: 1}},
	}}
	img := s.Rasterize()
	if left := img.RGBAAt(0, 0); left.R != 255 {
		t.Errorf("left edge = %+v, want red despite unsorted input", left)
	}
	// Rasterize must not reorder the caller's stops.
	if s.Keys[0].Value != 1 {
		t.Error("input stops were mutated")
	}
}
