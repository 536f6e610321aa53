// Package gradient describes color gradients symbolically and rasterizes
// them into images suitable for texture upload.
//
// A Symbol is a structured value: two symbols with equal fields describe
// the same gradient and share one cache key, regardless of object identity.
package gradient

import (
	"fmt"
	"image"
	"math"
	"sort"
)

// ImageSize is the fixed edge length of rasterized gradient images.
// Gradients are always rasterized at this resolution before texture
// creation; the GPU samples with interpolation, so a modest fixed size
// is sufficient for smooth results.
const ImageSize = 256

// Mode selects the geometric mapping from image position to gradient
// fraction.
type Mode uint8

const (
	// Linear maps position along a direction given by Angle.
	Linear Mode = iota
	// Cylindrical maps distance from the central vertical axis.
	Cylindrical
	// Spherical maps radial distance from the image center.
	Spherical
	// Hemispherical maps radial distance from the bottom-center.
	Hemispherical
)

// Flags modify gradient evaluation.
type Flags uint8

const (
	// FlagInvert reverses the gradient direction.
	FlagInvert Flags = 1 << iota
)

// RGBA is a color with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// KeyColor is a color stop at a fractional position within the gradient.
type KeyColor struct {
	// Value is the stop position, 0.0 to 1.0.
	Value float64
	// Color is the color at this position.
	Color RGBA
}

// Symbol is a structured description of a color gradient.
type Symbol struct {
	Mode  Mode
	Flags Flags
	// Angle is the linear gradient direction in radians. Ignored by
	// other modes.
	Angle float64
	// Shift offsets the sampled fraction, wrapping within [0, 1).
	Shift float64
	// Keys are the color stops. At least two are needed for a visible
	// ramp; fewer degrade to a constant fill.
	Keys []KeyColor
}

// Key returns a canonical cache key: symbols with equal field values
// produce equal keys even when they are distinct Go values.
func (s *Symbol) Key() string {
	key := fmt.Sprintf("m%d:f%d:a%.6f:s%.6f", s.Mode, s.Flags, s.Angle, s.Shift)
	for _, k := range s.Keys {
		key += fmt.Sprintf(":%.6f,%.6f,%.6f,%.6f,%.6f",
			k.Value, k.Color.R, k.Color.G, k.Color.B, k.Color.A)
	}
	return key
}

// sortKeys returns the stops sorted by ascending value without modifying
// the input.
func sortKeys(keys []KeyColor) []KeyColor {
	sorted := make([]KeyColor, len(keys))
	copy(sorted, keys)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Value < sorted[j].Value
	})
	return sorted
}

// clamp01 clamps a value to [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// colorAt returns the interpolated color at fraction t with pad-extend
// semantics. The keys must be pre-sorted.
func colorAt(keys []KeyColor, t float64) RGBA {
	if len(keys) == 0 {
		return RGBA{}
	}
	if len(keys) == 1 {
		return keys[0].Color
	}

	t = clamp01(t)
	idx := sort.Search(len(keys), func(i int) bool {
		return keys[i].Value >= t
	})
	if idx == 0 {
		return keys[0].Color
	}
	if idx >= len(keys) {
		return keys[len(keys)-1].Color
	}

	k1, k2 := keys[idx-1], keys[idx]
	if k2.Value == k1.Value {
		return k1.Color
	}
	local := (t - k1.Value) / (k2.Value - k1.Value)
	return RGBA{
		R: k1.Color.R + local*(k2.Color.R-k1.Color.R),
		G: k1.Color.G + local*(k2.Color.G-k1.Color.G),
		B: k1.Color.B + local*(k2.Color.B-k1.Color.B),
		A: k1.Color.A + local*(k2.Color.A-k1.Color.A),
	}
}

// fraction maps a normalized image position (u, v in [0, 1]) to a gradient
// fraction according to the symbol's mode.
func (s *Symbol) fraction(u, v float64) float64 {
	var f float64
	switch s.Mode {
	case Linear:
		cos, sin := math.Cos(s.Angle), math.Sin(s.Angle)
		// Project onto the gradient direction, then normalize the
		// projection range back to [0, 1].
		f = (cos*u + sin*v + math.Max(0, -cos) + math.Max(0, -sin)) /
			(math.Abs(cos) + math.Abs(sin))
	case Cylindrical:
		f = math.Abs(u-0.5) * 2
	case Spherical:
		du, dv := u-0.5, v-0.5
		f = math.Min(1, math.Sqrt(du*du+dv*dv)*2)
	case Hemispherical:
		du, dv := u-0.5, v-1
		f = math.Min(1, math.Sqrt(du*du+dv*dv))
	default:
		f = u
	}

	if s.Shift != 0 {
		f += s.Shift
		f -= math.Floor(f)
	}
	if s.Flags&FlagInvert != 0 {
		f = 1 - f
	}
	return clamp01(f)
}

// Rasterize renders the gradient into a fixed ImageSize square RGBA image.
func (s *Symbol) Rasterize() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, ImageSize, ImageSize))
	keys := sortKeys(s.Keys)

	for y := 0; y < ImageSize; y++ {
		v := float64(y) / (ImageSize - 1)
		for x := 0; x < ImageSize; x++ {
			u := float64(x) / (ImageSize - 1)
			c := colorAt(keys, s.fraction(u, v))
			off := img.PixOffset(x, y)
			img.Pix[off+0] = uint8(clamp01(c.R)*255 + 0.5)
			img.Pix[off+1] = uint8(clamp01(c.G)*255 + 0.5)
			img.Pix[off+2] = uint8(clamp01(c.B)*255 + 0.5)
			img.Pix[off+3] = uint8(clamp01(c.A)*255 + 0.5)
		}
	}
	return img
}
