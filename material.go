package glview

import "github.com/gogpu/glview/gradient"

// Color is the shared color type of the module, components in [0, 1].
type Color = gradient.RGBA

// MaterialParams describes a surface material. An empty Key produces an
// uncached material owned by the caller.
type MaterialParams struct {
	// Key identifies the material within its model's cache.
	Key string

	// Diffuse is the base surface color.
	Diffuse Color

	// DiffuseWeight blends between element color and Diffuse, 0 to 1.
	DiffuseWeight float64

	// Specular is the highlight color.
	Specular Color

	// SpecularWeight scales the highlight contribution, 0 to 1.
	SpecularWeight float64

	// SpecularExponent controls highlight tightness.
	SpecularExponent float64

	// Alpha is the surface opacity, 0 to 1.
	Alpha float64

	// Texture optionally maps a pattern over the surface. The material
	// does not own the texture; its lifetime follows its own cache entry.
	Texture *Texture
}

// DefaultMaterialParams returns params for a plain opaque surface.
func DefaultMaterialParams() MaterialParams {
	return MaterialParams{
		Diffuse:          Color{R: 1, G: 1, B: 1, A: 1},
		DiffuseWeight:    0.6,
		Specular:         Color{R: 1, G: 1, B: 1, A: 1},
		SpecularWeight:   0.4,
		SpecularExponent: 13.5,
		Alpha:            1,
	}
}

// Material is an immutable GPU-facing material. Cached materials are owned
// by their model's cache.
type Material struct {
	params MaterialParams
}

// NewMaterial constructs a material from params. Callers normally go
// through [System.CreateMaterial], which handles caching.
func NewMaterial(params MaterialParams) *Material {
	return &Material{params: params}
}

// Key returns the cache key, empty for uncached materials.
func (m *Material) Key() string { return m.params.Key }

// Params returns the material description.
func (m *Material) Params() MaterialParams { return m.params }

// HasTexture reports whether a pattern texture is mapped.
func (m *Material) HasTexture() bool { return m.params.Texture != nil }

// IsTranslucent reports whether the material needs blended rendering.
func (m *Material) IsTranslucent() bool { return m.params.Alpha < 1 }
