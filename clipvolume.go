package glview

import (
	"github.com/gogpu/glview/geom"
)

// ClipVolumeKind tags the GPU representation of a clip region.
type ClipVolumeKind uint8

const (
	// ClipVolumeMask samples a rasterized coverage texture.
	ClipVolumeMask ClipVolumeKind = iota
	// ClipVolumePlanes evaluates half-plane equations in the shader.
	ClipVolumePlanes
)

// maskSize is the edge length of rasterized clip-mask textures.
const maskSize = 256

// ClipVolume is a GPU-representable encoding of a clipping region: either
// a coverage mask texture or a set of half-planes. Owned by its model's
// cache once cached.
type ClipVolume struct {
	kind   ClipVolumeKind
	mask   *Texture
	planes []geom.ClipPlane
}

// Kind returns the volume's representation.
func (v *ClipVolume) Kind() ClipVolumeKind { return v.kind }

// Mask returns the coverage texture for mask volumes, nil otherwise.
func (v *ClipVolume) Mask() *Texture { return v.mask }

// Planes returns the half-planes for plane volumes, nil otherwise.
func (v *ClipVolume) Planes() []geom.ClipPlane { return v.planes }

// Dispose releases the volume's GPU resources. Safe to call repeatedly.
func (v *ClipVolume) Dispose() {
	if v == nil {
		return
	}
	v.mask.Dispose()
	v.mask = nil
	v.planes = nil
}

// newClipVolume builds the cheapest usable representation of the clip
// vector: a mask when the region is a single shape (cheaper to evaluate
// when expressible), otherwise half-planes. Returns nil when the vector
// cannot be represented; callers render unclipped.
func (s *System) newClipVolume(vec *geom.ClipVector) *ClipVolume {
	if !vec.IsValid() {
		return nil
	}
	if shape := vec.SingleShape(); shape.IsValid() {
		if vol := s.newMaskVolume(shape); vol != nil {
			return vol
		}
		// Mask allocation failed; planes still work for convex shapes.
	}
	return newPlanesVolume(vec)
}

// newMaskVolume rasterizes the shape into a fixed-size alpha coverage
// texture. Returns nil on texture allocation failure.
func (s *System) newMaskVolume(shape *geom.ClipShape) *ClipVolume {
	rng := geom.NewRange2()
	for _, p := range shape.Points {
		rng.Extend(p)
	}
	if rng.IsEmpty() || rng.Width() == 0 || rng.Height() == 0 {
		return nil
	}

	data := make([]byte, maskSize*maskSize)
	for y := 0; y < maskSize; y++ {
		fy := rng.Low.Y + (float32(y)+0.5)/maskSize*rng.Height()
		for x := 0; x < maskSize; x++ {
			fx := rng.Low.X + (float32(x)+0.5)/maskSize*rng.Width()
			if shape.Contains(geom.Pt2(fx, fy)) {
				data[y*maskSize+x] = 0xFF
			}
		}
	}

	buf := ImageBuffer{Format: BufferAlpha, Width: maskSize, Height: maskSize, Data: data}
	tex, err := s.TextureFromImageBuffer(buf, TextureParams{})
	if err != nil {
		Logger().Warn("clip mask texture allocation failed", "error", err)
		return nil
	}
	return &ClipVolume{kind: ClipVolumeMask, mask: tex}
}

// newPlanesVolume collects half-planes from the vector's primitives,
// deriving them from edges for convex shapes. Returns nil when no usable
// planes result.
func newPlanesVolume(vec *geom.ClipVector) *ClipVolume {
	var planes []geom.ClipPlane
	for _, prim := range vec.Primitives {
		if len(prim.Planes) > 0 {
			planes = append(planes, prim.Planes...)
			continue
		}
		if prim.Shape.IsValid() && prim.Shape.IsConvex() {
			planes = append(planes, prim.Shape.Planes()...)
		}
	}
	if len(planes) == 0 {
		return nil
	}
	return &ClipVolume{kind: ClipVolumePlanes, planes: planes}
}
