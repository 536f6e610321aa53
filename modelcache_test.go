package glview

import (
	"image"
	"testing"

	"github.com/gogpu/glview/geom"
	"github.com/gogpu/glview/gradient"
)

func TestGetMaterialDedupe(t *testing.T) {
	sys, _ := newTestSystem(t)
	cache := sys.ResourcesFor(1)

	params := DefaultMaterialParams()
	params.Key = "steel"
	m1 := cache.GetMaterial(params)
	m2 := cache.GetMaterial(params)
	if m1 != m2 {
		t.Error("equal keys must return the identical material")
	}

	params.Key = "glass"
	if m3 := cache.GetMaterial(params); m3 == m1 {
		t.Error("different keys must not share a material")
	}

	stats := cache.Stats()
	if stats.Hits != 1 || stats.Misses != 2 {
		t.Errorf("expected 1 hit / 2 misses, got %+v", stats)
	}
}

func TestGetMaterialEmptyKeyUncached(t *testing.T) {
	sys, _ := newTestSystem(t)
	cache := sys.ResourcesFor(1)

	params := DefaultMaterialParams()
	m1 := cache.GetMaterial(params)
	m2 := cache.GetMaterial(params)
	if m1 == m2 {
		t.Error("empty key must produce fresh uncached materials")
	}
	if stats := cache.Stats(); stats.Hits != 0 || stats.Misses != 0 {
		t.Errorf("uncached requests must not touch counters, got %+v", stats)
	}
}

func TestGetTextureDedupe(t *testing.T) {
	sys, ctx := newTestSystem(t)
	cache := sys.ResourcesFor(1)

	before := ctx.CreatedTextures
	t1 := cache.GetTexture(testImage(8, 8), TextureParams{Key: "wood"})
	t2 := cache.GetTexture(testImage(8, 8), TextureParams{Key: "wood"})
	if t1 == nil || t1 != t2 {
		t.Error("equal keys must return the identical texture")
	}
	if got := ctx.CreatedTextures - before; got != 1 {
		t.Errorf("expected 1 texture allocation, got %d", got)
	}
}

func TestGetTextureEmptyKeyUncached(t *testing.T) {
	sys, ctx := newTestSystem(t)
	cache := sys.ResourcesFor(1)

	before := ctx.CreatedTextures
	t1 := cache.GetTexture(testImage(8, 8), TextureParams{})
	t2 := cache.GetTexture(testImage(8, 8), TextureParams{})
	if t1 == nil || t2 == nil || t1 == t2 {
		t.Error("empty key must produce fresh uncached textures")
	}
	if got := ctx.CreatedTextures - before; got != 2 {
		t.Errorf("expected 2 texture allocations, got %d", got)
	}
}

func TestGetTextureFailureNotCached(t *testing.T) {
	sys, ctx := newTestSystem(t)
	cache := sys.ResourcesFor(1)

	ctx.FailCreateTexture = true
	if tex := cache.GetTexture(testImage(4, 4), TextureParams{Key: "k"}); tex != nil {
		t.Fatal("expected nil texture on allocation failure")
	}

	// The failure must not poison the key: once allocation works again,
	// the same key produces a usable texture.
	ctx.FailCreateTexture = false
	if tex := cache.GetTexture(testImage(4, 4), TextureParams{Key: "k"}); tex == nil {
		t.Error("expected retry to succeed after transient failure")
	}
}

func TestGetTextureFromImageBuffer(t *testing.T) {
	sys, _ := newTestSystem(t)
	cache := sys.ResourcesFor(1)

	buf := ImageBuffer{Format: BufferRGB, Width: 2, Height: 2, Data: make([]byte, 12)}
	t1 := cache.GetTextureFromImageBuffer(buf, TextureParams{Key: "raw"})
	t2 := cache.GetTextureFromImageBuffer(buf, TextureParams{Key: "raw"})
	if t1 == nil || t1 != t2 {
		t.Error("equal keys must return the identical texture")
	}

	bad := ImageBuffer{Format: BufferRGB, Width: 2, Height: 2, Data: make([]byte, 5)}
	if tex := cache.GetTextureFromImageBuffer(bad, TextureParams{Key: "bad"}); tex != nil {
		t.Error("expected nil for invalid buffer")
	}
}

func TestGetTextureFromCubeImagesUncached(t *testing.T) {
	sys, _ := newTestSystem(t)
	cache := sys.ResourcesFor(1)

	var faces [6]image.Image
	for i := range faces {
		faces[i] = testImage(4, 4)
	}
	t1 := cache.GetTextureFromCubeImages(faces)
	t2 := cache.GetTextureFromCubeImages(faces)
	if t1 == nil || t2 == nil {
		t.Fatal("cube texture creation failed")
	}
	if t1 == t2 {
		t.Error("cube maps must never be cached")
	}
	if !t1.IsCubeMap() {
		t.Error("expected cube-map texture")
	}
	t1.Dispose()
	t2.Dispose()
}

func TestGetGradientStructuralKey(t *testing.T) {
	sys, ctx := newTestSystem(t)
	cache := sys.ResourcesFor(1)

	stops := []gradient.KeyColor{
		{Value: 0, Color: gradient.RGBA{R: 1, A: 1}},
		{Value: 1, Color: gradient.RGBA{B: 1, A: 1}},
	}
	// Two distinct symbol values with equal fields share one texture.
	a := &gradient.Symbol{Mode: gradient.Linear, Keys: stops}
	b := &gradient.Symbol{Mode: gradient.Linear, Keys: stops}

	before := ctx.CreatedTextures
	t1 := cache.GetGradient(a)
	t2 := cache.GetGradient(b)
	if t1 == nil || t1 != t2 {
		t.Error("field-equal symbols must share one texture")
	}
	if got := ctx.CreatedTextures - before; got != 1 {
		t.Errorf("expected 1 texture allocation, got %d", got)
	}

	c := &gradient.Symbol{Mode: gradient.Spherical, Keys: stops}
	if t3 := cache.GetGradient(c); t3 == t1 {
		t.Error("different modes must not share a texture")
	}
}

func TestGetClipVolumeCachedByValue(t *testing.T) {
	sys, _ := newTestSystem(t)
	cache := sys.ResourcesFor(1)

	square := []geom.Point2{
		geom.Pt2(0, 0), geom.Pt2(1, 0), geom.Pt2(1, 1), geom.Pt2(0, 1),
	}
	// Reference-distinct vectors with equal contents.
	v1 := &geom.ClipVector{Primitives: []geom.ClipPrimitive{{Shape: geom.NewClipShape(square...)}}}
	v2 := &geom.ClipVector{Primitives: []geom.ClipPrimitive{{Shape: geom.NewClipShape(square...)}}}

	vol1 := cache.GetClipVolume(v1)
	vol2 := cache.GetClipVolume(v2)
	if vol1 == nil || vol1 != vol2 {
		t.Error("structurally equal vectors must share one volume")
	}
	if vol1.Kind() != ClipVolumeMask {
		t.Errorf("single shape should produce a mask volume, got kind %d", vol1.Kind())
	}

	if vol := cache.GetClipVolume(&geom.ClipVector{}); vol != nil {
		t.Error("expected nil for empty vector")
	}
	if vol := cache.GetClipVolume(nil); vol != nil {
		t.Error("expected nil for nil vector")
	}
}

func TestGetClipVolumePlanesFallback(t *testing.T) {
	sys, _ := newTestSystem(t)
	cache := sys.ResourcesFor(1)

	planes := []geom.ClipPlane{
		{Normal: geom.Pt2(1, 0), Distance: 0},
		{Normal: geom.Pt2(0, 1), Distance: 0},
	}
	vec := &geom.ClipVector{Primitives: []geom.ClipPrimitive{{Planes: planes}}}
	vol := cache.GetClipVolume(vec)
	if vol == nil {
		t.Fatal("expected planes volume")
	}
	if vol.Kind() != ClipVolumePlanes || len(vol.Planes()) != 2 {
		t.Errorf("expected 2-plane volume, got kind %d with %d planes",
			vol.Kind(), len(vol.Planes()))
	}
}

func TestModelCacheDispose(t *testing.T) {
	sys, ctx := newTestSystem(t)
	cache := sys.ResourcesFor(1)

	cache.GetTexture(testImage(4, 4), TextureParams{Key: "t"})
	cache.GetGradient(&gradient.Symbol{Keys: []gradient.KeyColor{
		{Value: 0, Color: gradient.RGBA{A: 1}},
		{Value: 1, Color: gradient.RGBA{R: 1, A: 1}},
	}})
	square := geom.NewClipShape(geom.Pt2(0, 0), geom.Pt2(1, 0), geom.Pt2(1, 1), geom.Pt2(0, 1))
	cache.GetClipVolume(&geom.ClipVector{Primitives: []geom.ClipPrimitive{{Shape: square}}})
	params := DefaultMaterialParams()
	params.Key = "m"
	cache.GetMaterial(params)

	cache.Dispose()
	cache.Dispose()

	if n := ctx.LiveTextureCount(); n != 0 {
		t.Errorf("%d textures leaked after dispose", n)
	}
}
