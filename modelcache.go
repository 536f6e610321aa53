package glview

import (
	"image"
	"sync/atomic"

	"github.com/gogpu/glview/geom"
	"github.com/gogpu/glview/gradient"
)

// ModelID identifies an open model connection. The connection layer
// assigns IDs; glview only keys caches by them.
type ModelID uint64

// CacheStats reports find-or-create traffic for one model's cache.
type CacheStats struct {
	Hits   uint64
	Misses uint64
}

// ModelCache owns the GPU-backed resources of one open model connection:
// materials, textures, gradient textures, and clip volumes, each
// deduplicated by key. A key, once inserted, maps to exactly one resource
// for the cache's lifetime; lookups never allocate a second resource for
// an existing key.
//
// Caches are created lazily by [System.ResourcesFor] and disposed by
// [System.ModelClosed].
type ModelCache struct {
	sys       *System
	materials map[string]*Material
	textures  map[string]*Texture
	gradients map[string]*Texture
	clips     map[uint64]*ClipVolume

	hits     atomic.Uint64
	misses   atomic.Uint64
	disposed bool
}

func newModelCache(sys *System) *ModelCache {
	return &ModelCache{
		sys:       sys,
		materials: make(map[string]*Material),
		textures:  make(map[string]*Texture),
		gradients: make(map[string]*Texture),
		clips:     make(map[uint64]*ClipVolume),
	}
}

// GetMaterial returns the cached material for params.Key, creating and
// caching it on miss. With an empty key it returns a fresh uncached
// material owned by the caller.
func (c *ModelCache) GetMaterial(params MaterialParams) *Material {
	if params.Key == "" {
		return NewMaterial(params)
	}
	if m, ok := c.materials[params.Key]; ok {
		c.hits.Add(1)
		return m
	}
	c.misses.Add(1)
	m := NewMaterial(params)
	c.materials[params.Key] = m
	return m
}

// GetTexture returns the cached texture for params.Key, creating it from
// img on miss. With an empty key it returns a fresh uncached texture.
// Returns nil when creation fails; callers omit the visual effect.
func (c *ModelCache) GetTexture(img image.Image, params TextureParams) *Texture {
	return c.findOrCreateTexture(params.Key, func() (*Texture, error) {
		return c.sys.TextureFromImage(img, params)
	})
}

// GetTextureFromImageBuffer is GetTexture for raw image buffers.
func (c *ModelCache) GetTextureFromImageBuffer(buf ImageBuffer, params TextureParams) *Texture {
	return c.findOrCreateTexture(params.Key, func() (*Texture, error) {
		return c.sys.TextureFromImageBuffer(buf, params)
	})
}

// GetTextureFromCubeImages always constructs a fresh, uncached cube map;
// cube textures are typically one-off environment maps.
func (c *ModelCache) GetTextureFromCubeImages(faces [6]image.Image) *Texture {
	tex, err := c.sys.TextureFromCubeImages(faces)
	if err != nil {
		Logger().Warn("cube texture creation failed", "error", err)
		return nil
	}
	return tex
}

// GetGradient returns the texture for a gradient symbol, keyed by the
// symbol's structural value: two field-equal symbols share one texture.
// On miss the symbol is rasterized into a fixed-size image first.
func (c *ModelCache) GetGradient(symb *gradient.Symbol) *Texture {
	key := symb.Key()
	if tex, ok := c.gradients[key]; ok {
		c.hits.Add(1)
		return tex
	}
	c.misses.Add(1)
	img := symb.Rasterize()
	tex, err := c.sys.TextureFromImage(img, TextureParams{Interpolate: true})
	if err != nil {
		Logger().Warn("gradient texture creation failed", "error", err)
		return nil
	}
	c.gradients[key] = tex
	return tex
}

// GetClipVolume returns the clip volume for the vector's structural value,
// building one on miss. Returns nil when the vector cannot be represented;
// callers render unclipped.
func (c *ModelCache) GetClipVolume(vec *geom.ClipVector) *ClipVolume {
	if !vec.IsValid() {
		return nil
	}
	key := vec.Key()
	if vol, ok := c.clips[key]; ok {
		c.hits.Add(1)
		return vol
	}
	c.misses.Add(1)
	vol := c.sys.newClipVolume(vec)
	if vol == nil {
		return nil
	}
	c.clips[key] = vol
	return vol
}

// findOrCreateTexture applies the find-or-create discipline for keyed
// textures. Failed creations are not cached, so a later request retries.
func (c *ModelCache) findOrCreateTexture(key string, create func() (*Texture, error)) *Texture {
	if key == "" {
		tex, err := create()
		if err != nil {
			Logger().Warn("texture creation failed", "error", err)
			return nil
		}
		return tex
	}
	if tex, ok := c.textures[key]; ok {
		c.hits.Add(1)
		return tex
	}
	c.misses.Add(1)
	tex, err := create()
	if err != nil {
		Logger().Warn("texture creation failed", "key", key, "error", err)
		return nil
	}
	c.textures[key] = tex
	return tex
}

// Stats returns find-or-create counters for the cache.
func (c *ModelCache) Stats() CacheStats {
	return CacheStats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}

// Dispose releases every owned GPU resource across all four maps and
// clears them. Idempotent; tolerant of already-released resources.
func (c *ModelCache) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true

	// Fixed teardown order: volumes may reference mask textures tracked
	// independently, textures own GPU memory, materials are CPU-side.
	for key, vol := range c.clips {
		vol.Dispose()
		delete(c.clips, key)
	}
	for key, tex := range c.gradients {
		tex.Dispose()
		delete(c.gradients, key)
	}
	for key, tex := range c.textures {
		tex.Dispose()
		delete(c.textures, key)
	}
	for key := range c.materials {
		delete(c.materials, key)
	}
}
