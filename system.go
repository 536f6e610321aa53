package glview

import (
	"fmt"
	"image"

	"github.com/gogpu/glview/geom"
	"github.com/gogpu/glview/glctx"
	"github.com/gogpu/glview/gradient"
)

// Options configures System construction. The zero value is a sensible
// default.
type Options struct {
	// TrackTextureMemory enables per-texture memory diagnostics,
	// including double-free detection. Aggregate counters are kept
	// either way.
	TrackTextureMemory bool
}

// System coordinates GPU resource management for one graphics context:
// the capability snapshot, the per-model resource caches, and the state
// tracking that skips redundant driver calls.
//
// A System is created explicitly by the application or window layer and
// passed to every graphic-construction call site; there is no process-wide
// instance. All methods that touch the context must run on the single
// rendering goroutine.
type System struct {
	ctx    glctx.Context
	caps   *Capabilities
	models map[ModelID]*ModelCache
	memory *textureTracker

	boundTextures [maxTextureUnits]glctx.TextureHandle
	attribCur     [maxVertexAttribs]attribState
	attribNext    [maxVertexAttribs]attribState

	disposed bool
}

// NewSystem probes the context and constructs a System. It fails outright
// when the context misses required features; there is no partially usable
// System. Applications surface that failure as "this environment cannot
// display 3D content".
func NewSystem(ctx glctx.Context, opts *Options) (*System, error) {
	if ctx == nil {
		return nil, fmt.Errorf("glview: nil graphics context")
	}
	caps, err := ProbeCapabilities(ctx)
	if err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &Options{}
	}
	return &System{
		ctx:    ctx,
		caps:   caps,
		models: make(map[ModelID]*ModelCache),
		memory: newTextureTracker(opts.TrackTextureMemory),
	}, nil
}

// Capabilities returns the immutable capability snapshot.
func (s *System) Capabilities() *Capabilities { return s.caps }

// Context returns the underlying graphics context.
func (s *System) Context() glctx.Context { return s.ctx }

// MemoryStats returns texture memory diagnostics.
func (s *System) MemoryStats() MemoryStats { return s.memory.stats() }

// ResourcesFor returns the resource cache for a model connection, creating
// an empty one on first request.
func (s *System) ResourcesFor(id ModelID) *ModelCache {
	if cache, ok := s.models[id]; ok {
		return cache
	}
	cache := newModelCache(s)
	s.models[id] = cache
	Logger().Debug("model cache created", "model", id)
	return cache
}

// ModelClosed releases and removes the model's resource cache. The
// connection layer calls this when the model closes; a later resource
// request for the same ID starts a brand-new cache. Unknown IDs are a
// no-op.
func (s *System) ModelClosed(id ModelID) {
	cache, ok := s.models[id]
	if !ok {
		return
	}
	delete(s.models, id)
	cache.Dispose()
	Logger().Debug("model cache disposed", "model", id)
}

// OpenModelCount returns the number of model caches currently tracked.
func (s *System) OpenModelCount() int { return len(s.models) }

// CreateMaterial returns the model's material for params, creating and
// caching it on miss. Unkeyed params yield a fresh uncached material.
func (s *System) CreateMaterial(id ModelID, params MaterialParams) *Material {
	return s.ResourcesFor(id).GetMaterial(params)
}

// CreateTexture returns the model's texture for params, creating it from
// img on miss. Returns nil on creation failure; the caller omits the
// visual effect.
func (s *System) CreateTexture(id ModelID, img image.Image, params TextureParams) *Texture {
	return s.ResourcesFor(id).GetTexture(img, params)
}

// CreateTextureFromImageBuffer is CreateTexture for raw image buffers.
func (s *System) CreateTextureFromImageBuffer(id ModelID, buf ImageBuffer, params TextureParams) *Texture {
	return s.ResourcesFor(id).GetTextureFromImageBuffer(buf, params)
}

// CreateTextureFromCubeImages constructs a fresh, uncached cube map owned
// by the caller.
func (s *System) CreateTextureFromCubeImages(id ModelID, faces [6]image.Image) *Texture {
	return s.ResourcesFor(id).GetTextureFromCubeImages(faces)
}

// CreateGradientTexture returns the model's texture for the gradient
// symbol, rasterizing and caching it on miss.
func (s *System) CreateGradientTexture(id ModelID, symb *gradient.Symbol) *Texture {
	return s.ResourcesFor(id).GetGradient(symb)
}

// GetClipVolume returns the model's clip volume for the vector, building
// it on miss. Returns nil when the region cannot be represented.
func (s *System) GetClipVolume(id ModelID, vec *geom.ClipVector) *ClipVolume {
	return s.ResourcesFor(id).GetClipVolume(vec)
}

// Dispose tears the System down: every model cache is released in a fixed
// order and the state tables are reset. Safe to call more than once;
// tolerant of partially-torn-down state.
func (s *System) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true

	for id, cache := range s.models {
		cache.Dispose()
		delete(s.models, id)
	}
	s.boundTextures = [maxTextureUnits]glctx.TextureHandle{}
	s.attribCur = [maxVertexAttribs]attribState{}
	s.attribNext = [maxVertexAttribs]attribState{}
}
