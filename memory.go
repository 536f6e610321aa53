package glview

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/glview/glctx"
)

// MemoryStats reports texture memory attributed to the System.
type MemoryStats struct {
	// Current is the bytes attributed to live textures.
	Current int64
	// Peak is the high-water mark since construction.
	Peak int64
	// Textures is the number of live tracked textures.
	Textures int
}

// textureTracker records per-texture GPU memory for diagnostics. Disabled
// trackers keep the aggregate counters only, skipping the per-handle map.
type textureTracker struct {
	detailed bool

	cur  atomic.Int64
	peak atomic.Int64

	mu    sync.Mutex
	sizes map[glctx.TextureHandle]int64
}

func newTextureTracker(detailed bool) *textureTracker {
	t := &textureTracker{detailed: detailed}
	if detailed {
		t.sizes = make(map[glctx.TextureHandle]int64)
	}
	return t
}

func (t *textureTracker) track(h glctx.TextureHandle, bytes int64) {
	cur := t.cur.Add(bytes)
	for {
		peak := t.peak.Load()
		if cur <= peak || t.peak.CompareAndSwap(peak, cur) {
			break
		}
	}
	if !t.detailed {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	_, exists := t.sizes[h]
	assert(!exists, "texture handle tracked twice")
	t.sizes[h] = bytes
}

func (t *textureTracker) untrack(h glctx.TextureHandle, bytes int64) {
	t.cur.Add(-bytes)
	if !t.detailed {
		return
	}
	t.mu.Lock()
	_, exists := t.sizes[h]
	delete(t.sizes, h)
	t.mu.Unlock()

	assert(exists, "texture freed but never tracked, or freed twice")
}

func (t *textureTracker) stats() MemoryStats {
	s := MemoryStats{
		Current: t.cur.Load(),
		Peak:    t.peak.Load(),
	}
	if t.detailed {
		t.mu.Lock()
		s.Textures = len(t.sizes)
		t.mu.Unlock()
	}
	return s
}
