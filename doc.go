// Package glview manages GPU resource lifecycles for model viewers that
// render through a WebGL-like graphics context.
//
// # Overview
//
// glview sits between a scene graph and the GPU driver. It probes the
// context's capabilities once at startup, hands out deduplicated GPU-backed
// resources (materials, textures, gradient textures, clip volumes) cached
// per open model connection, and funnels GPU state changes through a
// diffing layer that skips redundant driver calls.
//
// # Quick Start
//
//	import "github.com/gogpu/glview"
//
//	sys, err := glview.NewSystem(ctx, nil)
//	if err != nil {
//	    // this environment cannot display 3D content
//	}
//	defer sys.Dispose()
//
//	tex := sys.CreateTexture(modelID, img, glview.TextureParams{Key: "thumb"})
//	sys.BindTexture2D(0, tex.Handle())
//
// # Architecture
//
// The library is organized into:
//   - Root: System facade, Capabilities, per-model ModelCache, GPU state
//     tracking, render targets, texture memory diagnostics
//   - glctx: the WebGL-like context surface supplied by the host
//   - gradient: symbolic gradients rasterized into texture images
//   - geom: clip shapes, polygon clipping, triangulation
//   - sheet: sheet-tile tessellation into drawable meshes
//
// # Resource Lifetime
//
// Resources requested with a cache key are owned by the model connection's
// cache and live until the connection closes; repeated requests with an
// equal key return the identical instance. Unkeyed requests return fresh
// resources owned by the caller.
//
// # Failure Model
//
// System construction fails hard when the context misses required features.
// Individual resource creation degrades to a nil resource (logged at Warn):
// the viewer omits the visual effect rather than aborting the frame.
//
// # Concurrency
//
// All GPU-facing calls are expected on a single rendering goroutine.
// Cache statistics use atomic counters and may be read from anywhere.
package glview
