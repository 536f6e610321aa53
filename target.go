package glview

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glview/glctx"
)

// ErrTargetIncomplete is returned when an offscreen target's framebuffer
// does not reach completeness.
var ErrTargetIncomplete = errors.New("glview: offscreen target framebuffer incomplete")

// Target is a drawing surface. Two concrete implementations exist: the
// canvas-bound OnScreenTarget and the render-to-texture OffScreenTarget.
type Target interface {
	// Bind makes the target's framebuffer current.
	Bind()
	// Width returns the surface width in pixels.
	Width() int
	// Height returns the surface height in pixels.
	Height() int
	// Dispose releases the target's GPU resources.
	Dispose()
}

// OnScreenTarget draws into the context's default framebuffer.
type OnScreenTarget struct {
	sys           *System
	width, height int
}

// CreateTarget constructs an on-screen target for the context's default
// framebuffer at the given canvas size.
func (s *System) CreateTarget(width, height int) *OnScreenTarget {
	return &OnScreenTarget{sys: s, width: width, height: height}
}

// Bind makes the default framebuffer current.
func (t *OnScreenTarget) Bind() {
	t.sys.ctx.BindFramebuffer(glctx.Framebuffer, 0)
}

// Width returns the surface width in pixels.
func (t *OnScreenTarget) Width() int { return t.width }

// Height returns the surface height in pixels.
func (t *OnScreenTarget) Height() int { return t.height }

// Dispose is a no-op: the default framebuffer belongs to the context.
func (t *OnScreenTarget) Dispose() {}

// OffScreenTarget draws into a texture with a depth attachment chosen
// from the capability snapshot.
type OffScreenTarget struct {
	sys           *System
	fbo           glctx.FramebufferHandle
	color         *Texture
	depth         *DepthBuffer
	width, height int
	disposed      bool
}

// CreateOffscreenTarget constructs a render-to-texture target. The color
// attachment is an uncached RGBA texture owned by the target.
func (s *System) CreateOffscreenTarget(width, height int) (*OffScreenTarget, error) {
	color, err := s.newTexture2D(width, height, glctx.RGBA, nil,
		gputypes.TextureFormatRGBA8Unorm, TextureParams{})
	if err != nil {
		return nil, err
	}

	depth, err := s.CreateDepthBuffer(width, height)
	if err != nil {
		color.Dispose()
		return nil, err
	}

	fbo, err := s.ctx.CreateFramebuffer()
	if err != nil || !fbo.Valid() {
		depth.Dispose()
		color.Dispose()
		return nil, fmt.Errorf("glview: framebuffer allocation failed: %v", err)
	}

	s.ctx.BindFramebuffer(glctx.Framebuffer, fbo)
	s.ctx.FramebufferTexture2D(glctx.Framebuffer, glctx.ColorAttachment0,
		glctx.Texture2D, color.Handle(), 0)
	depth.attach()
	status := s.ctx.CheckFramebufferStatus(glctx.Framebuffer)
	s.ctx.BindFramebuffer(glctx.Framebuffer, 0)

	if status != glctx.FramebufferComplete {
		s.ctx.DeleteFramebuffer(fbo)
		depth.Dispose()
		color.Dispose()
		return nil, fmt.Errorf("%w: status 0x%x", ErrTargetIncomplete, uint32(status))
	}

	return &OffScreenTarget{
		sys:    s,
		fbo:    fbo,
		color:  color,
		depth:  depth,
		width:  width,
		height: height,
	}, nil
}

// Bind makes the target's framebuffer current.
func (t *OffScreenTarget) Bind() {
	t.sys.ctx.BindFramebuffer(glctx.Framebuffer, t.fbo)
}

// Width returns the surface width in pixels.
func (t *OffScreenTarget) Width() int { return t.width }

// Height returns the surface height in pixels.
func (t *OffScreenTarget) Height() int { return t.height }

// ColorTexture returns the texture the target renders into.
func (t *OffScreenTarget) ColorTexture() *Texture { return t.color }

// Dispose releases the framebuffer, color texture, and depth buffer.
// Safe to call repeatedly.
func (t *OffScreenTarget) Dispose() {
	if t == nil || t.disposed {
		return
	}
	t.disposed = true
	t.sys.ctx.DeleteFramebuffer(t.fbo)
	t.fbo = 0
	t.depth.Dispose()
	t.color.Dispose()
}

var (
	_ Target = (*OnScreenTarget)(nil)
	_ Target = (*OffScreenTarget)(nil)
)
