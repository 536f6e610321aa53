package glview

import (
	"fmt"

	"github.com/gogpu/glview/glctx"
)

// RenderType is the widest color-renderable texture component type the
// context supports, verified by an actual renderability probe rather than
// extension advertisement alone.
type RenderType uint8

const (
	// RenderTypeUnsignedByte is 8-bit normalized color rendering.
	RenderTypeUnsignedByte RenderType = iota
	// RenderTypeHalfFloat is 16-bit float color rendering.
	RenderTypeHalfFloat
	// RenderTypeFloat is 32-bit float color rendering.
	RenderTypeFloat
)

// DepthType is the best available depth-buffer representation.
type DepthType uint8

const (
	// DepthTypeRenderBuffer16 is a 16-bit depth renderbuffer.
	DepthTypeRenderBuffer16 DepthType = iota
	// DepthTypeTexture24Stencil8 is a combined 24-bit depth / 8-bit
	// stencil texture.
	DepthTypeTexture24Stencil8
	// DepthTypeTexture32 is a 32-bit depth texture.
	DepthTypeTexture32
)

// Minimum texture-unit counts the rendering pipeline assumes. Contexts
// that do not exceed them cannot run the shaders at all, so the probe
// fails rather than degrading.
const (
	minFragTextureUnits = 4
	minVertTextureUnits = 5
)

// Capabilities is an immutable snapshot of the context's limits and
// optional features, taken once when the System is constructed.
type Capabilities struct {
	MaxTextureSize        int
	MaxColorAttachments   int
	MaxDrawBuffers        int
	MaxFragTextureUnits   int
	MaxVertTextureUnits   int
	MaxVertAttribs        int
	MaxVertUniformVectors int
	MaxVaryingVectors     int
	MaxFragUniformVectors int
	MaxRenderType         RenderType
	MaxDepthType          DepthType
	Extensions            glctx.ExtensionSet
}

// SupportsInstancing reports whether instanced drawing is available.
func (c *Capabilities) SupportsInstancing() bool {
	return c.Extensions.Has(glctx.ExtInstancedArrays)
}

// SupportsMRT reports whether multiple render targets are available.
func (c *Capabilities) SupportsMRT() bool {
	return c.Extensions.Has(glctx.ExtDrawBuffers) && c.MaxDrawBuffers > 1
}

// ProbeCapabilities inspects the context once and derives conservative
// defaults. It returns an error when the context misses features the
// rendering pipeline requires; no partial Capabilities is usable.
func ProbeCapabilities(ctx glctx.Context) (*Capabilities, error) {
	caps := &Capabilities{
		MaxTextureSize:        ctx.GetInteger(glctx.MaxTextureSize),
		MaxColorAttachments:   ctx.GetInteger(glctx.MaxColorAttachments),
		MaxDrawBuffers:        ctx.GetInteger(glctx.MaxDrawBuffers),
		MaxFragTextureUnits:   ctx.GetInteger(glctx.MaxTextureImageUnits),
		MaxVertTextureUnits:   ctx.GetInteger(glctx.MaxVertexTextureUnits),
		MaxVertAttribs:        ctx.GetInteger(glctx.MaxVertexAttribs),
		MaxVertUniformVectors: ctx.GetInteger(glctx.MaxVertexUniformVectors),
		MaxVaryingVectors:     ctx.GetInteger(glctx.MaxVaryingVectors),
		MaxFragUniformVectors: ctx.GetInteger(glctx.MaxFragUniformVectors),
	}

	caps.Extensions = glctx.ParseExtensions(ctx)
	caps.MaxRenderType = probeRenderType(ctx, caps.Extensions)

	// Depth support is derived from extension presence alone, without a
	// renderability probe. Coarser than the color path on purpose.
	if caps.Extensions.Has(glctx.ExtDepthTexture) {
		caps.MaxDepthType = DepthTypeTexture24Stencil8
	} else {
		caps.MaxDepthType = DepthTypeRenderBuffer16
	}

	// Required minimums. These gate the whole pipeline; a context below
	// them cannot display 3D content at all.
	if !caps.Extensions.Has(glctx.ExtElementIndexUint) {
		return nil, fmt.Errorf("glview: context lacks 32-bit element index support")
	}
	if caps.MaxFragTextureUnits <= minFragTextureUnits {
		return nil, fmt.Errorf("glview: %d fragment texture units below required minimum", caps.MaxFragTextureUnits)
	}
	if caps.MaxVertTextureUnits <= minVertTextureUnits {
		return nil, fmt.Errorf("glview: %d vertex texture units below required minimum", caps.MaxVertTextureUnits)
	}

	Logger().Info("capabilities probed",
		"maxTextureSize", caps.MaxTextureSize,
		"renderType", caps.MaxRenderType,
		"depthType", caps.MaxDepthType,
		"instancing", caps.SupportsInstancing())
	return caps, nil
}

// probeRenderType determines the widest color-renderable type by building
// a 1x1 texture plus framebuffer and checking actual completeness.
// Extension advertisement alone is unreliable across drivers: some report
// float texture support without float renderability.
func probeRenderType(ctx glctx.Context, exts glctx.ExtensionSet) RenderType {
	if exts.Has(glctx.ExtTextureFloat) &&
		isRenderable(ctx, glctx.Float) {
		return RenderTypeFloat
	}
	if exts.Has(glctx.ExtTextureHalfFloat) &&
		isRenderable(ctx, glctx.HalfFloatOES) {
		return RenderTypeHalfFloat
	}
	return RenderTypeUnsignedByte
}

// isRenderable attaches a 1x1 RGBA texture of the given component type to
// a scratch framebuffer and checks completeness. Probe resources are torn
// down before returning; allocation failure counts as not renderable.
func isRenderable(ctx glctx.Context, componentType glctx.Enum) bool {
	tex, err := ctx.CreateTexture()
	if err != nil {
		return false
	}
	defer ctx.DeleteTexture(tex)

	fbo, err := ctx.CreateFramebuffer()
	if err != nil {
		return false
	}
	defer ctx.DeleteFramebuffer(fbo)

	ctx.BindTexture(glctx.Texture2D, tex)
	ctx.TexImage2D(glctx.Texture2D, 0, glctx.RGBA, 1, 1, glctx.RGBA, componentType, nil)
	ctx.BindFramebuffer(glctx.Framebuffer, fbo)
	defer ctx.BindFramebuffer(glctx.Framebuffer, 0)
	ctx.FramebufferTexture2D(glctx.Framebuffer, glctx.ColorAttachment0, glctx.Texture2D, tex, 0)

	status := ctx.CheckFramebufferStatus(glctx.Framebuffer)
	ctx.BindTexture(glctx.Texture2D, 0)
	return status == glctx.FramebufferComplete
}
