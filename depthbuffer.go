package glview

import (
	"errors"
	"fmt"

	"github.com/gogpu/glview/glctx"
)

// ErrDepthAllocation is returned when the driver cannot allocate a depth
// buffer.
var ErrDepthAllocation = errors.New("glview: depth buffer allocation failed")

// DepthBuffer is a depth attachment in the representation selected by the
// capability probe: a plain renderbuffer or a depth texture.
type DepthBuffer struct {
	sys          *System
	kind         DepthType
	texture      glctx.TextureHandle
	renderbuffer glctx.RenderbufferHandle
	width        int
	height       int
	disposed     bool
}

// Kind returns the depth representation in use.
func (d *DepthBuffer) Kind() DepthType { return d.kind }

// IsTexture reports whether the depth buffer can be sampled.
func (d *DepthBuffer) IsTexture() bool { return d.kind != DepthTypeRenderBuffer16 }

// CreateDepthBuffer allocates a depth buffer of the capability-selected
// type. The switch must stay in sync with the DepthType table; a value it
// does not handle is an invariant violation, not a driver condition.
func (s *System) CreateDepthBuffer(width, height int) (*DepthBuffer, error) {
	d := &DepthBuffer{sys: s, kind: s.caps.MaxDepthType, width: width, height: height}

	switch s.caps.MaxDepthType {
	case DepthTypeRenderBuffer16:
		rb, err := s.ctx.CreateRenderbuffer()
		if err != nil || !rb.Valid() {
			return nil, fmt.Errorf("%w: renderbuffer: %v", ErrDepthAllocation, err)
		}
		s.ctx.BindRenderbuffer(glctx.Renderbuffer, rb)
		s.ctx.RenderbufferStorage(glctx.Renderbuffer, glctx.DepthComponent16, width, height)
		s.ctx.BindRenderbuffer(glctx.Renderbuffer, 0)
		d.renderbuffer = rb

	case DepthTypeTexture24Stencil8:
		tex, err := s.createDepthTexture(width, height, glctx.DepthStencil, glctx.UnsignedInt248)
		if err != nil {
			return nil, err
		}
		d.texture = tex

	case DepthTypeTexture32:
		tex, err := s.createDepthTexture(width, height, glctx.DepthComponent, glctx.Float)
		if err != nil {
			return nil, err
		}
		d.texture = tex

	default:
		assert(false, "depth type not covered by depth buffer creation")
		return nil, fmt.Errorf("%w: unknown depth type %d", ErrDepthAllocation, s.caps.MaxDepthType)
	}

	return d, nil
}

func (s *System) createDepthTexture(width, height int, format, typ glctx.Enum) (glctx.TextureHandle, error) {
	tex, err := s.ctx.CreateTexture()
	if err != nil || !tex.Valid() {
		return 0, fmt.Errorf("%w: texture: %v", ErrDepthAllocation, err)
	}
	s.BindTexture2D(0, tex)
	s.ctx.TexImage2D(glctx.Texture2D, 0, format, width, height, format, typ, nil)
	s.ctx.TexParameteri(glctx.Texture2D, glctx.TextureMinFilter, int(glctx.Nearest))
	s.ctx.TexParameteri(glctx.Texture2D, glctx.TextureMagFilter, int(glctx.Nearest))
	s.ctx.TexParameteri(glctx.Texture2D, glctx.TextureWrapS, int(glctx.ClampToEdge))
	s.ctx.TexParameteri(glctx.Texture2D, glctx.TextureWrapT, int(glctx.ClampToEdge))
	return tex, nil
}

// attach wires the depth buffer into the currently bound framebuffer.
func (d *DepthBuffer) attach() {
	switch d.kind {
	case DepthTypeRenderBuffer16:
		d.sys.ctx.FramebufferRenderbuffer(glctx.Framebuffer, glctx.DepthAttachment,
			glctx.Renderbuffer, d.renderbuffer)
	case DepthTypeTexture24Stencil8:
		d.sys.ctx.FramebufferTexture2D(glctx.Framebuffer, glctx.DepthStencilAttachment,
			glctx.Texture2D, d.texture, 0)
	case DepthTypeTexture32:
		d.sys.ctx.FramebufferTexture2D(glctx.Framebuffer, glctx.DepthAttachment,
			glctx.Texture2D, d.texture, 0)
	default:
		assert(false, "depth type not covered by attachment")
	}
}

// Dispose releases the depth buffer. Safe to call repeatedly.
func (d *DepthBuffer) Dispose() {
	if d == nil || d.disposed {
		return
	}
	d.disposed = true
	if d.renderbuffer.Valid() {
		d.sys.ctx.DeleteRenderbuffer(d.renderbuffer)
		d.renderbuffer = 0
	}
	if d.texture.Valid() {
		d.sys.forgetTexture(d.texture)
		d.sys.ctx.DeleteTexture(d.texture)
		d.texture = 0
	}
}
