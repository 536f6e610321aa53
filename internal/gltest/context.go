// Package gltest provides a fake, recording implementation of
// glctx.Context for tests: configurable limits and extensions, scriptable
// renderability, and counters for every driver call the library is
// supposed to elide.
package gltest

import (
	"errors"

	"github.com/gogpu/glview/glctx"
)

// DivisorCall records one VertexAttribDivisor invocation.
type DivisorCall struct {
	Slot    uint32
	Divisor uint32
}

// Context is a fake WebGL-like context. The zero value is not usable;
// call New.
type Context struct {
	// Limits maps GetInteger parameter names to reported values.
	Limits map[glctx.Enum]int

	// Extensions is the advertised extension list.
	Extensions []string

	// FailEnable lists advertised extensions whose enable call fails.
	FailEnable map[string]bool

	// FloatRenderable and HalfFloatRenderable script the completeness
	// result for framebuffers whose color texture was uploaded with the
	// matching component type.
	FloatRenderable     bool
	HalfFloatRenderable bool

	// FailCreateTexture makes CreateTexture return an error.
	FailCreateTexture bool

	// Recorded traffic.
	EnabledAttribs  []uint32
	DisabledAttribs []uint32
	Divisors        []DivisorCall
	BindTextureCnt  int
	ActiveTexCnt    int
	TexImageCnt     int
	MipmapCnt       int
	CreatedTextures int
	DeletedTextures int

	nextTexture      uint32
	nextFramebuffer  uint32
	nextRenderbuffer uint32
	lastTexImageType glctx.Enum
	liveTextures     map[glctx.TextureHandle]bool
}

// New returns a fake context whose defaults pass the capability gates:
// plausible desktop limits and the commonly available WebGL1 extensions.
func New() *Context {
	return &Context{
		Limits: map[glctx.Enum]int{
			glctx.MaxTextureSize:          4096,
			glctx.MaxColorAttachments:     8,
			glctx.MaxDrawBuffers:          8,
			glctx.MaxTextureImageUnits:    16,
			glctx.MaxVertexTextureUnits:   16,
			glctx.MaxVertexAttribs:        16,
			glctx.MaxVertexUniformVectors: 254,
			glctx.MaxVaryingVectors:       8,
			glctx.MaxFragUniformVectors:   221,
		},
		Extensions: []string{
			"OES_element_index_uint",
			"OES_texture_half_float",
			"WEBGL_depth_texture",
			"ANGLE_instanced_arrays",
			"OES_standard_derivatives",
		},
		HalfFloatRenderable: true,
		liveTextures:        make(map[glctx.TextureHandle]bool),
	}
}

// LiveTextureCount returns the number of created-but-not-deleted textures.
func (c *Context) LiveTextureCount() int { return len(c.liveTextures) }

func (c *Context) GetInteger(pname glctx.Enum) int {
	return c.Limits[pname]
}

func (c *Context) SupportedExtensions() []string {
	return c.Extensions
}

func (c *Context) EnableExtension(name string) bool {
	return !c.FailEnable[name]
}

func (c *Context) CreateTexture() (glctx.TextureHandle, error) {
	if c.FailCreateTexture {
		return 0, errors.New("gltest: texture allocation refused")
	}
	c.nextTexture++
	c.CreatedTextures++
	h := glctx.TextureHandle(c.nextTexture)
	c.liveTextures[h] = true
	return h, nil
}

func (c *Context) DeleteTexture(h glctx.TextureHandle) {
	c.DeletedTextures++
	delete(c.liveTextures, h)
}

func (c *Context) ActiveTexture(unit glctx.Enum) {
	c.ActiveTexCnt++
}

func (c *Context) BindTexture(target glctx.Enum, h glctx.TextureHandle) {
	c.BindTextureCnt++
}

func (c *Context) TexImage2D(target glctx.Enum, level int, internalFormat glctx.Enum, width, height int, format, typ glctx.Enum, data []byte) {
	c.TexImageCnt++
	c.lastTexImageType = typ
}

func (c *Context) TexParameteri(target, pname glctx.Enum, value int) {}

func (c *Context) GenerateMipmap(target glctx.Enum) {
	c.MipmapCnt++
}

func (c *Context) CreateFramebuffer() (glctx.FramebufferHandle, error) {
	c.nextFramebuffer++
	return glctx.FramebufferHandle(c.nextFramebuffer), nil
}

func (c *Context) DeleteFramebuffer(h glctx.FramebufferHandle) {}

func (c *Context) BindFramebuffer(target glctx.Enum, h glctx.FramebufferHandle) {}

func (c *Context) FramebufferTexture2D(target, attachment, texTarget glctx.Enum, h glctx.TextureHandle, level int) {
}

func (c *Context) FramebufferRenderbuffer(target, attachment, rbTarget glctx.Enum, h glctx.RenderbufferHandle) {
}

func (c *Context) CheckFramebufferStatus(target glctx.Enum) glctx.Enum {
	switch c.lastTexImageType {
	case glctx.Float:
		if !c.FloatRenderable {
			return 0
		}
	case glctx.HalfFloatOES:
		if !c.HalfFloatRenderable {
			return 0
		}
	}
	return glctx.FramebufferComplete
}

func (c *Context) CreateRenderbuffer() (glctx.RenderbufferHandle, error) {
	c.nextRenderbuffer++
	return glctx.RenderbufferHandle(c.nextRenderbuffer), nil
}

func (c *Context) DeleteRenderbuffer(h glctx.RenderbufferHandle) {}

func (c *Context) BindRenderbuffer(target glctx.Enum, h glctx.RenderbufferHandle) {}

func (c *Context) RenderbufferStorage(target, internalFormat glctx.Enum, width, height int) {}

func (c *Context) EnableVertexAttribArray(slot uint32) {
	c.EnabledAttribs = append(c.EnabledAttribs, slot)
}

func (c *Context) DisableVertexAttribArray(slot uint32) {
	c.DisabledAttribs = append(c.DisabledAttribs, slot)
}

func (c *Context) VertexAttribDivisor(slot, divisor uint32) {
	c.Divisors = append(c.Divisors, DivisorCall{Slot: slot, Divisor: divisor})
}

var _ glctx.Context = (*Context)(nil)
