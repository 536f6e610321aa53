package glctx

// Enum is a GL enumerant value as defined by the WebGL specification.
type Enum uint32

// Opaque resource handles. The zero value is the null object.
type (
	// TextureHandle identifies a texture object owned by the context.
	TextureHandle uint32

	// FramebufferHandle identifies a framebuffer object owned by the context.
	FramebufferHandle uint32

	// RenderbufferHandle identifies a renderbuffer object owned by the context.
	RenderbufferHandle uint32
)

// Valid reports whether the handle refers to a live resource.
func (h TextureHandle) Valid() bool      { return h != 0 }
func (h FramebufferHandle) Valid() bool  { return h != 0 }
func (h RenderbufferHandle) Valid() bool { return h != 0 }

// GL enumerants used by glview. Values match the WebGL specification.
const (
	// Parameter names for GetInteger.
	MaxTextureSize          Enum = 0x0D33
	MaxColorAttachments     Enum = 0x8CDF
	MaxDrawBuffers          Enum = 0x8824
	MaxTextureImageUnits    Enum = 0x8872
	MaxVertexTextureUnits   Enum = 0x8B4C
	MaxVertexAttribs        Enum = 0x8869
	MaxVertexUniformVectors Enum = 0x8DFB
	MaxVaryingVectors       Enum = 0x8DFC
	MaxFragUniformVectors   Enum = 0x8DFD

	// Texture targets and units.
	Texture2D          Enum = 0x0DE1
	TextureCubeMap     Enum = 0x8513
	TextureCubeMapPosX Enum = 0x8515
	Texture0           Enum = 0x84C0

	// Texture parameters.
	TextureMagFilter Enum = 0x2800
	TextureMinFilter Enum = 0x2801
	TextureWrapS     Enum = 0x2802
	TextureWrapT     Enum = 0x2803
	Nearest          Enum = 0x2600
	Linear           Enum = 0x2601
	LinearMipmapLin  Enum = 0x2703
	ClampToEdge      Enum = 0x812F
	Repeat           Enum = 0x2901

	// Pixel formats and types.
	Alpha          Enum = 0x1906
	Luminance      Enum = 0x1909
	RGB            Enum = 0x1907
	RGBA           Enum = 0x1908
	DepthComponent Enum = 0x1902
	DepthStencil   Enum = 0x84F9
	UnsignedByte   Enum = 0x1401
	UnsignedInt    Enum = 0x1405
	Float          Enum = 0x1406
	HalfFloatOES   Enum = 0x8D61
	UnsignedInt248 Enum = 0x84FA

	// Renderbuffer formats.
	DepthComponent16 Enum = 0x81A5

	// Framebuffer attachment points and targets.
	Framebuffer            Enum = 0x8D40
	Renderbuffer           Enum = 0x8D41
	ColorAttachment0       Enum = 0x8CE0
	DepthAttachment        Enum = 0x8D00
	DepthStencilAttachment Enum = 0x821A

	// Framebuffer completeness.
	FramebufferComplete Enum = 0x8CD5
)

// Context is the WebGL-like surface glview issues GPU calls through.
//
// Implementations are expected to be used from a single rendering
// goroutine; glview performs no locking around context calls.
type Context interface {
	// GetInteger returns the value of an integer context parameter.
	GetInteger(pname Enum) int

	// SupportedExtensions returns the extension names the context
	// advertises, in the context's own order.
	SupportedExtensions() []string

	// EnableExtension activates an advertised extension and reports
	// whether activation succeeded. Some environments advertise
	// extensions they cannot actually enable.
	EnableExtension(name string) bool

	// CreateTexture allocates a texture object. A zero handle with a
	// non-nil error indicates driver allocation failure.
	CreateTexture() (TextureHandle, error)
	DeleteTexture(h TextureHandle)
	ActiveTexture(unit Enum)
	BindTexture(target Enum, h TextureHandle)
	TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, typ Enum, data []byte)
	TexParameteri(target, pname Enum, value int)
	GenerateMipmap(target Enum)

	// Framebuffers.
	CreateFramebuffer() (FramebufferHandle, error)
	DeleteFramebuffer(h FramebufferHandle)
	BindFramebuffer(target Enum, h FramebufferHandle)
	FramebufferTexture2D(target, attachment, texTarget Enum, h TextureHandle, level int)
	FramebufferRenderbuffer(target, attachment, rbTarget Enum, h RenderbufferHandle)
	CheckFramebufferStatus(target Enum) Enum

	// Renderbuffers.
	CreateRenderbuffer() (RenderbufferHandle, error)
	DeleteRenderbuffer(h RenderbufferHandle)
	BindRenderbuffer(target Enum, h RenderbufferHandle)
	RenderbufferStorage(target, internalFormat Enum, width, height int)

	// Vertex attribute arrays.
	EnableVertexAttribArray(slot uint32)
	DisableVertexAttribArray(slot uint32)
	VertexAttribDivisor(slot, divisor uint32)
}
