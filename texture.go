package glview

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"github.com/gogpu/gputypes"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/glview/glctx"
)

// ErrTextureAllocation is returned when the driver cannot allocate a
// texture object.
var ErrTextureAllocation = errors.New("glview: texture allocation failed")

// TextureParams controls texture creation. An empty Key produces an
// uncached texture owned by the caller.
type TextureParams struct {
	// Key identifies the texture within its model's cache.
	Key string

	// WrapRepeat selects repeat wrapping instead of clamp-to-edge.
	// Honored only for power-of-two dimensions; WebGL1 cannot repeat
	// NPOT textures.
	WrapRepeat bool

	// Interpolate selects linear filtering and, for power-of-two
	// dimensions, mipmapping. Off means nearest filtering.
	Interpolate bool
}

// ImageBufferFormat describes the pixel layout of a raw image buffer.
type ImageBufferFormat uint8

const (
	// BufferRGBA is 4 bytes per pixel, red first.
	BufferRGBA ImageBufferFormat = iota
	// BufferRGB is 3 bytes per pixel, red first.
	BufferRGB
	// BufferAlpha is 1 byte per pixel.
	BufferAlpha
)

// bytesPerPixel returns the pixel stride of the format.
func (f ImageBufferFormat) bytesPerPixel() int {
	switch f {
	case BufferRGBA:
		return 4
	case BufferRGB:
		return 3
	case BufferAlpha:
		return 1
	}
	return 0
}

// ImageBuffer is a raw decoded image: tightly packed rows, top row first.
type ImageBuffer struct {
	Format ImageBufferFormat
	Width  int
	Height int
	Data   []byte
}

// Valid reports whether dimensions and data length agree.
func (b ImageBuffer) Valid() bool {
	bpp := b.Format.bytesPerPixel()
	return bpp > 0 && b.Width > 0 && b.Height > 0 &&
		len(b.Data) == b.Width*b.Height*bpp
}

// Texture is a GPU-backed texture. Cached textures are owned by their
// model's cache; uncached ones by the caller.
type Texture struct {
	sys      *System
	handle   glctx.TextureHandle
	width    int
	height   int
	format   gputypes.TextureFormat
	cube     bool
	bytes    int64
	disposed bool
}

// Handle returns the underlying context handle.
func (t *Texture) Handle() glctx.TextureHandle { return t.handle }

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return t.height }

// Format returns the portable pixel format of the texture.
func (t *Texture) Format() gputypes.TextureFormat { return t.format }

// IsCubeMap reports whether the texture is a cube map.
func (t *Texture) IsCubeMap() bool { return t.cube }

// Bytes returns the GPU memory attributed to the texture.
func (t *Texture) Bytes() int64 { return t.bytes }

// Dispose releases the GPU texture. Safe to call more than once.
func (t *Texture) Dispose() {
	if t == nil || t.disposed {
		return
	}
	t.disposed = true
	t.sys.memory.untrack(t.handle, t.bytes)
	t.sys.forgetTexture(t.handle)
	t.sys.ctx.DeleteTexture(t.handle)
	t.handle = 0
}

// isPowerOfTwo reports whether n is a positive power of two.
func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// TextureFromImage creates a 2D texture from a decoded image. Images
// wider or taller than the context's maximum texture size are downscaled
// to fit before upload. Returns ErrTextureAllocation when the driver
// cannot allocate.
func (s *System) TextureFromImage(img image.Image, params TextureParams) (*Texture, error) {
	rgba := toRGBA(img)
	if max := s.caps.MaxTextureSize; rgba.Bounds().Dx() > max || rgba.Bounds().Dy() > max {
		rgba = downscale(rgba, max)
	}
	b := rgba.Bounds()
	return s.newTexture2D(b.Dx(), b.Dy(), glctx.RGBA, rgba.Pix,
		gputypes.TextureFormatRGBA8Unorm, params)
}

// TextureFromImageBuffer creates a 2D texture from a raw image buffer.
func (s *System) TextureFromImageBuffer(buf ImageBuffer, params TextureParams) (*Texture, error) {
	if !buf.Valid() {
		return nil, fmt.Errorf("glview: invalid image buffer %dx%d format %d len %d",
			buf.Width, buf.Height, buf.Format, len(buf.Data))
	}
	var glFormat glctx.Enum
	var portable gputypes.TextureFormat
	switch buf.Format {
	case BufferRGBA:
		glFormat, portable = glctx.RGBA, gputypes.TextureFormatRGBA8Unorm
	case BufferRGB:
		glFormat, portable = glctx.RGB, gputypes.TextureFormatRGBA8Unorm
	case BufferAlpha:
		glFormat, portable = glctx.Alpha, gputypes.TextureFormatR8Unorm
	}
	return s.newTexture2D(buf.Width, buf.Height, glFormat, buf.Data, portable, params)
}

// TextureFromCubeImages creates a cube-map texture from six face images
// ordered +X, -X, +Y, -Y, +Z, -Z. Cube maps are never cached: they are
// typically one-off environment maps, so the caller owns the result.
func (s *System) TextureFromCubeImages(faces [6]image.Image) (*Texture, error) {
	handle, err := s.ctx.CreateTexture()
	if err != nil || !handle.Valid() {
		return nil, fmt.Errorf("%w: cube map: %v", ErrTextureAllocation, err)
	}

	tex := &Texture{sys: s, handle: handle, cube: true}
	s.BindTextureCubeMap(0, handle)
	for i, face := range faces {
		rgba := toRGBA(face)
		b := rgba.Bounds()
		target := glctx.TextureCubeMapPosX + glctx.Enum(i)
		s.ctx.TexImage2D(target, 0, glctx.RGBA, b.Dx(), b.Dy(),
			glctx.RGBA, glctx.UnsignedByte, rgba.Pix)
		tex.width, tex.height = b.Dx(), b.Dy()
		tex.bytes += int64(b.Dx()) * int64(b.Dy()) * 4
	}
	s.ctx.TexParameteri(glctx.TextureCubeMap, glctx.TextureMinFilter, int(glctx.Linear))
	s.ctx.TexParameteri(glctx.TextureCubeMap, glctx.TextureMagFilter, int(glctx.Linear))
	s.ctx.TexParameteri(glctx.TextureCubeMap, glctx.TextureWrapS, int(glctx.ClampToEdge))
	s.ctx.TexParameteri(glctx.TextureCubeMap, glctx.TextureWrapT, int(glctx.ClampToEdge))
	tex.format = gputypes.TextureFormatRGBA8Unorm
	s.memory.track(handle, tex.bytes)
	return tex, nil
}

// newTexture2D uploads pixel data into a fresh 2D texture and applies
// sampling parameters derived from params and the texture's dimensions.
func (s *System) newTexture2D(width, height int, glFormat glctx.Enum, data []byte,
	portable gputypes.TextureFormat, params TextureParams) (*Texture, error) {

	handle, err := s.ctx.CreateTexture()
	if err != nil || !handle.Valid() {
		return nil, fmt.Errorf("%w: %dx%d: %v", ErrTextureAllocation, width, height, err)
	}

	s.BindTexture2D(0, handle)
	s.ctx.TexImage2D(glctx.Texture2D, 0, glFormat, width, height,
		glFormat, glctx.UnsignedByte, data)

	pow2 := isPowerOfTwo(width) && isPowerOfTwo(height)
	wrap := glctx.ClampToEdge
	if params.WrapRepeat && pow2 {
		wrap = glctx.Repeat
	}
	s.ctx.TexParameteri(glctx.Texture2D, glctx.TextureWrapS, int(wrap))
	s.ctx.TexParameteri(glctx.Texture2D, glctx.TextureWrapT, int(wrap))

	mag, min := glctx.Nearest, glctx.Nearest
	if params.Interpolate {
		mag, min = glctx.Linear, glctx.Linear
		if pow2 {
			min = glctx.LinearMipmapLin
		}
	}
	s.ctx.TexParameteri(glctx.Texture2D, glctx.TextureMagFilter, int(mag))
	s.ctx.TexParameteri(glctx.Texture2D, glctx.TextureMinFilter, int(min))
	if min == glctx.LinearMipmapLin {
		s.ctx.GenerateMipmap(glctx.Texture2D)
	}

	bytes := int64(width) * int64(height) * int64(glPixelBytes(glFormat))
	if min == glctx.LinearMipmapLin {
		bytes += bytes / 3 // mip chain overhead
	}
	s.memory.track(handle, bytes)

	return &Texture{
		sys:    s,
		handle: handle,
		width:  width,
		height: height,
		format: portable,
		bytes:  bytes,
	}, nil
}

// glPixelBytes returns the upload stride of a GL pixel format.
func glPixelBytes(format glctx.Enum) int {
	switch format {
	case glctx.RGBA:
		return 4
	case glctx.RGB:
		return 3
	case glctx.Alpha, glctx.Luminance:
		return 1
	}
	return 4
}

// toRGBA converts any image to tightly packed RGBA.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == 4*rgba.Bounds().Dx() {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// downscale shrinks an image so both dimensions fit within max, preserving
// aspect ratio.
func downscale(img *image.RGBA, max int) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	scale := float64(max) / float64(w)
	if sh := float64(max) / float64(h); sh < scale {
		scale = sh
	}
	nw, nh := int(float64(w)*scale), int(float64(h)*scale)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	Logger().Debug("texture downscaled", "from", fmt.Sprintf("%dx%d", w, h),
		"to", fmt.Sprintf("%dx%d", nw, nh))
	return dst
}
