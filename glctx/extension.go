package glctx

// Extension identifies an optional context feature glview knows how to use.
// The set is fixed at compile time so capability checks stay exhaustive;
// unknown advertised extensions are ignored.
type Extension uint32

const (
	// ExtElementIndexUint enables 32-bit element indices (OES_element_index_uint).
	ExtElementIndexUint Extension = 1 << iota

	// ExtTextureFloat enables float texture sampling (OES_texture_float).
	ExtTextureFloat

	// ExtTextureHalfFloat enables half-float texture sampling (OES_texture_half_float).
	ExtTextureHalfFloat

	// ExtColorBufferFloat enables rendering to float color buffers (EXT_color_buffer_float).
	ExtColorBufferFloat

	// ExtColorBufferHalfFloat enables rendering to half-float color buffers
	// (EXT_color_buffer_half_float).
	ExtColorBufferHalfFloat

	// ExtDepthTexture enables sampling depth textures (WEBGL_depth_texture).
	ExtDepthTexture

	// ExtInstancedArrays enables instanced drawing and attribute divisors
	// (ANGLE_instanced_arrays).
	ExtInstancedArrays

	// ExtDrawBuffers enables multiple draw buffers (WEBGL_draw_buffers).
	ExtDrawBuffers

	// ExtStandardDerivatives enables dFdx/dFdy in fragment shaders
	// (OES_standard_derivatives).
	ExtStandardDerivatives

	// ExtFragDepth enables gl_FragDepthEXT writes (EXT_frag_depth).
	ExtFragDepth

	// ExtShaderTextureLOD enables explicit-LOD texture sampling
	// (EXT_shader_texture_lod).
	ExtShaderTextureLOD

	// ExtTextureFilterAnisotropic enables anisotropic filtering
	// (EXT_texture_filter_anisotropic).
	ExtTextureFilterAnisotropic
)

// extensionNames maps each known extension to the name it is advertised
// under. Order matters only for deterministic probing.
var extensionNames = []struct {
	ext  Extension
	name string
}{
	{ExtElementIndexUint, "OES_element_index_uint"},
	{ExtTextureFloat, "OES_texture_float"},
	{ExtTextureHalfFloat, "OES_texture_half_float"},
	{ExtColorBufferFloat, "EXT_color_buffer_float"},
	{ExtColorBufferHalfFloat, "EXT_color_buffer_half_float"},
	{ExtDepthTexture, "WEBGL_depth_texture"},
	{ExtInstancedArrays, "ANGLE_instanced_arrays"},
	{ExtDrawBuffers, "WEBGL_draw_buffers"},
	{ExtStandardDerivatives, "OES_standard_derivatives"},
	{ExtFragDepth, "EXT_frag_depth"},
	{ExtShaderTextureLOD, "EXT_shader_texture_lod"},
	{ExtTextureFilterAnisotropic, "EXT_texture_filter_anisotropic"},
}

// Name returns the advertised extension name, or "" for unknown values.
func (e Extension) Name() string {
	for _, en := range extensionNames {
		if en.ext == e {
			return en.name
		}
	}
	return ""
}

// ExtensionSet is the set of extensions successfully enabled on a context.
type ExtensionSet uint32

// Has reports whether every extension in ext is present in the set.
func (s ExtensionSet) Has(ext Extension) bool {
	return s&ExtensionSet(ext) == ExtensionSet(ext)
}

// ParseExtensions enables every known extension the context advertises and
// returns the set of those that actually enabled. Advertised extensions
// that fail to enable are silently treated as absent; some environments
// report support they cannot deliver.
func ParseExtensions(ctx Context) ExtensionSet {
	advertised := make(map[string]bool)
	for _, name := range ctx.SupportedExtensions() {
		advertised[name] = true
	}

	var set ExtensionSet
	for _, en := range extensionNames {
		if advertised[en.name] && ctx.EnableExtension(en.name) {
			set |= ExtensionSet(en.ext)
		}
	}
	return set
}
