package glview

import "github.com/gogpu/glview/glctx"

// Fixed table sizes for GPU state tracking. WebGL guarantees far fewer
// attribute slots and texture units than these; slots beyond a context's
// actual limits are simply never used.
const (
	maxVertexAttribs = 16
	maxTextureUnits  = 32
)

// attribState is the per-slot vertex-attribute bookkeeping bitmask.
type attribState uint8

const (
	attribDisabled  attribState = 0
	attribEnabled   attribState = 1 << 0
	attribInstanced attribState = 1 << 1
)

// EnableVertexAttribArray records that the upcoming draw needs the slot
// enabled, optionally with per-instance stepping. No driver call is made
// until UpdateVertexAttribArrays runs for the draw batch.
func (s *System) EnableVertexAttribArray(slot uint32, instanced bool) {
	if int(slot) >= maxVertexAttribs {
		assert(false, "vertex attribute slot out of range")
		return
	}
	next := attribEnabled
	if instanced {
		next |= attribInstanced
	}
	s.attribNext[slot] = next
}

// UpdateVertexAttribArrays reconciles the recorded attribute intent with
// what the driver currently has, once per draw batch. Only actual
// transitions issue driver calls: enables and disables on toggle, divisor
// updates only for slots that end up enabled (a disabled slot's divisor is
// meaningless). Afterwards the intent table's enabled bits are cleared for
// the next batch while instancing bits persist until explicitly changed.
func (s *System) UpdateVertexAttribArrays() {
	for slot := range s.attribNext {
		next, cur := s.attribNext[slot], s.attribCur[slot]
		if next != cur {
			wantEnabled := next&attribEnabled != 0
			wasEnabled := cur&attribEnabled != 0
			if wantEnabled != wasEnabled {
				if wantEnabled {
					s.ctx.EnableVertexAttribArray(uint32(slot))
				} else {
					s.ctx.DisableVertexAttribArray(uint32(slot))
				}
			}
			if wantEnabled {
				instancedNow := next&attribInstanced != 0
				instancedBefore := cur&attribInstanced != 0
				if !wasEnabled || instancedNow != instancedBefore {
					var divisor uint32
					if instancedNow {
						divisor = 1
					}
					s.ctx.VertexAttribDivisor(uint32(slot), divisor)
				}
			}
			s.attribCur[slot] = next
		}
		s.attribNext[slot] &^= attribEnabled
	}
}

// BindTexture2D binds a 2D texture to the given unit, skipping the driver
// call when the unit already holds that texture.
func (s *System) BindTexture2D(unit int, h glctx.TextureHandle) {
	s.bindTexture(unit, glctx.Texture2D, h)
}

// BindTextureCubeMap binds a cube-map texture to the given unit, skipping
// the driver call when the unit already holds that texture.
func (s *System) BindTextureCubeMap(unit int, h glctx.TextureHandle) {
	s.bindTexture(unit, glctx.TextureCubeMap, h)
}

func (s *System) bindTexture(unit int, target glctx.Enum, h glctx.TextureHandle) {
	if unit < 0 || unit >= maxTextureUnits {
		assert(false, "texture unit out of range")
		return
	}
	if s.boundTextures[unit] == h {
		return
	}
	s.ctx.ActiveTexture(glctx.Texture0 + glctx.Enum(unit))
	s.ctx.BindTexture(target, h)
	s.boundTextures[unit] = h
}

// forgetTexture clears binding-table entries for a texture being deleted,
// so a later texture reusing the handle is not mistaken for it.
func (s *System) forgetTexture(h glctx.TextureHandle) {
	if !h.Valid() {
		return
	}
	for unit := range s.boundTextures {
		if s.boundTextures[unit] == h {
			s.boundTextures[unit] = 0
		}
	}
}
