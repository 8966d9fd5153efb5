package chip8

// loresExpand doubles each bit of a 4-bit nibble so that one logical
// low-resolution pixel becomes two physical pixels horizontally.
// Grounded verbatim on original_source/src/chip8_exec.c's
// lores_lookup table.
var loresExpand = [16]byte{
	0x00, 0x03, 0x0C, 0x0F,
	0x30, 0x33, 0x3C, 0x3F,
	0xC0, 0xC3, 0xCC, 0xCF,
	0xF0, 0xF3, 0xFC, 0xFF,
}

// clear implements 00E0: blank the framebuffer. Clearing twice equals
// clearing once (spec §8 idempotence) trivially, since this only ever
// zeroes.
func (m *Machine) clear() {
	m.Framebuffer = [framebufferSize]byte{}
	m.PC += 2
}

// draw implements DXYN (spec §4.3): draw an 8xN sprite (16x16 when
// N==0 in hires) at (VX, VY), XOR'd into the framebuffer, clipped (not
// wrapped) at the display edges, VF set iff any previously-set pixel
// was cleared. Ported directly from
// original_source/src/chip8_exec.c's chip8_exec_DXYN/chip8_apply_mask,
// the only reference in the pack that implements the lores
// pixel-doubling the spec requires.
func (m *Machine) draw(x, y, n byte) {
	scale := uint16(1)
	if !m.Hires {
		scale = 2
	}

	vx := (scale * uint16(m.V[x])) % DisplayWidth
	vy := (scale * uint16(m.V[y])) % DisplayHeight

	vxBytes := byte(vx / 8)
	vxBits := byte(vx % 8)

	cols, rows := byte(8), n
	if n == 0 && m.Hires {
		cols, rows = 16, 16
	}

	xLimit := cols
	if uint16(cols)*scale > DisplayWidth-vx {
		xLimit = byte((DisplayWidth - vx) / scale)
	}
	colBytes := cols / 8
	xLimit = (xLimit + 7) / 8

	yLimit := rows
	if uint16(rows)*scale > DisplayHeight-vy {
		yLimit = byte((DisplayHeight - vy) / scale)
	}

	m.V[0xF] = 0

	for j := byte(0); j < yLimit; j++ {
		for i := byte(0); i < xLimit; i++ {
			mask := m.Memory[m.I+uint16(j)*uint16(colBytes)+uint16(i)]

			if m.Hires {
				m.applyMask(vxBytes+i, vxBits, byte(vy)+j, mask)
			} else {
				top, bottom := byte(vy)+2*j, byte(vy)+2*j+1
				left, right := vxBytes+2*i, vxBytes+2*i+1
				m.applyMask(left, vxBits, top, loresExpand[mask>>4])
				if right < displayStride {
					m.applyMask(right, vxBits, top, loresExpand[mask&0xF])
				}
				m.applyMask(left, vxBits, bottom, loresExpand[mask>>4])
				if right < displayStride {
					m.applyMask(right, vxBits, bottom, loresExpand[mask&0xF])
				}
			}
		}
	}

	m.PC += 2
}

// applyMask XORs one byte-aligned-shifted mask into the framebuffer at
// physical byte column xBytes, row y, with intra-byte shift xBits, and
// raises VF if doing so cleared a previously-set pixel.
func (m *Machine) applyMask(xBytes, xBits, y, mask byte) {
	index := uint16(displayStride)*uint16(y) + uint16(xBytes)

	var prev byte
	if xBits == 0 {
		prev = m.Framebuffer[index]
		m.Framebuffer[index] ^= mask
	} else {
		prev1 := m.Framebuffer[index] << xBits
		m.Framebuffer[index] ^= mask >> xBits

		var prev2 byte
		if xBytes < displayStride-1 {
			prev2 = m.Framebuffer[index+1] >> (8 - xBits)
			m.Framebuffer[index+1] ^= mask << (8 - xBits)
		}
		prev = prev1 | prev2
	}

	if ^(prev ^ mask) & prev != 0 {
		m.V[0xF] = 1
	}
}

// scrollRows shifts the framebuffer by n rows. down selects direction;
// in low-resolution mode n is halved when Config.ScrollLoresHalvesN is
// set (Open Question §9.1). Grounded on
// original_source/src/chip8_exec.c's chip8_exec_00BN/00CN, which
// memmove the same packed buffer regardless of resolution.
func (m *Machine) scrollRows(n byte, down bool) {
	if !m.Hires && m.Config.ScrollLoresHalvesN {
		n /= 2
	}

	shift := int(n) * displayStride
	if shift > framebufferSize {
		shift = framebufferSize
	}

	if down {
		copy(m.Framebuffer[shift:], m.Framebuffer[:framebufferSize-shift])
		for i := 0; i < shift; i++ {
			m.Framebuffer[i] = 0
		}
	} else {
		copy(m.Framebuffer[:framebufferSize-shift], m.Framebuffer[shift:])
		for i := framebufferSize - shift; i < framebufferSize; i++ {
			m.Framebuffer[i] = 0
		}
	}

	m.PC += 2
}

func (m *Machine) scrollDown(n byte) { m.scrollRows(n, true) }
func (m *Machine) scrollUp(n byte)   { m.scrollRows(n, false) }

// scrollRight implements 00FB: shift every row right by a nibble (4
// physical pixels, which is 4 columns in hires and 2 logical columns
// in lores since each logical pixel is already 2 physical pixels
// wide). Ported from original_source/src/chip8_exec.c's
// chip8_exec_00FB.
func (m *Machine) scrollRight() {
	for row := 0; row < DisplayHeight; row++ {
		base := row * displayStride
		for col := displayStride - 1; col >= 1; col-- {
			index := base + col
			m.Framebuffer[index] = (m.Framebuffer[index] >> 4) | (m.Framebuffer[index-1] << 4)
		}
		m.Framebuffer[base] >>= 4
	}
	m.PC += 2
}

// scrollLeft implements 00FC, the mirror of scrollRight. Ported from
// original_source/src/chip8_exec.c's chip8_exec_00FC.
func (m *Machine) scrollLeft() {
	for row := 0; row < DisplayHeight; row++ {
		base := row * displayStride
		for col := 0; col < displayStride-1; col++ {
			index := base + col
			m.Framebuffer[index] = (m.Framebuffer[index] << 4) | (m.Framebuffer[index+1] >> 4)
		}
		m.Framebuffer[base+displayStride-1] <<= 4
	}
	m.PC += 2
}
