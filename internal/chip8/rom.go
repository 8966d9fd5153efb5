package chip8

import "os"

// Memory map constants (spec §3, §6).
const (
	MemorySize = 0x1000 // 4096 bytes, byte-addressable
	EntryPoint = 0x200  // most ROMs begin here

	// MaxROMSize is the largest ROM LoadROM will accept.
	MaxROMSize = MemorySize - EntryPoint

	// FontMemoryOffset is where the lores font is loaded; the hires
	// font immediately follows it.
	FontMemoryOffset = 0x000
	loresFontLength  = 0x50  // 80 bytes, 5 bytes/glyph x 16 glyphs
	hiresFontLength  = 0xA0  // 160 bytes, 10 bytes/glyph x 16 glyphs
)

// loresFont is the classic 4x5 hex digit font, loaded at
// memory[0x000:0x050]. It is the standard CHIP-8 glyph set, used in
// place of the teacher's internal/pixel.FontSet and kept here because
// font data belongs to the machine's data model, not to rendering.
var loresFont = [loresFontLength]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// hiresFont is the SUPER-CHIP 8x10 hex digit font, loaded immediately
// after the lores font at memory[0x050:0x0F0]. Grounded on the
// FONT_MEMORY_OFFSET + LORES_FONT_LENGTH layout convention in
// original_source/src/chip8_state.h; the glyph bitmaps themselves are
// the standard SUPER-CHIP set.
var hiresFont = [hiresFontLength]byte{
	0x3C, 0x7E, 0xE7, 0xC3, 0xC3, 0xC3, 0xC3, 0xE7, 0x7E, 0x3C, // 0
	0x18, 0x38, 0x58, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x3C, // 1
	0x3E, 0x7F, 0xC3, 0x06, 0x0C, 0x18, 0x30, 0x60, 0xFF, 0xFF, // 2
	0x3C, 0x7E, 0xC3, 0x03, 0x0E, 0x0E, 0x03, 0xC3, 0x7E, 0x3C, // 3
	0x06, 0x0E, 0x1E, 0x36, 0x66, 0xC6, 0xFF, 0xFF, 0x06, 0x06, // 4
	0xFF, 0xFF, 0xC0, 0xC0, 0xFC, 0xFE, 0x03, 0xC3, 0x7E, 0x3C, // 5
	0x3E, 0x7C, 0xC0, 0xC0, 0xFC, 0xFE, 0xC3, 0xC3, 0x7E, 0x3C, // 6
	0xFF, 0xFF, 0x03, 0x06, 0x0C, 0x18, 0x30, 0x60, 0x60, 0x60, // 7
	0x3C, 0x7E, 0xC3, 0xC3, 0x7E, 0x7E, 0xC3, 0xC3, 0x7E, 0x3C, // 8
	0x3C, 0x7E, 0xC3, 0xC3, 0x7F, 0x3F, 0x03, 0x03, 0x3E, 0x7C, // 9
	0x18, 0x3C, 0x66, 0xC3, 0xC3, 0xFF, 0xFF, 0xC3, 0xC3, 0xC3, // A
	0xFC, 0xFE, 0xC3, 0xC3, 0xFC, 0xFE, 0xC3, 0xC3, 0xFE, 0xFC, // B
	0x3C, 0x7E, 0xC3, 0xC0, 0xC0, 0xC0, 0xC0, 0xC3, 0x7E, 0x3C, // C
	0xFC, 0xFE, 0xC3, 0xC3, 0xC3, 0xC3, 0xC3, 0xC3, 0xFE, 0xFC, // D
	0xFF, 0xFF, 0xC0, 0xC0, 0xFC, 0xFC, 0xC0, 0xC0, 0xFF, 0xFF, // E
	0xFF, 0xFF, 0xC0, 0xC0, 0xFC, 0xFC, 0xC0, 0xC0, 0xC0, 0xC0, // F
}

// loadROM reads raw ROM bytes into memory starting at EntryPoint. It
// rejects anything longer than MaxROMSize. Grounded on the teacher's
// loadROM, generalized to return ErrROMTooLarge instead of panicking.
func (m *Machine) loadROM(rom []byte) error {
	if len(rom) > MaxROMSize {
		return ErrROMTooLarge
	}
	copy(m.Memory[EntryPoint:], rom)
	return nil
}

// LoadROMFile reads a ROM from disk and loads it the same way LoadROM
// does. A read failure is returned unchanged (an *os.PathError), the
// way the teacher's ioutil.ReadFile error propagated.
func (m *Machine) LoadROMFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return m.LoadROM(data)
}

// loadFonts writes the lores font at FontMemoryOffset and the hires
// font immediately after it.
func (m *Machine) loadFonts() {
	copy(m.Memory[FontMemoryOffset:], loresFont[:])
	copy(m.Memory[FontMemoryOffset+loresFontLength:], hiresFont[:])
}
