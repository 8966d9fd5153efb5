// Package chip8 implements the CHIP-8 / SUPER-CHIP execution core: a
// packed monochrome framebuffer, a 60Hz timer subsystem, a hexadecimal
// keypad model, and a deterministic dispatcher that decodes 16-bit
// big-endian opcodes. Windowing and audio synthesis are kept as thin
// external collaborators (internal/display, internal/audio); the only
// file I/O in this package is LoadROMFile, so the rest stays a pure,
// testable state machine, in the spirit of the teacher's
// internal/chip8 package but generalized to SUPER-CHIP.
package chip8

import "math/rand"

// Display dimensions. The low-resolution mode addresses the same
// 128x64 physical buffer by drawing each logical pixel as a 2x2 block
// (spec §3).
const (
	DisplayWidth    = 128
	DisplayHeight   = 64
	displayStride   = DisplayWidth / 8
	framebufferSize = DisplayWidth * DisplayHeight / 8
)

const numKeys = 16

// Machine is the aggregate CHIP-8 / SUPER-CHIP virtual machine state.
// It is constructed once per VM instance (NewMachine), reset on
// program (re)load, and mutated only by instruction semantics (ops.go,
// draw.go) and by the step loop's input/timer updates (step.go).
type Machine struct {
	Memory [MemorySize]byte

	// Framebuffer is a packed bit array, MSB-first, sized
	// DisplayWidth*DisplayHeight/8 bytes regardless of resolution mode.
	Framebuffer [framebufferSize]byte

	V [16]byte
	I uint16

	DelayTimer byte
	SoundTimer byte

	PC uint16

	Keys [numKeys]bool

	stack *stack

	// RPL holds the SUPER-CHIP user flag save area written/read by
	// FX75/FX85.
	RPL [16]byte

	// Hires is true for 128x64 high-resolution mode, false for the
	// 64x32 low-resolution mode emulated on the same buffer.
	Hires bool

	// Stopped is set by the 00FD (EXIT) instruction.
	Stopped bool

	Config Config

	rng *rand.Rand

	// pendingKeyRelease latches the key FX0A is waiting to see released
	// when Config.WaitForKeyRelease is set. nil when not waiting.
	pendingKeyRelease *byte
}

// NewMachine constructs a Machine with the font loaded and PC at
// EntryPoint, ready for a ROM to be loaded. rngSource seeds the CXNN
// random-byte generator; pass nil to use a source with the fixed seed 1.
func NewMachine(cfg Config, rngSource rand.Source) *Machine {
	if rngSource == nil {
		rngSource = rand.NewSource(1)
	}
	m := &Machine{
		Config: cfg,
		rng:    rand.New(rngSource),
	}
	m.Reset()
	return m
}

// Reset restores the baseline state: font loaded, everything else
// zeroed, PC at EntryPoint, stack emptied to its initial capacity.
// Grounded on the teacher's NewVM/loadFontSet split, collapsed into
// one lifecycle method per spec §3's "reset to a known baseline".
func (m *Machine) Reset() {
	m.Memory = [MemorySize]byte{}
	m.Framebuffer = [framebufferSize]byte{}
	m.V = [16]byte{}
	m.I = 0
	m.DelayTimer = 0
	m.SoundTimer = 0
	m.PC = EntryPoint
	m.Keys = [numKeys]bool{}
	m.stack = newStack(m.Config.StackHardCap)
	m.RPL = [16]byte{}
	m.Hires = false
	m.Stopped = false
	m.pendingKeyRelease = nil
	m.loadFonts()
}

// LoadROM loads program bytes at EntryPoint without disturbing
// anything already reset. Callers that want a clean machine should
// call Reset first; NewMachine+LoadROM is the common path.
func (m *Machine) LoadROM(rom []byte) error {
	return m.loadROM(rom)
}

// randomByte returns the next byte used by CXNN.
func (m *Machine) randomByte() byte {
	return byte(m.rng.Intn(256))
}
