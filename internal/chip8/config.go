package chip8

// Config holds the quirk switches and tuning knobs the interpreter's
// behavior is allowed to vary on. The original COSMAC VIP / SUPER-CHIP
// lineage never nailed these down consistently, so rather than picking
// one behavior and hard-coding it, every ROM-visible ambiguity is
// exposed here (see spec §9 Design Notes and SPEC_FULL.md §9).
type Config struct {
	// TargetSpeed is the number of instructions executed per second.
	// The step loop runs TargetSpeed/60 instructions per 60Hz frame
	// (integer division, at least 1); the remainder is not carried
	// between frames, so a speed that is not a multiple of 60 runs
	// slightly slower (500 gives 8 per frame, 480 per second). Default 500.
	TargetSpeed int

	// DefaultScale is the renderer's initial integer pixel scale. The
	// core never reads it for emulation; it only exists so the display
	// layer and CLI share one source of truth. Default 10.
	DefaultScale int

	// ShiftUsesVY, if true, makes 8XY6/8XYE read their operand from VY
	// instead of VX before shifting into VX.
	ShiftUsesVY bool

	// JumpUsesVX, if true, makes BNNN add VX (selected by the opcode's
	// high nibble) instead of V0.
	JumpUsesVX bool

	// LoadStoreIncrementsI, if true, makes FX55/FX65 leave I at I+X+1
	// instead of leaving it unmodified.
	LoadStoreIncrementsI bool

	// ScrollLoresHalvesN resolves Open Question §9.1: in low-resolution
	// mode, 00BN/00CN/00DN scroll by N/2 physical rows when true (the
	// default, matching massung-CHIP-8's Pitch==8 halving), or by N
	// physical rows when false (matching the literal original_source
	// C reference, which never halves despite its own comment).
	ScrollLoresHalvesN bool

	// WaitForKeyRelease resolves Open Question §9.2: FX0A waits for a
	// key to be released (true) instead of the default press-edge
	// semantics (false) described in spec §4.5.
	WaitForKeyRelease bool

	// StackHardCap resolves Open Question §9.3: 0 means the stack may
	// grow without bound (the default); any other value enforces that
	// depth, returning ErrStackExhausted on overflow.
	StackHardCap uint16
}

// DefaultConfig returns the configuration spec §6 names as defaults,
// with every quirk resolved to the behavior spec §9 settles on.
func DefaultConfig() Config {
	return Config{
		TargetSpeed:          500,
		DefaultScale:         10,
		ShiftUsesVY:          false,
		JumpUsesVX:           false,
		LoadStoreIncrementsI: false,
		ScrollLoresHalvesN:   true,
		WaitForKeyRelease:    false,
		StackHardCap:         0,
	}
}
