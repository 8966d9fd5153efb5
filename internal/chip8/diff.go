package chip8

import "fmt"

// Equal reports whether two machines hold identical observable state:
// every field the interpreter is specified to mutate, plus the stack's
// live entries. rng and pendingKeyRelease are excluded; they are
// implementation detail, not ROM-visible state. Grounded in the
// field-by-field assertion style nevisdale-go-chip8's chip8_test.go and
// deluziki-chip-8-emulator's chip8_test.go use throughout, collected
// into one reusable comparison instead of repeating it in every test.
func Equal(a, b *Machine) bool {
	return len(Diff(a, b)) == 0
}

// Diff returns a human-readable description of every field where a and
// b disagree, empty when they are equal. Used by the round-trip tests
// to report exactly what changed rather than a bare
// require.Equal pretty-print of two 4KB arrays.
func Diff(a, b *Machine) []string {
	var diffs []string

	if a.Memory != b.Memory {
		diffs = append(diffs, diffBytes("Memory", a.Memory[:], b.Memory[:]))
	}
	if a.Framebuffer != b.Framebuffer {
		diffs = append(diffs, diffBytes("Framebuffer", a.Framebuffer[:], b.Framebuffer[:]))
	}
	if a.V != b.V {
		diffs = append(diffs, fmt.Sprintf("V: %v != %v", a.V, b.V))
	}
	if a.I != b.I {
		diffs = append(diffs, fmt.Sprintf("I: %#03x != %#03x", a.I, b.I))
	}
	if a.DelayTimer != b.DelayTimer {
		diffs = append(diffs, fmt.Sprintf("DelayTimer: %d != %d", a.DelayTimer, b.DelayTimer))
	}
	if a.SoundTimer != b.SoundTimer {
		diffs = append(diffs, fmt.Sprintf("SoundTimer: %d != %d", a.SoundTimer, b.SoundTimer))
	}
	if a.PC != b.PC {
		diffs = append(diffs, fmt.Sprintf("PC: %#04x != %#04x", a.PC, b.PC))
	}
	if a.Keys != b.Keys {
		diffs = append(diffs, fmt.Sprintf("Keys: %v != %v", a.Keys, b.Keys))
	}
	if a.RPL != b.RPL {
		diffs = append(diffs, fmt.Sprintf("RPL: %v != %v", a.RPL, b.RPL))
	}
	if a.Hires != b.Hires {
		diffs = append(diffs, fmt.Sprintf("Hires: %v != %v", a.Hires, b.Hires))
	}
	if a.Stopped != b.Stopped {
		diffs = append(diffs, fmt.Sprintf("Stopped: %v != %v", a.Stopped, b.Stopped))
	}
	if !a.stack.equal(b.stack) {
		diffs = append(diffs, fmt.Sprintf("stack: %v != %v", a.stack.entries, b.stack.entries))
	}

	return diffs
}

// diffBytes reports only the first mismatching offset and byte pair so
// a 4KB memory diff doesn't flood test output.
func diffBytes(field string, a, b []byte) string {
	for i := range a {
		if a[i] != b[i] {
			return fmt.Sprintf("%s: first mismatch at offset %d (%#02x != %#02x)", field, i, a[i], b[i])
		}
	}
	return field + ": lengths differ"
}
