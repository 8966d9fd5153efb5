package chip8

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDumpRestoreRoundTrip covers spec §8's round-trip property:
// restore(dump(state)) == state byte-for-byte for all reachable state.
func TestDumpRestoreRoundTrip(t *testing.T) {
	m := NewMachine(DefaultConfig(), rand.NewSource(7))
	require.NoError(t, m.LoadROM([]byte{0x00, 0xE0, 0x12, 0x00}))

	m.V[0] = 0x11
	m.V[0xF] = 0x22
	m.I = 0x345
	m.DelayTimer = 10
	m.SoundTimer = 20
	m.PC = 0x210
	m.Keys[3] = true
	m.Keys[9] = true
	m.Hires = true
	m.Stopped = false
	m.RPL[2] = 0x99
	require.NoError(t, m.stack.push(0x222))
	require.NoError(t, m.stack.push(0x444))

	var buf bytes.Buffer
	require.NoError(t, m.Dump(&buf))

	restored := NewMachine(DefaultConfig(), rand.NewSource(1))
	require.NoError(t, restored.Restore(bytes.NewReader(buf.Bytes())))

	require.Empty(t, Diff(m, restored))
}

func TestDumpRestoreGrowsStackCapacity(t *testing.T) {
	m := NewMachine(DefaultConfig(), nil)
	for i := 0; i < initialStackCapacity+5; i++ {
		require.NoError(t, m.stack.push(uint16(i)))
	}

	var buf bytes.Buffer
	require.NoError(t, m.Dump(&buf))

	restored := NewMachine(DefaultConfig(), nil)
	require.NoError(t, restored.Restore(bytes.NewReader(buf.Bytes())))

	require.Empty(t, Diff(m, restored))
	require.GreaterOrEqual(t, restored.stack.capacity(), uint16(initialStackCapacity+5))
}
