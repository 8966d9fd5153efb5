package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClearIsIdempotent(t *testing.T) {
	m := newTestMachine(t)
	for i := range m.Framebuffer {
		m.Framebuffer[i] = 0xAA
	}

	m.clear()
	once := m.Framebuffer

	m.clear()
	require.Equal(t, once, m.Framebuffer, "clearing twice must equal clearing once")
	for _, b := range m.Framebuffer {
		require.Zero(t, b)
	}
}

// TestDrawSpriteWrapOfOrigin is the lores sprite scenario from spec §8:
// V0=4, V1=1, I=0x202, memory[0x202..]={0xFF,0x0F}, D012. Each logical
// pixel doubles to a 2x2 physical block, so the two source bytes land
// on exactly six framebuffer bytes (0xFF on four, 0x0F on two).
func TestDrawSpriteWrapOfOrigin(t *testing.T) {
	m := newTestMachine(t)
	m.V[0] = 4
	m.V[1] = 1
	m.I = 0x202
	m.Memory[0x202] = 0xFF
	m.Memory[0x203] = 0x0F

	m.draw(0, 1, 2)

	for _, idx := range []int{33, 34, 49, 50, 66, 82} {
		require.Equal(t, byte(0xFF), m.Framebuffer[idx], "byte %d", idx)
	}
	require.Equal(t, byte(0), m.V[0xF])

	set := map[int]bool{33: true, 34: true, 49: true, 50: true, 66: true, 82: true}
	for i, b := range m.Framebuffer {
		if !set[i] {
			require.Zero(t, b, "byte %d should be untouched", i)
		}
	}
}

// TestDrawSpriteCollision is the hires collision scenario from spec §8:
// clipped at the bottom-right corner, colliding with existing pixels.
func TestDrawSpriteCollision(t *testing.T) {
	m := newTestMachine(t)
	m.Hires = true
	m.V[0] = 124
	m.V[1] = 63
	m.Framebuffer[0] = 0xFF
	m.Framebuffer[15] = 0xFF
	m.Framebuffer[1008] = 0xFF
	m.Framebuffer[1023] = 0xFF
	m.I = 0x202
	m.Memory[0x202] = 0xFF
	m.Memory[0x203] = 0xFF

	m.draw(0, 1, 2)

	require.Equal(t, byte(0xF0), m.Framebuffer[1023])
	require.Equal(t, byte(1), m.V[0xF])
}

func TestBCDScenario(t *testing.T) {
	m := newTestMachine(t)
	m.V[1] = 154
	m.I = 0x110
	m.bcd(1)

	require.Equal(t, byte(1), m.Memory[0x110])
	require.Equal(t, byte(5), m.Memory[0x111])
	require.Equal(t, byte(4), m.Memory[0x112])
}

// TestScrollRightByFourLores is the scroll scenario from spec §8.
func TestScrollRightByFourLores(t *testing.T) {
	m := newTestMachine(t)
	m.Framebuffer[0] = 0xFF
	m.Framebuffer[15] = 0xFF
	m.Framebuffer[1008] = 0xFF
	m.Framebuffer[1023] = 0xFF

	m.scrollRight()

	require.Equal(t, byte(0x0F), m.Framebuffer[0])
	require.Equal(t, byte(0xF0), m.Framebuffer[1])
	require.Equal(t, byte(0x0F), m.Framebuffer[15])
	require.Equal(t, byte(0x0F), m.Framebuffer[1008])
	require.Equal(t, byte(0xF0), m.Framebuffer[1009])
	require.Equal(t, byte(0x0F), m.Framebuffer[1023])
}

// TestScrollRightThenLeftIsIdentity covers spec §8's symmetry property:
// 00FB followed by 00FC is the identity when the leftmost and
// rightmost 4-pixel columns are both zero.
func TestScrollRightThenLeftIsIdentity(t *testing.T) {
	m := newTestMachine(t)
	for row := 0; row < DisplayHeight; row++ {
		m.Framebuffer[row*displayStride+3] = 0x5A
	}
	before := m.Framebuffer

	m.scrollRight()
	m.scrollLeft()

	require.Equal(t, before, m.Framebuffer)
}

func TestScrollUpHalvesNInLores(t *testing.T) {
	m := newTestMachine(t)
	m.Framebuffer[2*displayStride] = 0xFF // row 2

	m.scrollUp(4) // halved to 2 rows in lores by default config

	require.Equal(t, byte(0xFF), m.Framebuffer[0], "row 2 shifted up by 2 rows to row 0")
}

func TestScrollUpDoesNotHalveInHires(t *testing.T) {
	m := newTestMachine(t)
	m.Hires = true
	m.Framebuffer[4*displayStride] = 0xFF // row 4

	m.scrollUp(4)

	require.Equal(t, byte(0xFF), m.Framebuffer[0], "row 4 shifted up by 4 rows to row 0")
}
