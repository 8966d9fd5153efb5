package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStackPushPop(t *testing.T) {
	s := newStack(0)
	require.NoError(t, s.push(0x200))
	require.NoError(t, s.push(0x300))
	require.Equal(t, 2, s.depth())

	addr, err := s.pop()
	require.NoError(t, err)
	require.Equal(t, uint16(0x300), addr)

	addr, err = s.pop()
	require.NoError(t, err)
	require.Equal(t, uint16(0x200), addr)
	require.Equal(t, 0, s.depth())
}

func TestStackUnderflow(t *testing.T) {
	s := newStack(0)
	_, err := s.pop()
	require.ErrorIs(t, err, ErrStackUnderflow)
}

func TestStackGrowsPastInitialCapacity(t *testing.T) {
	s := newStack(0)
	for i := 0; i < initialStackCapacity+10; i++ {
		require.NoError(t, s.push(uint16(i)))
	}
	require.Equal(t, initialStackCapacity+10, s.depth())
	require.GreaterOrEqual(t, s.capacity(), uint16(initialStackCapacity+10))
}

func TestStackHardCap(t *testing.T) {
	s := newStack(3)
	for i := 0; i < 3; i++ {
		require.NoError(t, s.push(uint16(i)))
	}

	err := s.push(99)
	require.ErrorIs(t, err, ErrStackExhausted)

	_, err = s.pop()
	require.NoError(t, err)
	require.NoError(t, s.push(9), "room freed by the pop above")
}
