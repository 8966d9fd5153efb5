package chip8

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHistoryPushRewind(t *testing.T) {
	m := newTestMachine(t)
	h := NewHistory()

	m.V[0] = 1
	require.NoError(t, h.Push(m))

	m.V[0] = 2
	require.NoError(t, h.Push(m))

	m.V[0] = 3

	ok, err := h.Rewind(m)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, byte(2), m.V[0])

	ok, err = h.Rewind(m)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, byte(1), m.V[0])

	ok, err = h.Rewind(m)
	require.NoError(t, err)
	require.False(t, ok, "history exhausted")
}

func TestHistoryEvictsOldestBeyondCapacity(t *testing.T) {
	h := &History{frames: make([][]byte, 0, 4)}
	m := newTestMachine(t)

	for i := 0; i < historyCapacity+3; i++ {
		m.V[0] = byte(i)
		require.NoError(t, h.Push(m))
	}

	require.Equal(t, historyCapacity, h.Len())

	oldest := newTestMachine(t)
	require.NoError(t, oldest.Restore(bytes.NewReader(rleDecompress(h.frames[0]))))
	require.Equal(t, byte(3), oldest.V[0], "the first three frames were evicted")
}

func TestRLERoundTrip(t *testing.T) {
	data := []byte{0, 0, 0, 0, 1, 2, 2, 2, 0xFF, 0xFF}
	compressed := rleCompress(data)
	require.Equal(t, data, rleDecompress(compressed))
}

func TestRLELongRun(t *testing.T) {
	data := make([]byte, 1000)
	compressed := rleCompress(data)
	require.Equal(t, data, rleDecompress(compressed))
}
