package chip8

import "bytes"

// historyCapacity bounds rewind depth to 60 seconds at the fixed 60Hz
// step-loop frame rate. Grounded on
// original_source/src/chip8_state.c's `HISTORY_MAX (60*60)` constant,
// whose surrounding chip8_compress_state/chip8_history_add bodies are
// stubbed out empty in the original; the ring discipline and RLE
// compression here are a fresh implementation of what those stubs
// were left to do.
const historyCapacity = 60 * 60

// History is a bounded ring of RLE-compressed snapshots, oldest frames
// evicted once full, supporting single-step rewind for the step loop's
// pause/rewind control (spec §9 note: "exact compression is left to
// the implementer").
type History struct {
	frames [][]byte
}

// NewHistory returns an empty history ready to record frames.
func NewHistory() *History {
	return &History{frames: make([][]byte, 0, historyCapacity)}
}

// Push compresses and records m's current state as the most recent
// frame, evicting the oldest frame once historyCapacity is reached.
func (h *History) Push(m *Machine) error {
	var buf bytes.Buffer
	if err := m.Dump(&buf); err != nil {
		return err
	}
	frame := rleCompress(buf.Bytes())

	if len(h.frames) >= historyCapacity {
		copy(h.frames, h.frames[1:])
		h.frames[len(h.frames)-1] = frame
		return nil
	}
	h.frames = append(h.frames, frame)
	return nil
}

// Len reports how many frames can currently be rewound.
func (h *History) Len() int {
	return len(h.frames)
}

// Rewind restores m to the most recently pushed frame and removes it
// from the history. It reports false when the history is empty.
func (h *History) Rewind(m *Machine) (bool, error) {
	if len(h.frames) == 0 {
		return false, nil
	}
	last := len(h.frames) - 1
	frame := h.frames[last]
	h.frames = h.frames[:last]

	raw := rleDecompress(frame)
	if err := m.Restore(bytes.NewReader(raw)); err != nil {
		return false, err
	}
	return true, nil
}

// Reset discards all recorded frames, used when a new ROM is loaded.
func (h *History) Reset() {
	h.frames = h.frames[:0]
}

// rleCompress run-length encodes data as a sequence of (value byte,
// run-length byte) pairs, runs capped at 255 so the length byte never
// overflows. Effective on dump frames because Memory and Framebuffer
// are dominated by long runs of zero bytes between ROMs/sprites.
func rleCompress(data []byte) []byte {
	out := make([]byte, 0, len(data)/4+2)
	i := 0
	for i < len(data) {
		v := data[i]
		run := 1
		for i+run < len(data) && data[i+run] == v && run < 255 {
			run++
		}
		out = append(out, v, byte(run))
		i += run
	}
	return out
}

// rleDecompress reverses rleCompress.
func rleDecompress(data []byte) []byte {
	out := make([]byte, 0, len(data)*4)
	for i := 0; i+1 < len(data); i += 2 {
		v, run := data[i], data[i+1]
		for n := byte(0); n < run; n++ {
			out = append(out, v)
		}
	}
	return out
}
