package chip8

import (
	"encoding/binary"
	"io"
)

// Dump writes the machine state to w in the exact little-endian order
// spec §4.6 names — memory, framebuffer, registers, I, delay, sound,
// PC, keys, stack capacity, sp, stack entries — then, so that
// restore(dump(x)) == x holds for every reachable field (spec §8's
// round-trip property), appends the resolution flag, stopped flag,
// and RPL save area, none of which the historical byte layout
// mentions. Grounded on
// original_source/src/chip8_state.c's chip8_dump_state.
func (m *Machine) Dump(w io.Writer) error {
	if _, err := w.Write(m.Memory[:]); err != nil {
		return err
	}
	if _, err := w.Write(m.Framebuffer[:]); err != nil {
		return err
	}
	if _, err := w.Write(m.V[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, m.I); err != nil {
		return err
	}
	if err := writeByte(w, m.DelayTimer); err != nil {
		return err
	}
	if err := writeByte(w, m.SoundTimer); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, m.PC); err != nil {
		return err
	}
	for _, pressed := range m.Keys {
		if err := writeBool(w, pressed); err != nil {
			return err
		}
	}
	if err := binary.Write(w, binary.LittleEndian, m.stack.capacity()); err != nil {
		return err
	}
	sp := uint16(m.stack.depth())
	if err := binary.Write(w, binary.LittleEndian, sp); err != nil {
		return err
	}
	for _, addr := range m.stack.entries {
		if err := binary.Write(w, binary.LittleEndian, addr); err != nil {
			return err
		}
	}

	if err := writeBool(w, m.Hires); err != nil {
		return err
	}
	if err := writeBool(w, m.Stopped); err != nil {
		return err
	}
	if _, err := w.Write(m.RPL[:]); err != nil {
		return err
	}

	return nil
}

// Restore reads a dump produced by Dump and replaces the machine's
// state with it, growing the stack buffer if the dumped capacity
// exceeds the current one (spec §4.6).
func (m *Machine) Restore(r io.Reader) error {
	if _, err := io.ReadFull(r, m.Memory[:]); err != nil {
		return err
	}
	if _, err := io.ReadFull(r, m.Framebuffer[:]); err != nil {
		return err
	}
	if _, err := io.ReadFull(r, m.V[:]); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &m.I); err != nil {
		return err
	}
	var err error
	if m.DelayTimer, err = readByte(r); err != nil {
		return err
	}
	if m.SoundTimer, err = readByte(r); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &m.PC); err != nil {
		return err
	}
	for i := range m.Keys {
		if m.Keys[i], err = readBool(r); err != nil {
			return err
		}
	}

	var capacity, sp uint16
	if err := binary.Read(r, binary.LittleEndian, &capacity); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &sp); err != nil {
		return err
	}

	if m.stack == nil || m.stack.capacity() < capacity {
		m.stack = newStack(m.Config.StackHardCap)
		m.stack.entries = make([]uint16, 0, capacity)
	} else {
		m.stack.reset()
	}
	for i := uint16(0); i < sp; i++ {
		var addr uint16
		if err := binary.Read(r, binary.LittleEndian, &addr); err != nil {
			return err
		}
		m.stack.entries = append(m.stack.entries, addr)
	}

	if m.Hires, err = readBool(r); err != nil {
		return err
	}
	if m.Stopped, err = readBool(r); err != nil {
		return err
	}
	if _, err := io.ReadFull(r, m.RPL[:]); err != nil {
		return err
	}

	return nil
}

func writeByte(w io.Writer, b byte) error {
	_, err := w.Write([]byte{b})
	return err
}

func readByte(r io.Reader) (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func writeBool(w io.Writer, b bool) error {
	if b {
		return writeByte(w, 1)
	}
	return writeByte(w, 0)
}

func readBool(r io.Reader) (bool, error) {
	b, err := readByte(r)
	if err != nil {
		return false, err
	}
	return b != 0, nil
}
