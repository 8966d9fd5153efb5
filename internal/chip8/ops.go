package chip8

// Execute decodes and runs one opcode, advancing PC and mutating
// Machine state per spec §4. It returns UnknownOpcodeError,
// ErrStackUnderflow, or ErrStackExhausted on the fatal classes named
// in spec §7; all other instructions are always defined (wraparound
// arithmetic feeds VF, it is never an error).
func (m *Machine) Execute(opcode uint16) error {
	inst := decode(opcode)

	switch inst.op {
	case opClear:
		m.clear()
	case opReturn:
		return m.ret()
	case opScrollDown:
		m.scrollDown(inst.n)
	case opScrollUp:
		m.scrollUp(inst.n)
	case opScrollRight:
		m.scrollRight()
	case opScrollLeft:
		m.scrollLeft()
	case opExit:
		m.Stopped = true
		m.PC += 2
	case opLoRes:
		m.Hires = false
		m.PC += 2
	case opHiRes:
		m.Hires = true
		m.PC += 2
	case opJump:
		m.PC = inst.nnn
	case opCall:
		return m.call(inst.nnn)
	case opSkipEqualImm:
		m.skip(m.V[inst.x] == inst.nn)
	case opSkipNotEqualImm:
		m.skip(m.V[inst.x] != inst.nn)
	case opSkipEqualReg:
		m.skip(m.V[inst.x] == m.V[inst.y])
	case opSkipNotEqualReg:
		m.skip(m.V[inst.x] != m.V[inst.y])
	case opLoadImm:
		m.V[inst.x] = inst.nn
		m.PC += 2
	case opAddImm:
		m.V[inst.x] += inst.nn
		m.PC += 2
	case opLoadReg:
		m.V[inst.x] = m.V[inst.y]
		m.PC += 2
	case opOr:
		m.V[inst.x] |= m.V[inst.y]
		m.PC += 2
	case opAnd:
		m.V[inst.x] &= m.V[inst.y]
		m.PC += 2
	case opXor:
		m.V[inst.x] ^= m.V[inst.y]
		m.PC += 2
	case opAddReg:
		m.addReg(inst.x, inst.y)
	case opSubXY:
		m.subReg(inst.x, inst.x, inst.y)
	case opShiftRight:
		m.shiftRight(inst.x, inst.y)
	case opSubYX:
		m.subReg(inst.x, inst.y, inst.x)
	case opShiftLeft:
		m.shiftLeft(inst.x, inst.y)
	case opLoadI:
		m.I = inst.nnn
		m.PC += 2
	case opJumpV0:
		m.jumpV0(inst)
	case opRandom:
		m.V[inst.x] = m.randomByte() & inst.nn
		m.PC += 2
	case opDraw:
		m.draw(inst.x, inst.y, inst.n)
	case opSkipPressed:
		m.skip(m.Keys[m.V[inst.x]&0xF])
	case opSkipNotPressed:
		m.skip(!m.Keys[m.V[inst.x]&0xF])
	case opLoadDelay:
		m.V[inst.x] = m.DelayTimer
		m.PC += 2
	case opWaitKey:
		m.waitKey(inst.x)
	case opSetDelay:
		m.DelayTimer = m.V[inst.x]
		m.PC += 2
	case opSetSound:
		m.SoundTimer = m.V[inst.x]
		m.PC += 2
	case opAddI:
		m.I = (m.I + uint16(m.V[inst.x])) & 0xFFF
		m.PC += 2
	case opLoadFont:
		m.I = FontMemoryOffset + uint16(loresFontLength/16)*uint16(m.V[inst.x]&0xF)
		m.PC += 2
	case opLoadHiFont:
		m.I = FontMemoryOffset + loresFontLength + uint16(hiresFontLength/16)*uint16(m.V[inst.x]&0xF)
		m.PC += 2
	case opBCD:
		m.bcd(inst.x)
	case opStoreRegs:
		m.storeRegs(inst.x)
	case opLoadRegs:
		m.loadRegs(inst.x)
	case opStoreRPL:
		copy(m.RPL[:], m.V[:inst.x+1])
		m.PC += 2
	case opLoadRPL:
		copy(m.V[:inst.x+1], m.RPL[:])
		m.PC += 2
	default:
		return &UnknownOpcodeError{Opcode: opcode, PC: m.PC}
	}

	return nil
}

// skip advances PC by either 4 (instruction skipped) or 2, the shared
// shape behind every 3XNN/4XNN/5XY0/9XY0/EX9E/EXA1 comparison.
func (m *Machine) skip(cond bool) {
	if cond {
		m.PC += 4
	} else {
		m.PC += 2
	}
}

func (m *Machine) call(addr uint16) error {
	if err := m.stack.push(m.PC + 2); err != nil {
		return err
	}
	m.PC = addr
	return nil
}

func (m *Machine) ret() error {
	addr, err := m.stack.pop()
	if err != nil {
		return err
	}
	m.PC = addr
	return nil
}

func (m *Machine) jumpV0(inst instruction) {
	base := m.V[0]
	if m.Config.JumpUsesVX {
		base = m.V[inst.x]
	}
	m.PC = inst.nnn + uint16(base)
}

// addReg implements 8XY4: VX += VY, VF = carry. VF is written last so
// that Vx = VF reflects the flag, not the sum (spec §3 invariant,
// centralized here per spec §9's "VF-as-destination" design note).
func (m *Machine) addReg(x, y byte) {
	sum := uint16(m.V[x]) + uint16(m.V[y])
	result := byte(sum)
	var carry byte
	if sum > 0xFF {
		carry = 1
	}
	m.V[x] = result
	m.V[0xF] = carry
	m.PC += 2
}

// subReg computes dst = minuend - subtrahend with VF = NOT-borrow,
// covering both 8XY5 (dst=x, minuend=x, subtrahend=y) and 8XY7
// (dst=x, minuend=y, subtrahend=x).
func (m *Machine) subReg(dst, minuend, subtrahend byte) {
	a, b := m.V[minuend], m.V[subtrahend]
	result := a - b
	var notBorrow byte
	if a >= b {
		notBorrow = 1
	}
	m.V[dst] = result
	m.V[0xF] = notBorrow
	m.PC += 2
}

// shiftRight implements 8XY6: VX := operand >> 1, VF := LSB of operand
// before the shift. operand is VY unless Config.ShiftUsesVY is false,
// in which case it is VX itself (the more common modern quirk).
func (m *Machine) shiftRight(x, y byte) {
	operand := m.V[x]
	if m.Config.ShiftUsesVY {
		operand = m.V[y]
	}
	result := operand >> 1
	flag := operand & 0x01
	m.V[x] = result
	m.V[0xF] = flag
	m.PC += 2
}

// shiftLeft implements 8XYE: VX := operand << 1, VF := MSB of operand
// before the shift.
func (m *Machine) shiftLeft(x, y byte) {
	operand := m.V[x]
	if m.Config.ShiftUsesVY {
		operand = m.V[y]
	}
	result := operand << 1
	flag := (operand & 0x80) >> 7
	m.V[x] = result
	m.V[0xF] = flag
	m.PC += 2
}

// waitKey implements FX0A. The default is press-edge: if no key is
// down, PC is not advanced and the opcode re-executes next step; the
// lowest-indexed pressed key wins. Config.WaitForKeyRelease flips this
// to only resolve once a previously-down key is released.
func (m *Machine) waitKey(x byte) {
	if m.Config.WaitForKeyRelease {
		m.waitKeyRelease(x)
		return
	}
	for i, down := range m.Keys {
		if down {
			m.V[x] = byte(i)
			m.PC += 2
			return
		}
	}
}

// waitKeyRelease is the alternate FX0A semantics some SUPER-CHIP ROMs
// assume: latch the lowest pressed key, then block until it is
// released.
func (m *Machine) waitKeyRelease(x byte) {
	if m.pendingKeyRelease == nil {
		for i, down := range m.Keys {
			if down {
				k := byte(i)
				m.pendingKeyRelease = &k
				return
			}
		}
		return
	}
	if !m.Keys[*m.pendingKeyRelease] {
		m.V[x] = *m.pendingKeyRelease
		m.pendingKeyRelease = nil
		m.PC += 2
	}
}

// bcd implements FX33: store the hundreds, tens, and units digits of
// VX at I, I+1, I+2.
func (m *Machine) bcd(x byte) {
	v := m.V[x]
	m.Memory[m.I] = v / 100
	m.Memory[m.I+1] = (v / 10) % 10
	m.Memory[m.I+2] = v % 10
	m.PC += 2
}

// storeRegs implements FX55: write V0..VX to memory[I..]. I is left
// unmodified unless Config.LoadStoreIncrementsI is set.
func (m *Machine) storeRegs(x byte) {
	for i := byte(0); i <= x; i++ {
		m.Memory[m.I+uint16(i)] = m.V[i]
	}
	if m.Config.LoadStoreIncrementsI {
		m.I += uint16(x) + 1
	}
	m.PC += 2
}

// loadRegs implements FX65: fill V0..VX from memory[I..].
func (m *Machine) loadRegs(x byte) {
	for i := byte(0); i <= x; i++ {
		m.V[i] = m.Memory[m.I+uint16(i)]
	}
	if m.Config.LoadStoreIncrementsI {
		m.I += uint16(x) + 1
	}
	m.PC += 2
}
