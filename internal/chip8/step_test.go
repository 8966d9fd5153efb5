package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeAudio struct {
	enabled bool
	calls   int
}

func (f *fakeAudio) SetToneEnabled(enabled bool) {
	f.enabled = enabled
	f.calls++
}

type fakeDisplay struct {
	closed bool
}

func (f *fakeDisplay) Render(m *Machine)        {}
func (f *fakeDisplay) PollInput(keys *[16]bool) {}
func (f *fakeDisplay) Closed() bool             { return f.closed }

func TestTickRunsBudgetedInstructions(t *testing.T) {
	m := newTestMachine(t)
	m.Config.TargetSpeed = 120 // 2 instructions/frame at 60Hz
	loadProgram(t, m, []byte{
		0x60, 0x01, // V0 = 1
		0x70, 0x01, // V0 += 1
		0x70, 0x01, // V0 += 1 (should not run this frame)
	})

	audio := &fakeAudio{}
	loop := NewStepLoop(m, &fakeDisplay{}, audio)

	require.NoError(t, loop.tick())

	require.Equal(t, byte(2), m.V[0], "only 2 instructions should have executed")
	require.Equal(t, uint16(EntryPoint+4), m.PC)
}

func TestTickDecrementsTimersOnce(t *testing.T) {
	m := newTestMachine(t)
	m.Config.TargetSpeed = 60 // exactly 1 instruction/frame
	m.DelayTimer = 5
	m.SoundTimer = 5
	loadProgram(t, m, []byte{0x00, 0xE0}) // clear, harmless no-op for this test

	audio := &fakeAudio{}
	loop := NewStepLoop(m, &fakeDisplay{}, audio)

	require.NoError(t, loop.tick())

	require.Equal(t, byte(4), m.DelayTimer)
	require.Equal(t, byte(4), m.SoundTimer)
	require.True(t, audio.enabled, "tone stays on while SoundTimer > 0")
}

func TestTickSilencesAudioWhenSoundTimerZero(t *testing.T) {
	m := newTestMachine(t)
	m.Config.TargetSpeed = 60
	loadProgram(t, m, []byte{0x00, 0xE0})

	audio := &fakeAudio{}
	loop := NewStepLoop(m, &fakeDisplay{}, audio)

	require.NoError(t, loop.tick())
	require.False(t, audio.enabled)
}

// TestTickStopsInstructionBudgetOnBlockedKeyWait covers the
// catch-up-without-spinning behavior: a frame with budget for several
// instructions stops consuming that budget the moment FX0A blocks.
func TestTickStopsInstructionBudgetOnBlockedKeyWait(t *testing.T) {
	m := newTestMachine(t)
	m.Config.TargetSpeed = 300 // 5 instructions/frame
	loadProgram(t, m, []byte{
		0xF0, 0x0A, // wait for key into V0; no key pressed, blocks forever
	})

	loop := NewStepLoop(m, &fakeDisplay{}, &fakeAudio{})
	require.NoError(t, loop.tick())

	require.Equal(t, uint16(EntryPoint), m.PC, "still blocked on FX0A")
}

func TestStepLoopPushesHistoryEachTick(t *testing.T) {
	m := newTestMachine(t)
	m.Config.TargetSpeed = 60
	loadProgram(t, m, []byte{0x00, 0xE0})

	loop := NewStepLoop(m, &fakeDisplay{}, &fakeAudio{})
	require.NoError(t, loop.tick())
	require.NoError(t, loop.tick())

	require.Equal(t, 2, loop.History.Len())
}
