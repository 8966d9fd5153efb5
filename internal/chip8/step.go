package chip8

import (
	"context"
	"time"
)

// frameRate is the fixed 60Hz rate timers decrement at and the display
// is redrawn, independent of Config.TargetSpeed. Grounded on the
// teacher's refreshRate/time.Ticker-driven VM.Run, generalized from a
// single combined clock to a fixed 60Hz frame tick gating a
// configurable number of instructions per frame.
const frameRate = 60

// Display is the step loop's rendering collaborator (internal/display
// implements it). Render is called once per frame; PollInput lets the
// loop feed keyboard state back into the machine before executing.
type Display interface {
	Render(m *Machine)
	PollInput(keys *[16]bool)
	Closed() bool
}

// Audio is the step loop's sound collaborator (internal/audio
// implements it): a single write-only operation toggled once per
// frame, matching spec §5's "audio backend is write-only".
type Audio interface {
	SetToneEnabled(enabled bool)
}

// Pauser is an optional Display capability: a display that exposes a
// pause toggle (internal/display's P key) drives StepLoop.Paused
// without the core needing to know about any specific key binding.
type Pauser interface {
	Paused() bool
}

// Rewinder is an optional Display capability: a display that exposes
// a rewind control (internal/display's Backspace key) drains it here
// once per frame.
type Rewinder interface {
	RewindRequested() bool
}

// StepLoop drives a Machine at a fixed 60Hz frame rate, running
// Config.TargetSpeed/60 instructions per frame, decrementing timers,
// and notifying Display/Audio once per frame. Grounded on the
// teacher's VM.Run select-loop shape, with the instruction budget
// generalized from a fixed per-tick cycle to TargetSpeed/frameRate,
// and the FX0A catch-up behavior grounded on massung-CHIP-8's
// Process/Cycles pattern: a step that leaves PC unmoved (blocked on a
// key) ends the frame's instruction budget early rather than spinning
// or blocking the 60Hz tick itself.
type StepLoop struct {
	Machine *Machine
	Display Display
	Audio   Audio
	History *History

	// Paused suspends instruction execution and timer decrement while
	// still polling input and rendering, so a paused emulator stays
	// responsive to unpause/quit/rewind.
	Paused bool
}

// NewStepLoop wires a Machine to its Display and Audio collaborators,
// starting a fresh rewind history.
func NewStepLoop(m *Machine, d Display, a Audio) *StepLoop {
	return &StepLoop{
		Machine: m,
		Display: d,
		Audio:   a,
		History: NewHistory(),
	}
}

// Run ticks at frameRate until the display is closed, the machine
// stops itself (00FD), ctx is cancelled, or an instruction returns a
// fatal error.
func (s *StepLoop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / frameRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if s.Display.Closed() {
				return nil
			}
			s.Display.PollInput(&s.Machine.Keys)

			if p, ok := s.Display.(Pauser); ok {
				s.Paused = p.Paused()
			}
			if r, ok := s.Display.(Rewinder); ok && r.RewindRequested() {
				if _, err := s.Rewind(); err != nil {
					return err
				}
			}

			if !s.Paused {
				if err := s.tick(); err != nil {
					return err
				}
			}

			s.Display.Render(s.Machine)
			if s.Machine.Stopped {
				return nil
			}
		}
	}
}

// tick executes this frame's instruction budget, decrements both
// timers once, and latches the sound-enabled state from SoundTimer.
func (s *StepLoop) tick() error {
	budget := s.Machine.Config.TargetSpeed / frameRate
	if budget < 1 {
		budget = 1
	}

	for i := 0; i < budget; i++ {
		pcBefore := s.Machine.PC
		opcode := uint16(s.Machine.Memory[s.Machine.PC])<<8 | uint16(s.Machine.Memory[s.Machine.PC+1])
		if err := s.Machine.Execute(opcode); err != nil {
			return err
		}
		if s.Machine.PC == pcBefore {
			// Blocked on FX0A: stop spending this frame's budget
			// instead of busy-looping the same instruction.
			break
		}
	}

	if s.Machine.DelayTimer > 0 {
		s.Machine.DelayTimer--
	}
	if s.Machine.SoundTimer > 0 {
		s.Machine.SoundTimer--
	}
	s.Audio.SetToneEnabled(s.Machine.SoundTimer > 0)

	return s.History.Push(s.Machine)
}

// Rewind restores the machine to the previous recorded frame, used by
// the display's Backspace rewind control (see Rewinder). It is a no-op returning
// false once history is exhausted.
func (s *StepLoop) Rewind() (bool, error) {
	return s.History.Rewind(s.Machine)
}
