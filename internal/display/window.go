// Package display renders a chip8.Machine's packed framebuffer with
// faiface/pixel and translates pixelgl key events into the 16-key
// hexadecimal keypad. Adapted from the teacher's internal/pixel
// package, generalized from a fixed 64x32 byte-per-pixel buffer to the
// bit-packed 128x64 buffer spec §3 specifies, and from a single-
// resolution draw to one that honors the machine's resolution flag.
package display

import (
	"fmt"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"

	"github.com/bradford-hamilton/chip8vm/internal/chip8"
)

// keyRepeatDur matches the teacher's held-key repeat interval.
const keyRepeatDur = 200 * time.Millisecond

// Window embeds a pixelgl window, holding the hex-keypad mapping and a
// per-key repeat ticker array, exactly as the teacher's Window does.
type Window struct {
	*pixelgl.Window
	scale    float64
	keyMap   map[byte]pixelgl.Button
	keysDown [16]*time.Ticker

	paused      bool
	rewindQueue chan struct{}
}

// NewWindow opens a pixelgl window sized for 128x64 pixels at scale,
// with the teacher's keymap table (unchanged key assignments) plus the
// P (pause) and Escape (quit) reserved controls spec §6 names.
func NewWindow(scale float64) (*Window, error) {
	if scale <= 0 {
		scale = 10
	}
	cfg := pixelgl.WindowConfig{
		Title:  "chip8vm",
		Bounds: pixel.R(0, 0, float64(chip8.DisplayWidth)*scale, float64(chip8.DisplayHeight)*scale),
		VSync:  true,
	}
	w, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating new window: %v", err)
	}

	km := map[byte]pixelgl.Button{
		0x1: pixelgl.Key1, 0x2: pixelgl.Key2,
		0x3: pixelgl.Key3, 0xC: pixelgl.Key4,
		0x4: pixelgl.KeyQ, 0x5: pixelgl.KeyW,
		0x6: pixelgl.KeyE, 0xD: pixelgl.KeyR,
		0x7: pixelgl.KeyA, 0x8: pixelgl.KeyS,
		0x9: pixelgl.KeyD, 0xE: pixelgl.KeyF,
		0xA: pixelgl.KeyZ, 0x0: pixelgl.KeyX,
		0xB: pixelgl.KeyC, 0xF: pixelgl.KeyV,
	}

	return &Window{
		Window:      w,
		scale:       scale,
		keyMap:      km,
		rewindQueue: make(chan struct{}, 1),
	}, nil
}

// Render draws the machine's framebuffer, decoding low-res (each
// logical pixel as a 2x2 physical block) and high-res directly from
// the same packed buffer, then updates the window. Grounded on the
// teacher's DrawGraphics, generalized from indexing a [64*32]byte
// plane to reading MSB-first packed bits.
func (w *Window) Render(m *chip8.Machine) {
	w.Clear(colornames.Black)
	if w.Closed() {
		return
	}

	draw := imdraw.New(nil)
	draw.Color = pixel.RGB(1, 1, 1)

	cellW, cellH := w.scale, w.scale
	stride := chip8.DisplayWidth / 8

	for row := 0; row < chip8.DisplayHeight; row++ {
		for col := 0; col < chip8.DisplayWidth; col++ {
			byteIndex := row*stride + col/8
			bit := byte(0x80) >> uint(col%8)
			if m.Framebuffer[byteIndex]&bit == 0 {
				continue
			}
			// Framebuffer row 0 is the top of the screen; pixel.V's
			// origin is bottom-left, so flip vertically on draw.
			y := chip8.DisplayHeight - 1 - row
			draw.Push(pixel.V(cellW*float64(col), cellH*float64(y)))
			draw.Push(pixel.V(cellW*float64(col)+cellW, cellH*float64(y)+cellH))
			draw.Rectangle(0)
		}
	}

	draw.Draw(w)
	w.Update()
}

// PollInput reads held/just-pressed/just-released key state into
// keys, handling repeat the way the teacher's handleKeyInput does: a
// ticker per key restates a held key as pressed on every repeat tick
// so FX0A-adjacent polling logic never misses a still-down key.
func (w *Window) PollInput(keys *[16]bool) {
	for i, btn := range w.keyMap {
		switch {
		case w.JustReleased(btn):
			if w.keysDown[i] != nil {
				w.keysDown[i].Stop()
				w.keysDown[i] = nil
			}
			keys[i] = false
		case w.JustPressed(btn):
			if w.keysDown[i] == nil {
				w.keysDown[i] = time.NewTicker(keyRepeatDur)
			}
			keys[i] = true
		}

		if w.keysDown[i] == nil {
			continue
		}
		select {
		case <-w.keysDown[i].C:
			keys[i] = true
		default:
		}
	}

	if w.JustPressed(pixelgl.KeyP) {
		w.paused = !w.paused
	}
	if w.JustPressed(pixelgl.KeyBackspace) {
		select {
		case w.rewindQueue <- struct{}{}:
		default:
		}
	}
	if w.JustPressed(pixelgl.KeyEscape) {
		w.SetClosed(true)
	}
}

// Paused reports whether the P key has toggled pause on.
func (w *Window) Paused() bool {
	return w.paused
}

// RewindRequested drains and reports one pending rewind request from
// the Backspace key, the reserved "step history back" control.
func (w *Window) RewindRequested() bool {
	select {
	case <-w.rewindQueue:
		return true
	default:
		return false
	}
}
