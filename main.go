package main

import (
	"github.com/faiface/pixel/pixelgl"

	"github.com/bradford-hamilton/chip8vm/cmd"
)

func main() {
	// pixelgl needs access to the main thread, so cobra's Execute runs
	// inside pixelgl.Run the same way the teacher's runMain did.
	pixelgl.Run(cmd.Execute)
}
