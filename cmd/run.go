package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bradford-hamilton/chip8vm/internal/audio"
	"github.com/bradford-hamilton/chip8vm/internal/chip8"
	"github.com/bradford-hamilton/chip8vm/internal/display"
)

var (
	targetSpeed          int
	scale                float64
	shiftUsesVY          bool
	jumpUsesVX           bool
	loadStoreIncrementsI bool
)

// runCmd runs the chip8vm emulator against a ROM file until the window
// is closed or the program executes a 00FD (exit) instruction.
var runCmd = &cobra.Command{
	Use:   "run `path/to/rom`",
	Short: "run the chip8vm emulator",
	Args:  cobra.ExactArgs(1),
	Run:   runChip8vm,
}

func init() {
	runCmd.Flags().IntVar(&targetSpeed, "target-speed", 500, "instructions executed per second")
	runCmd.Flags().Float64Var(&scale, "scale", 10, "integer pixel scale for the display window")
	runCmd.Flags().BoolVar(&shiftUsesVY, "shift-uses-vy", false, "8XY6/8XYE read their operand from VY instead of VX")
	runCmd.Flags().BoolVar(&jumpUsesVX, "jump-uses-vx", false, "BNNN adds VX (by opcode nibble) instead of V0")
	runCmd.Flags().BoolVar(&loadStoreIncrementsI, "load-store-increments-i", false, "FX55/FX65 leave I at I+X+1 instead of unmodified")
}

func runChip8vm(cmd *cobra.Command, args []string) {
	pathToROM := args[0]

	cfg := chip8.DefaultConfig()
	cfg.TargetSpeed = targetSpeed
	cfg.DefaultScale = int(scale)
	cfg.ShiftUsesVY = shiftUsesVY
	cfg.JumpUsesVX = jumpUsesVX
	cfg.LoadStoreIncrementsI = loadStoreIncrementsI

	m := chip8.NewMachine(cfg, nil)
	if err := m.LoadROMFile(pathToROM); err != nil {
		fmt.Printf("\nerror loading rom: %v\n", err)
		os.Exit(1)
	}

	win, err := display.NewWindow(scale)
	if err != nil {
		fmt.Printf("\nerror creating window: %v\n", err)
		os.Exit(1)
	}

	tone, err := audio.NewTone()
	if err != nil {
		fmt.Printf("\nerror initializing audio: %v\n", err)
		os.Exit(1)
	}

	loop := chip8.NewStepLoop(m, win, tone)

	if err := loop.Run(context.Background()); err != nil {
		fmt.Printf("\nerror running chip8vm: %v\n", err)
		os.Exit(1)
	}
}
