// Console frontend: runs a ROM headless for a bounded number of cycles,
// or prints its disassembly listing. Timers tick once for every batch of
// CPU cycles, mirroring the 60 Hz cadence of the desktop frontend.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/retrogolib/log"

	"github.com/paulomarruda/ziggy8/pkg/chip8"
	"github.com/paulomarruda/ziggy8/pkg/disasm"
)

// renderScreen draws the framebuffer as text, one rune per pixel.
func renderScreen(d *chip8.Display) string {
	var sb strings.Builder
	for y := 0; y < chip8.DisplayHeight; y++ {
		for x := 0; x < chip8.DisplayWidth; x++ {
			if d.PixelAt(x, y) {
				sb.WriteRune('█')
			} else {
				sb.WriteRune(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func main() {
	listing := flag.Bool("disasm", false, "print the ROM disassembly instead of running it")
	cycles := flag.Int("cycles", 100000, "number of CPU cycles to run")
	perTick := flag.Int("cycles-per-tick", 10, "CPU cycles per timer tick")
	screen := flag.Bool("screen", false, "dump the framebuffer as text after the run")
	trace := flag.Bool("trace", false, "log each executed instruction")
	seed := flag.Int64("seed", 0, "seed for the RND byte source (0 = time-based)")
	flag.Parse()

	cfg := log.DefaultConfig()
	if *trace {
		cfg.Level = log.DebugLevel
	}
	logger := log.NewWithConfig(cfg)

	if flag.NArg() != 1 {
		logger.Fatal("usage: console [flags] <rom>")
	}
	rom, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		logger.Fatal("reading ROM", log.Err(err))
	}

	if *listing {
		if err := disasm.Fprint(os.Stdout, rom); err != nil {
			logger.Fatal("writing listing", log.Err(err))
		}
		return
	}

	vm := chip8.New()
	if *seed != 0 {
		vm.Rand = chip8.RandSource(*seed)
	}
	if err := vm.LoadProgram(rom); err != nil {
		logger.Fatal("loading ROM", log.Err(err))
	}

	for i := 0; i < *cycles; i++ {
		if err := vm.Step(); err != nil {
			// Headless policy: any VM error ends the run.
			logger.Error("emulation stopped", log.Err(err),
				log.String("state", vm.String()))
			return
		}
		if *trace {
			logger.Debug("exec", log.String("instr", vm.LastTrace.String()))
		}
		if (i+1)%*perTick == 0 {
			vm.Timers.Tick()
		}
	}

	logger.Info("run finished", log.String("state", vm.String()))
	if *screen {
		fmt.Print(renderScreen(vm.Display))
	}
}
