// Desktop frontend: an ebiten window that drives the machine at a fixed
// number of CPU cycles per 60 Hz frame, maps the host keyboard onto the
// hex keypad, paints the scaled framebuffer and toggles the buzzer from
// the sound-timer edges.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/image/font/basicfont"

	"github.com/paulomarruda/ziggy8/pkg/chip8"
	"github.com/paulomarruda/ziggy8/pkg/peripherals"
)

// keyMap assigns the conventional host layout to the logical keys:
//
//	1 2 3 4        1 2 3 C
//	Q W E R   ->   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
var keyMap = [chip8.NumKeys]ebiten.Key{
	0x0: ebiten.KeyX,
	0x1: ebiten.Key1,
	0x2: ebiten.Key2,
	0x3: ebiten.Key3,
	0x4: ebiten.KeyQ,
	0x5: ebiten.KeyW,
	0x6: ebiten.KeyE,
	0x7: ebiten.KeyA,
	0x8: ebiten.KeyS,
	0x9: ebiten.KeyD,
	0xA: ebiten.KeyZ,
	0xB: ebiten.KeyC,
	0xC: ebiten.Key4,
	0xD: ebiten.KeyR,
	0xE: ebiten.KeyF,
	0xF: ebiten.KeyV,
}

type Game struct {
	vm     *chip8.CPU
	logger *log.Logger

	frame  *ebiten.Image // reused 64x32 canvas
	pixels []byte        // RGBA staging buffer

	cyclesPerTick int
	scale         int
	trace         bool
}

func (g *Game) Update() error {
	// Keypad state is fed strictly between cycles.
	for idx, key := range keyMap {
		g.vm.Keypad.SetKey(uint8(idx), ebiten.IsKeyPressed(key))
	}

	for i := 0; i < g.cyclesPerTick; i++ {
		if err := g.vm.Step(); err != nil {
			// The driver is the sole halt decision point; the desktop
			// frontend stops on any VM error.
			return err
		}
		if g.trace {
			g.logger.Debug("exec", log.String("instr", g.vm.LastTrace.String()))
		}
	}
	g.vm.Timers.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		g.frame = ebiten.NewImage(chip8.DisplayWidth, chip8.DisplayHeight)
		g.pixels = make([]byte, chip8.DisplayWidth*chip8.DisplayHeight*4)
	}

	i := 0
	for y := 0; y < chip8.DisplayHeight; y++ {
		for x := 0; x < chip8.DisplayWidth; x++ {
			var v byte
			if g.vm.Display.PixelAt(x, y) {
				v = 0xFF
			}
			g.pixels[i] = v
			g.pixels[i+1] = v
			g.pixels[i+2] = v
			g.pixels[i+3] = 0xFF
			i += 4
		}
	}
	g.frame.WritePixels(g.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.frame, op)

	if g.trace {
		text.Draw(screen, g.vm.LastTrace.String(), basicfont.Face7x13,
			4, chip8.DisplayHeight*g.scale-6, color.RGBA{G: 0xFF, A: 0xFF})
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return chip8.DisplayWidth * g.scale, chip8.DisplayHeight * g.scale
}

func newLogger(debug bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	}
	return log.NewWithConfig(cfg)
}

func main() {
	cycles := flag.Int("cycles", 10, "CPU cycles per 60 Hz tick")
	scale := flag.Int("scale", 10, "framebuffer scale factor")
	trace := flag.Bool("trace", false, "log each executed instruction and overlay the last one")
	mute := flag.Bool("mute", false, "disable the buzzer")
	seed := flag.Int64("seed", 0, "seed for the RND byte source (0 = time-based)")
	flag.Parse()

	logger := newLogger(*trace)
	if flag.NArg() != 1 {
		logger.Fatal("usage: desktop [flags] <rom>")
	}
	romPath := flag.Arg(0)

	rom, err := os.ReadFile(romPath)
	if err != nil {
		logger.Fatal("reading ROM", log.Err(err))
	}

	vm := chip8.New()
	if *seed != 0 {
		vm.Rand = chip8.RandSource(*seed)
	}
	if err := vm.LoadProgram(rom); err != nil {
		logger.Fatal("loading ROM", log.Err(err))
	}
	logger.Info("loaded ROM",
		log.String("path", romPath),
		log.String("size", fmt.Sprintf("%d bytes", len(rom))))

	var buzzer peripherals.Buzzer = peripherals.SilentBuzzer{}
	if !*mute {
		b, err := peripherals.NewOtoBuzzer()
		if err != nil {
			logger.Warn("audio unavailable", log.Err(err))
		} else {
			buzzer = b
		}
	}
	vm.Timers.OnSoundStart = buzzer.Start
	vm.Timers.OnSoundStop = buzzer.Stop

	ebiten.SetWindowSize(chip8.DisplayWidth*(*scale), chip8.DisplayHeight*(*scale))
	ebiten.SetWindowTitle("ziggy8")

	game := &Game{
		vm:            vm,
		logger:        logger,
		cyclesPerTick: *cycles,
		scale:         *scale,
		trace:         *trace,
	}
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("emulation stopped", log.Err(err))
	}
}
