// Package peripherals holds the host-facing collaborators of the machine.
// The buzzer consumes the sound-timer transition events: Start on the
// zero-to-nonzero edge, Stop when the timer counts out.
package peripherals

import (
	"math"

	"github.com/ebitengine/oto/v3"
)

// Buzzer is a tone output toggled by the sound timer edges.
type Buzzer interface {
	Start()
	Stop()
}

// SilentBuzzer discards the tone. Used by headless frontends and tests.
type SilentBuzzer struct{}

func (SilentBuzzer) Start() {}
func (SilentBuzzer) Stop()  {}

const (
	sampleRate = 44100
	toneHz     = 440
	amplitude  = 0.25
)

// squareWave is an endless mono 16-bit LE square-wave sample stream.
type squareWave struct {
	pos int
}

func (s *squareWave) Read(p []byte) (int, error) {
	const period = sampleRate / toneHz
	n := len(p) / 2 * 2
	for i := 0; i < n; i += 2 {
		sample := int16(-amplitude * math.MaxInt16)
		if s.pos < period/2 {
			sample = int16(amplitude * math.MaxInt16)
		}
		p[i] = byte(uint16(sample))
		p[i+1] = byte(uint16(sample) >> 8)
		s.pos = (s.pos + 1) % period
	}
	return n, nil
}

// OtoBuzzer plays a 440 Hz square wave through the host audio device.
type OtoBuzzer struct {
	player *oto.Player
}

// NewOtoBuzzer opens the host audio device. The returned buzzer is paused
// until the first Start.
func NewOtoBuzzer() (*OtoBuzzer, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, err
	}
	<-ready
	return &OtoBuzzer{player: ctx.NewPlayer(&squareWave{})}, nil
}

func (b *OtoBuzzer) Start() {
	if !b.player.IsPlaying() {
		b.player.Play()
	}
}

func (b *OtoBuzzer) Stop() {
	if b.player.IsPlaying() {
		b.player.Pause()
	}
}

// Close releases the audio player.
func (b *OtoBuzzer) Close() error {
	return b.player.Close()
}
