package chip8

// Timers holds the delay and sound countdown registers. Both decrement by
// one per external Tick while positive and floor at zero; the tick cadence
// (conventionally 60 Hz) is the driver's responsibility and is independent
// of how many CPU cycles run per tick.
type Timers struct {
	Delay uint8
	Sound uint8

	// OnSoundStart fires when the sound timer goes from zero to nonzero,
	// OnSoundStop when it counts back down to zero. A host may start and
	// stop tone playback on these edges. Either may be nil.
	OnSoundStart func()
	OnSoundStop  func()
}

// Tick advances both timers by one external tick.
func (t *Timers) Tick() {
	if t.Delay > 0 {
		t.Delay--
	}
	if t.Sound > 0 {
		t.Sound--
		if t.Sound == 0 && t.OnSoundStop != nil {
			t.OnSoundStop()
		}
	}
}

// SetSound loads the sound timer, firing OnSoundStart on a zero to nonzero
// transition and OnSoundStop when loading zero over a running tone.
func (t *Timers) SetSound(val uint8) {
	prev := t.Sound
	t.Sound = val
	switch {
	case prev == 0 && val > 0:
		if t.OnSoundStart != nil {
			t.OnSoundStart()
		}
	case prev > 0 && val == 0:
		if t.OnSoundStop != nil {
			t.OnSoundStop()
		}
	}
}
