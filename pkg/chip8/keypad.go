package chip8

// NumKeys is the number of logical keys on the hex keypad.
const NumKeys = 16

// Keypad holds the pressed state of the 16 logical keys 0x0-0xF. The host
// input layer mutates it between cycles; which physical keys map to which
// logical index is entirely the host's business.
type Keypad struct {
	keys [NumKeys]bool
}

// SetKey records the pressed state of a logical key. Indexes above 0xF are
// ignored.
func (k *Keypad) SetKey(idx uint8, pressed bool) {
	if idx < NumKeys {
		k.keys[idx] = pressed
	}
}

// Pressed reports whether a logical key is down.
func (k *Keypad) Pressed(idx uint8) bool {
	return idx < NumKeys && k.keys[idx]
}

// FirstPressed scans keys 0x0..0xF in ascending order and returns the
// first one that is down.
func (k *Keypad) FirstPressed() (uint8, bool) {
	for i := uint8(0); i < NumKeys; i++ {
		if k.keys[i] {
			return i, true
		}
	}
	return 0, false
}
