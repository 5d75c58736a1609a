package chip8

import "testing"

func TestOpcodeFields(t *testing.T) {
	op := Opcode(0x1234)
	if op.Family() != 0x1 || op.X() != 0x2 || op.Y() != 0x3 || op.N() != 0x4 {
		t.Errorf("fields of 0x1234: got %X %X %X %X",
			op.Family(), op.X(), op.Y(), op.N())
	}
	if op.Addr() != 0x0234 {
		t.Errorf("Addr of 0x1234: expected 0x0234, got 0x%04X", op.Addr())
	}
	if op.Imm() != 0x34 {
		t.Errorf("Imm of 0x1234: expected 0x34, got 0x%02X", op.Imm())
	}
}

func TestOpcodeRoundTrip(t *testing.T) {
	// Reassembling the four nibbles must reproduce the word, for every word.
	for w := 0; w <= 0xFFFF; w++ {
		op := Opcode(w)
		back := uint16(op.Family())<<12 | uint16(op.X())<<8 |
			uint16(op.Y())<<4 | uint16(op.N())
		if back != uint16(w) {
			t.Fatalf("round trip of 0x%04X: got 0x%04X", w, back)
		}
	}
}
