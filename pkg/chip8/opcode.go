// Package chip8 implements the CHIP-8 virtual machine: a 4 KiB memory
// space, sixteen 8-bit registers, a 16-level call stack, a 64x32
// monochrome framebuffer, a 16-key keypad, two 60 Hz countdown timers and
// the fetch-decode-execute engine that drives them.
package chip8

// Opcode is a single 16-bit CHIP-8 instruction word. Every 16-bit value is
// structurally decodable; whether the nibble pattern names a real
// instruction is decided at dispatch.
type Opcode uint16

// Family returns the most significant nibble, which selects one of the 16
// instruction families.
func (op Opcode) Family() uint8 {
	return uint8(op >> 12)
}

// X returns the second nibble, used as the Vx register index.
func (op Opcode) X() uint8 {
	return uint8(op>>8) & 0x0F
}

// Y returns the third nibble, used as the Vy register index.
func (op Opcode) Y() uint8 {
	return uint8(op>>4) & 0x0F
}

// N returns the least significant nibble.
func (op Opcode) N() uint8 {
	return uint8(op) & 0x0F
}

// Addr returns the low 12 bits, the NNN address operand.
func (op Opcode) Addr() uint16 {
	return uint16(op) & 0x0FFF
}

// Imm returns the low byte, the KK immediate operand.
func (op Opcode) Imm() uint8 {
	return uint8(op)
}
