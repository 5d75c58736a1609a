package chip8

import (
	"errors"
	"fmt"
)

const (
	// MemorySize is the full addressable space.
	MemorySize = 0x1000
	// FontBase is where the built-in hex digit sprites live.
	FontBase = 0x000
	// ProgramBase is where loaded programs start. Addresses below it are
	// reserved for the interpreter and are read-only to programs.
	ProgramBase = 0x200
	// SpriteMaxLen is the longest sprite a single draw can read.
	SpriteMaxLen = 15

	fontGlyphSize = 5
)

var (
	// ErrOutOfBounds is returned for reads outside the address space and
	// for writes outside the program region.
	ErrOutOfBounds = errors.New("memory access out of bounds")
	// ErrOutOfMemory is returned when a program does not fit in the
	// program region.
	ErrOutOfMemory = errors.New("program exceeds memory capacity")
)

// fontSprites holds the 5-byte bitmaps for the hex digits 0-F.
var fontSprites = [16 * fontGlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory is the 4 KiB addressable store. The font region is written once
// at construction; instruction-driven writes are confined to the program
// region.
type Memory struct {
	bytes [MemorySize]byte
}

// NewMemory returns a zeroed memory with the font sprites preloaded.
func NewMemory() *Memory {
	m := &Memory{}
	copy(m.bytes[FontBase:], fontSprites[:])
	return m
}

// ReadByte reads a single byte from anywhere in the address space.
func (m *Memory) ReadByte(addr uint16) (byte, error) {
	if addr >= MemorySize {
		return 0, fmt.Errorf("read 0x%04X: %w", addr, ErrOutOfBounds)
	}
	return m.bytes[addr], nil
}

// WriteByte writes a single byte. Writes below ProgramBase would clobber
// the font or reserved region and are rejected.
func (m *Memory) WriteByte(addr uint16, val byte) error {
	if addr < ProgramBase || addr >= MemorySize {
		return fmt.Errorf("write 0x%04X: %w", addr, ErrOutOfBounds)
	}
	m.bytes[addr] = val
	return nil
}

// ReadOpcode reads the big-endian instruction word at pc.
func (m *Memory) ReadOpcode(pc uint16) (Opcode, error) {
	if pc >= MemorySize-1 {
		return 0, fmt.Errorf("fetch 0x%04X: %w", pc, ErrOutOfBounds)
	}
	return Opcode(m.bytes[pc])<<8 | Opcode(m.bytes[pc+1]), nil
}

// ReadSprite returns a read-only view of length consecutive bytes starting
// at addr. The caller must not retain the slice across writes.
func (m *Memory) ReadSprite(addr uint16, length uint8) ([]byte, error) {
	if length > SpriteMaxLen {
		return nil, fmt.Errorf("sprite length %d: %w", length, ErrOutOfBounds)
	}
	end := uint32(addr) + uint32(length)
	if end > MemorySize {
		return nil, fmt.Errorf("sprite 0x%04X+%d: %w", addr, length, ErrOutOfBounds)
	}
	return m.bytes[addr:end], nil
}

// LoadProgram copies a program image into the program region.
func (m *Memory) LoadProgram(program []byte) error {
	if len(program) > MemorySize-ProgramBase {
		return fmt.Errorf("program size %d, capacity %d: %w",
			len(program), MemorySize-ProgramBase, ErrOutOfMemory)
	}
	copy(m.bytes[ProgramBase:], program)
	return nil
}

// FontAddr returns the address of the 5-byte sprite for a hex digit.
func (m *Memory) FontAddr(digit uint8) uint16 {
	return FontBase + fontGlyphSize*uint16(digit&0x0F)
}
