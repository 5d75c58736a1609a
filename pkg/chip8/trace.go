package chip8

import (
	"fmt"
	"strings"
)

// OperandKind classifies a trace operand.
type OperandKind int

const (
	// OperandReg is a V register index.
	OperandReg OperandKind = iota
	// OperandAddr is a 12-bit address.
	OperandAddr
	// OperandByte is an 8-bit immediate.
	OperandByte
	// OperandNibble is a 4-bit immediate.
	OperandNibble
	// OperandIndex is the I register.
	OperandIndex
	// OperandIndexRange is the memory range starting at I ("[I]").
	OperandIndexRange
	// OperandDelayTimer is the DT register.
	OperandDelayTimer
	// OperandSoundTimer is the ST register.
	OperandSoundTimer
	// OperandKey is the blocking key operand of LD Vx, K.
	OperandKey
	// OperandFont is the font sprite operand of LD F, Vx.
	OperandFont
	// OperandBCD is the BCD operand of LD B, Vx.
	OperandBCD
)

// Operand is a single decoded instruction operand.
type Operand struct {
	Kind  OperandKind
	Value uint16
}

func (o Operand) String() string {
	switch o.Kind {
	case OperandReg:
		return fmt.Sprintf("V{0x%X}", o.Value)
	case OperandAddr:
		return fmt.Sprintf("0x%04X", o.Value)
	case OperandByte:
		return fmt.Sprintf("0x%02X", o.Value)
	case OperandNibble:
		return fmt.Sprintf("0x%X", o.Value)
	case OperandIndex:
		return "I"
	case OperandIndexRange:
		return "[I]"
	case OperandDelayTimer:
		return "DT"
	case OperandSoundTimer:
		return "ST"
	case OperandKey:
		return "K"
	case OperandFont:
		return "F"
	case OperandBCD:
		return "B"
	}
	return "?"
}

// Trace describes one executed instruction: where it was fetched from, the
// raw word and the decoded mnemonic with operand values. The engine
// refreshes it after every successful cycle; rendering it as text is the
// debugging host's job.
type Trace struct {
	PC       uint16
	Op       Opcode
	Mnemonic string
	Operands []Operand
}

func (t Trace) String() string {
	if len(t.Operands) == 0 {
		return t.Mnemonic
	}
	parts := make([]string, len(t.Operands))
	for i, o := range t.Operands {
		parts[i] = o.String()
	}
	return t.Mnemonic + " " + strings.Join(parts, ", ")
}

func reg(idx uint8) Operand       { return Operand{Kind: OperandReg, Value: uint16(idx)} }
func addrOp(a uint16) Operand     { return Operand{Kind: OperandAddr, Value: a} }
func byteOp(b uint8) Operand      { return Operand{Kind: OperandByte, Value: uint16(b)} }
func nibbleOp(n uint8) Operand    { return Operand{Kind: OperandNibble, Value: uint16(n)} }
func symOp(k OperandKind) Operand { return Operand{Kind: k} }

var aluNames = map[uint8]string{
	0x0: "LD", 0x1: "OR", 0x2: "AND", 0x3: "XOR",
	0x4: "ADD", 0x5: "SUB", 0x6: "SHR", 0x7: "SUBN", 0xE: "SHL",
}

// Describe decodes an instruction word into a trace descriptor. It reports
// false for nibble patterns that name no instruction.
func Describe(pc uint16, op Opcode) (Trace, bool) {
	t := Trace{PC: pc, Op: op}
	x, y := op.X(), op.Y()

	switch op.Family() {
	case 0x0:
		switch op {
		case 0x00E0:
			t.Mnemonic = "CLS"
		case 0x00EE:
			t.Mnemonic = "RET"
		default:
			return t, false
		}
	case 0x1:
		t.Mnemonic = "JP"
		t.Operands = []Operand{addrOp(op.Addr())}
	case 0x2:
		t.Mnemonic = "CALL"
		t.Operands = []Operand{addrOp(op.Addr())}
	case 0x3:
		t.Mnemonic = "SE"
		t.Operands = []Operand{reg(x), byteOp(op.Imm())}
	case 0x4:
		t.Mnemonic = "SNE"
		t.Operands = []Operand{reg(x), byteOp(op.Imm())}
	case 0x5:
		if op.N() != 0 {
			return t, false
		}
		t.Mnemonic = "SE"
		t.Operands = []Operand{reg(x), reg(y)}
	case 0x6:
		t.Mnemonic = "LD"
		t.Operands = []Operand{reg(x), byteOp(op.Imm())}
	case 0x7:
		t.Mnemonic = "ADD"
		t.Operands = []Operand{reg(x), byteOp(op.Imm())}
	case 0x8:
		name, ok := aluNames[op.N()]
		if !ok {
			return t, false
		}
		t.Mnemonic = name
		t.Operands = []Operand{reg(x), reg(y)}
	case 0x9:
		if op.N() != 0 {
			return t, false
		}
		t.Mnemonic = "SNE"
		t.Operands = []Operand{reg(x), reg(y)}
	case 0xA:
		t.Mnemonic = "LD"
		t.Operands = []Operand{symOp(OperandIndex), addrOp(op.Addr())}
	case 0xB:
		t.Mnemonic = "JP"
		t.Operands = []Operand{reg(0), addrOp(op.Addr())}
	case 0xC:
		t.Mnemonic = "RND"
		t.Operands = []Operand{reg(x), byteOp(op.Imm())}
	case 0xD:
		t.Mnemonic = "DRW"
		t.Operands = []Operand{reg(x), reg(y), nibbleOp(op.N())}
	case 0xE:
		switch op.Imm() {
		case 0x9E:
			t.Mnemonic = "SKP"
		case 0xA1:
			t.Mnemonic = "SKNP"
		default:
			return t, false
		}
		t.Operands = []Operand{reg(x)}
	case 0xF:
		switch op.Imm() {
		case 0x07:
			t.Mnemonic = "LD"
			t.Operands = []Operand{reg(x), symOp(OperandDelayTimer)}
		case 0x0A:
			t.Mnemonic = "LD"
			t.Operands = []Operand{reg(x), symOp(OperandKey)}
		case 0x15:
			t.Mnemonic = "LD"
			t.Operands = []Operand{symOp(OperandDelayTimer), reg(x)}
		case 0x18:
			t.Mnemonic = "LD"
			t.Operands = []Operand{symOp(OperandSoundTimer), reg(x)}
		case 0x1E:
			t.Mnemonic = "ADD"
			t.Operands = []Operand{symOp(OperandIndex), reg(x)}
		case 0x29:
			t.Mnemonic = "LD"
			t.Operands = []Operand{symOp(OperandFont), reg(x)}
		case 0x33:
			t.Mnemonic = "LD"
			t.Operands = []Operand{symOp(OperandBCD), reg(x)}
		case 0x55:
			t.Mnemonic = "LD"
			t.Operands = []Operand{symOp(OperandIndexRange), reg(x)}
		case 0x65:
			t.Mnemonic = "LD"
			t.Operands = []Operand{reg(x), symOp(OperandIndexRange)}
		default:
			return t, false
		}
	}
	return t, true
}
