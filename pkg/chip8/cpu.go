package chip8

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrInvalidOpcode is returned when a fetched word matches no instruction.
var ErrInvalidOpcode = errors.New("invalid opcode")

// RandByteFunc supplies the random byte for the RND instruction.
type RandByteFunc func() uint8

// RandSource returns a deterministic byte generator seeded with seed.
func RandSource(seed int64) RandByteFunc {
	r := rand.New(rand.NewSource(seed))
	return func() uint8 {
		return uint8(r.Intn(256))
	}
}

// CPU is the execution engine. It exclusively owns one instance of every
// machine component and mutates them one instruction at a time; the driver
// loop feeds keypad state between cycles, ticks the timers at 60 Hz and
// reads the display when it wants a frame.
type CPU struct {
	// V are the sixteen general registers. V[0xF] is the flag register,
	// freely overwritten by arithmetic and draw instructions.
	V  [16]uint8
	I  uint16
	PC uint16

	Memory  *Memory
	Stack   *Stack
	Display *Display
	Keypad  *Keypad
	Timers  *Timers

	// Rand feeds the RND instruction. Swap it for a fixed-seed source to
	// make execution deterministic.
	Rand RandByteFunc

	// LastTrace describes the most recently executed instruction.
	LastTrace Trace
}

// New returns a powered-on machine: zeroed state, fonts preloaded, PC at
// the program region base.
func New() *CPU {
	return &CPU{
		PC:      ProgramBase,
		Memory:  NewMemory(),
		Stack:   &Stack{},
		Display: &Display{},
		Keypad:  &Keypad{},
		Timers:  &Timers{},
		Rand:    RandSource(time.Now().UnixNano()),
	}
}

// LoadProgram copies a ROM image into the program region and points the
// program counter at its first instruction.
func (c *CPU) LoadProgram(program []byte) error {
	if err := c.Memory.LoadProgram(program); err != nil {
		return err
	}
	c.PC = ProgramBase
	return nil
}

func invalidOpcode(pc uint16, op Opcode) error {
	return fmt.Errorf("0x%04X at 0x%04X: %w", uint16(op), pc, ErrInvalidOpcode)
}

// Step runs a single fetch-decode-execute cycle. Errors abort the cycle
// and are surfaced to the driver, which alone decides whether to halt;
// nothing is retried internally. The key-wait instruction is the one
// designed repeat: it rewinds the program counter so the next cycle
// re-issues it until a key is down.
func (c *CPU) Step() error {
	op, err := c.Memory.ReadOpcode(c.PC)
	if err != nil {
		return err
	}
	fetchPC := c.PC
	c.PC += 2

	x, y := op.X(), op.Y()

	switch op.Family() {
	case 0x0:
		switch op {
		case 0x00E0: // CLS
			c.Display.Clear()
		case 0x00EE: // RET
			ret, err := c.Stack.Ret()
			if err != nil {
				return err
			}
			c.PC = ret
		default:
			return invalidOpcode(fetchPC, op)
		}
	case 0x1: // JP addr
		c.PC = op.Addr()
	case 0x2: // CALL addr
		if err := c.Stack.Call(c.PC); err != nil {
			return err
		}
		c.PC = op.Addr()
	case 0x3: // SE Vx, byte
		if c.V[x] == op.Imm() {
			c.PC += 2
		}
	case 0x4: // SNE Vx, byte
		if c.V[x] != op.Imm() {
			c.PC += 2
		}
	case 0x5: // SE Vx, Vy
		if op.N() != 0 {
			return invalidOpcode(fetchPC, op)
		}
		if c.V[x] == c.V[y] {
			c.PC += 2
		}
	case 0x6: // LD Vx, byte
		c.V[x] = op.Imm()
	case 0x7: // ADD Vx, byte (no flag change)
		c.V[x] += op.Imm()
	case 0x8:
		if err := c.stepALU(fetchPC, op, x, y); err != nil {
			return err
		}
	case 0x9: // SNE Vx, Vy
		if op.N() != 0 {
			return invalidOpcode(fetchPC, op)
		}
		if c.V[x] != c.V[y] {
			c.PC += 2
		}
	case 0xA: // LD I, addr
		c.I = op.Addr()
	case 0xB: // JP V0, addr
		// The target is not pre-validated; a jump out of the program
		// region fails at the next fetch.
		c.PC = op.Addr() + uint16(c.V[0])
	case 0xC: // RND Vx, byte
		c.V[x] = c.Rand() & op.Imm()
	case 0xD: // DRW Vx, Vy, nibble
		sprite, err := c.Memory.ReadSprite(c.I, op.N())
		if err != nil {
			return err
		}
		c.V[0xF] = 0
		if c.Display.DrawSprite(c.V[x], c.V[y], sprite) {
			c.V[0xF] = 1
		}
	case 0xE:
		switch op.Imm() {
		case 0x9E: // SKP Vx
			if c.Keypad.Pressed(c.V[x]) {
				c.PC += 2
			}
		case 0xA1: // SKNP Vx
			if !c.Keypad.Pressed(c.V[x]) {
				c.PC += 2
			}
		default:
			return invalidOpcode(fetchPC, op)
		}
	case 0xF:
		if err := c.stepMisc(fetchPC, op, x); err != nil {
			return err
		}
	}

	if t, ok := Describe(fetchPC, op); ok {
		c.LastTrace = t
	}
	return nil
}

// stepALU executes the 0x8 family: register-to-register moves, bitwise
// ops, flag-bearing arithmetic and shifts. Flags are computed from the
// operand values before the result lands in Vx, so Vx == VF still behaves.
func (c *CPU) stepALU(pc uint16, op Opcode, x, y uint8) error {
	switch op.N() {
	case 0x0: // LD Vx, Vy
		c.V[x] = c.V[y]
	case 0x1: // OR
		c.V[x] |= c.V[y]
	case 0x2: // AND
		c.V[x] &= c.V[y]
	case 0x3: // XOR
		c.V[x] ^= c.V[y]
	case 0x4: // ADD Vx, Vy with carry
		sum := uint16(c.V[x]) + uint16(c.V[y])
		c.V[x] = uint8(sum)
		c.V[0xF] = uint8(sum >> 8)
	case 0x5: // SUB Vx, Vy
		flag := uint8(0)
		if c.V[x] >= c.V[y] {
			flag = 1
		}
		c.V[x] -= c.V[y]
		c.V[0xF] = flag
	case 0x6: // SHR Vx
		flag := c.V[x] & 0x01
		c.V[x] >>= 1
		c.V[0xF] = flag
	case 0x7: // SUBN Vx, Vy
		flag := uint8(0)
		if c.V[y] >= c.V[x] {
			flag = 1
		}
		c.V[x] = c.V[y] - c.V[x]
		c.V[0xF] = flag
	case 0xE: // SHL Vx
		flag := c.V[x] >> 7
		c.V[x] <<= 1
		c.V[0xF] = flag
	default:
		return invalidOpcode(pc, op)
	}
	return nil
}

// stepMisc executes the 0xF family: timer transfers, key wait, index
// arithmetic, font lookup, BCD and the register dump/load block moves.
// The dump/load range is inclusive, V0 through Vx.
func (c *CPU) stepMisc(pc uint16, op Opcode, x uint8) error {
	switch op.Imm() {
	case 0x07: // LD Vx, DT
		c.V[x] = c.Timers.Delay
	case 0x0A: // LD Vx, K
		key, ok := c.Keypad.FirstPressed()
		if !ok {
			// Cooperative busy-wait: undo the PC advance so the next
			// cycle decodes this instruction again.
			c.PC -= 2
			return nil
		}
		c.V[x] = key
	case 0x15: // LD DT, Vx
		c.Timers.Delay = c.V[x]
	case 0x18: // LD ST, Vx
		c.Timers.SetSound(c.V[x])
	case 0x1E: // ADD I, Vx
		c.I += uint16(c.V[x])
	case 0x29: // LD F, Vx
		c.I = c.Memory.FontAddr(c.V[x])
	case 0x33: // LD B, Vx
		// Digits are stored independently; a fault mid-way leaves the
		// earlier digits committed, matching the hardware semantics.
		v := c.V[x]
		if err := c.Memory.WriteByte(c.I, v/100); err != nil {
			return err
		}
		if err := c.Memory.WriteByte(c.I+1, v/10%10); err != nil {
			return err
		}
		return c.Memory.WriteByte(c.I+2, v%10)
	case 0x55: // LD [I], Vx
		for i := uint8(0); i <= x; i++ {
			if err := c.Memory.WriteByte(c.I+uint16(i), c.V[i]); err != nil {
				return err
			}
		}
	case 0x65: // LD Vx, [I]
		for i := uint8(0); i <= x; i++ {
			b, err := c.Memory.ReadByte(c.I + uint16(i))
			if err != nil {
				return err
			}
			c.V[i] = b
		}
	default:
		return invalidOpcode(pc, op)
	}
	return nil
}

// String returns a one-line summary of the machine state.
func (c *CPU) String() string {
	return fmt.Sprintf("chip8{V: [% 02X], I: 0x%04X, PC: 0x%04X, "+
		"depth: %d, DT: 0x%02X, ST: 0x%02X}",
		c.V, c.I, c.PC, c.Stack.Depth(), c.Timers.Delay, c.Timers.Sound)
}
