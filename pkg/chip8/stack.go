package chip8

import "errors"

// StackDepth is the maximum number of nested subroutine calls.
const StackDepth = 16

var (
	// ErrStackOverflow is returned by Call at the maximum nesting depth.
	ErrStackOverflow = errors.New("call stack overflow")
	// ErrEmptyStack is returned by Ret when no call is outstanding.
	ErrEmptyStack = errors.New("return with empty call stack")
)

// Stack is the fixed 16-level LIFO of subroutine return addresses.
type Stack struct {
	addrs [StackDepth]uint16
	sp    int
}

// Call pushes a return address.
func (s *Stack) Call(ret uint16) error {
	if s.sp >= StackDepth {
		return ErrStackOverflow
	}
	s.addrs[s.sp] = ret
	s.sp++
	return nil
}

// Ret pops and returns the most recent return address. Underflow is always
// surfaced as an error, never papered over with a default address.
func (s *Stack) Ret() (uint16, error) {
	if s.sp == 0 {
		return 0, ErrEmptyStack
	}
	s.sp--
	return s.addrs[s.sp], nil
}

// Depth returns the number of outstanding calls.
func (s *Stack) Depth() int {
	return s.sp
}
