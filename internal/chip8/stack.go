package chip8

import "fmt"

// push saves a program counter on the call stack. Exceeding the stack depth
// is an explicit failure, the pointer is never clamped or wrapped.
func (m *Machine) push(address uint16) error {
	if int(m.sp) >= StackDepth {
		return fmt.Errorf("%w: more than %d nested calls", ErrStackOverflow, StackDepth)
	}

	m.stack[m.sp] = address
	m.sp++
	return nil
}

// pop removes and returns the most recently saved program counter.
func (m *Machine) pop() (uint16, error) {
	if m.sp == 0 {
		return 0, fmt.Errorf("%w: return without call", ErrStackUnderflow)
	}

	m.sp--
	return m.stack[m.sp], nil
}
