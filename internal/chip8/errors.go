package chip8

import (
	"errors"
	"fmt"
)

// Error kinds reported by the machine. All of them are unrecoverable at the
// point of detection: the interpreter does not skip or patch around a
// malformed program, every error aborts the run.
var (
	// ErrRomIO indicates that the ROM file could not be read.
	ErrRomIO = errors.New("reading ROM")

	// ErrRomTooLarge indicates a ROM that does not fit into the program space.
	ErrRomTooLarge = errors.New("ROM exceeds program space")

	// ErrNotLoaded indicates that a cycle was requested before a ROM load.
	ErrNotLoaded = errors.New("no ROM loaded")

	// ErrStackOverflow indicates a subroutine call beyond the supported
	// stack depth.
	ErrStackOverflow = errors.New("stack overflow")

	// ErrStackUnderflow indicates a subroutine return on an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")

	// ErrAddressOutOfRange indicates a memory access past the 4KB address
	// space.
	ErrAddressOutOfRange = errors.New("address out of range")

	// ErrInvalidStepInput indicates a single-step confirmation that was
	// neither advance nor terminate.
	ErrInvalidStepInput = errors.New("invalid step input")
)

// IllegalOpcodeError is returned when a fetched instruction word matches no
// implemented instruction. Category is the top nibble of the opcode if the
// instruction family matched but no sub-case did, -1 otherwise. Mnemonic is
// set when the instruction tables recognize the pattern, marking an
// instruction that exists in the architecture but is not part of the
// supported subset.
type IllegalOpcodeError struct {
	Opcode   uint16
	Category int
	Mnemonic string
}

func (e *IllegalOpcodeError) Error() string {
	switch {
	case e.Mnemonic != "":
		return fmt.Sprintf("illegal opcode 0x%04X: unsupported instruction %s", e.Opcode, e.Mnemonic)
	case e.Category >= 0:
		return fmt.Sprintf("illegal opcode 0x%04X in category 0x%X", e.Opcode, e.Category)
	default:
		return fmt.Sprintf("illegal opcode 0x%04X", e.Opcode)
	}
}

// Is makes all illegal opcode errors match each other for errors.Is,
// independent of the offending opcode.
func (e *IllegalOpcodeError) Is(err error) bool {
	_, ok := err.(*IllegalOpcodeError)
	return ok
}
