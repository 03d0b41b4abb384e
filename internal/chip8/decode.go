package chip8

import (
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// opcode is a single decoded 16-bit instruction word with its positional
// bit-fields. All decoding is positional, not data-dependent.
type opcode struct {
	word     uint16
	category uint8  // bits 15-12, selects the instruction family
	x        uint8  // bits 11-8, register index operand 1
	y        uint8  // bits 7-4, register index operand 2
	n        uint8  // bits 3-0, 4-bit immediate
	nn       uint8  // bits 7-0, 8-bit immediate
	nnn      uint16 // bits 11-0, 12-bit address/immediate
}

// decodeOpcode extracts all positional bit-fields from an instruction word.
func decodeOpcode(word uint16) opcode {
	return opcode{
		word:     word,
		category: uint8(word >> 12),
		x:        uint8((word & 0x0F00) >> 8),
		y:        uint8((word & 0x00F0) >> 4),
		n:        uint8(word & 0x000F),
		nn:       uint8(word & 0x00FF),
		nnn:      word & 0x0FFF,
	}
}

// mnemonic resolves the assembler name of an instruction word using the
// CHIP-8 instruction tables. It returns an empty string for bit patterns
// that match no known instruction.
func mnemonic(word uint16) string {
	firstNibble := (word & 0xF000) >> 12
	opcodes := chip8.Opcodes[int(firstNibble)]
	for _, op := range opcodes {
		if op.Info.Mask&word == op.Info.Value {
			if op.Instruction == nil {
				return ""
			}
			return op.Instruction.Name
		}
	}
	return ""
}
