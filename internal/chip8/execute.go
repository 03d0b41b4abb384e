package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// EmulateCycle fetches the instruction word at the program counter, decodes
// it, and executes the corresponding state transition. Exactly one
// instruction completes per call, an instruction either executes fully or
// fails without partial updates past the point of the error.
func (m *Machine) EmulateCycle() error {
	if !m.romLoaded {
		return ErrNotLoaded
	}

	word, err := m.fetch()
	if err != nil {
		return err
	}
	op := decodeOpcode(word)

	m.logger.Debug("Executing opcode",
		log.Hex("pc", m.pc),
		log.Hex("opcode", word),
		log.String("instruction", mnemonic(word)))

	if err := m.execute(op); err != nil {
		return fmt.Errorf("executing opcode at 0x%04X: %w", m.pc, err)
	}
	return nil
}

// fetch reads the two instruction bytes at the program counter and combines
// them big-endian into one word. Reading past the memory bounds is an
// explicit failure instead of a wrap-around.
func (m *Machine) fetch() (uint16, error) {
	if int(m.pc)+1 >= MemorySize {
		return 0, fmt.Errorf("%w: instruction fetch at 0x%04X", ErrAddressOutOfRange, m.pc)
	}

	return uint16(m.memory[m.pc])<<8 | uint16(m.memory[m.pc+1]), nil
}

// execute applies the state transition of a decoded instruction.
// The program counter advances by 2 by default, jumps, calls, and returns
// set it explicitly, and conditional skips add another 2.
func (m *Machine) execute(op opcode) error {
	switch op.category {
	case 0x0:
		return m.executeSystem(op)

	case 0x1: // jump
		m.pc = op.nnn
		return nil

	case 0x2: // subroutine call
		return m.executeCall(op)

	case 0x3: // skip if VX == NN
		m.skipIf(m.v[op.x] == op.nn)
		return nil

	case 0x4: // skip if VX != NN
		m.skipIf(m.v[op.x] != op.nn)
		return nil

	case 0x5: // skip if VX == VY
		if op.n != 0 {
			return illegalOpcode(op, true)
		}
		m.skipIf(m.v[op.x] == m.v[op.y])
		return nil

	case 0x6: // set VX = NN
		m.v[op.x] = op.nn
		m.pc += 2
		return nil

	case 0x7: // set VX += NN, VF unaffected
		m.v[op.x] += op.nn
		m.pc += 2
		return nil

	case 0x8:
		return m.executeArithmetic(op)

	case 0x9: // skip if VX != VY
		if op.n != 0 {
			return illegalOpcode(op, true)
		}
		m.skipIf(m.v[op.x] != m.v[op.y])
		return nil

	case 0xA: // set I = NNN
		m.i = op.nnn
		m.pc += 2
		return nil

	case 0xB: // jump with offset
		m.executeJumpOffset(op)
		return nil

	case 0xC: // set VX = random & NN
		m.v[op.x] = m.random.Byte() & op.nn
		m.pc += 2
		return nil

	case 0xD: // draw sprite
		return m.executeDraw(op)

	default:
		return illegalOpcode(op, false)
	}
}

// executeSystem covers the 0x0 instruction family: clear screen and
// subroutine return.
func (m *Machine) executeSystem(op opcode) error {
	switch op.nnn {
	case 0x0E0: // clear screen
		m.display = Frame{}
		m.redraw = true
		m.pc += 2
		return nil

	case 0x0EE: // subroutine return
		address, err := m.pop()
		if err != nil {
			return err
		}
		m.pc = address
		return nil

	default:
		return illegalOpcode(op, true)
	}
}

// executeCall pushes the return address so that a later return lands on the
// instruction immediately after the call site.
func (m *Machine) executeCall(op opcode) error {
	if err := m.push(m.pc + 2); err != nil {
		return err
	}

	m.pc = op.nnn
	return nil
}

// executeArithmetic covers the register-to-register 0x8 instruction family.
// The flag register is computed from the operand values before mutation and
// written after the result, so instructions targeting V[0xF] itself still
// end up holding the flag.
func (m *Machine) executeArithmetic(op opcode) error {
	vx, vy := m.v[op.x], m.v[op.y]

	switch op.n {
	case 0x0: // set VX = VY
		m.v[op.x] = vy

	case 0x1: // set VX |= VY
		m.v[op.x] = vx | vy

	case 0x2: // set VX &= VY
		m.v[op.x] = vx & vy

	case 0x3: // set VX ^= VY
		m.v[op.x] = vx ^ vy

	case 0x4: // set VX += VY, VF = carry
		sum := uint16(vx) + uint16(vy)
		m.v[op.x] = uint8(sum)
		m.v[0xF] = flagValue(sum > 0xFF)

	case 0x5: // set VX -= VY, VF = no borrow
		m.v[op.x] = vx - vy
		m.v[0xF] = flagValue(vx > vy)

	case 0x6: // shift right, VF = shifted out bit
		value := vx
		if m.dialect == DialectOriginal {
			value = vy
		}
		m.v[op.x] = value >> 1
		m.v[0xF] = value & 0x01

	case 0x7: // set VX = VY - VX, VF = no borrow
		m.v[op.x] = vy - vx
		m.v[0xF] = flagValue(vy > vx)

	case 0xE: // shift left, VF = shifted out bit
		value := vx
		if m.dialect == DialectOriginal {
			value = vy
		}
		m.v[op.x] = value << 1
		m.v[0xF] = value >> 7

	default:
		return illegalOpcode(op, true)
	}

	m.pc += 2
	return nil
}

// executeJumpOffset implements the ambiguous jump-with-offset instruction:
// the original dialect adds V[0] to the target, the extended dialect V[x].
func (m *Machine) executeJumpOffset(op opcode) {
	offset := m.v[0]
	if m.dialect == DialectExtended {
		offset = m.v[op.x]
	}

	m.pc = op.nnn + uint16(offset)
}

// executeDraw XORs a sprite of up to 8x15 pixels fetched from memory at the
// index register onto the display. Sprite rows and pixels falling outside
// the display edges are clipped, not wrapped. The flag register reports
// whether any lit pixel was toggled off (collision).
func (m *Machine) executeDraw(op opcode) error {
	xOrigin := int(m.v[op.x]) % DisplayWidth
	yOrigin := int(m.v[op.y]) % DisplayHeight

	// rows falling below the bottom display edge are clipped
	rows := int(op.n)
	if yOrigin+rows > DisplayHeight {
		rows = DisplayHeight - yOrigin
	}

	// a draw either completes or fails before touching any pixel, the
	// sprite memory range is validated up front
	if rows > 0 && int(m.i)+rows > MemorySize {
		return fmt.Errorf("%w: sprite read at 0x%04X", ErrAddressOutOfRange, int(m.i)+rows-1)
	}

	m.v[0xF] = 0

	for row := 0; row < rows; row++ {
		spriteRow := m.memory[int(m.i)+row]

		for bit := 0; bit < 8; bit++ {
			if xOrigin+bit >= DisplayWidth {
				break
			}
			if spriteRow&(0x80>>bit) == 0 {
				continue
			}

			pixel := &m.display[yOrigin+row][xOrigin+bit]
			if *pixel {
				m.v[0xF] = 1
			}
			*pixel = !*pixel
		}
	}

	m.redraw = true
	m.pc += 2
	return nil
}

// skipIf advances the program counter past the current instruction and
// additionally past the next one if the skip condition holds.
func (m *Machine) skipIf(condition bool) {
	if condition {
		m.pc += 2
	}
	m.pc += 2
}

// flagValue converts a condition into the 0/1 flag register encoding.
func flagValue(condition bool) uint8 {
	if condition {
		return 1
	}
	return 0
}

// illegalOpcode builds the error for an instruction word without
// implemented semantics. categoryMatched reports whether the instruction
// family exists and only the sub-case failed to match.
func illegalOpcode(op opcode, categoryMatched bool) error {
	category := -1
	if categoryMatched {
		category = int(op.category)
	}

	return &IllegalOpcodeError{
		Opcode:   op.word,
		Category: category,
		Mnemonic: mnemonic(op.word),
	}
}
