// Package chip8 implements the CHIP-8 virtual machine core: the machine
// state, the instruction interpreter, and the timed execution loop.
// CHIP-8 is an interpreted programming language from the 1970s designed
// for simple games.
package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// CHIP-8 memory layout constants.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x04F: built-in font glyphs (80 bytes)
//	0x050-0x1FF: reserved interpreter area
//	0x200-0xFFF: user program space (3584 bytes)
const (
	// MemorySize is the total addressable memory in bytes.
	MemorySize = 4096

	// ProgramStart is the memory address where CHIP-8 programs begin execution.
	// Programs are stored starting at offset 0x0 in ROM files but loaded and
	// executed at address 0x200 in the virtual machine's memory space.
	ProgramStart = 0x200

	// MaxProgramSize is the number of bytes available for user programs.
	MaxProgramSize = MemorySize - ProgramStart

	// StackDepth is the number of nested subroutine calls the machine supports.
	StackDepth = 16

	registerCount = 16
)

// Machine is the complete emulated machine state. It has exactly one writer
// at any instant: the loader and the interpreter methods mutate it, nothing
// else does. The wall-clock and randomness collaborators are injected so
// that runs are reproducible.
type Machine struct {
	logger  *log.Logger
	random  RandomSource
	dialect Dialect

	memory  [MemorySize]byte
	v       [registerCount]uint8
	i       uint16
	pc      uint16
	display Frame
	stack   [StackDepth]uint16
	sp      uint8

	delayTimer uint8
	soundTimer uint8

	romLoaded bool
	redraw    bool
}

// New creates a machine with memory, registers, stack, and display zeroed,
// the font glyphs preloaded, and the program counter at ProgramStart.
// A nil random source falls back to a source seeded with DefaultSeed.
func New(logger *log.Logger, random RandomSource) *Machine {
	return NewWithDialect(logger, random, DialectOriginal)
}

// NewWithDialect creates a machine that interprets the ambiguous legacy
// instructions according to the given dialect.
func NewWithDialect(logger *log.Logger, random RandomSource, dialect Dialect) *Machine {
	if random == nil {
		random = NewRandomSource(DefaultSeed)
	}

	m := &Machine{
		logger:  logger,
		random:  random,
		dialect: dialect,
	}
	m.Reset()
	return m
}

// Reset returns the machine to its freshly constructed state: memory,
// registers, stack, display, and timers zeroed, the font reloaded, and the
// program counter back at ProgramStart. The random source and dialect are
// kept.
func (m *Machine) Reset() {
	m.memory = [MemorySize]byte{}
	m.v = [registerCount]uint8{}
	m.i = 0
	m.pc = ProgramStart
	m.display = Frame{}
	m.stack = [StackDepth]uint16{}
	m.sp = 0
	m.delayTimer = 0
	m.soundTimer = 0
	m.romLoaded = false
	m.redraw = false

	copy(m.memory[FontOffset:], fontset[:])
}

// LoadROM copies a program verbatim into memory at ProgramStart and marks
// the machine as loaded. Registers, stack, and display are left untouched,
// loading does not reset a machine.
func (m *Machine) LoadROM(rom []byte) error {
	if len(rom) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes do not fit into %d bytes of program space",
			ErrRomTooLarge, len(rom), MaxProgramSize)
	}

	copy(m.memory[ProgramStart:], rom)
	m.romLoaded = true

	m.logger.Debug("ROM loaded",
		log.Int("bytes", len(rom)),
		log.Hex("start", uint16(ProgramStart)))
	return nil
}

// Loaded reports whether a ROM has been loaded.
func (m *Machine) Loaded() bool {
	return m.romLoaded
}

// Frame returns a snapshot of the display.
func (m *Machine) Frame() Frame {
	return m.display
}

// RedrawPending reports whether a cycle changed the display since the last
// ConsumeRedraw.
func (m *Machine) RedrawPending() bool {
	return m.redraw
}

// ConsumeRedraw clears the redraw flag and returns its previous value.
func (m *Machine) ConsumeRedraw() bool {
	redraw := m.redraw
	m.redraw = false
	return redraw
}

// DelayTimer returns the current delay timer value.
func (m *Machine) DelayTimer() uint8 {
	return m.delayTimer
}

// SoundTimer returns the current sound timer value.
func (m *Machine) SoundTimer() uint8 {
	return m.soundTimer
}

// TickTimers decrements both countdown timers, clamping at zero.
// The scheduler drives this at 60 Hz.
func (m *Machine) TickTimers() {
	if m.delayTimer > 0 {
		m.delayTimer--
	}
	if m.soundTimer > 0 {
		m.soundTimer--
	}
}

// String returns a one-line register summary for diagnostics, the memory
// and display contents are omitted for length.
func (m *Machine) String() string {
	return fmt.Sprintf("pc=0x%04X i=0x%04X sp=%d delay=%d sound=%d v=%v",
		m.pc, m.i, m.sp, m.delayTimer, m.soundTimer, m.v)
}

// DisplayString renders the display as one line per row, lit pixels as '1'
// and dark pixels as '0'.
func (m *Machine) DisplayString() string {
	return m.display.String()
}
