// Package options contains the program options.
package options

// Program options of the emulator.
type Program struct {
	Input string // ROM file to load

	Stepping bool   // pause after every cycle for confirmation
	Seed     uint64 // seed for the deterministic random source
	Dialect  string // interpretation of the ambiguous legacy opcodes

	Debug bool // enable debug logging
	Trace bool // enable trace logging
	Quiet bool // only log errors
}
