package chip8

import (
	"fmt"
	"strings"
)

// Dialect selects between the two historically divergent interpretations of
// the shift (0x8xy6, 0x8xyE) and jump-with-offset (0xBnnn) instructions.
// All other instructions behave identically in both dialects.
type Dialect int

const (
	// DialectOriginal copies V[y] into V[x] before shifting and adds V[0]
	// to the jump-with-offset target, as the original 1970s interpreter did.
	DialectOriginal Dialect = iota

	// DialectExtended shifts V[x] in place ignoring V[y] and adds V[x] to
	// the jump-with-offset target, as later extended interpreters do.
	DialectExtended
)

// String implements fmt.Stringer.
func (d Dialect) String() string {
	if d == DialectExtended {
		return "extended"
	}
	return "original"
}

// ParseDialect maps a dialect name to its Dialect value.
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(name) {
	case "original":
		return DialectOriginal, nil
	case "extended":
		return DialectExtended, nil
	default:
		return DialectOriginal, fmt.Errorf("unsupported dialect: %s. Valid options: original, extended", name)
	}
}
