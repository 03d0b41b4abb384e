package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestParseDialect(t *testing.T) {
	tests := []struct {
		name  string
		input string

		expected    Dialect
		expectError bool
	}{
		{"original", "original", DialectOriginal, false},
		{"extended", "extended", DialectExtended, false},
		{"mixed case", "Original", DialectOriginal, false},
		{"upper case", "EXTENDED", DialectExtended, false},
		{"unknown name", "superchip", DialectOriginal, true},
		{"empty name", "", DialectOriginal, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dialect, err := ParseDialect(tt.input)

			if tt.expectError {
				assert.True(t, err != nil)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, dialect)
		})
	}
}

func TestDialectString(t *testing.T) {
	assert.Equal(t, "original", DialectOriginal.String())
	assert.Equal(t, "extended", DialectExtended.String())
}
