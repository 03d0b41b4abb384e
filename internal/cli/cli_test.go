package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/chip8go/internal/chip8"
	"github.com/retroenv/chip8go/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

//nolint:funlen // test functions can be long and complex
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "default flags",
			args: []string{"prog", "game.ch8"},
			want: options.Program{Input: "game.ch8", Dialect: "original", Seed: chip8.DefaultSeed},
		},
		{
			name: "step flag",
			args: []string{"prog", "-step", "game.ch8"},
			want: options.Program{Input: "game.ch8", Dialect: "original", Seed: chip8.DefaultSeed, Stepping: true},
		},
		{
			name: "dialect flag",
			args: []string{"prog", "-dialect", "extended", "game.ch8"},
			want: options.Program{Input: "game.ch8", Dialect: "extended", Seed: chip8.DefaultSeed},
		},
		{
			name: "seed flag",
			args: []string{"prog", "-seed", "7", "game.ch8"},
			want: options.Program{Input: "game.ch8", Dialect: "original", Seed: 7},
		},
		{
			name: "debug flag",
			args: []string{"prog", "-debug", "game.ch8"},
			want: options.Program{Input: "game.ch8", Dialect: "original", Seed: chip8.DefaultSeed, Debug: true},
		},
		{
			name: "trace flag",
			args: []string{"prog", "-trace", "game.ch8"},
			want: options.Program{Input: "game.ch8", Dialect: "original", Seed: chip8.DefaultSeed, Trace: true},
		},
		{
			name: "quiet flag",
			args: []string{"prog", "-q", "game.ch8"},
			want: options.Program{Input: "game.ch8", Dialect: "original", Seed: chip8.DefaultSeed, Quiet: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		usageError bool
	}{
		{
			name:       "missing ROM file",
			args:       []string{"prog"},
			usageError: true,
		},
		{
			name:       "flag after ROM file",
			args:       []string{"prog", "game.ch8", "-step"},
			usageError: true,
		},
		{
			name:       "quiet and debug conflict",
			args:       []string{"prog", "-q", "-debug", "game.ch8"},
			usageError: true,
		},
		{
			name:       "debug and trace conflict",
			args:       []string{"prog", "-debug", "-trace", "game.ch8"},
			usageError: true,
		},
		{
			name:       "unknown dialect",
			args:       []string{"prog", "-dialect", "superchip", "game.ch8"},
			usageError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			_, err := ParseFlags()
			assert.True(t, err != nil)

			var usageErr *UsageError
			assert.Equal(t, tt.usageError, errors.As(err, &usageErr))
		})
	}
}

func TestNormalizeOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        options.Program
		expectError bool
	}{
		{
			name:        "no conflict",
			opts:        options.Program{Dialect: "original"},
			expectError: false,
		},
		{
			name:        "single verbosity flag",
			opts:        options.Program{Dialect: "extended", Trace: true},
			expectError: false,
		},
		{
			name:        "quiet and debug conflict",
			opts:        options.Program{Dialect: "original", Quiet: true, Debug: true},
			expectError: true,
		},
		{
			name:        "all verbosity flags conflict",
			opts:        options.Program{Dialect: "original", Quiet: true, Debug: true, Trace: true},
			expectError: true,
		},
		{
			name:        "unknown dialect",
			opts:        options.Program{Dialect: "superchip"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := normalizeOptions(&tt.opts)
			if tt.expectError {
				assert.True(t, err != nil)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUsageError(t *testing.T) {
	err := &UsageError{msg: "bad flag combination"}
	assert.Equal(t, "bad flag combination", err.Error())

	// usage output must not panic without a flag set
	err.ShowUsage()
}
