// Package loader handles ROM file loading operations.
package loader

import (
	"fmt"
	"os"

	"github.com/retroenv/chip8go/internal/chip8"
)

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads a ROM file and returns its raw bytes. ROM files have no header
// and no magic number, the whole file is program data. Unreadable paths and
// directories fail with a wrapped ROM I/O error.
func (l *Loader) Load(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", chip8.ErrRomIO, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", chip8.ErrRomIO, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", chip8.ErrRomIO, err)
	}
	return data, nil
}
