// Package terminal renders machine display frames to the terminal.
package terminal

import (
	"fmt"
	"strings"

	tm "github.com/buger/goterm"
	"github.com/retroenv/chip8go/internal/chip8"
)

// Glyphs used per display cell, two characters wide to roughly square the
// aspect ratio of terminal character cells.
const (
	pixelOn  = "██"
	pixelOff = "  "
)

// Compile-time check to ensure Renderer implements chip8.FrameSink.
var _ chip8.FrameSink = (*Renderer)(nil)

// Renderer draws display frames to the terminal, redrawing in place.
type Renderer struct{}

// New creates a terminal renderer.
func New() *Renderer {
	return &Renderer{}
}

// RenderFrame clears the terminal and draws the frame at the top left
// corner, one terminal row per display row.
func (r *Renderer) RenderFrame(frame chip8.Frame) error {
	tm.Clear()
	tm.MoveCursor(1, 1)
	_, _ = fmt.Fprint(tm.Screen, frameString(frame))
	tm.Flush()
	return nil
}

// frameString converts a frame into terminal cell glyphs, one line per
// display row.
func frameString(frame chip8.Frame) string {
	var sb strings.Builder
	sb.Grow(chip8.DisplayHeight * (chip8.DisplayWidth*len(pixelOn) + 1))

	for y := 0; y < chip8.DisplayHeight; y++ {
		for x := 0; x < chip8.DisplayWidth; x++ {
			if frame[y][x] {
				sb.WriteString(pixelOn)
			} else {
				sb.WriteString(pixelOff)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
