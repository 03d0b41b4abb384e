package chip8

import "strings"

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Frame is a read-only snapshot of the monochrome display in row-major
// order. Each cell is independently on or off, there is no color depth.
type Frame [DisplayHeight][DisplayWidth]bool

// String renders the frame as one line per display row, lit pixels as '1'
// and dark pixels as '0'.
func (f Frame) String() string {
	var sb strings.Builder
	sb.Grow((DisplayWidth + 1) * DisplayHeight)

	for y := 0; y < DisplayHeight; y++ {
		for x := 0; x < DisplayWidth; x++ {
			if f[y][x] {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
