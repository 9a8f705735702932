/*
Package term renders a decoded sprite canvas as 24-bit colored text.

Each output line covers two source rows: the top row is painted as the
cell background and the bottom row as the foreground of a lower half
block, doubling the vertical resolution of the terminal. Where the top
row is absent no background is set, so the terminal's own background
shows through the upper half of the cell.
*/
package term

import (
	"fmt"
	"strings"

	"github.com/spriteterm/spriteterm/sprite"
)

// Pixels with alpha below this render as black rather than dropping
// their style altogether.
const alphaThreshold = 32

const glyph = '▄'

// Foreground returns the SGR sequence selecting a 24-bit foreground color.
func Foreground(r, g, b uint8) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
}

// Background returns the SGR sequence selecting a 24-bit background color.
func Background(r, g, b uint8) string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b)
}

// Reset returns the SGR sequence clearing all styling.
func Reset() string {
	return "\x1b[0m"
}

const eraseLine = "\x1b[K"

func styleColor(m *sprite.Image, x, y int) (r, g, b uint8) {
	r, g, b, a := m.At(x, y)
	if a < alphaThreshold {
		return 0, 0, 0
	}
	return r, g, b
}

// Render converts the canvas into styled text lines, one per two source
// rows. An odd canvas height shifts the pairing so the first line has no
// top row. Every line ends with a style reset and an erase to end of
// line so no color bleeds into following terminal content; the final
// entry is a blank spacer line.
func Render(m *sprite.Image) []string {
	width, height := int(m.Width), int(m.Height)

	lines := make([]string, 0, (height+1)/2+1)

	top := 0
	if height%2 != 0 {
		top = -1
	}

	for ; top < height-1; top += 2 {
		var b strings.Builder
		for x := 0; x < width; x++ {
			if top >= 0 {
				b.WriteString(Background(styleColor(m, x, top)))
			}
			b.WriteString(Foreground(styleColor(m, x, top+1)))
			b.WriteRune(glyph)
		}
		b.WriteString(Reset())
		b.WriteString(eraseLine)
		lines = append(lines, b.String())
	}

	return append(lines, "")
}
