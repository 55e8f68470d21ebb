// Package draw renders vector shapes onto a terminal using half-block
// characters, which doubles the vertical resolution of a character cell.
package draw

import "github.com/tomz197/warpfield/internal/physics"

// Point is a logical coordinate.
type Point = physics.Vec2

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockLight     = '░'
	BlockMedium    = '▒'
	BlockDark      = '▓'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Shades from lightest to darkest.
var Shades = []rune{BlockEmpty, BlockLight, BlockMedium, BlockDark, BlockFull}

// ShadeLevel returns a shade character for a value between 0.0 (empty) and 1.0 (solid).
func ShadeLevel(intensity float64) rune {
	if intensity <= 0 {
		return Shades[0]
	}
	if intensity >= 1 {
		return Shades[len(Shades)-1]
	}
	return Shades[int(intensity*float64(len(Shades)-1))]
}

// Bar renders a horizontal gauge of width cells filled to fraction, with a
// shaded cell for the partial remainder.
func Bar(fraction float64, width int) string {
	fraction = min(max(fraction, 0), 1)
	cells := fraction * float64(width)
	full := int(cells)

	out := make([]rune, width)
	for i := range out {
		switch {
		case i < full:
			out[i] = BlockFull
		case i == full:
			out[i] = ShadeLevel(cells - float64(full))
			if out[i] == BlockEmpty {
				out[i] = BlockLight
			}
		default:
			out[i] = BlockLight
		}
	}
	return string(out)
}

// Color is a palette entry for canvas pixels. The zero value is empty.
type Color uint8

const (
	ColorNone Color = iota
	ColorWhite
	ColorGray
	ColorDarkGray
	ColorRed
	ColorOrange
	ColorYellow
	ColorCyan
	ColorBrightCyan
	ColorBlue
	ColorMagenta
	ColorGreen
)

// ColorReset restores the default terminal colors.
const ColorReset = "\033[0m"

var fgCodes = [...]string{
	ColorNone:       "\033[39m",
	ColorWhite:      "\033[97m",
	ColorGray:       "\033[37m",
	ColorDarkGray:   "\033[90m",
	ColorRed:        "\033[91m",
	ColorOrange:     "\033[38;5;208m",
	ColorYellow:     "\033[93m",
	ColorCyan:       "\033[36m",
	ColorBrightCyan: "\033[96m",
	ColorBlue:       "\033[94m",
	ColorMagenta:    "\033[95m",
	ColorGreen:      "\033[92m",
}

var bgCodes = [...]string{
	ColorNone:       "\033[49m",
	ColorWhite:      "\033[107m",
	ColorGray:       "\033[47m",
	ColorDarkGray:   "\033[100m",
	ColorRed:        "\033[101m",
	ColorOrange:     "\033[48;5;208m",
	ColorYellow:     "\033[103m",
	ColorCyan:       "\033[46m",
	ColorBrightCyan: "\033[106m",
	ColorBlue:       "\033[104m",
	ColorMagenta:    "\033[105m",
	ColorGreen:      "\033[102m",
}

// Fg returns the escape sequence selecting c as foreground.
func (c Color) Fg() string {
	if int(c) >= len(fgCodes) {
		return fgCodes[ColorNone]
	}
	return fgCodes[c]
}

// Bg returns the escape sequence selecting c as background.
func (c Color) Bg() string {
	if int(c) >= len(bgCodes) {
		return bgCodes[ColorNone]
	}
	return bgCodes[c]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
