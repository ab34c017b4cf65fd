package draw

import "strconv"

// Block characters used by the canvas.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Color is an ANSI foreground color code. The background code is Color+10.
type Color uint8

const (
	ColorNone          Color = 0
	ColorRed           Color = 31
	ColorGreen         Color = 32
	ColorYellow        Color = 33
	ColorBlue          Color = 34
	ColorMagenta       Color = 35
	ColorCyan          Color = 36
	ColorWhite         Color = 37
	ColorGray          Color = 90
	ColorBrightRed     Color = 91
	ColorBrightGreen   Color = 92
	ColorBrightYellow  Color = 93
	ColorBrightBlue    Color = 94
	ColorBrightMagenta Color = 95
	ColorBrightCyan    Color = 96
	ColorBrightWhite   Color = 97
)

// ColorReset restores the default terminal colors.
const ColorReset = "\033[0m"

// sgr returns the escape sequence selecting fg on bg. ColorNone means default.
func sgr(fg, bg Color) string {
	s := "\033[0"
	if fg != ColorNone {
		s += ";" + strconv.Itoa(int(fg))
	}
	if bg != ColorNone {
		s += ";" + strconv.Itoa(int(bg)+10)
	}
	return s + "m"
}

// Colorize wraps s in the escape sequences for fg.
func Colorize(s string, fg Color) string {
	if fg == ColorNone {
		return s
	}
	return sgr(fg, ColorNone) + s + ColorReset
}
