package core

// Color is a foreground color for a screen cell.
// The platform layer maps each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// tilePalette cycles through colors as tiles double.
var tilePalette = []Color{
	ColorWhite,         // 2
	ColorBrightWhite,   // 4
	ColorYellow,        // 8
	ColorOrange,        // 16
	ColorBrightRed,     // 32
	ColorRed,           // 64
	ColorBrightYellow,  // 128
	ColorBrightGreen,   // 256
	ColorGreen,         // 512
	ColorBrightCyan,    // 1024
	ColorBrightMagenta, // 2048
	ColorMagenta,       // 4096
	ColorBrightBlue,    // 8192
}

// TileColor picks a color for a tile value. Empty cells are gray and values
// that are not powers of two share the default color.
func TileColor(value int) Color {
	if value <= 0 {
		return ColorGray
	}
	exp := 0
	for v := value; v > 1; v >>= 1 {
		if v&1 != 0 {
			return ColorDefault
		}
		exp++
	}
	if exp == 0 {
		return ColorDefault
	}
	return tilePalette[(exp-1)%len(tilePalette)]
}
