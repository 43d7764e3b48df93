package core

// Color represents a foreground color for a screen cell.
// The platform layer maps these to ANSI colors for terminal display.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorGray
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
)

// Dim returns the next-fainter color in the fade chain.
// Bright colors drop to their normal variant, normal colors drop to
// gray, and gray fades out to the default (cleared) color. This chain
// drives the motion-trail effect in Screen.Fade.
func (c Color) Dim() Color {
	switch c {
	case ColorBrightRed:
		return ColorRed
	case ColorBrightGreen:
		return ColorGreen
	case ColorBrightYellow:
		return ColorYellow
	case ColorBrightCyan:
		return ColorCyan
	case ColorBrightWhite:
		return ColorWhite
	case ColorOrange:
		return ColorYellow
	case ColorRed, ColorGreen, ColorYellow, ColorCyan, ColorWhite:
		return ColorGray
	default:
		return ColorDefault
	}
}
