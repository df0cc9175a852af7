// Package style holds the default look of generated tables and charts:
// font, colors, palettes and cell margin presets. Change these to match
// a company's branding.
package style

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrColor   = errors.New("invalid color")
	ErrMargins = errors.New("unknown margin preset")
)

// FontName is applied to every run that does not name its own font
const FontName = "Calibri"

// Color is an sRGB color
type Color struct {
	R, G, B uint8
}

// RGB builds a color from its components
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ParseColor accepts "RRGGBB" or "#RRGGBB"
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrColor, s)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex returns the color as upper-case "RRGGBB", the form OOXML and excelize expect
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) String() string {
	return "#" + c.Hex()
}

var (
	White      = RGB(255, 255, 255)
	GreyLight  = RGB(245, 245, 245)
	GreyLight2 = RGB(235, 235, 235)
	Grey       = RGB(150, 150, 150)
	GreyDark   = RGB(80, 80, 80)
)

// ColorBrewer is the default series palette
var ColorBrewer = []Color{
	RGB(141, 211, 199),
	RGB(255, 255, 179),
	RGB(190, 186, 218),
	RGB(251, 128, 114),
	RGB(128, 177, 211),
	RGB(253, 180, 98),
	RGB(179, 222, 105),
	RGB(252, 205, 229),
	RGB(217, 217, 217),
	RGB(188, 128, 189),
	RGB(204, 235, 197),
	RGB(255, 237, 111),
}

// Microsoft is the Office standard color strip
var Microsoft = []Color{
	RGB(255, 255, 0),
	RGB(146, 208, 80),
	RGB(255, 192, 0),
	RGB(112, 48, 160),
	RGB(0, 176, 80),
	RGB(0, 32, 96),
	RGB(0, 112, 192),
	RGB(192, 0, 0),
	RGB(0, 176, 240),
	RGB(255, 0, 0),
}

// Palette returns a named palette, falling back to ColorBrewer
func Palette(name string) []Color {
	switch strings.ToLower(name) {
	case "microsoft":
		return Microsoft
	default:
		return ColorBrewer
	}
}

// Band returns the fill for the n-th data row when rows are banded
func Band(n int) Color {
	if n%2 == 0 {
		return GreyLight
	}
	return GreyLight2
}
