package core

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// RGB is a 24-bit colour as used by palettes, tiles and the HUD.
type RGB struct {
	R, G, B uint8
}

// Black is the "off" colour, palette index 0.
var Black = RGB{}

// RGBA converts the colour to an opaque color.RGBA.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// IsBlack reports whether all channels are zero.
func (c RGB) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// Hex returns the colour as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return c.Hex()
}

// RGBFromColor converts any color.Color, dropping alpha.
func RGBFromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// ParseRGB parses "#rrggbb", "rrggbb" or "0xrrggbb".
func ParseRGB(s string) (RGB, error) {
	h := strings.TrimSpace(s)
	h = strings.TrimPrefix(h, "#")
	h = strings.TrimPrefix(strings.TrimPrefix(h, "0x"), "0X")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("core: invalid colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("core: invalid colour %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// ParseColors parses a list of hex colours, failing on the first bad entry.
func ParseColors(list []string) ([]RGB, error) {
	out := make([]RGB, 0, len(list))
	for _, s := range list {
		c, err := ParseRGB(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
