package render

import (
	"fmt"
	"image"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DefaultFace is the built-in bitmap face used for the HUD.
func DefaultFace() font.Face {
	return basicfont.Face7x13
}

// ParseFace builds a face from TrueType data at the given point size.
func ParseFace(ttf []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("render: parse font: %w", err)
	}
	if size <= 0 {
		size = 12
	}
	return truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull}), nil
}

// LineHeight returns the distance between consecutive text lines.
func (s *SoftSurface) LineHeight() int {
	return s.face.Metrics().Height.Ceil()
}

// MeasureText returns the advance width of text in pixels.
func (s *SoftSurface) MeasureText(text string) int {
	return font.MeasureString(s.face, text).Ceil()
}

func (s *SoftSurface) rasterText(frame *image.RGBA, t textItem) {
	d := &font.Drawer{
		Dst:  frame,
		Src:  image.NewUniform(s.textColor),
		Face: s.face,
	}
	ascent := s.face.Metrics().Ascent.Ceil()
	d.Dot = fixed.P(frame.Rect.Min.X+t.x, frame.Rect.Min.Y+t.y+ascent)
	d.DrawString(t.text)
}
