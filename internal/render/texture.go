package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // register PNG decoder

	xdraw "golang.org/x/image/draw"
)

// LoadTexture decodes raw (PNG) and uploads it to the texture region,
// replacing any previously loaded texture. Texels with alpha below one half
// become black, which sprites treat as transparent; opaque pure black is
// lifted to (8,8,8) so it still draws.
func (s *SoftSurface) LoadTexture(raw []byte) (Texture, error) {
	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return Texture{}, fmt.Errorf("%w: %v", ErrBadTexture, err)
	}
	b := img.Bounds()
	if b.Dx() > PageSize || b.Dy() > PageSize || b.Empty() {
		return Texture{}, fmt.Errorf("%w: %dx%d %s exceeds %dx%d", ErrBadTexture, b.Dx(), b.Dy(), format, PageSize, PageSize)
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(nrgba, nrgba.Bounds(), img, b.Min, xdraw.Src)

	region := image.Rectangle{Min: TextureOrigin, Max: TextureOrigin.Add(image.Pt(PageSize, PageSize))}
	fill(s.vram, region, color.RGBA{})

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			si := nrgba.PixOffset(x, y)
			px := nrgba.Pix[si : si+4 : si+4]
			r, g, bl := px[0], px[1], px[2]
			switch {
			case px[3] < 0x80:
				r, g, bl = 0, 0, 0
			case r == 0 && g == 0 && bl == 0:
				r, g, bl = 8, 8, 8
			}
			di := s.vram.PixOffset(TextureOrigin.X+x, TextureOrigin.Y+y)
			s.vram.Pix[di+0] = r
			s.vram.Pix[di+1] = g
			s.vram.Pix[di+2] = bl
			s.vram.Pix[di+3] = 0xFF
		}
	}

	s.logger.Debug("texture uploaded", "format", format, "w", b.Dx(), "h", b.Dy())
	return Texture{Page: TextureOrigin, W: b.Dx(), H: b.Dy()}, nil
}
