package palette

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"

	"github.com/vovakirdan/firescreen/internal/core"
)

// Strip draws pal as a row of swatch×height rectangles, index 0 on the left.
func Strip(pal []core.RGB, swatch, height int) (*gg.Context, error) {
	if swatch < 1 {
		swatch = 1
	}
	if height < 1 {
		height = swatch
	}
	dc := gg.NewContext(len(pal)*swatch, height)
	for i, c := range pal {
		dc.SetRGB(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
		dc.DrawRectangle(float64(i*swatch), 0, float64(swatch), float64(height))
		if err := dc.Fill(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("palette: fill swatch %d: %w", i, err)
		}
	}
	return dc, nil
}

// StripImage renders Strip and returns the pixels.
func StripImage(pal []core.RGB, swatch, height int) (image.Image, error) {
	dc, err := Strip(pal, swatch, height)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("palette: flush strip: %w", err)
	}
	return dc.Image(), nil
}

// WriteHex prints one "index #rrggbb" line per entry.
func WriteHex(w io.Writer, pal []core.RGB) error {
	for i, c := range pal {
		if _, err := fmt.Fprintf(w, "%3d %s\n", i, c.Hex()); err != nil {
			return err
		}
	}
	return nil
}
