// Package pipeline turns the fire simulation, the palette and the logo into
// depth-ordered primitives for one frame.
//
// The fire is first drawn as flat tiles into the offscreen region, then the
// region is blitted to the visible frame with page-sized sprites. Bucket
// numbers are larger-first:
//
//	6  clear offscreen, redirect clip and origin to it
//	5  one tile per lit cell
//	4  restore the visible clip and origin
//	1  logo
//	0  fire composite, palette swatches
package pipeline

import (
	"fmt"
	"image"

	"github.com/vovakirdan/firescreen/internal/core"
	"github.com/vovakirdan/firescreen/internal/fire"
	"github.com/vovakirdan/firescreen/internal/gpu"
	"github.com/vovakirdan/firescreen/internal/render"
)

// Ordering table buckets.
const (
	OTZComposite      = 0
	OTZLogo           = 1
	OTZRestore        = 4
	OTZFireCells      = 5
	OTZClearOffscreen = 6

	// Depth is the number of buckets the surface must provide.
	Depth = 8
)

const (
	// SwatchHeight is the height of the palette strip.
	SwatchHeight = 8
	// HUDMargin is the inset of HUD text from the frame corner.
	HUDMargin = 10
)

// Input is what one frame draws.
type Input struct {
	Fire     *fire.Simulator
	Palette  []core.RGB
	Logo     *Logo // nil when no logo is loaded
	Swatches bool
	HUD      []string // lines drawn in the top-left corner
}

// Stats summarises one Draw.
type Stats struct {
	Tiles    int
	Sprites  int
	Swatches int
}

// Pipeline commits a frame's primitives to a surface. It keeps no
// per-frame state and performs no I/O.
type Pipeline struct {
	block int
}

// New creates a pipeline drawing each fire cell as a block×block tile.
func New(block int) *Pipeline {
	if block < 1 {
		block = 1
	}
	return &Pipeline{block: block}
}

// Block returns the cell size in pixels.
func (p *Pipeline) Block() int { return p.block }

// Footprint returns the offscreen size used by a w×h grid.
func (p *Pipeline) Footprint(w, h int) image.Point {
	return image.Pt(w*p.block, h*p.block)
}

// Capacity returns the maximum number of primitives one Draw can commit for
// a gridW×gridH fire whose offscreen footprint is footprintW pixels wide.
func Capacity(gridW, gridH, footprintW, paletteLen int) int {
	sprites := core.CeilDiv(footprintW, render.PageSize)
	return 3 + // offscreen clear, area, offset
		gridW*gridH + // lit cells
		2 + // restore area, offset
		2 + // logo quad, page
		2*sprites + // composite sprites and pages
		paletteLen // swatches
}

// Draw commits in.Fire, in.Logo and the overlays to s.
func (p *Pipeline) Draw(s render.Surface, in Input) (Stats, error) {
	var st Stats
	if in.Fire == nil {
		return st, nil
	}

	off := s.Offscreen()
	foot := p.Footprint(in.Fire.Width(), in.Fire.Height())
	offRect := image.Rectangle{Min: off, Max: off.Add(foot)}

	if err := s.Add(OTZClearOffscreen, gpu.FillRect(offRect, core.Black)); err != nil {
		return st, err
	}
	if err := s.Add(OTZClearOffscreen, gpu.DrawArea(offRect)); err != nil {
		return st, err
	}
	if err := s.Add(OTZClearOffscreen, gpu.DrawOffset(off)); err != nil {
		return st, err
	}

	n, err := p.cells(s, in.Fire, in.Palette)
	st.Tiles = n
	if err != nil {
		return st, err
	}

	clip := s.ClipRect()
	if err := s.Add(OTZRestore, gpu.DrawArea(clip)); err != nil {
		return st, err
	}
	if err := s.Add(OTZRestore, gpu.DrawOffset(clip.Min)); err != nil {
		return st, err
	}

	if in.Logo != nil {
		if err := p.logo(s, in.Logo, clip.Dx()); err != nil {
			return st, err
		}
	}

	if in.Swatches {
		n, err := p.swatches(s, in.Palette, clip.Size())
		st.Swatches = n
		if err != nil {
			return st, err
		}
	}

	n, err = p.composite(s, off, foot, clip.Size())
	st.Sprites = n
	if err != nil {
		return st, err
	}

	lh := s.LineHeight()
	for i, line := range in.HUD {
		s.DrawText(HUDMargin, HUDMargin+i*lh, line)
	}
	return st, nil
}

func (p *Pipeline) cells(s render.Surface, f *fire.Simulator, pal []core.RGB) (int, error) {
	n := 0
	for y := 0; y < f.Height(); y++ {
		row := f.Row(y)
		for x, v := range row {
			if v == 0 {
				continue
			}
			c := core.Black
			if int(v) < len(pal) {
				c = pal[v]
			} else if len(pal) > 0 {
				c = pal[len(pal)-1]
			}
			t := gpu.Tile(x*p.block, y*p.block, p.block, p.block, c)
			if err := s.Add(OTZFireCells, t); err != nil {
				return n, fmt.Errorf("pipeline: fire cell (%d,%d): %w", x, y, err)
			}
			n++
		}
	}
	return n, nil
}

func (p *Pipeline) logo(s render.Surface, l *Logo, frameW int) error {
	tex := l.Texture()
	x := (frameW - tex.W) / 2
	if err := s.Add(OTZLogo, gpu.Quad(x, l.Y(), tex.W, tex.H, tex.UV, tex.Size())); err != nil {
		return err
	}
	return s.Add(OTZLogo, gpu.TexPage(tex.Page))
}

// composite blits the offscreen footprint bottom-aligned and centred, one
// sprite per texture page column.
func (p *Pipeline) composite(s render.Surface, off, foot, frame image.Point) (int, error) {
	dx := (frame.X - foot.X) / 2
	dy := frame.Y - foot.Y
	n := 0
	for sx := 0; sx < foot.X; sx += render.PageSize {
		w := core.Min(render.PageSize, foot.X-sx)
		if err := s.Add(OTZComposite, gpu.Sprite(dx+sx, dy, w, foot.Y, image.Point{})); err != nil {
			return n, err
		}
		if err := s.Add(OTZComposite, gpu.TexPage(off.Add(image.Pt(sx, 0)))); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func (p *Pipeline) swatches(s render.Surface, pal []core.RGB, frame image.Point) (int, error) {
	if len(pal) == 0 {
		return 0, nil
	}
	w := core.Max(1, frame.X/len(pal))
	y := frame.Y - SwatchHeight
	for i, c := range pal {
		if err := s.Add(OTZComposite, gpu.Tile(i*w, y, w, SwatchHeight, c)); err != nil {
			return i, err
		}
	}
	return len(pal), nil
}
