package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/image/font"

	"github.com/vovakirdan/firescreen/internal/core"
	"github.com/vovakirdan/firescreen/internal/gpu"
)

// Options configures a SoftSurface.
type Options struct {
	Width, Height int      // visible frame size
	Background    core.RGB // colour each frame is cleared to
	Depth         int      // ordering table buckets
	Capacity      int      // primitives per frame
	Face          font.Face
	TextColor     core.RGB
}

type textItem struct {
	x, y int
	text string
}

// SoftSurface rasterises ordering-table primitives into a software VRAM with
// two display buffers, handing each finished buffer to a Presenter.
type SoftSurface struct {
	vram      *image.RGBA
	presenter Presenter
	logger    *log.Logger

	width, height int
	bg            color.RGBA
	face          font.Face
	textColor     color.RGBA

	tables [2]*gpu.OrderingTable
	texts  [2][]textItem
	draw   int

	// rasteriser state, reset every frame
	clip   image.Rectangle
	offset image.Point
	page   image.Point
}

var _ Surface = (*SoftSurface)(nil)

// NewSoftSurface creates a surface presenting to p. A nil presenter drops
// frames; a nil logger discards log output.
func NewSoftSurface(opts Options, p Presenter, logger *log.Logger) (*SoftSurface, error) {
	if opts.Width <= 0 || opts.Height <= 0 || opts.Width > MaxDisplayWidth || opts.Height > BufferHeight {
		return nil, fmt.Errorf("render: display %dx%d does not fit a %dx%d buffer", opts.Width, opts.Height, MaxDisplayWidth, BufferHeight)
	}
	if opts.Depth <= 0 || opts.Capacity <= 0 {
		return nil, fmt.Errorf("render: invalid ordering table %d buckets x %d primitives", opts.Depth, opts.Capacity)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	face := opts.Face
	if face == nil {
		face = DefaultFace()
	}
	text := opts.TextColor
	if text.IsBlack() {
		text = core.RGB{R: 0xFF, G: 0xFF, B: 0xFF}
	}

	s := &SoftSurface{
		vram:      image.NewRGBA(image.Rect(0, 0, VRAMWidth, VRAMHeight)),
		presenter: p,
		logger:    logger,
		width:     opts.Width,
		height:    opts.Height,
		bg:        opts.Background.RGBA(),
		face:      face,
		textColor: text.RGBA(),
	}
	for i := range s.tables {
		s.tables[i] = gpu.NewOrderingTable(opts.Depth, opts.Capacity)
	}
	return s, nil
}

// Add commits p to bucket otz of the buffer being built.
func (s *SoftSurface) Add(otz int, p gpu.Primitive) error {
	return s.tables[s.draw].Add(otz, p)
}

// ClipRect returns the visible frame of the buffer being built.
func (s *SoftSurface) ClipRect() image.Rectangle {
	return s.bufferRect(s.draw)
}

// Offscreen returns the origin of the offscreen render target.
func (s *SoftSurface) Offscreen() image.Point {
	return OffscreenOrigin
}

// DrawText queues text at (x, y) relative to the visible frame, y being the
// top of the line.
func (s *SoftSurface) DrawText(x, y int, text string) {
	s.texts[s.draw] = append(s.texts[s.draw], textItem{x: x, y: y, text: text})
}

// Pending returns the ordering table of the buffer being built.
func (s *SoftSurface) Pending() *gpu.OrderingTable {
	return s.tables[s.draw]
}

// VRAM exposes the whole video memory, mainly for inspection.
func (s *SoftSurface) VRAM() *image.RGBA {
	return s.vram
}

// Present executes the pending ordering table into the draw buffer,
// rasterises queued text, hands the frame to the presenter and swaps
// buffers.
func (s *SoftSurface) Present() error {
	buf := s.bufferRect(s.draw)
	fill(s.vram, buf, s.bg)

	s.clip = buf
	s.offset = buf.Min
	s.page = image.Point{}
	s.tables[s.draw].Walk(s.exec)

	frame := s.vram.SubImage(buf).(*image.RGBA)
	for _, t := range s.texts[s.draw] {
		s.rasterText(frame, t)
	}

	var err error
	if s.presenter != nil {
		err = s.presenter.Present(frame)
	}

	s.draw ^= 1
	s.tables[s.draw].Reset()
	s.texts[s.draw] = s.texts[s.draw][:0]
	if err != nil {
		return fmt.Errorf("render: present: %w", err)
	}
	return nil
}

func (s *SoftSurface) bufferRect(i int) image.Rectangle {
	return image.Rect(0, i*BufferHeight, s.width, i*BufferHeight+s.height)
}

func (s *SoftSurface) exec(_ int, p *gpu.Primitive) {
	switch p.Kind {
	case gpu.KindFillRect:
		fill(s.vram, p.Rect, p.Color.RGBA())
	case gpu.KindTile:
		fill(s.vram, p.Rect.Add(s.offset).Intersect(s.clip), p.Color.RGBA())
	case gpu.KindSprite:
		s.blit(p.Rect.Add(s.offset), p.UV, p.Rect.Size())
	case gpu.KindQuad:
		s.blit(p.Rect.Add(s.offset), p.UV, p.TexSize)
	case gpu.KindDrawArea:
		s.clip = p.Rect.Intersect(s.vram.Bounds())
	case gpu.KindDrawOffset:
		s.offset = p.Rect.Min
	case gpu.KindTexPage:
		s.page = p.UV
	}
}

// blit copies the texel block (uv, size) of the current page onto dst,
// scaling by nearest neighbour when the sizes differ. Black texels are
// skipped.
func (s *SoftSurface) blit(dst image.Rectangle, uv, size image.Point) {
	if dst.Empty() || size.X <= 0 || size.Y <= 0 {
		return
	}
	size.X = core.Min(size.X, PageSize)
	size.Y = core.Min(size.Y, PageSize)
	src := s.page.Add(uv)
	area := dst.Intersect(s.clip)
	dw, dh := dst.Dx(), dst.Dy()

	for y := area.Min.Y; y < area.Max.Y; y++ {
		sy := src.Y + (y-dst.Min.Y)*size.Y/dh
		for x := area.Min.X; x < area.Max.X; x++ {
			sx := src.X + (x-dst.Min.X)*size.X/dw
			if !image.Pt(sx, sy).In(s.vram.Rect) {
				continue
			}
			i := s.vram.PixOffset(sx, sy)
			texel := s.vram.Pix[i : i+4 : i+4]
			if texel[0] == 0 && texel[1] == 0 && texel[2] == 0 {
				continue
			}
			j := s.vram.PixOffset(x, y)
			copy(s.vram.Pix[j:j+4], texel)
		}
	}
}

func fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := img.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = 0xFF
			i += 4
		}
	}
}
