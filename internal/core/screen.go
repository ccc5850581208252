package core

import (
	"image"
	"strings"
)

// HalfBlock is the glyph used to show two vertically stacked pixels in one
// terminal cell: foreground is the upper pixel, background the lower one.
const HalfBlock = '▀'

// Cell is one terminal character with its colours.
type Cell struct {
	Rune rune
	FG   RGB
	BG   RGB
}

// Screen is a 2D cell buffer for terminal presenters.
// It decouples the pixel frame from the terminal backend: the frame is
// sampled into cells once, and each backend only has to emit cells.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with black spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Set places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// Sample scales img into the screen using nearest-neighbour sampling,
// two image rows per cell row.
func (s *Screen) Sample(img image.Image) {
	if img == nil || s.width == 0 || s.height == 0 {
		return
	}
	b := img.Bounds()
	if b.Empty() {
		return
	}
	pixH := s.height * 2
	for cy := 0; cy < s.height; cy++ {
		top := b.Min.Y + (cy*2)*b.Dy()/pixH
		bottom := b.Min.Y + (cy*2+1)*b.Dy()/pixH
		for cx := 0; cx < s.width; cx++ {
			sx := b.Min.X + cx*b.Dx()/s.width
			s.cells[cy][cx] = Cell{
				Rune: HalfBlock,
				FG:   RGBFromColor(img.At(sx, top)),
				BG:   RGBFromColor(img.At(sx, bottom)),
			}
		}
	}
}

// String converts the screen runes to plain text, rows joined by newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height*3 + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}
