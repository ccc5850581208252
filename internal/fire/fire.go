// Package fire implements the fire cellular automaton: a grid of palette
// indices fed from the bottom row, where every tick each value is copied one
// row up and randomly decremented by zero or one.
package fire

import "math/rand"

// DefaultFlicker is the chance that Ignite also feeds the row above the
// bottom one, per column.
const DefaultFlicker = 0.5

// Simulator owns the fire grid and its random source.
// Cells are stored in row-major order: index = y*W + x, row 0 is the top.
type Simulator struct {
	w, h     int
	maxIndex uint8
	flicker  float64
	cells    []uint8
	rng      *rand.Rand
	ticks    int
}

// New creates a zeroed w×h grid. maxIndex is the value Ignite writes when
// lit, normally the last palette index. flicker is clamped to [0, 1].
func New(w, h int, maxIndex uint8, seed int64, flicker float64) *Simulator {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if flicker < 0 {
		flicker = 0
	}
	if flicker > 1 {
		flicker = 1
	}
	return &Simulator{
		w:        w,
		h:        h,
		maxIndex: maxIndex,
		flicker:  flicker,
		cells:    make([]uint8, w*h),
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Width returns the number of columns.
func (s *Simulator) Width() int { return s.w }

// Height returns the number of rows.
func (s *Simulator) Height() int { return s.h }

// MaxIndex returns the value written by Ignite(true).
func (s *Simulator) MaxIndex() uint8 { return s.maxIndex }

// Ticks returns how many times Step has run since creation or Reset.
func (s *Simulator) Ticks() int { return s.ticks }

// Footprint returns the number of bytes the grid occupies.
func (s *Simulator) Footprint() int { return len(s.cells) }

// At returns the palette index at (x, y), or 0 out of bounds.
func (s *Simulator) At(x, y int) uint8 {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return 0
	}
	return s.cells[y*s.w+x]
}

// Row returns row y. The slice aliases the grid and must not be modified.
func (s *Simulator) Row(y int) []uint8 {
	return s.cells[y*s.w : (y+1)*s.w]
}

// Reset zero-fills the grid and the tick counter.
func (s *Simulator) Reset() {
	clear(s.cells)
	s.ticks = 0
}

// Ignite forces the bottom row to maxIndex (on) or 0 (off). For each column
// the cell directly above the bottom row receives the same value with the
// configured flicker probability.
func (s *Simulator) Ignite(on bool) {
	var v uint8
	if on {
		v = s.maxIndex
	}
	bottom := (s.h - 1) * s.w
	above := bottom - s.w
	for x := 0; x < s.w; x++ {
		s.cells[bottom+x] = v
		if above >= 0 && s.flicker > 0 && s.rng.Float64() < s.flicker {
			s.cells[above+x] = v
		}
	}
}

// Step advances the simulation one tick. Each column is swept top-down:
// row y-1 receives the value of row y minus a random bit, read before row y
// itself is overwritten. The bottom row is never written.
func (s *Simulator) Step() {
	w := s.w
	for x := 0; x < w; x++ {
		for y := 1; y < s.h; y++ {
			src := s.cells[y*w+x]
			var dst uint8
			if src > 0 {
				dst = src - uint8(s.rng.Intn(2))
			}
			s.cells[(y-1)*w+x] = dst
		}
	}
	s.ticks++
}

// NonZero returns the number of lit cells.
func (s *Simulator) NonZero() int {
	n := 0
	for _, v := range s.cells {
		if v != 0 {
			n++
		}
	}
	return n
}
