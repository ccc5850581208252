package tui

import (
	"image"

	"github.com/vovakirdan/firescreen/internal/core"
)

// Sink is the render.Presenter of the terminal UI. Every presented frame
// is sampled into its cell buffer, which the model's View prints.
type Sink struct {
	cells *core.Screen
}

// NewSink creates a sink with a w×h cell buffer.
func NewSink(w, h int) *Sink {
	return &Sink{cells: core.NewScreen(w, h)}
}

// Present samples frame into the cell buffer.
func (s *Sink) Present(frame *image.RGBA) error {
	s.cells.Sample(frame)
	return nil
}

// Cells returns the cell buffer.
func (s *Sink) Cells() *core.Screen { return s.cells }
