// Package render implements the drawing surface the fire pipeline commits
// primitives to, and the presenter contract backends implement to show the
// finished frames.
package render

import (
	"errors"
	"image"

	"github.com/vovakirdan/firescreen/internal/gpu"
)

// VRAM layout. Display buffers stack vertically on the left; the offscreen
// fire region and the texture region share the right-hand column.
const (
	VRAMWidth  = 1024
	VRAMHeight = 512

	// BufferHeight is the vertical stride between the two display buffers.
	BufferHeight = 256
	// MaxDisplayWidth is the widest visible frame that leaves room for the
	// offscreen column.
	MaxDisplayWidth = 640

	// PageSize is the edge of one texture page; sprites sample at most this
	// many texels from their page.
	PageSize = 256
)

var (
	// OffscreenOrigin is the top-left corner of the offscreen render target.
	OffscreenOrigin = image.Pt(MaxDisplayWidth, 0)
	// OffscreenSize bounds the offscreen render target.
	OffscreenSize = image.Pt(VRAMWidth-MaxDisplayWidth, BufferHeight)
	// TextureOrigin is where LoadTexture uploads images.
	TextureOrigin = image.Pt(MaxDisplayWidth, BufferHeight)
)

// ErrBadTexture is returned by LoadTexture for undecodable or oversized
// images. Callers treat it as a non-fatal asset failure.
var ErrBadTexture = errors.New("render: bad texture")

// Texture describes an image resident in VRAM.
type Texture struct {
	Page image.Point // texture page base in VRAM
	UV   image.Point // texel origin relative to Page
	W, H int
}

// Size returns the texture dimensions.
func (t Texture) Size() image.Point { return image.Pt(t.W, t.H) }

// Surface is what screens draw through. Primitives committed with Add are
// executed at Present in ordering-table order; text queued with DrawText is
// rasterised on top of the flushed table.
type Surface interface {
	Add(otz int, p gpu.Primitive) error
	// ClipRect is the visible frame of the buffer being built, in VRAM
	// coordinates.
	ClipRect() image.Rectangle
	// Offscreen is the top-left corner of the offscreen render target.
	Offscreen() image.Point
	LoadTexture(raw []byte) (Texture, error)
	DrawText(x, y int, text string)
	// LineHeight is the spacing between text lines in the current face.
	LineHeight() int
	// MeasureText returns the advance width of text in pixels.
	MeasureText(text string) int
	Present() error
}

// Presenter shows a finished frame. The image is only valid for the
// duration of the call.
type Presenter interface {
	Present(frame *image.RGBA) error
}

// PresenterFunc adapts a function to the Presenter interface.
type PresenterFunc func(frame *image.RGBA) error

// Present calls f(frame).
func (f PresenterFunc) Present(frame *image.RGBA) error { return f(frame) }
