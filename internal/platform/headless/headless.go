// Package headless records presented frames without a display.
package headless

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// ErrNoFrame is returned when saving before any frame was presented.
var ErrNoFrame = errors.New("headless: no frame presented")

// Recorder keeps a copy of the last presented frame.
type Recorder struct {
	mu     sync.Mutex
	last   *image.RGBA
	frames int
}

// Present copies frame.
func (r *Recorder) Present(frame *image.RGBA) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := frame.Bounds()
	if r.last == nil || r.last.Bounds().Size() != b.Size() {
		r.last = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	}
	draw.Draw(r.last, r.last.Bounds(), frame, b.Min, draw.Src)
	r.frames++
	return nil
}

// Frames returns how many frames were presented.
func (r *Recorder) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

// Last returns the last frame, or nil.
func (r *Recorder) Last() *image.RGBA {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

// WritePNG encodes the last frame.
func (r *Recorder) WritePNG(w io.Writer) error {
	last := r.Last()
	if last == nil {
		return ErrNoFrame
	}
	return png.Encode(w, last)
}

// SavePNG writes the last frame to path, creating parent directories.
func (r *Recorder) SavePNG(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("headless: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("headless: %w", err)
	}
	if err := r.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
