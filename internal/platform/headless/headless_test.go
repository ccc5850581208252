package headless

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"
)

func TestRecorderKeepsCopy(t *testing.T) {
	var r Recorder
	vram := image.NewRGBA(image.Rect(0, 0, 16, 16))
	vram.Set(10, 12, color.RGBA{R: 77, A: 255})
	sub := vram.SubImage(image.Rect(8, 8, 16, 16)).(*image.RGBA)

	if err := r.Present(sub); err != nil {
		t.Fatal(err)
	}
	vram.Set(10, 12, color.RGBA{A: 255})

	last := r.Last()
	if last.Bounds() != image.Rect(0, 0, 8, 8) {
		t.Errorf("bounds = %v", last.Bounds())
	}
	if got := last.RGBAAt(2, 4); got.R != 77 {
		t.Errorf("copied pixel = %v, expected red 77", got)
	}
	if r.Frames() != 1 {
		t.Errorf("Frames() = %d", r.Frames())
	}
}

func TestWritePNG(t *testing.T) {
	var r Recorder
	var buf bytes.Buffer
	if err := r.WritePNG(&buf); !errors.Is(err, ErrNoFrame) {
		t.Errorf("WritePNG before present = %v", err)
	}

	r.Present(image.NewRGBA(image.Rect(0, 0, 3, 2)))
	path := filepath.Join(t.TempDir(), "shots", "frame.png")
	if err := r.SavePNG(path); err != nil {
		t.Fatal(err)
	}
	if err := r.WritePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Errorf("decoded size = %v", img.Bounds())
	}
}
