package fbdev

import (
	"context"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/vovakirdan/firescreen/internal/core"
)

func TestParseKeys(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []core.Button
		quit bool
	}{
		{"arrows", "\x1b[A\x1b[B\x1bOC\x1b[D", []core.Button{core.ButtonUp, core.ButtonDown, core.ButtonRight, core.ButtonLeft}, false},
		{"letters", "xzv\r", []core.Button{core.ButtonCross, core.ButtonSquare, core.ButtonTriangle, core.ButtonStart}, false},
		{"unknown ignored", "m1", nil, false},
		{"quit after press", "wq", []core.Button{core.ButtonUp}, true},
		{"lone escape", "\x1b", nil, true},
		{"ctrl c", "\x03", nil, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, quit := ParseKeys([]byte(tc.in))
			if quit != tc.quit {
				t.Errorf("quit = %v, expected %v", quit, tc.quit)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("buttons = %v, expected %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("buttons[%d] = %v, expected %v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestFitLetterbox(t *testing.T) {
	tests := []struct {
		dst  image.Rectangle
		size image.Point
		want image.Rectangle
	}{
		{image.Rect(0, 0, 640, 480), image.Pt(320, 240), image.Rect(0, 0, 640, 480)},
		{image.Rect(0, 0, 800, 480), image.Pt(320, 240), image.Rect(80, 0, 720, 480)},
		{image.Rect(0, 0, 640, 640), image.Pt(320, 240), image.Rect(0, 80, 640, 560)},
	}
	for _, tc := range tests {
		if got := Fit(tc.dst, tc.size); got != tc.want {
			t.Errorf("Fit(%v, %v) = %v, expected %v", tc.dst, tc.size, got, tc.want)
		}
	}
}

func TestPresentScales(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 8, 4))
	p := NewWithImage(dst, &core.KeyLatch{})

	frame := image.NewRGBA(image.Rect(0, 0, 2, 1))
	frame.Set(1, 0, color.RGBA{B: 255, A: 255})
	if err := p.Present(frame); err != nil {
		t.Fatal(err)
	}
	if got := dst.RGBAAt(7, 3); got.B != 255 {
		t.Errorf("scaled pixel = %v", got)
	}
	if got := dst.RGBAAt(0, 0); got.B != 0 {
		t.Errorf("left half should stay black, got %v", got)
	}
}

func TestListenLatchesAndQuits(t *testing.T) {
	latch := &core.KeyLatch{}
	p := NewWithImage(image.NewRGBA(image.Rect(0, 0, 1, 1)), latch)

	quit := false
	p.Listen(context.Background(), strings.NewReader("\x1b[Aq"), func() { quit = true })
	if !quit {
		t.Error("q should call quit")
	}
	if !latch.Buttons().Has(core.ButtonUp) {
		t.Error("up arrow should be latched")
	}
}
