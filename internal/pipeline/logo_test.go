package pipeline

import (
	"testing"

	"github.com/vovakirdan/firescreen/internal/render"
)

func TestLogoRisesAndHaltsAtTarget(t *testing.T) {
	l := NewLogo(render.Texture{W: 64, H: 32}, 240, 40, 4)

	prev := l.Y()
	frames := 0
	for !l.Done() {
		l.Update()
		if l.Y() > prev {
			t.Fatalf("logo moved down: %d -> %d", prev, l.Y())
		}
		prev = l.Y()
		frames++
		if frames > 10000 {
			t.Fatal("logo never reached its target")
		}
	}

	if l.Y() != 40 {
		t.Errorf("Y() = %d, expected 40", l.Y())
	}
	l.Update()
	if l.Y() != 40 || !l.Done() {
		t.Error("logo should stay at target")
	}
}

func TestLogoDecelerates(t *testing.T) {
	l := NewLogo(render.Texture{}, 200, 0, 2)

	l.Update()
	first := 200 - l.Y()
	for i := 0; i < 10; i++ {
		l.Update()
	}
	before := l.Y()
	l.Update()
	late := before - l.Y()

	if first != 50 {
		t.Errorf("first step = %d px, expected a quarter of 200", first)
	}
	if late >= first {
		t.Errorf("late step %d should be smaller than first step %d", late, first)
	}
}

func TestLogoFallsToLowerTarget(t *testing.T) {
	l := NewLogo(render.Texture{}, 0, 17, 3)
	for i := 0; i < 1000 && !l.Done(); i++ {
		l.Update()
	}
	if l.Y() != 17 {
		t.Errorf("Y() = %d, expected 17", l.Y())
	}
}
