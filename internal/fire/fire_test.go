package fire

import (
	"bytes"
	"testing"
)

func TestIgniteOnLightsBottomRow(t *testing.T) {
	s := New(20, 90, 32, 1, DefaultFlicker)
	s.Ignite(true)

	for x, v := range s.Row(s.Height() - 1) {
		if v != 32 {
			t.Errorf("bottom row[%d] = %d, expected 32", x, v)
		}
	}
	// Flicker row holds either the lit value or nothing.
	for x, v := range s.Row(s.Height() - 2) {
		if v != 0 && v != 32 {
			t.Errorf("flicker row[%d] = %d, expected 0 or 32", x, v)
		}
	}
}

func TestIgniteOffClearsBottomRow(t *testing.T) {
	s := New(16, 10, 32, 1, DefaultFlicker)
	s.Ignite(true)
	s.Ignite(false)

	for x, v := range s.Row(s.Height() - 1) {
		if v != 0 {
			t.Errorf("bottom row[%d] = %d, expected 0", x, v)
		}
	}
}

func TestIgniteWithoutFlickerTouchesOnlyBottomRow(t *testing.T) {
	s := New(20, 90, 32, 99, 0)
	s.Ignite(true)

	if got := s.NonZero(); got != 20 {
		t.Errorf("NonZero() = %d, expected 20", got)
	}
}

func TestIgniteFullFlickerFeedsRowAbove(t *testing.T) {
	s := New(8, 4, 10, 3, 1)
	s.Ignite(true)

	for x, v := range s.Row(2) {
		if v != 10 {
			t.Errorf("row above bottom [%d] = %d, expected 10", x, v)
		}
	}
}

func TestStepStaysInRange(t *testing.T) {
	s := New(32, 40, 32, 42, DefaultFlicker)
	s.Ignite(true)

	for i := 0; i < 500; i++ {
		s.Step()
		s.Ignite(true)
		for y := 0; y < s.Height(); y++ {
			for x := 0; x < s.Width(); x++ {
				if v := s.At(x, y); v > 32 {
					t.Fatalf("tick %d: cell (%d,%d) = %d exceeds ignite value", i, x, y, v)
				}
			}
		}
	}
	if s.Ticks() != 500 {
		t.Errorf("Ticks() = %d, expected 500", s.Ticks())
	}
}

func TestStepLeavesBottomRowUntouched(t *testing.T) {
	s := New(10, 10, 20, 5, 0)
	s.Ignite(true)
	for i := 0; i < 10; i++ {
		s.Step()
	}
	for x, v := range s.Row(9) {
		if v != 20 {
			t.Errorf("bottom row[%d] = %d after steps, expected 20", x, v)
		}
	}
}

func TestStepReadsBeforeWrite(t *testing.T) {
	// A single lit cell at the bottom of a 1-wide column climbs exactly one
	// row per tick. A bottom-up sweep would carry it to the top in one tick.
	s := New(1, 6, 9, 11, 0)
	s.Ignite(true)
	s.Step()

	if v := s.At(0, 4); v != 8 && v != 9 {
		t.Fatalf("row 4 = %d, expected 8 or 9", v)
	}
	for y := 0; y < 4; y++ {
		if v := s.At(0, y); v != 0 {
			t.Errorf("row %d = %d after one tick, expected 0", y, v)
		}
	}
}

func TestStepDecaysUpward(t *testing.T) {
	const maxIndex = 32
	s := New(1, 40, maxIndex, 8, 0)
	s.Ignite(true)
	for i := 0; i < 100; i++ {
		s.Step()
	}
	// Row y has been decremented at most once per row it climbed.
	for y := 0; y < s.Height(); y++ {
		floor := maxIndex - (s.Height() - 1 - y)
		if floor < 0 {
			floor = 0
		}
		if v := int(s.At(0, y)); v < floor || v > maxIndex {
			t.Errorf("row %d = %d, expected within [%d, %d]", y, v, floor, maxIndex)
		}
	}
}

func TestStepDeterministic(t *testing.T) {
	run := func() []byte {
		s := New(24, 30, 32, 1234, DefaultFlicker)
		s.Ignite(true)
		for i := 0; i < 64; i++ {
			s.Step()
			s.Ignite(true)
		}
		out := make([]byte, 0, s.Width()*s.Height())
		for y := 0; y < s.Height(); y++ {
			out = append(out, s.Row(y)...)
		}
		return out
	}

	a, b := run(), run()
	if !bytes.Equal(a, b) {
		t.Error("same seed should produce identical grids")
	}
}

func TestReset(t *testing.T) {
	s := New(8, 8, 5, 1, DefaultFlicker)
	s.Ignite(true)
	s.Step()
	s.Reset()

	if s.NonZero() != 0 {
		t.Errorf("NonZero() after Reset = %d, expected 0", s.NonZero())
	}
	if s.Ticks() != 0 {
		t.Errorf("Ticks() after Reset = %d, expected 0", s.Ticks())
	}
	if s.At(-1, 0) != 0 || s.At(0, 99) != 0 {
		t.Error("out-of-bounds At should return 0")
	}
}

func TestSingleRowGrid(t *testing.T) {
	s := New(5, 1, 9, 1, 1)
	if s.Height() != 1 {
		t.Fatalf("Height() = %d, expected 1", s.Height())
	}
	s.Ignite(true)
	s.Step()
	if s.NonZero() != 5 {
		t.Errorf("NonZero() = %d, expected 5", s.NonZero())
	}
}
