package core

import (
	"testing"
	"time"
)

type heldButtons ButtonSet

func (h heldButtons) Buttons() ButtonSet { return ButtonSet(h) }

func TestPadJustPressedEdge(t *testing.T) {
	var p Pad

	held := heldButtons(ButtonSet(0).With(ButtonCross))
	p.Poll(held)
	if !p.JustPressed(ButtonCross) {
		t.Error("Cross should be just pressed on first poll")
	}
	if !p.Held(ButtonCross) {
		t.Error("Cross should be held")
	}

	p.Poll(held)
	if p.JustPressed(ButtonCross) {
		t.Error("Cross held across polls should not be just pressed again")
	}

	p.Poll(heldButtons(0))
	if p.Held(ButtonCross) || p.JustPressed(ButtonCross) {
		t.Error("Cross should be released")
	}

	p.Poll(held)
	if !p.JustPressed(ButtonCross) {
		t.Error("Cross should be just pressed after release")
	}
}

func TestPadNilSourceReleases(t *testing.T) {
	var p Pad
	p.Poll(heldButtons(ButtonSet(0).With(ButtonUp)))
	p.Poll(nil)
	if p.Held(ButtonUp) {
		t.Error("nil source should release all buttons")
	}
}

func TestKeyLatchOneShot(t *testing.T) {
	var l KeyLatch
	var p Pad

	l.Press(ButtonUp)
	l.Press(ButtonSquare)

	p.Poll(&l)
	if !p.JustPressed(ButtonUp) || !p.JustPressed(ButtonSquare) {
		t.Error("latched presses should be reported on the next poll")
	}

	p.Poll(&l)
	if p.Held(ButtonUp) || p.Held(ButtonSquare) {
		t.Error("latched presses should clear after one poll")
	}
}

func TestKeyLatchBackToBackPresses(t *testing.T) {
	var l KeyLatch
	var p Pad

	l.Press(ButtonDown)
	p.Poll(&l)
	if !p.JustPressed(ButtonDown) {
		t.Fatal("first press should be just pressed")
	}

	l.Press(ButtonDown)
	p.Poll(&l)
	if !p.JustPressed(ButtonDown) {
		t.Error("press on the following poll should be a new edge")
	}

	p.Poll(&l)
	if p.JustPressed(ButtonDown) || p.Held(ButtonDown) {
		t.Error("no press latched, Down should be released")
	}
}

func TestPadHeldSourceAfterLatch(t *testing.T) {
	var p Pad
	var l KeyLatch

	l.Press(ButtonUp)
	p.Poll(&l)
	held := heldButtons(ButtonSet(0).With(ButtonUp))
	p.Poll(held)
	if p.JustPressed(ButtonUp) {
		t.Error("held source continuing a latched press should not re-trigger")
	}
}

func TestButtonString(t *testing.T) {
	if ButtonTriangle.String() != "Triangle" {
		t.Errorf("ButtonTriangle.String() = %q", ButtonTriangle.String())
	}
}

func TestFrameClock(t *testing.T) {
	var c FrameClock
	start := time.Unix(100, 0)

	for i := 0; i <= 60; i++ {
		c.Tick(start.Add(time.Duration(i) * time.Second / 60))
	}

	if c.Frame() != 61 {
		t.Errorf("Frame() = %d, expected 61", c.Frame())
	}
	if c.FPS() < 59 || c.FPS() > 61 {
		t.Errorf("FPS() = %d, expected about 60", c.FPS())
	}
}

func TestParseRGB(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"#ff8000", RGB{R: 0xff, G: 0x80}, false},
		{"0x102030", RGB{R: 0x10, G: 0x20, B: 0x30}, false},
		{"ABCDEF", RGB{R: 0xab, G: 0xcd, B: 0xef}, false},
		{"#fff", RGB{}, true},
		{"zzzzzz", RGB{}, true},
	}

	for _, tc := range tests {
		got, err := ParseRGB(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseRGB(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseRGB(%q) = %v, expected %v", tc.in, got, tc.want)
		}
	}

	c := RGB{R: 1, G: 2, B: 3}
	if c.Hex() != "#010203" {
		t.Errorf("Hex() = %q", c.Hex())
	}
}
