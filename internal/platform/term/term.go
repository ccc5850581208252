// Package term presents frames on a tcell screen as half-block cells and
// feeds key presses into a key latch.
package term

import (
	"context"
	"fmt"
	"image"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/firescreen/internal/core"
)

// Presenter draws frames on a tcell screen.
type Presenter struct {
	screen tcell.Screen
	cells  *core.Screen
	latch  *core.KeyLatch
	styles map[[2]core.RGB]tcell.Style
}

// New opens the terminal.
func New(latch *core.KeyLatch) (*Presenter, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("term: init: %w", err)
	}
	return NewWithScreen(s, latch), nil
}

// NewWithScreen wraps an initialised screen.
func NewWithScreen(s tcell.Screen, latch *core.KeyLatch) *Presenter {
	s.HideCursor()
	s.Clear()
	w, h := s.Size()
	return &Presenter{
		screen: s,
		cells:  core.NewScreen(w, h),
		latch:  latch,
		styles: make(map[[2]core.RGB]tcell.Style),
	}
}

// Present samples frame into the terminal.
func (p *Presenter) Present(frame *image.RGBA) error {
	w, h := p.screen.Size()
	p.cells.Resize(w, h)
	p.cells.Sample(frame)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := p.cells.Get(x, y)
			p.screen.SetContent(x, y, c.Rune, nil, p.style(c.FG, c.BG))
		}
	}
	p.screen.Show()
	return nil
}

func (p *Presenter) style(fg, bg core.RGB) tcell.Style {
	k := [2]core.RGB{fg, bg}
	if s, ok := p.styles[k]; ok {
		return s
	}
	s := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B))).
		Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
	p.styles[k] = s
	return s
}

// Listen reads terminal events until the screen is closed, latching pad
// buttons and calling quit on ESC, q or Ctrl+C.
func (p *Presenter) Listen(ctx context.Context, quit func()) {
	for {
		ev := p.screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if isQuit(ev.Key(), ev.Rune()) {
				quit()
				return
			}
			if b, ok := buttonFor(ev.Key(), ev.Rune()); ok {
				p.latch.Press(b)
			}
		case *tcell.EventResize:
			p.screen.Sync()
		}
	}
}

// Close restores the terminal.
func (p *Presenter) Close() {
	p.screen.Fini()
}

func isQuit(k tcell.Key, r rune) bool {
	return k == tcell.KeyEscape || k == tcell.KeyCtrlC || (k == tcell.KeyRune && r == 'q')
}

var runeButtons = map[rune]core.Button{
	'w': core.ButtonUp,
	's': core.ButtonDown,
	'a': core.ButtonLeft,
	'd': core.ButtonRight,
	'x': core.ButtonCross,
	' ': core.ButtonCross,
	'c': core.ButtonCircle,
	'z': core.ButtonSquare,
	'v': core.ButtonTriangle,
}

func buttonFor(k tcell.Key, r rune) (core.Button, bool) {
	switch k {
	case tcell.KeyUp:
		return core.ButtonUp, true
	case tcell.KeyDown:
		return core.ButtonDown, true
	case tcell.KeyLeft:
		return core.ButtonLeft, true
	case tcell.KeyRight:
		return core.ButtonRight, true
	case tcell.KeyEnter:
		return core.ButtonStart, true
	case tcell.KeyTab:
		return core.ButtonSelect, true
	case tcell.KeyRune:
		b, ok := runeButtons[r]
		return b, ok
	}
	return 0, false
}
