// Package window runs the screen machine inside an ebiten window.
package window

import (
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/firescreen/internal/core"
)

// FrameFunc runs one frame of the screen machine.
type FrameFunc func() error

var keyButtons = []struct {
	key    ebiten.Key
	button core.Button
}{
	{ebiten.KeyArrowUp, core.ButtonUp},
	{ebiten.KeyW, core.ButtonUp},
	{ebiten.KeyArrowDown, core.ButtonDown},
	{ebiten.KeyS, core.ButtonDown},
	{ebiten.KeyArrowLeft, core.ButtonLeft},
	{ebiten.KeyA, core.ButtonLeft},
	{ebiten.KeyArrowRight, core.ButtonRight},
	{ebiten.KeyD, core.ButtonRight},
	{ebiten.KeyX, core.ButtonCross},
	{ebiten.KeySpace, core.ButtonCross},
	{ebiten.KeyC, core.ButtonCircle},
	{ebiten.KeyZ, core.ButtonSquare},
	{ebiten.KeyV, core.ButtonTriangle},
	{ebiten.KeyEnter, core.ButtonStart},
	{ebiten.KeyTab, core.ButtonSelect},
}

// Game implements ebiten.Game. It is also the frame presenter and the
// button source for the machine it drives.
type Game struct {
	frame FrameFunc
	w, h  int

	mu  sync.Mutex
	buf []byte
	img *ebiten.Image
}

// New creates a window game with a w×h logical screen.
func New(w, h int) *Game {
	return &Game{w: w, h: h, buf: make([]byte, 4*w*h)}
}

// SetFrame sets the function run once per ebiten update.
func (g *Game) SetFrame(f FrameFunc) { g.frame = f }

// Present copies frame into the pixel buffer uploaded on the next Draw.
func (g *Game) Present(frame *image.RGBA) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	b := frame.Bounds()
	rows := min(b.Dy(), g.h)
	cols := min(b.Dx(), g.w)
	for y := 0; y < rows; y++ {
		src := frame.Pix[frame.PixOffset(b.Min.X, b.Min.Y+y):]
		copy(g.buf[4*y*g.w:4*y*g.w+4*cols], src[:4*cols])
	}
	return nil
}

// Buttons reports the keys held right now.
func (g *Game) Buttons() core.ButtonSet {
	var s core.ButtonSet
	for _, kb := range keyButtons {
		if ebiten.IsKeyPressed(kb.key) {
			s = s.With(kb.button)
		}
	}
	return s
}

// Update runs one machine frame. Escape closes the window.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if g.frame == nil {
		return nil
	}
	return g.frame()
}

// Draw uploads the last presented frame.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(g.w, g.h)
	}
	g.mu.Lock()
	g.img.WritePixels(g.buf)
	g.mu.Unlock()
	screen.DrawImage(g.img, nil)
}

// Layout keeps the logical screen size fixed and lets ebiten scale it.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.w, g.h
}

// Run opens the window and blocks until it closes.
func (g *Game) Run(title string, scale, tps int) error {
	if scale <= 0 {
		scale = 2
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.w*scale, g.h*scale)
	if tps > 0 {
		ebiten.SetTPS(tps)
	}
	return ebiten.RunGame(g)
}
