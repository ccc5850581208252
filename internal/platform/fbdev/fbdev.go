// Package fbdev presents frames on the Linux framebuffer and reads keys
// from a raw-mode terminal on stdin.
package fbdev

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"

	fb "github.com/gonutz/framebuffer"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/term"

	"github.com/vovakirdan/firescreen/internal/core"
)

// DefaultDevice is the framebuffer opened by Open.
const DefaultDevice = "/dev/fb0"

// Presenter scales frames onto a framebuffer, keeping the aspect ratio.
type Presenter struct {
	dst     draw.Image
	release func()
	latch   *core.KeyLatch

	inFd     int
	oldState *term.State
}

// Open opens the framebuffer device and switches stdin to raw mode.
func Open(path string, latch *core.KeyLatch) (*Presenter, error) {
	if path == "" {
		path = DefaultDevice
	}
	dev, err := fb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fbdev: open %s: %w", path, err)
	}
	p := NewWithImage(dev, latch)
	p.release = func() { dev.Close() }

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		old, err := term.MakeRaw(fd)
		if err != nil {
			dev.Close()
			return nil, fmt.Errorf("fbdev: raw stdin: %w", err)
		}
		p.inFd = fd
		p.oldState = old
	}
	return p, nil
}

// NewWithImage presents onto any draw.Image.
func NewWithImage(dst draw.Image, latch *core.KeyLatch) *Presenter {
	return &Presenter{dst: dst, latch: latch}
}

// Present scales frame to fit the device, letterboxed and centred.
func (p *Presenter) Present(frame *image.RGBA) error {
	xdraw.NearestNeighbor.Scale(p.dst, Fit(p.dst.Bounds(), frame.Bounds().Size()), frame, frame.Bounds(), xdraw.Src, nil)
	return nil
}

// Fit returns the largest rectangle of the given aspect centred in dst.
func Fit(dst image.Rectangle, size image.Point) image.Rectangle {
	if size.X <= 0 || size.Y <= 0 {
		return image.Rectangle{}
	}
	w, h := dst.Dx(), dst.Dy()
	if w*size.Y > h*size.X {
		w = h * size.X / size.Y
	} else {
		h = w * size.Y / size.X
	}
	o := dst.Min.Add(image.Pt((dst.Dx()-w)/2, (dst.Dy()-h)/2))
	return image.Rectangle{Min: o, Max: o.Add(image.Pt(w, h))}
}

// Listen reads key presses from r until it fails or a quit key arrives.
func (p *Presenter) Listen(ctx context.Context, r io.Reader, quit func()) {
	buf := make([]byte, 64)
	for ctx.Err() == nil {
		n, err := r.Read(buf)
		if n > 0 {
			buttons, q := ParseKeys(buf[:n])
			for _, b := range buttons {
				p.latch.Press(b)
			}
			if q {
				quit()
				return
			}
		}
		if err != nil {
			return
		}
	}
}

// Close restores the terminal and releases the device.
func (p *Presenter) Close() {
	if p.oldState != nil {
		term.Restore(p.inFd, p.oldState)
		p.oldState = nil
	}
	if p.release != nil {
		p.release()
		p.release = nil
	}
}

var escButtons = map[byte]core.Button{
	'A': core.ButtonUp,
	'B': core.ButtonDown,
	'C': core.ButtonRight,
	'D': core.ButtonLeft,
}

var byteButtons = map[byte]core.Button{
	'w':  core.ButtonUp,
	's':  core.ButtonDown,
	'a':  core.ButtonLeft,
	'd':  core.ButtonRight,
	'x':  core.ButtonCross,
	' ':  core.ButtonCross,
	'c':  core.ButtonCircle,
	'z':  core.ButtonSquare,
	'v':  core.ButtonTriangle,
	'\r': core.ButtonStart,
	'\n': core.ButtonStart,
	'\t': core.ButtonSelect,
}

// ParseKeys decodes raw terminal input. It understands arrow escape
// sequences (CSI and SS3) and single bytes; a lone ESC, q or Ctrl+C
// reports quit.
func ParseKeys(in []byte) (buttons []core.Button, quit bool) {
	for i := 0; i < len(in); i++ {
		c := in[i]
		switch {
		case c == 0x1b:
			if i+2 < len(in) && (in[i+1] == '[' || in[i+1] == 'O') {
				if b, ok := escButtons[in[i+2]]; ok {
					buttons = append(buttons, b)
				}
				i += 2
				continue
			}
			return buttons, true
		case c == 'q' || c == 0x03:
			return buttons, true
		default:
			if b, ok := byteButtons[c]; ok {
				buttons = append(buttons, b)
			}
		}
	}
	return buttons, false
}
