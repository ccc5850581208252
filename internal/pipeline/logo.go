package pipeline

import "github.com/vovakirdan/firescreen/internal/render"

// LogoFracBits is the fixed-point precision of the logo position.
const LogoFracBits = 12

// Logo animates a texture rising (or falling) to a target row with a
// decelerating ease: every update covers 1/2^shift of the remaining
// distance, at least one fixed-point unit, and stops exactly on target.
type Logo struct {
	tex    render.Texture
	y      int32
	target int32
	shift  uint
}

// NewLogo places tex at startY easing toward targetY.
func NewLogo(tex render.Texture, startY, targetY int, shift uint) *Logo {
	return &Logo{
		tex:    tex,
		y:      int32(startY) << LogoFracBits,
		target: int32(targetY) << LogoFracBits,
		shift:  shift,
	}
}

// Update advances the animation by one frame.
func (l *Logo) Update() {
	switch {
	case l.y > l.target:
		d := (l.y - l.target) >> l.shift
		if d < 1 {
			d = 1
		}
		l.y -= d
	case l.y < l.target:
		d := (l.target - l.y) >> l.shift
		if d < 1 {
			d = 1
		}
		l.y += d
	}
}

// Y returns the current row in whole pixels.
func (l *Logo) Y() int { return int(l.y >> LogoFracBits) }

// Done reports whether the logo has reached its target.
func (l *Logo) Done() bool { return l.y == l.target }

// Texture returns the logo texture.
func (l *Logo) Texture() render.Texture { return l.tex }
