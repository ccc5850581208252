// Package palette builds colour ramps by linear interpolation between control
// colours. Interpolation runs in 12-bit fixed point so the result is exact and
// identical on every platform.
package palette

import "github.com/vovakirdan/firescreen/internal/core"

// FracBits is the number of fractional bits of the interpolation parameter.
const FracBits = 12

const one = 1 << FracBits

// Size returns the length of the palette Generate builds for k control
// colours and the given number of steps per segment.
func Size(k, stepsPerSegment int) int {
	if k < 2 || stepsPerSegment < 1 {
		return 1
	}
	return stepsPerSegment*(k-1) + 1
}

// Generate returns a ramp of stepsPerSegment*(len(colors)-1)+1 colours.
// Index 0 is always black. Each segment (c1, c2) is sampled at
// t = (i+0.5)/stepsPerSegment so control colours are never repeated at
// segment boundaries.
func Generate(colors []core.RGB, stepsPerSegment int) []core.RGB {
	out := make([]core.RGB, 1, Size(len(colors), stepsPerSegment))
	out[0] = core.Black
	if len(colors) < 2 || stepsPerSegment < 1 {
		return out
	}

	for seg := 0; seg+1 < len(colors); seg++ {
		c1, c2 := colors[seg], colors[seg+1]
		for i := 0; i < stepsPerSegment; i++ {
			t := ((2*i + 1) * one) / (2 * stepsPerSegment)
			out = append(out, core.RGB{
				R: lerp(c1.R, c2.R, t),
				G: lerp(c1.G, c2.G, t),
				B: lerp(c1.B, c2.B, t),
			})
		}
	}
	return out
}

// lerp evaluates a + (b-a)*t with t in fixed point. The arithmetic shift
// floors, which keeps the result inside [min(a,b), max(a,b)].
func lerp(a, b uint8, t int) uint8 {
	d := int(b) - int(a)
	return uint8(int(a) + (d*t)>>FracBits)
}
