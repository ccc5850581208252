package beepaudio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Minor pentatonic scale degrees in semitones above the root.
var pentatonic = []int{0, 3, 5, 7, 10, 12, 10, 7}

const noteLength = 180 * time.Millisecond

// synthTrack renders a short arpeggio whose root rises with the track
// index.
func synthTrack(sr beep.SampleRate, index int) (*beep.Buffer, error) {
	root := 220.0 * semitone(index*5)
	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})

	for _, step := range pentatonic {
		tone, err := generators.SineTone(sr, root*semitone(step))
		if err != nil {
			return nil, err
		}
		note := &effects.Volume{
			Streamer: beep.Take(sr.N(noteLength), tone),
			Base:     2,
			Volume:   -2,
		}
		buf.Append(note)
	}
	return buf, nil
}

func semitone(n int) float64 {
	return math.Pow(2, float64(n)/12)
}
