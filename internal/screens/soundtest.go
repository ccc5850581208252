package screens

import (
	"fmt"

	"github.com/vovakirdan/firescreen/internal/core"
	"github.com/vovakirdan/firescreen/internal/gpu"
	"github.com/vovakirdan/firescreen/internal/pipeline"
	"github.com/vovakirdan/firescreen/internal/screen"
)

// SoundTestScreen lists the audio tracks. UP/DOWN select, CROSS plays,
// SQUARE stops, TRIANGLE or START return to the main menu.
type SoundTestScreen struct{}

type soundTestState struct {
	cursor int
	lines  []string
}

var highlight = core.RGB{R: 0x60, G: 0x10}

func (SoundTestScreen) ID() screen.ID { return screen.SoundTest }
func (SoundTestScreen) Title() string { return "Sound Test" }

func (SoundTestScreen) Load(m *screen.Machine) (any, error) {
	player := m.Audio()
	n := player.Tracks()
	names := make([]string, n)
	extra := 0
	for i := range names {
		names[i] = player.Name(i)
		if names[i] == "" {
			names[i] = fmt.Sprintf("Track %02d", i)
		}
		extra += len(names[i])
	}
	st, err := screen.Alloc[soundTestState](m.Arena(), screen.SoundTest, extra)
	if err != nil {
		return nil, err
	}
	st.lines = names
	return st, nil
}

func (SoundTestScreen) Unload(m *screen.Machine, _ any) {
	m.Audio().Stop()
}

func (SoundTestScreen) Update(m *screen.Machine, state any) {
	st := state.(*soundTestState)
	pad := m.Pad()
	n := len(st.lines)

	if n > 0 {
		if pad.JustPressed(core.ButtonUp) {
			st.cursor = (st.cursor + n - 1) % n
		}
		if pad.JustPressed(core.ButtonDown) {
			st.cursor = (st.cursor + 1) % n
		}
		if pad.JustPressed(core.ButtonCross) {
			if err := m.Audio().PlayTrack(st.cursor); err != nil {
				m.Logger().Warn("play track", "track", st.cursor, "err", err)
			}
		}
	}
	if pad.JustPressed(core.ButtonSquare) {
		m.Audio().Stop()
	}
	if pad.JustPressed(core.ButtonTriangle) || pad.JustPressed(core.ButtonStart) {
		if err := m.Change(screen.MainMenu); err != nil {
			m.Logger().Error("change screen", "err", err)
		}
	}
}

func (SoundTestScreen) Draw(m *screen.Machine, state any) error {
	st := state.(*soundTestState)
	s := m.Surface()
	x, y := pipeline.HUDMargin, pipeline.HUDMargin
	lh := s.LineHeight()

	s.DrawText(x, y, "SOUND TEST")
	if len(st.lines) == 0 {
		s.DrawText(x, y+2*lh, "no tracks")
		return nil
	}

	playing := m.Audio().Current()
	for i, line := range st.lines {
		marker := "  "
		if i == playing {
			marker = "> "
		}
		s.DrawText(x, y+(i+2)*lh, marker+line)
	}

	w := s.MeasureText("> "+st.lines[st.cursor]) + 4
	hy := y + (st.cursor+2)*lh - 1
	return s.Add(pipeline.OTZComposite, gpu.Tile(x-2, hy, w, lh, highlight))
}
