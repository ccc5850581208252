package screens

import (
	"fmt"
	"io/fs"

	"github.com/vovakirdan/firescreen/internal/core"
	"github.com/vovakirdan/firescreen/internal/fire"
	"github.com/vovakirdan/firescreen/internal/palette"
	"github.com/vovakirdan/firescreen/internal/pipeline"
	"github.com/vovakirdan/firescreen/internal/screen"
)

const textBufferSize = 80

// MainMenuScreen shows the fire effect with the logo rising over it.
//
// Controls: UP/DOWN change the counter, CROSS toggles the fire source,
// SQUARE the palette swatches, TRIANGLE the HUD, START opens the sound
// test.
type MainMenuScreen struct{}

type mainMenuState struct {
	palette []core.RGB
	fire    *fire.Simulator
	logo    *pipeline.Logo // nil when the logo failed to load
	pipe    *pipeline.Pipeline

	fireOn   bool
	swatches bool
	hud      bool

	tickDivisor uint64
	counter     int32
	text        []byte // "Hello, world!" line, at most textBufferSize bytes
	hudLines    []string
	stats       pipeline.Stats // last drawn frame
}

func (MainMenuScreen) ID() screen.ID { return screen.MainMenu }
func (MainMenuScreen) Title() string { return "Main Menu" }

func (MainMenuScreen) Load(m *screen.Machine) (any, error) {
	cfg := m.Config()
	pal := palette.Generate(cfg.Colors(), cfg.Palette.Steps)

	seed := cfg.Seed
	if seed == 0 {
		seed = int64(m.Clock().Frame())
	}
	sim := fire.New(cfg.Fire.Width, cfg.Fire.Height, uint8(len(pal)-1), seed, cfg.Fire.Flicker)

	extra := sim.Footprint() + len(pal)*3 + textBufferSize
	st, err := screen.Alloc[mainMenuState](m.Arena(), screen.MainMenu, extra)
	if err != nil {
		return nil, err
	}
	st.palette = pal
	st.fire = sim
	st.fire.Reset()
	st.fire.Ignite(true)
	st.pipe = pipeline.New(cfg.Fire.Block)
	st.fireOn = true
	st.swatches = cfg.HUD.Swatches
	st.hud = cfg.HUD.Show
	st.tickDivisor = uint64(max(1, cfg.Fire.TickDivisor))
	st.text = make([]byte, 0, textBufferSize)
	st.hudLines = make([]string, 0, 3)
	st.formatText()

	st.logo = loadLogo(m)

	if cfg.Audio.Enabled && m.Audio().Tracks() > 0 {
		if err := m.Audio().PlayTrack(cfg.Audio.MenuTrack); err != nil {
			m.Logger().Warn("menu track unavailable", "track", cfg.Audio.MenuTrack, "err", err)
		}
	}
	return st, nil
}

// loadLogo reads and uploads the logo. Failures are logged and yield nil.
func loadLogo(m *screen.Machine) *pipeline.Logo {
	cfg := m.Config().Logo
	files := m.Files()
	if files == nil || cfg.Path == "" {
		return nil
	}
	raw, err := fs.ReadFile(files, cfg.Path)
	if err != nil {
		m.Logger().Warn("logo skipped", "path", cfg.Path, "err", err)
		return nil
	}
	tex, err := m.Surface().LoadTexture(raw)
	if err != nil {
		m.Logger().Warn("logo skipped", "path", cfg.Path, "err", err)
		return nil
	}
	return pipeline.NewLogo(tex, cfg.StartY, cfg.TargetY, cfg.EaseShift)
}

func (MainMenuScreen) Unload(m *screen.Machine, _ any) {
	m.Audio().Stop()
}

func (MainMenuScreen) Update(m *screen.Machine, state any) {
	st := state.(*mainMenuState)
	pad := m.Pad()

	if pad.JustPressed(core.ButtonUp) {
		st.counter++
	}
	if pad.JustPressed(core.ButtonDown) {
		st.counter--
	}
	if pad.JustPressed(core.ButtonCross) {
		st.fireOn = !st.fireOn
	}
	if pad.JustPressed(core.ButtonSquare) {
		st.swatches = !st.swatches
	}
	if pad.JustPressed(core.ButtonTriangle) {
		st.hud = !st.hud
	}
	if pad.JustPressed(core.ButtonStart) {
		if err := m.Change(screen.SoundTest); err != nil {
			m.Logger().Error("change screen", "err", err)
		}
	}
	st.formatText()

	if st.logo != nil {
		st.logo.Update()
	}
	if m.Clock().Frame()%st.tickDivisor == 0 {
		st.fire.Step()
		st.fire.Ignite(st.fireOn)
	}
}

func (MainMenuScreen) Draw(m *screen.Machine, state any) error {
	st := state.(*mainMenuState)

	st.hudLines = append(st.hudLines[:0], string(st.text))
	if st.hud {
		st.hudLines = append(st.hudLines,
			"build "+m.BuildID(),
			fmt.Sprintf("%d fps  %d tiles", m.Clock().FPS(), st.stats.Tiles),
		)
	}

	stats, err := st.pipe.Draw(m.Surface(), pipeline.Input{
		Fire:     st.fire,
		Palette:  st.palette,
		Logo:     st.logo,
		Swatches: st.swatches,
		HUD:      st.hudLines,
	})
	st.stats = stats
	return err
}

func (st *mainMenuState) formatText() {
	st.text = fmt.Appendf(st.text[:0], "Hello, world! Counter: %d", st.counter)
	if len(st.text) > textBufferSize {
		st.text = st.text[:textBufferSize]
	}
}
