package screens

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/firescreen/internal/audio"
	"github.com/vovakirdan/firescreen/internal/config"
	"github.com/vovakirdan/firescreen/internal/core"
	"github.com/vovakirdan/firescreen/internal/gpu"
	"github.com/vovakirdan/firescreen/internal/pipeline"
	"github.com/vovakirdan/firescreen/internal/render"
	"github.com/vovakirdan/firescreen/internal/screen"
)

type harness struct {
	m       *screen.Machine
	surface *render.SoftSurface
	latch   *core.KeyLatch
	audio   *audio.Nop
}

func newHarness(t *testing.T, files fstest.MapFS) *harness {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Seed = 1

	capacity := pipeline.Capacity(cfg.Fire.Width, cfg.Fire.Height, cfg.Fire.Width*cfg.Fire.Block, cfg.PaletteLen())
	surface, err := render.NewSoftSurface(render.Options{
		Width:    cfg.Display.Width,
		Height:   cfg.Display.Height,
		Depth:    pipeline.Depth,
		Capacity: capacity,
	}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	h := &harness{surface: surface, latch: &core.KeyLatch{}, audio: audio.NewNop(3)}
	host := screen.Host{
		Surface: surface,
		Input:   h.latch,
		Audio:   h.audio,
		Config:  cfg,
		BuildID: "test",
	}
	if files != nil {
		host.Files = files
	}
	h.m = screen.NewMachine(host, cfg.Screen.ArenaBytes)
	return h
}

func (h *harness) frame(t *testing.T, pressed ...core.Button) {
	t.Helper()
	for _, b := range pressed {
		h.latch.Press(b)
	}
	if err := h.m.Frame(); err != nil {
		t.Fatalf("Frame: %v", err)
	}
}

func (h *harness) menuState(t *testing.T) *mainMenuState {
	t.Helper()
	_, st := h.m.Active()
	ms, ok := st.(*mainMenuState)
	if !ok {
		t.Fatalf("active state is %T, expected main menu", st)
	}
	return ms
}

func logoPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 32, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 32; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 0xC0, G: 0xC0, B: 0xC0, A: 0xFF})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestMainMenuEndToEnd(t *testing.T) {
	h := newHarness(t, fstest.MapFS{"logo.png": {Data: logoPNG(t)}})

	if h.m.ActiveID() != "" {
		t.Fatal("machine should start unloaded")
	}
	if err := h.m.Change(screen.MainMenu); err != nil {
		t.Fatal(err)
	}
	st := h.menuState(t)

	if len(st.palette) != 33 {
		t.Errorf("palette length = %d, expected 33", len(st.palette))
	}
	for x, v := range st.fire.Row(st.fire.Height() - 1) {
		if v != 32 {
			t.Fatalf("bottom row cell %d = %d, expected 32", x, v)
		}
	}
	if st.logo == nil {
		t.Fatal("logo should be loaded")
	}

	h.frame(t)
	h.frame(t)
	if st.fire.Ticks() != 1 {
		t.Errorf("fire stepped %d times in two frames, expected 1", st.fire.Ticks())
	}

	scr, state := h.m.Active()
	if err := scr.Draw(h.m, state); err != nil {
		t.Fatal(err)
	}
	ot := h.surface.Pending()
	if n := ot.Count(pipeline.OTZClearOffscreen, gpu.KindFillRect); n != 1 {
		t.Errorf("bucket 6 fills = %d, expected 1", n)
	}
	if n := ot.Count(pipeline.OTZRestore, gpu.KindDrawArea); n != 1 {
		t.Errorf("bucket 4 draw areas = %d, expected 1", n)
	}
	if n := ot.Count(pipeline.OTZComposite, gpu.KindSprite); n < 1 {
		t.Errorf("bucket 0 sprites = %d, expected at least 1", n)
	}
	if n := ot.Count(pipeline.OTZLogo, gpu.KindQuad); n != 1 {
		t.Errorf("bucket 1 quads = %d, expected 1", n)
	}
	if n := ot.Count(pipeline.OTZFireCells, gpu.KindTile); n != st.fire.NonZero() {
		t.Errorf("bucket 5 tiles = %d, grid has %d lit cells", n, st.fire.NonZero())
	}
}

func TestMainMenuHUDShowsDrawnTiles(t *testing.T) {
	h := newHarness(t, nil)
	if err := h.m.Change(screen.MainMenu); err != nil {
		t.Fatal(err)
	}
	st := h.menuState(t)

	h.frame(t)
	tiles := st.stats.Tiles
	if tiles == 0 {
		t.Fatal("a lit fire should draw tiles")
	}
	scr, state := h.m.Active()
	if err := scr.Draw(h.m, state); err != nil {
		t.Fatal(err)
	}
	if len(st.hudLines) != 3 || !strings.HasSuffix(st.hudLines[2], fmt.Sprintf("  %d tiles", tiles)) {
		t.Errorf("HUD = %q, expected %d tiles", st.hudLines, tiles)
	}
}

func TestMainMenuMissingLogoDegrades(t *testing.T) {
	h := newHarness(t, fstest.MapFS{})
	if err := h.m.Change(screen.MainMenu); err != nil {
		t.Fatalf("missing logo must not fail the load: %v", err)
	}
	st := h.menuState(t)
	if st.logo != nil {
		t.Error("logo should be skipped")
	}

	scr, state := h.m.Active()
	if err := scr.Draw(h.m, state); err != nil {
		t.Fatal(err)
	}
	if n := h.surface.Pending().Count(pipeline.OTZLogo, gpu.KindQuad); n != 0 {
		t.Errorf("bucket 1 quads = %d without a logo", n)
	}
}

func TestMainMenuCorruptLogoDegrades(t *testing.T) {
	h := newHarness(t, fstest.MapFS{"logo.png": {Data: []byte("garbage")}})
	if err := h.m.Change(screen.MainMenu); err != nil {
		t.Fatalf("corrupt logo must not fail the load: %v", err)
	}
	if h.menuState(t).logo != nil {
		t.Error("logo should be skipped")
	}
}

func TestMainMenuControls(t *testing.T) {
	h := newHarness(t, nil)
	if err := h.m.Change(screen.MainMenu); err != nil {
		t.Fatal(err)
	}
	st := h.menuState(t)

	if h.audio.Playing != 0 {
		t.Errorf("menu track = %d, expected 0", h.audio.Playing)
	}

	h.frame(t, core.ButtonUp)
	h.frame(t)
	h.frame(t, core.ButtonUp)
	h.frame(t, core.ButtonDown, core.ButtonUp)
	if got := string(st.text); got != "Hello, world! Counter: 2" {
		t.Errorf("text = %q", got)
	}

	hud, swatches := st.hud, st.swatches
	h.frame(t, core.ButtonTriangle, core.ButtonSquare, core.ButtonCross)
	if st.hud == hud || st.swatches == swatches || st.fireOn {
		t.Error("TRIANGLE, SQUARE and CROSS should toggle their flags")
	}

	// with the source off the grid burns out
	for i := 0; i < 200; i++ {
		h.frame(t)
	}
	if st.fire.NonZero() != 0 {
		t.Errorf("NonZero() = %d after extinguishing", st.fire.NonZero())
	}
}

func TestTextBufferBounded(t *testing.T) {
	st := &mainMenuState{text: make([]byte, 0, textBufferSize), counter: -2147483648}
	st.formatText()
	if len(st.text) > textBufferSize {
		t.Errorf("text length %d exceeds %d", len(st.text), textBufferSize)
	}
	if string(st.text) != "Hello, world! Counter: -2147483648" {
		t.Errorf("text = %q", st.text)
	}
}

func TestSoundTestRoundTrip(t *testing.T) {
	h := newHarness(t, nil)
	if err := h.m.Change(screen.MainMenu); err != nil {
		t.Fatal(err)
	}

	h.frame(t, core.ButtonStart)
	if h.m.ActiveID() != screen.SoundTest {
		t.Fatalf("ActiveID() = %q, expected sound test", h.m.ActiveID())
	}
	if h.audio.Playing != -1 {
		t.Error("leaving the main menu should stop audio")
	}

	h.frame(t, core.ButtonDown)
	h.frame(t, core.ButtonDown)
	h.frame(t, core.ButtonCross)
	if h.audio.Playing != 2 {
		t.Errorf("playing track %d, expected 2", h.audio.Playing)
	}
	h.frame(t, core.ButtonDown)
	_, state := h.m.Active()
	if st := state.(*soundTestState); st.cursor != 0 || h.audio.Current() != 2 {
		t.Errorf("cursor = %d, playing = %d", st.cursor, h.audio.Current())
	}

	h.frame(t, core.ButtonSquare)
	if h.audio.Playing != -1 {
		t.Error("SQUARE should stop playback")
	}

	h.frame(t, core.ButtonTriangle)
	if h.m.ActiveID() != screen.MainMenu {
		t.Errorf("ActiveID() = %q, expected main menu", h.m.ActiveID())
	}
	if !h.m.Arena().Live() || h.m.Arena().Owner() != screen.MainMenu {
		t.Error("arena should hold the main menu state")
	}
}

func TestSoundTestDrawsHighlight(t *testing.T) {
	h := newHarness(t, nil)
	if err := h.m.Change(screen.SoundTest); err != nil {
		t.Fatal(err)
	}
	scr, state := h.m.Active()
	if err := scr.Draw(h.m, state); err != nil {
		t.Fatal(err)
	}
	b0 := h.surface.Pending().Bucket(pipeline.OTZComposite)
	if len(b0) != 1 || b0[0].Kind != gpu.KindTile || b0[0].Color != highlight {
		t.Fatalf("bucket 0 = %v, expected one highlight tile", b0)
	}
	lh := h.surface.LineHeight()
	if got := b0[0].Rect.Dy(); got != lh {
		t.Errorf("highlight height = %d, expected line height %d", got, lh)
	}
	if got, want := b0[0].Rect.Dx(), h.surface.MeasureText("> Track 00")+4; got != want {
		t.Errorf("highlight width = %d, expected %d", got, want)
	}
}

func TestSoundTestListsTrackNames(t *testing.T) {
	h := newHarness(t, nil)
	if err := h.m.Change(screen.SoundTest); err != nil {
		t.Fatal(err)
	}
	_, state := h.m.Active()
	lines := state.(*soundTestState).lines
	if len(lines) != 3 || lines[0] != "Track 00" || lines[2] != "Track 02" {
		t.Errorf("lines = %q", lines)
	}
}

func TestScreensRegistered(t *testing.T) {
	for _, id := range []screen.ID{screen.MainMenu, screen.SoundTest} {
		if !screen.Exists(id) {
			t.Errorf("%s not registered", id)
		}
	}
}
