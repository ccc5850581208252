// Package config provides YAML-based configuration loading for the demo:
// display, fire, palette, logo, HUD, audio and screen settings.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/firescreen/internal/core"
)

// Config is the complete runtime configuration.
type Config struct {
	Display   DisplayConfig `yaml:"display"`
	Fire      FireConfig    `yaml:"fire"`
	Palette   PaletteConfig `yaml:"palette"`
	Logo      LogoConfig    `yaml:"logo"`
	HUD       HUDConfig     `yaml:"hud"`
	Audio     AudioConfig   `yaml:"audio"`
	Screen    ScreenConfig  `yaml:"screen"`
	AssetsDir string        `yaml:"assets_dir"` // root of the file system screens read from
	Seed      int64         `yaml:"seed"`       // 0 seeds the fire from the frame counter
}

// DisplayConfig defines the visible frame.
type DisplayConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	FPS        int    `yaml:"fps"`
	Background string `yaml:"background"`
}

// FireConfig defines the fire grid and how fast it evolves.
type FireConfig struct {
	Width       int     `yaml:"width"`        // cells
	Height      int     `yaml:"height"`       // cells
	Block       int     `yaml:"block"`        // pixels per cell edge
	Flicker     float64 `yaml:"flicker"`      // probability the row above the source is lit too
	TickDivisor int     `yaml:"tick_divisor"` // simulate every Nth frame
}

// PaletteConfig defines the control colours and interpolation steps.
type PaletteConfig struct {
	Steps  int      `yaml:"steps"`
	Colors []string `yaml:"colors"`
}

// LogoConfig defines the logo image and its entry animation.
type LogoConfig struct {
	Path      string `yaml:"path"`
	StartY    int    `yaml:"start_y"`
	TargetY   int    `yaml:"target_y"`
	EaseShift uint   `yaml:"ease_shift"`
}

// HUDConfig toggles the overlays shown at start-up.
type HUDConfig struct {
	Show     bool    `yaml:"show"`
	Swatches bool    `yaml:"swatches"`
	FontPath string  `yaml:"font_path"` // TrueType file; empty uses the built-in face
	FontSize float64 `yaml:"font_size"`
}

// AudioConfig defines the track source.
type AudioConfig struct {
	Enabled    bool   `yaml:"enabled"`
	TracksDir  string `yaml:"tracks_dir"`
	MenuTrack  int    `yaml:"menu_track"`
	Tracks     int    `yaml:"tracks"` // synthesised tracks when no files are found
	SampleRate int    `yaml:"sample_rate"`
}

// ScreenConfig defines the screen machine.
type ScreenConfig struct {
	Initial    string `yaml:"initial"`
	ArenaBytes int    `yaml:"arena_bytes"`
}

// VRAM limits the configuration has to fit.
const (
	MaxDisplayWidth  = 640
	MaxDisplayHeight = 256
	MaxFireWidth     = 384 // offscreen column width in pixels
	MaxFireHeight    = 256
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Validate checks that the configuration is internally consistent and fits
// the video memory layout.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	d := c.Display
	check(d.Width > 0 && d.Width <= MaxDisplayWidth, "display.width %d not in (0, %d]", d.Width, MaxDisplayWidth)
	check(d.Height > 0 && d.Height <= MaxDisplayHeight, "display.height %d not in (0, %d]", d.Height, MaxDisplayHeight)
	check(d.FPS > 0, "display.fps must be positive")
	if _, err := core.ParseRGB(d.Background); err != nil {
		errs = append(errs, fmt.Errorf("%w: display.background: %v", ErrInvalid, err))
	}

	f := c.Fire
	check(f.Width > 0 && f.Height > 0, "fire grid %dx%d must be positive", f.Width, f.Height)
	check(f.Block > 0, "fire.block must be positive")
	check(f.Width*f.Block <= MaxFireWidth && f.Height*f.Block <= MaxFireHeight,
		"fire footprint %dx%d exceeds offscreen %dx%d", f.Width*f.Block, f.Height*f.Block, MaxFireWidth, MaxFireHeight)
	check(f.Flicker >= 0 && f.Flicker <= 1, "fire.flicker %v not in [0, 1]", f.Flicker)
	check(f.TickDivisor > 0, "fire.tick_divisor must be positive")

	p := c.Palette
	check(p.Steps > 0, "palette.steps must be positive")
	check(len(p.Colors) >= 2, "palette needs at least two colours")
	check(p.Steps*(len(p.Colors)-1) < 256, "palette of %d entries does not fit a byte index", p.Steps*(len(p.Colors)-1)+1)
	if _, err := core.ParseColors(p.Colors); err != nil {
		errs = append(errs, fmt.Errorf("%w: palette.colors: %v", ErrInvalid, err))
	}

	check(c.Logo.EaseShift < 16, "logo.ease_shift %d too large", c.Logo.EaseShift)
	check(c.Audio.MenuTrack >= 0, "audio.menu_track must not be negative")
	check(c.Screen.ArenaBytes > 0, "screen.arena_bytes must be positive")

	return errors.Join(errs...)
}

// Colors returns the parsed palette control colours.
func (c Config) Colors() []core.RGB {
	cols, err := core.ParseColors(c.Palette.Colors)
	if err != nil {
		return nil
	}
	return cols
}

// Background returns the parsed display background colour.
func (c Config) Background() core.RGB {
	bg, _ := core.ParseRGB(c.Display.Background)
	return bg
}

// PaletteLen returns the number of entries the palette generator produces.
func (c Config) PaletteLen() int {
	if c.Palette.Steps < 1 || len(c.Palette.Colors) < 2 {
		return 1
	}
	return c.Palette.Steps*(len(c.Palette.Colors)-1) + 1
}

// Runtime projects the configuration onto the frame loop settings.
func (c Config) Runtime(buildID string, debug bool) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  c.Display.Width,
		ScreenH:  c.Display.Height,
		TickRate: c.Display.FPS,
		Seed:     c.Seed,
		BuildID:  buildID,
		Debug:    debug,
	}
}
