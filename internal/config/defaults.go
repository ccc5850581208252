package config

import (
	_ "embed"
)

//go:embed defaults/firescreen.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded configuration, used when even the
// embedded YAML cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Width:      320,
			Height:     240,
			FPS:        60,
			Background: "#000000",
		},
		Fire: FireConfig{
			Width:       80,
			Height:      60,
			Block:       4,
			Flicker:     0.5,
			TickDivisor: 2,
		},
		Palette: PaletteConfig{
			Steps:  8,
			Colors: []string{"#000000", "#7f0000", "#ff4000", "#ffc000", "#ffffff"},
		},
		Logo: LogoConfig{
			Path:      "logo.png",
			StartY:    240,
			TargetY:   40,
			EaseShift: 4,
		},
		HUD: HUDConfig{
			Show:     true,
			Swatches: false,
			FontSize: 12,
		},
		Audio: AudioConfig{
			Enabled:    true,
			TracksDir:  "audio",
			MenuTrack:  0,
			Tracks:     3,
			SampleRate: 44100,
		},
		Screen: ScreenConfig{
			Initial:    "mainmenu",
			ArenaBytes: 64 * 1024,
		},
		AssetsDir: "assets",
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
