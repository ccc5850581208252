// Package screens contains the demo's screens. Importing it registers them.
package screens

import "github.com/vovakirdan/firescreen/internal/screen"

func init() {
	screen.Register(MainMenuScreen{})
	screen.Register(SoundTestScreen{})
}
