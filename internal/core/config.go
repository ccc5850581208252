package core

// RuntimeConfig contains the settings the platform passes to the frame loop.
type RuntimeConfig struct {
	ScreenW  int    // Visible frame width in pixels
	ScreenH  int    // Visible frame height in pixels
	TickRate int    // Frames per second (default 60)
	Seed     int64  // RNG seed override; 0 seeds from the frame counter
	BuildID  string // Opaque build identifier shown in the HUD
	Debug    bool   // Invariant violations panic instead of returning errors
}
