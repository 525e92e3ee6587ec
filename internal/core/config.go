package core

import "github.com/go-gl/mathgl/mgl64"

// RuntimeConfig contains configuration passed to the controller at startup.
// Backends use it to size and title the window.
type RuntimeConfig struct {
	Title    string // Window title
	Width    int    // Window width in pixels
	Height   int    // Window height in pixels
	Enable3D bool   // Enable depth testing
	TickRate int    // Frames per second for backends that pace themselves
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Title:    "Robot Run",
		Width:    600,
		Height:   600,
		Enable3D: false,
		TickRate: 60,
	}
}

// Resolution returns the window size as a vector.
func (c RuntimeConfig) Resolution() mgl64.Vec2 {
	return mgl64.Vec2{float64(c.Width), float64(c.Height)}
}
