// Package config provides YAML-based tuning for the game: robot speed and
// death animation, flame animation speed and the scene background.
package config

import "github.com/vovakirdan/robotrun/internal/core"

// Tuning contains every gameplay constant that is not part of a level.
type Tuning struct {
	Robot  RobotTuning  `yaml:"robot"`
	Flames FlamesTuning `yaml:"flames"`
	Scene  SceneTuning  `yaml:"scene"`
}

// RobotTuning defines movement and death animation of the robot.
type RobotTuning struct {
	Speed      float64    `yaml:"speed"`       // Pixels per frame along the direction vector
	Direction  [2]float64 `yaml:"direction"`   // Initial heading
	SpinStep   float64    `yaml:"spin_step"`   // Degrees added per frame while dead
	ShrinkStep float64    `yaml:"shrink_step"` // Pixels removed from each size axis per frame while dead
}

// FlamesTuning defines the flame shader animation.
type FlamesTuning struct {
	TimeStep float64 `yaml:"time_step"` // u_time increment per drawn frame
}

// SceneTuning defines frame-level settings.
type SceneTuning struct {
	Background [4]float32 `yaml:"background"` // Clear colour as RGBA
	TickRate   int        `yaml:"tick_rate"`  // Frames per second for paced backends
}

// BackgroundColor returns the clear colour.
func (s SceneTuning) BackgroundColor() core.Color {
	return core.RGBA(s.Background[0], s.Background[1], s.Background[2], s.Background[3])
}
