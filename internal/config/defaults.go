package config

import (
	_ "embed"
)

//go:embed defaults/tuning.yaml
var defaultTuningYAML []byte

// DefaultTuning returns the default gameplay tuning.
func DefaultTuning() Tuning {
	return Tuning{
		Robot: RobotTuning{
			Speed:      0.6,
			Direction:  [2]float64{0, 1},
			SpinStep:   0.2,
			ShrinkStep: 0.03,
		},
		Flames: FlamesTuning{
			TimeStep: 0.0005,
		},
		Scene: SceneTuning{
			Background: [4]float32{0.709, 0.486, 0.443, 1.0},
			TickRate:   60,
		},
	}
}
