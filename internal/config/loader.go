package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTuning loads gameplay tuning.
// Search order: customPath -> ~/.robotrun/configs/tuning.yaml -> ./configs/tuning.yaml -> embedded default
// Files are decoded on top of the defaults, so partial files are fine.
func LoadTuning(customPath string) (Tuning, error) {
	cfg := DefaultTuning()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tuning.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := DefaultTuning()
			if err := yaml.Unmarshal(data, &candidate); err == nil && candidate.Validate() == nil {
				return candidate, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "tuning.yaml")); err == nil {
		candidate := DefaultTuning()
		if err := yaml.Unmarshal(data, &candidate); err == nil && candidate.Validate() == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTuningYAML, &cfg); err != nil {
		return DefaultTuning(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Validate rejects tuning the game cannot run with.
func (t Tuning) Validate() error {
	if t.Robot.Speed < 0 {
		return fmt.Errorf("config: robot speed must not be negative, got %v", t.Robot.Speed)
	}
	if t.Robot.ShrinkStep < 0 {
		return fmt.Errorf("config: robot shrink_step must not be negative, got %v", t.Robot.ShrinkStep)
	}
	if t.Robot.Direction == [2]float64{} {
		return fmt.Errorf("config: robot direction must not be zero")
	}
	if t.Scene.TickRate <= 0 {
		return fmt.Errorf("config: scene tick_rate must be positive, got %d", t.Scene.TickRate)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".robotrun", "configs", filename)
}
