// robotrun plays small robot levels: a robot walks in a straight line,
// bounces off walls, turns on rotators, burns in flames and stops on the
// finish pad.
//
// Usage:
//
//	robotrun list              - List available levels
//	robotrun play [level]      - Play a level (default: workshop)
//	robotrun sim [level]       - Run a level headless and print the outcome
//	robotrun menu              - Pick a level interactively
//
// Global flags:
//
//	--title <text>      - Window title
//	--width, --height   - Window size in pixels (0 = level resolution)
//	--3d                - Enable depth testing
//	--fps <rate>        - Tick rate (default: 60)
//	--log-level <lvl>   - debug, info, warn or error
//	--tuning <path>     - Path to a custom tuning YAML
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/robotrun/internal/config"
	"github.com/vovakirdan/robotrun/internal/core"
	"github.com/vovakirdan/robotrun/internal/scene"
)

var (
	// Global flags
	flagTitle    string
	flagWidth    int
	flagHeight   int
	flag3D       bool
	flagFPS      int
	flagLogLevel string
	flagTuning   string
	flagLevelDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "robotrun",
	Short: "Robot Run - steer a walking robot to the finish",
	Long: `Robot Run is a tiny 2D game. A robot walks on its own; levels are
built from walls, gates, rotators, flames and a finish pad.

Available commands:
  list     - Show all available levels
  play     - Play a level in a window or the terminal
  sim      - Run a level without a display
  menu     - Pick a level interactively

Examples:
  robotrun list
  robotrun play workshop
  robotrun play gauntlet --backend ebiten
  robotrun play ./levels/mine.yaml --backend tui
  robotrun sim courtyard --frames 600`,
	SilenceUsage: true,
}

func init() {
	d := core.DefaultConfig()

	rootCmd.PersistentFlags().StringVar(&flagTitle, "title", d.Title, "Window title")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "Window width in pixels (0 = level resolution)")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", 0, "Window height in pixels (0 = level resolution)")
	rootCmd.PersistentFlags().BoolVar(&flag3D, "3d", false, "Enable depth testing")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", d.TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagTuning, "tuning", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelDir, "level-dir", "", "Extra directory searched for levels")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(menuCmd)
}

// newLogger creates the process logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "robotrun",
	})
	lvl, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(lvl)
	return logger, nil
}

// runtimeConfig builds the window configuration. Unset dimensions come
// from the level, then from the defaults.
func runtimeConfig(s scene.Scheme, tuning config.Tuning) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Title = flagTitle
	cfg.Enable3D = flag3D

	if s.HasResolution() {
		cfg.Width, cfg.Height = s.Resolution[0], s.Resolution[1]
	}
	if flagWidth > 0 {
		cfg.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Height = flagHeight
	}

	cfg.TickRate = tuning.Scene.TickRate
	if cmdFlagChanged("fps") {
		cfg.TickRate = flagFPS
	}
	return cfg
}

func cmdFlagChanged(name string) bool {
	f := rootCmd.PersistentFlags().Lookup(name)
	return f != nil && f.Changed
}

// loadLevel resolves the level argument and the tuning file.
func loadLevel(args []string) (scene.Scheme, config.Tuning, error) {
	ref := ""
	if len(args) > 0 {
		ref = args[0]
	}

	s, err := scene.NewLoader(flagLevelDir).Load(ref)
	if err != nil {
		return scene.Scheme{}, config.Tuning{}, err
	}

	tuning, err := config.LoadTuning(flagTuning)
	if err != nil {
		return scene.Scheme{}, config.Tuning{}, err
	}
	if err := tuning.Validate(); err != nil {
		return scene.Scheme{}, config.Tuning{}, err
	}
	return s, tuning, nil
}
