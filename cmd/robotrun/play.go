package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/robotrun/internal/engine"
	"github.com/vovakirdan/robotrun/internal/platform/desktop"
	"github.com/vovakirdan/robotrun/internal/platform/ebitengine"
	"github.com/vovakirdan/robotrun/internal/platform/tui"
)

const (
	backendGL     = "gl"
	backendEbiten = "ebiten"
	backendTUI    = "tui"
)

var flagBackend string

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing a level given by ID or file path.

Controls:
  Space      - Open/close gates
  R          - Restart the level
  Q/Ctrl+C   - Quit (terminal backend)

Backends:
  gl      - Native OpenGL 4.1 window (default)
  ebiten  - Ebitengine window with Kage shaders
  tui     - Rasterised in the terminal

Examples:
  robotrun play
  robotrun play gauntlet --backend ebiten
  robotrun play ./levels/mine.toml --width 800 --height 800`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", backendGL, "Backend: gl, ebiten, tui")
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The terminal backend owns stdout, so its log goes to a file.
	logOut := os.Stderr
	if flagBackend == backendTUI {
		f, err := os.Create(filepath.Join(os.TempDir(), "robotrun.log"))
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}

	s, tuning, err := loadLevel(args)
	if err != nil {
		return err
	}
	cfg := runtimeConfig(s, tuning)

	logger.Info("starting",
		"level", s.ID,
		"source", s.Source,
		"backend", flagBackend,
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"fps", cfg.TickRate,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []engine.Option{
		engine.WithLogger(logger),
		engine.WithTuning(tuning),
	}

	switch flagBackend {
	case backendGL:
		err = desktop.Run(ctx, cfg, s, opts...)
	case backendEbiten:
		err = ebitengine.Run(ctx, cfg, s, opts...)
	case backendTUI:
		err = tui.Run(cfg, s, opts...)
	default:
		return fmt.Errorf("unknown backend %q (want %s, %s or %s)", flagBackend, backendGL, backendEbiten, backendTUI)
	}
	if err != nil {
		logger.Error("run failed", "err", err)
		return err
	}
	return nil
}
