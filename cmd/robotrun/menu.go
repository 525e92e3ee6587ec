package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/robotrun/internal/platform/tui"
	"github.com/vovakirdan/robotrun/internal/scene"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a level interactively",
	Long: `Shows a terminal list of every available level. The chosen level is
played with the backend given by --backend.

Examples:
  robotrun menu
  robotrun menu --backend tui`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagBackend, "backend", backendGL, "Backend: gl, ebiten, tui")
}

func runMenu(cmd *cobra.Command, args []string) error {
	levels, err := scene.NewLoader(flagLevelDir).LoadAll()
	if err != nil {
		return err
	}

	s, ok, err := tui.RunMenu(levels)
	if err != nil || !ok {
		return err
	}

	// Files are played by path so user levels keep their source.
	ref := s.ID
	if path, isFile := levelPath(s); isFile {
		ref = path
	}
	return runPlay(cmd, []string{ref})
}

func levelPath(s scene.Scheme) (string, bool) {
	if s.Source == "" || strings.HasPrefix(s.Source, "embedded:") {
		return "", false
	}
	return s.Source, true
}
