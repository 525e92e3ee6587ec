package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/robotrun/internal/core"
	"github.com/vovakirdan/robotrun/internal/engine"
	"github.com/vovakirdan/robotrun/internal/object"
	"github.com/vovakirdan/robotrun/internal/platform/headless"
)

var (
	flagFrames    int
	flagRestartAt int
	flagToggleAt  []int
)

var simCmd = &cobra.Command{
	Use:   "sim [level]",
	Short: "Run a level without a display",
	Long: `Runs a level on the headless backend for a fixed number of frames and
prints where every robot ended up.

Examples:
  robotrun sim
  robotrun sim gauntlet --frames 2000
  robotrun sim workshop --toggle-at 30 --frames 900`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 600, "Number of frames to simulate")
	simCmd.Flags().IntVar(&flagRestartAt, "restart-at", 0, "Press R on this frame (0 = never)")
	simCmd.Flags().IntSliceVar(&flagToggleAt, "toggle-at", nil, "Press Space on these frames")
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	deadStyle   = cellStyle.Foreground(lipgloss.Color("#FF5555"))
	stopStyle   = cellStyle.Foreground(lipgloss.Color("#50FA7B"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#BD93F9"))
)

func runSim(cmd *cobra.Command, args []string) error {
	if flagFrames <= 0 {
		return fmt.Errorf("--frames must be positive, got %d", flagFrames)
	}

	logger, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	s, tuning, err := loadLevel(args)
	if err != nil {
		return err
	}
	cfg := runtimeConfig(s, tuning)

	win := headless.NewWindow(flagFrames)
	if flagRestartAt > 0 {
		win.TapAt(flagRestartAt, core.KeyR)
	}
	for _, f := range flagToggleAt {
		win.TapAt(f, core.KeySpace)
	}

	ctrl, err := engine.New(cfg, s, win, headless.NewRecorder(),
		engine.WithLogger(logger),
		engine.WithTuning(tuning),
	)
	if err != nil {
		return err
	}
	if err := ctrl.Run(cmd.Context()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%s (%s) after %d frames", s.Name, s.ID, flagFrames)))
	fmt.Fprintln(out, robotTable(ctrl.Robots()))

	st := ctrl.Stats()
	fmt.Fprintf(out, "frames %d  restarts %d  logic avg %s max %s  draw avg %s max %s\n",
		st.Frames, st.Restarts,
		st.Logic.AvgDuration, st.Logic.MaxDuration,
		st.Draw.AvgDuration, st.Draw.MaxDuration,
	)
	return nil
}

func robotTable(robots []*object.Robot) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("#", "Status", "Position", "Size", "Rotation", "Direction").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 1 && row >= 0 && row < len(robots) {
				switch robots[row].Status() {
				case object.StatusDead:
					return deadStyle
				case object.StatusStopped:
					return stopStyle
				}
			}
			return cellStyle
		})

	for i, r := range robots {
		tr := r.Transform()
		t.Row(
			strconv.Itoa(i+1),
			r.Status().String(),
			fmt.Sprintf("(%.1f, %.1f)", tr.Position.X(), tr.Position.Y()),
			fmt.Sprintf("%.1f×%.1f", tr.Size.X(), tr.Size.Y()),
			fmt.Sprintf("%.1f°", tr.Rotation),
			fmt.Sprintf("(%.2f, %.2f)", r.Direction().X(), r.Direction().Y()),
		)
	}
	return t.Render()
}
