package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/robotrun/internal/scene"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long: `Shows the levels found in --level-dir, ~/.robotrun/levels, ./levels
and the built-in set. A level ID found earlier shadows later ones.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	levels, err := scene.NewLoader(flagLevelDir).LoadAll()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(levels) == 0 {
		fmt.Fprintln(out, "No levels available.")
		return nil
	}

	fmt.Fprintln(out, "Available levels:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen, maxNameLen := 2, 4
	for _, l := range levels {
		maxIDLen = max(maxIDLen, len(l.ID))
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	fmt.Fprintf(out, "  %-*s  %-*s  %-7s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Objects", "Source")
	fmt.Fprintf(out, "  %-*s  %-*s  %-7s  %s\n", maxIDLen, "--", maxNameLen, "----", "-------", "------")

	for _, l := range levels {
		fmt.Fprintf(out, "  %-*s  %-*s  %-7d  %s\n", maxIDLen, l.ID, maxNameLen, l.Name, l.ItemCount(), l.Source)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'robotrun play <id>' to play a level.")
	return nil
}
