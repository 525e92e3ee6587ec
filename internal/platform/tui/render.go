package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/robotrun/internal/core"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same background to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[string]lipgloss.Style)
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colour for efficiency
		x := 0
		for x < s.Width() {
			hex := s.At(x, y).BG.Hex()

			// Collect consecutive cells with same colour
			var run strings.Builder
			for x < s.Width() {
				cell := s.At(x, y)
				if cell.BG.Hex() != hex {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[hex]
			if !ok {
				style = lipgloss.NewStyle().Background(lipgloss.Color(hex))
				styles[hex] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)
	deadStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true)
	finishStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114")).
			Bold(true)
)
