package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ohflip/internal/core"
)

// sky is the backdrop behind every cell.
var sky = lipgloss.Color("#AADDFF")

func cellStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Background(sky).Foreground(lipgloss.Color(fg))
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: cellStyle("#000000"),
	core.ColorBlack:   cellStyle("#000000"),
	core.ColorWhite:   cellStyle("#FFFFFF"),
	core.ColorRed:     cellStyle("#FF4422"),
	core.ColorGreen:   cellStyle("#00FF44"),
	core.ColorYellow:  cellStyle("#FFFF00"),
	core.ColorMagenta: cellStyle("#D37CFF"),
	core.ColorOrange:  cellStyle("#FF9600"),
	core.ColorGrass:   cellStyle("#00D846"),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
