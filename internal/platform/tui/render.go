package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-life/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorAlive:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorDead:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	core.ColorCursor:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorBounds:  lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorLabel:   lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorValue:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorRunning: lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	core.ColorPaused:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
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
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
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
