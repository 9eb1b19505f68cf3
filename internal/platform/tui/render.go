package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/diffusion-adventure/internal/backdrop"
	"github.com/vovakirdan/diffusion-adventure/internal/core"
)

// Adventure palette.
var (
	colorIndigo = lipgloss.Color("#4F46E5")
	colorViolet = lipgloss.Color("#7C3AED")
	colorGreen  = lipgloss.Color("#10B981")
	colorAmber  = lipgloss.Color("#F59E0B")
	colorRed    = lipgloss.Color("#EF4444")
	colorMuted  = lipgloss.Color("245")
	colorTitle  = lipgloss.Color("229")
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(colorRed),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(colorGreen),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(colorMuted),
	core.ColorIndigo:  lipgloss.NewStyle().Foreground(colorIndigo),
	core.ColorViolet:  lipgloss.NewStyle().Foreground(colorViolet),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(colorAmber),
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
				// Trailing half of a wide rune: the terminal already
				// advanced two columns.
				if cell.Rune != 0 {
					run.WriteRune(cell.Rune)
				}
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

// RenderBackdrop converts an animation frame to a styled string.
// Transparent cells become spaces.
func RenderBackdrop(f *backdrop.Frame) string {
	if f == nil {
		return ""
	}
	var sb strings.Builder
	for y := range f.Height {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := range f.Width {
			c := f.At(x, y)
			if c.Rune == 0 {
				sb.WriteRune(' ')
				continue
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color.Hex()))
			sb.WriteString(style.Render(string(c.Rune)))
		}
	}
	return sb.String()
}

// centerText centers text within given width, measuring display columns.
func centerText(text string, width int) string {
	w := runewidth.StringWidth(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
