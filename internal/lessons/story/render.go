package story

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/diffusion-adventure/internal/config"
	"github.com/vovakirdan/diffusion-adventure/internal/core"
)

// Render draws the generate button, both sliders and the story area.
// The prompt field itself is drawn by the platform.
func (l *Lesson) Render(dst *core.Screen) {
	c := core.ColorIndigo
	if l.focus == FocusGenerate {
		c = core.ColorYellow
	}
	dst.DrawLabelBox(0, 0, "📖 Generate Story!", c)

	dst.DrawText(26, 0, "Adjust AI Settings:", core.ColorGray)
	l.renderSlider(dst, 26, 1, "Creativity Level", l.creativity, l.focus == FocusCreativity)
	l.renderSlider(dst, 26, 2, "Story Length", l.length, l.focus == FocusLength)

	if l.focus == FocusPrompt {
		dst.DrawText(0, 3, "Typing in the story prompt ↑", core.ColorYellow)
	}

	if l.text == "" {
		dst.DrawText(0, 5, "Your AI-generated story will appear here!", core.ColorGray)
		return
	}
	tc := core.ColorWhite
	if l.Thinking() {
		tc = core.ColorViolet
	}
	for i, line := range core.WrapText(l.text, dst.Width()) {
		dst.DrawText(0, 5+i, line, tc)
	}
}

func (l *Lesson) renderSlider(dst *core.Screen, x, y int, label string, v int, focused bool) {
	c := core.ColorGray
	if focused {
		c = core.ColorYellow
	}
	bar := strings.Repeat("■", v) + strings.Repeat("□", config.SliderMax-v)
	dst.DrawText(x, y, fmt.Sprintf("%-17s %s %d", label+":", bar, v), c)
}
