package diffusion

import (
	"fmt"

	"github.com/vovakirdan/diffusion-adventure/internal/core"
)

// Render draws every stage, dimming the ones past the current step,
// followed by the play and reset controls.
func (l *Lesson) Render(dst *core.Screen) {
	for i, st := range Stages {
		y := i * 2
		label := fmt.Sprintf("Step %d: %s", i+1, st.Label)
		if i <= l.step {
			dst.DrawText(0, y, "●", core.ColorGreen)
			dst.DrawText(2, y, label, core.ColorCyan)
			dst.DrawText(4, y+1, st.Text, core.ColorWhite)
		} else {
			dst.DrawText(0, y, "○", core.ColorGray)
			dst.DrawText(2, y, label, core.ColorGray)
		}
	}

	play, reset := core.ColorIndigo, core.ColorIndigo
	if l.control == controlPlay {
		play = core.ColorYellow
	} else {
		reset = core.ColorYellow
	}
	r := dst.DrawLabelBox(0, 8, "▶ Play Diffusion", play)
	r = dst.DrawLabelBox(r.Right()+2, 8, "↺ Reset", reset)

	c := core.ColorGray
	if l.status.Permanent() {
		c = core.ToneColor(l.status.Tone())
	}
	text := l.status.Text()
	if l.Running() {
		text = "Removing noise..."
	}
	dst.DrawText(r.Right()+3, 9, text, c)
}
