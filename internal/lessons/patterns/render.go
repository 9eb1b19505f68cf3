package patterns

import (
	"fmt"

	"github.com/vovakirdan/diffusion-adventure/internal/core"
)

// Render draws the question, its options and the running score.
func (l *Lesson) Render(dst *core.Screen) {
	q := Questions[l.cursor]
	dst.DrawText(0, 0, fmt.Sprintf("Question %d of %d", l.cursor+1, len(Questions)), core.ColorGray)
	dst.DrawText(0, 2, q.Prompt, core.ColorWhite)

	x := 0
	for i, f := range l.options {
		c := core.ToneColor(f.Tone())
		if i == l.selected && f.Tone() == core.ToneNeutral && !l.complete {
			c = core.ColorYellow
		}
		r := dst.DrawLabelBox(x, 4, f.Text(), c)
		x = r.Right() + 2
	}

	dst.DrawText(0, 8, fmt.Sprintf("Score: %d/%d", l.score, len(Questions)), core.ColorCyan)
	if l.complete {
		dst.DrawText(0, 9, "Great job spotting the patterns!", core.ColorGreen)
	}
}
