package attention

import "github.com/vovakirdan/diffusion-adventure/internal/core"

// Render draws the sentence as toggleable boxes and the check button.
func (l *Lesson) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "Click the words that matter most:", core.ColorGray)

	x := 0
	for i, w := range Sentence {
		c := core.ColorIndigo
		if l.highlighted[w] {
			c = core.ColorOrange
		}
		if i == l.selected {
			c = core.ColorYellow
		}
		r := dst.DrawLabelBox(x, 2, w, c)
		if l.highlighted[w] {
			dst.DrawText(x+1, r.Bottom()+1, "★", core.ColorOrange)
		}
		x = r.Right() + 1
	}

	c := core.ToneColor(l.button.Tone())
	if l.selected == len(Sentence) {
		c = core.ColorYellow
	}
	dst.DrawLabelBox(0, 7, l.button.Text(), c)
}
