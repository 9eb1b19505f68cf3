package words

import "github.com/vovakirdan/diffusion-adventure/internal/core"

const emptySlotLabel = "drop here"

// Render draws the word bank, the sentence slots and the check button.
func (l *Lesson) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "Word bank:", core.ColorGray)
	x := 0
	for i, w := range WordBank {
		c := core.ColorIndigo
		if l.row == rowBank && i == l.bankPos {
			c = core.ColorYellow
		}
		r := dst.DrawLabelBox(x, 1, w, c)
		x = r.Right() + 1
	}

	label := "Your sentence:"
	if l.held != "" {
		label = "Your sentence: (placing \"" + l.held + "\")"
	}
	dst.DrawText(0, 4, label, core.ColorGray)
	x = 0
	for i, w := range l.slots {
		text, c := w, core.ColorViolet
		if w == "" {
			text, c = emptySlotLabel, core.ColorGray
		}
		if l.lit[i] {
			c = core.ColorGreen
		}
		if l.row == rowSlots && i == l.slotPos {
			c = core.ColorYellow
		}
		r := dst.DrawLabelBox(x, 5, text, c)
		x = r.Right() + 1
	}

	c := core.ToneColor(l.button.Tone())
	if l.row == rowButton {
		c = core.ColorYellow
	}
	dst.DrawLabelBox(0, 9, l.button.Text(), c)
}
