package tokens

import (
	"strconv"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/diffusion-adventure/internal/core"
)

// Render draws the transform button, the token boxes and a short note.
func (l *Lesson) Render(dst *core.Screen) {
	dst.DrawLabelBox(0, 0, l.button.Text(), core.ToneColor(l.button.Tone()))
	dst.DrawText(0, 3, "Type in the box above, then press Enter.  ➡", core.ColorGray)

	if len(l.tokens) == 0 {
		dst.DrawText(2, 5, "Numbers will appear here!", core.ColorGray)
	} else {
		l.renderTokens(dst, 5)
	}

	dst.DrawText(0, dst.Height()-1, "Tokens are like a secret code that computers use to understand words!", core.ColorCyan)
}

// renderTokens lays tokens out as boxes with their character above,
// wrapping onto further rows when the screen is too narrow.
func (l *Lesson) renderTokens(dst *core.Screen, y int) {
	chars := []rune(l.word)
	x := 0
	for i, tok := range l.tokens {
		label := strconv.Itoa(tok)
		w := runewidth.StringWidth(label) + 4
		if x+w > dst.Width() && x > 0 {
			x = 0
			y += 4
		}
		dst.DrawText(x+2, y, string(chars[i]), core.ColorYellow)
		r := dst.DrawLabelBox(x, y+1, label, tokenColor(i))
		x = r.Right() + 1
	}
}

var tokenPalette = []core.Color{core.ColorIndigo, core.ColorViolet, core.ColorGreen, core.ColorOrange, core.ColorRed, core.ColorCyan}

func tokenColor(i int) core.Color {
	return tokenPalette[i%len(tokenPalette)]
}
