package core

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// WrapText breaks text into lines no wider than width, splitting on spaces.
// Words longer than width are hard-cut.
func WrapText(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var line strings.Builder
	lineW := 0

	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineW = 0
	}

	for _, word := range strings.Fields(text) {
		for runewidth.StringWidth(word) > width {
			if lineW > 0 {
				flush()
			}
			head := runewidth.Truncate(word, width, "")
			lines = append(lines, head)
			word = word[len(head):]
		}
		w := runewidth.StringWidth(word)
		if w == 0 {
			continue
		}
		if lineW > 0 && lineW+1+w > width {
			flush()
		}
		if lineW > 0 {
			line.WriteByte(' ')
			lineW++
		}
		line.WriteString(word)
		lineW += w
	}
	if lineW > 0 {
		flush()
	}
	return lines
}

// TruncateRunes keeps at most n runes of s.
func TruncateRunes(s string, n int) string {
	if n < 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
