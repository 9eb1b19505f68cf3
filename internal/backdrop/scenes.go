package backdrop

import (
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// wordCloud floats a handful of words up and down.
type wordCloud struct {
	words []floatingWord
}

type floatingWord struct {
	text  string
	x, y  float64 // Normalized; y in [-1, 1]
	speed float64
	rng   float64
	color colorful.Color
}

var cloudWords = []string{"Hello", "World", "AI", "Magic", "Learn", "Fun", "Code", "Smart"}

func newWordCloud(rng *rand.Rand) *wordCloud {
	wc := &wordCloud{}
	for i, w := range cloudWords {
		wc.words = append(wc.words, floatingWord{
			text:  w,
			x:     rng.Float64() * 0.9,
			y:     rng.Float64()*1.2 - 0.6,
			speed: 1.2 + rng.Float64()*1.8,
			rng:   0.2 + rng.Float64()*0.4,
			color: palette[i%len(palette)],
		})
	}
	return wc
}

func (wc *wordCloud) draw(f *Frame, t float64) {
	for _, w := range wc.words {
		y := w.y + math.Sin(t*w.speed)*w.rng
		f.text(int(w.x*float64(f.Width)), row(f, y), w.text, w.color)
	}
}

// tokenViz draws a chain of pulsing token blocks along a sine curve.
type tokenViz struct {
	tokens []float64
}

var defaultTokens = []float64{123, 456, 789, 101, 112}

func newTokenViz(data []float64) *tokenViz {
	if len(data) == 0 {
		data = defaultTokens
	}
	return &tokenViz{tokens: data}
}

func (tv *tokenViz) draw(f *Frame, t float64) {
	n := len(tv.tokens)
	step := float64(f.Width) / float64(n+1)
	prevX, prevY := -1, -1
	for i, tok := range tv.tokens {
		x := int(step * float64(i+1))
		y := row(f, math.Sin(float64(i)*0.5)*0.8)
		c := colorful.Hsl(math.Mod(float64(i)*36, 360), 0.7, 0.6)

		if prevX >= 0 {
			link := palette[0]
			for lx := prevX + 1; lx < x; lx++ {
				frac := float64(lx-prevX) / float64(x-prevX)
				ly := int(math.Round(float64(prevY) + frac*float64(y-prevY)))
				f.set(lx, ly, '·', link)
			}
		}

		glyph := '■'
		if math.Sin(t*2+tok) > 0.6 {
			glyph = '□'
		}
		f.set(x, y, glyph, c)
		prevX, prevY = x, y
	}
}

// patternFlow drifts colored particles across the strip.
type patternFlow struct {
	particles []particle
}

type particle struct {
	x, y  float64
	speed float64
	glyph rune
	color colorful.Color
}

var flowGlyphs = []rune{'·', '•', '∙', '*'}

func newPatternFlow(rng *rand.Rand) *patternFlow {
	pf := &patternFlow{}
	for range 100 {
		pf.particles = append(pf.particles, particle{
			x:     rng.Float64(),
			y:     rng.Float64()*2 - 1,
			speed: 0.02 + rng.Float64()*0.05,
			glyph: flowGlyphs[rng.Intn(len(flowGlyphs))],
			color: colorful.Hsl(rng.Float64()*360, 0.7, 0.6),
		})
	}
	return pf
}

func (pf *patternFlow) draw(f *Frame, t float64) {
	for _, p := range pf.particles {
		x := math.Mod(p.x+t*p.speed, 1)
		y := p.y + math.Sin(t+p.x*6)*0.1
		f.set(int(x*float64(f.Width)), row(f, math.Max(-1, math.Min(1, y))), p.glyph, p.color)
	}
}

// attentionMap shows the lesson sentence with a glow sized by weight.
type attentionMap struct {
	weights []float64
}

var (
	attentionWords   = []string{"The", "red", "car", "drives", "fast"}
	defaultAttention = []float64{0.2, 0.8, 0.9, 0.7, 0.8}
)

func newAttentionMap(data []float64) *attentionMap {
	w := make([]float64, len(attentionWords))
	for i := range w {
		switch {
		case i < len(data):
			w[i] = data[i]
		case data == nil:
			w[i] = defaultAttention[i]
		default:
			w[i] = 0.5
		}
	}
	return &attentionMap{weights: w}
}

func (am *attentionMap) draw(f *Frame, t float64) {
	step := float64(f.Width) / float64(len(attentionWords)+1)
	y := row(f, 0)
	for i, word := range attentionWords {
		a := am.weights[i]
		c := colorful.Hsl(36, 0.8, 0.4+a*0.4)
		x := int(step*float64(i+1)) - len(word)/2
		f.text(x, y, word, c)

		if a > 0.7 {
			glow := hex("#FFFF00")
			pulse := 1 + int(math.Round((math.Sin(t*3+float64(i))+1)/2))
			f.set(x-pulse, y, '✦', glow)
			f.set(x+len(word)-1+pulse, y, '✦', glow)
		}
		// Bar under the word grows with its weight.
		for k := 0; k < int(math.Round(a*float64(len(word)))); k++ {
			f.set(x+k, y+1, '▀', c)
		}
	}
}

// diffusionWave rolls a wave across the bottom with sparks above it.
type diffusionWave struct {
	sparks []particle
}

func newDiffusionWave(rng *rand.Rand) *diffusionWave {
	dw := &diffusionWave{}
	for range 50 {
		dw.sparks = append(dw.sparks, particle{
			x:     rng.Float64(),
			y:     -rng.Float64(),
			speed: 1 + rng.Float64()*3,
			glyph: '.',
			color: hex("#FFFFFF"),
		})
	}
	return dw
}

func (dw *diffusionWave) draw(f *Frame, t float64) {
	wt := t * 1.2
	base := palette[0]
	for x := 0; x < f.Width; x++ {
		fx := float64(x) / 4
		h := math.Sin(fx*0.5+wt)*0.3 + math.Cos(fx*0.3+wt*0.8)*0.2
		y := row(f, 0.5-h)
		shade := base.BlendHcl(palette[1], math.Max(0, math.Min(1, h+0.5))).Clamped()
		f.set(x, y, '~', shade)
	}
	for _, s := range dw.sparks {
		if math.Sin(t*s.speed+s.x*10) < 0.3 {
			continue
		}
		f.set(int(s.x*float64(f.Width)), row(f, s.y*0.9), s.glyph, s.color)
	}
}
