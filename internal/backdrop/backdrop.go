// Package backdrop draws the decorative animation strip shown behind each
// screen. Animations loop forever and never touch game state.
package backdrop

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Kind selects an animation.
type Kind string

const (
	WordCloud          Kind = "wordCloud"
	TokenVisualization Kind = "tokenVisualization"
	PatternFlow        Kind = "patternFlow"
	AttentionMap       Kind = "attentionMap"
	DiffusionWave      Kind = "diffusionWave"
)

// Kinds lists every animation kind.
var Kinds = []Kind{WordCloud, TokenVisualization, PatternFlow, AttentionMap, DiffusionWave}

// ParseKind validates an animation name.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == name {
			return k, nil
		}
	}
	return "", fmt.Errorf("backdrop: unknown kind %q", name)
}

// Cell is one character of a frame. A zero Rune is transparent.
type Cell struct {
	Rune  rune
	Color colorful.Color
}

// Frame is a rendered animation frame, row-major.
type Frame struct {
	Width  int
	Height int
	Cells  []Cell
}

// At returns the cell at (x, y), or a transparent cell out of bounds.
func (f *Frame) At(x, y int) Cell {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return Cell{}
	}
	return f.Cells[y*f.Width+x]
}

func (f *Frame) set(x, y int, r rune, c colorful.Color) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return
	}
	f.Cells[y*f.Width+x] = Cell{Rune: r, Color: c}
}

func (f *Frame) text(x, y int, s string, c colorful.Color) {
	for _, r := range s {
		f.set(x, y, r, c)
		x++
	}
}

func (f *Frame) reset() {
	clear(f.Cells)
}

// scene is the per-kind animation logic. Positions are normalized to
// [0, 1) so a resize keeps the layout.
type scene interface {
	draw(f *Frame, t float64)
}

// Backdrop is one running animation.
type Backdrop struct {
	kind    Kind
	scene   scene
	elapsed time.Duration
	frame   *Frame
}

// New creates an animation of the given kind and size. Data is an optional
// payload: token values for TokenVisualization and attention weights for
// AttentionMap; other kinds ignore it.
func New(kind Kind, data []float64, width, height int, seed int64) (*Backdrop, error) {
	rng := rand.New(rand.NewSource(seed))

	var sc scene
	switch kind {
	case WordCloud:
		sc = newWordCloud(rng)
	case TokenVisualization:
		sc = newTokenViz(data)
	case PatternFlow:
		sc = newPatternFlow(rng)
	case AttentionMap:
		sc = newAttentionMap(data)
	case DiffusionWave:
		sc = newDiffusionWave(rng)
	default:
		return nil, fmt.Errorf("backdrop: unknown kind %q", kind)
	}

	b := &Backdrop{kind: kind, scene: sc}
	b.Resize(width, height)
	return b, nil
}

// Kind returns the animation kind.
func (b *Backdrop) Kind() Kind {
	return b.kind
}

// Resize changes the frame size. A closed backdrop stays closed.
func (b *Backdrop) Resize(width, height int) {
	if b.scene == nil {
		return
	}
	width = max(width, 0)
	height = max(height, 0)
	b.frame = &Frame{Width: width, Height: height, Cells: make([]Cell, width*height)}
}

// Step advances the animation clock.
func (b *Backdrop) Step(dt time.Duration) {
	b.elapsed += dt
}

// Frame draws and returns the current frame. It returns nil after Close.
func (b *Backdrop) Frame() *Frame {
	if b.frame == nil || b.scene == nil {
		return nil
	}
	b.frame.reset()
	b.scene.draw(b.frame, b.elapsed.Seconds())
	return b.frame
}

// Close releases the frame buffer. Close is idempotent.
func (b *Backdrop) Close() {
	b.frame = nil
	b.scene = nil
}

// Closed reports whether Close was called.
func (b *Backdrop) Closed() bool {
	return b.scene == nil
}

// palette holds the adventure's accent colors.
var palette = []colorful.Color{
	hex("#4F46E5"), hex("#7C3AED"), hex("#10B981"),
	hex("#F59E0B"), hex("#EF4444"), hex("#8B5CF6"),
}

func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// row maps a normalized vertical position in [-1, 1] to a frame row.
func row(f *Frame, v float64) int {
	mid := float64(f.Height-1) / 2
	return int(math.Round(mid + v*mid))
}
