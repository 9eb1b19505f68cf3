package backdrop

import (
	"testing"
	"time"
)

func countRunes(f *Frame) int {
	n := 0
	for _, c := range f.Cells {
		if c.Rune != 0 {
			n++
		}
	}
	return n
}

func TestEveryKindDraws(t *testing.T) {
	for _, kind := range Kinds {
		t.Run(string(kind), func(t *testing.T) {
			b, err := New(kind, nil, 60, 5, 1)
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}
			b.Step(500 * time.Millisecond)
			f := b.Frame()
			if f == nil {
				t.Fatal("Frame() = nil on an open backdrop")
			}
			if f.Width != 60 || f.Height != 5 {
				t.Errorf("frame size = %dx%d, expected 60x5", f.Width, f.Height)
			}
			if countRunes(f) == 0 {
				t.Error("frame is empty")
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("diffusionWave")
	if err != nil || k != DiffusionWave {
		t.Errorf("ParseKind() = %q, %v", k, err)
	}
	if _, err := ParseKind("fireworks"); err == nil {
		t.Error("expected error for an unknown kind")
	}
	if _, err := New("fireworks", nil, 10, 3, 1); err == nil {
		t.Error("New() should reject an unknown kind")
	}
}

func TestAnimationMoves(t *testing.T) {
	b, _ := New(WordCloud, nil, 60, 7, 3)
	first := append([]Cell(nil), b.Frame().Cells...)

	b.Step(1500 * time.Millisecond)
	second := b.Frame().Cells

	same := true
	for i := range first {
		if first[i].Rune != second[i].Rune {
			same = false
			break
		}
	}
	if same {
		t.Error("frame did not change after time passed")
	}
}

func TestTokenPayload(t *testing.T) {
	b, _ := New(TokenVisualization, []float64{5, 6, 7, 8, 9, 10, 11, 12}, 80, 5, 1)
	f := b.Frame()
	blocks := 0
	for _, c := range f.Cells {
		if c.Rune == '■' || c.Rune == '□' {
			blocks++
		}
	}
	if blocks != 8 {
		t.Errorf("token blocks = %d, expected one per payload value", blocks)
	}
}

func TestAttentionWeights(t *testing.T) {
	am := newAttentionMap([]float64{1})
	if am.weights[0] != 1 || am.weights[4] != 0.5 {
		t.Errorf("weights = %v, short payload should fill with 0.5", am.weights)
	}
	am = newAttentionMap(nil)
	if am.weights[2] != 0.9 {
		t.Errorf("weights = %v, expected defaults", am.weights)
	}
}

func TestCloseReleasesBuffer(t *testing.T) {
	b, _ := New(PatternFlow, nil, 40, 4, 1)
	b.Close()
	b.Close()
	if !b.Closed() || b.Frame() != nil {
		t.Error("closed backdrop should have no frame")
	}
	b.Resize(80, 8)
	if b.Frame() != nil {
		t.Error("resize must not reopen a closed backdrop")
	}
}

func TestZeroSize(t *testing.T) {
	for _, kind := range Kinds {
		b, _ := New(kind, nil, 0, 0, 1)
		if f := b.Frame(); countRunes(f) != 0 {
			t.Errorf("%s: zero-size frame has content", kind)
		}
	}
}

func TestFrameAt(t *testing.T) {
	f := &Frame{Width: 2, Height: 1, Cells: make([]Cell, 2)}
	f.set(1, 0, 'x', palette[0])
	if f.At(1, 0).Rune != 'x' || f.At(5, 5).Rune != 0 {
		t.Error("At() mismatch")
	}
}
