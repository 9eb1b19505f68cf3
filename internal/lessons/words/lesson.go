// Package words implements level 1: building a sentence from a word bank.
package words

import (
	"fmt"
	"slices"
	"time"

	"github.com/vovakirdan/diffusion-adventure/internal/config"
	"github.com/vovakirdan/diffusion-adventure/internal/core"
	"github.com/vovakirdan/diffusion-adventure/internal/progress"
	"github.com/vovakirdan/diffusion-adventure/internal/registry"
)

// SlotCount is the number of places in the sentence builder.
const SlotCount = 4

// WordBank lists the draggable words in display order.
var WordBank = []string{"The", "cat", "runs", "fast", "quickly", "dog"}

// Word classes used to judge a sentence.
var (
	determiners = []string{"The", "A", "An"}
	nouns       = []string{"cat", "dog"}
	verbs       = []string{"runs", "walks", "jumps"}
)

const restingLabel = "Check My Sentence!"

// Verdict is the outcome of the last check.
type Verdict int

const (
	VerdictNone    Verdict = iota // Not checked yet
	VerdictEmpty                  // No words placed
	VerdictShort                  // Fewer words than needed
	VerdictPerfect                // Determiner, noun and verb present
	VerdictGoodTry                // Enough words, structure incomplete
)

// String returns a human-readable verdict name.
func (v Verdict) String() string {
	switch v {
	case VerdictEmpty:
		return "empty"
	case VerdictShort:
		return "short"
	case VerdictPerfect:
		return "perfect"
	case VerdictGoodTry:
		return "good try"
	default:
		return "none"
	}
}

// Cursor rows for keyboard play.
const (
	rowBank = iota
	rowSlots
	rowButton
	rowCount
)

// Lesson is the sentence-building activity.
type Lesson struct {
	cfg   config.WordsConfig
	rec   progress.Recorder
	sched *core.Scheduler

	slots    [SlotCount]string // Empty string is an empty slot
	button   core.Feedback
	verdict  Verdict
	missing  int // Words still needed after a short check
	complete bool

	// Keyboard cursor
	row     int
	bankPos int
	slotPos int
	held    string          // Word picked from the bank, waiting for a slot
	lit     [SlotCount]bool // Slots lit up after a successful check
}

func init() {
	registry.Register(core.LevelWords, "words", func(env registry.Env) registry.Lesson {
		return New(env.Recorder, env.Config.Words)
	})
}

// New creates the lesson. Call Reset before use.
func New(rec progress.Recorder, cfg config.WordsConfig) *Lesson {
	return &Lesson{cfg: cfg, rec: rec}
}

// Level returns the level this lesson is bound to.
func (l *Lesson) Level() core.LevelID {
	return core.LevelWords
}

// Reset clears every slot and cancels pending feedback.
func (l *Lesson) Reset(_ core.RuntimeConfig) {
	if l.sched != nil {
		l.sched.StopAll()
	}
	l.sched = core.NewScheduler()
	l.slots = [SlotCount]string{}
	l.button = core.NewFeedback(restingLabel)
	l.verdict = VerdictNone
	l.missing = 0
	l.complete = false
	l.row = rowBank
	l.bankPos = 0
	l.slotPos = 0
	l.held = ""
	l.lit = [SlotCount]bool{}
}

// Place puts word into slot, replacing any word already there.
// The same word may be placed in several slots.
func (l *Lesson) Place(word string, slot int) error {
	if slot < 0 || slot >= SlotCount {
		return fmt.Errorf("words: slot %d out of range", slot)
	}
	if !slices.Contains(WordBank, word) {
		return fmt.Errorf("words: %q is not in the word bank", word)
	}
	l.slots[slot] = word
	return nil
}

// Clear empties a slot. The completion flag is never cleared.
func (l *Lesson) Clear(slot int) error {
	if slot < 0 || slot >= SlotCount {
		return fmt.Errorf("words: slot %d out of range", slot)
	}
	l.slots[slot] = ""
	l.lit[slot] = false
	return nil
}

// Sentence returns the placed words left to right, skipping empty slots.
func (l *Lesson) Sentence() []string {
	var out []string
	for _, w := range l.slots {
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}

// Check judges the current sentence and shows feedback on the button.
// Any sentence with enough words completes the lesson.
func (l *Lesson) Check() Verdict {
	sentence := l.Sentence()

	switch {
	case len(sentence) == 0:
		l.verdict = VerdictEmpty
		l.missing = l.cfg.MinWords
		l.button.Flash(l.sched, "Please drag some words first!", core.ToneError, l.cfg.EmptyFeedback)
		return l.verdict

	case len(sentence) < l.cfg.MinWords:
		l.verdict = VerdictShort
		l.missing = l.cfg.MinWords - len(sentence)
		l.button.Flash(l.sched, fmt.Sprintf("Add %d more %s to make a sentence!", l.missing, plural(l.missing)),
			core.ToneWarning, l.cfg.ShortFeedback)
		return l.verdict
	}

	l.missing = 0
	if Classify(sentence) {
		l.verdict = VerdictPerfect
		l.button.Show("Perfect! That's a great sentence!", core.ToneSuccess)
	} else {
		l.verdict = VerdictGoodTry
		l.button.Show("Good try! That makes sense!", core.ToneSuccess)
	}
	l.celebrate()

	if !l.complete {
		l.complete = true
		l.rec.MarkComplete(core.LevelWords)
	}
	return l.verdict
}

// celebrate lights up filled slots one after another.
func (l *Lesson) celebrate() {
	for i, w := range l.slots {
		if w == "" {
			continue
		}
		slot := i
		l.sched.After(time.Duration(i)*200*time.Millisecond, func() {
			if l.slots[slot] != "" {
				l.lit[slot] = true
			}
		})
	}
}

// Classify reports whether a sentence has a determiner, a noun and a verb.
func Classify(sentence []string) bool {
	return containsAny(sentence, determiners) &&
		containsAny(sentence, nouns) &&
		containsAny(sentence, verbs)
}

func containsAny(sentence, class []string) bool {
	for _, w := range sentence {
		if slices.Contains(class, w) {
			return true
		}
	}
	return false
}

func plural(n int) string {
	if n == 1 {
		return "word"
	}
	return "words"
}

// Step maps keyboard intents onto the lesson operations and advances timers.
func (l *Lesson) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	l.handleInput(in)
	l.sched.Advance(dt)
	return core.StepResult{State: l.State()}
}

func (l *Lesson) handleInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		l.row = core.Wrap(l.row-1, rowCount)
	case in.Has(core.ActionDown), in.Has(core.ActionFocus):
		l.row = core.Wrap(l.row+1, rowCount)
	case in.Has(core.ActionLeft):
		l.moveCursor(-1)
	case in.Has(core.ActionRight):
		l.moveCursor(1)
	case in.Has(core.ActionClear):
		if l.row == rowSlots {
			//nolint:errcheck // slotPos is always in range
			l.Clear(l.slotPos)
		}
	case in.Has(core.ActionConfirm):
		l.confirm()
	}
}

func (l *Lesson) moveCursor(delta int) {
	switch l.row {
	case rowBank:
		l.bankPos = core.Wrap(l.bankPos+delta, len(WordBank))
	case rowSlots:
		l.slotPos = core.Wrap(l.slotPos+delta, SlotCount)
	}
}

func (l *Lesson) confirm() {
	switch l.row {
	case rowBank:
		// Pick up a word, then jump to the sentence row to drop it.
		l.held = WordBank[l.bankPos]
		l.row = rowSlots
	case rowSlots:
		if l.held == "" {
			return
		}
		//nolint:errcheck // held always comes from the bank
		l.Place(l.held, l.slotPos)
		l.held = ""
		if l.slotPos < SlotCount-1 {
			l.slotPos++
		}
		l.row = rowBank
	case rowButton:
		l.Check()
	}
}

// State returns the lesson's current status.
func (l *Lesson) State() core.LessonState {
	st := core.LessonState{Complete: l.complete}
	if l.button.Active() {
		st.Message = l.button.Text()
	}
	return st
}

// Close cancels every pending timer.
func (l *Lesson) Close() {
	if l.sched != nil {
		l.sched.StopAll()
	}
}

// Snapshot captures the lesson state for tests.
type Snapshot struct {
	Slots    [SlotCount]string
	Verdict  Verdict
	Missing  int
	Button   string
	Tone     core.Tone
	Complete bool
	Held     string
}

// Snapshot returns the current lesson snapshot.
func (l *Lesson) Snapshot() Snapshot {
	return Snapshot{
		Slots:    l.slots,
		Verdict:  l.verdict,
		Missing:  l.missing,
		Button:   l.button.Text(),
		Tone:     l.button.Tone(),
		Complete: l.complete,
		Held:     l.held,
	}
}
