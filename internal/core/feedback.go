package core

import "time"

// Tone classifies advisory feedback for styling.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneSuccess
	ToneWarning
	ToneError
)

// Feedback is an advisory label that replaces a button's resting text.
// Transient feedback reverts to the resting text after a delay; permanent
// feedback stays until the lesson is discarded.
type Feedback struct {
	resting   string
	text      string
	tone      Tone
	permanent bool
	shown     bool
	revert    *Timer
}

// NewFeedback creates feedback showing its resting text.
func NewFeedback(resting string) Feedback {
	return Feedback{resting: resting, text: resting}
}

// Flash shows text for d, then reverts. A newer Flash or Hold supersedes a
// pending revert. Permanent feedback is never replaced by a flash.
func (f *Feedback) Flash(s *Scheduler, text string, tone Tone, d time.Duration) {
	if f.permanent {
		return
	}
	f.text = text
	f.tone = tone
	f.shown = false
	f.revert = s.Replace(f.revert, d, func() {
		f.text = f.resting
		f.tone = ToneNeutral
	})
}

// Show replaces the label until the next Flash, Show or Hold.
func (f *Feedback) Show(text string, tone Tone) {
	if f.permanent {
		return
	}
	f.revert.Stop()
	f.revert = nil
	f.text = text
	f.tone = tone
	f.shown = true
}

// Hold shows text permanently.
func (f *Feedback) Hold(text string, tone Tone) {
	f.revert.Stop()
	f.revert = nil
	f.text = text
	f.tone = tone
	f.permanent = true
}

// Text returns the label currently displayed.
func (f Feedback) Text() string {
	return f.text
}

// Tone returns the tone of the current label.
func (f Feedback) Tone() Tone {
	return f.tone
}

// Active reports whether something other than the resting text is shown.
func (f Feedback) Active() bool {
	return f.permanent || f.shown || f.revert.Pending()
}

// Reset cancels any pending revert and returns to the given resting text.
func (f *Feedback) Reset(resting string) {
	f.revert.Stop()
	*f = NewFeedback(resting)
}

// Permanent reports whether the feedback was held.
func (f Feedback) Permanent() bool {
	return f.permanent
}

// ToneColor maps a tone to the screen color used to draw it.
func ToneColor(t Tone) Color {
	switch t {
	case ToneSuccess:
		return ColorGreen
	case ToneWarning:
		return ColorOrange
	case ToneError:
		return ColorRed
	default:
		return ColorIndigo
	}
}
