package view

import (
	"fmt"
	"math/rand/v2"

	"github.com/iudanet/flashkeeper/internal/models"
	"github.com/iudanet/flashkeeper/internal/notify"
)

// Shuffle permutes fields in place (Fisher-Yates, last to first).
// intn(n) must return a uniform integer in [0, n).
func Shuffle(fields []models.Field, intn func(n int) int) {
	for i := len(fields) - 1; i > 0; i-- {
		j := intn(i + 1)
		fields[i], fields[j] = fields[j], fields[i]
	}
}

// Slide is one field of a study session.
type Slide struct {
	Field   models.Field
	Flipped bool
}

// Face returns the text currently shown on the slide
func (s Slide) Face() string {
	if s.Flipped {
		return s.Field.Explanation
	}
	return s.Field.Content
}

// Tier returns the font tier of the visible face
func (s Slide) Tier() FontTier {
	if s.Flipped {
		return BackTier(s.Field.Explanation)
	}
	return FrontTier(s.Field.Content)
}

// Session is a forward-only pass over the shuffled fields of one flashcard.
type Session struct {
	notifier  notify.Notifier
	intn      func(n int) int
	source    []models.Field
	slides    []Slide
	title     string
	id        string
	pos       int
	endNotice bool
}

// SessionOption configures a Session
type SessionOption func(*Session)

// WithIntn replaces the random source used for shuffling
func WithIntn(intn func(n int) int) SessionOption {
	return func(s *Session) {
		s.intn = intn
	}
}

// NewSession starts a study session over fc
func NewSession(fc models.Flashcard, notifier notify.Notifier, opts ...SessionOption) *Session {
	s := &Session{
		id:       fc.ID,
		title:    fc.DisplayTitle(),
		source:   models.CloneFields(fc.Fields),
		notifier: notifier,
		intn:     rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.notifier == nil {
		s.notifier = notify.Discard
	}
	s.Restart()
	return s
}

// ID returns the id of the studied flashcard
func (s *Session) ID() string { return s.id }

// Title returns the display title of the studied flashcard
func (s *Session) Title() string { return s.title }

// Len returns the number of slides
func (s *Session) Len() int { return len(s.slides) }

// Position returns the zero-based index of the current slide
func (s *Session) Position() int { return s.pos }

// Slides returns a copy of the slides in shuffled order
func (s *Session) Slides() []Slide {
	out := make([]Slide, len(s.slides))
	copy(out, s.slides)
	return out
}

// Current returns the current slide, or false for an empty set
func (s *Session) Current() (Slide, bool) {
	if len(s.slides) == 0 {
		return Slide{}, false
	}
	return s.slides[s.pos], true
}

// Counter returns "current / total"
func (s *Session) Counter() string {
	if len(s.slides) == 0 {
		return "0 / 0"
	}
	return fmt.Sprintf("%d / %d", s.pos+1, len(s.slides))
}

// Flip toggles the current slide between content and explanation
func (s *Session) Flip() {
	if len(s.slides) == 0 {
		return
	}
	s.slides[s.pos].Flipped = !s.slides[s.pos].Flipped
}

// Next moves to the next slide. It reports false at the last slide.
func (s *Session) Next() bool {
	if s.pos+1 >= len(s.slides) {
		return false
	}
	s.pos++
	s.checkEnd()
	return true
}

// AtEnd reports whether the last slide is shown, i.e. Restart is offered
func (s *Session) AtEnd() bool {
	return len(s.slides) > 0 && s.pos == len(s.slides)-1
}

// Restart reshuffles, drops flip state and returns to the first slide
func (s *Session) Restart() {
	fields := models.CloneFields(s.source)
	Shuffle(fields, s.intn)

	s.slides = make([]Slide, 0, len(fields))
	for _, f := range fields {
		s.slides = append(s.slides, Slide{Field: f})
	}
	s.pos = 0
	s.endNotice = false
	s.checkEnd()
}

// checkEnd шлет уведомление о конце набора один раз за проход
func (s *Session) checkEnd() {
	if s.endNotice || !s.AtEnd() {
		return
	}
	s.endNotice = true
	s.notifier.Notify(notify.MsgEndOfSet)
}
