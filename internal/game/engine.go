package game

import (
	"fmt"

	"campuslife/internal/content"
)

// Session is one playthrough: the progression state machine and the
// ledger it drives. A Session is not safe for concurrent use; callers
// serialize inputs.
type Session struct {
	bundle *content.Bundle

	screen    Screen
	character *content.Character
	questions []content.Question
	ledger    *Ledger

	// pending blocks every input except Acknowledge and Restart. Its only
	// continuation is resuming main progression after main question
	// resumeFrom.
	pending    *Notification
	resumeFrom int

	ending *EndingOutcome
}

// NewSession starts on the intro screen.
func NewSession(b *content.Bundle) *Session {
	return &Session{bundle: b, screen: Intro{}}
}

func (s *Session) Screen() Screen {
	return s.screen
}

func (s *Session) Character() *content.Character {
	return s.character
}

func (s *Session) Ledger() *Ledger {
	return s.ledger
}

func (s *Session) Pending() *Notification {
	return s.pending
}

func (s *Session) Questions() []content.Question {
	return s.questions
}

func (s *Session) reject(input string, err error) error {
	return &InputError{Input: input, Screen: s.screen.Name(), Err: err}
}

func (s *Session) guard(input string) error {
	if s.pending != nil {
		return s.reject(input, ErrNotificationPending)
	}
	return nil
}

// Begin leaves the intro for character selection.
func (s *Session) Begin() error {
	if err := s.guard("begin"); err != nil {
		return err
	}
	if _, ok := s.screen.(Intro); !ok {
		return s.reject("begin", ErrUnexpectedInput)
	}
	s.screen = CharacterSelect{}
	return nil
}

// SelectCharacter starts a fresh playthrough with the given character.
func (s *Session) SelectCharacter(id string) error {
	if err := s.guard("select character"); err != nil {
		return err
	}
	if _, ok := s.screen.(CharacterSelect); !ok {
		return s.reject("select character", ErrUnexpectedInput)
	}
	c, ok := s.bundle.Character(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCharacter, id)
	}
	s.character = c
	s.questions = s.bundle.QuestionsFor(id)
	s.ledger = NewLedger(*c)
	s.ending = nil
	s.screen = Playing{Index: 0}
	return nil
}

// ChooseMain commits the answer to the current main question. The next
// screen is decided by Settle; until then further answers get ErrBusy.
func (s *Session) ChooseMain(option int) error {
	if err := s.guard("answer"); err != nil {
		return err
	}
	var p Playing
	switch sc := s.screen.(type) {
	case Settling:
		return s.reject("answer", ErrBusy)
	case Playing:
		p = sc
	default:
		return s.reject("answer", ErrUnexpectedInput)
	}
	q := s.questions[p.Index]
	if option < 0 || option >= len(q.Options) {
		return fmt.Errorf("%w: %d", ErrNoSuchOption, option)
	}
	s.ledger.ApplyMainDelta(q, q.Options[option])
	s.screen = Settling{Index: p.Index}
	return nil
}

// Settle evaluates side quest triggers against the committed scoreboard
// and moves on: to a side quest prompt, the next question, or the
// result.
func (s *Session) Settle() error {
	st, ok := s.screen.(Settling)
	if !ok {
		return s.reject("settle", ErrUnexpectedInput)
	}
	d, fired := EvaluateTriggers(s.ledger.ScoreBoard(), s.ledger.Flags(), s.bundle.Config.SideQuests)
	if !fired {
		s.advance(st.Index)
		return nil
	}
	qs, reason := questSet(s.bundle, d, s.ledger.InRelationship())
	s.screen = QuestPrompt{
		Index:     st.Index,
		Kind:      d.Kind,
		Title:     questTitle(s.bundle.Text, d.Kind),
		Reason:    reason,
		Questions: qs,
	}
	return nil
}

// Answer is ChooseMain followed directly by Settle, for callers that do
// not pace the two steps.
func (s *Session) Answer(option int) error {
	if err := s.ChooseMain(option); err != nil {
		return err
	}
	return s.Settle()
}

// DecideQuest accepts or declines the offered side quest.
func (s *Session) DecideQuest(accept bool) error {
	if err := s.guard("quest decision"); err != nil {
		return err
	}
	p, ok := s.screen.(QuestPrompt)
	if !ok {
		return s.reject("quest decision", ErrUnexpectedInput)
	}
	active, note := resolveDecision(s.ledger, p, accept, s.bundle.Text)
	switch {
	case note != nil:
		s.suspend(*note, p.Index)
	case active != nil:
		s.screen = *active
	default:
		s.advance(p.Index)
	}
	return nil
}

// ChooseSideQuest answers the current side quest question.
func (s *Session) ChooseSideQuest(option int) error {
	if err := s.guard("side quest answer"); err != nil {
		return err
	}
	q, ok := s.screen.(QuestActive)
	if !ok {
		return s.reject("side quest answer", ErrUnexpectedInput)
	}
	cur := q.Questions[q.Cursor]
	if option < 0 || option >= len(cur.Options) {
		return fmt.Errorf("%w: %d", ErrNoSuchOption, option)
	}
	q, note := resolveAnswer(s.ledger, q, cur.Options[option], s.bundle.Text)
	s.screen = q
	if note != nil {
		s.suspend(*note, q.Index)
	}
	return nil
}

// Acknowledge closes the pending notification and resumes main
// progression.
func (s *Session) Acknowledge() error {
	if s.pending == nil {
		return s.reject("acknowledge", ErrUnexpectedInput)
	}
	s.pending = nil
	s.advance(s.resumeFrom)
	return nil
}

// Restart tears the playthrough down and returns to the intro.
func (s *Session) Restart() {
	s.screen = Intro{}
	s.character = nil
	s.questions = nil
	s.ledger = nil
	s.pending = nil
	s.resumeFrom = 0
	s.ending = nil
}

// Ending picks the ending the first time it is asked for on the result
// screen and returns the same outcome afterwards.
func (s *Session) Ending() (EndingOutcome, bool) {
	if _, ok := s.screen.(Result); !ok {
		return EndingOutcome{}, false
	}
	if s.ending == nil {
		out := SelectEnding(s.ledger.ScoreBoard(), s.ledger.Initial(), s.bundle.Config, s.bundle.Endings)
		s.ending = &out
	}
	return *s.ending, true
}

// Summary returns the report card once the game is over.
func (s *Session) Summary() (Summary, bool) {
	if _, ok := s.screen.(Result); !ok {
		return Summary{}, false
	}
	return Summarize(s.ledger, s.bundle.Config, s.bundle.Text), true
}

func (s *Session) suspend(n Notification, resumeFrom int) {
	s.pending = &n
	s.resumeFrom = resumeFrom
}

func (s *Session) advance(index int) {
	if index+1 < len(s.questions) {
		s.screen = Playing{Index: index + 1}
		return
	}
	s.screen = Result{}
}
