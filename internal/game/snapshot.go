package game

import "campuslife/internal/content"

// QuestionView is the question on screen.
type QuestionView struct {
	Index    int      `json:"index"`
	Total    int      `json:"total"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// QuestView describes the offered or running side quest.
type QuestView struct {
	Kind      QuestKind `json:"kind"`
	Title     string    `json:"title"`
	Reason    string    `json:"reason,omitempty"`
	LoveMeter *float64  `json:"loveMeter,omitempty"`
}

// Snapshot is everything the presentation layer needs to draw the
// current state.
type Snapshot struct {
	Screen         string              `json:"screen"`
	Characters     []content.Character `json:"characters,omitempty"`
	Character      *content.Character  `json:"character,omitempty"`
	Question       *QuestionView       `json:"question,omitempty"`
	Quest          *QuestView          `json:"quest,omitempty"`
	Initial        *content.Stats      `json:"initial,omitempty"`
	ScoreBoard     *content.Stats      `json:"scoreBoard,omitempty"`
	InRelationship bool                `json:"inRelationship"`
	Flags          Flags               `json:"flags"`
	Processing     bool                `json:"processing"`
	Notification   *Notification       `json:"notification,omitempty"`
	Ending         *EndingOutcome      `json:"ending,omitempty"`
	Summary        *Summary            `json:"summary,omitempty"`
	History        []HistoryEntry      `json:"history,omitempty"`
}

func questionView(q content.Question, index, total int) *QuestionView {
	opts := make([]string, len(q.Options))
	for i, o := range q.Options {
		opts[i] = o.Text
	}
	return &QuestionView{Index: index, Total: total, Question: q.Question, Options: opts}
}

// Snapshot renders the current state. On the result screen this is what
// first picks the ending.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Screen:       s.screen.Name(),
		Character:    s.character,
		Notification: s.pending,
	}
	if s.ledger != nil {
		initial, board := s.ledger.Initial(), s.ledger.ScoreBoard()
		snap.Initial = &initial
		snap.ScoreBoard = &board
		snap.InRelationship = s.ledger.InRelationship()
		snap.Flags = s.ledger.Flags()
		snap.History = s.ledger.History()
	}

	switch sc := s.screen.(type) {
	case CharacterSelect:
		snap.Characters = s.bundle.Characters
	case Playing:
		snap.Question = questionView(s.questions[sc.Index], sc.Index, len(s.questions))
	case Settling:
		snap.Question = questionView(s.questions[sc.Index], sc.Index, len(s.questions))
		snap.Processing = true
	case QuestPrompt:
		snap.Quest = &QuestView{Kind: sc.Kind, Title: sc.Title, Reason: sc.Reason}
	case QuestActive:
		qv := &QuestView{Kind: sc.Kind, Title: sc.Title}
		if sc.Kind == QuestLove {
			m := sc.LoveMeter
			qv.LoveMeter = &m
		}
		snap.Quest = qv
		snap.Question = questionView(sc.Questions[sc.Cursor], sc.Cursor, len(sc.Questions))
	case Result:
		end, _ := s.Ending()
		sum, _ := s.Summary()
		snap.Ending = &end
		snap.Summary = &sum
	}
	return snap
}
