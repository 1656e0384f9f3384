package game

import "campuslife/internal/content"

// Ledger holds the numbers of one playthrough: the starting snapshot,
// the running scoreboard, the relationship flag, the achievement
// counters and the history log.
//
// ScoreBoard always equals Initial plus every delta applied so far.
type Ledger struct {
	initial             content.Stats
	initialRelationship bool

	board        content.Stats
	relationship bool
	flags        Flags
	history      []HistoryEntry
}

// NewLedger starts a playthrough for c. Stats are copied by value.
func NewLedger(c content.Character) *Ledger {
	return &Ledger{
		initial:             c.Stats,
		initialRelationship: c.InRelationship,
		board:               c.Stats,
		relationship:        c.InRelationship,
	}
}

func (l *Ledger) Initial() content.Stats {
	return l.initial
}

func (l *Ledger) InitialRelationship() bool {
	return l.initialRelationship
}

func (l *Ledger) ScoreBoard() content.Stats {
	return l.board
}

func (l *Ledger) InRelationship() bool {
	return l.relationship
}

func (l *Ledger) Flags() Flags {
	return l.flags
}

func (l *Ledger) HistoryLen() int {
	return len(l.history)
}

// History returns a copy of the log in chronological order.
func (l *Ledger) History() []HistoryEntry {
	out := make([]HistoryEntry, len(l.history))
	copy(out, l.history)
	return out
}

// Delta returns the change an option makes: each multiplier is scaled by
// the character's starting stat, not the current one.
func (l *Ledger) Delta(opt content.Option) content.Stats {
	var d content.Stats
	for _, a := range content.Attributes {
		d.Set(a, l.initial.Get(a)*opt.Stats.Get(a))
	}
	return d
}

// ApplyMainDelta adds the option's delta to the scoreboard and logs the
// answer.
func (l *Ledger) ApplyMainDelta(q content.Question, opt content.Option) {
	l.addDelta(opt)
	l.Record(q.Question, opt)
}

// ApplySideQuestDelta adds the option's delta for internship and study
// abroad quests. Romance options never touch the scoreboard.
func (l *Ledger) ApplySideQuestDelta(opt content.Option) {
	l.addDelta(opt)
}

// Record appends a history entry.
func (l *Ledger) Record(question string, opt content.Option) {
	l.history = append(l.history, HistoryEntry{
		Question: question,
		Choice:   opt.Text,
		Result:   opt.Result,
	})
}

func (l *Ledger) addDelta(opt content.Option) {
	d := l.Delta(opt)
	for _, a := range content.Attributes {
		l.board.Set(a, l.board.Get(a)+d.Get(a))
	}
}

func (l *Ledger) declineQuest(k QuestKind) {
	switch k {
	case QuestLove:
		if l.relationship {
			l.flags.Love = LoveLoyal
		} else {
			l.flags.Love = LoveRejected
		}
	case QuestIntern:
		l.flags.Intern = QuestDeclined
	case QuestStudyAbroad:
		l.flags.StudyAbroad = QuestDeclined
	}
}

func (l *Ledger) catchCheating() {
	l.relationship = false
	l.flags.Love = LoveCheating
}

func (l *Ledger) finishRomance(won bool) {
	if won {
		l.relationship = true
	}
	l.flags.Love++
}

func (l *Ledger) completeQuest(k QuestKind) {
	switch k {
	case QuestIntern:
		l.flags.Intern = QuestSuccess
	case QuestStudyAbroad:
		l.flags.StudyAbroad = QuestSuccess
	}
}
