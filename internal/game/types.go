package game

import "campuslife/internal/content"

// LoveExperience records how the romance track went. It only moves
// forward: at most two round increments, or a jump to a terminal value.
type LoveExperience int

const (
	LoveNone        LoveExperience = 0
	LoveOneRound    LoveExperience = 1
	LoveSecondRound LoveExperience = 2 // only reached by a second-round increment
	LoveRejected    LoveExperience = 3
	LoveCheating    LoveExperience = 4
	LoveLoyal       LoveExperience = 5
)

// QuestOutcome records the terminal state of the internship or study
// abroad quest.
type QuestOutcome int

const (
	QuestDeclined QuestOutcome = -1
	QuestNone     QuestOutcome = 0
	QuestSuccess  QuestOutcome = 1
)

// Flags are the per-playthrough achievement counters.
type Flags struct {
	Love        LoveExperience `json:"love"`
	Intern      QuestOutcome   `json:"intern"`
	StudyAbroad QuestOutcome   `json:"studyAbroad"`
}

// QuestKind identifies a side quest.
type QuestKind string

const (
	QuestLove        QuestKind = "love"
	QuestIntern      QuestKind = "intern"
	QuestStudyAbroad QuestKind = "studyAbroad"
)

// RomanceRound selects the romance question set.
type RomanceRound int

const (
	RoundA RomanceRound = iota
	RoundB
)

// HistoryEntry is one answered question.
type HistoryEntry struct {
	Question string `json:"question"`
	Choice   string `json:"choice"`
	Result   string `json:"result"`
}

// Severity styles a notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is a modal message that blocks progression until it is
// acknowledged.
type Notification struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

func questTitle(t content.Text, k QuestKind) string {
	switch k {
	case QuestLove:
		return t.QuestTitles.Love
	case QuestIntern:
		return t.QuestTitles.Intern
	case QuestStudyAbroad:
		return t.QuestTitles.StudyAbroad
	}
	return string(k)
}
