package game

import (
	"math"

	"campuslife/internal/content"
)

// Grade is a letter grade for one attribute, from SS down to D.
type Grade string

const (
	GradeSS Grade = "SS"
	GradeS  Grade = "S"
	GradeA  Grade = "A"
	GradeB  Grade = "B"
	GradeC  Grade = "C"
	GradeD  Grade = "D"
)

var gradeLadder = []struct {
	min   float64
	grade Grade
}{
	{1.2, GradeSS},
	{1.0, GradeS},
	{0.8, GradeA},
	{0.6, GradeB},
	{0.4, GradeC},
}

// GradeFor grades value against its benchmark.
func GradeFor(value, benchmark float64) Grade {
	ratio := value / benchmark
	for _, g := range gradeLadder {
		if ratio >= g.min {
			return g.grade
		}
	}
	return GradeD
}

// percentOf is value as a share of benchmark, capped at 100.
func percentOf(value, benchmark float64) float64 {
	return math.Min(value/benchmark*100, 100)
}

// AttributeReport is one row of the final report card.
type AttributeReport struct {
	Attribute      content.Attribute `json:"attribute"`
	Name           string            `json:"name"`
	Initial        float64           `json:"initial"`
	Final          float64           `json:"final"`
	Benchmark      float64           `json:"benchmark"`
	Percent        float64           `json:"percent"`
	InitialPercent float64           `json:"initialPercent"`
	Grade          Grade             `json:"grade"`
	Comment        string            `json:"comment,omitempty"`
}

// AchievementKind names how a side quest ended up.
type AchievementKind string

const (
	AchievementCheating                AchievementKind = "cheating"
	AchievementLoyal                   AchievementKind = "loyal"
	AchievementRejected                AchievementKind = "rejected"
	AchievementSuccess                 AchievementKind = "success"
	AchievementFailed                  AchievementKind = "failed"
	AchievementDeclined                AchievementKind = "declined"
	AchievementNotTriggered            AchievementKind = "notTriggered"
	AchievementNotTriggeredWithPartner AchievementKind = "notTriggeredWithPartner"
)

// Achievement is the result-screen line for one side quest.
type Achievement struct {
	Quest  QuestKind       `json:"quest"`
	Title  string          `json:"title"`
	Kind   AchievementKind `json:"kind"`
	Status string          `json:"status"`
	Desc   string          `json:"desc"`
}

// RelationshipState is the final relationship status.
type RelationshipState string

const (
	RelationshipCaughtCheating RelationshipState = "caughtCheating"
	RelationshipLoyal          RelationshipState = "loyal"
	RelationshipAttached       RelationshipState = "attached"
	RelationshipSingle         RelationshipState = "single"
)

// Summary is everything the result screen shows besides the ending and
// the history log.
type Summary struct {
	Attributes   []AttributeReport `json:"attributes"`
	Achievements []Achievement     `json:"achievements"`
	Relationship RelationshipState `json:"relationship"`
}

// Summarize builds the report card from a finished ledger.
func Summarize(l *Ledger, cfg content.Config, text content.Text) Summary {
	var s Summary
	initial, final := l.Initial(), l.ScoreBoard()
	for _, a := range content.Attributes {
		bench := cfg.Benchmarks.Get(a)
		g := GradeFor(final.Get(a), bench)
		s.Attributes = append(s.Attributes, AttributeReport{
			Attribute:      a,
			Name:           cfg.AttributeName(a),
			Initial:        initial.Get(a),
			Final:          final.Get(a),
			Benchmark:      bench,
			Percent:        percentOf(final.Get(a), bench),
			InitialPercent: percentOf(initial.Get(a), bench),
			Grade:          g,
			Comment:        text.Grades[string(g)],
		})
	}

	flags := l.Flags()
	s.Achievements = []Achievement{
		loveAchievement(flags.Love, l.InitialRelationship(), l.InRelationship(), text),
		questAchievement(QuestIntern, flags.Intern, text.Achievements.Intern),
		questAchievement(QuestStudyAbroad, flags.StudyAbroad, text.Achievements.StudyAbroad),
	}
	s.Relationship = FinalRelationship(flags.Love, l.InRelationship())
	return s
}

func loveAchievement(exp LoveExperience, startedAttached, attached bool, text content.Text) Achievement {
	t := text.Achievements.Love
	kind, b := AchievementNotTriggered, t.NotTriggeredSingle
	switch {
	case exp == LoveCheating:
		kind, b = AchievementCheating, t.Cheating
	case exp == LoveLoyal:
		kind, b = AchievementLoyal, t.Loyal
	case exp == LoveRejected:
		kind, b = AchievementRejected, t.Rejected
	case exp > LoveNone && !startedAttached && attached:
		kind, b = AchievementSuccess, t.Success
	case exp > LoveNone:
		kind, b = AchievementFailed, t.Failed
	case startedAttached:
		kind, b = AchievementNotTriggeredWithPartner, t.NotTriggeredWithPartner
	}
	return Achievement{Quest: QuestLove, Title: t.Title, Kind: kind, Status: b.Status, Desc: b.Desc}
}

func questAchievement(k QuestKind, o QuestOutcome, t content.QuestAchievementTexts) Achievement {
	kind, b := AchievementNotTriggered, t.NotTriggered
	switch o {
	case QuestSuccess:
		kind, b = AchievementSuccess, t.Success
	case QuestDeclined:
		kind, b = AchievementDeclined, t.Declined
	}
	return Achievement{Quest: k, Title: t.Title, Kind: kind, Status: b.Status, Desc: b.Desc}
}

// FinalRelationship reports the relationship state at the end of a run.
func FinalRelationship(exp LoveExperience, attached bool) RelationshipState {
	switch {
	case exp == LoveCheating:
		return RelationshipCaughtCheating
	case exp == LoveLoyal:
		return RelationshipLoyal
	case attached:
		return RelationshipAttached
	}
	return RelationshipSingle
}
