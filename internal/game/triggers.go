package game

import "campuslife/internal/content"

// TriggerDecision says which side quest fires after a main answer.
type TriggerDecision struct {
	Kind  QuestKind
	Round RomanceRound // romance only
}

// EvaluateTriggers decides whether a side quest fires. At most one
// fires per answer; romance preempts internship, which preempts study
// abroad.
func EvaluateTriggers(board content.Stats, flags Flags, cfg content.SideQuestConfig) (TriggerDecision, bool) {
	if flags.Love < LoveSecondRound {
		switch {
		case flags.Love == LoveNone && board.Love > cfg.Love.FirstTrigger:
			return TriggerDecision{Kind: QuestLove, Round: RoundA}, true
		case flags.Love == LoveOneRound && board.Love > cfg.Love.SecondTrigger:
			return TriggerDecision{Kind: QuestLove, Round: RoundB}, true
		}
	}
	if flags.Intern == QuestNone && board.Academic > cfg.Intern.AcademicThreshold {
		return TriggerDecision{Kind: QuestIntern}, true
	}
	if flags.StudyAbroad == QuestNone && board.Wealth+board.Activity > cfg.StudyAbroad.CombinedThreshold {
		return TriggerDecision{Kind: QuestStudyAbroad}, true
	}
	return TriggerDecision{}, false
}

// questSet resolves a decision against the bundle: the question list and
// the prompt text shown before the player accepts.
func questSet(b *content.Bundle, d TriggerDecision, inRelationship bool) ([]content.Question, string) {
	switch d.Kind {
	case QuestLove:
		qs := b.SideQuests.LoveA
		if d.Round == RoundB {
			qs = b.SideQuests.LoveB
		}
		if inRelationship {
			return qs, b.Text.Prompts.LoveAttached
		}
		return qs, b.Text.Prompts.LoveSingle
	case QuestIntern:
		return b.SideQuests.Intern, b.Text.Prompts.Intern
	default:
		return b.SideQuests.StudyAbroad, b.Text.Prompts.StudyAbroad
	}
}
