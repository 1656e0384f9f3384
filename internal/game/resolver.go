package game

import (
	"fmt"

	"campuslife/internal/content"
)

// resolveAnswer applies one side quest answer. It returns the updated
// quest state and, when the quest is over, the notification to show
// before play resumes.
func resolveAnswer(l *Ledger, q QuestActive, opt content.Option, text content.Text) (QuestActive, *Notification) {
	question := q.Questions[q.Cursor]
	l.Record(fmt.Sprintf("[%s] %s", q.Title, question.Question), opt)
	next := q.Cursor + 1

	if q.Kind == QuestLove {
		q.LoveMeter += opt.LoveDelta
		if q.LoveMeter <= 0 {
			l.finishRomance(false)
			return q, &Notification{Message: text.Prompts.LoveFailed, Severity: SeverityError}
		}
		if next >= len(q.Questions) {
			l.finishRomance(true)
			return q, &Notification{Message: text.Prompts.LoveComplete, Severity: SeveritySuccess}
		}
		q.Cursor = next
		return q, nil
	}

	l.ApplySideQuestDelta(opt)
	if next >= len(q.Questions) {
		l.completeQuest(q.Kind)
		msg := text.Prompts.InternComplete
		if q.Kind == QuestStudyAbroad {
			msg = text.Prompts.StudyAbroadComplete
		}
		return q, &Notification{Message: msg, Severity: SeveritySuccess}
	}
	q.Cursor = next
	return q, nil
}

// resolveDecision handles the accept/decline prompt. Accepting a romance
// quest while already in a relationship is caught as cheating and never
// reaches the active quest.
func resolveDecision(l *Ledger, p QuestPrompt, accept bool, text content.Text) (active *QuestActive, note *Notification) {
	if !accept {
		l.declineQuest(p.Kind)
		return nil, nil
	}
	if p.Kind == QuestLove && l.InRelationship() {
		l.catchCheating()
		return nil, &Notification{Message: text.Prompts.CheatingCaught, Severity: SeverityError}
	}
	return &QuestActive{
		Index:     p.Index,
		Kind:      p.Kind,
		Title:     p.Title,
		Questions: p.Questions,
	}, nil
}
