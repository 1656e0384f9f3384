package game

import (
	"fmt"

	"campuslife/internal/content"
)

// Main question option indexes used throughout the tests.
const (
	optNeutral  = 0 // no change
	optLove     = 1 // love +1x initial
	optAcademic = 2 // academic +1x initial
	optAll      = 3 // every attribute +5x initial
	optDown     = 4 // every attribute -0.5x initial
)

// Romance option indexes.
const (
	optCharm = 0 // meter +2
	optSnub  = 1 // meter -1
)

func uniform(v float64) content.Stats {
	return content.Stats{Academic: v, Love: v, Activity: v, Wealth: v}
}

func mainQuestions(n int) []content.Question {
	qs := make([]content.Question, n)
	for i := range qs {
		qs[i] = content.Question{
			Question: fmt.Sprintf("Main %d", i),
			Options: []content.Option{
				{Text: "Nothing", Result: "Nothing happens"},
				{Text: "Date", Result: "Sparks", Stats: content.Stats{Love: 1}},
				{Text: "Study", Result: "Smarter", Stats: content.Stats{Academic: 1}},
				{Text: "Everything", Result: "Wow", Stats: uniform(5)},
				{Text: "Slack", Result: "Oops", Stats: uniform(-0.5)},
			},
		}
	}
	return qs
}

func romanceQuestions(prefix string, n int) []content.Question {
	qs := make([]content.Question, n)
	for i := range qs {
		qs[i] = content.Question{
			Question: fmt.Sprintf("%s %d", prefix, i),
			Options: []content.Option{
				{Text: "Charm", Result: "They smile", LoveDelta: 2},
				{Text: "Snub", Result: "They frown", LoveDelta: -1},
			},
		}
	}
	return qs
}

func statQuestions(prefix string, n int, mult content.Stats) []content.Question {
	qs := make([]content.Question, n)
	for i := range qs {
		qs[i] = content.Question{
			Question: fmt.Sprintf("%s %d", prefix, i),
			Options:  []content.Option{{Text: "Work", Result: "Done", Stats: mult}},
		}
	}
	return qs
}

func testBundle() *content.Bundle {
	b := &content.Bundle{
		Characters: []content.Character{
			{ID: "single", Name: "Freshman", Stats: uniform(5)},
			{ID: "attached", Name: "Sweetheart", Stats: uniform(10), InRelationship: true},
		},
		MainQuestions: map[string][]content.Question{
			"single":   mainQuestions(10),
			"attached": mainQuestions(10),
		},
		SideQuests: content.SideQuestSets{
			LoveA:       romanceQuestions("Love A", 3),
			LoveB:       romanceQuestions("Love B", 2),
			Intern:      statQuestions("Intern", 2, content.Stats{Academic: 1}),
			StudyAbroad: statQuestions("Abroad", 1, content.Stats{Wealth: 1, Activity: 1}),
		},
		Config: content.Config{
			Attributes: map[content.Attribute]content.AttributeMeta{
				content.Academic: {Name: "Academic"},
				content.Love:     {Name: "Love"},
				content.Activity: {Name: "Activity"},
				content.Wealth:   {Name: "Wealth"},
			},
			Benchmarks: uniform(100),
		},
		Endings: content.Endings{
			AllGood: map[string]content.Ending{
				"default":           {Title: "Good default"},
				"Academic-Activity": {Title: "Scholar athlete"},
			},
			Mixed: map[string]content.Ending{
				"default":         {Title: "Mixed default"},
				"Academic-Wealth": {Title: "Broke genius"},
			},
			AllBad: map[string]content.Ending{
				"default": {Title: "Bad default"},
			},
		},
	}
	b.Config.SideQuests.Love.FirstTrigger = 20
	b.Config.SideQuests.Love.SecondTrigger = 40
	b.Config.SideQuests.Intern.AcademicThreshold = 25
	b.Config.SideQuests.StudyAbroad.CombinedThreshold = 40

	b.Text.QuestTitles.Love = "Romance"
	b.Text.QuestTitles.Intern = "Internship"
	b.Text.QuestTitles.StudyAbroad = "Exchange"
	b.Text.Prompts.LoveSingle = "someone noticed you"
	b.Text.Prompts.LoveAttached = "even though you are taken"
	b.Text.Prompts.Intern = "a professor recommends you"
	b.Text.Prompts.StudyAbroad = "you qualify for exchange"
	b.Text.Prompts.LoveComplete = "love complete"
	b.Text.Prompts.LoveFailed = "love failed"
	b.Text.Prompts.InternComplete = "intern complete"
	b.Text.Prompts.StudyAbroadComplete = "abroad complete"
	b.Text.Prompts.CheatingCaught = "caught cheating"
	return b
}
