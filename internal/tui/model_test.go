package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"campuslife/internal/content"
	"campuslife/internal/game"
)

func testBundle() *content.Bundle {
	q := func(text string) content.Question {
		return content.Question{
			Question: text,
			Options: []content.Option{
				{Text: "Rest", Result: "You nap"},
				{Text: "Study", Result: "You learn", Stats: content.Stats{Academic: 1}},
			},
		}
	}
	b := &content.Bundle{
		Characters: []content.Character{
			{ID: "frosh", Name: "Freshman", Description: "New in town", Stats: content.Stats{Academic: 5, Love: 5, Activity: 5, Wealth: 5}},
			{ID: "senior", Name: "Senior", Stats: content.Stats{Academic: 9, Love: 9, Activity: 9, Wealth: 9}},
		},
		MainQuestions: map[string][]content.Question{
			"frosh":  {q("First week"), q("Midterms")},
			"senior": {q("Thesis")},
		},
		SideQuests: content.SideQuestSets{
			LoveA:       []content.Question{q("Coffee")},
			LoveB:       []content.Question{q("Dinner")},
			Intern:      []content.Question{q("Interview")},
			StudyAbroad: []content.Question{q("Visa")},
		},
		Config: content.Config{Benchmarks: content.Stats{Academic: 100, Love: 100, Activity: 100, Wealth: 100}},
		Endings: content.Endings{
			AllGood: map[string]content.Ending{"default": {Title: "Valedictorian"}},
			Mixed:   map[string]content.Ending{"default": {Title: "Well rounded"}},
			AllBad:  map[string]content.Ending{"default": {Title: "Late bloomer"}},
		},
	}
	b.Config.SideQuests.Love.FirstTrigger = 1000
	b.Config.SideQuests.Love.SecondTrigger = 2000
	b.Config.SideQuests.Intern.AcademicThreshold = 1000
	b.Config.SideQuests.StudyAbroad.CombinedThreshold = 1000
	b.Text.Intro.Title = "Campus Life"
	b.Text.Intro.Paragraphs = []string{"Four years start now."}
	b.Text.QuestTitles.Intern = "Internship"
	b.Text.Prompts.Intern = "A professor recommends you"
	b.Text.Prompts.InternComplete = "You got the offer"
	return b
}

func press(t *testing.T, m gameModel, key string) (gameModel, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, cmd := m.Update(msg)
	return next.(gameModel), cmd
}

func pressAll(t *testing.T, m gameModel, keys ...string) gameModel {
	t.Helper()
	for _, k := range keys {
		m, _ = press(t, m, k)
	}
	return m
}

func screenName(m gameModel) string {
	return m.g.Screen().Name()
}

func TestPlaythrough(t *testing.T) {
	m := newGameModel(testBundle(), 0)
	if !strings.Contains(m.View(), "Four years start now.") {
		t.Error("Expected intro text in view")
	}

	m = pressAll(t, m, "enter")
	if screenName(m) != game.ScreenCharacterSelect {
		t.Fatalf("Expected character select, got %s", screenName(m))
	}
	m = pressAll(t, m, "1")
	if m.g.Character() == nil || m.g.Character().ID != "frosh" {
		t.Fatalf("Expected frosh selected, got %+v", m.g.Character())
	}
	if !strings.Contains(m.View(), "First week") {
		t.Error("Expected first question in view")
	}

	m = pressAll(t, m, "2")
	if m.g.Ledger().ScoreBoard().Academic != 10 {
		t.Errorf("Expected academic 10, got %v", m.g.Ledger().ScoreBoard().Academic)
	}
	if m.lastLog != "You learn" {
		t.Errorf("Expected result text logged, got %q", m.lastLog)
	}
	m = pressAll(t, m, "1")
	if screenName(m) != game.ScreenResult {
		t.Fatalf("Expected result, got %s", screenName(m))
	}
	view := m.View()
	for _, want := range []string{"Late bloomer", "Report card", "Achievements"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected %q in result view", want)
		}
	}

	m = pressAll(t, m, "r")
	if screenName(m) != game.ScreenIntro || m.g.Ledger() != nil {
		t.Errorf("Expected clean intro after restart, got %s", screenName(m))
	}
}

func TestScoreBoardPanel(t *testing.T) {
	m := newGameModel(testBundle(), 0)
	if strings.Contains(m.View(), "╭") {
		t.Error("Expected no score panel before a character is chosen")
	}

	m = pressAll(t, m, "enter", "1")
	view := m.View()
	if !strings.Contains(view, "╭") || !strings.Contains(view, "╰") {
		t.Error("Expected score board framed in a rounded panel")
	}
	if !strings.Contains(view, "Stats") || !strings.Contains(view, "single") {
		t.Error("Expected stats and relationship status inside the panel")
	}
}

func TestNavigation(t *testing.T) {
	m := pressAll(t, newGameModel(testBundle(), 0), "enter")
	m = pressAll(t, m, "up")
	if m.selected != 0 {
		t.Errorf("Expected selection to stay at 0, got %d", m.selected)
	}
	m = pressAll(t, m, "down", "down", "down")
	if m.selected != 1 {
		t.Errorf("Expected selection clamped at 1, got %d", m.selected)
	}
	m = pressAll(t, m, "enter")
	if m.g.Character().ID != "senior" {
		t.Errorf("Expected senior selected, got %s", m.g.Character().ID)
	}
	if m.selected != 0 {
		t.Errorf("Expected selection reset, got %d", m.selected)
	}
}

func TestSettleDelay(t *testing.T) {
	m := pressAll(t, newGameModel(testBundle(), time.Second), "enter", "1")

	m, cmd := press(t, m, "2")
	if cmd == nil {
		t.Fatal("Expected settle tick")
	}
	if screenName(m) != game.ScreenSettling {
		t.Fatalf("Expected settling, got %s", screenName(m))
	}
	if !strings.Contains(m.View(), "Time passes") {
		t.Error("Expected processing indicator in view")
	}

	m = pressAll(t, m, "2")
	if !strings.Contains(m.lastLog, game.ErrBusy.Error()) {
		t.Errorf("Expected busy message, got %q", m.lastLog)
	}
	if m.g.Ledger().HistoryLen() != 1 {
		t.Errorf("Expected one recorded answer, got %d", m.g.Ledger().HistoryLen())
	}

	next, _ := m.Update(settledMsg{})
	m = next.(gameModel)
	if p, ok := m.g.Screen().(game.Playing); !ok || p.Index != 1 {
		t.Errorf("Expected second question after settling, got %s", screenName(m))
	}
}

func TestQuestDecline(t *testing.T) {
	b := testBundle()
	b.Config.SideQuests.Intern.AcademicThreshold = 6
	m := pressAll(t, newGameModel(b, 0), "enter", "1", "2")
	if screenName(m) != game.ScreenQuestPrompt {
		t.Fatalf("Expected side quest prompt, got %s", screenName(m))
	}
	if !strings.Contains(m.View(), "A professor recommends you") {
		t.Error("Expected prompt reason in view")
	}

	m = pressAll(t, m, "n")
	if m.g.Ledger().Flags().Intern != game.QuestDeclined {
		t.Errorf("Expected intern declined, got %d", m.g.Ledger().Flags().Intern)
	}
	if p, ok := m.g.Screen().(game.Playing); !ok || p.Index != 1 {
		t.Errorf("Expected second question, got %s", screenName(m))
	}
}

func TestQuestNotification(t *testing.T) {
	b := testBundle()
	b.Config.SideQuests.Intern.AcademicThreshold = 6
	m := pressAll(t, newGameModel(b, 0), "enter", "1", "2", "y")
	if screenName(m) != game.ScreenQuestActive {
		t.Fatalf("Expected side quest, got %s", screenName(m))
	}

	m = pressAll(t, m, "1")
	if m.g.Pending() == nil {
		t.Fatal("Expected completion notification")
	}
	if !strings.Contains(m.View(), "You got the offer") {
		t.Error("Expected notification in view")
	}

	m = pressAll(t, m, "enter")
	if m.g.Pending() != nil {
		t.Error("Expected notification acknowledged")
	}
	if p, ok := m.g.Screen().(game.Playing); !ok || p.Index != 1 {
		t.Errorf("Expected second question, got %s", screenName(m))
	}
}

func TestQuit(t *testing.T) {
	_, cmd := press(t, newGameModel(testBundle(), 0), "q")
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
}
