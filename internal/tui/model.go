package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"campuslife/internal/content"
	"campuslife/internal/game"
	"campuslife/internal/ui"
)

type gameModel struct {
	g      *game.Session
	bundle *content.Bundle
	delay  time.Duration

	width  int
	height int

	selected int
	lastLog  string
}

// settledMsg ends the processing pause after a main answer.
type settledMsg struct{}

func newGameModel(b *content.Bundle, delay time.Duration) gameModel {
	return gameModel{
		g:       game.NewSession(b),
		bundle:  b,
		delay:   delay,
		lastLog: "Press enter to start.",
	}
}

func (m gameModel) Init() tea.Cmd {
	return nil
}

func (m gameModel) settleCmd() tea.Cmd {
	return tea.Tick(m.delay, func(time.Time) tea.Msg { return settledMsg{} })
}

func (m gameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case settledMsg:
		if err := m.g.Settle(); err != nil && !errors.Is(err, game.ErrUnexpectedInput) {
			m.lastLog = ui.Bad.Render(err.Error())
		}
		m.selected = 0
		return m, nil
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.g.Restart()
			m.selected = 0
			m.lastLog = "Restarted."
			return m, nil
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.choices())-1 {
				m.selected++
			}
			return m, nil
		case "y":
			if _, ok := m.g.Screen().(game.QuestPrompt); ok {
				return m.act(0)
			}
		case "n":
			if _, ok := m.g.Screen().(game.QuestPrompt); ok {
				return m.act(1)
			}
		case "enter", " ":
			return m.act(m.selected)
		default:
			if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
				return m.act(int(key[0] - '1'))
			}
		}
	}
	return m, nil
}

// act sends choice i to whatever the current screen accepts. With a
// notification open any choice acknowledges it.
func (m gameModel) act(i int) (tea.Model, tea.Cmd) {
	var err error
	var cmd tea.Cmd
	before := 0
	if l := m.g.Ledger(); l != nil {
		before = l.HistoryLen()
	}

	if m.g.Pending() != nil {
		err = m.g.Acknowledge()
	} else {
		switch sc := m.g.Screen().(type) {
		case game.Intro:
			err = m.g.Begin()
		case game.CharacterSelect:
			if i < 0 || i >= len(m.bundle.Characters) {
				return m, nil
			}
			err = m.g.SelectCharacter(m.bundle.Characters[i].ID)
		case game.Playing, game.Settling:
			err = m.g.ChooseMain(i)
			if err == nil {
				if m.delay > 0 {
					cmd = m.settleCmd()
				} else {
					err = m.g.Settle()
				}
			}
		case game.QuestPrompt:
			err = m.g.DecideQuest(i == 0)
			if err == nil {
				m.lastLog = "You let it pass."
				if i == 0 {
					m.lastLog = "You took on: " + sc.Title
				}
			}
		case game.QuestActive:
			err = m.g.ChooseSideQuest(i)
		case game.Result:
			return m, nil
		}
	}

	if err != nil {
		m.lastLog = ui.Bad.Render(err.Error())
		return m, cmd
	}
	m.selected = 0
	if l := m.g.Ledger(); l != nil && l.HistoryLen() > before {
		if last := l.History()[l.HistoryLen()-1]; last.Result != "" {
			m.lastLog = last.Result
		}
	}
	return m, cmd
}

// choices lists what can be picked on the current screen.
func (m gameModel) choices() []string {
	if m.g.Pending() != nil {
		return []string{"OK"}
	}
	switch sc := m.g.Screen().(type) {
	case game.Intro:
		return []string{"Begin"}
	case game.CharacterSelect:
		out := make([]string, len(m.bundle.Characters))
		for i, c := range m.bundle.Characters {
			out[i] = c.Name
		}
		return out
	case game.Playing:
		return optionTexts(m.g.Questions()[sc.Index])
	case game.Settling:
		return optionTexts(m.g.Questions()[sc.Index])
	case game.QuestPrompt:
		return []string{"Accept", "Decline"}
	case game.QuestActive:
		return optionTexts(sc.Questions[sc.Cursor])
	}
	return nil
}

func optionTexts(q content.Question) []string {
	out := make([]string, len(q.Options))
	for i, o := range q.Options {
		out[i] = o.Text
	}
	return out
}

func (m gameModel) View() string {
	snap := m.g.Snapshot()

	header := ui.Heading(ui.IconCampus, m.title())
	if snap.Character != nil {
		header += "  " + ui.Muted.Render(snap.Character.Name)
	}

	main := m.renderMain(snap)
	if snap.ScoreBoard != nil {
		sidebar := ui.Panel.Render(m.renderScoreBoard(snap))
		main = joinColumns(sidebar, main, 40)
	}

	footer := "\n" + m.lastLog + "\n" + ui.Muted.Render("↑/↓ move · enter choose · 1-9 pick · r restart · q quit")
	return header + "\n\n" + main + footer
}

func (m gameModel) title() string {
	if t := m.bundle.Text.Intro.Title; t != "" {
		return t
	}
	return "Campus Life"
}

func (m gameModel) renderScoreBoard(snap game.Snapshot) string {
	cfg := m.bundle.Config
	lines := []string{ui.H2.Render("Stats")}
	for _, a := range content.Attributes {
		v := snap.ScoreBoard.Get(a)
		bar := ui.Swatch(cfg.Attributes[a].Color, ui.Bar(v, cfg.Benchmarks.Get(a), 12))
		lines = append(lines, fmt.Sprintf("%s %-9s %s %s", ui.AttributeIcon(string(a)), cfg.AttributeName(a), bar, formatValue(v)))
	}
	status := "single"
	if snap.InRelationship {
		status = "in a relationship"
	}
	lines = append(lines, "", ui.LabelValue("Status", status))
	return strings.Join(lines, "\n")
}

func (m gameModel) renderMain(snap game.Snapshot) string {
	var out []string
	if snap.Notification != nil {
		out = append(out, ui.Notice.Render(ui.SeverityText(string(snap.Notification.Severity), snap.Notification.Message)))
		out = append(out, "", m.renderChoices())
		return strings.Join(out, "\n")
	}

	switch snap.Screen {
	case game.ScreenIntro:
		out = append(out, m.bundle.Text.Intro.Paragraphs...)
	case game.ScreenCharacterSelect:
		out = append(out, ui.H2.Render("Choose who you will be"))
		for _, c := range m.bundle.Characters {
			if c.Description != "" {
				out = append(out, ui.Muted.Render(c.Name+": "+c.Description))
			}
		}
	case game.ScreenPlaying, game.ScreenSettling, game.ScreenQuestActive:
		if snap.Quest != nil {
			line := ui.Heading(ui.IconQuest, snap.Quest.Title)
			if snap.Quest.LoveMeter != nil {
				line += "  " + ui.LabelValue("Affection", formatValue(*snap.Quest.LoveMeter))
			}
			out = append(out, line)
		}
		q := snap.Question
		out = append(out, ui.Muted.Render(fmt.Sprintf("Question %d/%d", q.Index+1, q.Total)), ui.H2.Render(q.Question))
		if snap.Processing {
			out = append(out, "", ui.Warn.Render(ui.IconHourglass+" Time passes..."))
		}
	case game.ScreenQuestPrompt:
		out = append(out, ui.Heading(ui.IconQuest, snap.Quest.Title), snap.Quest.Reason)
	case game.ScreenResult:
		return m.renderResult(snap)
	}
	out = append(out, "", m.renderChoices())
	return strings.Join(out, "\n")
}

func (m gameModel) renderChoices() string {
	var out []string
	for i, c := range m.choices() {
		row := fmt.Sprintf("  %d. %s", i+1, c)
		if i == m.selected {
			row = ui.SelectedRow.Render(fmt.Sprintf("> %d. %s", i+1, c))
		}
		out = append(out, row)
	}
	return strings.Join(out, "\n")
}

func (m gameModel) renderResult(snap game.Snapshot) string {
	out := []string{
		ui.Heading(ui.IconTrophy, snap.Ending.Ending.Title),
		snap.Ending.Ending.Description,
		"",
		ui.H2.Render("Report card"),
	}
	for _, a := range snap.Summary.Attributes {
		out = append(out, fmt.Sprintf("%-10s %s  %s -> %s  %s", a.Name, ui.GradeText(string(a.Grade)), formatValue(a.Initial), formatValue(a.Final), ui.Muted.Render(a.Comment)))
	}
	out = append(out, "", ui.H2.Render("Achievements"))
	for _, a := range snap.Summary.Achievements {
		out = append(out, fmt.Sprintf("%s: %s", ui.Key.Render(a.Title), a.Status))
	}
	out = append(out, "", ui.Muted.Render("Press r to play again."))
	return strings.Join(out, "\n")
}

func formatValue(v float64) string {
	return fmt.Sprintf("%.4g", v)
}

// joinColumns lays two blocks side by side.
func joinColumns(left, right string, leftW int) string {
	l := strings.Split(left, "\n")
	r := strings.Split(right, "\n")
	n := len(l)
	if len(r) > n {
		n = len(r)
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		var a, c string
		if i < len(l) {
			a = l[i]
		}
		if i < len(r) {
			c = r[i]
		}
		b.WriteString(padRight(a, leftW))
		b.WriteString("  ")
		b.WriteString(c)
		b.WriteString("\n")
	}
	return b.String()
}

func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
