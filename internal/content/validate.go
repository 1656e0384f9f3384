package content

import (
	"fmt"
	"strings"
)

// ValidationError lists every contract violation found in a bundle.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return "invalid content: " + e.Problems[0]
	}
	return fmt.Sprintf("invalid content (%d problems): %s", len(e.Problems), strings.Join(e.Problems, "; "))
}

// Validate checks the bundle against the contract the engine relies on.
// Problems that would otherwise surface mid-game, such as an ending tier
// without a default entry, are reported here instead.
func (b *Bundle) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if len(b.Characters) == 0 {
		add("no characters")
	}
	seen := map[string]bool{}
	for i, c := range b.Characters {
		if c.ID == "" {
			add("character #%d has no id", i)
			continue
		}
		if seen[c.ID] {
			add("duplicate character id %q", c.ID)
		}
		seen[c.ID] = true
		qs := b.MainQuestions[c.ID]
		if len(qs) == 0 {
			add("character %q has no main questions", c.ID)
		}
		checkQuestions(fmt.Sprintf("character %q", c.ID), qs, add)
	}

	sets := []struct {
		name string
		qs   []Question
	}{
		{"romance round A", b.SideQuests.LoveA},
		{"romance round B", b.SideQuests.LoveB},
		{"internship", b.SideQuests.Intern},
		{"study abroad", b.SideQuests.StudyAbroad},
	}
	for _, s := range sets {
		if len(s.qs) == 0 {
			add("side quest %s has no questions", s.name)
		}
		checkQuestions("side quest "+s.name, s.qs, add)
	}

	for _, a := range Attributes {
		if b.Config.Benchmarks.Get(a) <= 0 {
			add("benchmark for %s must be positive", a)
		}
	}
	for a := range b.Config.Attributes {
		if !isAttribute(a) {
			add("unknown attribute %q in config", a)
		}
	}

	tiers := []struct {
		name  string
		table map[string]Ending
	}{
		{"goodGood", b.Endings.AllGood},
		{"goodBad", b.Endings.Mixed},
		{"badBad", b.Endings.AllBad},
	}
	for _, t := range tiers {
		if t.table == nil {
			add("ending tier %s is missing", t.name)
			continue
		}
		if _, ok := t.table[DefaultEndingKey]; !ok {
			add("ending tier %s has no %q entry", t.name, DefaultEndingKey)
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func checkQuestions(owner string, qs []Question, add func(string, ...any)) {
	for i, q := range qs {
		if len(q.Options) == 0 {
			add("%s question #%d has no options", owner, i)
		}
	}
}

func isAttribute(a Attribute) bool {
	for _, x := range Attributes {
		if x == a {
			return true
		}
	}
	return false
}
