package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"
)

// Content file layout relative to the bundle root.
const (
	fileCharacters  = "characters.yaml"
	fileConfig      = "config.yaml"
	fileEndings     = "endings.yaml"
	fileText        = "text.yaml"
	fileLoveA       = "sidequests/love_1.yaml"
	fileLoveB       = "sidequests/love_2.yaml"
	fileIntern      = "sidequests/intern.yaml"
	fileStudyAbroad = "sidequests/study_abroad.yaml"
)

func questionsFile(characterID string) string {
	return path.Join("questions", "character_"+characterID+".yaml")
}

type charactersFile struct {
	Characters []Character `yaml:"characters"`
}

type questionsDoc struct {
	Questions []Question `yaml:"questions"`
}

type configDoc struct {
	Config Config `yaml:"config"`
}

type endingsDoc struct {
	Endings Endings `yaml:"endings"`
}

// Load reads every content file from fsys and validates the result. A
// failure here means the game cannot start.
func Load(fsys fs.FS) (*Bundle, error) {
	var chars charactersFile
	if err := readYAML(fsys, fileCharacters, &chars); err != nil {
		return nil, err
	}
	var cfg configDoc
	if err := readYAML(fsys, fileConfig, &cfg); err != nil {
		return nil, err
	}
	var ends endingsDoc
	if err := readYAML(fsys, fileEndings, &ends); err != nil {
		return nil, err
	}
	var text Text
	if err := readYAML(fsys, fileText, &text); err != nil {
		return nil, err
	}

	b := &Bundle{
		Characters:    chars.Characters,
		MainQuestions: make(map[string][]Question, len(chars.Characters)),
		Config:        cfg.Config,
		Endings:       ends.Endings,
		Text:          text,
	}

	sets := []struct {
		file string
		dst  *[]Question
	}{
		{fileLoveA, &b.SideQuests.LoveA},
		{fileLoveB, &b.SideQuests.LoveB},
		{fileIntern, &b.SideQuests.Intern},
		{fileStudyAbroad, &b.SideQuests.StudyAbroad},
	}
	for _, s := range sets {
		var doc questionsDoc
		if err := readYAML(fsys, s.file, &doc); err != nil {
			return nil, err
		}
		*s.dst = doc.Questions
	}

	for _, c := range b.Characters {
		if c.ID == "" {
			continue // reported by Validate
		}
		var doc questionsDoc
		if err := readYAML(fsys, questionsFile(c.ID), &doc); err != nil {
			return nil, err
		}
		b.MainQuestions[c.ID] = doc.Questions
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func readYAML(fsys fs.FS, name string, v any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	// Unknown keys are errors so a misspelled attribute cannot load as zero.
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}
