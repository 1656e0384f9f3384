package content

import "fmt"

// Attribute names one of the four scored dimensions of a character.
type Attribute string

const (
	Academic Attribute = "academic"
	Love     Attribute = "love"
	Activity Attribute = "activity"
	Wealth   Attribute = "wealth"
)

// Attributes lists every attribute in declared order. Ranking ties are
// broken by this order.
var Attributes = [4]Attribute{Academic, Love, Activity, Wealth}

// Stats holds one value per attribute. Character stats are absolute
// values; option stats are multipliers applied to a character's
// starting stats.
type Stats struct {
	Academic float64 `yaml:"academic" json:"academic"`
	Love     float64 `yaml:"love" json:"love"`
	Activity float64 `yaml:"activity" json:"activity"`
	Wealth   float64 `yaml:"wealth" json:"wealth"`
}

// Get returns the value for a. Asking for an attribute outside the four
// declared ones is a programming error.
func (s Stats) Get(a Attribute) float64 {
	switch a {
	case Academic:
		return s.Academic
	case Love:
		return s.Love
	case Activity:
		return s.Activity
	case Wealth:
		return s.Wealth
	}
	panic(fmt.Sprintf("content: unknown attribute %q", a))
}

// Set replaces the value for a.
func (s *Stats) Set(a Attribute, v float64) {
	switch a {
	case Academic:
		s.Academic = v
	case Love:
		s.Love = v
	case Activity:
		s.Activity = v
	case Wealth:
		s.Wealth = v
	default:
		panic(fmt.Sprintf("content: unknown attribute %q", a))
	}
}

// Character is a playable archetype. It is never mutated after loading.
type Character struct {
	ID             string `yaml:"id" json:"id"`
	Name           string `yaml:"name" json:"name"`
	Description    string `yaml:"description" json:"description"`
	Image          string `yaml:"image" json:"image"`
	Stats          Stats  `yaml:"stats" json:"stats"`
	InRelationship bool   `yaml:"loveStatus" json:"inRelationship"`
}

// Question is a single prompt with its answer options.
type Question struct {
	Question string   `yaml:"question" json:"question"`
	Options  []Option `yaml:"options" json:"options"`
}

// Option is one answer to a question. Main, internship and study abroad
// options carry stat multipliers; romance options carry a love meter
// delta instead.
type Option struct {
	Text      string  `yaml:"text" json:"text"`
	Result    string  `yaml:"result" json:"result"`
	Stats     Stats   `yaml:"stats" json:"stats"`
	LoveDelta float64 `yaml:"inLoveChange" json:"loveDelta"`
}

// AttributeMeta is display metadata for an attribute. Name doubles as
// the attribute's token in ending table keys.
type AttributeMeta struct {
	Name  string `yaml:"name" json:"name"`
	Color string `yaml:"color" json:"color"`
	Icon  string `yaml:"icon" json:"icon"`
}

// SideQuestConfig holds the thresholds that trigger side quests.
type SideQuestConfig struct {
	Love struct {
		FirstTrigger  float64 `yaml:"firstTrigger" json:"firstTrigger"`
		SecondTrigger float64 `yaml:"secondTrigger" json:"secondTrigger"`
	} `yaml:"love" json:"love"`
	Intern struct {
		AcademicThreshold float64 `yaml:"academicThreshold" json:"academicThreshold"`
	} `yaml:"intern" json:"intern"`
	StudyAbroad struct {
		CombinedThreshold float64 `yaml:"combinedThreshold" json:"combinedThreshold"`
	} `yaml:"studyAbroad" json:"studyAbroad"`
}

// Config is the tunable part of the bundle.
type Config struct {
	Attributes map[Attribute]AttributeMeta `yaml:"attributes" json:"attributes"`
	Benchmarks Stats                       `yaml:"benchmarks" json:"benchmarks"`
	SideQuests SideQuestConfig             `yaml:"sideQuests" json:"sideQuests"`
}

// AttributeName returns the configured display name of a, or the
// attribute id when none is configured.
func (c Config) AttributeName(a Attribute) string {
	if m, ok := c.Attributes[a]; ok && m.Name != "" {
		return m.Name
	}
	return string(a)
}

// Ending is a narrative outcome.
type Ending struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

// DefaultEndingKey is the fallback entry every ending tier must carry.
const DefaultEndingKey = "default"

// Endings groups the ending tables by how many attributes ended well.
type Endings struct {
	AllGood map[string]Ending `yaml:"goodGood" json:"allGood"`
	Mixed   map[string]Ending `yaml:"goodBad" json:"mixed"`
	AllBad  map[string]Ending `yaml:"badBad" json:"allBad"`
}

// SideQuestSets are the question lists for each side quest.
type SideQuestSets struct {
	LoveA       []Question
	LoveB       []Question
	Intern      []Question
	StudyAbroad []Question
}

// Blurb is a short status line with an explanation.
type Blurb struct {
	Status string `yaml:"status" json:"status"`
	Desc   string `yaml:"desc" json:"desc"`
}

type LoveAchievementTexts struct {
	Title                   string `yaml:"title"`
	Cheating                Blurb  `yaml:"cheating"`
	Loyal                   Blurb  `yaml:"loyal"`
	Rejected                Blurb  `yaml:"rejected"`
	Success                 Blurb  `yaml:"success"`
	Failed                  Blurb  `yaml:"failed"`
	NotTriggeredWithPartner Blurb  `yaml:"notTriggeredWithPartner"`
	NotTriggeredSingle      Blurb  `yaml:"notTriggeredSingle"`
}

type QuestAchievementTexts struct {
	Title        string `yaml:"title"`
	Success      Blurb  `yaml:"success"`
	Declined     Blurb  `yaml:"declined"`
	NotTriggered Blurb  `yaml:"notTriggered"`
}

// Text is the narrative copy the engine hands to the view. It is data,
// never logic.
type Text struct {
	Intro struct {
		Title      string   `yaml:"title"`
		Paragraphs []string `yaml:"paragraphs"`
	} `yaml:"intro"`
	QuestTitles struct {
		Love        string `yaml:"love"`
		Intern      string `yaml:"intern"`
		StudyAbroad string `yaml:"studyAbroad"`
	} `yaml:"questTitles"`
	Prompts struct {
		LoveSingle          string `yaml:"loveSingle"`
		LoveAttached        string `yaml:"loveAttached"`
		Intern              string `yaml:"intern"`
		StudyAbroad         string `yaml:"studyAbroad"`
		LoveComplete        string `yaml:"loveQuestComplete"`
		LoveFailed          string `yaml:"loveQuestFailed"`
		InternComplete      string `yaml:"internQuestComplete"`
		StudyAbroadComplete string `yaml:"studyAbroadQuestComplete"`
		CheatingCaught      string `yaml:"cheatingCaught"`
	} `yaml:"prompts"`
	Grades       map[string]string `yaml:"grades"`
	Achievements struct {
		Love        LoveAchievementTexts  `yaml:"love"`
		Intern      QuestAchievementTexts `yaml:"intern"`
		StudyAbroad QuestAchievementTexts `yaml:"studyAbroad"`
	} `yaml:"achievements"`
}

// Bundle is the fully loaded and validated static content.
type Bundle struct {
	Characters    []Character
	MainQuestions map[string][]Question
	SideQuests    SideQuestSets
	Config        Config
	Endings       Endings
	Text          Text
}

// Character looks up a character by id.
func (b *Bundle) Character(id string) (*Character, bool) {
	for i := range b.Characters {
		if b.Characters[i].ID == id {
			return &b.Characters[i], true
		}
	}
	return nil, false
}

// QuestionsFor returns the main question list of a character.
func (b *Bundle) QuestionsFor(id string) []Question {
	return b.MainQuestions[id]
}
