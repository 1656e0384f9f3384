package game

import "campuslife/internal/content"

// Screen is the current state of the progression machine. Each variant
// carries only the data that state needs.
type Screen interface {
	Name() string
	screen()
}

// Screen names as seen by the presentation layer.
const (
	ScreenIntro           = "intro"
	ScreenCharacterSelect = "character-select"
	ScreenPlaying         = "playing"
	ScreenSettling        = "settling"
	ScreenQuestPrompt     = "side-quest-prompt"
	ScreenQuestActive     = "side-quest"
	ScreenResult          = "result"
)

type Intro struct{}

type CharacterSelect struct{}

// Playing waits for an answer to main question Index.
type Playing struct {
	Index int
}

// Settling follows a main answer: the delta is committed and the next
// screen is not decided yet. Main answers are refused here.
type Settling struct {
	Index int
}

// QuestPrompt offers a triggered side quest. Index is the suspended main
// question cursor.
type QuestPrompt struct {
	Index     int
	Kind      QuestKind
	Title     string
	Reason    string
	Questions []content.Question
}

// QuestActive runs a side quest. LoveMeter is only used by romance.
type QuestActive struct {
	Index     int
	Kind      QuestKind
	Title     string
	Questions []content.Question
	Cursor    int
	LoveMeter float64
}

type Result struct{}

func (Intro) Name() string           { return ScreenIntro }
func (CharacterSelect) Name() string { return ScreenCharacterSelect }
func (Playing) Name() string         { return ScreenPlaying }
func (Settling) Name() string        { return ScreenSettling }
func (QuestPrompt) Name() string     { return ScreenQuestPrompt }
func (QuestActive) Name() string     { return ScreenQuestActive }
func (Result) Name() string          { return ScreenResult }

func (Intro) screen()           {}
func (CharacterSelect) screen() {}
func (Playing) screen()         {}
func (Settling) screen()        {}
func (QuestPrompt) screen()     {}
func (QuestActive) screen()     {}
func (Result) screen()          {}
