package web

import (
	"errors"

	"campuslife/internal/game"
)

// Command types accepted over the websocket. The HTTP endpoints build the
// same commands from form values.
const (
	CmdState       = "state"
	CmdBegin       = "begin"
	CmdCharacter   = "character"
	CmdAnswer      = "answer"
	CmdQuest       = "quest"
	CmdQuestAnswer = "questAnswer"
	CmdAck         = "ack"
	CmdRestart     = "restart"
)

var ErrUnknownCommand = errors.New("unknown command")

// Command is one player input.
type Command struct {
	Type        string `json:"type"`
	CharacterID string `json:"characterId,omitempty"`
	Option      int    `json:"option,omitempty"`
	Accept      bool   `json:"accept,omitempty"`
}

// Response carries the state after a command, and the reason when the
// command was rejected.
type Response struct {
	State *game.Snapshot `json:"state,omitempty"`
	Error string         `json:"error,omitempty"`
}
