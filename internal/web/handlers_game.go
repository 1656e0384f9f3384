package web

import (
	"net/http"
	"strconv"
)

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.run(w, r, Command{Type: CmdState})
}

func (s *Server) handleCharacters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Bundle.Characters)
}

func (s *Server) handleBegin(w http.ResponseWriter, r *http.Request) {
	s.run(w, r, Command{Type: CmdBegin})
}

func (s *Server) handleSelectCharacter(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	id := r.FormValue("id")
	if id == "" {
		http.Error(w, "missing id", http.StatusBadRequest)
		return
	}
	s.run(w, r, Command{Type: CmdCharacter, CharacterID: id})
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	opt, ok := formOption(w, r)
	if !ok {
		return
	}
	s.run(w, r, Command{Type: CmdAnswer, Option: opt})
}

func (s *Server) handleQuestDecision(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	accept, err := strconv.ParseBool(r.FormValue("accept"))
	if err != nil {
		http.Error(w, "accept must be true or false", http.StatusBadRequest)
		return
	}
	s.run(w, r, Command{Type: CmdQuest, Accept: accept})
}

func (s *Server) handleQuestAnswer(w http.ResponseWriter, r *http.Request) {
	opt, ok := formOption(w, r)
	if !ok {
		return
	}
	s.run(w, r, Command{Type: CmdQuestAnswer, Option: opt})
}

func (s *Server) handleAcknowledge(w http.ResponseWriter, r *http.Request) {
	s.run(w, r, Command{Type: CmdAck})
}

func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	s.run(w, r, Command{Type: CmdRestart})
}

func formOption(w http.ResponseWriter, r *http.Request) (int, bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return 0, false
	}
	opt, err := strconv.Atoi(r.FormValue("option"))
	if err != nil {
		http.Error(w, "option must be a number", http.StatusBadRequest)
		return 0, false
	}
	return opt, true
}
