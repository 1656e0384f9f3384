package web

import (
	"errors"
	"log"
	"net/http"

	"campuslife/internal/report"
)

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(r)
	if id == "" {
		http.Error(w, "no playthrough", http.StatusNotFound)
		return
	}
	snap, ok, err := s.view(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "no playthrough", http.StatusNotFound)
		return
	}
	pdf, err := report.Generate(&snap, s.Bundle.Config, s.Bundle.Text.Intro.Title)
	if errors.Is(err, report.ErrNotFinished) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		log.Printf("[Web] report for session %s: %v", id, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="campus-life-report.pdf"`)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("[Web] write report: %v", err)
	}
}
