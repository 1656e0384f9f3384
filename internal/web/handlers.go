package web

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"campuslife/internal/content"
	"campuslife/internal/game"
	"campuslife/internal/session"
)

type Server struct {
	Bundle *content.Bundle
	Store  session.Store[*game.Session]
	// ContentDir is where character images are read from (ContentDir/images).
	ContentDir string
	// SettleDelay is how long an answered main question stays on the
	// processing screen before triggers are evaluated.
	SettleDelay time.Duration
	// AllowedOrigin enables CORS for one browser origin when set.
	AllowedOrigin string
}

const cookieName = "campuslife_sid"

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)

	mux.HandleFunc("GET /api/state", s.handleState)
	mux.HandleFunc("GET /api/content/characters", s.handleCharacters)
	mux.HandleFunc("POST /api/begin", s.handleBegin)
	mux.HandleFunc("POST /api/character", s.handleSelectCharacter)
	mux.HandleFunc("POST /api/answer", s.handleAnswer)
	mux.HandleFunc("POST /api/quest", s.handleQuestDecision)
	mux.HandleFunc("POST /api/quest/answer", s.handleQuestAnswer)
	mux.HandleFunc("POST /api/ack", s.handleAcknowledge)
	mux.HandleFunc("POST /api/restart", s.handleRestart)
	mux.HandleFunc("GET /api/report.pdf", s.handleReport)

	mux.HandleFunc("GET /images/{file}", s.handleImage)
	mux.HandleFunc("GET /ws", s.handleWebSocket)

	if s.AllowedOrigin == "" {
		return mux
	}
	return s.cors(mux)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/api/state", http.StatusFound)
}

// errNoSession aborts a read-only store update for an unknown visitor.
var errNoSession = errors.New("no session")

// apply runs one command against the visitor's session. An answer is
// committed first, then settled after SettleDelay in a second update so
// requests arriving in between see the processing screen. Reading state
// never stores a session and restarting drops it.
func (s *Server) apply(ctx context.Context, id string, cmd Command) (game.Snapshot, error) {
	switch cmd.Type {
	case CmdState:
		snap, _, err := s.view(ctx, id)
		return snap, err
	case CmdRestart:
		if err := s.Store.Delete(ctx, id); err != nil {
			return game.Snapshot{}, err
		}
		return game.NewSession(s.Bundle).Snapshot(), nil
	}

	snap, err := s.update(ctx, id, func(g *game.Session) error { return dispatch(g, cmd) })
	if err != nil || cmd.Type != CmdAnswer {
		return snap, err
	}

	if s.SettleDelay > 0 {
		t := time.NewTimer(s.SettleDelay)
		select {
		case <-t.C:
		case <-ctx.Done():
			t.Stop()
		}
	}
	// Settle must run even when the caller has gone away, or the session
	// would stay on the processing screen.
	snap, err = s.update(context.WithoutCancel(ctx), id, (*game.Session).Settle)
	if errors.Is(err, game.ErrUnexpectedInput) {
		// restarted while settling
		return snap, nil
	}
	return snap, err
}

func dispatch(g *game.Session, cmd Command) error {
	switch cmd.Type {
	case CmdBegin:
		return g.Begin()
	case CmdCharacter:
		return g.SelectCharacter(cmd.CharacterID)
	case CmdAnswer:
		return g.ChooseMain(cmd.Option)
	case CmdQuest:
		return g.DecideQuest(cmd.Accept)
	case CmdQuestAnswer:
		return g.ChooseSideQuest(cmd.Option)
	case CmdAck:
		return g.Acknowledge()
	}
	return ErrUnknownCommand
}

// update runs fn on the stored session, creating one on first use, and
// snapshots the result while still holding the store lock.
func (s *Server) update(ctx context.Context, id string, fn func(*game.Session) error) (game.Snapshot, error) {
	var snap game.Snapshot
	_, err := s.Store.Update(ctx, id, func(g *game.Session, ok bool) (*game.Session, error) {
		if !ok || g == nil {
			g = game.NewSession(s.Bundle)
		}
		err := fn(g)
		snap = g.Snapshot()
		return g, err
	})
	return snap, err
}

// view snapshots the stored session. Visitors without one see a fresh
// intro and ok is false.
func (s *Server) view(ctx context.Context, id string) (snap game.Snapshot, ok bool, err error) {
	fresh := func() game.Snapshot { return game.NewSession(s.Bundle).Snapshot() }
	if _, ok, err := s.Store.Get(ctx, id); err != nil || !ok {
		return fresh(), false, err
	}
	// Snapshot caches the ending, so it runs under the store lock.
	_, err = s.Store.Update(ctx, id, func(g *game.Session, ok bool) (*game.Session, error) {
		if !ok || g == nil {
			return g, errNoSession
		}
		snap = g.Snapshot()
		return g, nil
	})
	if errors.Is(err, errNoSession) {
		return fresh(), false, nil
	}
	return snap, err == nil, err
}

// sessionFor returns the visitor's session id, and a cookie to set when
// the visitor did not have one yet.
func (s *Server) sessionFor(r *http.Request) (string, *http.Cookie) {
	if id := s.sessionID(r); id != "" {
		return id, nil
	}
	id := s.Store.NewID()
	return id, &http.Cookie{
		Name:     cookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func (s *Server) sessionID(r *http.Request) string {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

func (s *Server) run(w http.ResponseWriter, r *http.Request, cmd Command) {
	id, cookie := s.sessionFor(r)
	if cookie != nil {
		http.SetCookie(w, cookie)
	}
	snap, err := s.apply(r.Context(), id, cmd)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			log.Printf("[Web] %s failed for session %s: %v", cmd.Type, id, err)
		}
		writeJSON(w, status, Response{State: &snap, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, Response{State: &snap})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrUnexpectedInput),
		errors.Is(err, game.ErrBusy),
		errors.Is(err, game.ErrNotificationPending):
		return http.StatusConflict
	case errors.Is(err, game.ErrNoSuchOption),
		errors.Is(err, game.ErrUnknownCharacter),
		errors.Is(err, ErrUnknownCommand):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[Web] encode response: %v", err)
	}
}

func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.AllowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
