package web

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = 30 * time.Second
	wsReadLimit  = 4096
)

func (s *Server) upgrader() *websocket.Upgrader {
	u := &websocket.Upgrader{ReadBufferSize: 4096, WriteBufferSize: 4096}
	if s.AllowedOrigin != "" {
		u.CheckOrigin = func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || origin == s.AllowedOrigin || sameHost(r, origin)
		}
	}
	return u
}

func sameHost(r *http.Request, origin string) bool {
	return origin == "http://"+r.Host || origin == "https://"+r.Host
}

// handleWebSocket drives one session over a socket. Every command gets a
// Response with the resulting snapshot; the current one is pushed on
// connect.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	id, cookie := s.sessionFor(r)
	var hdr http.Header
	if cookie != nil {
		hdr = http.Header{"Set-Cookie": {cookie.String()}}
	}
	conn, err := s.upgrader().Upgrade(w, r, hdr)
	if err != nil {
		log.Printf("[Web] websocket upgrade: %v", err)
		return
	}
	log.Printf("[Web] websocket connected: session %s", id)

	send := make(chan Response, 16)
	done := make(chan struct{})
	go func() {
		writePump(conn, send)
		close(done)
	}()
	defer close(send)
	push := func(resp Response) bool {
		select {
		case send <- resp:
			return true
		case <-done:
			return false
		}
	}

	ctx := r.Context()
	snap, err := s.apply(ctx, id, Command{Type: CmdState})
	if err != nil {
		log.Printf("[Web] websocket initial state: %v", err)
		return
	}
	if !push(Response{State: &snap}) {
		return
	}

	conn.SetReadLimit(wsReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[Web] websocket read: %v", err)
			}
			break
		}
		var cmd Command
		if err := json.Unmarshal(data, &cmd); err != nil {
			if !push(Response{Error: "malformed command"}) {
				break
			}
			continue
		}
		snap, err := s.apply(ctx, id, cmd)
		resp := Response{State: &snap}
		if err != nil {
			resp.Error = err.Error()
		}
		if !push(resp) {
			break
		}
	}
	log.Printf("[Web] websocket closed: session %s", id)
}

func writePump(conn *websocket.Conn, send <-chan Response) {
	ticker := time.NewTicker(wsPingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case resp, ok := <-send:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteJSON(resp); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
