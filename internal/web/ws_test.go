package web

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"campuslife/internal/game"

	"github.com/gorilla/websocket"
)

func dialTestServer(t *testing.T, srv *Server) *websocket.Conn {
	t.Helper()
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	found := false
	for _, c := range resp.Cookies() {
		if c.Name == cookieName && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Error("Expected session cookie on upgrade")
	}
	return conn
}

func readResponse(t *testing.T, conn *websocket.Conn) Response {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var resp Response
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}
	return resp
}

func send(t *testing.T, conn *websocket.Conn, cmd Command) Response {
	t.Helper()
	if err := conn.WriteJSON(cmd); err != nil {
		t.Fatalf("write: %v", err)
	}
	return readResponse(t, conn)
}

func TestWebSocket_Playthrough(t *testing.T) {
	conn := dialTestServer(t, testServer(t))

	if resp := readResponse(t, conn); resp.State == nil || resp.State.Screen != game.ScreenIntro {
		t.Fatalf("Expected intro pushed on connect, got %+v", resp)
	}

	resp := send(t, conn, Command{Type: CmdBegin})
	if resp.State.Screen != game.ScreenCharacterSelect {
		t.Fatalf("Expected character select, got %s", resp.State.Screen)
	}
	send(t, conn, Command{Type: CmdCharacter, CharacterID: "frosh"})
	send(t, conn, Command{Type: CmdAnswer, Option: 1})
	resp = send(t, conn, Command{Type: CmdAnswer, Option: 0})
	if resp.Error != "" || resp.State.Screen != game.ScreenResult {
		t.Fatalf("Expected result, got %+v", resp)
	}
	if resp.State.Summary == nil || len(resp.State.Summary.Attributes) != 4 {
		t.Errorf("Expected report card on result, got %+v", resp.State.Summary)
	}
}

func TestWebSocket_Errors(t *testing.T) {
	conn := dialTestServer(t, testServer(t))
	readResponse(t, conn)

	resp := send(t, conn, Command{Type: CmdAck})
	if resp.Error == "" || resp.State.Screen != game.ScreenIntro {
		t.Errorf("Expected rejected acknowledge, got %+v", resp)
	}
	resp = send(t, conn, Command{Type: "dance"})
	if !strings.Contains(resp.Error, ErrUnknownCommand.Error()) {
		t.Errorf("Expected unknown command error, got %q", resp.Error)
	}

	if err := conn.WriteMessage(websocket.TextMessage, []byte("{not json")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if resp := readResponse(t, conn); resp.Error != "malformed command" || resp.State != nil {
		t.Errorf("Expected malformed command error, got %+v", resp)
	}
}
