package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"robot-race-service/internal/actuator"
	"robot-race-service/internal/app"
	"robot-race-service/internal/bank"
	"robot-race-service/internal/engine"
	"robot-race-service/internal/infra/memory"
)

func TestWebSocketHostFlow(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	u := "ws" + server.URL[len("http"):] + "/ws?mode=buzzer"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Expect match info first, then the cached menu snapshot.
	_, payload := readNext(conn, t, "match")
	id, _ := payload["matchId"].(string)
	if id == "" || payload["mode"] != "buzzer" {
		t.Fatalf("unexpected match payload: %+v", payload)
	}
	_, payload = readNext(conn, t, "state")
	if payload["phase"] != "menu" {
		t.Fatalf("expected menu snapshot, got %+v", payload)
	}

	start := map[string]any{
		"type":    "start",
		"payload": map[string]any{"level": 1},
	}
	if err := conn.WriteJSON(start); err != nil {
		t.Fatalf("write start: %v", err)
	}

	if !waitForPhase(conn, t, "reading") {
		t.Fatalf("expected the match to enter the reading phase")
	}
}

func TestWebSocketRejectsUnknownMode(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	u := "ws" + server.URL[len("http"):] + "/ws?mode=lightning"
	_, resp, err := websocket.DefaultDialer.Dial(u, nil)
	if err == nil {
		t.Fatalf("expected the upgrade to fail")
	}
	if resp == nil || resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %+v", resp)
	}
}

func TestWebSocketReportsBadPayloads(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	u := "ws" + server.URL[len("http"):] + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	readNext(conn, t, "match")

	if err := conn.WriteJSON(map[string]any{"type": "teleport"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	for i := 0; i < 5; i++ {
		typ, _ := readNext(conn, t, "")
		if typ == "error" {
			return
		}
	}
	t.Fatalf("expected an error message for an unsupported type")
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store := memory.NewMatchStore()
	catalogs := memory.NewCatalogRepository(memory.NewStaticCatalogLoader(bank.DefaultRecords()), time.Minute)
	service := app.NewMatchService(store, catalogs, engine.DefaultRules(), 2*time.Millisecond, actuator.Nop{})
	handler := NewWSHandler(service)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", handler.ServeWS)
	return httptest.NewServer(mux)
}

func readNext(conn *websocket.Conn, t *testing.T, expect string) (string, map[string]any) {
	t.Helper()
	var msg struct {
		Type    string         `json:"type"`
		Payload map[string]any `json:"payload"`
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read json: %v", err)
	}
	if expect != "" && msg.Type != expect {
		t.Fatalf("expected type %s, got %s", expect, msg.Type)
	}
	return msg.Type, msg.Payload
}

func waitForPhase(conn *websocket.Conn, t *testing.T, phase string) bool {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		typ, payload := readNext(conn, t, "")
		if typ == "state" && payload["phase"] == phase {
			return true
		}
	}
	return false
}
