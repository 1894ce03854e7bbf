package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"robot-race-service/internal/app"
	"robot-race-service/internal/domain"
)

// WSHandler turns a websocket connection into the host loop of one match.
// Both players share the connection (they share the physical console); the
// client sends already-decoded player actions and receives state snapshots.
type WSHandler struct {
	service  *app.MatchService
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.MatchService) *WSHandler {
	return &WSHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type startPayload struct {
	Level int `json:"level"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type matchInfo struct {
	MatchID string      `json:"matchId"`
	Mode    domain.Mode `json:"mode"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades the request, creates a match for the requested mode and
// pumps snapshots out while feeding inbound actions to the engine loop.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	mode := domain.Mode(r.URL.Query().Get("mode"))
	if mode == "" {
		mode = domain.ModeBuzzerRace
	}
	if mode != domain.ModeBuzzerRace && mode != domain.ModeOpenAnswer {
		http.Error(w, "unknown mode", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	match, err := h.service.Create(r.Context(), mode)
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	defer h.service.Close(match.ID())

	updates, cancel := match.Subscribe()
	defer cancel()

	send := make(chan outboundMessage[any], 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	updatesDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}()

	// Queue the match handle before the snapshot pump starts so the client
	// always sees it first.
	send <- outboundMessage[any]{Type: "match", Payload: matchInfo{MatchID: match.ID(), Mode: mode}}

	go func() {
		defer close(updatesDone)
		for {
			select {
			case snap, ok := <-updates:
				if !ok {
					return
				}
				select {
				case send <- outboundMessage[any]{Type: "state", Payload: snap}:
				case <-closeSignals:
					return
				}
			case <-closeSignals:
				return
			}
		}
	}()

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		switch inbound.Type {
		case "start":
			var payload startPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "invalid start payload"}}
				continue
			}
			_ = match.Act(domain.Action{Kind: domain.ActionSelectLevel, Level: payload.Level})
		case "action":
			var act domain.Action
			if err := json.Unmarshal(inbound.Payload, &act); err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "invalid action payload"}}
				continue
			}
			if err := match.Act(act); err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
			}
		default:
			send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "unsupported message type"}}
		}
	}

	close(closeSignals)
	<-updatesDone
	close(send)
	<-writerDone
}
