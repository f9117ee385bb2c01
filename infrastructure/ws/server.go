package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/ta11ey/chaticusMaximus/contract"
	"github.com/ta11ey/chaticusMaximus/services"
)

// frame is the raw inbound wire shape. Clients send
// {"action": "sendMessage", "username": ..., "content": ...} and friends;
// the dispatcher turns each action into its typed request before the room
// service sees it.
type frame struct {
	Action   string `json:"action"`
	Username string `json:"username"`
	Content  string `json:"content"`
}

type Server struct {
	room     services.IRoomService
	hub      *Hub
	upgrader websocket.Upgrader
	log      *slog.Logger
}

func NewServer(room services.IRoomService, hub *Hub, log *slog.Logger) *Server {
	return &Server{room: room, hub: hub, log: log}
}

func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/ws", s.handleSocket)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

// handleSocket owns one connection lifecycle: upgrade, register, pump
// inbound frames through the room service, and tear down on any read error.
func (s *Server) handleSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error("WebSocket upgrade failed", "error", err)
		return
	}

	ctx := r.Context()
	connectionID := s.hub.Register(conn)
	resp := s.room.OnConnect(ctx, contract.ConnectRequest{ConnectionID: connectionID})
	if resp.StatusCode != http.StatusOK {
		s.writeResponse(ctx, connectionID, resp)
		s.hub.Unregister(connectionID)
		return
	}
	s.log.Info("Connection established", "connection_id", connectionID)

	defer func() {
		s.room.OnDisconnect(ctx, contract.DisconnectRequest{ConnectionID: connectionID})
		s.hub.Unregister(connectionID)
		s.log.Info("Connection closed", "connection_id", connectionID)
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Warn("Unexpected socket close", "connection_id", connectionID, "error", err)
			}
			return
		}
		s.writeResponse(ctx, connectionID, s.dispatch(ctx, connectionID, data))
	}
}

// dispatch decodes one inbound frame and routes it to the matching room
// service operation.
func (s *Server) dispatch(ctx context.Context, connectionID string, data []byte) contract.Response {
	var f frame
	if err := json.Unmarshal(data, &f); err != nil {
		return contract.Response{StatusCode: http.StatusBadRequest, Body: "Malformed frame, expected a JSON action."}
	}
	switch f.Action {
	case contract.ActionSendMessage:
		return s.room.OnPostMessage(ctx, contract.PostMessageRequest{
			Username: f.Username,
			Content:  f.Content,
		})
	case contract.ActionGetRecentMessages:
		return s.room.OnFetchRecent(ctx, contract.FetchRecentRequest{ConnectionID: connectionID})
	case contract.ActionPing:
		return s.room.OnPing(ctx, contract.PingRequest{ConnectionID: connectionID})
	default:
		return s.room.OnUnrecognized(ctx, contract.UnrecognizedRequest{Action: f.Action})
	}
}

// writeResponse pushes the acknowledgment frame back to the requester.
// A failed acknowledgment write is not worth tearing the connection down
// for, the read loop will notice a dead socket on its own.
func (s *Server) writeResponse(ctx context.Context, connectionID string, resp contract.Response) {
	data, err := json.Marshal(resp)
	if err != nil {
		s.log.Error("Failed to encode acknowledgment", "error", err)
		return
	}
	if err := s.hub.Send(ctx, connectionID, data); err != nil {
		s.log.Debug("Failed to deliver acknowledgment",
			"connection_id", connectionID, "error", err)
	}
}
