//go:generate go run go.uber.org/mock/mockgen -source=room_service.go -destination=../mocks/mock_room_service.go -package=mocks
package services

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/ta11ey/chaticusMaximus/contract"
	"github.com/ta11ey/chaticusMaximus/domain"
	"github.com/ta11ey/chaticusMaximus/errors"
	"github.com/ta11ey/chaticusMaximus/repositories"
)

var validate = validator.New()

type IRoomService interface {
	OnConnect(ctx context.Context, req contract.ConnectRequest) contract.Response
	OnDisconnect(ctx context.Context, req contract.DisconnectRequest) contract.Response
	OnPostMessage(ctx context.Context, req contract.PostMessageRequest) contract.Response
	OnFetchRecent(ctx context.Context, req contract.FetchRecentRequest) contract.Response
	OnPing(ctx context.Context, req contract.PingRequest) contract.Response
	OnUnrecognized(ctx context.Context, req contract.UnrecognizedRequest) contract.Response
}

// RoomService orchestrates the room: it validates inbound requests, persists
// messages, enumerates subscribers and drives the broadcaster. The service
// owns no state itself; every dependency is injected at construction and the
// durable store is the only shared resource.
type RoomService struct {
	messages    repositories.IMessageRepository
	connections repositories.IConnectionRepository
	broadcaster contract.IBroadcaster
	room        string
	recentLimit int
	log         *slog.Logger
}

func NewRoomService(
	messages repositories.IMessageRepository,
	connections repositories.IConnectionRepository,
	broadcaster contract.IBroadcaster,
	room string,
	recentLimit int,
	log *slog.Logger,
) *RoomService {
	return &RoomService{
		messages:    messages,
		connections: connections,
		broadcaster: broadcaster,
		room:        room,
		recentLimit: recentLimit,
		log:         log,
	}
}

func (s *RoomService) OnConnect(_ context.Context, req contract.ConnectRequest) contract.Response {
	if err := s.connections.Add(req.ConnectionID); err != nil {
		s.log.Error("Failed to register connection",
			"connection_id", req.ConnectionID, "error", err)
		return contract.Response{StatusCode: errors.StatusFor(err), Body: "Failed to register connection."}
	}
	return contract.Response{StatusCode: 200, Body: "Connect Successful"}
}

// OnDisconnect always acknowledges success: disconnecting an identifier that
// is already absent is a no-op, and a late storage failure is logged rather
// than surfaced since the peer is gone either way.
func (s *RoomService) OnDisconnect(_ context.Context, req contract.DisconnectRequest) contract.Response {
	if err := s.connections.Remove(req.ConnectionID); err != nil {
		s.log.Error("Failed to remove connection",
			"connection_id", req.ConnectionID, "error", err)
	}
	return contract.Response{StatusCode: 200, Body: "Disconnect Successful"}
}

// OnPostMessage persists the message, then fans it out to every live
// connection. Persistence succeeding is the success criterion: delivery
// failures are handled (stale targets evicted, transient ones logged) but
// never propagated as a request failure.
func (s *RoomService) OnPostMessage(ctx context.Context, req contract.PostMessageRequest) contract.Response {
	if err := validate.Struct(req); err != nil {
		return validationResponse(err)
	}

	message, err := s.messages.Append(s.room, req.Username, req.Content)
	if err != nil {
		s.log.Error("Failed to store message", "room", s.room, "error", err)
		return contract.Response{StatusCode: errors.StatusFor(err), Body: "Failed to store message."}
	}

	connectionIDs, err := s.connections.All()
	if err != nil {
		// The message is durably stored, which is the success criterion;
		// subscribers will still see it through fetch-recent.
		s.log.Error("Failed to enumerate connections, skipping broadcast",
			"room", s.room, "error", err)
		return contract.Response{StatusCode: 200, Body: "Message sent to all connections"}
	}

	payload, err := json.Marshal(pushPayload(message))
	if err != nil {
		s.log.Error("Failed to encode push payload", "error", err)
		return contract.Response{StatusCode: 200, Body: "Message sent to all connections"}
	}

	outcomes := s.broadcaster.Broadcast(ctx, connectionIDs, payload)
	s.evictStale(outcomes)

	return contract.Response{StatusCode: 200, Body: "Message sent to all connections"}
}

// OnFetchRecent replays the latest messages to the requesting connection
// only, oldest first. Delivery gets exactly one attempt.
func (s *RoomService) OnFetchRecent(ctx context.Context, req contract.FetchRecentRequest) contract.Response {
	messages, err := s.messages.Recent(s.room, s.recentLimit)
	if err != nil {
		s.log.Error("Failed to fetch recent messages", "room", s.room, "error", err)
		return contract.Response{StatusCode: errors.StatusFor(err), Body: "Failed to fetch recent messages."}
	}

	// The store returns newest first; clients expect chronological order.
	payload, err := json.Marshal(contract.PushPayload{
		Messages: lo.Map(lo.Reverse(messages), func(m domain.Message, _ int) contract.MessagePayload {
			return contract.MessagePayload{Username: m.Username, Content: m.Content}
		}),
	})
	if err != nil {
		s.log.Error("Failed to encode push payload", "error", err)
		return contract.Response{StatusCode: 500, Body: "Failed to fetch recent messages."}
	}

	outcome := s.broadcaster.Send(ctx, req.ConnectionID, payload)
	if !outcome.Delivered {
		s.log.Warn("Failed to deliver recent messages",
			"connection_id", req.ConnectionID, "error", outcome.Err)
	}
	return contract.Response{StatusCode: 200, Body: "Sent recent messages."}
}

func (s *RoomService) OnPing(_ context.Context, _ contract.PingRequest) contract.Response {
	return contract.Response{StatusCode: 200, Body: "PONG!"}
}

func (s *RoomService) OnUnrecognized(_ context.Context, req contract.UnrecognizedRequest) contract.Response {
	return contract.Response{StatusCode: 400, Body: fmt.Sprintf("Unrecognized action %q.", req.Action)}
}

// evictStale lazily removes connections whose delivery attempt reported a
// stale target. Transient failures leave the registry untouched.
func (s *RoomService) evictStale(outcomes []contract.Outcome) {
	for _, outcome := range outcomes {
		if outcome.Err == nil || !stderrors.Is(outcome.Err, errors.ErrStaleConnection) {
			continue
		}
		s.log.Info("Evicting stale connection", "connection_id", outcome.ConnectionID)
		if err := s.connections.Remove(outcome.ConnectionID); err != nil {
			s.log.Error("Failed to evict stale connection",
				"connection_id", outcome.ConnectionID, "error", err)
		}
	}
}

func pushPayload(message domain.Message) contract.PushPayload {
	return contract.PushPayload{
		Messages: []contract.MessagePayload{
			{Username: message.Username, Content: message.Content},
		},
	}
}

// validationResponse names the first missing field the way the wire protocol
// promises it, e.g. "'content' not in message dict".
func validationResponse(err error) contract.Response {
	var fieldErrors validator.ValidationErrors
	if stderrors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		field := strings.ToLower(fieldErrors[0].Field())
		return contract.Response{
			StatusCode: 400,
			Body:       fmt.Sprintf("'%s' not in message dict", field),
		}
	}
	return contract.Response{StatusCode: 400, Body: "Malformed message body."}
}
