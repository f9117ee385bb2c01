package services

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ta11ey/chaticusMaximus/contract"
	"github.com/ta11ey/chaticusMaximus/domain"
	"github.com/ta11ey/chaticusMaximus/errors"
	"github.com/ta11ey/chaticusMaximus/mocks"
)

const testRoom = "general"

type serviceMocks struct {
	messages    *mocks.MockIMessageRepository
	connections *mocks.MockIConnectionRepository
	broadcaster *mocks.MockIBroadcaster
}

func newTestService(t *testing.T) (*RoomService, serviceMocks) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		messages:    mocks.NewMockIMessageRepository(ctrl),
		connections: mocks.NewMockIConnectionRepository(ctrl),
		broadcaster: mocks.NewMockIBroadcaster(ctrl),
	}
	svc := NewRoomService(m.messages, m.connections, m.broadcaster, testRoom, 10, slog.Default())
	return svc, m
}

func TestRoomService_OnConnect(t *testing.T) {
	t.Run("should acknowledge a registered connection", func(t *testing.T) {
		req := require.New(t)
		svc, m := newTestService(t)

		m.connections.EXPECT().Add("conn-1").Return(nil).Times(1)

		resp := svc.OnConnect(context.Background(), contract.ConnectRequest{ConnectionID: "conn-1"})
		req.Equal(200, resp.StatusCode)
		req.Equal("Connect Successful", resp.Body)
	})

	t.Run("should surface a storage failure as a server error", func(t *testing.T) {
		req := require.New(t)
		svc, m := newTestService(t)

		m.connections.EXPECT().Add("conn-1").
			Return(fmt.Errorf("%w: store down", errors.ErrStorage)).
			Times(1)

		resp := svc.OnConnect(context.Background(), contract.ConnectRequest{ConnectionID: "conn-1"})
		req.Equal(500, resp.StatusCode)
	})
}

func TestRoomService_OnDisconnect(t *testing.T) {
	t.Run("should be idempotent and never error", func(t *testing.T) {
		req := require.New(t)
		svc, m := newTestService(t)

		m.connections.EXPECT().Remove("conn-1").Return(nil).Times(2)

		for i := 0; i < 2; i++ {
			resp := svc.OnDisconnect(context.Background(), contract.DisconnectRequest{ConnectionID: "conn-1"})
			req.Equal(200, resp.StatusCode)
			req.Equal("Disconnect Successful", resp.Body)
		}
	})

	t.Run("should still acknowledge when the registry fails", func(t *testing.T) {
		req := require.New(t)
		svc, m := newTestService(t)

		m.connections.EXPECT().Remove("conn-1").
			Return(fmt.Errorf("%w: store down", errors.ErrStorage)).
			Times(1)

		resp := svc.OnDisconnect(context.Background(), contract.DisconnectRequest{ConnectionID: "conn-1"})
		req.Equal(200, resp.StatusCode)
	})
}

func TestRoomService_OnPostMessage(t *testing.T) {
	t.Run("should reject a body missing content without persisting", func(t *testing.T) {
		req := require.New(t)
		svc, m := newTestService(t)

		m.messages.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		resp := svc.OnPostMessage(context.Background(), contract.PostMessageRequest{Username: "alice"})
		req.Equal(400, resp.StatusCode)
		req.Equal("'content' not in message dict", resp.Body)
	})

	t.Run("should reject a body missing username without persisting", func(t *testing.T) {
		req := require.New(t)
		svc, m := newTestService(t)

		m.messages.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		resp := svc.OnPostMessage(context.Background(), contract.PostMessageRequest{Content: "hi"})
		req.Equal(400, resp.StatusCode)
		req.Equal("'username' not in message dict", resp.Body)
	})

	t.Run("should persist, broadcast and evict only stale targets", func(t *testing.T) {
		req := require.New(t)
		svc, m := newTestService(t)

		message := domain.Message{
			Room: testRoom, Sequence: 0, Timestamp: time.Now().UTC(),
			Username: "alice", Content: "hi",
		}
		m.messages.EXPECT().Append(testRoom, "alice", "hi").Return(message, nil).Times(1)
		m.connections.EXPECT().All().Return([]string{"conn-1", "conn-2", "conn-3"}, nil).Times(1)
		m.broadcaster.EXPECT().
			Broadcast(gomock.Any(), []string{"conn-1", "conn-2", "conn-3"}, gomock.Any()).
			DoAndReturn(func(_ context.Context, ids []string, payload []byte) []contract.Outcome {
				req.JSONEq(`{"messages":[{"username":"alice","content":"hi"}]}`, string(payload))
				return []contract.Outcome{
					{ConnectionID: "conn-1", Delivered: true},
					{ConnectionID: "conn-2", Err: fmt.Errorf("%w: gone", errors.ErrStaleConnection)},
					{ConnectionID: "conn-3", Delivered: true},
				}
			}).Times(1)
		// Exactly one eviction: the stale target.
		m.connections.EXPECT().Remove("conn-2").Return(nil).Times(1)

		resp := svc.OnPostMessage(context.Background(), contract.PostMessageRequest{Username: "alice", Content: "hi"})
		req.Equal(200, resp.StatusCode)
		req.Equal("Message sent to all connections", resp.Body)
	})

	t.Run("should not evict on transient delivery failures", func(t *testing.T) {
		req := require.New(t)
		svc, m := newTestService(t)

		m.messages.EXPECT().Append(testRoom, "alice", "hi").
			Return(domain.Message{Room: testRoom, Username: "alice", Content: "hi"}, nil).
			Times(1)
		m.connections.EXPECT().All().Return([]string{"conn-1"}, nil).Times(1)
		m.broadcaster.EXPECT().
			Broadcast(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]contract.Outcome{
				{ConnectionID: "conn-1", Err: fmt.Errorf("%w: slow pipe", errors.ErrTransientDelivery)},
			}).Times(1)
		m.connections.EXPECT().Remove(gomock.Any()).Times(0)

		resp := svc.OnPostMessage(context.Background(), contract.PostMessageRequest{Username: "alice", Content: "hi"})
		req.Equal(200, resp.StatusCode)
	})

	t.Run("should surface a storage failure as a server error", func(t *testing.T) {
		req := require.New(t)
		svc, m := newTestService(t)

		m.messages.EXPECT().Append(testRoom, "alice", "hi").
			Return(domain.Message{}, fmt.Errorf("%w: store down", errors.ErrStorage)).
			Times(1)

		resp := svc.OnPostMessage(context.Background(), contract.PostMessageRequest{Username: "alice", Content: "hi"})
		req.Equal(500, resp.StatusCode)
	})
}

func TestRoomService_OnFetchRecent(t *testing.T) {
	t.Run("should replay recent messages chronologically to the requester only", func(t *testing.T) {
		req := require.New(t)
		svc, m := newTestService(t)

		// Store order is newest first; the wire payload must be oldest first.
		m.messages.EXPECT().Recent(testRoom, 10).Return([]domain.Message{
			{Room: testRoom, Sequence: 2, Username: "clara", Content: "third"},
			{Room: testRoom, Sequence: 1, Username: "bob", Content: "second"},
			{Room: testRoom, Sequence: 0, Username: "alice", Content: "first"},
		}, nil).Times(1)
		m.broadcaster.EXPECT().
			Send(gomock.Any(), "conn-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, connectionID string, payload []byte) contract.Outcome {
				req.JSONEq(`{"messages":[
					{"username":"alice","content":"first"},
					{"username":"bob","content":"second"},
					{"username":"clara","content":"third"}
				]}`, string(payload))
				return contract.Outcome{ConnectionID: connectionID, Delivered: true}
			}).Times(1)

		resp := svc.OnFetchRecent(context.Background(), contract.FetchRecentRequest{ConnectionID: "conn-1"})
		req.Equal(200, resp.StatusCode)
		req.Equal("Sent recent messages.", resp.Body)
	})

	t.Run("should surface a storage failure as a server error", func(t *testing.T) {
		req := require.New(t)
		svc, m := newTestService(t)

		m.messages.EXPECT().Recent(testRoom, 10).
			Return(nil, fmt.Errorf("%w: store down", errors.ErrStorage)).
			Times(1)

		resp := svc.OnFetchRecent(context.Background(), contract.FetchRecentRequest{ConnectionID: "conn-1"})
		req.Equal(500, resp.StatusCode)
	})

	t.Run("should not retry a failed delivery to the requester", func(t *testing.T) {
		req := require.New(t)
		svc, m := newTestService(t)

		m.messages.EXPECT().Recent(testRoom, 10).Return(nil, nil).Times(1)
		m.broadcaster.EXPECT().
			Send(gomock.Any(), "conn-1", gomock.Any()).
			Return(contract.Outcome{
				ConnectionID: "conn-1",
				Err:          fmt.Errorf("%w: gone", errors.ErrStaleConnection),
			}).Times(1)

		resp := svc.OnFetchRecent(context.Background(), contract.FetchRecentRequest{ConnectionID: "conn-1"})
		req.Equal(200, resp.StatusCode)
	})
}

func TestRoomService_OnPing(t *testing.T) {
	req := require.New(t)
	svc, _ := newTestService(t)

	resp := svc.OnPing(context.Background(), contract.PingRequest{ConnectionID: "conn-1"})
	req.Equal(200, resp.StatusCode)
	req.Equal("PONG!", resp.Body)
}

func TestRoomService_OnUnrecognized(t *testing.T) {
	req := require.New(t)
	svc, _ := newTestService(t)

	resp := svc.OnUnrecognized(context.Background(), contract.UnrecognizedRequest{Action: "shout"})
	req.Equal(400, resp.StatusCode)
	req.Contains(resp.Body, "shout")
}
