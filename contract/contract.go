//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import "context"

// Sender is the transport-side primitive the broadcaster drives.
// One call is one delivery attempt to one connection, no retries.
// Implementations report unreachable targets with errors.ErrStaleConnection
// and everything else with errors.ErrTransientDelivery.
type Sender interface {
	Send(ctx context.Context, connectionID string, payload []byte) error
}

// Outcome is the result of a single delivery attempt. Ephemeral, never
// persisted.
type Outcome struct {
	ConnectionID string
	Delivered    bool
	Err          error
}

// IBroadcaster fans a payload out to a set of connections. Every target is
// attempted regardless of earlier failures; partial failure is normal.
// The broadcaster has no write access to the connection registry, eviction
// of stale targets is the caller's concern.
type IBroadcaster interface {
	Send(ctx context.Context, connectionID string, payload []byte) Outcome
	Broadcast(ctx context.Context, connectionIDs []string, payload []byte) []Outcome
}
