// Package broadcast fans payloads out to the current connection set.
//
// It provides best-effort delivery with no retries: one attempt per target
// per broadcast, every target attempted regardless of earlier failures.
// Partial failure is expected and normal (a client may have closed its
// socket without being evicted from the registry yet).
package broadcast

import (
	"context"
	stderrors "errors"
	"log/slog"
	"sync"

	"github.com/ta11ey/chaticusMaximus/contract"
	"github.com/ta11ey/chaticusMaximus/errors"
)

// Broadcaster drives the transport Sender port. It has no write access to
// the connection registry; eviction of stale targets belongs to the caller.
type Broadcaster struct {
	sender contract.Sender
	log    *slog.Logger
}

func NewBroadcaster(sender contract.Sender, log *slog.Logger) *Broadcaster {
	return &Broadcaster{sender: sender, log: log}
}

// Send attempts a single delivery to one connection and reports the outcome.
func (b *Broadcaster) Send(ctx context.Context, connectionID string, payload []byte) contract.Outcome {
	err := b.sender.Send(ctx, connectionID, payload)
	if err != nil {
		if !stderrors.Is(err, errors.ErrStaleConnection) {
			b.log.Warn("Delivery attempt failed",
				"connection_id", connectionID, "error", err)
		}
		return contract.Outcome{ConnectionID: connectionID, Err: err}
	}
	return contract.Outcome{ConnectionID: connectionID, Delivered: true}
}

// Broadcast attempts delivery to every connection in the set. Attempts run
// concurrently since deliveries are independent of each other; outcomes are
// collected positionally so the result order matches the input order.
func (b *Broadcaster) Broadcast(ctx context.Context, connectionIDs []string, payload []byte) []contract.Outcome {
	outcomes := make([]contract.Outcome, len(connectionIDs))
	var wg sync.WaitGroup
	for i, connectionID := range connectionIDs {
		wg.Add(1)
		go func(i int, connectionID string) {
			defer wg.Done()
			outcomes[i] = b.Send(ctx, connectionID, payload)
		}(i, connectionID)
	}
	wg.Wait()
	return outcomes
}
