package domain

import "time"

// Connection is a live delivery target tracked by the registry.
// The identifier is opaque and assigned by the transport layer.
type Connection struct {
	ID          string
	ConnectedAt time.Time
}
