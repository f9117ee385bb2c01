// Package domain contains core concepts of the chat room.
// Messages are immutable once accepted; the store owns sequence assignment.
package domain

import "time"

// Message represents an immutable chat event within a room.
// Sequence is assigned by the store: strictly increasing per room,
// starting at 0, with no gaps and no duplicates.
type Message struct {
	Room      string
	Sequence  uint64
	Timestamp time.Time // informational, never used for ordering
	Username  string
	Content   string
}
