package domain

import (
	"time"

	"github.com/google/uuid"
)

// ConnectionStatus is the state of a directed social edge.
type ConnectionStatus string

const (
	ConnectionStatusAccepted ConnectionStatus = "ACCEPTED"
	ConnectionStatusBlocked  ConnectionStatus = "BLOCKED"
)

// Connection is one direction of a social graph edge, scoped to an event.
// A handshake always produces two edges, one per direction, committed in the
// same unit; strength counts repeated handshakes between the pair.
type Connection struct {
	UserID    uuid.UUID        `json:"user_id"`
	PeerID    uuid.UUID        `json:"peer_id"`
	EventID   uuid.UUID        `json:"event_id"`
	Strength  int              `json:"strength"`
	Status    ConnectionStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// InteractionKind classifies a device interaction audit row.
type InteractionKind string

const (
	InteractionKindTap       InteractionKind = "TAP"
	InteractionKindHandshake InteractionKind = "HANDSHAKE"
)

// Interaction is the write-once analytics record of a device event.
type Interaction struct {
	ID           uuid.UUID       `json:"id"`
	Kind         InteractionKind `json:"kind"`
	DeviceID     string          `json:"device_id"`
	PeerDeviceID *string         `json:"peer_device_id,omitempty"`
	UserID       *uuid.UUID      `json:"user_id,omitempty"`
	PeerUserID   *uuid.UUID      `json:"peer_user_id,omitempty"`
	EventID      uuid.UUID       `json:"event_id"`
	Score        *int            `json:"score,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}
