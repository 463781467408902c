package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProfileSnapshot is the public networking profile cached on a device so a
// handshake can exchange profiles without a round-trip. Rebinding a device
// replaces the snapshot.
type ProfileSnapshot struct {
	Name      string   `json:"name"`
	Interests []string `json:"interests"`
	Status    string   `json:"status"`
}

// Device is a wearable tag identified by an opaque transport-level id,
// bound to at most one (user, event) pair at a time.
type Device struct {
	ID        string           `json:"id"` // opaque identifier from the radio transport
	UserID    *uuid.UUID       `json:"user_id,omitempty"`
	EventID   *uuid.UUID       `json:"event_id,omitempty"`
	Profile   *ProfileSnapshot `json:"profile,omitempty"`
	BoundAt   *time.Time       `json:"bound_at,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// Bound reports whether the device currently resolves to a (user, event) pair.
func (d *Device) Bound() bool {
	return d.UserID != nil && d.EventID != nil
}

// Interests returns the cached interest set, empty when no snapshot exists.
func (d *Device) Interests() []string {
	if d.Profile == nil {
		return nil
	}
	return d.Profile.Interests
}
