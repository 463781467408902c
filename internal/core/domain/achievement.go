package domain

import (
	"time"

	"github.com/google/uuid"
)

// ConditionClass discriminates the achievement condition variant.
type ConditionClass string

const (
	// ConditionClassNetworking unlocks on reaching a minimum connection
	// count within the event.
	ConditionClassNetworking ConditionClass = "NETWORKING"
)

// AchievementCondition is a tagged variant. New condition classes add a
// discriminator value and their own fields; the unlock transaction
// discipline stays the same.
type AchievementCondition struct {
	Class          ConditionClass `json:"class"`
	MinConnections int            `json:"min_connections,omitempty"`
}

// Met evaluates the condition against the user's current connection count.
func (c AchievementCondition) Met(connectionCount int) bool {
	switch c.Class {
	case ConditionClassNetworking:
		return connectionCount >= c.MinConnections
	default:
		return false
	}
}

// Achievement is an unlockable goal tied to an event, optionally paying a
// token bonus on completion.
type Achievement struct {
	ID           uuid.UUID            `json:"id"`
	EventID      uuid.UUID            `json:"event_id"`
	Name         string               `json:"name"`
	Description  string               `json:"description"`
	Condition    AchievementCondition `json:"condition"`
	RewardTokens int64                `json:"reward_tokens"` // minor units, 0 = badge only
	BadgeCode    *string              `json:"badge_code,omitempty"`
	Active       bool                 `json:"active"`
	CreatedAt    time.Time            `json:"created_at"`
}

// UserAchievementProgress records a completion. Immutable once written;
// a unique (user, achievement, event) constraint guarantees at-most-once
// unlock even under concurrent evaluation.
type UserAchievementProgress struct {
	UserID        uuid.UUID `json:"user_id"`
	AchievementID uuid.UUID `json:"achievement_id"`
	EventID       uuid.UUID `json:"event_id"`
	UnlockedAt    time.Time `json:"unlocked_at"`
}
