package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// IdempotencyLog caches the result of a completed financial operation so a
// retried request returns the original outcome instead of re-executing.
type IdempotencyLog struct {
	Key          string    `json:"key"`
	EntryID      uuid.UUID `json:"entry_id"`
	ResponseJSON []byte    `json:"response_json"`
	CreatedAt    time.Time `json:"created_at"`
}

// BuildPurchaseKey keys a purchase on the external payment reference. A
// repeated call with the same reference must not double-credit.
func BuildPurchaseKey(userID uuid.UUID, paymentRef string) string {
	return "purchase:" + userID.String() + ":" + paymentRef
}

// BuildSpendKey keys a spend on a caller-supplied idempotency token.
func BuildSpendKey(userID uuid.UUID, key string) string {
	return "spend:" + userID.String() + ":" + key
}

// BuildDeviceSpendKey derives a tap-retry idempotency key for device-triggered
// payments without an explicit token: the same device tapping the same vendor
// within one window resolves to the same key.
func BuildDeviceSpendKey(deviceID string, vendorID uuid.UUID, at time.Time, window time.Duration) string {
	if window <= 0 {
		window = time.Second
	}
	bucket := at.UnixNano() / int64(window)
	return fmt.Sprintf("tap:%s:%s:%d", deviceID, vendorID, bucket)
}
