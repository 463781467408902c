package domain

import "github.com/google/uuid"

// Feedback message types published on the device channel.
const (
	FeedbackTypeHandshake   = "handshake_result"
	FeedbackTypePayment     = "payment_result"
	FeedbackTypeProfileSync = "profile_sync"
)

// Topics for the event- and user-keyed dashboard channels.
const (
	TopicHandshakes = "handshakes"
	TopicPayments   = "payments"
)

// HandshakeActivity is fanned out on the event channel after a committed
// handshake, for dashboards watching the social graph grow.
type HandshakeActivity struct {
	OperationID uuid.UUID `json:"operation_id"`
	EventID     uuid.UUID `json:"event_id"`
	UserID      uuid.UUID `json:"user_id"`
	PeerUserID  uuid.UUID `json:"peer_user_id"`
	Score       int       `json:"score"`
	Strength    int       `json:"strength"`
}

// PaymentActivity is published on the payer's user channel after a committed
// device payment.
type PaymentActivity struct {
	OperationID uuid.UUID `json:"operation_id"`
	DeviceID    string    `json:"device_id"`
	VendorID    uuid.UUID `json:"vendor_id"`
	Amount      int64     `json:"amount"`
	Balance     int64     `json:"balance"`
}

// FeedbackMessage is the advisory payload pushed to a device after a
// committed operation. Delivery is at-least-once; receivers must treat a
// duplicate as a no-op replay, so messages carry the id of the operation
// they describe rather than incremental state.
type FeedbackMessage struct {
	Type            string           `json:"type"`
	OperationID     uuid.UUID        `json:"operation_id"`
	Score           *int             `json:"score,omitempty"`
	HapticIntensity int              `json:"haptic_intensity"` // 0..100
	Color           string           `json:"color"`            // suggested indicator color, hex
	PeerName        string           `json:"peer_name,omitempty"`
	Amount          *int64           `json:"amount,omitempty"`
	Balance         *int64           `json:"balance,omitempty"`
	Profile         *ProfileSnapshot `json:"profile,omitempty"`
}

// FeedbackForScore maps a compatibility score to a haptic intensity and an
// indicator color for the tag's LED.
func FeedbackForScore(score int) (intensity int, color string) {
	switch {
	case score >= 70:
		return 90, "#2ECC71"
	case score >= 40:
		return 60, "#F1C40F"
	case score > 0:
		return 30, "#3498DB"
	default:
		return 10, "#95A5A6"
	}
}

// NewHandshakeFeedback builds the message sent to both participants of a
// committed handshake.
func NewHandshakeFeedback(operationID uuid.UUID, score int, peerName string) *FeedbackMessage {
	intensity, color := FeedbackForScore(score)
	s := score
	return &FeedbackMessage{
		Type:            FeedbackTypeHandshake,
		OperationID:     operationID,
		Score:           &s,
		HapticIntensity: intensity,
		Color:           color,
		PeerName:        peerName,
	}
}

// NewPaymentFeedback builds the message confirming a device-triggered spend.
func NewPaymentFeedback(operationID uuid.UUID, amount, balance int64) *FeedbackMessage {
	return &FeedbackMessage{
		Type:            FeedbackTypePayment,
		OperationID:     operationID,
		HapticIntensity: 50,
		Color:           "#2ECC71",
		Amount:          &amount,
		Balance:         &balance,
	}
}

// NewProfileSyncFeedback builds the configuration push after a device is
// (re)bound to a user.
func NewProfileSyncFeedback(operationID uuid.UUID, profile *ProfileSnapshot) *FeedbackMessage {
	return &FeedbackMessage{
		Type:            FeedbackTypeProfileSync,
		OperationID:     operationID,
		HapticIntensity: 20,
		Color:           "#FFFFFF",
		Profile:         profile,
	}
}
