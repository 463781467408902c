package ports

import (
	"context"
	"time"

	"tapconnect/internal/core/domain"

	"github.com/google/uuid"
)

// IdempotencyCache is the Redis-layer idempotency check (fast path).
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// FeedbackPublisher is the device feedback channel: asynchronous,
// at-least-once publication keyed by device, event or user. Publish failures
// are advisory and must never fail the committed operation that triggered
// them.
type FeedbackPublisher interface {
	PublishToDevice(ctx context.Context, deviceID string, msg *domain.FeedbackMessage) error
	PublishToEvent(ctx context.Context, eventID uuid.UUID, topic string, payload any) error
	PublishToUser(ctx context.Context, userID uuid.UUID, topic string, payload any) error
}

// --- Service Ports (Business Logic) ---

// WalletService is the token economy core: every balance mutation for a
// wallet is serialized through these operations.
type WalletService interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (*domain.BalanceSummary, error)
	Purchase(ctx context.Context, req PurchaseRequest) (*domain.LedgerEntry, error)
	Spend(ctx context.Context, req SpendRequest) (*SpendResult, error)
	Reward(ctx context.Context, req RewardRequest) (*domain.LedgerEntry, error)
	ProcessDevicePayment(ctx context.Context, req DevicePaymentRequest) (*SpendResult, error)
}

// PurchaseRequest credits a wallet after an external payment collaborator
// confirmed the charge. PaymentRef is the idempotency anchor.
type PurchaseRequest struct {
	UserID     uuid.UUID
	Amount     int64 // minor units, > 0
	PaymentRef string
	EventID    *uuid.UUID
}

// SpendRequest debits a wallet against a vendor, optionally for a tracked
// product. IdempotencyKey is mandatory; device payments without one derive a
// tap-window key before reaching Spend.
type SpendRequest struct {
	UserID         uuid.UUID
	VendorID       uuid.UUID
	ProductID      *uuid.UUID
	Amount         int64 // minor units, > 0
	Quantity       int   // defaults to 1
	EventID        uuid.UUID
	DeviceID       *string
	IdempotencyKey string
	Description    string
}

// SpendResult pairs the ledger entry with its spending record.
type SpendResult struct {
	Entry   *domain.LedgerEntry    `json:"entry"`
	Record  *domain.SpendingRecord `json:"record"`
	Balance int64                  `json:"balance"`
}

// RewardRequest credits tokens outside the daily spend limit.
type RewardRequest struct {
	UserID      uuid.UUID
	Amount      int64 // minor units, > 0
	Description string
	EventID     *uuid.UUID
}

// DevicePaymentRequest is a spend triggered by a tag tap at a vendor;
// user and event resolve from the device binding.
type DevicePaymentRequest struct {
	DeviceID       string
	VendorID       uuid.UUID
	Amount         int64
	ProductID      *uuid.UUID
	Quantity       int
	IdempotencyKey string
}

// InteractionService processes device discovery and handshake events.
type InteractionService interface {
	Handshake(ctx context.Context, req HandshakeRequest) (*HandshakeResult, error)
	HandleTap(ctx context.Context, deviceID string, eventID uuid.UUID) error
	AssignDevice(ctx context.Context, req AssignDeviceRequest) (*domain.Device, error)
}

// HandshakeRequest carries the two opaque device ids delivered by the
// transport when tags exchange identifiers.
type HandshakeRequest struct {
	DeviceID     string
	PeerDeviceID string
}

// HandshakeResult reports the committed connection from the initiating
// device's perspective.
type HandshakeResult struct {
	Connection *domain.Connection   `json:"connection"`
	Score      int                  `json:"score"`
	Unlocked   []domain.Achievement `json:"unlocked,omitempty"`
}

// AssignDeviceRequest (re)binds a device to a user at an event and snapshots
// the user's public networking profile onto it.
type AssignDeviceRequest struct {
	DeviceID string
	UserID   uuid.UUID
	EventID  uuid.UUID
	Profile  domain.ProfileSnapshot
}

// VendorCatalogService is the CRUD and read surface consulted during spend.
type VendorCatalogService interface {
	CreateVendor(ctx context.Context, vendor *domain.Vendor) error
	AddProduct(ctx context.Context, product *domain.VendorProduct) error
	GetVendorsForEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Vendor, error)
}

// AchievementEvaluator checks a user's progress after a graph mutation and
// unlocks any newly met achievements, paying token rewards at most once.
type AchievementEvaluator interface {
	Evaluate(ctx context.Context, userID, eventID uuid.UUID) ([]domain.Achievement, error)
}
