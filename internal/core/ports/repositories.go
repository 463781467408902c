package ports

import (
	"context"
	"errors"
	"time"

	"tapconnect/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrDuplicateKey is returned by write-once stores when the key already
// exists. Services translate it into the appropriate business error.
var ErrDuplicateKey = errors.New("duplicate key")

// LedgerRepository is the single Ledger Store interface: wallets, immutable
// entries and spending records behind one storage technology. Methods
// accepting pgx.Tx run inside the transactional unit that makes a balance
// update and its entry durable together or not at all.
type LedgerRepository interface {
	CreateWallet(ctx context.Context, wallet *domain.Wallet) error
	GetWalletByUser(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	// GetWalletForUpdate locks the wallet row for the duration of the
	// enclosing transaction, serializing concurrent mutations.
	GetWalletForUpdate(ctx context.Context, tx pgx.Tx, walletID uuid.UUID) (*domain.Wallet, error)
	// UpdateBalance performs a compare-and-swap: the write applies only if
	// the stored version still equals expectedVersion. Returns false on a
	// lost race; the caller retries the whole operation from validation.
	UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, newBalance, expectedVersion int64) (bool, error)
	// AppendEntry inserts a write-once ledger entry. No update or delete
	// exists for entries; corrections are new entries.
	AppendEntry(ctx context.Context, tx pgx.Tx, entry *domain.LedgerEntry) error
	// SumEntries returns the signed sum of entries for a wallet, optionally
	// filtered by kind and creation window.
	SumEntries(ctx context.Context, walletID uuid.UUID, kind *domain.EntryKind, since, until *time.Time) (int64, error)
	CreateSpendingRecord(ctx context.Context, tx pgx.Tx, rec *domain.SpendingRecord) error
	GetEntryByID(ctx context.Context, id uuid.UUID) (*domain.LedgerEntry, error)
}

// VendorRepository defines persistence for the vendor catalog.
type VendorRepository interface {
	CreateVendor(ctx context.Context, vendor *domain.Vendor) error
	AddProduct(ctx context.Context, product *domain.VendorProduct) error
	GetVendor(ctx context.Context, id uuid.UUID) (*domain.Vendor, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*domain.VendorProduct, error)
	GetVendorsForEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Vendor, error)
	// DecrementStock conditionally decrements tracked stock. Returns false,
	// not an error, when insufficient stock remains at commit time; the
	// caller fails the enclosing spend. Only called for tracked stock.
	DecrementStock(ctx context.Context, tx pgx.Tx, vendorID, productID uuid.UUID, quantity int) (bool, error)
}

// DeviceRepository defines persistence for wearable tag bindings.
type DeviceRepository interface {
	// Upsert creates or rebinds a device. Rebinding replaces the user/event
	// binding and the cached profile snapshot.
	Upsert(ctx context.Context, device *domain.Device) error
	GetByID(ctx context.Context, deviceID string) (*domain.Device, error)
}

// ConnectionRepository defines persistence for the social graph.
type ConnectionRepository interface {
	// UpsertPair commits both directional edges of a handshake in one unit:
	// either both edges exist or neither does. The store owns the strength
	// counter: a first handshake inserts at 1, a repeat increments
	// atomically, and the committed strength is written back onto both
	// edges before returning.
	UpsertPair(ctx context.Context, tx pgx.Tx, forward, reverse *domain.Connection) error
	Get(ctx context.Context, userID, peerID, eventID uuid.UUID) (*domain.Connection, error)
	CountForUser(ctx context.Context, userID, eventID uuid.UUID) (int, error)
}

// InteractionRepository persists write-once device interaction rows.
type InteractionRepository interface {
	Create(ctx context.Context, interaction *domain.Interaction) error
	ListForEvent(ctx context.Context, eventID uuid.UUID, limit int) ([]domain.Interaction, error)
}

// AchievementRepository defines persistence for achievements and unlocks.
type AchievementRepository interface {
	Create(ctx context.Context, achievement *domain.Achievement) error
	ListActiveForEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Achievement, error)
	// Unlock inserts the completion if absent. Returns false when the
	// achievement was already unlocked for this (user, achievement, event).
	Unlock(ctx context.Context, progress *domain.UserAchievementProgress) (bool, error)
}

// IdempotencyRepository defines persistence for idempotency logs (DB layer).
// Create returns ErrDuplicateKey when a concurrent writer won the key.
type IdempotencyRepository interface {
	Create(ctx context.Context, tx pgx.Tx, log *domain.IdempotencyLog) error
	Get(ctx context.Context, key string) (*domain.IdempotencyLog, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
