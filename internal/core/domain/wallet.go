package domain

import (
	"time"

	"github.com/google/uuid"
)

// Wallet is the per-user token balance view, reconciled against the ledger.
// Balance is kept in minor units (two fractional digits, so 100 = 1.00 token)
// and must equal the sum of the wallet's ledger entries whenever no write is
// in flight. Version increments on every balance update and guards the
// compare-and-swap discipline.
type Wallet struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Balance    int64     `json:"balance"`
	Version    int64     `json:"-"`
	Currency   string    `json:"currency"`
	DailyLimit int64     `json:"daily_limit"`
	Timezone   string    `json:"timezone"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Location resolves the wallet's configured timezone, falling back to UTC.
func (w *Wallet) Location() *time.Location {
	loc, err := time.LoadLocation(w.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// StartOfDay returns local midnight of the day containing now, in the
// wallet's timezone, expressed in UTC. The daily spend window opens here.
func (w *Wallet) StartOfDay(now time.Time) time.Time {
	local := now.In(w.Location())
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, w.Location()).UTC()
}

// EntryKind classifies a ledger entry.
type EntryKind string

const (
	EntryKindPurchase EntryKind = "PURCHASE"
	EntryKindSpend    EntryKind = "SPEND"
	EntryKindRefund   EntryKind = "REFUND"
	EntryKindTransfer EntryKind = "TRANSFER"
	EntryKindReward   EntryKind = "REWARD"
	EntryKindBonus    EntryKind = "BONUS"
)

// LedgerEntry is the immutable record of a single balance-affecting event.
// Amount is signed: credits (PURCHASE, REFUND, REWARD, BONUS) are positive,
// SPEND entries are negative. Entries are append-only; corrections happen
// via new REFUND/TRANSFER entries, never mutation.
type LedgerEntry struct {
	ID          uuid.UUID  `json:"id"`
	WalletID    uuid.UUID  `json:"wallet_id"`
	Kind        EntryKind  `json:"kind"`
	Amount      int64      `json:"amount"`
	Description string     `json:"description"`
	PaymentRef  *string    `json:"payment_ref,omitempty"`
	EventID     *uuid.UUID `json:"event_id,omitempty"`
	VendorID    *uuid.UUID `json:"vendor_id,omitempty"`
	ProductID   *uuid.UUID `json:"product_id,omitempty"`
	DeviceID    *string    `json:"device_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// IsCredit reports whether the entry increases the balance.
func (e *LedgerEntry) IsCredit() bool {
	return e.Amount > 0
}

// SpendingRecord captures the purchase context of a SPEND entry for
// per-vendor analytics. Written in the same transactional unit as the entry.
type SpendingRecord struct {
	ID          uuid.UUID  `json:"id"`
	WalletID    uuid.UUID  `json:"wallet_id"`
	VendorID    uuid.UUID  `json:"vendor_id"`
	ProductID   *uuid.UUID `json:"product_id,omitempty"`
	TokenAmount int64      `json:"token_amount"`
	Quantity    int        `json:"quantity"`
	EventID     uuid.UUID  `json:"event_id"`
	DeviceID    *string    `json:"device_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// BalanceSummary is the read-model returned by the balance endpoint.
type BalanceSummary struct {
	Balance    int64  `json:"balance"`
	DailySpent int64  `json:"daily_spent"`
	DailyLimit int64  `json:"daily_limit"`
	Currency   string `json:"currency"`
	CanSpend   bool   `json:"can_spend"`
}
