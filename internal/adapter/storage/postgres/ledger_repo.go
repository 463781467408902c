package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tapconnect/internal/core/domain"
	"tapconnect/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// LedgerRepo implements ports.LedgerRepository. Wallets, ledger entries and
// spending records share one store so a balance update and its entry commit
// in the same transaction.
type LedgerRepo struct {
	pool Pool
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

const walletColumns = `id, user_id, balance, version, currency, daily_limit, timezone, active, created_at, updated_at`

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	w := &domain.Wallet{}
	err := row.Scan(
		&w.ID, &w.UserID, &w.Balance, &w.Version, &w.Currency,
		&w.DailyLimit, &w.Timezone, &w.Active, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// CreateWallet inserts a new wallet. A unique index on user_id resolves
// concurrent first-contact creation to exactly one winner.
func (r *LedgerRepo) CreateWallet(ctx context.Context, w *domain.Wallet) error {
	query := `INSERT INTO wallets (` + walletColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		w.ID, w.UserID, w.Balance, w.Version, w.Currency,
		w.DailyLimit, w.Timezone, w.Active, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ports.ErrDuplicateKey
		}
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// GetWalletByUser fetches a wallet by owning user (non-locking read).
func (r *LedgerRepo) GetWalletByUser(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1`

	w, err := scanWallet(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by user: %w", err)
	}
	return w, nil
}

// GetWalletForUpdate fetches a wallet with pessimistic locking.
// This MUST be called within a transaction.
func (r *LedgerRepo) GetWalletForUpdate(ctx context.Context, tx pgx.Tx, walletID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1 FOR UPDATE`

	w, err := scanWallet(tx.QueryRow(ctx, query, walletID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet for update: %w", err)
	}
	return w, nil
}

// UpdateBalance applies the new balance only when the stored version still
// matches. Returns false when another writer advanced the version first.
func (r *LedgerRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, newBalance, expectedVersion int64) (bool, error) {
	query := `UPDATE wallets SET balance = $1, version = version + 1, updated_at = NOW()
		WHERE id = $2 AND version = $3`

	tag, err := tx.Exec(ctx, query, newBalance, walletID, expectedVersion)
	if err != nil {
		return false, fmt.Errorf("update wallet balance: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// AppendEntry inserts a write-once ledger entry within a transaction.
func (r *LedgerRepo) AppendEntry(ctx context.Context, tx pgx.Tx, e *domain.LedgerEntry) error {
	query := `INSERT INTO ledger_entries
		(id, wallet_id, kind, amount, description, payment_ref, event_id, vendor_id, product_id, device_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := tx.Exec(ctx, query,
		e.ID, e.WalletID, e.Kind, e.Amount, e.Description,
		e.PaymentRef, e.EventID, e.VendorID, e.ProductID, e.DeviceID, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// SumEntries returns the signed sum of a wallet's entries, optionally
// filtered by kind and creation window.
func (r *LedgerRepo) SumEntries(ctx context.Context, walletID uuid.UUID, kind *domain.EntryKind, since, until *time.Time) (int64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM ledger_entries WHERE wallet_id = $1`
	args := []any{walletID}

	if kind != nil {
		args = append(args, *kind)
		query += fmt.Sprintf(" AND kind = $%d", len(args))
	}
	if since != nil {
		args = append(args, *since)
		query += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if until != nil {
		args = append(args, *until)
		query += fmt.Sprintf(" AND created_at < $%d", len(args))
	}

	var sum int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&sum); err != nil {
		return 0, fmt.Errorf("sum ledger entries: %w", err)
	}
	return sum, nil
}

// CreateSpendingRecord inserts a spending record within a transaction.
func (r *LedgerRepo) CreateSpendingRecord(ctx context.Context, tx pgx.Tx, rec *domain.SpendingRecord) error {
	query := `INSERT INTO spending_records
		(id, wallet_id, vendor_id, product_id, token_amount, quantity, event_id, device_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := tx.Exec(ctx, query,
		rec.ID, rec.WalletID, rec.VendorID, rec.ProductID,
		rec.TokenAmount, rec.Quantity, rec.EventID, rec.DeviceID, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert spending record: %w", err)
	}
	return nil
}

// GetEntryByID fetches a single ledger entry.
func (r *LedgerRepo) GetEntryByID(ctx context.Context, id uuid.UUID) (*domain.LedgerEntry, error) {
	query := `SELECT id, wallet_id, kind, amount, description, payment_ref, event_id, vendor_id, product_id, device_id, created_at
		FROM ledger_entries WHERE id = $1`

	e := &domain.LedgerEntry{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.WalletID, &e.Kind, &e.Amount, &e.Description,
		&e.PaymentRef, &e.EventID, &e.VendorID, &e.ProductID, &e.DeviceID, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ledger entry: %w", err)
	}
	return e, nil
}
