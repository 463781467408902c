package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"tapconnect/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// DeviceRepo implements ports.DeviceRepository. The profile snapshot is
// stored as JSONB so rebinding replaces it atomically with the binding.
type DeviceRepo struct {
	pool Pool
}

// NewDeviceRepo creates a new DeviceRepo.
func NewDeviceRepo(pool Pool) *DeviceRepo {
	return &DeviceRepo{pool: pool}
}

// Upsert creates or rebinds a device.
func (r *DeviceRepo) Upsert(ctx context.Context, d *domain.Device) error {
	var profile []byte
	if d.Profile != nil {
		var err error
		profile, err = json.Marshal(d.Profile)
		if err != nil {
			return fmt.Errorf("marshal profile snapshot: %w", err)
		}
	}

	query := `INSERT INTO devices (id, user_id, event_id, profile, bound_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			event_id = EXCLUDED.event_id,
			profile = EXCLUDED.profile,
			bound_at = EXCLUDED.bound_at,
			updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query,
		d.ID, d.UserID, d.EventID, profile, d.BoundAt, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert device: %w", err)
	}
	return nil
}

// GetByID fetches a device by its opaque transport id.
func (r *DeviceRepo) GetByID(ctx context.Context, deviceID string) (*domain.Device, error) {
	query := `SELECT id, user_id, event_id, profile, bound_at, created_at, updated_at
		FROM devices WHERE id = $1`

	d := &domain.Device{}
	var profile []byte
	err := r.pool.QueryRow(ctx, query, deviceID).Scan(
		&d.ID, &d.UserID, &d.EventID, &profile, &d.BoundAt, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get device: %w", err)
	}

	if len(profile) > 0 {
		snapshot := &domain.ProfileSnapshot{}
		if err := json.Unmarshal(profile, snapshot); err != nil {
			return nil, fmt.Errorf("unmarshal profile snapshot: %w", err)
		}
		d.Profile = snapshot
	}
	return d, nil
}
