package postgres

import (
	"context"
	"fmt"

	"tapconnect/internal/core/domain"

	"github.com/google/uuid"
)

// InteractionRepo implements ports.InteractionRepository.
type InteractionRepo struct {
	pool Pool
}

// NewInteractionRepo creates a new InteractionRepo.
func NewInteractionRepo(pool Pool) *InteractionRepo {
	return &InteractionRepo{pool: pool}
}

// Create inserts a write-once interaction row.
func (r *InteractionRepo) Create(ctx context.Context, i *domain.Interaction) error {
	query := `INSERT INTO interactions
		(id, kind, device_id, peer_device_id, user_id, peer_user_id, event_id, score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		i.ID, i.Kind, i.DeviceID, i.PeerDeviceID,
		i.UserID, i.PeerUserID, i.EventID, i.Score, i.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert interaction: %w", err)
	}
	return nil
}

// ListForEvent returns the most recent interactions of an event.
func (r *InteractionRepo) ListForEvent(ctx context.Context, eventID uuid.UUID, limit int) ([]domain.Interaction, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT id, kind, device_id, peer_device_id, user_id, peer_user_id, event_id, score, created_at
		FROM interactions WHERE event_id = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, eventID, limit)
	if err != nil {
		return nil, fmt.Errorf("list interactions: %w", err)
	}
	defer rows.Close()

	var interactions []domain.Interaction
	for rows.Next() {
		var i domain.Interaction
		if err := rows.Scan(
			&i.ID, &i.Kind, &i.DeviceID, &i.PeerDeviceID,
			&i.UserID, &i.PeerUserID, &i.EventID, &i.Score, &i.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan interaction: %w", err)
		}
		interactions = append(interactions, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate interactions: %w", err)
	}
	return interactions, nil
}
