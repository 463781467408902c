package postgres

import (
	"context"
	"errors"
	"fmt"

	"tapconnect/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ConnectionRepo implements ports.ConnectionRepository. Edges are keyed by
// (user_id, peer_id, event_id); a handshake writes both directions.
type ConnectionRepo struct {
	pool Pool
}

// NewConnectionRepo creates a new ConnectionRepo.
func NewConnectionRepo(pool Pool) *ConnectionRepo {
	return &ConnectionRepo{pool: pool}
}

const upsertConnectionQuery = `INSERT INTO connections
	(user_id, peer_id, event_id, strength, status, created_at, updated_at)
	VALUES ($1, $2, $3, 1, $4, $5, $6)
	ON CONFLICT (user_id, peer_id, event_id) DO UPDATE SET
		strength = connections.strength + 1,
		status = EXCLUDED.status,
		updated_at = EXCLUDED.updated_at
	RETURNING strength`

// UpsertPair commits both directional edges inside the caller's
// transaction; either both land or neither does. The strength increment
// happens in SQL so concurrent repeat handshakes between the same pair
// cannot lose an update; the committed strength is written back onto the
// edges.
func (r *ConnectionRepo) UpsertPair(ctx context.Context, tx pgx.Tx, forward, reverse *domain.Connection) error {
	for _, edge := range []*domain.Connection{forward, reverse} {
		err := tx.QueryRow(ctx, upsertConnectionQuery,
			edge.UserID, edge.PeerID, edge.EventID,
			edge.Status, edge.CreatedAt, edge.UpdatedAt,
		).Scan(&edge.Strength)
		if err != nil {
			return fmt.Errorf("upsert connection edge: %w", err)
		}
	}
	return nil
}

// Get fetches a single directed edge.
func (r *ConnectionRepo) Get(ctx context.Context, userID, peerID, eventID uuid.UUID) (*domain.Connection, error) {
	query := `SELECT user_id, peer_id, event_id, strength, status, created_at, updated_at
		FROM connections WHERE user_id = $1 AND peer_id = $2 AND event_id = $3`

	c := &domain.Connection{}
	err := r.pool.QueryRow(ctx, query, userID, peerID, eventID).Scan(
		&c.UserID, &c.PeerID, &c.EventID, &c.Strength, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get connection: %w", err)
	}
	return c, nil
}

// CountForUser counts the user's accepted connections within an event.
func (r *ConnectionRepo) CountForUser(ctx context.Context, userID, eventID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM connections
		WHERE user_id = $1 AND event_id = $2 AND status = $3`

	var count int
	err := r.pool.QueryRow(ctx, query, userID, eventID, domain.ConnectionStatusAccepted).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count connections: %w", err)
	}
	return count, nil
}
