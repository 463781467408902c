package postgres

import (
	"context"
	"fmt"

	"tapconnect/internal/core/domain"

	"github.com/google/uuid"
)

// AchievementRepo implements ports.AchievementRepository.
type AchievementRepo struct {
	pool Pool
}

// NewAchievementRepo creates a new AchievementRepo.
func NewAchievementRepo(pool Pool) *AchievementRepo {
	return &AchievementRepo{pool: pool}
}

// Create inserts a new achievement definition.
func (r *AchievementRepo) Create(ctx context.Context, a *domain.Achievement) error {
	query := `INSERT INTO achievements
		(id, event_id, name, description, condition_class, min_connections, reward_tokens, badge_code, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.EventID, a.Name, a.Description,
		a.Condition.Class, a.Condition.MinConnections,
		a.RewardTokens, a.BadgeCode, a.Active, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert achievement: %w", err)
	}
	return nil
}

// ListActiveForEvent returns the active achievements of an event.
func (r *AchievementRepo) ListActiveForEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Achievement, error) {
	query := `SELECT id, event_id, name, description, condition_class, min_connections, reward_tokens, badge_code, active, created_at
		FROM achievements WHERE event_id = $1 AND active`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	defer rows.Close()

	var achievements []domain.Achievement
	for rows.Next() {
		var a domain.Achievement
		if err := rows.Scan(
			&a.ID, &a.EventID, &a.Name, &a.Description,
			&a.Condition.Class, &a.Condition.MinConnections,
			&a.RewardTokens, &a.BadgeCode, &a.Active, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan achievement: %w", err)
		}
		achievements = append(achievements, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate achievements: %w", err)
	}
	return achievements, nil
}

// Unlock inserts the completion row if absent. The primary key on
// (user_id, achievement_id, event_id) is what makes concurrent evaluations
// resolve to one winner.
func (r *AchievementRepo) Unlock(ctx context.Context, p *domain.UserAchievementProgress) (bool, error) {
	query := `INSERT INTO user_achievements (user_id, achievement_id, event_id, unlocked_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, achievement_id, event_id) DO NOTHING`

	tag, err := r.pool.Exec(ctx, query, p.UserID, p.AchievementID, p.EventID, p.UnlockedAt)
	if err != nil {
		return false, fmt.Errorf("unlock achievement: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
