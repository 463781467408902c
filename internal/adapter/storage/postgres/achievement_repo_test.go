package postgres

import (
	"context"
	"testing"
	"time"

	"tapconnect/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAchievementRepo_ListActiveForEvent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAchievementRepo(mock)
	eventID := uuid.New()
	now := time.Now().UTC()

	cols := []string{"id", "event_id", "name", "description", "condition_class", "min_connections", "reward_tokens", "badge_code", "active", "created_at"}
	mock.ExpectQuery("SELECT .+ FROM achievements WHERE event_id").
		WithArgs(eventID).
		WillReturnRows(pgxmock.NewRows(cols).AddRow(
			uuid.New(), eventID, "Networker", "Meet 5 people",
			domain.ConditionClassNetworking, 5, int64(1000), (*string)(nil), true, now,
		))

	achievements, err := repo.ListActiveForEvent(context.Background(), eventID)
	require.NoError(t, err)
	require.Len(t, achievements, 1)
	assert.Equal(t, domain.ConditionClassNetworking, achievements[0].Condition.Class)
	assert.Equal(t, 5, achievements[0].Condition.MinConnections)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAchievementRepo_Unlock_FirstWins(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAchievementRepo(mock)
	p := &domain.UserAchievementProgress{
		UserID:        uuid.New(),
		AchievementID: uuid.New(),
		EventID:       uuid.New(),
		UnlockedAt:    time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO user_achievements").
		WithArgs(p.UserID, p.AchievementID, p.EventID, p.UnlockedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	won, err := repo.Unlock(context.Background(), p)
	require.NoError(t, err)
	assert.True(t, won)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAchievementRepo_Unlock_AlreadyUnlocked(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAchievementRepo(mock)
	p := &domain.UserAchievementProgress{
		UserID:        uuid.New(),
		AchievementID: uuid.New(),
		EventID:       uuid.New(),
		UnlockedAt:    time.Now().UTC(),
	}

	// ON CONFLICT DO NOTHING reports zero affected rows for the loser.
	mock.ExpectExec("INSERT INTO user_achievements").
		WithArgs(p.UserID, p.AchievementID, p.EventID, p.UnlockedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	won, err := repo.Unlock(context.Background(), p)
	require.NoError(t, err)
	assert.False(t, won)
	assert.NoError(t, mock.ExpectationsWereMet())
}
