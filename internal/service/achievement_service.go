package service

import (
	"context"
	"fmt"
	"time"

	"tapconnect/internal/core/domain"
	"tapconnect/internal/core/ports"
	"tapconnect/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AchievementServiceImpl implements ports.AchievementEvaluator.
type AchievementServiceImpl struct {
	achievementRepo ports.AchievementRepository
	connRepo        ports.ConnectionRepository
	walletSvc       ports.WalletService
	log             zerolog.Logger
}

// NewAchievementService creates a new AchievementServiceImpl.
func NewAchievementService(
	achievementRepo ports.AchievementRepository,
	connRepo ports.ConnectionRepository,
	walletSvc ports.WalletService,
	log zerolog.Logger,
) *AchievementServiceImpl {
	return &AchievementServiceImpl{
		achievementRepo: achievementRepo,
		connRepo:        connRepo,
		walletSvc:       walletSvc,
		log:             log,
	}
}

// Evaluate checks all active achievements of the event against the user's
// current connection count and unlocks the newly met ones. The unique
// completion constraint makes the unlock idempotent; the token reward pays
// only when this caller won the insert.
func (s *AchievementServiceImpl) Evaluate(ctx context.Context, userID, eventID uuid.UUID) ([]domain.Achievement, error) {
	count, err := s.connRepo.CountForUser(ctx, userID, eventID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("count connections: %w", err))
	}

	achievements, err := s.achievementRepo.ListActiveForEvent(ctx, eventID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list achievements: %w", err))
	}

	var unlocked []domain.Achievement
	for _, a := range achievements {
		if !a.Condition.Met(count) {
			continue
		}

		won, err := s.achievementRepo.Unlock(ctx, &domain.UserAchievementProgress{
			UserID:        userID,
			AchievementID: a.ID,
			EventID:       eventID,
			UnlockedAt:    time.Now().UTC(),
		})
		if err != nil {
			return unlocked, apperror.InternalError(fmt.Errorf("unlock achievement: %w", err))
		}
		if !won {
			continue
		}

		if a.RewardTokens > 0 {
			evID := eventID
			if _, err := s.walletSvc.Reward(ctx, ports.RewardRequest{
				UserID:      userID,
				Amount:      a.RewardTokens,
				Description: "achievement: " + a.Name,
				EventID:     &evID,
			}); err != nil {
				// Unlock stands; the payout has its own audit trail and can
				// be reconciled from the ledger.
				s.log.Error().Err(err).
					Str("user_id", userID.String()).
					Str("achievement_id", a.ID.String()).
					Msg("achievement reward payout failed")
			}
		}

		s.log.Info().
			Str("user_id", userID.String()).
			Str("achievement", a.Name).
			Int("connections", count).
			Msg("achievement unlocked")

		unlocked = append(unlocked, a)
	}

	return unlocked, nil
}
