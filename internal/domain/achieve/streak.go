package achieve

import (
	"context"

	"github.com/renewed-app/backend/internal/repository"
)

// streakChecker measures the user's current consecutive check-in streak. A
// missing progress row is a provisioning defect and propagates as an error.
type streakChecker struct {
	progressRepo repository.UserProgressRepository
}

func NewStreakChecker(progressRepo repository.UserProgressRepository) *streakChecker {
	return &streakChecker{progressRepo: progressRepo}
}

func (*streakChecker) CriteriaType() string {
	return CriteriaCurrentStreak
}

func (c *streakChecker) Progress(ctx context.Context, userID string) (int, error) {
	progress, err := c.progressRepo.GetByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}

	return progress.CurrentStreak, nil
}
