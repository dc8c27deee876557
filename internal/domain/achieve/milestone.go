package achieve

import (
	"context"

	"github.com/renewed-app/backend/internal/repository"
)

// resetChecker measures lifetime streak resets. Starting over is part of
// recovery; the milestone category rewards coming back. A missing progress
// row is a provisioning defect and propagates as an error.
type resetChecker struct {
	progressRepo repository.UserProgressRepository
}

func NewResetChecker(progressRepo repository.UserProgressRepository) *resetChecker {
	return &resetChecker{progressRepo: progressRepo}
}

func (*resetChecker) CriteriaType() string {
	return CriteriaTotalResets
}

func (c *resetChecker) Progress(ctx context.Context, userID string) (int, error) {
	progress, err := c.progressRepo.GetByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}

	return progress.TotalResets, nil
}
