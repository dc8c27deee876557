package achieve

import (
	"context"

	"github.com/renewed-app/backend/internal/entity"
	"github.com/renewed-app/backend/internal/repository"
)

// forumPostChecker measures lifetime forum posts. Forum storage lives in
// another subsystem; its XP grants are the statistic visible to this engine.
type forumPostChecker struct {
	xpLogRepo repository.XPLogRepository
}

func NewForumPostChecker(xpLogRepo repository.XPLogRepository) *forumPostChecker {
	return &forumPostChecker{xpLogRepo: xpLogRepo}
}

func (*forumPostChecker) CriteriaType() string {
	return CriteriaForumPosts
}

func (c *forumPostChecker) Progress(ctx context.Context, userID string) (int, error) {
	count, err := c.xpLogRepo.CountByUserAndType(ctx, userID, entity.ForumPost)
	if err != nil {
		return 0, err
	}

	return int(count), nil
}
