package repository

import (
	"context"

	"github.com/renewed-app/backend/internal/entity"
	"github.com/renewed-app/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type UserAchievementRepository interface {
	// Create inserts an unlock record. It returns false without an error if
	// the user already unlocked this achievement, which is how a concurrent
	// evaluation losing the race observes it.
	Create(ctx context.Context, unlock *entity.UserAchievement) (bool, error)
	GetAllByUser(ctx context.Context, userID string) ([]entity.UserAchievement, error)
	MarkNotified(ctx context.Context, userID string, achievementIDs []string) error
}

type userAchievementRepository struct{}

func NewUserAchievementRepository() *userAchievementRepository {
	return &userAchievementRepository{}
}

func (r *userAchievementRepository) Create(ctx context.Context, unlock *entity.UserAchievement) (bool, error) {
	tx := xcontext.DB(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"},
				{Name: "achievement_id"},
			},
			DoNothing: true,
		}).Create(unlock)
	if tx.Error != nil {
		return false, tx.Error
	}

	return tx.RowsAffected == 1, nil
}

func (r *userAchievementRepository) GetAllByUser(ctx context.Context, userID string) ([]entity.UserAchievement, error) {
	var result []entity.UserAchievement
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("unlocked_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userAchievementRepository) MarkNotified(
	ctx context.Context, userID string, achievementIDs []string,
) error {
	if len(achievementIDs) == 0 {
		return nil
	}

	return xcontext.DB(ctx).
		Model(&entity.UserAchievement{}).
		Where("user_id=? AND achievement_id IN (?)", userID, achievementIDs).
		Update("was_notified", true).Error
}
