package repository

import (
	"context"
	"errors"

	"github.com/renewed-app/backend/internal/entity"
	"github.com/renewed-app/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type UserProgressRepository interface {
	Create(ctx context.Context, progress *entity.UserProgress) error
	GetByUserID(ctx context.Context, userID string) (*entity.UserProgress, error)
	GetByUserIDs(ctx context.Context, userIDs []string) ([]entity.UserProgress, error)
	SaveCheckIn(ctx context.Context, progress *entity.UserProgress) (bool, error)
	ManualReset(ctx context.Context, userID string) error
}

type userProgressRepository struct{}

func NewUserProgressRepository() *userProgressRepository {
	return &userProgressRepository{}
}

func (r *userProgressRepository) Create(ctx context.Context, progress *entity.UserProgress) error {
	return xcontext.DB(ctx).Create(progress).Error
}

func (r *userProgressRepository) GetByUserID(ctx context.Context, userID string) (*entity.UserProgress, error) {
	var result entity.UserProgress
	if err := xcontext.DB(ctx).Take(&result, "user_id=?", userID).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *userProgressRepository) GetByUserIDs(ctx context.Context, userIDs []string) ([]entity.UserProgress, error) {
	var result []entity.UserProgress
	if err := xcontext.DB(ctx).Find(&result, "user_id IN (?)", userIDs).Error; err != nil {
		return nil, err
	}

	return result, nil
}

// SaveCheckIn persists a streak transition computed by the streak calculator.
// The update is guarded so only the first transition for a given day takes
// effect; a request losing that race observes false and treats it as a no-op.
func (r *userProgressRepository) SaveCheckIn(ctx context.Context, progress *entity.UserProgress) (bool, error) {
	tx := xcontext.DB(ctx).
		Model(&entity.UserProgress{}).
		Where("user_id=?", progress.UserID).
		Where("last_check_in_date IS NULL OR last_check_in_date < ?", progress.LastCheckInDate.Time).
		Updates(map[string]any{
			"current_streak":     progress.CurrentStreak,
			"longest_streak":     progress.LongestStreak,
			"streak_start_date":  progress.StreakStartDate,
			"last_check_in_date": progress.LastCheckInDate,
			"total_resets":       progress.TotalResets,
		})

	if tx.Error != nil {
		return false, tx.Error
	}

	if tx.RowsAffected > 1 {
		return false, errors.New("the number of affected rows is invalid")
	}

	return tx.RowsAffected == 1, nil
}

// ManualReset zeroes the current streak without touching the longest-streak
// high-water mark.
func (r *userProgressRepository) ManualReset(ctx context.Context, userID string) error {
	tx := xcontext.DB(ctx).
		Model(&entity.UserProgress{}).
		Where("user_id=?", userID).
		Updates(map[string]any{
			"current_streak":    0,
			"streak_start_date": nil,
			"total_resets":      gorm.Expr("total_resets+1"),
		})

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
