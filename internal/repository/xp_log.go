package repository

import (
	"context"
	"time"

	"github.com/renewed-app/backend/internal/entity"
	"github.com/renewed-app/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type LeaderBoardFilter struct {
	// Since filters entries by occurred_at; the zero value means all time.
	Since time.Time

	Limit int
}

type XPLogRepository interface {
	// Create appends an award without a daily cap.
	Create(ctx context.Context, log *entity.XPLog) error

	// CreateOnce appends a daily-capped award. It returns false without an
	// error when an entry for (user, activity type, day) already exists.
	CreateOnce(ctx context.Context, log *entity.XPLog) (bool, error)

	SumByUser(ctx context.Context, userID string) (int64, error)
	SumByUserSince(ctx context.Context, userID string, since time.Time) (int64, error)
	CountByUserAndType(ctx context.Context, userID string, activityType entity.ActivityType) (int64, error)
	GetRecentByUser(ctx context.Context, userID string, limit int) ([]entity.XPLog, error)

	// Aggregate sums the windowed ledger per user, highest total first, ties
	// broken by the earliest qualifying entry.
	Aggregate(ctx context.Context, filter LeaderBoardFilter) ([]entity.UserXPAggregate, error)
	CountUsersAbove(ctx context.Context, since time.Time, points int64) (int64, error)
}

type xpLogRepository struct{}

func NewXPLogRepository() *xpLogRepository {
	return &xpLogRepository{}
}

func (r *xpLogRepository) Create(ctx context.Context, log *entity.XPLog) error {
	return xcontext.DB(ctx).Create(log).Error
}

func (r *xpLogRepository) CreateOnce(ctx context.Context, log *entity.XPLog) (bool, error) {
	tx := xcontext.DB(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"},
				{Name: "activity_type"},
				{Name: "award_day"},
			},
			DoNothing: true,
		}).Create(log)
	if tx.Error != nil {
		return false, tx.Error
	}

	return tx.RowsAffected == 1, nil
}

func (r *xpLogRepository) SumByUser(ctx context.Context, userID string) (int64, error) {
	return r.SumByUserSince(ctx, userID, time.Time{})
}

func (r *xpLogRepository) SumByUserSince(ctx context.Context, userID string, since time.Time) (int64, error) {
	tx := xcontext.DB(ctx).
		Model(&entity.XPLog{}).
		Select("COALESCE(SUM(points_earned), 0)").
		Where("user_id=?", userID)

	if !since.IsZero() {
		tx = tx.Where("occurred_at >= ?", since)
	}

	var sum int64
	if err := tx.Scan(&sum).Error; err != nil {
		return 0, err
	}

	return sum, nil
}

func (r *xpLogRepository) CountByUserAndType(
	ctx context.Context, userID string, activityType entity.ActivityType,
) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).
		Model(&entity.XPLog{}).
		Where("user_id=? AND activity_type=?", userID, activityType).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *xpLogRepository) GetRecentByUser(ctx context.Context, userID string, limit int) ([]entity.XPLog, error) {
	var result []entity.XPLog
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *xpLogRepository) Aggregate(ctx context.Context, filter LeaderBoardFilter) ([]entity.UserXPAggregate, error) {
	// The earliest-entry tie-break only orders the rows; it is never
	// selected, so the result scans the same on mysql and sqlite.
	tx := xcontext.DB(ctx).
		Model(&entity.XPLog{}).
		Select("user_id, SUM(points_earned) AS total_points").
		Group("user_id").
		Order("total_points DESC, MIN(occurred_at) ASC").
		Limit(filter.Limit)

	if !filter.Since.IsZero() {
		tx = tx.Where("occurred_at >= ?", filter.Since)
	}

	var result []entity.UserXPAggregate
	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *xpLogRepository) CountUsersAbove(ctx context.Context, since time.Time, points int64) (int64, error) {
	sub := xcontext.DB(ctx).
		Model(&entity.XPLog{}).
		Select("user_id, SUM(points_earned) AS total_points").
		Group("user_id")

	if !since.IsZero() {
		sub = sub.Where("occurred_at >= ?", since)
	}

	var count int64
	err := xcontext.DB(ctx).
		Table("(?) AS totals", sub).
		Where("total_points > ?", points).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
