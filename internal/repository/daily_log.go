package repository

import (
	"context"

	"github.com/renewed-app/backend/internal/entity"
	"github.com/renewed-app/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type DailyLogRepository interface {
	// Upsert writes the check-in for (user, day). It returns true if the row
	// was created, false if an entry for that day already existed and its
	// fields were merged instead.
	Upsert(ctx context.Context, log *entity.DailyLog) (bool, error)
	Get(ctx context.Context, userID, date string) (*entity.DailyLog, error)
	GetRecent(ctx context.Context, userID string, limit int) ([]entity.DailyLog, error)
}

type dailyLogRepository struct{}

func NewDailyLogRepository() *dailyLogRepository {
	return &dailyLogRepository{}
}

func (r *dailyLogRepository) Upsert(ctx context.Context, log *entity.DailyLog) (bool, error) {
	tx := xcontext.DB(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"},
				{Name: "date"},
			},
			DoNothing: true,
		}).Create(log)
	if tx.Error != nil {
		return false, tx.Error
	}

	if tx.RowsAffected == 1 {
		return true, nil
	}

	// The day already has an entry. Provided ratings overwrite the stored
	// ones, omitted ratings are kept; notes and tags always reflect the
	// latest submission.
	updates := map[string]any{
		"notes":                log.Notes,
		"trigger_tags":         log.TriggerTags,
		"completed_activities": log.CompletedActivities,
	}

	if log.MoodRating.Valid {
		updates["mood_rating"] = log.MoodRating
	}

	if log.EnergyRating.Valid {
		updates["energy_rating"] = log.EnergyRating
	}

	if log.ConfidenceRating.Valid {
		updates["confidence_rating"] = log.ConfidenceRating
	}

	if log.UrgeIntensity.Valid {
		updates["urge_intensity"] = log.UrgeIntensity
	}

	err := xcontext.DB(ctx).
		Model(&entity.DailyLog{}).
		Where("user_id=? AND date=?", log.UserID, log.Date).
		Updates(updates).Error
	if err != nil {
		return false, err
	}

	return false, nil
}

func (r *dailyLogRepository) Get(ctx context.Context, userID, date string) (*entity.DailyLog, error) {
	var result entity.DailyLog
	err := xcontext.DB(ctx).Take(&result, "user_id=? AND date=?", userID, date).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *dailyLogRepository) GetRecent(ctx context.Context, userID string, limit int) ([]entity.DailyLog, error) {
	var result []entity.DailyLog
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
