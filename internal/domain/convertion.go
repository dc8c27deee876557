package domain

import (
	"database/sql"

	"github.com/renewed-app/backend/internal/entity"
	"github.com/renewed-app/backend/internal/model"
	"github.com/renewed-app/backend/pkg/dateutil"
)

func convertDailyLog(log *entity.DailyLog) model.DailyLog {
	return model.DailyLog{
		Date:                log.Date,
		MoodRating:          convertNullInt(log.MoodRating),
		EnergyRating:        convertNullInt(log.EnergyRating),
		ConfidenceRating:    convertNullInt(log.ConfidenceRating),
		UrgeIntensity:       convertNullInt(log.UrgeIntensity),
		Notes:               log.Notes,
		TriggerTags:         log.TriggerTags,
		CompletedActivities: log.CompletedActivities,
	}
}

func convertProgress(progress *entity.UserProgress) model.Progress {
	result := model.Progress{
		CurrentStreak: progress.CurrentStreak,
		LongestStreak: progress.LongestStreak,
		TotalResets:   progress.TotalResets,
	}

	if progress.StreakStartDate.Valid {
		result.StreakStartDate = dateutil.DayString(progress.StreakStartDate.Time)
	}

	if progress.LastCheckInDate.Valid {
		result.LastCheckInDate = dateutil.DayString(progress.LastCheckInDate.Time)
	}

	return result
}

func convertAchievement(achievement *entity.Achievement) model.Achievement {
	return model.Achievement{
		ID:          achievement.ID,
		Name:        achievement.Name,
		Description: achievement.Description,
		Category:    string(achievement.Category),
		Tier:        string(achievement.Tier),
		Requirement: achievement.Requirement,
	}
}

func convertNullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}

	i := int(v.Int64)
	return &i
}

func toNullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}

	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
