package domain

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/renewed-app/backend/internal/domain/achieve"
	"github.com/renewed-app/backend/internal/domain/streak"
	"github.com/renewed-app/backend/internal/entity"
	"github.com/renewed-app/backend/internal/model"
	"github.com/renewed-app/backend/internal/repository"
	"github.com/renewed-app/backend/pkg/dateutil"
	"github.com/renewed-app/backend/pkg/errorx"
	"github.com/renewed-app/backend/pkg/xcontext"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CheckInDomain interface {
	RecordCheckIn(context.Context, *model.RecordCheckInRequest) (*model.RecordCheckInResponse, error)
	GetDailyLog(context.Context, *model.GetDailyLogRequest) (*model.GetDailyLogResponse, error)
	GetProgress(context.Context, *model.GetProgressRequest) (*model.GetProgressResponse, error)
	ResetStreak(context.Context, *model.ResetStreakRequest) (*model.ResetStreakResponse, error)
}

type checkInDomain struct {
	dailyLogRepo  repository.DailyLogRepository
	progressRepo  repository.UserProgressRepository
	xpLogRepo     repository.XPLogRepository
	achieveEngine *achieve.Engine
}

func NewCheckInDomain(
	dailyLogRepo repository.DailyLogRepository,
	progressRepo repository.UserProgressRepository,
	xpLogRepo repository.XPLogRepository,
	achieveEngine *achieve.Engine,
) *checkInDomain {
	return &checkInDomain{
		dailyLogRepo:  dailyLogRepo,
		progressRepo:  progressRepo,
		xpLogRepo:     xpLogRepo,
		achieveEngine: achieveEngine,
	}
}

// RecordCheckIn upserts today's log and, only when this is the first
// submission of the day, advances the streak, credits the check-in XP, and
// re-evaluates achievements. Repeating the call for the same day is safe: the
// second submission merges log fields and changes nothing else.
func (d *checkInDomain) RecordCheckIn(
	ctx context.Context, req *model.RecordCheckInRequest,
) (*model.RecordCheckInResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	day, err := requestDay(req.Date)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid date %s", req.Date)
	}

	if day.After(dateutil.Day(time.Now())) {
		return nil, errorx.New(errorx.BadRequest, "Cannot check in for a future date")
	}

	if err := validateRatings(req); err != nil {
		return nil, err
	}

	log := &entity.DailyLog{
		UserID:              userID,
		Date:                dateutil.DayString(day),
		MoodRating:          toNullInt(req.MoodRating),
		EnergyRating:        toNullInt(req.EnergyRating),
		ConfidenceRating:    toNullInt(req.ConfidenceRating),
		UrgeIntensity:       toNullInt(req.UrgeIntensity),
		Notes:               req.Notes,
		TriggerTags:         req.TriggerTags,
		CompletedActivities: req.CompletedActivities,
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	wasNew, err := d.dailyLogRepo.Upsert(ctx, log)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot upsert daily log: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.RecordCheckInResponse{WasNew: wasNew}

	if wasNew {
		progress, err := d.progressRepo.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// The account initializer must have created this row;
				// do not mask a provisioning defect by creating it here.
				xcontext.Logger(ctx).Errorf("No progress row for existing user %s", userID)
				return nil, errorx.Unknown
			}

			xcontext.Logger(ctx).Errorf("Cannot get user progress: %v", err)
			return nil, errorx.Unknown
		}

		if streak.Advance(progress, day) {
			applied, err := d.progressRepo.SaveCheckIn(ctx, progress)
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot save streak transition: %v", err)
				return nil, errorx.Unknown
			}

			if !applied {
				// A concurrent request advanced the streak first.
				xcontext.Logger(ctx).Debugf("Streak of user %s already advanced", userID)
			}
		}

		points := xcontext.Configs(ctx).Progression.CheckInPoints
		created, err := d.xpLogRepo.CreateOnce(ctx, &entity.XPLog{
			Base:         entity.Base{ID: uuid.NewString()},
			UserID:       userID,
			ActivityType: entity.DailyCheckIn,
			AwardDay:     sql.NullString{String: dateutil.DayString(day), Valid: true},
			PointsEarned: points,
			Description:  "Daily check-in",
			OccurredAt:   time.Now(),
		})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot award check-in points: %v", err)
			return nil, errorx.Unknown
		}

		if created {
			resp.XPAwarded = points
		}

		unlocked, err := d.achieveEngine.EvaluateAndUnlock(ctx, userID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot evaluate achievements: %v", err)
			return nil, errorx.Unknown
		}

		resp.UnlockedAchievements = unlocked
	}

	entry, err := d.dailyLogRepo.Get(ctx, userID, log.Date)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot reload daily log: %v", err)
		return nil, errorx.Unknown
	}

	progress, err := d.progressRepo.GetByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user progress: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)

	resp.Entry = convertDailyLog(entry)
	resp.Progress = convertProgress(progress)
	return resp, nil
}

func (d *checkInDomain) GetDailyLog(
	ctx context.Context, req *model.GetDailyLogRequest,
) (*model.GetDailyLogResponse, error) {
	day, err := requestDay(req.Date)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid date %s", req.Date)
	}

	entry, err := d.dailyLogRepo.Get(ctx, xcontext.RequestUserID(ctx), dateutil.DayString(day))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found check-in for %s", dateutil.DayString(day))
		}

		xcontext.Logger(ctx).Errorf("Cannot get daily log: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetDailyLogResponse{Entry: convertDailyLog(entry)}, nil
}

func (d *checkInDomain) GetProgress(
	ctx context.Context, req *model.GetProgressRequest,
) (*model.GetProgressResponse, error) {
	progress, err := d.progressRepo.GetByUserID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("No progress row for existing user %s", xcontext.RequestUserID(ctx))
			return nil, errorx.Unknown
		}

		xcontext.Logger(ctx).Errorf("Cannot get user progress: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetProgressResponse{Progress: convertProgress(progress)}, nil
}

// ResetStreak is the user-initiated restart. Unlike a gap reset it zeroes the
// current streak entirely; the longest streak stays as a permanent record.
func (d *checkInDomain) ResetStreak(
	ctx context.Context, req *model.ResetStreakRequest,
) (*model.ResetStreakResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.progressRepo.ManualReset(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("No progress row for existing user %s", userID)
			return nil, errorx.Unknown
		}

		xcontext.Logger(ctx).Errorf("Cannot reset streak: %v", err)
		return nil, errorx.Unknown
	}

	progress, err := d.progressRepo.GetByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user progress: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)

	return &model.ResetStreakResponse{Progress: convertProgress(progress)}, nil
}

func requestDay(date string) (time.Time, error) {
	if date == "" {
		return dateutil.Day(time.Now()), nil
	}

	return dateutil.ParseDay(date)
}

func validateRatings(req *model.RecordCheckInRequest) error {
	for _, rating := range []struct {
		name  string
		value *int
	}{
		{"mood_rating", req.MoodRating},
		{"energy_rating", req.EnergyRating},
		{"confidence_rating", req.ConfidenceRating},
	} {
		if rating.value != nil && (*rating.value < entity.MinRating || *rating.value > entity.MaxRating) {
			return errorx.New(errorx.BadRequest, "The %s must be between %d and %d",
				rating.name, entity.MinRating, entity.MaxRating)
		}
	}

	if req.UrgeIntensity != nil && (*req.UrgeIntensity < 0 || *req.UrgeIntensity > entity.MaxUrgeIntensity) {
		return errorx.New(errorx.BadRequest, "The urge_intensity must be between 0 and %d",
			entity.MaxUrgeIntensity)
	}

	return nil
}
