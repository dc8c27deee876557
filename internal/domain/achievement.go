package domain

import (
	"context"

	"github.com/renewed-app/backend/internal/domain/achieve"
	"github.com/renewed-app/backend/internal/entity"
	"github.com/renewed-app/backend/internal/model"
	"github.com/renewed-app/backend/internal/repository"
	"github.com/renewed-app/backend/pkg/errorx"
	"github.com/renewed-app/backend/pkg/xcontext"
)

type AchievementDomain interface {
	Evaluate(context.Context, *model.EvaluateAchievementsRequest) (*model.EvaluateAchievementsResponse, error)
	GetCatalog(context.Context, *model.GetAchievementCatalogRequest) (*model.GetAchievementCatalogResponse, error)
	GetMyAchievements(context.Context, *model.GetMyAchievementsRequest) (*model.GetMyAchievementsResponse, error)
}

type achievementDomain struct {
	achievementRepo     repository.AchievementRepository
	userAchievementRepo repository.UserAchievementRepository
	achieveEngine       *achieve.Engine
}

func NewAchievementDomain(
	achievementRepo repository.AchievementRepository,
	userAchievementRepo repository.UserAchievementRepository,
	achieveEngine *achieve.Engine,
) *achievementDomain {
	return &achievementDomain{
		achievementRepo:     achievementRepo,
		userAchievementRepo: userAchievementRepo,
		achieveEngine:       achieveEngine,
	}
}

func (d *achievementDomain) Evaluate(
	ctx context.Context, req *model.EvaluateAchievementsRequest,
) (*model.EvaluateAchievementsResponse, error) {
	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	unlocked, err := d.achieveEngine.EvaluateAndUnlock(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot evaluate achievements: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)

	return &model.EvaluateAchievementsResponse{Unlocked: unlocked}, nil
}

func (d *achievementDomain) GetCatalog(
	ctx context.Context, req *model.GetAchievementCatalogRequest,
) (*model.GetAchievementCatalogResponse, error) {
	achievements, err := d.achievementRepo.GetAllActive(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get achievement catalog: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetAchievementCatalogResponse{}
	for i := range achievements {
		resp.Achievements = append(resp.Achievements, convertAchievement(&achievements[i]))
	}

	return resp, nil
}

// GetMyAchievements returns every unlock of the requester. Unlocks returned
// with was_notified=false for the first time are marked notified, so a client
// can use the flag to show one-time celebration popups.
func (d *achievementDomain) GetMyAchievements(
	ctx context.Context, req *model.GetMyAchievementsRequest,
) (*model.GetMyAchievementsResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	unlocks, err := d.userAchievementRepo.GetAllByUser(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get unlocks of user: %v", err)
		return nil, errorx.Unknown
	}

	catalog, err := d.achievementRepo.GetAll(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get achievement catalog: %v", err)
		return nil, errorx.Unknown
	}

	catalogMap := map[string]*entity.Achievement{}
	for i := range catalog {
		catalogMap[catalog[i].ID] = &catalog[i]
	}

	resp := &model.GetMyAchievementsResponse{}
	var unnotified []string
	for _, unlock := range unlocks {
		achievement, ok := catalogMap[unlock.AchievementID]
		if !ok {
			xcontext.Logger(ctx).Warnf("Unlock of unknown achievement %s", unlock.AchievementID)
			continue
		}

		resp.Achievements = append(resp.Achievements, model.UserAchievement{
			Achievement: convertAchievement(achievement),
			UnlockedAt:  unlock.UnlockedAt,
			WasNotified: unlock.WasNotified,
		})

		if !unlock.WasNotified {
			unnotified = append(unnotified, unlock.AchievementID)
		}
	}

	if err := d.userAchievementRepo.MarkNotified(ctx, userID, unnotified); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot mark unlocks as notified: %v", err)
		return nil, errorx.Unknown
	}

	return resp, nil
}
