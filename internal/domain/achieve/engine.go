package achieve

import (
	"context"
	"database/sql"
	"time"

	"github.com/fatih/structs"
	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"github.com/renewed-app/backend/internal/common"
	"github.com/renewed-app/backend/internal/entity"
	"github.com/renewed-app/backend/internal/model"
	"github.com/renewed-app/backend/internal/repository"
	"github.com/renewed-app/backend/pkg/xcontext"
)

// tierBonus is the XP credited together with an unlock. A tier outside this
// map earns no bonus.
var tierBonus = map[entity.AchievementTier]int{
	entity.TierBronze:   50,
	entity.TierSilver:   100,
	entity.TierGold:     200,
	entity.TierPlatinum: 300,
	entity.TierDiamond:  500,
}

type criteriaData struct {
	Type string `mapstructure:"type" structs:"type"`
}

// NewCriteria builds the unlock_criteria column value for a catalog entry.
func NewCriteria(criteriaType string) entity.Map {
	return entity.Map(structs.Map(criteriaData{Type: criteriaType}))
}

// Engine evaluates the achievement catalog against user statistics and
// creates unlock records. The checker set is only written at initialization,
// after that it is readonly.
type Engine struct {
	checkers map[string]Checker

	achievementRepo     repository.AchievementRepository
	userAchievementRepo repository.UserAchievementRepository
	xpLogRepo           repository.XPLogRepository
}

func NewEngine(
	achievementRepo repository.AchievementRepository,
	userAchievementRepo repository.UserAchievementRepository,
	xpLogRepo repository.XPLogRepository,
	checkers ...Checker,
) *Engine {
	engine := &Engine{
		checkers:            make(map[string]Checker),
		achievementRepo:     achievementRepo,
		userAchievementRepo: userAchievementRepo,
		xpLogRepo:           xpLogRepo,
	}

	for _, c := range checkers {
		engine.checkers[c.CriteriaType()] = c
	}

	return engine
}

func (e *Engine) CriteriaTypes() []string {
	return common.MapKeys(e.checkers)
}

// EvaluateAndUnlock walks every active achievement the user has not unlocked
// yet, computes the criteria progress, and records unlocks with their bonus
// XP. Losing an unlock insert to a concurrent evaluation is not an error;
// the other evaluator already credited it.
func (e *Engine) EvaluateAndUnlock(ctx context.Context, userID string) ([]model.UnlockedAchievement, error) {
	achievements, err := e.achievementRepo.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := e.userAchievementRepo.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	unlockedSet := map[string]bool{}
	for _, u := range existing {
		unlockedSet[u.AchievementID] = true
	}

	progressCache := map[string]int{}
	var unlocked []model.UnlockedAchievement
	for _, achievement := range achievements {
		if unlockedSet[achievement.ID] {
			continue
		}

		var criteria criteriaData
		if err := mapstructure.Decode(map[string]any(achievement.UnlockCriteria), &criteria); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot decode criteria of %s: %v", achievement.Name, err)
			continue
		}

		checker, ok := e.checkers[criteria.Type]
		if !ok {
			// Criteria without a checker (notably the "activity"
			// extension point) are never satisfiable.
			continue
		}

		value, ok := progressCache[criteria.Type]
		if !ok {
			value, err = checker.Progress(ctx, userID)
			if err != nil {
				return nil, err
			}

			progressCache[criteria.Type] = value
		}

		if value < achievement.Requirement {
			continue
		}

		created, err := e.userAchievementRepo.Create(ctx, &entity.UserAchievement{
			UserID:        userID,
			AchievementID: achievement.ID,
			UnlockedAt:    time.Now(),
		})
		if err != nil {
			return nil, err
		}

		if !created {
			continue
		}

		bonus := tierBonus[achievement.Tier]
		if bonus > 0 {
			err = e.xpLogRepo.Create(ctx, &entity.XPLog{
				Base:         entity.Base{ID: uuid.NewString()},
				UserID:       userID,
				ActivityType: entity.MilestoneReached,
				AwardDay:     sql.NullString{},
				PointsEarned: bonus,
				Description:  "Unlocked achievement " + achievement.Name,
				OccurredAt:   time.Now(),
			})
			if err != nil {
				return nil, err
			}
		} else {
			xcontext.Logger(ctx).Warnf("No bonus configured for tier %s", achievement.Tier)
		}

		unlocked = append(unlocked, model.UnlockedAchievement{
			Achievement: model.Achievement{
				ID:          achievement.ID,
				Name:        achievement.Name,
				Description: achievement.Description,
				Category:    string(achievement.Category),
				Tier:        string(achievement.Tier),
				Requirement: achievement.Requirement,
			},
			XPEarned: bonus,
		})
	}

	return unlocked, nil
}
