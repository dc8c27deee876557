package migration

import (
	"context"

	"github.com/google/uuid"
	"github.com/renewed-app/backend/internal/domain/achieve"
	"github.com/renewed-app/backend/internal/entity"
	"github.com/renewed-app/backend/internal/repository"
)

// migrate0001 seeds the achievement catalog. Entries are upserted by name, so
// definition changes here propagate on the next deploy without duplicating
// rows.
func migrate0001(ctx context.Context) error {
	achievementRepo := repository.NewAchievementRepository()

	catalog := []entity.Achievement{
		{
			Name:           "First Step",
			Description:    "Complete your first daily check-in.",
			Category:       entity.CategoryStreak,
			Tier:           entity.TierBronze,
			Requirement:    1,
			UnlockCriteria: achieve.NewCriteria(achieve.CriteriaCurrentStreak),
		},
		{
			Name:           "Week Warrior",
			Description:    "Check in seven days in a row.",
			Category:       entity.CategoryStreak,
			Tier:           entity.TierBronze,
			Requirement:    7,
			UnlockCriteria: achieve.NewCriteria(achieve.CriteriaCurrentStreak),
		},
		{
			Name:           "Fortnight Fighter",
			Description:    "Keep a fourteen day streak alive.",
			Category:       entity.CategoryStreak,
			Tier:           entity.TierSilver,
			Requirement:    14,
			UnlockCriteria: achieve.NewCriteria(achieve.CriteriaCurrentStreak),
		},
		{
			Name:           "Monthly Master",
			Description:    "Thirty consecutive days of checking in.",
			Category:       entity.CategoryStreak,
			Tier:           entity.TierGold,
			Requirement:    30,
			UnlockCriteria: achieve.NewCriteria(achieve.CriteriaCurrentStreak),
		},
		{
			Name:           "Quarter Conqueror",
			Description:    "Ninety consecutive days of checking in.",
			Category:       entity.CategoryStreak,
			Tier:           entity.TierPlatinum,
			Requirement:    90,
			UnlockCriteria: achieve.NewCriteria(achieve.CriteriaCurrentStreak),
		},
		{
			Name:           "Year of Renewal",
			Description:    "A full year without breaking the streak.",
			Category:       entity.CategoryStreak,
			Tier:           entity.TierDiamond,
			Requirement:    365,
			UnlockCriteria: achieve.NewCriteria(achieve.CriteriaCurrentStreak),
		},
		{
			Name:           "Mood Mapper",
			Description:    "Log your mood three days in a row.",
			Category:       entity.CategoryHealth,
			Tier:           entity.TierBronze,
			Requirement:    3,
			UnlockCriteria: achieve.NewCriteria(achieve.CriteriaMoodLogDays),
		},
		{
			Name:           "Mindful Week",
			Description:    "Log your mood every day for a week.",
			Category:       entity.CategoryHealth,
			Tier:           entity.TierSilver,
			Requirement:    7,
			UnlockCriteria: achieve.NewCriteria(achieve.CriteriaMoodLogDays),
		},
		{
			Name:           "Wellness Devotee",
			Description:    "Log your mood every day for a month.",
			Category:       entity.CategoryHealth,
			Tier:           entity.TierGold,
			Requirement:    30,
			UnlockCriteria: achieve.NewCriteria(achieve.CriteriaMoodLogDays),
		},
		{
			Name:           "First Voice",
			Description:    "Write your first forum post.",
			Category:       entity.CategorySocial,
			Tier:           entity.TierBronze,
			Requirement:    1,
			UnlockCriteria: achieve.NewCriteria(achieve.CriteriaForumPosts),
		},
		{
			Name:           "Community Builder",
			Description:    "Write ten forum posts.",
			Category:       entity.CategorySocial,
			Tier:           entity.TierSilver,
			Requirement:    10,
			UnlockCriteria: achieve.NewCriteria(achieve.CriteriaForumPosts),
		},
		{
			Name:           "Pillar of Support",
			Description:    "Write fifty forum posts.",
			Category:       entity.CategorySocial,
			Tier:           entity.TierGold,
			Requirement:    50,
			UnlockCriteria: achieve.NewCriteria(achieve.CriteriaForumPosts),
		},
		{
			Name:           "Fresh Start",
			Description:    "Reset your streak and begin again.",
			Category:       entity.CategoryMilestone,
			Tier:           entity.TierBronze,
			Requirement:    1,
			UnlockCriteria: achieve.NewCriteria(achieve.CriteriaTotalResets),
		},
		{
			Name:           "Resilient",
			Description:    "Come back five times.",
			Category:       entity.CategoryMilestone,
			Tier:           entity.TierSilver,
			Requirement:    5,
			UnlockCriteria: achieve.NewCriteria(achieve.CriteriaTotalResets),
		},
		{
			Name:           "Never Give Up",
			Description:    "Come back ten times.",
			Category:       entity.CategoryMilestone,
			Tier:           entity.TierGold,
			Requirement:    10,
			UnlockCriteria: achieve.NewCriteria(achieve.CriteriaTotalResets),
		},
		{
			Name:           "Habit Architect",
			Description:    "Complete twenty recovery activities.",
			Category:       entity.CategoryMilestone,
			Tier:           entity.TierSilver,
			Requirement:    20,
			UnlockCriteria: achieve.NewCriteria(achieve.CriteriaActivity),
		},
	}

	for i := range catalog {
		catalog[i].Base = entity.Base{ID: uuid.NewString()}
		catalog[i].IsActive = true
		if err := achievementRepo.Create(ctx, &catalog[i]); err != nil {
			return err
		}
	}

	return nil
}
