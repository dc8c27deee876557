package entity

import "github.com/renewed-app/backend/pkg/enum"

type AchievementCategory string

var (
	CategoryStreak    = enum.New(AchievementCategory("streak"))
	CategoryHealth    = enum.New(AchievementCategory("health"))
	CategorySocial    = enum.New(AchievementCategory("social"))
	CategoryMilestone = enum.New(AchievementCategory("milestone"))
)

type AchievementTier string

var (
	TierBronze    = enum.New(AchievementTier("bronze"))
	TierSilver    = enum.New(AchievementTier("silver"))
	TierGold      = enum.New(AchievementTier("gold"))
	TierPlatinum  = enum.New(AchievementTier("platinum"))
	TierDiamond   = enum.New(AchievementTier("diamond"))
	TierLegendary = enum.New(AchievementTier("legendary"))
)

// Achievement is the static unlock catalog. It is seeded by migration and
// readonly at runtime.
type Achievement struct {
	Base

	Name        string `gorm:"unique"`
	Description string
	Category    AchievementCategory
	Tier        AchievementTier

	// Requirement is the threshold the criteria progress value must reach.
	Requirement int

	// UnlockCriteria names the progress statistic, decoded by the criteria
	// checkers ({"type": "current_streak"} and friends).
	UnlockCriteria Map

	IsActive bool
}
