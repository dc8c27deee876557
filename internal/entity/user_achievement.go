package entity

import "time"

// UserAchievement records an unlock. The composite primary key is the
// concurrency guard: a user can unlock a given achievement at most once, and
// the loser of a concurrent evaluation observes a conflict instead of a
// second row.
type UserAchievement struct {
	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	AchievementID string      `gorm:"primaryKey"`
	Achievement   Achievement `gorm:"foreignKey:AchievementID"`

	UnlockedAt  time.Time
	WasNotified bool
}
