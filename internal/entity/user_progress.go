package entity

import (
	"database/sql"
	"time"
)

// UserProgress is the per-user streak state. It is created together with the
// user account and only the streak calculator mutates it.
type UserProgress struct {
	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	CurrentStreak int
	LongestStreak int

	// StreakStartDate is the day the current streak began. Unset until the
	// first check-in and after a manual reset.
	StreakStartDate sql.NullTime
	LastCheckInDate sql.NullTime

	TotalResets int

	CreatedAt time.Time
	UpdatedAt time.Time
}
