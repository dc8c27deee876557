package entity

import (
	"database/sql"
	"time"
)

const (
	MinRating        = 1
	MaxRating        = 10
	MaxUrgeIntensity = 10
)

// DailyLog is the check-in record. The composite primary key guarantees at
// most one entry per user per calendar day; a same-day resubmission updates
// the existing row.
type DailyLog struct {
	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	// Date is the calendar day in dateutil.DayFormat.
	Date string `gorm:"primaryKey"`

	MoodRating       sql.NullInt64
	EnergyRating     sql.NullInt64
	ConfidenceRating sql.NullInt64
	UrgeIntensity    sql.NullInt64

	Notes               string
	TriggerTags         Array[string]
	CompletedActivities Array[string]

	CreatedAt time.Time
	UpdatedAt time.Time
}
