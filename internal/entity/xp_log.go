package entity

import (
	"database/sql"
	"time"

	"github.com/renewed-app/backend/pkg/enum"
)

type ActivityType string

var (
	DailyCheckIn     = enum.New(ActivityType("daily_check_in"))
	UrgeOvercome     = enum.New(ActivityType("urge_overcome"))
	ForumPost        = enum.New(ActivityType("forum_post"))
	ForumComment     = enum.New(ActivityType("forum_comment"))
	MilestoneReached = enum.New(ActivityType("milestone_reached"))
	HealthLog        = enum.New(ActivityType("health_log"))
)

// IsDailyCapped reports whether at most one award per user per calendar day
// is allowed for this activity type.
func (t ActivityType) IsDailyCapped() bool {
	switch t {
	case DailyCheckIn, HealthLog:
		return true
	default:
		return false
	}
}

// XPLog is the append-only experience ledger. Rows are never mutated or
// deleted; the user's total is always the sum of their rows. For daily-capped
// activity types, AwardDay joins the unique index and turns a duplicate award
// into a conflict; uncapped awards leave it NULL, which never conflicts.
type XPLog struct {
	Base

	UserID string `gorm:"uniqueIndex:idx_xp_logs_daily_cap"`
	User   User   `gorm:"foreignKey:UserID"`

	ActivityType ActivityType   `gorm:"uniqueIndex:idx_xp_logs_daily_cap"`
	AwardDay     sql.NullString `gorm:"uniqueIndex:idx_xp_logs_daily_cap"`

	PointsEarned int
	Description  string
	OccurredAt   time.Time `gorm:"index"`
}
