package model

import "time"

type GrantXPRequest struct {
	ActivityType string `json:"activity_type"`
	Points       int    `json:"points"`
	Description  string `json:"description"`

	// Date defaults to today; it only matters for daily-capped types.
	Date string `json:"date"`
}

type GrantXPResponse struct {
	Created bool  `json:"created"`
	TotalXP int64 `json:"total_xp"`
	Level   int   `json:"level"`
}

type XPEntry struct {
	ActivityType string    `json:"activity_type"`
	PointsEarned int       `json:"points_earned"`
	Description  string    `json:"description,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type GetXPStatsRequest struct {
	RecentLimit int `form:"recent_limit"`
}

type GetXPStatsResponse struct {
	TotalXP int64     `json:"total_xp"`
	Level   int       `json:"level"`
	Recent  []XPEntry `json:"recent,omitempty"`
}
