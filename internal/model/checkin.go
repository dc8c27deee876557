package model

type DailyLog struct {
	Date                string   `json:"date"`
	MoodRating          *int     `json:"mood_rating,omitempty"`
	EnergyRating        *int     `json:"energy_rating,omitempty"`
	ConfidenceRating    *int     `json:"confidence_rating,omitempty"`
	UrgeIntensity       *int     `json:"urge_intensity,omitempty"`
	Notes               string   `json:"notes,omitempty"`
	TriggerTags         []string `json:"trigger_tags,omitempty"`
	CompletedActivities []string `json:"completed_activities,omitempty"`
}

type Progress struct {
	CurrentStreak   int    `json:"current_streak"`
	LongestStreak   int    `json:"longest_streak"`
	StreakStartDate string `json:"streak_start_date,omitempty"`
	LastCheckInDate string `json:"last_check_in_date,omitempty"`
	TotalResets     int    `json:"total_resets"`
}

type RecordCheckInRequest struct {
	// Date defaults to today (UTC day boundary) when empty.
	Date                string   `json:"date"`
	MoodRating          *int     `json:"mood_rating"`
	EnergyRating        *int     `json:"energy_rating"`
	ConfidenceRating    *int     `json:"confidence_rating"`
	UrgeIntensity       *int     `json:"urge_intensity"`
	Notes               string   `json:"notes"`
	TriggerTags         []string `json:"trigger_tags"`
	CompletedActivities []string `json:"completed_activities"`
}

type RecordCheckInResponse struct {
	Entry  DailyLog `json:"entry"`
	WasNew bool     `json:"was_new"`

	Progress             Progress              `json:"progress"`
	XPAwarded            int                   `json:"xp_awarded"`
	UnlockedAchievements []UnlockedAchievement `json:"unlocked_achievements"`
}

type GetDailyLogRequest struct {
	Date string `form:"date"`
}

type GetDailyLogResponse struct {
	Entry DailyLog `json:"entry"`
}

type GetProgressRequest struct{}

type GetProgressResponse struct {
	Progress Progress `json:"progress"`
}

type ResetStreakRequest struct{}

type ResetStreakResponse struct {
	Progress Progress `json:"progress"`
}
