package model

import "time"

type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	Tier        string `json:"tier"`
	Requirement int    `json:"requirement"`
}

type UserAchievement struct {
	Achievement Achievement `json:"achievement"`
	UnlockedAt  time.Time   `json:"unlocked_at"`
	WasNotified bool        `json:"was_notified"`
}

type UnlockedAchievement struct {
	Achievement Achievement `json:"achievement"`
	XPEarned    int         `json:"xp_earned"`
}

type EvaluateAchievementsRequest struct{}

type EvaluateAchievementsResponse struct {
	Unlocked []UnlockedAchievement `json:"unlocked"`
}

type GetAchievementCatalogRequest struct{}

type GetAchievementCatalogResponse struct {
	Achievements []Achievement `json:"achievements"`
}

type GetMyAchievementsRequest struct{}

type GetMyAchievementsResponse struct {
	Achievements []UserAchievement `json:"achievements"`
}
