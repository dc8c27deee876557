package model

type GetLeaderBoardRequest struct {
	Range string `form:"range"`
}

type LeaderBoardEntry struct {
	Rank          int    `json:"rank"`
	DisplayName   string `json:"display_name"`
	TotalPoints   int64  `json:"total_points"`
	CurrentStreak int    `json:"current_streak"`
	Level         int    `json:"level"`
}

type GetLeaderBoardResponse struct {
	Top []LeaderBoardEntry `json:"top"`

	// RequesterEntry is only set when the requester has points but did not
	// make the top list.
	RequesterEntry *LeaderBoardEntry `json:"requester_entry,omitempty"`
}
