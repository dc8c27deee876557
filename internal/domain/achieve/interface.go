package achieve

import "context"

// Criteria types the catalog can reference. Every type maps to a Checker; a
// catalog entry with an unknown type is treated as never satisfiable.
const (
	CriteriaCurrentStreak = "current_streak"
	CriteriaMoodLogDays   = "mood_log_days"
	CriteriaForumPosts    = "forum_posts"
	CriteriaTotalResets   = "total_resets"
	CriteriaActivity      = "activity"
)

type Checker interface {
	// CriteriaType returns the unlock-criteria type this checker serves.
	CriteriaType() string

	// Progress computes the user's current value for this statistic. The
	// engine compares it against each achievement's requirement.
	Progress(ctx context.Context, userID string) (int, error)
}
