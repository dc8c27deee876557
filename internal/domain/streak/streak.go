package streak

import (
	"database/sql"
	"time"

	"github.com/pkg/math"
	"github.com/renewed-app/backend/internal/entity"
	"github.com/renewed-app/backend/pkg/dateutil"
)

// Advance applies one check-in day to the streak state. It is the only place
// streak math happens; callers persist the returned state in the same
// transaction as the check-in that triggered it.
//
// Returns false if today does not begin a new check-in day (a same-day call
// is a safe no-op).
func Advance(progress *entity.UserProgress, today time.Time) bool {
	today = dateutil.Day(today)

	if !progress.LastCheckInDate.Valid {
		progress.CurrentStreak = 1
		progress.LongestStreak = math.MaxInt(progress.LongestStreak, 1)
		progress.StreakStartDate = sql.NullTime{Time: today, Valid: true}
		progress.LastCheckInDate = sql.NullTime{Time: today, Valid: true}
		return true
	}

	switch days := dateutil.DaysBetween(progress.LastCheckInDate.Time, today); {
	case days <= 0:
		// Same day, or a day already behind the recorded state. Never a
		// reset; the state only moves forward in time.
		return false

	case days == 1:
		progress.CurrentStreak++
		progress.LongestStreak = math.MaxInt(progress.LongestStreak, progress.CurrentStreak)

	default:
		// The gap broke the streak. LongestStreak is a permanent
		// high-water mark and stays untouched.
		progress.CurrentStreak = 1
		progress.TotalResets++
		progress.StreakStartDate = sql.NullTime{Time: today, Valid: true}
	}

	progress.LastCheckInDate = sql.NullTime{Time: today, Valid: true}
	return true
}
