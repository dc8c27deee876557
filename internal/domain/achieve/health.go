package achieve

import (
	"context"
	"time"

	"github.com/renewed-app/backend/internal/repository"
	"github.com/renewed-app/backend/pkg/dateutil"
)

// moodLogWindow bounds how far back consecutive mood logging is counted.
// One year covers every catalog requirement with room to spare.
const moodLogWindow = 366

// moodLogChecker measures how many consecutive calendar days, ending today or
// yesterday, the user recorded a mood rating. A run whose latest log is older
// than yesterday is already broken and counts as zero.
type moodLogChecker struct {
	dailyLogRepo repository.DailyLogRepository
}

func NewMoodLogChecker(dailyLogRepo repository.DailyLogRepository) *moodLogChecker {
	return &moodLogChecker{dailyLogRepo: dailyLogRepo}
}

func (*moodLogChecker) CriteriaType() string {
	return CriteriaMoodLogDays
}

func (c *moodLogChecker) Progress(ctx context.Context, userID string) (int, error) {
	logs, err := c.dailyLogRepo.GetRecent(ctx, userID, moodLogWindow)
	if err != nil {
		return 0, err
	}

	if len(logs) > 0 {
		latest, err := dateutil.ParseDay(logs[0].Date)
		if err != nil {
			return 0, err
		}

		if dateutil.DaysBetween(latest, dateutil.Day(time.Now())) > 1 {
			return 0, nil
		}
	}

	count := 0
	for i, log := range logs {
		if !log.MoodRating.Valid {
			break
		}

		if i > 0 {
			prev, err := dateutil.ParseDay(logs[i-1].Date)
			if err != nil {
				return 0, err
			}

			current, err := dateutil.ParseDay(log.Date)
			if err != nil {
				return 0, err
			}

			if dateutil.DaysBetween(current, prev) != 1 {
				break
			}
		}

		count++
	}

	return count, nil
}
