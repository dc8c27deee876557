package achieve_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/renewed-app/backend/internal/domain/achieve"
	"github.com/renewed-app/backend/internal/entity"
	"github.com/renewed-app/backend/internal/repository"
	"github.com/renewed-app/backend/pkg/dateutil"
	"github.com/renewed-app/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func moodLog(userID string, daysAgo int, mood sql.NullInt64) *entity.DailyLog {
	return &entity.DailyLog{
		UserID:     userID,
		Date:       dateutil.DayString(time.Now().AddDate(0, 0, -daysAgo)),
		MoodRating: mood,
	}
}

func Test_moodLogChecker_Progress(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	dailyLogRepo := repository.NewDailyLogRepository()
	checker := achieve.NewMoodLogChecker(dailyLogRepo)

	value, err := checker.Progress(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, 0, value)

	// Three consecutive days with a mood ending today, one older day without.
	logs := []*entity.DailyLog{
		moodLog(testutil.User1.ID, 4, sql.NullInt64{}),
		moodLog(testutil.User1.ID, 2, sql.NullInt64{Int64: 6, Valid: true}),
		moodLog(testutil.User1.ID, 1, sql.NullInt64{Int64: 7, Valid: true}),
		moodLog(testutil.User1.ID, 0, sql.NullInt64{Int64: 5, Valid: true}),
	}
	for _, log := range logs {
		_, err := dailyLogRepo.Upsert(ctx, log)
		require.NoError(t, err)
	}

	value, err = checker.Progress(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, 3, value)

	// A day without a mood rating ends the run even if older logs have one.
	_, err = dailyLogRepo.Upsert(ctx, moodLog(testutil.User2.ID, 1, sql.NullInt64{Int64: 8, Valid: true}))
	require.NoError(t, err)
	_, err = dailyLogRepo.Upsert(ctx, moodLog(testutil.User2.ID, 0, sql.NullInt64{}))
	require.NoError(t, err)

	value, err = checker.Progress(ctx, testutil.User2.ID)
	require.NoError(t, err)
	require.Equal(t, 0, value)
}

func Test_moodLogChecker_StaleRunIsBroken(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	dailyLogRepo := repository.NewDailyLogRepository()
	checker := achieve.NewMoodLogChecker(dailyLogRepo)

	// A perfect run that ended ten days ago is not a live run.
	for daysAgo := 12; daysAgo >= 10; daysAgo-- {
		_, err := dailyLogRepo.Upsert(ctx,
			moodLog(testutil.User1.ID, daysAgo, sql.NullInt64{Int64: 6, Valid: true}))
		require.NoError(t, err)
	}

	value, err := checker.Progress(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, 0, value)

	// A run whose latest log is yesterday still counts; the day is not over.
	for daysAgo := 2; daysAgo >= 1; daysAgo-- {
		_, err := dailyLogRepo.Upsert(ctx,
			moodLog(testutil.User2.ID, daysAgo, sql.NullInt64{Int64: 6, Valid: true}))
		require.NoError(t, err)
	}

	value, err = checker.Progress(ctx, testutil.User2.ID)
	require.NoError(t, err)
	require.Equal(t, 2, value)
}
