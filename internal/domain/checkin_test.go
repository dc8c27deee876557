package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/renewed-app/backend/internal/domain/achieve"
	"github.com/renewed-app/backend/internal/model"
	"github.com/renewed-app/backend/internal/repository"
	"github.com/renewed-app/backend/pkg/dateutil"
	"github.com/renewed-app/backend/pkg/errorx"
	"github.com/renewed-app/backend/pkg/testutil"
	"github.com/renewed-app/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *achieve.Engine {
	progressRepo := repository.NewUserProgressRepository()
	dailyLogRepo := repository.NewDailyLogRepository()
	xpLogRepo := repository.NewXPLogRepository()

	return achieve.NewEngine(
		repository.NewAchievementRepository(),
		repository.NewUserAchievementRepository(),
		xpLogRepo,
		achieve.NewStreakChecker(progressRepo),
		achieve.NewMoodLogChecker(dailyLogRepo),
		achieve.NewForumPostChecker(xpLogRepo),
		achieve.NewResetChecker(progressRepo),
		achieve.NewActivityChecker(),
	)
}

func newTestCheckInDomain() CheckInDomain {
	return NewCheckInDomain(
		repository.NewDailyLogRepository(),
		repository.NewUserProgressRepository(),
		repository.NewXPLogRepository(),
		newTestEngine(),
	)
}

func requireErrorCode(t *testing.T, err error, code errorx.Code) {
	t.Helper()
	require.Error(t, err)

	var errx errorx.Error
	require.True(t, errors.As(err, &errx))
	require.Equal(t, code, errx.Code)
}

func Test_checkInDomain_RecordCheckIn_SameDayTwice(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)

	checkInDomain := newTestCheckInDomain()

	mood := 7
	resp, err := checkInDomain.RecordCheckIn(ctx, &model.RecordCheckInRequest{
		Date:       "2025-03-01",
		MoodRating: &mood,
		Notes:      "first note",
	})
	require.NoError(t, err)
	require.True(t, resp.WasNew)
	require.Equal(t, 10, resp.XPAwarded)
	require.Equal(t, 1, resp.Progress.CurrentStreak)
	require.Equal(t, 1, resp.Progress.LongestStreak)
	require.Equal(t, "2025-03-01", resp.Progress.StreakStartDate)

	unlockedNames := []string{}
	for _, u := range resp.UnlockedAchievements {
		unlockedNames = append(unlockedNames, u.Achievement.Name)
	}
	require.Contains(t, unlockedNames, "First Step")

	// The same day again only merges the log, nothing else moves.
	energy := 5
	resp, err = checkInDomain.RecordCheckIn(ctx, &model.RecordCheckInRequest{
		Date:         "2025-03-01",
		EnergyRating: &energy,
		Notes:        "second note",
	})
	require.NoError(t, err)
	require.False(t, resp.WasNew)
	require.Equal(t, 0, resp.XPAwarded)
	require.Empty(t, resp.UnlockedAchievements)
	require.Equal(t, 1, resp.Progress.CurrentStreak)
	require.Equal(t, "second note", resp.Entry.Notes)
	require.NotNil(t, resp.Entry.MoodRating)
	require.Equal(t, 7, *resp.Entry.MoodRating)
	require.NotNil(t, resp.Entry.EnergyRating)
	require.Equal(t, 5, *resp.Entry.EnergyRating)

	// First Step bonus (50) plus a single daily check-in award (10).
	total, err := repository.NewXPLogRepository().SumByUser(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.EqualValues(t, 60, total)
}

func Test_checkInDomain_RecordCheckIn_ConsecutiveAndGap(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)

	checkInDomain := newTestCheckInDomain()

	for _, date := range []string{"2025-03-01", "2025-03-02"} {
		_, err := checkInDomain.RecordCheckIn(ctx, &model.RecordCheckInRequest{Date: date})
		require.NoError(t, err)
	}

	resp, err := checkInDomain.GetProgress(ctx, &model.GetProgressRequest{})
	require.NoError(t, err)
	require.Equal(t, 2, resp.Progress.CurrentStreak)
	require.Equal(t, 2, resp.Progress.LongestStreak)
	require.Equal(t, 0, resp.Progress.TotalResets)

	// A missed day restarts the streak but keeps the record.
	checkInResp, err := checkInDomain.RecordCheckIn(ctx, &model.RecordCheckInRequest{Date: "2025-03-05"})
	require.NoError(t, err)
	require.Equal(t, 1, checkInResp.Progress.CurrentStreak)
	require.Equal(t, 2, checkInResp.Progress.LongestStreak)
	require.Equal(t, 1, checkInResp.Progress.TotalResets)
	require.Equal(t, "2025-03-05", checkInResp.Progress.StreakStartDate)
}

func Test_checkInDomain_RecordCheckIn_WeekWarrior(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)

	checkInDomain := newTestCheckInDomain()

	dates := []string{
		"2025-03-01", "2025-03-02", "2025-03-03", "2025-03-04",
		"2025-03-05", "2025-03-06", "2025-03-07",
	}

	weekWarriorUnlocks := 0
	for _, date := range dates {
		resp, err := checkInDomain.RecordCheckIn(ctx, &model.RecordCheckInRequest{Date: date})
		require.NoError(t, err)

		for _, u := range resp.UnlockedAchievements {
			if u.Achievement.Name == "Week Warrior" {
				weekWarriorUnlocks++
				require.Equal(t, 50, u.XPEarned)
			}
		}
	}

	require.Equal(t, 1, weekWarriorUnlocks)

	resp, err := checkInDomain.GetProgress(ctx, &model.GetProgressRequest{})
	require.NoError(t, err)
	require.Equal(t, 7, resp.Progress.CurrentStreak)
}

func Test_checkInDomain_RecordCheckIn_Validation(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)

	checkInDomain := newTestCheckInDomain()

	tooHigh := 11
	_, err := checkInDomain.RecordCheckIn(ctx, &model.RecordCheckInRequest{MoodRating: &tooHigh})
	requireErrorCode(t, err, errorx.BadRequest)

	negative := -1
	_, err = checkInDomain.RecordCheckIn(ctx, &model.RecordCheckInRequest{UrgeIntensity: &negative})
	requireErrorCode(t, err, errorx.BadRequest)

	_, err = checkInDomain.RecordCheckIn(ctx, &model.RecordCheckInRequest{Date: "03/01/2025"})
	requireErrorCode(t, err, errorx.BadRequest)
}

func Test_checkInDomain_RecordCheckIn_FutureDateRejected(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)

	checkInDomain := newTestCheckInDomain()

	tomorrow := dateutil.DayString(time.Now().AddDate(0, 0, 1))
	_, err := checkInDomain.RecordCheckIn(ctx, &model.RecordCheckInRequest{Date: tomorrow})
	requireErrorCode(t, err, errorx.BadRequest)

	// The rejection leaves no trace; checking in today works as a first day.
	resp, err := checkInDomain.RecordCheckIn(ctx, &model.RecordCheckInRequest{})
	require.NoError(t, err)
	require.True(t, resp.WasNew)
	require.Equal(t, 1, resp.Progress.CurrentStreak)
	require.Equal(t, 0, resp.Progress.TotalResets)
}

func Test_checkInDomain_GetDailyLog_NotFound(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)

	checkInDomain := newTestCheckInDomain()

	_, err := checkInDomain.GetDailyLog(ctx, &model.GetDailyLogRequest{Date: "2025-03-01"})
	requireErrorCode(t, err, errorx.NotFound)
}

func Test_checkInDomain_ResetStreak(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)

	checkInDomain := newTestCheckInDomain()

	for _, date := range []string{"2025-03-01", "2025-03-02"} {
		_, err := checkInDomain.RecordCheckIn(ctx, &model.RecordCheckInRequest{Date: date})
		require.NoError(t, err)
	}

	resp, err := checkInDomain.ResetStreak(ctx, &model.ResetStreakRequest{})
	require.NoError(t, err)
	require.Equal(t, 0, resp.Progress.CurrentStreak)
	require.Equal(t, 2, resp.Progress.LongestStreak)
	require.Equal(t, 1, resp.Progress.TotalResets)
	require.Empty(t, resp.Progress.StreakStartDate)
}

// The progress row is provisioned with the account; an authenticated user
// without one is a server-side defect, never a client error.
func Test_checkInDomain_RecordCheckIn_NoProgressRow(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	ctx = xcontext.WithRequestUserID(ctx, "ghost-user")

	checkInDomain := newTestCheckInDomain()

	_, err := checkInDomain.RecordCheckIn(ctx, &model.RecordCheckInRequest{Date: "2025-03-01"})
	require.ErrorIs(t, err, errorx.Unknown)
}
