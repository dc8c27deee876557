package domain

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/renewed-app/backend/internal/common"
	"github.com/renewed-app/backend/internal/entity"
	"github.com/renewed-app/backend/internal/model"
	"github.com/renewed-app/backend/internal/repository"
	"github.com/renewed-app/backend/pkg/errorx"
	"github.com/renewed-app/backend/pkg/testutil"
	"github.com/renewed-app/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newTestLeaderBoardDomain() LeaderBoardDomain {
	return NewLeaderBoardDomain(
		repository.NewXPLogRepository(),
		repository.NewUserProgressRepository(),
		nil,
	)
}

func insertXPLog(t *testing.T, ctx context.Context, userID string, points int, occurredAt time.Time) {
	t.Helper()
	err := repository.NewXPLogRepository().Create(ctx, &entity.XPLog{
		Base:         entity.Base{ID: uuid.NewString()},
		UserID:       userID,
		ActivityType: entity.ForumPost,
		AwardDay:     sql.NullString{},
		PointsEarned: points,
		OccurredAt:   occurredAt,
	})
	require.NoError(t, err)
}

func Test_leaderBoardDomain_WeeklyWindow(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)

	leaderBoardDomain := newTestLeaderBoardDomain()

	now := time.Now()
	insertXPLog(t, ctx, testutil.User1.ID, 100, now.AddDate(0, 0, -2))
	insertXPLog(t, ctx, testutil.User2.ID, 100, now.AddDate(0, 0, -8))
	insertXPLog(t, ctx, testutil.User2.ID, 5, now.AddDate(0, 0, -1))

	// The eight-day-old award falls outside the window; yesterday counts.
	resp, err := leaderBoardDomain.GetLeaderBoard(ctx, &model.GetLeaderBoardRequest{Range: "weekly"})
	require.NoError(t, err)
	require.Len(t, resp.Top, 2)
	require.Equal(t, 1, resp.Top[0].Rank)
	require.Equal(t, common.Pseudonym(testutil.User1.ID), resp.Top[0].DisplayName)
	require.EqualValues(t, 100, resp.Top[0].TotalPoints)
	require.EqualValues(t, 5, resp.Top[1].TotalPoints)

	resp, err = leaderBoardDomain.GetLeaderBoard(ctx, &model.GetLeaderBoardRequest{Range: "all_time"})
	require.NoError(t, err)
	require.Len(t, resp.Top, 2)
	require.Equal(t, common.Pseudonym(testutil.User2.ID), resp.Top[0].DisplayName)
	require.EqualValues(t, 105, resp.Top[0].TotalPoints)
	require.Nil(t, resp.RequesterEntry)
}

func Test_leaderBoardDomain_TieBreak(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)

	leaderBoardDomain := newTestLeaderBoardDomain()

	now := time.Now()
	insertXPLog(t, ctx, testutil.User2.ID, 50, now.Add(-2*time.Hour))
	insertXPLog(t, ctx, testutil.User1.ID, 50, now.Add(-1*time.Hour))

	// Equal totals rank by who earned theirs first.
	resp, err := leaderBoardDomain.GetLeaderBoard(ctx, &model.GetLeaderBoardRequest{Range: "all_time"})
	require.NoError(t, err)
	require.Len(t, resp.Top, 2)
	require.Equal(t, common.Pseudonym(testutil.User2.ID), resp.Top[0].DisplayName)
	require.Equal(t, common.Pseudonym(testutil.User1.ID), resp.Top[1].DisplayName)
}

func Test_leaderBoardDomain_RequesterOutsideTop(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)

	cfg := xcontext.Configs(ctx)
	cfg.Progression.LeaderBoardTop = 1
	ctx = xcontext.WithConfigs(ctx, cfg)

	leaderBoardDomain := newTestLeaderBoardDomain()

	now := time.Now()
	insertXPLog(t, ctx, testutil.User2.ID, 105, now.Add(-2*time.Hour))
	insertXPLog(t, ctx, testutil.User1.ID, 100, now.Add(-1*time.Hour))

	resp, err := leaderBoardDomain.GetLeaderBoard(ctx, &model.GetLeaderBoardRequest{Range: "all_time"})
	require.NoError(t, err)
	require.Len(t, resp.Top, 1)
	require.NotNil(t, resp.RequesterEntry)
	require.Equal(t, 2, resp.RequesterEntry.Rank)
	require.EqualValues(t, 100, resp.RequesterEntry.TotalPoints)
	require.Equal(t, common.Pseudonym(testutil.User1.ID), resp.RequesterEntry.DisplayName)
}

func Test_leaderBoardDomain_RequesterOutsidePool(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)

	cfg := xcontext.Configs(ctx)
	cfg.Progression.LeaderBoardSize = 1
	cfg.Progression.LeaderBoardTop = 1
	ctx = xcontext.WithConfigs(ctx, cfg)

	leaderBoardDomain := newTestLeaderBoardDomain()

	now := time.Now()
	insertXPLog(t, ctx, testutil.User2.ID, 105, now.Add(-2*time.Hour))
	insertXPLog(t, ctx, testutil.User1.ID, 100, now.Add(-1*time.Hour))

	// The requester is not even in the candidate pool; the rank is derived
	// from counting strictly higher totals.
	resp, err := leaderBoardDomain.GetLeaderBoard(ctx, &model.GetLeaderBoardRequest{Range: "all_time"})
	require.NoError(t, err)
	require.Len(t, resp.Top, 1)
	require.NotNil(t, resp.RequesterEntry)
	require.Equal(t, 2, resp.RequesterEntry.Rank)
	require.EqualValues(t, 100, resp.RequesterEntry.TotalPoints)
}

func Test_leaderBoardDomain_InvalidRange(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)

	leaderBoardDomain := newTestLeaderBoardDomain()

	_, err := leaderBoardDomain.GetLeaderBoard(ctx, &model.GetLeaderBoardRequest{Range: "daily"})
	requireErrorCode(t, err, errorx.BadRequest)
}

func Test_leaderBoardDomain_CurrentStreakShown(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)

	checkInDomain := newTestCheckInDomain()
	leaderBoardDomain := newTestLeaderBoardDomain()

	for _, date := range []string{"2025-03-01", "2025-03-02", "2025-03-03"} {
		_, err := checkInDomain.RecordCheckIn(ctx, &model.RecordCheckInRequest{Date: date})
		require.NoError(t, err)
	}

	resp, err := leaderBoardDomain.GetLeaderBoard(ctx, &model.GetLeaderBoardRequest{Range: "all_time"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Top)
	require.Equal(t, common.Pseudonym(testutil.User1.ID), resp.Top[0].DisplayName)
	require.Equal(t, 3, resp.Top[0].CurrentStreak)
}
