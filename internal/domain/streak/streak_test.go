package streak_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/renewed-app/backend/internal/domain/streak"
	"github.com/renewed-app/backend/internal/entity"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}

	return t
}

func TestAdvanceFirstCheckIn(t *testing.T) {
	progress := &entity.UserProgress{UserID: "user1"}

	require.True(t, streak.Advance(progress, day("2023-05-01")))
	require.Equal(t, 1, progress.CurrentStreak)
	require.Equal(t, 1, progress.LongestStreak)
	require.Equal(t, 0, progress.TotalResets)
	require.Equal(t, day("2023-05-01"), progress.StreakStartDate.Time)
	require.Equal(t, day("2023-05-01"), progress.LastCheckInDate.Time)
}

func TestAdvanceSameDayIsNoop(t *testing.T) {
	progress := &entity.UserProgress{
		UserID:          "user1",
		CurrentStreak:   3,
		LongestStreak:   5,
		LastCheckInDate: sql.NullTime{Time: day("2023-05-01"), Valid: true},
	}

	require.False(t, streak.Advance(progress, day("2023-05-01")))
	require.Equal(t, 3, progress.CurrentStreak)
	require.Equal(t, 5, progress.LongestStreak)
}

func TestAdvanceEarlierDayIsNoop(t *testing.T) {
	progress := &entity.UserProgress{
		UserID:          "user1",
		CurrentStreak:   3,
		LongestStreak:   5,
		LastCheckInDate: sql.NullTime{Time: day("2023-05-10"), Valid: true},
	}

	require.False(t, streak.Advance(progress, day("2023-05-07")))
	require.Equal(t, 3, progress.CurrentStreak)
	require.Equal(t, 5, progress.LongestStreak)
	require.Equal(t, 0, progress.TotalResets)
	require.Equal(t, day("2023-05-10"), progress.LastCheckInDate.Time)
}

func TestAdvanceConsecutiveDay(t *testing.T) {
	progress := &entity.UserProgress{
		UserID:          "user1",
		CurrentStreak:   5,
		LongestStreak:   5,
		LastCheckInDate: sql.NullTime{Time: day("2023-05-01"), Valid: true},
	}

	require.True(t, streak.Advance(progress, day("2023-05-02")))
	require.Equal(t, 6, progress.CurrentStreak)
	require.Equal(t, 6, progress.LongestStreak)
	require.Equal(t, 0, progress.TotalResets)
}

func TestAdvanceConsecutiveDayKeepsHigherLongest(t *testing.T) {
	progress := &entity.UserProgress{
		UserID:          "user1",
		CurrentStreak:   2,
		LongestStreak:   9,
		LastCheckInDate: sql.NullTime{Time: day("2023-05-01"), Valid: true},
	}

	require.True(t, streak.Advance(progress, day("2023-05-02")))
	require.Equal(t, 3, progress.CurrentStreak)
	require.Equal(t, 9, progress.LongestStreak)
}

func TestAdvanceGapResetsButPreservesRecord(t *testing.T) {
	progress := &entity.UserProgress{
		UserID:          "user1",
		CurrentStreak:   10,
		LongestStreak:   10,
		StreakStartDate: sql.NullTime{Time: day("2023-04-22"), Valid: true},
		LastCheckInDate: sql.NullTime{Time: day("2023-05-01"), Valid: true},
	}

	require.True(t, streak.Advance(progress, day("2023-05-06")))
	require.Equal(t, 1, progress.CurrentStreak)
	require.Equal(t, 10, progress.LongestStreak)
	require.Equal(t, 1, progress.TotalResets)
	require.Equal(t, day("2023-05-06"), progress.StreakStartDate.Time)
	require.Equal(t, day("2023-05-06"), progress.LastCheckInDate.Time)
}

func TestAdvanceIgnoresTimeOfDay(t *testing.T) {
	progress := &entity.UserProgress{
		UserID:          "user1",
		CurrentStreak:   1,
		LongestStreak:   1,
		LastCheckInDate: sql.NullTime{Time: day("2023-05-01"), Valid: true},
	}

	lateEvening := time.Date(2023, 5, 2, 23, 59, 0, 0, time.UTC)
	require.True(t, streak.Advance(progress, lateEvening))
	require.Equal(t, 2, progress.CurrentStreak)
	require.Equal(t, day("2023-05-02"), progress.LastCheckInDate.Time)
}
