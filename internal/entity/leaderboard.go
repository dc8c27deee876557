package entity

import (
	"fmt"
	"time"

	"github.com/renewed-app/backend/pkg/dateutil"
	"github.com/renewed-app/backend/pkg/enum"
)

type LeaderBoardRange string

var (
	LeaderBoardRangeWeekly  = enum.New(LeaderBoardRange("weekly"))
	LeaderBoardRangeMonthly = enum.New(LeaderBoardRange("monthly"))
	LeaderBoardRangeAllTime = enum.New(LeaderBoardRange("all_time"))
)

// LeaderBoardPeriod is a concrete time window the ledger is summed over.
// Windows are rolling (the last 7 or 30 days including today) so yesterday's
// award always counts toward the weekly board. Period identifies the window
// for caching; the zero Start of the all-time period means "unfiltered".
type LeaderBoardPeriod interface {
	Period() string
	Start() time.Time
}

type LeaderBoardPeriodWeek struct {
	current time.Time
}

func NewLeaderBoardPeriodWeek(current time.Time) LeaderBoardPeriodWeek {
	return LeaderBoardPeriodWeek{current: current}
}

func (p LeaderBoardPeriodWeek) Period() string {
	return fmt.Sprintf("weekly/%s", dateutil.DayString(p.current))
}

func (p LeaderBoardPeriodWeek) Start() time.Time {
	return dateutil.Day(p.current).AddDate(0, 0, -6)
}

type LeaderBoardPeriodMonth struct {
	current time.Time
}

func NewLeaderBoardPeriodMonth(current time.Time) LeaderBoardPeriodMonth {
	return LeaderBoardPeriodMonth{current: current}
}

func (p LeaderBoardPeriodMonth) Period() string {
	return fmt.Sprintf("monthly/%s", dateutil.DayString(p.current))
}

func (p LeaderBoardPeriodMonth) Start() time.Time {
	return dateutil.Day(p.current).AddDate(0, 0, -29)
}

type LeaderBoardPeriodAllTime struct{}

func NewLeaderBoardPeriodAllTime() LeaderBoardPeriodAllTime {
	return LeaderBoardPeriodAllTime{}
}

func (p LeaderBoardPeriodAllTime) Period() string {
	return "all_time"
}

func (p LeaderBoardPeriodAllTime) Start() time.Time {
	return time.Time{}
}

func NewLeaderBoardPeriod(ra LeaderBoardRange, current time.Time) (LeaderBoardPeriod, error) {
	switch ra {
	case LeaderBoardRangeWeekly:
		return NewLeaderBoardPeriodWeek(current), nil
	case LeaderBoardRangeMonthly:
		return NewLeaderBoardPeriodMonth(current), nil
	case LeaderBoardRangeAllTime:
		return NewLeaderBoardPeriodAllTime(), nil
	default:
		return nil, fmt.Errorf("leader board range must be weekly, monthly, all_time, but got %s", ra)
	}
}

// UserXPAggregate is one grouped row of the windowed ledger sum. Rows arrive
// ranked: highest total first, ties broken by whose qualifying entry came
// earlier.
type UserXPAggregate struct {
	UserID      string
	TotalPoints int64
}
