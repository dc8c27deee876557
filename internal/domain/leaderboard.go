package domain

import (
	"context"
	"errors"
	"time"

	"github.com/puzpuzpuz/xsync"
	"github.com/renewed-app/backend/internal/common"
	"github.com/renewed-app/backend/internal/entity"
	"github.com/renewed-app/backend/internal/model"
	"github.com/renewed-app/backend/internal/repository"
	"github.com/renewed-app/backend/pkg/enum"
	"github.com/renewed-app/backend/pkg/errorx"
	"github.com/renewed-app/backend/pkg/xcontext"
	"github.com/renewed-app/backend/pkg/xredis"
)

type LeaderBoardDomain interface {
	GetLeaderBoard(context.Context, *model.GetLeaderBoardRequest) (*model.GetLeaderBoardResponse, error)
}

type cachedBoard struct {
	aggregates []entity.UserXPAggregate
	expiredAt  time.Time
}

type leaderBoardDomain struct {
	xpLogRepo    repository.XPLogRepository
	progressRepo repository.UserProgressRepository
	redisClient  xredis.Client

	memo *xsync.MapOf[string, cachedBoard]
}

// NewLeaderBoardDomain creates the leader board aggregator. The redis client
// is optional; without it the board is only memoized in process.
func NewLeaderBoardDomain(
	xpLogRepo repository.XPLogRepository,
	progressRepo repository.UserProgressRepository,
	redisClient xredis.Client,
) *leaderBoardDomain {
	return &leaderBoardDomain{
		xpLogRepo:    xpLogRepo,
		progressRepo: progressRepo,
		redisClient:  redisClient,
		memo:         xsync.NewMapOf[cachedBoard](),
	}
}

func (d *leaderBoardDomain) GetLeaderBoard(
	ctx context.Context, req *model.GetLeaderBoardRequest,
) (*model.GetLeaderBoardResponse, error) {
	rawRange := req.Range
	if rawRange == "" {
		rawRange = string(entity.LeaderBoardRangeAllTime)
	}

	ra, err := enum.ToEnum[entity.LeaderBoardRange](rawRange)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid range %s", req.Range)
	}

	period, err := entity.NewLeaderBoardPeriod(ra, time.Now())
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid range %s", req.Range)
	}

	pool, err := d.getPool(ctx, period)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot aggregate leader board: %v", err)
		return nil, errorx.Unknown
	}

	cfg := xcontext.Configs(ctx).Progression

	topSize := cfg.LeaderBoardTop
	if topSize > len(pool) {
		topSize = len(pool)
	}

	userIDs := make([]string, 0, topSize)
	for _, row := range pool[:topSize] {
		userIDs = append(userIDs, row.UserID)
	}

	streaks, err := d.streaksOf(ctx, userIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get progress of leaders: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetLeaderBoardResponse{}
	for i, row := range pool[:topSize] {
		entry, err := d.convertEntry(ctx, i+1, row, streaks[row.UserID])
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot build leader board entry: %v", err)
			return nil, errorx.Unknown
		}

		resp.Top = append(resp.Top, entry)
	}

	requesterEntry, err := d.requesterEntry(ctx, period, pool, topSize)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot build requester entry: %v", err)
		return nil, errorx.Unknown
	}

	resp.RequesterEntry = requesterEntry
	return resp, nil
}

// getPool returns the ranked candidate pool of a window, first from the
// in-process memo, then from redis, finally from the ledger.
func (d *leaderBoardDomain) getPool(
	ctx context.Context, period entity.LeaderBoardPeriod,
) ([]entity.UserXPAggregate, error) {
	cfg := xcontext.Configs(ctx).Progression
	if cfg.LeaderBoardCacheTTL <= 0 {
		return d.xpLogRepo.Aggregate(ctx, repository.LeaderBoardFilter{
			Since: period.Start(),
			Limit: cfg.LeaderBoardSize,
		})
	}

	if cached, ok := d.memo.Load(period.Period()); ok && time.Now().Before(cached.expiredAt) {
		return cached.aggregates, nil
	}

	key := "leaderboard/" + period.Period()
	if d.redisClient != nil {
		var pool []entity.UserXPAggregate
		err := d.redisClient.GetObj(ctx, key, &pool)
		if err == nil {
			d.memo.Store(period.Period(), cachedBoard{
				aggregates: pool,
				expiredAt:  time.Now().Add(cfg.LeaderBoardCacheTTL),
			})
			return pool, nil
		}

		if !errors.Is(err, xredis.ErrNil) {
			xcontext.Logger(ctx).Warnf("Cannot get leader board from redis: %v", err)
		}
	}

	pool, err := d.xpLogRepo.Aggregate(ctx, repository.LeaderBoardFilter{
		Since: period.Start(),
		Limit: cfg.LeaderBoardSize,
	})
	if err != nil {
		return nil, err
	}

	d.memo.Store(period.Period(), cachedBoard{
		aggregates: pool,
		expiredAt:  time.Now().Add(cfg.LeaderBoardCacheTTL),
	})

	if d.redisClient != nil {
		if err := d.redisClient.SetObj(ctx, key, pool, cfg.LeaderBoardCacheTTL); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot cache leader board to redis: %v", err)
		}
	}

	return pool, nil
}

func (d *leaderBoardDomain) streaksOf(ctx context.Context, userIDs []string) (map[string]int, error) {
	if len(userIDs) == 0 {
		return map[string]int{}, nil
	}

	rows, err := d.progressRepo.GetByUserIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	streaks := map[string]int{}
	for _, row := range rows {
		streaks[row.UserID] = row.CurrentStreak
	}

	return streaks, nil
}

func (d *leaderBoardDomain) convertEntry(
	ctx context.Context, rank int, row entity.UserXPAggregate, currentStreak int,
) (model.LeaderBoardEntry, error) {
	// Levels always reflect the lifetime total, whatever window the board
	// was summed over.
	lifetime, err := d.xpLogRepo.SumByUser(ctx, row.UserID)
	if err != nil {
		return model.LeaderBoardEntry{}, err
	}

	return model.LeaderBoardEntry{
		Rank:          rank,
		DisplayName:   common.Pseudonym(row.UserID),
		TotalPoints:   row.TotalPoints,
		CurrentStreak: currentStreak,
		Level:         Level(lifetime, xcontext.Configs(ctx).Progression.LevelStep),
	}, nil
}

// requesterEntry locates the requester when they did not make the displayed
// top. Outside the candidate pool the rank is derived from counting users
// with a strictly higher windowed total, so ties collapse onto the same rank.
func (d *leaderBoardDomain) requesterEntry(
	ctx context.Context, period entity.LeaderBoardPeriod, pool []entity.UserXPAggregate, topSize int,
) (*model.LeaderBoardEntry, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return nil, nil
	}

	for i, row := range pool {
		if row.UserID != userID {
			continue
		}

		if i < topSize {
			return nil, nil
		}

		streaks, err := d.streaksOf(ctx, []string{userID})
		if err != nil {
			return nil, err
		}

		entry, err := d.convertEntry(ctx, i+1, row, streaks[userID])
		if err != nil {
			return nil, err
		}

		return &entry, nil
	}

	points, err := d.xpLogRepo.SumByUserSince(ctx, userID, period.Start())
	if err != nil {
		return nil, err
	}

	if points == 0 {
		return nil, nil
	}

	above, err := d.xpLogRepo.CountUsersAbove(ctx, period.Start(), points)
	if err != nil {
		return nil, err
	}

	streaks, err := d.streaksOf(ctx, []string{userID})
	if err != nil {
		return nil, err
	}

	entry, err := d.convertEntry(ctx, int(above)+1, entity.UserXPAggregate{
		UserID:      userID,
		TotalPoints: points,
	}, streaks[userID])
	if err != nil {
		return nil, err
	}

	return &entry, nil
}
