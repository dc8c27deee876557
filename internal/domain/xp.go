package domain

import (
	"context"
	"database/sql"
	"time"

	"github.com/renewed-app/backend/internal/entity"
	"github.com/renewed-app/backend/internal/model"
	"github.com/renewed-app/backend/internal/repository"
	"github.com/renewed-app/backend/pkg/dateutil"
	"github.com/renewed-app/backend/pkg/enum"
	"github.com/renewed-app/backend/pkg/errorx"
	"github.com/renewed-app/backend/pkg/xcontext"

	"github.com/google/uuid"
)

type XPDomain interface {
	Grant(context.Context, *model.GrantXPRequest) (*model.GrantXPResponse, error)
	GetStats(context.Context, *model.GetXPStatsRequest) (*model.GetXPStatsResponse, error)
}

type xpDomain struct {
	xpLogRepo repository.XPLogRepository
}

func NewXPDomain(xpLogRepo repository.XPLogRepository) *xpDomain {
	return &xpDomain{xpLogRepo: xpLogRepo}
}

// Level maps a lifetime total to a level. Levels are a pure projection of the
// ledger sum, never stored.
func Level(totalXP int64, step int) int {
	if step <= 0 {
		return 1
	}

	return int(totalXP)/step + 1
}

func (d *xpDomain) Grant(ctx context.Context, req *model.GrantXPRequest) (*model.GrantXPResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	activityType, err := enum.ToEnum[entity.ActivityType](req.ActivityType)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid activity type %s", req.ActivityType)
	}

	// Milestone entries are written by the achievement engine only.
	if activityType == entity.MilestoneReached {
		return nil, errorx.New(errorx.BadRequest, "Cannot grant %s directly", entity.MilestoneReached)
	}

	if req.Points <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Points must be positive")
	}

	day, err := requestDay(req.Date)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid date %s", req.Date)
	}

	log := &entity.XPLog{
		Base:         entity.Base{ID: uuid.NewString()},
		UserID:       userID,
		ActivityType: activityType,
		PointsEarned: req.Points,
		Description:  req.Description,
		OccurredAt:   time.Now(),
	}

	created := true
	if activityType.IsDailyCapped() {
		log.AwardDay = sql.NullString{String: dateutil.DayString(day), Valid: true}
		created, err = d.xpLogRepo.CreateOnce(ctx, log)
	} else {
		err = d.xpLogRepo.Create(ctx, log)
	}

	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create xp log: %v", err)
		return nil, errorx.Unknown
	}

	total, err := d.xpLogRepo.SumByUser(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot sum xp of user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GrantXPResponse{
		Created: created,
		TotalXP: total,
		Level:   Level(total, xcontext.Configs(ctx).Progression.LevelStep),
	}, nil
}

func (d *xpDomain) GetStats(
	ctx context.Context, req *model.GetXPStatsRequest,
) (*model.GetXPStatsResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	total, err := d.xpLogRepo.SumByUser(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot sum xp of user: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetXPStatsResponse{
		TotalXP: total,
		Level:   Level(total, xcontext.Configs(ctx).Progression.LevelStep),
	}

	apiCfg := xcontext.Configs(ctx).ApiServer
	limit := req.RecentLimit
	if limit == 0 {
		limit = apiCfg.DefaultLimit
	}

	if limit < 0 || limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Invalid limit %d", req.RecentLimit)
	}

	logs, err := d.xpLogRepo.GetRecentByUser(ctx, userID, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get recent xp logs: %v", err)
		return nil, errorx.Unknown
	}

	for _, log := range logs {
		resp.Recent = append(resp.Recent, model.XPEntry{
			ActivityType: string(log.ActivityType),
			PointsEarned: log.PointsEarned,
			Description:  log.Description,
			OccurredAt:   log.OccurredAt,
		})
	}

	return resp, nil
}
