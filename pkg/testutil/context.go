package testutil

import (
	"context"
	"time"

	"github.com/renewed-app/backend/config"
	"github.com/renewed-app/backend/migration"
	"github.com/renewed-app/backend/pkg/logger"
	"github.com/renewed-app/backend/pkg/xcontext"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// MockContext builds a context backed by an in-memory sqlite database with the
// schema migrated and the achievement catalog seeded. The leader board cache
// is disabled so tests observe ledger writes immediately.
func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	ctx = xcontext.WithDB(ctx, db)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	ctx = xcontext.WithConfigs(ctx, config.Configs{
		Env: "testing",
		ApiServer: config.ServerConfigs{
			DefaultLimit: 10,
			MaxLimit:     50,
		},
		Auth: config.AuthConfigs{
			TokenSecret:     "secret",
			TokenExpiration: time.Minute,
		},
		Progression: config.ProgressionConfigs{
			CheckInPoints:       10,
			LevelStep:           500,
			LeaderBoardSize:     100,
			LeaderBoardTop:      10,
			LeaderBoardCacheTTL: 0,
		},
	})

	if err := migration.Migrate(ctx); err != nil {
		panic(err)
	}

	return ctx
}
