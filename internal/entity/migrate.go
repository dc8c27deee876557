package entity

import (
	"context"

	"github.com/renewed-app/backend/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&User{},
		&UserProgress{},
		&DailyLog{},
		&XPLog{},
		&Achievement{},
		&UserAchievement{},
	)
}
