package migration

import (
	"context"

	"github.com/renewed-app/backend/internal/entity"
)

// Migrate creates the schema and applies every data migration in order. Each
// step is idempotent, so re-running on an already migrated database is safe.
func Migrate(ctx context.Context) error {
	if err := entity.MigrateTable(ctx); err != nil {
		return err
	}

	for _, m := range migrators {
		if err := m(ctx); err != nil {
			return err
		}
	}

	return nil
}

var migrators = []func(context.Context) error{
	migrate0001,
}

// Migrators allows running a single data migration by version.
var Migrators = map[string]func(context.Context) error{
	"0001": migrate0001,
}
