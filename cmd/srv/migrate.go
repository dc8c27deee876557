package main

import (
	"fmt"

	"github.com/renewed-app/backend/migration"

	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(cctx *cli.Context) error {
	s.loadConfig(cctx)
	s.loadLogger()
	s.loadDatabase()

	if version := cctx.String("version"); version != "" {
		migrator, ok := migration.Migrators[version]
		if !ok {
			return fmt.Errorf("not found version %s", version)
		}

		return migrator(s.ctx)
	}

	if err := migration.Migrate(s.ctx); err != nil {
		return err
	}

	s.logger.Infof("Migration completed")
	return nil
}
