package migrations

import (
	_ "embed"

	"github.com/agglayer/cascadekit/db"
	"github.com/agglayer/cascadekit/db/types"
)

//go:embed journal0001.sql
var mig001 string

func RunMigrations(dbPath string) error {
	migrations := []types.Migration{
		{
			ID:  "journal0001",
			SQL: mig001,
		},
	}
	return db.RunMigrations(dbPath, migrations)
}
