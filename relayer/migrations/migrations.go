package migrations

import (
	_ "embed"

	"github.com/0xPolygon/lockbridge/db"
	"github.com/0xPolygon/lockbridge/db/types"
)

//go:embed relayer0001.sql
var mig001 string

func RunMigrations(dbPath string) error {
	migrations := []types.Migration{
		{
			ID:  "relayer0001",
			SQL: mig001,
		},
	}
	return db.RunMigrations(dbPath, migrations)
}
