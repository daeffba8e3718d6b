package migrations

import (
	_ "embed"

	"github.com/0xPolygon/lockbridge/db"
	"github.com/0xPolygon/lockbridge/db/types"
)

//go:embed ledger0001.sql
var mig001 string

// Migrations creates the balance and supply tables
var Migrations = []types.Migration{
	{
		ID:  "ledger0001",
		SQL: mig001,
	},
}

func RunMigrations(dbPath string) error {
	return db.RunMigrations(dbPath, Migrations)
}
