package migrations

import (
	_ "embed"

	"github.com/0xPolygon/lockbridge/db"
	"github.com/0xPolygon/lockbridge/db/types"
)

//go:embed bridge0001.sql
var mig001 string

// Migrations creates the bridge record, the processed nonce set and the event log
var Migrations = []types.Migration{
	{
		ID:  "bridge0001",
		SQL: mig001,
	},
}

// RunMigrations runs the bridge migrations followed by the ones of the collaborators
// sharing the same database (typically the ledger)
func RunMigrations(dbPath string, extra ...types.Migration) error {
	migrations := make([]types.Migration, 0, len(Migrations)+len(extra))
	migrations = append(migrations, Migrations...)
	migrations = append(migrations, extra...)
	return db.RunMigrations(dbPath, migrations)
}
