package db

import (
	"context"
	"database/sql"
	"errors"
	"math/big"
	"path"
	"testing"

	"github.com/0xPolygon/lockbridge/db/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/russross/meddler"
	"github.com/stretchr/testify/require"
)

const testMigration = `
-- +migrate Down
DROP TABLE IF EXISTS /*dbprefix*/item;

-- +migrate Up
CREATE TABLE /*dbprefix*/item (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	name    TEXT NOT NULL UNIQUE,
	amount  TEXT NOT NULL,
	owner   VARCHAR NOT NULL,
	digest  VARCHAR NOT NULL
);
`

type item struct {
	ID     int64          `meddler:"id,pk"`
	Name   string         `meddler:"name"`
	Amount *big.Int       `meddler:"amount,bigint"`
	Owner  common.Address `meddler:"owner,address"`
	Digest common.Hash    `meddler:"digest,hash"`
}

func newTestDB(t *testing.T) *Tx {
	t.Helper()
	dbPath := path.Join(t.TempDir(), "db_test.sqlite")
	require.NoError(t, RunMigrations(dbPath, []types.Migration{{ID: "db0001", SQL: testMigration, Prefix: "test_"}}))
	sqlDB, err := NewSQLiteDB(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	tx, err := NewTx(context.Background(), sqlDB)
	require.NoError(t, err)
	return tx
}

func TestMeddlersRoundTrip(t *testing.T) {
	tx := newTestDB(t)
	defer tx.Rollback() //nolint:errcheck

	expected := &item{
		Name:   "a",
		Amount: new(big.Int).Lsh(big.NewInt(1), 100),
		Owner:  common.HexToAddress("0x0a"),
		Digest: common.HexToHash("0x0b"),
	}
	require.NoError(t, meddler.Insert(tx, "test_item", expected))

	actual := &item{}
	require.NoError(t, meddler.QueryRow(tx, actual, `SELECT * FROM test_item WHERE name = $1;`, "a"))
	require.Equal(t, expected, actual)
}

func TestIsKeyViolation(t *testing.T) {
	tx := newTestDB(t)
	defer tx.Rollback() //nolint:errcheck

	require.NoError(t, meddler.Insert(tx, "test_item", &item{Name: "dup", Amount: big.NewInt(1)}))
	err := meddler.Insert(tx, "test_item", &item{Name: "dup", Amount: big.NewInt(1)})
	require.Error(t, err)
	require.True(t, IsKeyViolation(err))
	require.False(t, IsKeyViolation(errors.New("foo")))
}

func TestRunInTx(t *testing.T) {
	dbPath := path.Join(t.TempDir(), "runintx.sqlite")
	require.NoError(t, RunMigrations(dbPath, []types.Migration{{ID: "db0001", SQL: testMigration}}))
	sqlDB, err := NewSQLiteDB(dbPath)
	require.NoError(t, err)
	defer sqlDB.Close()
	ctx := context.Background()

	committed, rolledBack := 0, 0
	fooErr := errors.New("foo")
	err = RunInTx(ctx, sqlDB, func(tx *Tx) error {
		tx.AddCommitCallback(func() { committed++ })
		tx.AddRollbackCallback(func() { rolledBack++ })
		if err := meddler.Insert(tx, "item", &item{Name: "x", Amount: big.NewInt(1)}); err != nil {
			return err
		}
		return fooErr
	})
	require.ErrorIs(t, err, fooErr)
	require.Equal(t, 0, committed)
	require.Equal(t, 1, rolledBack)

	var count int
	require.NoError(t, sqlDB.QueryRow(`SELECT COUNT(*) FROM item;`).Scan(&count))
	require.Equal(t, 0, count)

	err = RunInTx(ctx, sqlDB, func(tx *Tx) error {
		tx.AddCommitCallback(func() { committed++ })
		return meddler.Insert(tx, "item", &item{Name: "x", Amount: big.NewInt(1)})
	})
	require.NoError(t, err)
	require.Equal(t, 1, committed)
	require.NoError(t, sqlDB.QueryRow(`SELECT COUNT(*) FROM item;`).Scan(&count))
	require.Equal(t, 1, count)
}

func TestMigrationWithoutMarker(t *testing.T) {
	_, err := memoryMigrations([]types.Migration{{ID: "bad", SQL: "CREATE TABLE foo (id INTEGER);"}})
	require.Error(t, err)
}

func TestReturnErrNotFound(t *testing.T) {
	fooErr := errors.New("foo")
	require.ErrorIs(t, ReturnErrNotFound(sql.ErrNoRows), ErrNotFound)
	require.ErrorIs(t, ReturnErrNotFound(fooErr), fooErr)
	require.NoError(t, ReturnErrNotFound(nil))
}

func TestNewSQLiteDBPragmas(t *testing.T) {
	sqlDB, err := NewSQLiteDB(path.Join(t.TempDir(), "pragmas.sqlite"))
	require.NoError(t, err)
	defer sqlDB.Close()

	// hold a connection so the next queries open another one
	conn, err := sqlDB.Conn(context.Background())
	require.NoError(t, err)
	defer conn.Close()

	var (
		busyTimeout int
		foreignKeys int
		journalMode string
	)
	require.NoError(t, sqlDB.QueryRow(`PRAGMA busy_timeout;`).Scan(&busyTimeout))
	require.Equal(t, 5000, busyTimeout)
	require.NoError(t, sqlDB.QueryRow(`PRAGMA foreign_keys;`).Scan(&foreignKeys))
	require.Equal(t, 1, foreignKeys)
	require.NoError(t, sqlDB.QueryRow(`PRAGMA journal_mode;`).Scan(&journalMode))
	require.Equal(t, "wal", journalMode)
}

func TestMeddlersRejectWrongTypes(t *testing.T) {
	_, err := BigIntMeddler{}.PreWrite(int64(1))
	require.Error(t, err)
	zero, err := BigIntMeddler{}.PreWrite((*big.Int)(nil))
	require.NoError(t, err)
	require.Equal(t, "0", zero)

	raw := "not a number"
	var amount *big.Int
	require.Error(t, BigIntMeddler{}.PostRead(&amount, &raw))

	addrMeddler := HexMeddler[common.Address]{fromHex: common.HexToAddress}
	_, err = addrMeddler.PreWrite(common.Hash{})
	require.Error(t, err)
	var owner common.Address
	require.Error(t, addrMeddler.PostRead(&owner, new(int)))
	hexAddr := "0x000000000000000000000000000000000000000a"
	require.NoError(t, addrMeddler.PostRead(&owner, &hexAddr))
	require.Equal(t, common.HexToAddress("0x0a"), owner)
}
