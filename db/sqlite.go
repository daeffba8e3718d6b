package db

import (
	"database/sql"
	"errors"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const (
	// UniqueConstrain is the sqlite extended code of SQLITE_CONSTRAINT_UNIQUE
	UniqueConstrain = 2067
	// PrimaryKeyConstrain is the sqlite extended code of SQLITE_CONSTRAINT_PRIMARYKEY
	PrimaryKeyConstrain = 1555

	// set on every pooled connection. Write transactions take the lock at BEGIN,
	// so two of them never deadlock upgrading a read lock.
	dsnOptions = "_foreign_keys=1&_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000&_txlock=immediate"
)

var (
	ErrNotFound = errors.New("not found")
)

// NewSQLiteDB opens the SQLite file at dbPath
func NewSQLiteDB(dbPath string) (*sql.DB, error) {
	sep := "?"
	if strings.Contains(dbPath, "?") {
		sep = "&"
	}
	db, err := sql.Open("sqlite3", dbPath+sep+dsnOptions)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_size_limit = 6144000;`); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// ReturnErrNotFound maps sql.ErrNoRows to ErrNotFound
func ReturnErrNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
