package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Querier is implemented by *sql.DB, *sql.Tx and *Tx
type Querier interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// Tx wraps a sql.Tx, running the registered callbacks once the outcome is known
type Tx struct {
	*sql.Tx
	rollbackCallbacks []func()
	commitCallbacks   []func()
	finished          bool
}

func NewTx(ctx context.Context, db *sql.DB) (*Tx, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &Tx{
		Tx: tx,
	}, nil
}

func (s *Tx) AddRollbackCallback(cb func()) {
	s.rollbackCallbacks = append(s.rollbackCallbacks, cb)
}
func (s *Tx) AddCommitCallback(cb func()) {
	s.commitCallbacks = append(s.commitCallbacks, cb)
}

func (s *Tx) Commit() error {
	if err := s.Tx.Commit(); err != nil {
		return err
	}
	s.finished = true
	for _, cb := range s.commitCallbacks {
		cb()
	}
	return nil
}

// Rollback aborts the tx. A failed Commit leaves the underlying tx already
// closed, in that case the rollback callbacks still run.
func (s *Tx) Rollback() error {
	if s.finished {
		return sql.ErrTxDone
	}
	if err := s.Tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	s.finished = true
	for _, cb := range s.rollbackCallbacks {
		cb()
	}
	return nil
}

// RunInTx opens a transaction, runs fn and commits only if fn returned nil.
// Any error from fn or from the commit rolls the transaction back, so nothing
// written by fn is visible afterwards.
func RunInTx(ctx context.Context, db *sql.DB, fn func(tx *Tx) error) (err error) {
	tx, err := NewTx(ctx, db)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if errRllbck := tx.Rollback(); errRllbck != nil {
				err = fmt.Errorf("%w (rollback failed: %v)", err, errRllbck) //nolint:errorlint
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
