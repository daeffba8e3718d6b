package bridge

import (
	"errors"
	"fmt"

	"github.com/0xPolygon/lockbridge/db"
	"github.com/russross/meddler"
)

const recordID = 1

func getRecord(q db.Querier) (*Record, error) {
	rec := &Record{}
	err := meddler.QueryRow(q, rec, `SELECT * FROM bridge_record WHERE id = $1;`, recordID)
	if err != nil {
		err = db.ReturnErrNotFound(err)
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrNotInitialized
		}
		return nil, fmt.Errorf("error reading bridge record: %w", err)
	}
	return rec, nil
}

func insertRecord(tx db.Querier, rec *Record) error {
	rec.ID = recordID
	if err := meddler.Insert(tx, "bridge_record", rec); err != nil {
		if db.IsKeyViolation(err) {
			return ErrAlreadyInitialized
		}
		return fmt.Errorf("error inserting bridge record: %w", err)
	}
	return nil
}

// updateRecord stores rec only if the stored version is still prevVersion
func updateRecord(tx db.Querier, prevVersion uint64, rec *Record) error {
	res, err := tx.Exec(`
		UPDATE bridge_record SET nonce = $1, paused = $2, version = $3
		WHERE id = $4 AND version = $5;`,
		rec.Nonce, rec.Paused, rec.Version, recordID, prevVersion)
	if err != nil {
		return fmt.Errorf("error updating bridge record: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected != 1 {
		return fmt.Errorf("%w: expected version %d", ErrConcurrentUpdate, prevVersion)
	}
	return nil
}

func insertEvent(tx db.Querier, evt *Event) error {
	evt.Hash = evt.ComputeHash()
	if err := meddler.Insert(tx, "bridge_event", evt); err != nil {
		return fmt.Errorf("error appending %s event: %w", evt.Kind, err)
	}
	return nil
}

func getEvents(q db.Querier, fromID int64, limit int) ([]*Event, error) {
	events := []*Event{}
	err := meddler.QueryAll(q, &events,
		`SELECT * FROM bridge_event WHERE id >= $1 ORDER BY id ASC LIMIT $2;`, fromID, limit)
	if err != nil {
		return nil, err
	}
	return events, nil
}

func getEventByNonce(q db.Querier, kind EventKind, nonce uint64) (*Event, error) {
	evt := &Event{}
	err := meddler.QueryRow(q, evt, `SELECT * FROM bridge_event WHERE kind = $1 AND nonce = $2;`, kind, nonce)
	return evt, db.ReturnErrNotFound(err)
}
