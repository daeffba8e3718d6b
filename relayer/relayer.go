package relayer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/0xPolygon/lockbridge/bridge"
	"github.com/0xPolygon/lockbridge/common"
	"github.com/0xPolygon/lockbridge/db"
	"github.com/0xPolygon/lockbridge/log"
	"github.com/0xPolygon/lockbridge/relayer/migrations"
	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/russross/meddler"
)

type DeliveryStatus string

const (
	// Delivered the destination accepted the redemption
	Delivered DeliveryStatus = "delivered"
	// Duplicate the nonce had already been redeemed on the destination
	Duplicate DeliveryStatus = "duplicate"
	// Skipped the destination rejected the redemption for good
	Skipped DeliveryStatus = "skipped"

	defaultBatchSize = 100
	subscribeBuffer  = 16
)

// EventSource is the log of the bridge the relayer follows
type EventSource interface {
	Events(ctx context.Context, fromID int64, limit int) ([]*bridge.Event, error)
}

// Notifier is implemented by sources able to signal new events
type Notifier interface {
	Subscribe(buffer int) (<-chan *bridge.Event, func())
}

// Redeemer submits the paired operation to the destination bridge
type Redeemer interface {
	Mint(ctx context.Context, recipient ethCommon.Address, amount *big.Int, nonce uint64) error
	Unlock(ctx context.Context, recipient ethCommon.Address, amount *big.Int, nonce uint64) error
}

// Delivery is the outcome of relaying one event
type Delivery struct {
	Name      string         `meddler:"name"`
	EventID   int64          `meddler:"event_id"`
	Kind      string         `meddler:"kind"`
	Nonce     uint64         `meddler:"nonce"`
	EventHash ethCommon.Hash `meddler:"event_hash,hash"`
	Status    DeliveryStatus `meddler:"status"`
	Reason    string         `meddler:"reason"`
	CreatedAt uint64         `meddler:"created_at"`
}

// Relayer follows the event log of a bridge and redeems its locks and burns on the
// other bridge: LockEvent -> Mint, BurnEvent -> Unlock. The cursor only advances once
// the destination accepted or definitively rejected an event, so every event is
// relayed at least once; the destination replay protection makes it exactly once.
type Relayer struct {
	name        string
	logger      *log.Logger
	db          *sql.DB
	source      EventSource
	dest        Redeemer
	rh          *common.RetryHandler
	batchSize   int
	waitOnEmpty time.Duration
}

func New(
	name string,
	cfg Config,
	source EventSource,
	dest Redeemer,
) (*Relayer, error) {
	if err := migrations.RunMigrations(cfg.DBPath); err != nil {
		return nil, err
	}
	sqlDB, err := db.NewSQLiteDB(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Relayer{
		name:   name,
		logger: log.WithFields("relayer", name),
		db:     sqlDB,
		source: source,
		dest:   dest,
		rh: &common.RetryHandler{
			RetryAfterErrorPeriod:      cfg.RetryAfterErrorPeriod.Duration,
			MaxRetryAttemptsAfterError: cfg.MaxRetryAttemptsAfterError,
		},
		batchSize:   batchSize,
		waitOnEmpty: cfg.WaitOnEmptyLog.Duration,
	}, nil
}

// Start relays events until ctx is done
func (r *Relayer) Start(ctx context.Context) {
	var (
		attempts int
		err      error
		wake     <-chan *bridge.Event
	)
	if n, ok := r.source.(Notifier); ok {
		ch, unsubscribe := n.Subscribe(subscribeBuffer)
		defer unsubscribe()
		wake = ch
	}
	r.logger.Infof("relayer %s started", r.name)
	for {
		if err != nil {
			attempts++
			if r.rh.Handle(ctx, "relayer "+r.name, attempts) != nil {
				return
			}
		}
		if ctx.Err() != nil {
			return
		}
		var relayed int
		relayed, err = r.RelayBatch(ctx)
		if err != nil {
			r.logger.Errorf("error relaying events: %v", err)
			continue
		}
		attempts = 0
		if relayed > 0 {
			continue
		}
		r.logger.Debugf("source log drained, waiting %s", r.waitOnEmpty)
		if !r.wait(ctx, wake) {
			return
		}
	}
}

// wait blocks until a new event is signaled, waitOnEmpty elapses or ctx is done
func (r *Relayer) wait(ctx context.Context, wake <-chan *bridge.Event) bool {
	t := time.NewTimer(r.waitOnEmpty)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-wake:
		return true
	case <-t.C:
		return true
	}
}

// RelayBatch relays the next batch of events of the source. It returns the number
// of events the cursor advanced over.
func (r *Relayer) RelayBatch(ctx context.Context) (int, error) {
	cursor, err := r.Cursor()
	if err != nil {
		return 0, err
	}
	events, err := r.source.Events(ctx, cursor+1, r.batchSize)
	if err != nil {
		return 0, fmt.Errorf("error reading source events from %d: %w", cursor+1, err)
	}
	for i, evt := range events {
		status, reason, err := r.relay(ctx, evt)
		if err != nil {
			return i, fmt.Errorf("error relaying event %d (%s %d): %w", evt.ID, evt.Kind, evt.Nonce, err)
		}
		if err := r.advance(ctx, evt, status, reason); err != nil {
			return i, err
		}
	}
	return len(events), nil
}

// relay returns an empty status for events that need no redemption
func (r *Relayer) relay(ctx context.Context, evt *bridge.Event) (DeliveryStatus, string, error) {
	var redeem func(ctx context.Context, recipient ethCommon.Address, amount *big.Int, nonce uint64) error
	switch evt.Kind {
	case bridge.LockKind:
		redeem = r.dest.Mint
	case bridge.BurnKind:
		redeem = r.dest.Unlock
	default:
		return "", "", nil
	}
	if !isHexAddress(evt.Destination) {
		reason := fmt.Sprintf("recipient %q can't be decoded as an account", evt.Destination)
		r.logger.Warnf("skipping %s %d: %s", evt.Kind, evt.Nonce, reason)
		return Skipped, reason, nil
	}
	recipient := ethCommon.HexToAddress(evt.Destination)
	err := redeem(ctx, recipient, evt.Amount, evt.Nonce)
	switch {
	case err == nil:
		r.logger.Infof("%s %d redeemed for %s, amount %s", evt.Kind, evt.Nonce, recipient.Hex(), evt.Amount)
		return Delivered, "", nil
	case errors.Is(err, bridge.ErrAlreadyProcessed):
		r.logger.Debugf("%s %d already redeemed", evt.Kind, evt.Nonce)
		return Duplicate, "", nil
	case bridge.Retryable(err):
		r.logger.Warnf("skipping %s %d rejected by the destination: %v", evt.Kind, evt.Nonce, err)
		return Skipped, err.Error(), nil
	default:
		return "", "", err
	}
}

func (r *Relayer) advance(ctx context.Context, evt *bridge.Event, status DeliveryStatus, reason string) error {
	return db.RunInTx(ctx, r.db, func(tx *db.Tx) error {
		now := uint64(time.Now().Unix())
		if status != "" {
			d := &Delivery{
				Name:      r.name,
				EventID:   evt.ID,
				Kind:      string(evt.Kind),
				Nonce:     evt.Nonce,
				EventHash: evt.Hash,
				Status:    status,
				Reason:    reason,
				CreatedAt: now,
			}
			if err := meddler.Insert(tx, "relayer_delivery", d); err != nil {
				return fmt.Errorf("error storing delivery of event %d: %w", evt.ID, err)
			}
		}
		_, err := tx.Exec(`
			INSERT INTO relayer_cursor (name, last_event_id, updated_at) VALUES ($1, $2, $3)
			ON CONFLICT (name) DO UPDATE SET last_event_id = excluded.last_event_id, updated_at = excluded.updated_at;`,
			r.name, evt.ID, now)
		return err
	})
}

// Cursor returns the id of the last event relayed, 0 if none
func (r *Relayer) Cursor() (int64, error) {
	var cursor int64
	err := r.db.QueryRow(`SELECT last_event_id FROM relayer_cursor WHERE name = $1;`, r.name).Scan(&cursor)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return cursor, err
}

// Deliveries returns the outcomes recorded from event id fromID
func (r *Relayer) Deliveries(fromID int64, limit int) ([]*Delivery, error) {
	deliveries := []*Delivery{}
	err := meddler.QueryAll(r.db, &deliveries, `
		SELECT * FROM relayer_delivery WHERE name = $1 AND event_id >= $2
		ORDER BY event_id ASC LIMIT $3;`, r.name, fromID, limit)
	return deliveries, err
}

func (r *Relayer) Close() error {
	return r.db.Close()
}

func isHexAddress(s string) bool {
	return strings.HasPrefix(s, "0x") && ethCommon.IsHexAddress(s)
}
