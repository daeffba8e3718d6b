package bridge

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/0xPolygon/lockbridge/authz"
	"github.com/0xPolygon/lockbridge/db"
	"github.com/0xPolygon/lockbridge/log"
	"github.com/ethereum/go-ethereum/common"
)

// ledgerCall is one of the LedgerAdapter effects
type ledgerCall func(ctx context.Context, tx db.Querier, account common.Address, amount *big.Int) error

// Bridge is the state machine of one side of the bridge. Every operation runs
// under a single writer lock in its own SQLite transaction: it either commits
// the record change, the ledger effect and the event together, or nothing.
type Bridge struct {
	mu        sync.Mutex
	name      string
	logger    *log.Logger
	db        *sql.DB
	ledger    LedgerAdapter
	oracle    AuthorizationOracle
	scheme    AddressScheme
	processed *processedSet
	feed      *feed
	now       func() time.Time
}

// New returns the bridge stored in sqlDB. The schema must already be migrated.
func New(
	logger *log.Logger,
	cfg Config,
	sqlDB *sql.DB,
	ledger LedgerAdapter,
	oracle AuthorizationOracle,
) (*Bridge, error) {
	scheme, err := NewAddressScheme(cfg.DestinationAddressScheme)
	if err != nil {
		return nil, err
	}
	processed, err := newProcessedSet(cfg.ProcessedNonces)
	if err != nil {
		return nil, err
	}
	if oracle == nil {
		oracle = authz.OwnerOnly{}
	}
	return &Bridge{
		name:      cfg.Name,
		logger:    logger,
		db:        sqlDB,
		ledger:    ledger,
		oracle:    oracle,
		scheme:    scheme,
		processed: processed,
		feed:      &feed{logger: logger},
		now:       time.Now,
	}, nil
}

// Name of the bridge instance
func (b *Bridge) Name() string {
	return b.name
}

// Initialize creates the bridge record owned by caller. It fails with
// ErrAlreadyInitialized if the record exists, the owner is never overwritten.
func (b *Bridge) Initialize(ctx context.Context, caller common.Address) (*Record, error) {
	if caller == (common.Address{}) {
		return nil, fmt.Errorf("%w: the zero address can't own the bridge", ErrUnauthorized)
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	now := uint64(b.now().Unix())
	rec := &Record{
		Owner:         caller,
		Version:       1,
		InitializedAt: now,
	}
	var evt *Event
	err := db.RunInTx(ctx, b.db, func(tx *db.Tx) error {
		_, err := getRecord(tx)
		if err == nil {
			return ErrAlreadyInitialized
		}
		if !errors.Is(err, ErrNotInitialized) {
			return err
		}
		if err := insertRecord(tx, rec); err != nil {
			return err
		}
		evt = &Event{
			Kind:      InitializedKind,
			Account:   caller,
			Amount:    big.NewInt(0),
			Version:   rec.Version,
			Timestamp: now,
		}
		if err := insertEvent(tx, evt); err != nil {
			return err
		}
		tx.AddCommitCallback(func() { b.feed.publish(evt) })
		return nil
	})
	if err != nil {
		b.logRejected(InitializedKind, caller, err)
		return nil, err
	}
	b.logger.Infof("bridge %s initialized, owner: %s", b.name, caller.Hex())
	return rec, nil
}

// Lock moves amount from caller into custody and assigns it the next nonce
func (b *Bridge) Lock(ctx context.Context, caller common.Address, amount *big.Int, destination string,
) (*LockEvent, error) {
	evt, err := b.deposit(ctx, LockKind, caller, amount, destination, b.ledger.Debit)
	if err != nil {
		return nil, err
	}
	return evt.LockEvent()
}

// Burn destroys amount of the wrapped asset of caller and assigns it the next nonce
func (b *Bridge) Burn(ctx context.Context, caller common.Address, amount *big.Int, destination string,
) (*BurnEvent, error) {
	evt, err := b.deposit(ctx, BurnKind, caller, amount, destination, b.ledger.Burn)
	if err != nil {
		return nil, err
	}
	return evt.BurnEvent()
}

// Mint credits the wrapped asset for the lock identified by nonce on the opposite ledger
func (b *Bridge) Mint(ctx context.Context, caller, recipient common.Address, amount *big.Int, nonce uint64,
) (*MintEvent, error) {
	evt, err := b.redeem(ctx, MintDirection, MintKind, authz.Mint, caller, recipient, amount, nonce, b.ledger.Mint)
	if err != nil {
		return nil, err
	}
	return evt.MintEvent()
}

// Unlock releases custodied funds for the burn identified by nonce on the opposite ledger
func (b *Bridge) Unlock(ctx context.Context, caller, recipient common.Address, amount *big.Int, nonce uint64,
) (*UnlockEvent, error) {
	evt, err := b.redeem(ctx, UnlockDirection, UnlockKind, authz.Unlock, caller, recipient, amount, nonce, b.ledger.Credit)
	if err != nil {
		return nil, err
	}
	return evt.UnlockEvent()
}

// Pause rejects lock, burn, mint and unlock until Unpause. It returns false if
// the bridge was already paused, in which case nothing is written.
func (b *Bridge) Pause(ctx context.Context, caller common.Address) (bool, error) {
	return b.setPaused(ctx, caller, true)
}

// Unpause resumes a paused bridge. It returns false if the bridge wasn't paused.
func (b *Bridge) Unpause(ctx context.Context, caller common.Address) (bool, error) {
	return b.setPaused(ctx, caller, false)
}

func (b *Bridge) deposit(
	ctx context.Context,
	kind EventKind,
	caller common.Address,
	amount *big.Int,
	destination string,
	effect ledgerCall,
) (*Event, error) {
	return b.update(ctx, kind, caller, func(tx *db.Tx, rec *Record) (*Event, error) {
		if rec.Paused {
			return nil, ErrBridgePaused
		}
		if err := checkAmount(amount); err != nil {
			return nil, err
		}
		if err := b.scheme.Validate(destination); err != nil {
			return nil, err
		}
		if rec.Nonce >= MaxNonce {
			return nil, ErrNonceOverflow
		}
		if err := effect(ctx, tx, caller, amount); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLedger, kind, err)
		}
		rec.Nonce++
		return &Event{
			Kind:        kind,
			Nonce:       rec.Nonce,
			Account:     caller,
			Destination: destination,
			Amount:      new(big.Int).Set(amount),
		}, nil
	})
}

func (b *Bridge) redeem(
	ctx context.Context,
	direction Direction,
	kind EventKind,
	opKind authz.OperationKind,
	caller, recipient common.Address,
	amount *big.Int,
	nonce uint64,
	effect ledgerCall,
) (*Event, error) {
	return b.update(ctx, kind, caller, func(tx *db.Tx, rec *Record) (*Event, error) {
		if rec.Paused {
			return nil, ErrBridgePaused
		}
		if nonce == 0 || nonce > MaxNonce {
			return nil, fmt.Errorf("%w: %d", ErrInvalidNonce, nonce)
		}
		processed, err := b.processed.contains(tx, direction, nonce)
		if err != nil {
			return nil, err
		}
		if processed {
			return nil, fmt.Errorf("%w: %s nonce %d", ErrAlreadyProcessed, direction, nonce)
		}
		if !b.isAuthorized(rec, caller, authz.Operation{Kind: opKind, Nonce: nonce}) {
			return nil, ErrUnauthorized
		}
		if err := checkAmount(amount); err != nil {
			return nil, err
		}
		if err := b.processed.insert(tx, direction, nonce, uint64(b.now().Unix())); err != nil {
			return nil, err
		}
		if err := effect(ctx, tx, recipient, amount); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLedger, kind, err)
		}
		return &Event{
			Kind:    kind,
			Nonce:   nonce,
			Account: recipient,
			Amount:  new(big.Int).Set(amount),
		}, nil
	})
}

func (b *Bridge) setPaused(ctx context.Context, caller common.Address, paused bool) (bool, error) {
	kind, opKind := PauseKind, authz.Pause
	if !paused {
		kind, opKind = UnpauseKind, authz.Unpause
	}
	evt, err := b.update(ctx, kind, caller, func(_ *db.Tx, rec *Record) (*Event, error) {
		if !b.isAuthorized(rec, caller, authz.Operation{Kind: opKind}) {
			return nil, ErrUnauthorized
		}
		if rec.Paused == paused {
			return nil, nil
		}
		rec.Paused = paused
		return &Event{
			Kind:    kind,
			Account: caller,
			Amount:  big.NewInt(0),
		}, nil
	})
	if err == nil && evt == nil {
		b.logger.Debugf("bridge %s: %s by %s is a no-op", b.name, kind, caller.Hex())
	}
	return evt != nil, err
}

// checkAmount accepts positive amounts that fit the 256 bits word hashed in the event
func checkAmount(amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}
	if amount.BitLen() > MaxAmountBits {
		return fmt.Errorf("%w: %s doesn't fit in %d bits", ErrInvalidAmount, amount, MaxAmountBits)
	}
	return nil
}

func (b *Bridge) isAuthorized(rec *Record, caller common.Address, op authz.Operation) bool {
	return caller == rec.Owner || b.oracle.IsAuthorized(caller, op)
}

// update runs apply on a copy of the record inside a transaction. If apply
// returns an event, the record is stored with the next version and the event
// appended; a nil event commits nothing.
func (b *Bridge) update(
	ctx context.Context,
	kind EventKind,
	caller common.Address,
	apply func(tx *db.Tx, rec *Record) (*Event, error),
) (*Event, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var evt *Event
	err := db.RunInTx(ctx, b.db, func(tx *db.Tx) error {
		prev, err := getRecord(tx)
		if err != nil {
			return err
		}
		next := *prev
		evt, err = apply(tx, &next)
		if err != nil || evt == nil {
			return err
		}
		next.Version = prev.Version + 1
		if err := updateRecord(tx, prev.Version, &next); err != nil {
			return err
		}
		evt.Version = next.Version
		evt.Timestamp = uint64(b.now().Unix())
		if err := insertEvent(tx, evt); err != nil {
			return err
		}
		published := evt
		tx.AddCommitCallback(func() { b.feed.publish(published) })
		return nil
	})
	if err != nil {
		b.logRejected(kind, caller, err)
		return nil, err
	}
	if evt != nil {
		b.logger.Infow("bridge state changed",
			"bridge", b.name, "op", kind, "nonce", evt.Nonce, "account", evt.Account.Hex(),
			"amount", evt.Amount.String(), "version", evt.Version)
	}
	return evt, nil
}

func (b *Bridge) logRejected(kind EventKind, caller common.Address, err error) {
	k := KindOf(err)
	if k == KindInternal {
		b.logger.Errorf("bridge %s: %s by %s failed: %v", b.name, kind, caller.Hex(), err)
		return
	}
	b.logger.Debugw("bridge operation rejected",
		"bridge", b.name, "op", kind, "caller", caller.Hex(), "kind", k.String(), "error", err.Error())
}

// Record returns the current bridge record
func (b *Bridge) Record(ctx context.Context) (*Record, error) {
	return getRecord(b.db)
}

// Events returns up to limit events with id >= fromID, in log order
func (b *Bridge) Events(ctx context.Context, fromID int64, limit int) ([]*Event, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}
	return getEvents(b.db, fromID, limit)
}

// EventByNonce returns the lock, burn, mint or unlock event carrying nonce.
// It returns db.ErrNotFound if there is none.
func (b *Bridge) EventByNonce(ctx context.Context, kind EventKind, nonce uint64) (*Event, error) {
	return getEventByNonce(b.db, kind, nonce)
}

// IsProcessed returns true if nonce has been redeemed in direction
func (b *Bridge) IsProcessed(ctx context.Context, direction Direction, nonce uint64) (bool, error) {
	if !direction.valid() {
		return false, fmt.Errorf("unknown direction %q", direction)
	}
	if nonce == 0 {
		return false, nil
	}
	return b.processed.contains(b.db, direction, nonce)
}

// Close closes the bridge database. Operations fail afterwards.
func (b *Bridge) Close() error {
	return b.db.Close()
}

// Subscribe returns a channel receiving every event after it is committed and
// a function to stop the subscription
func (b *Bridge) Subscribe(buffer int) (<-chan *Event, func()) {
	return b.feed.subscribe(buffer)
}
