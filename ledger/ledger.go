package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/big"

	"github.com/0xPolygon/lockbridge/db"
	"github.com/0xPolygon/lockbridge/log"
	"github.com/ethereum/go-ethereum/common"
	"github.com/russross/meddler"
)

// Asset identifies which balance sheet an operation touches
type Asset string

const (
	// Native is the token custodied on the home ledger
	Native Asset = "native"
	// Wrapped is the representation minted on the foreign ledger
	Wrapped Asset = "wrapped"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAccount      = errors.New("invalid account")
	ErrInvalidAmount       = errors.New("invalid amount")
)

// Allocation is an initial native balance
type Allocation struct {
	Account common.Address `mapstructure:"Account"`
	Amount  string         `mapstructure:"Amount"`
}

type balance struct {
	Asset   Asset          `meddler:"asset"`
	Account common.Address `meddler:"account,address"`
	Amount  *big.Int       `meddler:"amount,bigint"`
}

type supply struct {
	Asset  Asset    `meddler:"asset"`
	Amount *big.Int `meddler:"amount,bigint"`
}

// Ledger keeps fungible balances in the same SQLite database as the bridge, so
// every call made with the bridge transaction commits or rolls back with it.
// Each call is atomic: on error nothing has been written.
type Ledger struct {
	logger  *log.Logger
	custody common.Address
}

// New returns a ledger whose locked funds are held by custody
func New(logger *log.Logger, custody common.Address) (*Ledger, error) {
	if custody == (common.Address{}) {
		return nil, fmt.Errorf("%w: custody account must be set", ErrInvalidAccount)
	}
	return &Ledger{
		logger:  logger,
		custody: custody,
	}, nil
}

// Custody returns the account holding locked funds
func (l *Ledger) Custody() common.Address {
	return l.custody
}

// Debit moves amount of the native asset from account into custody
func (l *Ledger) Debit(ctx context.Context, tx db.Querier, account common.Address, amount *big.Int) error {
	if err := l.checkCustodyTransfer(account, amount); err != nil {
		return err
	}
	if err := l.sub(tx, Native, account, amount); err != nil {
		return err
	}
	return l.add(tx, Native, l.custody, amount)
}

// Credit releases amount of the native asset from custody to account
func (l *Ledger) Credit(ctx context.Context, tx db.Querier, account common.Address, amount *big.Int) error {
	if err := l.checkCustodyTransfer(account, amount); err != nil {
		return err
	}
	if err := l.sub(tx, Native, l.custody, amount); err != nil {
		return fmt.Errorf("custody: %w", err)
	}
	return l.add(tx, Native, account, amount)
}

// Mint creates amount of the wrapped asset for account
func (l *Ledger) Mint(ctx context.Context, tx db.Querier, account common.Address, amount *big.Int) error {
	if err := checkArgs(account, amount); err != nil {
		return err
	}
	if err := l.add(tx, Wrapped, account, amount); err != nil {
		return err
	}
	return l.changeSupply(tx, Wrapped, amount)
}

// Burn destroys amount of the wrapped asset held by account
func (l *Ledger) Burn(ctx context.Context, tx db.Querier, account common.Address, amount *big.Int) error {
	if err := checkArgs(account, amount); err != nil {
		return err
	}
	if err := l.sub(tx, Wrapped, account, amount); err != nil {
		return err
	}
	return l.changeSupply(tx, Wrapped, new(big.Int).Neg(amount))
}

// Fund adds native balance to account out of thin air. Used for genesis allocations.
func (l *Ledger) Fund(tx db.Querier, account common.Address, amount *big.Int) error {
	if err := checkArgs(account, amount); err != nil {
		return err
	}
	return l.add(tx, Native, account, amount)
}

// ApplyGenesis funds the allocations if the ledger has never held any balance
func (l *Ledger) ApplyGenesis(ctx context.Context, sqlDB *sql.DB, allocations []Allocation) error {
	if len(allocations) == 0 {
		return nil
	}
	return db.RunInTx(ctx, sqlDB, func(tx *db.Tx) error {
		var count int
		if err := tx.QueryRow(`SELECT COUNT(*) FROM ledger_balance;`).Scan(&count); err != nil {
			return err
		}
		if count > 0 {
			l.logger.Debugf("ledger already has %d balances, skipping genesis", count)
			return nil
		}
		for _, a := range allocations {
			amount, ok := new(big.Int).SetString(a.Amount, 10) //nolint:mnd
			if !ok {
				return fmt.Errorf("%w: %q for %s", ErrInvalidAmount, a.Amount, a.Account.Hex())
			}
			if err := l.Fund(tx, a.Account, amount); err != nil {
				return err
			}
			l.logger.Infof("genesis allocation of %s to %s", amount.String(), a.Account.Hex())
		}
		return nil
	})
}

// BalanceOf returns the balance of account for asset, zero if it never held any
func (l *Ledger) BalanceOf(q db.Querier, asset Asset, account common.Address) (*big.Int, error) {
	return getBalance(q, asset, account)
}

// Supply returns the outstanding amount of asset created by Mint
func (l *Ledger) Supply(q db.Querier, asset Asset) (*big.Int, error) {
	s := &supply{}
	err := meddler.QueryRow(q, s, `SELECT * FROM ledger_supply WHERE asset = $1;`, asset)
	if errors.Is(err, sql.ErrNoRows) {
		return big.NewInt(0), nil
	}
	if err != nil {
		return nil, err
	}
	return s.Amount, nil
}

func (l *Ledger) add(tx db.Querier, asset Asset, account common.Address, amount *big.Int) error {
	current, err := getBalance(tx, asset, account)
	if err != nil {
		return err
	}
	return putBalance(tx, asset, account, current.Add(current, amount))
}

func (l *Ledger) sub(tx db.Querier, asset Asset, account common.Address, amount *big.Int) error {
	current, err := getBalance(tx, asset, account)
	if err != nil {
		return err
	}
	if current.Cmp(amount) < 0 {
		return fmt.Errorf("%w: %s holds %s %s, needs %s",
			ErrInsufficientBalance, account.Hex(), current.String(), asset, amount.String())
	}
	return putBalance(tx, asset, account, current.Sub(current, amount))
}

func (l *Ledger) changeSupply(tx db.Querier, asset Asset, delta *big.Int) error {
	current, err := l.Supply(tx, asset)
	if err != nil {
		return err
	}
	next := new(big.Int).Add(current, delta)
	if next.Sign() < 0 {
		return fmt.Errorf("%w: supply of %s would become negative", ErrInsufficientBalance, asset)
	}
	_, err = tx.Exec(`
		INSERT INTO ledger_supply (asset, amount) VALUES ($1, $2)
		ON CONFLICT (asset) DO UPDATE SET amount = excluded.amount;
	`, asset, next.String())
	return err
}

func getBalance(q db.Querier, asset Asset, account common.Address) (*big.Int, error) {
	b := &balance{}
	err := meddler.QueryRow(q, b,
		`SELECT * FROM ledger_balance WHERE asset = $1 AND account = $2;`, asset, account.Hex())
	if errors.Is(err, sql.ErrNoRows) {
		return big.NewInt(0), nil
	}
	if err != nil {
		return nil, err
	}
	return b.Amount, nil
}

func putBalance(tx db.Querier, asset Asset, account common.Address, amount *big.Int) error {
	_, err := tx.Exec(`
		INSERT INTO ledger_balance (asset, account, amount) VALUES ($1, $2, $3)
		ON CONFLICT (asset, account) DO UPDATE SET amount = excluded.amount;
	`, asset, account.Hex(), amount.String())
	return err
}

// checkCustodyTransfer rejects moving funds between custody and itself, which
// would leave every balance unchanged
func (l *Ledger) checkCustodyTransfer(account common.Address, amount *big.Int) error {
	if err := checkArgs(account, amount); err != nil {
		return err
	}
	if account == l.custody {
		return fmt.Errorf("%w: %s is the custody account", ErrInvalidAccount, account.Hex())
	}
	return nil
}

func checkArgs(account common.Address, amount *big.Int) error {
	if account == (common.Address{}) {
		return ErrInvalidAccount
	}
	if amount == nil || amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	return nil
}
