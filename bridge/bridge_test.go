package bridge

import (
	"context"
	"database/sql"
	"errors"
	"math/big"
	"path"
	"testing"
	"time"

	"github.com/0xPolygon/lockbridge/authz"
	"github.com/0xPolygon/lockbridge/bridge/migrations"
	"github.com/0xPolygon/lockbridge/bridge/mocks"
	"github.com/0xPolygon/lockbridge/db"
	"github.com/0xPolygon/lockbridge/ledger"
	ledgerMigrations "github.com/0xPolygon/lockbridge/ledger/migrations"
	"github.com/0xPolygon/lockbridge/log"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

const destAddr = "0xAbC0000000000000000000000000000000000042"

var (
	ownerA   = common.HexToAddress("0x0a")
	user1    = common.HexToAddress("0x01")
	user2    = common.HexToAddress("0x02")
	attacker = common.HexToAddress("0xbad")
	relayer  = common.HexToAddress("0x7e")
	custody  = common.HexToAddress("0xc0")
)

type testBridge struct {
	*Bridge
	ledger *ledger.Ledger
	db     *sql.DB
}

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := path.Join(t.TempDir(), "bridge.sqlite")
	require.NoError(t, migrations.RunMigrations(dbPath, ledgerMigrations.Migrations...))
	sqlDB, err := db.NewSQLiteDB(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return sqlDB
}

func testConfig() Config {
	return Config{
		Name:                     HomeName,
		DBPath:                   "unused",
		CustodyAccount:           custody,
		DestinationAddressScheme: EVMScheme,
		ProcessedNonces:          ProcessedNoncesConfig{CacheSize: 16},
	}
}

// newTestBridge returns an initialized bridge owned by ownerA, user1 holding 1000 native
func newTestBridge(t *testing.T, cfg Config, oracle AuthorizationOracle) *testBridge {
	t.Helper()
	ctx := context.Background()
	sqlDB := newTestDB(t)
	l, err := ledger.New(log.WithFields("module", "ledger-test"), cfg.CustodyAccount)
	require.NoError(t, err)
	require.NoError(t, l.ApplyGenesis(ctx, sqlDB, []ledger.Allocation{{Account: user1, Amount: "1000"}}))
	b, err := New(log.WithFields("module", "bridge-test"), cfg, sqlDB, l, oracle)
	require.NoError(t, err)
	_, err = b.Initialize(ctx, ownerA)
	require.NoError(t, err)
	return &testBridge{Bridge: b, ledger: l, db: sqlDB}
}

func (tb *testBridge) requireBalance(t *testing.T, asset ledger.Asset, account common.Address, expected int64) {
	t.Helper()
	actual, err := tb.ledger.BalanceOf(tb.db, asset, account)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(expected).String(), actual.String(), "%s balance of %s", asset, account.Hex())
}

func (tb *testBridge) record(t *testing.T) *Record {
	t.Helper()
	rec, err := tb.Record(context.Background())
	require.NoError(t, err)
	return rec
}

func (tb *testBridge) events(t *testing.T) []*Event {
	t.Helper()
	events, err := tb.Events(context.Background(), 0, 1000)
	require.NoError(t, err)
	return events
}

func TestInitialize(t *testing.T) {
	ctx := context.Background()
	sqlDB := newTestDB(t)
	l, err := ledger.New(log.WithFields("module", "ledger-test"), custody)
	require.NoError(t, err)
	b, err := New(log.WithFields("module", "bridge-test"), testConfig(), sqlDB, l, nil)
	require.NoError(t, err)

	_, err = b.Record(ctx)
	require.ErrorIs(t, err, ErrNotInitialized)
	_, err = b.Lock(ctx, user1, big.NewInt(1), destAddr)
	require.ErrorIs(t, err, ErrNotInitialized)
	_, err = b.Pause(ctx, ownerA)
	require.ErrorIs(t, err, ErrNotInitialized)

	_, err = b.Initialize(ctx, common.Address{})
	require.ErrorIs(t, err, ErrUnauthorized)

	rec, err := b.Initialize(ctx, ownerA)
	require.NoError(t, err)
	require.Equal(t, ownerA, rec.Owner)
	require.Equal(t, uint64(0), rec.Nonce)
	require.False(t, rec.Paused)

	_, err = b.Initialize(ctx, attacker)
	require.ErrorIs(t, err, ErrAlreadyInitialized)
	require.Equal(t, KindState, KindOf(err))

	stored, err := b.Record(ctx)
	require.NoError(t, err)
	require.Equal(t, ownerA, stored.Owner)

	events, err := b.Events(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, InitializedKind, events[0].Kind)
	require.Equal(t, ownerA, events[0].Account)
}

func TestConcurrentInitialize(t *testing.T) {
	ctx := context.Background()
	sqlDB := newTestDB(t)
	l, err := ledger.New(log.WithFields("module", "ledger-test"), custody)
	require.NoError(t, err)
	b, err := New(log.WithFields("module", "bridge-test"), testConfig(), sqlDB, l, nil)
	require.NoError(t, err)

	const callers = 10
	results := make([]error, callers)
	var g errgroup.Group
	for i := 0; i < callers; i++ {
		i := i
		g.Go(func() error {
			_, results[i] = b.Initialize(ctx, common.BigToAddress(big.NewInt(int64(i+1))))
			return nil
		})
	}
	require.NoError(t, g.Wait())

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		require.ErrorIs(t, err, ErrAlreadyInitialized)
	}
	require.Equal(t, 1, succeeded)
}

// Scenario A
func TestLock(t *testing.T) {
	ctx := context.Background()
	tb := newTestBridge(t, testConfig(), nil)
	events, unsubscribe := tb.Subscribe(4)
	defer unsubscribe()

	evt, err := tb.Lock(ctx, user1, big.NewInt(100), destAddr)
	require.NoError(t, err)
	require.Equal(t, uint64(1), evt.Nonce)
	require.Equal(t, user1, evt.From)
	require.Equal(t, big.NewInt(100), evt.Amount)
	require.Equal(t, destAddr, evt.DestinationAddress)

	require.Equal(t, uint64(1), tb.record(t).Nonce)
	tb.requireBalance(t, ledger.Native, custody, 100)
	tb.requireBalance(t, ledger.Native, user1, 900)

	stored, err := tb.EventByNonce(ctx, LockKind, 1)
	require.NoError(t, err)
	require.Equal(t, stored.ComputeHash(), stored.Hash)
	view, err := stored.LockEvent()
	require.NoError(t, err)
	require.Equal(t, evt.Amount, view.Amount)

	select {
	case published := <-events:
		require.Equal(t, LockKind, published.Kind)
		require.Equal(t, uint64(1), published.Nonce)
	case <-time.After(time.Second):
		t.Fatal("lock event not published")
	}
}

// Scenario B
func TestMintReplay(t *testing.T) {
	ctx := context.Background()
	tb := newTestBridge(t, testConfig(), nil)

	evt, err := tb.Mint(ctx, ownerA, user2, big.NewInt(100), 1)
	require.NoError(t, err)
	require.Equal(t, MintEvent{To: user2, Amount: big.NewInt(100), Nonce: 1}, *evt)

	_, err = tb.Mint(ctx, ownerA, user2, big.NewInt(100), 1)
	require.ErrorIs(t, err, ErrAlreadyProcessed)
	require.Equal(t, KindState, KindOf(err))
	require.False(t, Retryable(err))

	tb.requireBalance(t, ledger.Wrapped, user2, 100)
	supply, err := tb.ledger.Supply(tb.db, ledger.Wrapped)
	require.NoError(t, err)
	require.Equal(t, "100", supply.String())

	processed, err := tb.IsProcessed(ctx, MintDirection, 1)
	require.NoError(t, err)
	require.True(t, processed)
	processed, err = tb.IsProcessed(ctx, UnlockDirection, 1)
	require.NoError(t, err)
	require.False(t, processed)
}

// Scenario C
func TestPausedBridgeRejectsOperations(t *testing.T) {
	ctx := context.Background()
	tb := newTestBridge(t, testConfig(), nil)
	_, err := tb.Mint(ctx, ownerA, user1, big.NewInt(10), 1)
	require.NoError(t, err)

	changed, err := tb.Pause(ctx, ownerA)
	require.NoError(t, err)
	require.True(t, changed)
	before := tb.record(t)

	_, err = tb.Lock(ctx, user1, big.NewInt(50), destAddr)
	require.ErrorIs(t, err, ErrBridgePaused)
	_, err = tb.Burn(ctx, user1, big.NewInt(5), destAddr)
	require.ErrorIs(t, err, ErrBridgePaused)
	_, err = tb.Mint(ctx, ownerA, user2, big.NewInt(50), 2)
	require.ErrorIs(t, err, ErrBridgePaused)
	_, err = tb.Unlock(ctx, ownerA, user2, big.NewInt(50), 1)
	require.ErrorIs(t, err, ErrBridgePaused)

	require.Equal(t, before, tb.record(t))
	tb.requireBalance(t, ledger.Native, user1, 1000)
	tb.requireBalance(t, ledger.Native, custody, 0)
	tb.requireBalance(t, ledger.Wrapped, user1, 10)
	tb.requireBalance(t, ledger.Wrapped, user2, 0)

	changed, err = tb.Unpause(ctx, ownerA)
	require.NoError(t, err)
	require.True(t, changed)
	_, err = tb.Lock(ctx, user1, big.NewInt(50), destAddr)
	require.NoError(t, err)
}

func TestPausedCheckedBeforeProcessed(t *testing.T) {
	ctx := context.Background()
	tb := newTestBridge(t, testConfig(), nil)
	_, err := tb.Lock(ctx, user1, big.NewInt(100), destAddr)
	require.NoError(t, err)
	_, err = tb.Mint(ctx, ownerA, user2, big.NewInt(10), 1)
	require.NoError(t, err)
	_, err = tb.Unlock(ctx, ownerA, user2, big.NewInt(10), 1)
	require.NoError(t, err)

	_, err = tb.Pause(ctx, ownerA)
	require.NoError(t, err)

	_, err = tb.Mint(ctx, ownerA, user2, big.NewInt(10), 1)
	require.ErrorIs(t, err, ErrBridgePaused)
	require.NotErrorIs(t, err, ErrAlreadyProcessed)
	_, err = tb.Unlock(ctx, ownerA, user2, big.NewInt(10), 1)
	require.ErrorIs(t, err, ErrBridgePaused)
	require.NotErrorIs(t, err, ErrAlreadyProcessed)

	// unauthorized callers see the pause first too
	_, err = tb.Mint(ctx, attacker, user2, big.NewInt(10), 1)
	require.ErrorIs(t, err, ErrBridgePaused)
}

// Scenario D
func TestMintUnauthorized(t *testing.T) {
	ctx := context.Background()
	tb := newTestBridge(t, testConfig(), nil)

	_, err := tb.Mint(ctx, attacker, user2, big.NewInt(100), 2)
	require.ErrorIs(t, err, ErrUnauthorized)
	require.Equal(t, KindAuthorization, KindOf(err))

	processed, err := tb.IsProcessed(ctx, MintDirection, 2)
	require.NoError(t, err)
	require.False(t, processed)
	tb.requireBalance(t, ledger.Wrapped, user2, 0)

	_, err = tb.Unlock(ctx, attacker, user2, big.NewInt(100), 2)
	require.ErrorIs(t, err, ErrUnauthorized)
	_, err = tb.Pause(ctx, attacker)
	require.ErrorIs(t, err, ErrUnauthorized)
	_, err = tb.Unpause(ctx, attacker)
	require.ErrorIs(t, err, ErrUnauthorized)
	require.False(t, tb.record(t).Paused)
}

// Scenario E
func TestLockInvalidInput(t *testing.T) {
	ctx := context.Background()
	tb := newTestBridge(t, testConfig(), nil)

	testCases := []struct {
		description string
		amount      *big.Int
		destination string
		expectedErr error
	}{
		{"zero amount", big.NewInt(0), destAddr, ErrInvalidAmount},
		{"negative amount", big.NewInt(-5), destAddr, ErrInvalidAmount},
		{"nil amount", nil, destAddr, ErrInvalidAmount},
		{"amount over 256 bits", new(big.Int).Lsh(big.NewInt(1), MaxAmountBits), destAddr, ErrInvalidAmount},
		{"missing prefix", big.NewInt(1), destAddr[2:], ErrInvalidDestinationAddress},
		{"short address", big.NewInt(1), "0xabc", ErrInvalidDestinationAddress},
		{"not hex", big.NewInt(1), "0xZZZ0000000000000000000000000000000000042", ErrInvalidDestinationAddress},
		{"empty address", big.NewInt(1), "", ErrInvalidDestinationAddress},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			_, err := tb.Lock(ctx, user1, tc.amount, tc.destination)
			require.ErrorIs(t, err, tc.expectedErr)
			require.Equal(t, KindValidation, KindOf(err))
			require.True(t, Retryable(err))
			_, err = tb.Burn(ctx, user1, tc.amount, tc.destination)
			require.ErrorIs(t, err, tc.expectedErr)
		})
	}
	require.Equal(t, uint64(0), tb.record(t).Nonce)
	tb.requireBalance(t, ledger.Native, user1, 1000)
	require.Len(t, tb.events(t), 1)
}

func TestLockInsufficientBalance(t *testing.T) {
	ctx := context.Background()
	tb := newTestBridge(t, testConfig(), nil)

	_, err := tb.Lock(ctx, user2, big.NewInt(1), destAddr)
	require.ErrorIs(t, err, ErrLedger)
	require.ErrorIs(t, err, ledger.ErrInsufficientBalance)
	require.Equal(t, KindCollaborator, KindOf(err))
	require.Equal(t, uint64(0), tb.record(t).Nonce)
}

func TestCustodyLockAndUnlockRejected(t *testing.T) {
	ctx := context.Background()
	tb := newTestBridge(t, testConfig(), nil)
	_, err := tb.Lock(ctx, user1, big.NewInt(100), destAddr)
	require.NoError(t, err)
	before := tb.record(t)
	eventsBefore := len(tb.events(t))

	_, err = tb.Lock(ctx, custody, big.NewInt(100), destAddr)
	require.ErrorIs(t, err, ErrLedger)
	require.ErrorIs(t, err, ledger.ErrInvalidAccount)
	require.Equal(t, KindCollaborator, KindOf(err))

	_, err = tb.Unlock(ctx, ownerA, custody, big.NewInt(100), 1)
	require.ErrorIs(t, err, ledger.ErrInvalidAccount)
	processed, err := tb.IsProcessed(ctx, UnlockDirection, 1)
	require.NoError(t, err)
	require.False(t, processed)

	require.Equal(t, before, tb.record(t))
	require.Equal(t, uint64(1), tb.record(t).Nonce)
	require.Len(t, tb.events(t), eventsBefore)
	tb.requireBalance(t, ledger.Native, custody, 100)
}

func TestNonceMonotonicity(t *testing.T) {
	ctx := context.Background()
	tb := newTestBridge(t, testConfig(), nil)
	_, err := tb.Mint(ctx, ownerA, user1, big.NewInt(1000), 1)
	require.NoError(t, err)

	successful := uint64(0)
	for i := 0; i < 10; i++ {
		if i%2 == 0 {
			evt, err := tb.Lock(ctx, user1, big.NewInt(10), destAddr)
			require.NoError(t, err)
			successful++
			require.Equal(t, successful, evt.Nonce)
		} else {
			evt, err := tb.Burn(ctx, user1, big.NewInt(10), destAddr)
			require.NoError(t, err)
			successful++
			require.Equal(t, successful, evt.Nonce)
		}
		// failing calls never move the nonce
		_, err = tb.Lock(ctx, user2, big.NewInt(10), destAddr)
		require.Error(t, err)
	}
	require.Equal(t, successful, tb.record(t).Nonce)
	tb.requireBalance(t, ledger.Native, custody, 50)
	tb.requireBalance(t, ledger.Wrapped, user1, 950)
}

func TestUnlock(t *testing.T) {
	ctx := context.Background()
	tb := newTestBridge(t, testConfig(), nil)
	_, err := tb.Lock(ctx, user1, big.NewInt(100), destAddr)
	require.NoError(t, err)

	evt, err := tb.Unlock(ctx, ownerA, user2, big.NewInt(60), 1)
	require.NoError(t, err)
	require.Equal(t, UnlockEvent{To: user2, Amount: big.NewInt(60), Nonce: 1}, *evt)
	tb.requireBalance(t, ledger.Native, user2, 60)
	tb.requireBalance(t, ledger.Native, custody, 40)

	_, err = tb.Unlock(ctx, ownerA, user2, big.NewInt(60), 1)
	require.ErrorIs(t, err, ErrAlreadyProcessed)

	// the custody can't release more than it holds
	_, err = tb.Unlock(ctx, ownerA, user2, big.NewInt(41), 2)
	require.ErrorIs(t, err, ledger.ErrInsufficientBalance)
	processed, err := tb.IsProcessed(ctx, UnlockDirection, 2)
	require.NoError(t, err)
	require.False(t, processed)

	// mint and unlock nonces are independent
	_, err = tb.Mint(ctx, ownerA, user2, big.NewInt(1), 1)
	require.NoError(t, err)
}

func TestRedeemAmountWidth(t *testing.T) {
	ctx := context.Background()
	tb := newTestBridge(t, testConfig(), nil)
	tooWide := new(big.Int).Lsh(big.NewInt(1), MaxAmountBits)

	_, err := tb.Mint(ctx, ownerA, user2, tooWide, 1)
	require.ErrorIs(t, err, ErrInvalidAmount)
	processed, err := tb.IsProcessed(ctx, MintDirection, 1)
	require.NoError(t, err)
	require.False(t, processed)

	widest := new(big.Int).Sub(tooWide, big.NewInt(1))
	_, err = tb.Mint(ctx, ownerA, user2, widest, 1)
	require.NoError(t, err)
	stored, err := tb.EventByNonce(ctx, MintKind, 1)
	require.NoError(t, err)
	require.Equal(t, widest.String(), stored.Amount.String())
	require.Equal(t, stored.ComputeHash(), stored.Hash)
}

func TestInvalidRedeemNonce(t *testing.T) {
	ctx := context.Background()
	tb := newTestBridge(t, testConfig(), nil)

	for _, nonce := range []uint64{0, MaxNonce + 1} {
		_, err := tb.Mint(ctx, ownerA, user2, big.NewInt(1), nonce)
		require.ErrorIs(t, err, ErrInvalidNonce)
		_, err = tb.Unlock(ctx, ownerA, user2, big.NewInt(1), nonce)
		require.ErrorIs(t, err, ErrInvalidNonce)
	}
	_, err := tb.Mint(ctx, ownerA, user2, big.NewInt(0), 1)
	require.ErrorIs(t, err, ErrInvalidAmount)
	processed, err := tb.IsProcessed(ctx, MintDirection, 1)
	require.NoError(t, err)
	require.False(t, processed)

	_, err = tb.IsProcessed(ctx, Direction("sideways"), 1)
	require.Error(t, err)
}

func TestNonceOverflow(t *testing.T) {
	ctx := context.Background()
	tb := newTestBridge(t, testConfig(), nil)
	_, err := tb.db.Exec(`UPDATE bridge_record SET nonce = $1;`, MaxNonce)
	require.NoError(t, err)

	_, err = tb.Lock(ctx, user1, big.NewInt(1), destAddr)
	require.ErrorIs(t, err, ErrNonceOverflow)
	require.Equal(t, KindState, KindOf(err))
	require.Equal(t, MaxNonce, tb.record(t).Nonce)
	tb.requireBalance(t, ledger.Native, user1, 1000)
}

func TestLedgerFailureLeavesNoTrace(t *testing.T) {
	ctx := context.Background()
	sqlDB := newTestDB(t)
	adapter := mocks.NewLedgerAdapter(t)
	b, err := New(log.WithFields("module", "bridge-test"), testConfig(), sqlDB, adapter, nil)
	require.NoError(t, err)
	_, err = b.Initialize(ctx, ownerA)
	require.NoError(t, err)
	before, err := b.Record(ctx)
	require.NoError(t, err)

	errLedger := errors.New("ledger is down")
	// the adapter writes before failing, the write must be rolled back with the tx
	writeThenFail := func(ctx context.Context, tx db.Querier, account common.Address, amount *big.Int) error {
		_, err := tx.Exec(`INSERT INTO ledger_balance (asset, account, amount) VALUES ('native', $1, '1');`,
			account.Hex())
		require.NoError(t, err)
		return errLedger
	}
	adapter.EXPECT().Debit(mock.Anything, mock.Anything, user1, big.NewInt(10)).RunAndReturn(writeThenFail)
	adapter.EXPECT().Burn(mock.Anything, mock.Anything, user1, big.NewInt(10)).Return(errLedger)
	adapter.EXPECT().Mint(mock.Anything, mock.Anything, user2, big.NewInt(10)).Return(errLedger).Once()
	adapter.EXPECT().Credit(mock.Anything, mock.Anything, user2, big.NewInt(10)).Return(errLedger)

	_, err = b.Lock(ctx, user1, big.NewInt(10), destAddr)
	require.ErrorIs(t, err, errLedger)
	require.Equal(t, KindCollaborator, KindOf(err))
	_, err = b.Burn(ctx, user1, big.NewInt(10), destAddr)
	require.ErrorIs(t, err, errLedger)
	_, err = b.Mint(ctx, ownerA, user2, big.NewInt(10), 1)
	require.ErrorIs(t, err, errLedger)
	_, err = b.Unlock(ctx, ownerA, user2, big.NewInt(10), 1)
	require.ErrorIs(t, err, errLedger)

	after, err := b.Record(ctx)
	require.NoError(t, err)
	require.Equal(t, before, after)
	events, err := b.Events(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	var balances int
	require.NoError(t, sqlDB.QueryRow(`SELECT COUNT(*) FROM ledger_balance;`).Scan(&balances))
	require.Zero(t, balances)
	for _, direction := range []Direction{MintDirection, UnlockDirection} {
		processed, err := b.IsProcessed(ctx, direction, 1)
		require.NoError(t, err)
		require.False(t, processed, direction)
	}

	// a failed mint can be retried
	adapter.EXPECT().Mint(mock.Anything, mock.Anything, user2, big.NewInt(10)).Return(nil).Once()
	_, err = b.Mint(ctx, ownerA, user2, big.NewInt(10), 1)
	require.NoError(t, err)
}

func TestOracleAuthorizesRelayer(t *testing.T) {
	ctx := context.Background()
	oracle := mocks.NewAuthorizationOracle(t)
	tb := newTestBridge(t, testConfig(), oracle)

	oracle.EXPECT().IsAuthorized(relayer, authz.Operation{Kind: authz.Mint, Nonce: 3}).Return(true).Once()
	oracle.EXPECT().IsAuthorized(relayer, authz.Operation{Kind: authz.Mint, Nonce: 4}).Return(false).Once()
	oracle.EXPECT().IsAuthorized(relayer, authz.Operation{Kind: authz.Pause}).Return(true).Once()

	_, err := tb.Mint(ctx, relayer, user2, big.NewInt(5), 3)
	require.NoError(t, err)
	_, err = tb.Mint(ctx, relayer, user2, big.NewInt(5), 4)
	require.ErrorIs(t, err, ErrUnauthorized)
	// the replay is rejected before the oracle is consulted
	_, err = tb.Mint(ctx, relayer, user2, big.NewInt(5), 3)
	require.ErrorIs(t, err, ErrAlreadyProcessed)
	// the owner never needs the oracle
	_, err = tb.Mint(ctx, ownerA, user2, big.NewInt(5), 4)
	require.NoError(t, err)

	changed, err := tb.Pause(ctx, relayer)
	require.NoError(t, err)
	require.True(t, changed)
	tb.requireBalance(t, ledger.Wrapped, user2, 10)
}

func TestAllowlistOracle(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	cfg.Relayers = authz.Config{Unlock: []common.Address{relayer}}
	oracle, err := authz.New(cfg.Relayers)
	require.NoError(t, err)
	tb := newTestBridge(t, cfg, oracle)

	_, err = tb.Lock(ctx, user1, big.NewInt(10), destAddr)
	require.NoError(t, err)
	_, err = tb.Mint(ctx, relayer, user2, big.NewInt(10), 1)
	require.ErrorIs(t, err, ErrUnauthorized)
	_, err = tb.Unlock(ctx, relayer, user2, big.NewInt(10), 1)
	require.NoError(t, err)
}

func TestPauseIsIdempotent(t *testing.T) {
	ctx := context.Background()
	tb := newTestBridge(t, testConfig(), nil)

	changed, err := tb.Unpause(ctx, ownerA)
	require.NoError(t, err)
	require.False(t, changed)

	changed, err = tb.Pause(ctx, ownerA)
	require.NoError(t, err)
	require.True(t, changed)
	version := tb.record(t).Version

	changed, err = tb.Pause(ctx, ownerA)
	require.NoError(t, err)
	require.False(t, changed)
	require.Equal(t, version, tb.record(t).Version)

	changed, err = tb.Unpause(ctx, ownerA)
	require.NoError(t, err)
	require.True(t, changed)

	events := tb.events(t)
	require.Len(t, events, 3)
	pause, err := events[1].PauseEvent()
	require.NoError(t, err)
	require.Equal(t, PauseEvent{By: ownerA, Paused: true}, *pause)
	unpause, err := events[2].PauseEvent()
	require.NoError(t, err)
	require.False(t, unpause.Paused)
}

func TestConcurrentMintSameNonce(t *testing.T) {
	ctx := context.Background()
	tb := newTestBridge(t, testConfig(), nil)

	const callers = 20
	results := make([]error, callers)
	var g errgroup.Group
	for i := 0; i < callers; i++ {
		i := i
		g.Go(func() error {
			_, results[i] = tb.Mint(ctx, ownerA, user2, big.NewInt(7), 42)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		require.ErrorIs(t, err, ErrAlreadyProcessed)
	}
	require.Equal(t, 1, succeeded)
	tb.requireBalance(t, ledger.Wrapped, user2, 7)
}

func TestConcurrentLocks(t *testing.T) {
	ctx := context.Background()
	tb := newTestBridge(t, testConfig(), nil)

	const callers = 20
	var g errgroup.Group
	for i := 0; i < callers; i++ {
		g.Go(func() error {
			_, err := tb.Lock(ctx, user1, big.NewInt(1), destAddr)
			return err
		})
	}
	require.NoError(t, g.Wait())

	require.Equal(t, uint64(callers), tb.record(t).Nonce)
	seen := make(map[uint64]bool)
	for _, evt := range tb.events(t) {
		if evt.Kind == LockKind {
			require.False(t, seen[evt.Nonce])
			seen[evt.Nonce] = true
		}
	}
	require.Len(t, seen, callers)
	tb.requireBalance(t, ledger.Native, custody, callers)
}

func TestEventLogIsAppendOnly(t *testing.T) {
	ctx := context.Background()
	tb := newTestBridge(t, testConfig(), nil)
	_, err := tb.Lock(ctx, user1, big.NewInt(1), destAddr)
	require.NoError(t, err)

	_, err = tb.db.Exec(`UPDATE bridge_event SET amount = '1000' WHERE kind = 'lock';`)
	require.Error(t, err)
	_, err = tb.db.Exec(`DELETE FROM bridge_event;`)
	require.Error(t, err)

	events := tb.events(t)
	require.Len(t, events, 2)
	for i, evt := range events {
		require.Equal(t, evt.ComputeHash(), evt.Hash)
		if i > 0 {
			require.Greater(t, evt.Version, events[i-1].Version)
		}
	}

	page, err := tb.Events(ctx, events[1].ID, 10)
	require.NoError(t, err)
	require.Len(t, page, 1)
	_, err = tb.Events(ctx, 0, 0)
	require.Error(t, err)

	_, err = tb.EventByNonce(ctx, LockKind, 2)
	require.ErrorIs(t, err, db.ErrNotFound)
}

func TestSubscribeOnlyCommitted(t *testing.T) {
	ctx := context.Background()
	tb := newTestBridge(t, testConfig(), nil)
	events, unsubscribe := tb.Subscribe(4)

	_, err := tb.Lock(ctx, user2, big.NewInt(1), destAddr)
	require.Error(t, err)
	_, err = tb.Mint(ctx, ownerA, user2, big.NewInt(1), 1)
	require.NoError(t, err)

	evt := <-events
	require.Equal(t, MintKind, evt.Kind)
	require.NotZero(t, evt.ID)

	unsubscribe()
	_, ok := <-events
	require.False(t, ok)
}
