package bridge

import (
	"context"
	"math/big"

	"github.com/0xPolygon/lockbridge/authz"
	"github.com/0xPolygon/lockbridge/db"
	"github.com/ethereum/go-ethereum/common"
)

// LedgerAdapter moves fungible balances. Every call runs inside the bridge
// transaction tx and must leave balances unchanged when it returns an error.
type LedgerAdapter interface {
	// Debit moves amount from account into the bridge custody
	Debit(ctx context.Context, tx db.Querier, account common.Address, amount *big.Int) error
	// Credit releases amount from the bridge custody to account
	Credit(ctx context.Context, tx db.Querier, account common.Address, amount *big.Int) error
	Mint(ctx context.Context, tx db.Querier, account common.Address, amount *big.Int) error
	Burn(ctx context.Context, tx db.Querier, account common.Address, amount *big.Int) error
}

// AuthorizationOracle decides whether identity, which is not the owner, may run op.
// A mint/unlock accepted by the oracle is trusted to redeem a real lock/burn of the
// opposite ledger: the bridge itself only guarantees that a nonce is redeemed once.
type AuthorizationOracle interface {
	IsAuthorized(identity common.Address, op authz.Operation) bool
}
