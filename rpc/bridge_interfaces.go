package rpc

import (
	"context"
	"math/big"

	"github.com/0xPolygon/lockbridge/bridge"
	"github.com/ethereum/go-ethereum/common"
)

type Bridger interface {
	Name() string
	Initialize(ctx context.Context, caller common.Address) (*bridge.Record, error)
	Lock(ctx context.Context, caller common.Address, amount *big.Int, destination string) (*bridge.LockEvent, error)
	Burn(ctx context.Context, caller common.Address, amount *big.Int, destination string) (*bridge.BurnEvent, error)
	Mint(
		ctx context.Context, caller, recipient common.Address, amount *big.Int, nonce uint64,
	) (*bridge.MintEvent, error)
	Unlock(
		ctx context.Context, caller, recipient common.Address, amount *big.Int, nonce uint64,
	) (*bridge.UnlockEvent, error)
	Pause(ctx context.Context, caller common.Address) (bool, error)
	Unpause(ctx context.Context, caller common.Address) (bool, error)
	Record(ctx context.Context) (*bridge.Record, error)
	Events(ctx context.Context, fromID int64, limit int) ([]*bridge.Event, error)
	IsProcessed(ctx context.Context, direction bridge.Direction, nonce uint64) (bool, error)
}

var _ Bridger = (*bridge.Bridge)(nil)
