package relayer

import (
	"context"
	"math/big"

	"github.com/0xPolygon/lockbridge/bridge"
	"github.com/ethereum/go-ethereum/common"
)

// BridgeRedeemer redeems on an in-process bridge as identity
type BridgeRedeemer struct {
	bridge   *bridge.Bridge
	identity common.Address
}

func NewBridgeRedeemer(b *bridge.Bridge, identity common.Address) *BridgeRedeemer {
	return &BridgeRedeemer{bridge: b, identity: identity}
}

func (r *BridgeRedeemer) Mint(ctx context.Context, recipient common.Address, amount *big.Int, nonce uint64) error {
	_, err := r.bridge.Mint(ctx, r.identity, recipient, amount, nonce)
	return err
}

func (r *BridgeRedeemer) Unlock(ctx context.Context, recipient common.Address, amount *big.Int, nonce uint64) error {
	_, err := r.bridge.Unlock(ctx, r.identity, recipient, amount, nonce)
	return err
}
