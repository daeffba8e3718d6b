package types

import (
	"github.com/0xPolygon/lockbridge/bridge"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

type Record struct {
	Owner         common.Address `json:"owner"`
	Nonce         hexutil.Uint64 `json:"nonce"`
	Paused        bool           `json:"paused"`
	Version       hexutil.Uint64 `json:"version"`
	InitializedAt hexutil.Uint64 `json:"initializedAt"`
}

func NewRecord(r *bridge.Record) *Record {
	return &Record{
		Owner:         r.Owner,
		Nonce:         hexutil.Uint64(r.Nonce),
		Paused:        r.Paused,
		Version:       hexutil.Uint64(r.Version),
		InitializedAt: hexutil.Uint64(r.InitializedAt),
	}
}

type Event struct {
	ID          int64          `json:"id"`
	Kind        string         `json:"kind"`
	Nonce       hexutil.Uint64 `json:"nonce"`
	Account     common.Address `json:"account"`
	Destination string         `json:"destination,omitempty"`
	Amount      *hexutil.Big   `json:"amount"`
	Version     hexutil.Uint64 `json:"version"`
	Timestamp   hexutil.Uint64 `json:"timestamp"`
	Hash        common.Hash    `json:"hash"`
}

func NewEvent(e *bridge.Event) *Event {
	return &Event{
		ID:          e.ID,
		Kind:        string(e.Kind),
		Nonce:       hexutil.Uint64(e.Nonce),
		Account:     e.Account,
		Destination: e.Destination,
		Amount:      (*hexutil.Big)(e.Amount),
		Version:     hexutil.Uint64(e.Version),
		Timestamp:   hexutil.Uint64(e.Timestamp),
		Hash:        e.Hash,
	}
}

// ToBridge converts back to the bridge event
func (e *Event) ToBridge() *bridge.Event {
	return &bridge.Event{
		ID:          e.ID,
		Kind:        bridge.EventKind(e.Kind),
		Nonce:       uint64(e.Nonce),
		Account:     e.Account,
		Destination: e.Destination,
		Amount:      e.Amount.ToInt(),
		Version:     uint64(e.Version),
		Timestamp:   uint64(e.Timestamp),
		Hash:        e.Hash,
	}
}

// TransferResult is the result of lock and burn
type TransferResult struct {
	From        common.Address `json:"from"`
	Amount      *hexutil.Big   `json:"amount"`
	Nonce       hexutil.Uint64 `json:"nonce"`
	Destination string         `json:"destination"`
	Timestamp   hexutil.Uint64 `json:"timestamp"`
}

// RedeemResult is the result of mint and unlock
type RedeemResult struct {
	Recipient common.Address `json:"recipient"`
	Amount    *hexutil.Big   `json:"amount"`
	Nonce     hexutil.Uint64 `json:"nonce"`
}

// PauseResult is the result of pause and unpause. Changed is false for a no-op.
type PauseResult struct {
	Paused  bool `json:"paused"`
	Changed bool `json:"changed"`
}
