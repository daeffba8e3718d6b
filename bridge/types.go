package bridge

import (
	"fmt"
	"math/big"
	"time"

	"github.com/0xPolygon/lockbridge/common"
	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/iden3/go-iden3-crypto/keccak256"
)

// EventKind names the state change recorded by an Event
type EventKind string

const (
	InitializedKind EventKind = "initialized"
	LockKind        EventKind = "lock"
	BurnKind        EventKind = "burn"
	MintKind        EventKind = "mint"
	UnlockKind      EventKind = "unlock"
	PauseKind       EventKind = "pause"
	UnpauseKind     EventKind = "unpause"
)

// Direction selects one of the processed nonce sets
type Direction string

const (
	// MintDirection holds the nonces of lock events redeemed by mint
	MintDirection Direction = "mint"
	// UnlockDirection holds the nonces of burn events redeemed by unlock
	UnlockDirection Direction = "unlock"
)

func (d Direction) valid() bool {
	return d == MintDirection || d == UnlockDirection
}

// Record is the singleton state of a bridge
type Record struct {
	ID            int64             `meddler:"id"`
	Owner         ethCommon.Address `meddler:"owner,address"`
	Nonce         uint64            `meddler:"nonce"`
	Paused        bool              `meddler:"paused"`
	Version       uint64            `meddler:"version"`
	InitializedAt uint64            `meddler:"initialized_at"`
}

func (r *Record) String() string {
	return fmt.Sprintf("Record{Owner: %s, Nonce: %d, Paused: %t, Version: %d}",
		r.Owner.Hex(), r.Nonce, r.Paused, r.Version)
}

// Event is an entry of the append-only log. Account is the actor of the change
// (sender of lock/burn, recipient of mint/unlock, caller of pause/unpause/initialize).
type Event struct {
	ID          int64             `meddler:"id,pk"`
	Kind        EventKind         `meddler:"kind"`
	Nonce       uint64            `meddler:"nonce"`
	Account     ethCommon.Address `meddler:"account,address"`
	Destination string            `meddler:"destination"`
	Amount      *big.Int          `meddler:"amount,bigint"`
	Version     uint64            `meddler:"version"`
	Timestamp   uint64            `meddler:"created_at"`
	Hash        ethCommon.Hash    `meddler:"hash,hash"`
}

// ComputeHash returns the digest identifying the event content
func (e *Event) ComputeHash() ethCommon.Hash {
	return ethCommon.BytesToHash(keccak256.Hash(
		[]byte(e.Kind),
		common.Uint64ToBytes(e.Nonce),
		e.Account.Bytes(),
		[]byte(e.Destination),
		common.AmountToBytes(e.Amount),
		common.Uint64ToBytes(e.Version),
	))
}

func (e *Event) String() string {
	return fmt.Sprintf("Event{ID: %d, Kind: %s, Nonce: %d, Account: %s, Destination: %q, Amount: %s, Version: %d}",
		e.ID, e.Kind, e.Nonce, e.Account.Hex(), e.Destination, e.Amount, e.Version)
}

// LockEvent is the view of a lock entry consumed by relayers
type LockEvent struct {
	From               ethCommon.Address
	Amount             *big.Int
	Nonce              uint64
	DestinationAddress string
	Timestamp          time.Time
}

// BurnEvent is the view of a burn entry consumed by relayers
type BurnEvent struct {
	From               ethCommon.Address
	Amount             *big.Int
	Nonce              uint64
	DestinationAddress string
	Timestamp          time.Time
}

// MintEvent records a redeemed lock
type MintEvent struct {
	To     ethCommon.Address
	Amount *big.Int
	Nonce  uint64
}

// UnlockEvent records a redeemed burn
type UnlockEvent struct {
	To     ethCommon.Address
	Amount *big.Int
	Nonce  uint64
}

// PauseEvent records an effective change of the pause flag
type PauseEvent struct {
	By     ethCommon.Address
	Paused bool
}

func (e *Event) LockEvent() (*LockEvent, error) {
	if e.Kind != LockKind {
		return nil, fmt.Errorf("event %d is %s, not %s", e.ID, e.Kind, LockKind)
	}
	return &LockEvent{
		From:               e.Account,
		Amount:             new(big.Int).Set(e.Amount),
		Nonce:              e.Nonce,
		DestinationAddress: e.Destination,
		Timestamp:          time.Unix(int64(e.Timestamp), 0), //nolint:gosec
	}, nil
}

func (e *Event) BurnEvent() (*BurnEvent, error) {
	if e.Kind != BurnKind {
		return nil, fmt.Errorf("event %d is %s, not %s", e.ID, e.Kind, BurnKind)
	}
	return &BurnEvent{
		From:               e.Account,
		Amount:             new(big.Int).Set(e.Amount),
		Nonce:              e.Nonce,
		DestinationAddress: e.Destination,
		Timestamp:          time.Unix(int64(e.Timestamp), 0), //nolint:gosec
	}, nil
}

func (e *Event) MintEvent() (*MintEvent, error) {
	if e.Kind != MintKind {
		return nil, fmt.Errorf("event %d is %s, not %s", e.ID, e.Kind, MintKind)
	}
	return &MintEvent{To: e.Account, Amount: new(big.Int).Set(e.Amount), Nonce: e.Nonce}, nil
}

func (e *Event) UnlockEvent() (*UnlockEvent, error) {
	if e.Kind != UnlockKind {
		return nil, fmt.Errorf("event %d is %s, not %s", e.ID, e.Kind, UnlockKind)
	}
	return &UnlockEvent{To: e.Account, Amount: new(big.Int).Set(e.Amount), Nonce: e.Nonce}, nil
}

func (e *Event) PauseEvent() (*PauseEvent, error) {
	if e.Kind != PauseKind && e.Kind != UnpauseKind {
		return nil, fmt.Errorf("event %d is %s, not a pause change", e.ID, e.Kind)
	}
	return &PauseEvent{By: e.Account, Paused: e.Kind == PauseKind}, nil
}
