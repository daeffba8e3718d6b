package rpc

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"sync/atomic"
	"time"

	"github.com/0xPolygon/lockbridge/bridge"
	"github.com/0xPolygon/lockbridge/rpc/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

const defaultRequestTTL = time.Minute

// Signer submits signed requests to one bridge of a remote node
type Signer struct {
	client       BridgeClientInterface
	key          *ecdsa.PrivateKey
	deploymentID string
	bridgeName   string
	ttl          time.Duration
	salt         atomic.Uint64
}

func NewSigner(client BridgeClientInterface, key *ecdsa.PrivateKey, deploymentID, bridgeName string) *Signer {
	s := &Signer{
		client:       client,
		key:          key,
		deploymentID: deploymentID,
		bridgeName:   bridgeName,
		ttl:          defaultRequestTTL,
	}
	s.salt.Store(uint64(time.Now().UnixNano()))
	return s
}

// Address is the caller identity of the requests
func (s *Signer) Address() common.Address {
	return crypto.PubkeyToAddress(s.key.PublicKey)
}

func (s *Signer) envelope(method string, params interface{}) (*types.Envelope, error) {
	env, err := types.NewEnvelope(s.deploymentID, s.bridgeName, method, params,
		time.Now().Add(s.ttl), s.salt.Add(1))
	if err != nil {
		return nil, err
	}
	return env, env.Sign(s.key)
}

func (s *Signer) Initialize() (*types.Record, error) {
	env, err := s.envelope("bridge_initialize", types.InitializeParams{})
	if err != nil {
		return nil, err
	}
	return s.client.Initialize(env)
}

func (s *Signer) Lock(amount *big.Int, destination string) (*types.TransferResult, error) {
	env, err := s.envelope("bridge_lock", types.TransferParams{
		Amount:      (*hexutil.Big)(amount),
		Destination: destination,
	})
	if err != nil {
		return nil, err
	}
	return s.client.Lock(env)
}

func (s *Signer) Burn(amount *big.Int, destination string) (*types.TransferResult, error) {
	env, err := s.envelope("bridge_burn", types.TransferParams{
		Amount:      (*hexutil.Big)(amount),
		Destination: destination,
	})
	if err != nil {
		return nil, err
	}
	return s.client.Burn(env)
}

// Mint redeems a lock. The signature matches the relayer Redeemer.
func (s *Signer) Mint(_ context.Context, recipient common.Address, amount *big.Int, nonce uint64) error {
	env, err := s.envelope("bridge_mint", types.RedeemParams{
		Recipient: recipient,
		Amount:    (*hexutil.Big)(amount),
		Nonce:     hexutil.Uint64(nonce),
	})
	if err != nil {
		return err
	}
	_, err = s.client.Mint(env)
	return err
}

// Unlock redeems a burn. The signature matches the relayer Redeemer.
func (s *Signer) Unlock(_ context.Context, recipient common.Address, amount *big.Int, nonce uint64) error {
	env, err := s.envelope("bridge_unlock", types.RedeemParams{
		Recipient: recipient,
		Amount:    (*hexutil.Big)(amount),
		Nonce:     hexutil.Uint64(nonce),
	})
	if err != nil {
		return err
	}
	_, err = s.client.Unlock(env)
	return err
}

func (s *Signer) Pause() (*types.PauseResult, error) {
	env, err := s.envelope("bridge_pause", types.PauseParams{})
	if err != nil {
		return nil, err
	}
	return s.client.Pause(env)
}

func (s *Signer) Unpause() (*types.PauseResult, error) {
	env, err := s.envelope("bridge_unpause", types.PauseParams{})
	if err != nil {
		return nil, err
	}
	return s.client.Unpause(env)
}

// EventSource reads the event log of a bridge of a remote node
type EventSource struct {
	client     BridgeClientInterface
	bridgeName string
}

func NewEventSource(client BridgeClientInterface, bridgeName string) *EventSource {
	return &EventSource{client: client, bridgeName: bridgeName}
}

func (s *EventSource) Events(_ context.Context, fromID int64, limit int) ([]*bridge.Event, error) {
	if limit > MaxEventsPerRequest {
		limit = MaxEventsPerRequest
	}
	events, err := s.client.GetEvents(s.bridgeName, fromID, limit)
	if err != nil {
		return nil, err
	}
	result := make([]*bridge.Event, 0, len(events))
	for _, e := range events {
		result = append(result, e.ToBridge())
	}
	return result, nil
}
