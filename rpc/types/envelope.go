package types

import (
	"crypto/ecdsa"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/0xPolygon/lockbridge/common"
	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	ErrMissingSignature = errors.New("request is not signed")
	ErrInvalidSignature = errors.New("invalid request signature")
	ErrExpiredRequest   = errors.New("request expired")
)

// Envelope is a state changing request signed by its caller. The address
// recovered from the signature is the caller identity.
type Envelope struct {
	// DeploymentID of the target deployment
	DeploymentID string `json:"deploymentID"`
	// Bridge is the name of the target bridge instance
	Bridge string `json:"bridge"`
	// Method is the RPC method the envelope is valid for
	Method string `json:"method"`
	// Params are the JSON encoded method params
	Params json.RawMessage `json:"params"`
	// Deadline is the unix time after which the request is rejected
	Deadline uint64 `json:"deadline"`
	// Salt tells apart otherwise identical requests
	Salt      uint64        `json:"salt"`
	Signature hexutil.Bytes `json:"signature"`
}

// NewEnvelope returns an unsigned envelope for params
func NewEnvelope(
	deploymentID, bridge, method string, params interface{}, deadline time.Time, salt uint64,
) (*Envelope, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("error encoding %s params: %w", method, err)
	}
	return &Envelope{
		DeploymentID: deploymentID,
		Bridge:       bridge,
		Method:       method,
		Params:       raw,
		Deadline:     uint64(deadline.Unix()),
		Salt:         salt,
	}, nil
}

// Digest is the hash signed by the caller
func (e *Envelope) Digest() ethCommon.Hash {
	return crypto.Keccak256Hash(
		[]byte(e.DeploymentID),
		[]byte{0},
		[]byte(e.Bridge),
		[]byte{0},
		[]byte(e.Method),
		[]byte{0},
		e.Params,
		common.Uint64ToBytes(e.Deadline),
		common.Uint64ToBytes(e.Salt),
	)
}

func (e *Envelope) Sign(key *ecdsa.PrivateKey) error {
	sig, err := crypto.Sign(e.Digest().Bytes(), key)
	if err != nil {
		return err
	}
	e.Signature = sig
	return nil
}

// Caller recovers the address that signed the envelope
func (e *Envelope) Caller() (ethCommon.Address, error) {
	if len(e.Signature) == 0 {
		return ethCommon.Address{}, ErrMissingSignature
	}
	if len(e.Signature) != crypto.SignatureLength {
		return ethCommon.Address{}, fmt.Errorf("%w: expected %d bytes, got %d",
			ErrInvalidSignature, crypto.SignatureLength, len(e.Signature))
	}
	pub, err := crypto.SigToPub(e.Digest().Bytes(), e.Signature)
	if err != nil {
		return ethCommon.Address{}, fmt.Errorf("%w: %v", ErrInvalidSignature, err) //nolint:errorlint
	}
	return crypto.PubkeyToAddress(*pub), nil
}

// Verify checks the envelope targets method of bridge, isn't expired and
// returns the caller
func (e *Envelope) Verify(deploymentID, bridge, method string, now time.Time) (ethCommon.Address, error) {
	if e.DeploymentID != deploymentID || e.Bridge != bridge || e.Method != method {
		return ethCommon.Address{}, fmt.Errorf("%w: envelope for %s/%s/%s used on %s/%s/%s", ErrInvalidSignature,
			e.DeploymentID, e.Bridge, e.Method, deploymentID, bridge, method)
	}
	if uint64(now.Unix()) > e.Deadline {
		return ethCommon.Address{}, ErrExpiredRequest
	}
	return e.Caller()
}

// DecodeParams decodes the envelope params into v
func (e *Envelope) DecodeParams(v interface{}) error {
	return json.Unmarshal(e.Params, v)
}

// InitializeParams has no field, the signer becomes the owner
type InitializeParams struct{}

// TransferParams are the params of lock and burn
type TransferParams struct {
	Amount      *hexutil.Big `json:"amount"`
	Destination string       `json:"destination"`
}

// RedeemParams are the params of mint and unlock
type RedeemParams struct {
	Recipient ethCommon.Address `json:"recipient"`
	Amount    *hexutil.Big      `json:"amount"`
	Nonce     hexutil.Uint64    `json:"nonce"`
}

// PauseParams has no field, the signer must be the owner or an allowed relayer
type PauseParams struct{}
