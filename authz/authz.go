// Package authz holds the policies deciding who, besides the bridge owner, may
// run the privileged bridge operations.
package authz

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// OperationKind is an operation that requires authorization
type OperationKind string

const (
	Mint    OperationKind = "mint"
	Unlock  OperationKind = "unlock"
	Pause   OperationKind = "pause"
	Unpause OperationKind = "unpause"
)

// Operation is the subject of an authorization request. Nonce is the redeemed
// nonce for mint/unlock and 0 for pause/unpause.
type Operation struct {
	Kind  OperationKind
	Nonce uint64
}

func (o Operation) String() string {
	if o.Nonce == 0 {
		return string(o.Kind)
	}
	return fmt.Sprintf("%s(%d)", o.Kind, o.Nonce)
}

// Oracle answers whether identity may run op
type Oracle interface {
	IsAuthorized(identity common.Address, op Operation) bool
}

// OwnerOnly grants nothing: only the bridge owner, which the bridge admits by
// itself, can run privileged operations
type OwnerOnly struct{}

func (OwnerOnly) IsAuthorized(common.Address, Operation) bool {
	return false
}

// Config lists the relayers allowed per operation
type Config struct {
	Mint    []common.Address `mapstructure:"Mint"`
	Unlock  []common.Address `mapstructure:"Unlock"`
	Pause   []common.Address `mapstructure:"Pause"`
	Unpause []common.Address `mapstructure:"Unpause"`
}

// IsEmpty returns true when no relayer is configured
func (c Config) IsEmpty() bool {
	return len(c.Mint)+len(c.Unlock)+len(c.Pause)+len(c.Unpause) == 0
}

// Allowlist is a static set of identities per operation kind
type Allowlist struct {
	grants map[OperationKind]map[common.Address]struct{}
}

// NewAllowlist builds the allow-list from cfg. The zero address can't be granted.
func NewAllowlist(cfg Config) (*Allowlist, error) {
	a := &Allowlist{
		grants: make(map[OperationKind]map[common.Address]struct{}),
	}
	for kind, addrs := range map[OperationKind][]common.Address{
		Mint:    cfg.Mint,
		Unlock:  cfg.Unlock,
		Pause:   cfg.Pause,
		Unpause: cfg.Unpause,
	} {
		for _, addr := range addrs {
			if err := a.Grant(kind, addr); err != nil {
				return nil, err
			}
		}
	}
	return a, nil
}

// Grant allows identity to run kind. Not safe for use concurrently with IsAuthorized.
func (a *Allowlist) Grant(kind OperationKind, identity common.Address) error {
	if identity == (common.Address{}) {
		return fmt.Errorf("can't grant %s to the zero address", kind)
	}
	set, ok := a.grants[kind]
	if !ok {
		set = make(map[common.Address]struct{})
		a.grants[kind] = set
	}
	set[identity] = struct{}{}
	return nil
}

func (a *Allowlist) IsAuthorized(identity common.Address, op Operation) bool {
	_, ok := a.grants[op.Kind][identity]
	return ok
}

// New returns an Allowlist when cfg grants anything, OwnerOnly otherwise
func New(cfg Config) (Oracle, error) {
	if cfg.IsEmpty() {
		return OwnerOnly{}, nil
	}
	return NewAllowlist(cfg)
}
