package bridge

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mr-tron/base58"
)

const (
	// EVMScheme accepts 0x-prefixed, 20 byte hex addresses
	EVMScheme = "evm"
	// Base58Scheme accepts base58 encoded 32 byte public keys
	Base58Scheme = "base58"

	evmAddressLen     = 2 + 2*common.AddressLength
	base58PubKeyBytes = 32
)

// AddressScheme validates addresses of the destination ledger
type AddressScheme interface {
	Name() string
	Validate(addr string) error
}

// NewAddressScheme returns the scheme registered with name
func NewAddressScheme(name string) (AddressScheme, error) {
	switch strings.ToLower(name) {
	case EVMScheme, "":
		return evmAddressScheme{}, nil
	case Base58Scheme:
		return base58AddressScheme{size: base58PubKeyBytes}, nil
	default:
		return nil, fmt.Errorf("unknown destination address scheme %q", name)
	}
}

type evmAddressScheme struct{}

func (evmAddressScheme) Name() string { return EVMScheme }

func (evmAddressScheme) Validate(addr string) error {
	if len(addr) != evmAddressLen || !strings.HasPrefix(addr, "0x") || !common.IsHexAddress(addr) {
		return fmt.Errorf("%w: %q is not a 0x-prefixed 20 byte hex address", ErrInvalidDestinationAddress, addr)
	}
	return nil
}

type base58AddressScheme struct {
	size int
}

func (base58AddressScheme) Name() string { return Base58Scheme }

func (s base58AddressScheme) Validate(addr string) error {
	decoded, err := base58.Decode(addr)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidDestinationAddress, addr, err) //nolint:errorlint
	}
	if len(decoded) != s.size {
		return fmt.Errorf("%w: %q decodes to %d bytes, expected %d",
			ErrInvalidDestinationAddress, addr, len(decoded), s.size)
	}
	return nil
}
