package bridge

import (
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/require"
)

func TestEVMScheme(t *testing.T) {
	scheme, err := NewAddressScheme(EVMScheme)
	require.NoError(t, err)
	require.Equal(t, EVMScheme, scheme.Name())

	require.NoError(t, scheme.Validate("0xAbC0000000000000000000000000000000000042"))
	require.NoError(t, scheme.Validate("0xabc0000000000000000000000000000000000042"))
	for _, addr := range []string{
		"",
		"0x",
		"AbC0000000000000000000000000000000000042",
		"0xAbC000000000000000000000000000000000004",
		"0xAbC00000000000000000000000000000000000421",
		"0xg000000000000000000000000000000000000042",
		"0XAbC0000000000000000000000000000000000042",
	} {
		require.ErrorIs(t, scheme.Validate(addr), ErrInvalidDestinationAddress, addr)
	}
}

func TestBase58Scheme(t *testing.T) {
	scheme, err := NewAddressScheme("Base58")
	require.NoError(t, err)
	require.Equal(t, Base58Scheme, scheme.Name())

	key := make([]byte, 32)
	key[0] = 7
	require.NoError(t, scheme.Validate(base58.Encode(key)))
	require.ErrorIs(t, scheme.Validate(base58.Encode(key[:31])), ErrInvalidDestinationAddress)
	require.ErrorIs(t, scheme.Validate("0OIl"), ErrInvalidDestinationAddress)
	require.ErrorIs(t, scheme.Validate("0xAbC0000000000000000000000000000000000042"), ErrInvalidDestinationAddress)
}

func TestUnknownScheme(t *testing.T) {
	_, err := NewAddressScheme("bech32")
	require.Error(t, err)
}
