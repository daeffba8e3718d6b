package common

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUint64Bytes(t *testing.T) {
	t.Parallel()

	for _, n := range []uint64{0, 1, 256, 1<<63 - 1, ^uint64(0)} {
		b := Uint64ToBytes(n)
		require.Len(t, b, 8)
		require.Equal(t, n, BytesToUint64(b))
	}
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 1, 0}, Uint64ToBytes(256))
}

func TestAmountToBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    *big.Int
		expected []byte
	}{
		{
			name:     "Nil value",
			input:    nil,
			expected: make([]byte, 32),
		},
		{
			name:     "Zero value",
			input:    big.NewInt(0),
			expected: make([]byte, 32),
		},
		{
			name:     "Positive value",
			input:    big.NewInt(123456789),
			expected: append(make([]byte, 28), 7, 91, 205, 21),
		},
		{
			name:     "Negative value",
			input:    big.NewInt(-123456789),
			expected: append(make([]byte, 28), 7, 91, 205, 21),
		},
		{
			name:     "Overflowing value",
			input:    new(big.Int).Lsh(big.NewInt(3), 256),
			expected: make([]byte, 32),
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.expected, AmountToBytes(tt.input))
		})
	}
}
