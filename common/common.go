package common

import (
	"encoding/binary"
	"math/big"
)

const amountByteSize = 32

// Uint64ToBytes converts a uint64 to a byte slice
func Uint64ToBytes(num uint64) []byte {
	const uint64ByteSize = 8

	bytes := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(bytes, num)

	return bytes
}

// BytesToUint64 converts a byte slice to a uint64
func BytesToUint64(bytes []byte) uint64 {
	return binary.BigEndian.Uint64(bytes)
}

// AmountToBytes returns the absolute value of amount as a 32 bytes big-endian word,
// keeping the least significant bytes if it doesn't fit. nil encodes as zero.
// Callers hashing amounts must reject the ones wider than 256 bits.
func AmountToBytes(amount *big.Int) []byte {
	word := make([]byte, amountByteSize)
	if amount == nil {
		return word
	}
	b := new(big.Int).Abs(amount).Bytes()
	if len(b) > amountByteSize {
		b = b[len(b)-amountByteSize:]
	}
	copy(word[amountByteSize-len(b):], b)
	return word
}
