package db

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	sqlite "github.com/mattn/go-sqlite3"
	"github.com/russross/meddler"
)

// init registers tags to be used to read/write from SQL DBs using meddler
func init() {
	meddler.Default = meddler.SQLite
	meddler.Register("bigint", BigIntMeddler{})
	meddler.Register("hash", HexMeddler[common.Hash]{fromHex: common.HexToHash})
	meddler.Register("address", HexMeddler[common.Address]{fromHex: common.HexToAddress})
}

func SQLiteErr(err error) (*sqlite.Error, bool) {
	sqliteErr := &sqlite.Error{}
	if ok := errors.As(err, sqliteErr); ok {
		return sqliteErr, true
	}
	if driverErr, ok := meddler.DriverErr(err); ok {
		return sqliteErr, errors.As(driverErr, sqliteErr)
	}
	return sqliteErr, false
}

// IsKeyViolation reports whether err was raised by a UNIQUE or PRIMARY KEY constraint
func IsKeyViolation(err error) bool {
	sqliteErr, ok := SQLiteErr(err)
	if !ok {
		return false
	}
	code := int(sqliteErr.ExtendedCode)
	return code == UniqueConstrain || code == PrimaryKeyConstrain
}

// stringColumn is the scan target of the meddlers below, all of them store TEXT
func stringColumn(scanTarget interface{}) (string, error) {
	ptr, ok := scanTarget.(*string)
	if !ok || ptr == nil {
		return "", fmt.Errorf("scan target is %T, expected a non nil *string", scanTarget)
	}
	return *ptr, nil
}

// BigIntMeddler stores a *big.Int as its decimal string. A nil value is stored as 0
type BigIntMeddler struct{}

func (BigIntMeddler) PreRead(interface{}) (interface{}, error) {
	return new(string), nil
}

func (BigIntMeddler) PostRead(fieldPtr, scanTarget interface{}) error {
	raw, err := stringColumn(scanTarget)
	if err != nil {
		return err
	}
	field, ok := fieldPtr.(**big.Int)
	if !ok {
		return fmt.Errorf("field is %T, expected **big.Int", fieldPtr)
	}
	value, ok := new(big.Int).SetString(raw, 10) //nolint:mnd
	if !ok {
		return fmt.Errorf("invalid decimal integer %q", raw)
	}
	*field = value
	return nil
}

func (BigIntMeddler) PreWrite(field interface{}) (interface{}, error) {
	value, ok := field.(*big.Int)
	if !ok {
		return nil, fmt.Errorf("field is %T, expected *big.Int", field)
	}
	if value == nil {
		return "0", nil
	}
	return value.String(), nil
}

// HexMeddler stores hashes and addresses as 0x prefixed hex strings
type HexMeddler[T interface {
	common.Hash | common.Address
	Hex() string
}] struct {
	fromHex func(string) T
}

func (HexMeddler[T]) PreRead(interface{}) (interface{}, error) {
	return new(string), nil
}

func (m HexMeddler[T]) PostRead(fieldPtr, scanTarget interface{}) error {
	raw, err := stringColumn(scanTarget)
	if err != nil {
		return err
	}
	field, ok := fieldPtr.(*T)
	if !ok {
		return fmt.Errorf("field is %T, expected %T", fieldPtr, new(T))
	}
	*field = m.fromHex(raw)
	return nil
}

func (HexMeddler[T]) PreWrite(field interface{}) (interface{}, error) {
	value, ok := field.(T)
	if !ok {
		var zero T
		return nil, fmt.Errorf("field is %T, expected %T", field, zero)
	}
	return value.Hex(), nil
}
