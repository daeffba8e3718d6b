package types

import (
	"crypto/ecdsa"
	"errors"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/accounts/keystore"
)

var ErrNoKeystore = errors.New("no key store configured")

// KeystoreFileConfig has all the information needed to load a private key from a key store file
type KeystoreFileConfig struct {
	// Path is the file path for the key store file
	Path string `mapstructure:"Path"`
	// Password is the password to decrypt the key store file
	Password string `mapstructure:"Password"`
}

// IsEmpty returns true when no key store is configured
func (c KeystoreFileConfig) IsEmpty() bool {
	return c.Path == "" && c.Password == ""
}

// PrivateKey decrypts the key store file
func (c KeystoreFileConfig) PrivateKey() (*ecdsa.PrivateKey, error) {
	if c.IsEmpty() {
		return nil, ErrNoKeystore
	}
	encrypted, err := os.ReadFile(filepath.Clean(c.Path))
	if err != nil {
		return nil, err
	}
	key, err := keystore.DecryptKey(encrypted, c.Password)
	if err != nil {
		return nil, err
	}
	return key.PrivateKey, nil
}
