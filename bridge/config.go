package bridge

import (
	"fmt"

	"github.com/0xPolygon/lockbridge/authz"
	"github.com/0xPolygon/lockbridge/ledger"
	"github.com/ethereum/go-ethereum/common"
)

const (
	HomeName    = "home"
	ForeignName = "foreign"
)

// Config is the configuration of one bridge instance
type Config struct {
	// Name identifies the instance in logs and metrics (home, foreign)
	Name string `mapstructure:"Name"`
	// DBPath is the SQLite file holding the bridge state and its ledger
	DBPath string `mapstructure:"DBPath"`
	// Owner, if set, initializes the bridge at startup
	Owner common.Address `mapstructure:"Owner"`
	// CustodyAccount holds the locked funds
	CustodyAccount common.Address `mapstructure:"CustodyAccount"`
	// DestinationAddressScheme is the address grammar of the opposite ledger: evm or base58
	DestinationAddressScheme string `mapstructure:"DestinationAddressScheme" jsonschema:"enum=evm,enum=base58"`
	// ProcessedNonces configures the replay protection set
	ProcessedNonces ProcessedNoncesConfig `mapstructure:"ProcessedNonces"`
	// Relayers allowed to run privileged operations besides the owner
	Relayers authz.Config `mapstructure:"Relayers"`
	// Genesis balances of the native asset, applied on an empty ledger
	Genesis []ledger.Allocation `mapstructure:"Genesis"`
}

type ProcessedNoncesConfig struct {
	// MaxPending is the max number of processed nonces above the contiguous
	// watermark (out of order redemptions). 0 means unbounded
	MaxPending uint64 `mapstructure:"MaxPending"`
	// CacheSize of the in-memory LRU of processed nonces. 0 disables it
	CacheSize int `mapstructure:"CacheSize"`
}

func (c Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("bridge %s: DBPath is required", c.Name)
	}
	if c.CustodyAccount == (common.Address{}) {
		return fmt.Errorf("bridge %s: CustodyAccount is required", c.Name)
	}
	if c.ProcessedNonces.CacheSize < 0 {
		return fmt.Errorf("bridge %s: ProcessedNonces.CacheSize can't be negative", c.Name)
	}
	if _, err := NewAddressScheme(c.DestinationAddressScheme); err != nil {
		return fmt.Errorf("bridge %s: %w", c.Name, err)
	}
	return nil
}
