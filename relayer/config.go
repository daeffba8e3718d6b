package relayer

import (
	"github.com/0xPolygon/lockbridge/config/types"
	"github.com/ethereum/go-ethereum/common"
)

// Config is the configuration of a relayer following one bridge and redeeming on the other
type Config struct {
	// DBPath path of the DB holding the relayer cursor
	DBPath string `mapstructure:"DBPath"`
	// Identity is the caller of the mint/unlock calls submitted to an in-process bridge
	Identity common.Address `mapstructure:"Identity"`
	// SourceURL, if set, reads the log of the source bridge through the JSON-RPC of
	// that node instead of the in-process bridge
	SourceURL string `mapstructure:"SourceURL"`
	// DestinationURL, if set, submits the calls through the JSON-RPC of that node,
	// signed with PrivateKey, instead of the in-process bridge
	DestinationURL string `mapstructure:"DestinationURL"`
	// PrivateKey signs the requests sent to DestinationURL
	PrivateKey types.KeystoreFileConfig `mapstructure:"PrivateKey"`
	// BatchSize is the max number of events read from the source per iteration
	BatchSize int `mapstructure:"BatchSize"`
	// WaitOnEmptyLog is the time waited before polling again once the source log is drained
	WaitOnEmptyLog types.Duration `mapstructure:"WaitOnEmptyLog"`
	// RetryAfterErrorPeriod is the time waited after an error before retrying
	RetryAfterErrorPeriod types.Duration `mapstructure:"RetryAfterErrorPeriod"`
	// MaxRetryAttemptsAfterError is the number of consecutive errors tolerated before
	// stopping the process. Negative means retry forever
	MaxRetryAttemptsAfterError int `mapstructure:"MaxRetryAttemptsAfterError"`
}
