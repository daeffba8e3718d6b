package rpc

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/lockbridge/bridge"
	"github.com/0xPolygon/lockbridge/log"
	"github.com/0xPolygon/lockbridge/rpc/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	// BRIDGE is the namespace of the bridge service
	BRIDGE    = "bridge"
	meterName = "github.com/0xPolygon/lockbridge/rpc"

	// MaxRequestAge is the furthest deadline accepted for a signed request
	MaxRequestAge = 10 * time.Minute
	// MaxEventsPerRequest caps bridge_getEvents
	MaxEventsPerRequest = 1000

	// seenRequestsSize is the max number of writes accepted per MaxRequestAge
	seenRequestsSize = 100_000
)

// BridgeEndpoints contains implementations for the "bridge" RPC endpoints
type BridgeEndpoints struct {
	logger       *log.Logger
	meter        metric.Meter
	readTimeout  time.Duration
	writeTimeout time.Duration
	deploymentID string
	bridges      map[string]Bridger
	seenMu       sync.Mutex
	seen         *expirable.LRU[common.Hash, struct{}]
	seenSize     int
	now          func() time.Time
}

// NewBridgeEndpoints returns BridgeEndpoints serving bridges
func NewBridgeEndpoints(
	logger *log.Logger,
	writeTimeout time.Duration,
	readTimeout time.Duration,
	deploymentID string,
	bridges ...Bridger,
) *BridgeEndpoints {
	return newBridgeEndpoints(logger, writeTimeout, readTimeout, deploymentID, seenRequestsSize, bridges...)
}

func newBridgeEndpoints(
	logger *log.Logger,
	writeTimeout time.Duration,
	readTimeout time.Duration,
	deploymentID string,
	seenSize int,
	bridges ...Bridger,
) *BridgeEndpoints {
	meter := otel.Meter(meterName)
	byName := make(map[string]Bridger, len(bridges))
	for _, b := range bridges {
		byName[b.Name()] = b
	}
	return &BridgeEndpoints{
		logger:       logger,
		meter:        meter,
		readTimeout:  readTimeout,
		writeTimeout: writeTimeout,
		deploymentID: deploymentID,
		bridges:      byName,
		seen:         expirable.NewLRU[common.Hash, struct{}](seenSize, nil, MaxRequestAge),
		seenSize:     seenSize,
		now:          time.Now,
	}
}

// Initialize creates the bridge record owned by the signer of env
// curl -X POST http://localhost:5576/ -H "Content-Type: application/json" \
// -d '{"method":"bridge_initialize", "params":[{...envelope...}], "id":1}'
func (b *BridgeEndpoints) Initialize(env types.Envelope) (interface{}, rpc.Error) {
	return b.write("bridge_initialize", &env, nil,
		func(ctx context.Context, br Bridger, caller common.Address) (interface{}, error) {
			rec, err := br.Initialize(ctx, caller)
			if err != nil {
				return nil, err
			}
			return types.NewRecord(rec), nil
		})
}

// Lock locks params.Amount of the signer of env towards params.Destination
func (b *BridgeEndpoints) Lock(env types.Envelope) (interface{}, rpc.Error) {
	params := types.TransferParams{}
	return b.write("bridge_lock", &env, &params,
		func(ctx context.Context, br Bridger, caller common.Address) (interface{}, error) {
			evt, err := br.Lock(ctx, caller, params.Amount.ToInt(), params.Destination)
			if err != nil {
				return nil, err
			}
			return &types.TransferResult{
				From:        evt.From,
				Amount:      (*hexutil.Big)(evt.Amount),
				Nonce:       hexutil.Uint64(evt.Nonce),
				Destination: evt.DestinationAddress,
				Timestamp:   hexutil.Uint64(evt.Timestamp.Unix()),
			}, nil
		})
}

// Burn burns params.Amount of the wrapped asset of the signer of env towards params.Destination
func (b *BridgeEndpoints) Burn(env types.Envelope) (interface{}, rpc.Error) {
	params := types.TransferParams{}
	return b.write("bridge_burn", &env, &params,
		func(ctx context.Context, br Bridger, caller common.Address) (interface{}, error) {
			evt, err := br.Burn(ctx, caller, params.Amount.ToInt(), params.Destination)
			if err != nil {
				return nil, err
			}
			return &types.TransferResult{
				From:        evt.From,
				Amount:      (*hexutil.Big)(evt.Amount),
				Nonce:       hexutil.Uint64(evt.Nonce),
				Destination: evt.DestinationAddress,
				Timestamp:   hexutil.Uint64(evt.Timestamp.Unix()),
			}, nil
		})
}

// Mint redeems the lock params.Nonce of the opposite bridge
func (b *BridgeEndpoints) Mint(env types.Envelope) (interface{}, rpc.Error) {
	params := types.RedeemParams{}
	return b.write("bridge_mint", &env, &params,
		func(ctx context.Context, br Bridger, caller common.Address) (interface{}, error) {
			evt, err := br.Mint(ctx, caller, params.Recipient, params.Amount.ToInt(), uint64(params.Nonce))
			if err != nil {
				return nil, err
			}
			return &types.RedeemResult{
				Recipient: evt.To,
				Amount:    (*hexutil.Big)(evt.Amount),
				Nonce:     hexutil.Uint64(evt.Nonce),
			}, nil
		})
}

// Unlock redeems the burn params.Nonce of the opposite bridge
func (b *BridgeEndpoints) Unlock(env types.Envelope) (interface{}, rpc.Error) {
	params := types.RedeemParams{}
	return b.write("bridge_unlock", &env, &params,
		func(ctx context.Context, br Bridger, caller common.Address) (interface{}, error) {
			evt, err := br.Unlock(ctx, caller, params.Recipient, params.Amount.ToInt(), uint64(params.Nonce))
			if err != nil {
				return nil, err
			}
			return &types.RedeemResult{
				Recipient: evt.To,
				Amount:    (*hexutil.Big)(evt.Amount),
				Nonce:     hexutil.Uint64(evt.Nonce),
			}, nil
		})
}

func (b *BridgeEndpoints) Pause(env types.Envelope) (interface{}, rpc.Error) {
	return b.write("bridge_pause", &env, nil,
		func(ctx context.Context, br Bridger, caller common.Address) (interface{}, error) {
			changed, err := br.Pause(ctx, caller)
			if err != nil {
				return nil, err
			}
			return &types.PauseResult{Paused: true, Changed: changed}, nil
		})
}

func (b *BridgeEndpoints) Unpause(env types.Envelope) (interface{}, rpc.Error) {
	return b.write("bridge_unpause", &env, nil,
		func(ctx context.Context, br Bridger, caller common.Address) (interface{}, error) {
			changed, err := br.Unpause(ctx, caller)
			if err != nil {
				return nil, err
			}
			return &types.PauseResult{Paused: false, Changed: changed}, nil
		})
}

// GetRecord returns the record of the bridge named bridgeName
// curl -X POST http://localhost:5576/ -H "Content-Type: application/json" \
// -d '{"method":"bridge_getRecord", "params":["home"], "id":1}'
func (b *BridgeEndpoints) GetRecord(bridgeName string) (interface{}, rpc.Error) {
	return b.read("bridge_getRecord", bridgeName, func(ctx context.Context, br Bridger) (interface{}, error) {
		rec, err := br.Record(ctx)
		if err != nil {
			return nil, err
		}
		return types.NewRecord(rec), nil
	})
}

// GetEvents returns up to limit events of the log with id >= fromID
func (b *BridgeEndpoints) GetEvents(bridgeName string, fromID int64, limit int) (interface{}, rpc.Error) {
	return b.read("bridge_getEvents", bridgeName, func(ctx context.Context, br Bridger) (interface{}, error) {
		if limit <= 0 || limit > MaxEventsPerRequest {
			return nil, fmt.Errorf("%w: limit must be in [1, %d]", ErrInvalidRequest, MaxEventsPerRequest)
		}
		events, err := br.Events(ctx, fromID, limit)
		if err != nil {
			return nil, err
		}
		result := make([]*types.Event, 0, len(events))
		for _, e := range events {
			result = append(result, types.NewEvent(e))
		}
		return result, nil
	})
}

// IsProcessed returns true if nonce has been redeemed in direction (mint or unlock)
func (b *BridgeEndpoints) IsProcessed(bridgeName string, direction string, nonce uint64) (interface{}, rpc.Error) {
	return b.read("bridge_isProcessed", bridgeName, func(ctx context.Context, br Bridger) (interface{}, error) {
		processed, err := br.IsProcessed(ctx, bridge.Direction(direction), nonce)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err) //nolint:errorlint
		}
		return processed, nil
	})
}

func (b *BridgeEndpoints) read(
	method, bridgeName string,
	fn func(ctx context.Context, br Bridger) (interface{}, error),
) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), b.readTimeout)
	defer cancel()
	b.count(ctx, method)

	br, ok := b.bridges[bridgeName]
	if !ok {
		return nil, b.fail(ctx, method, fmt.Errorf("%w: %q", ErrUnknownBridge, bridgeName))
	}
	result, err := fn(ctx, br)
	if err != nil {
		return nil, b.fail(ctx, method, err)
	}
	return result, nil
}

func (b *BridgeEndpoints) write(
	method string,
	env *types.Envelope,
	params interface{},
	fn func(ctx context.Context, br Bridger, caller common.Address) (interface{}, error),
) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), b.writeTimeout)
	defer cancel()
	b.count(ctx, method)

	br, ok := b.bridges[env.Bridge]
	if !ok {
		return nil, b.fail(ctx, method, fmt.Errorf("%w: %q", ErrUnknownBridge, env.Bridge))
	}
	now := b.now()
	if env.Deadline > uint64(now.Add(MaxRequestAge).Unix()) {
		return nil, b.fail(ctx, method, fmt.Errorf("%w: deadline further than %s", ErrInvalidRequest, MaxRequestAge))
	}
	caller, err := env.Verify(b.deploymentID, env.Bridge, method, now)
	if err != nil {
		return nil, b.fail(ctx, method, err)
	}
	if params != nil {
		if err := env.DecodeParams(params); err != nil {
			return nil, b.fail(ctx, method, fmt.Errorf("%w: %v", ErrInvalidRequest, err)) //nolint:errorlint
		}
	}
	digest := env.Digest()
	if err := b.markSeen(digest); err != nil {
		return nil, b.fail(ctx, method, err)
	}
	result, err := fn(ctx, br, caller)
	if err != nil {
		// a rejected request changed nothing, it can be submitted again
		b.seenMu.Lock()
		b.seen.Remove(digest)
		b.seenMu.Unlock()
		return nil, b.fail(ctx, method, err)
	}
	return result, nil
}

// markSeen records digest until its envelope can no longer be accepted. The
// cache never evicts a live digest: once it holds seenSize of them, new
// writes are refused until older ones expire.
func (b *BridgeEndpoints) markSeen(digest common.Hash) error {
	b.seenMu.Lock()
	defer b.seenMu.Unlock()
	if b.seen.Contains(digest) {
		return fmt.Errorf("%w: %s", ErrReplayedRequest, digest.Hex())
	}
	if b.seen.Len() >= b.seenSize {
		return fmt.Errorf("%w: %d requests accepted in the last %s", ErrTooManyRequests, b.seenSize, MaxRequestAge)
	}
	b.seen.Add(digest, struct{}{})
	return nil
}

func (b *BridgeEndpoints) count(ctx context.Context, method string) {
	c, merr := b.meter.Int64Counter(method)
	if merr != nil {
		b.logger.Warnf("failed to create %s counter: %s", method, merr)
		return
	}
	c.Add(ctx, 1)
}

func (b *BridgeEndpoints) fail(ctx context.Context, method string, err error) rpc.Error {
	kind := bridge.KindOf(err)
	c, merr := b.meter.Int64Counter("bridge_errors")
	if merr != nil {
		b.logger.Warnf("failed to create bridge_errors counter: %s", merr)
	} else {
		c.Add(ctx, 1, metric.WithAttributes(
			attribute.String("method", method),
			attribute.String("kind", kind.String()),
		))
	}
	b.logger.Debugf("%s failed: %v", method, err)
	return rpc.NewRPCError(errorCode(err), fmt.Sprintf("%s failed: %s", method, err))
}
