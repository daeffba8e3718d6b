package rpc

import (
	"errors"
	"fmt"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/lockbridge/bridge"
	"github.com/0xPolygon/lockbridge/db"
	"github.com/0xPolygon/lockbridge/rpc/types"
)

const (
	AlreadyInitializedErrorCode        = -32020
	NotInitializedErrorCode            = -32021
	BridgePausedErrorCode              = -32022
	AlreadyProcessedErrorCode          = -32023
	UnauthorizedErrorCode              = -32024
	InvalidAmountErrorCode             = -32025
	InvalidDestinationAddressErrorCode = -32026
	InvalidNonceErrorCode              = -32027
	NonceOverflowErrorCode             = -32028
	ProcessedSetFullErrorCode          = -32029
	LedgerErrorCode                    = -32030
	InvalidRequestErrorCode            = -32031
	UnknownBridgeErrorCode             = -32032
	TooManyRequestsErrorCode           = -32033
)

var (
	ErrUnknownBridge   = errors.New("unknown bridge")
	ErrReplayedRequest = errors.New("request already submitted")
	ErrInvalidRequest  = errors.New("invalid request")
	ErrTooManyRequests = errors.New("too many requests")
)

var errorCodes = []struct {
	err  error
	code int
}{
	{bridge.ErrAlreadyInitialized, AlreadyInitializedErrorCode},
	{bridge.ErrNotInitialized, NotInitializedErrorCode},
	{bridge.ErrBridgePaused, BridgePausedErrorCode},
	{bridge.ErrAlreadyProcessed, AlreadyProcessedErrorCode},
	{bridge.ErrUnauthorized, UnauthorizedErrorCode},
	{bridge.ErrInvalidAmount, InvalidAmountErrorCode},
	{bridge.ErrInvalidDestinationAddress, InvalidDestinationAddressErrorCode},
	{bridge.ErrInvalidNonce, InvalidNonceErrorCode},
	{bridge.ErrNonceOverflow, NonceOverflowErrorCode},
	{bridge.ErrProcessedSetFull, ProcessedSetFullErrorCode},
	{bridge.ErrLedger, LedgerErrorCode},
	{ErrInvalidRequest, InvalidRequestErrorCode},
	{ErrReplayedRequest, InvalidRequestErrorCode},
	{types.ErrMissingSignature, InvalidRequestErrorCode},
	{types.ErrInvalidSignature, InvalidRequestErrorCode},
	{types.ErrExpiredRequest, InvalidRequestErrorCode},
	{ErrUnknownBridge, UnknownBridgeErrorCode},
	{ErrTooManyRequests, TooManyRequestsErrorCode},
	{db.ErrNotFound, rpc.NotFoundErrorCode},
}

// errorCode returns the JSON-RPC error code of err
func errorCode(err error) int {
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return rpc.DefaultErrorCode
}

// codeToError returns the error wrapping the sentinel behind code, so callers
// can test remote errors with errors.Is
func codeToError(code int, message string) error {
	for _, ec := range errorCodes {
		if ec.code == code {
			return fmt.Errorf("%w: %s", ec.err, message)
		}
	}
	return fmt.Errorf("%d %s", code, message)
}
