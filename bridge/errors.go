package bridge

import (
	"errors"
)

var (
	ErrAlreadyInitialized        = errors.New("bridge already initialized")
	ErrNotInitialized            = errors.New("bridge not initialized")
	ErrBridgePaused              = errors.New("bridge is paused")
	ErrAlreadyProcessed          = errors.New("nonce already processed")
	ErrUnauthorized              = errors.New("unauthorized")
	ErrInvalidAmount             = errors.New("invalid amount")
	ErrInvalidDestinationAddress = errors.New("invalid destination address")
	ErrInvalidNonce              = errors.New("invalid nonce")
	ErrNonceOverflow             = errors.New("nonce overflow")
	ErrProcessedSetFull          = errors.New("processed nonce set is full")
	// ErrLedger wraps every error reported by the LedgerAdapter
	ErrLedger = errors.New("ledger adapter")
	// ErrConcurrentUpdate is returned when the record changed under an in-flight operation
	ErrConcurrentUpdate = errors.New("bridge record modified concurrently")
)

// Kind classifies an error so callers know how to react to a rejected operation
type Kind int

const (
	// KindNone is the kind of a nil error
	KindNone Kind = iota
	// KindAuthorization the caller needs a different authorization
	KindAuthorization
	// KindState the bridge state rejects the operation (paused, replay, initialization)
	KindState
	// KindValidation the input is malformed, safe to retry with corrected input
	KindValidation
	// KindCollaborator the ledger adapter rejected the effect
	KindCollaborator
	// KindInternal storage or unexpected failure
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindAuthorization:
		return "authorization"
	case KindState:
		return "state"
	case KindValidation:
		return "validation"
	case KindCollaborator:
		return "collaborator"
	default:
		return "internal"
	}
}

// KindOf returns the Kind of err
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrUnauthorized):
		return KindAuthorization
	case errors.Is(err, ErrBridgePaused),
		errors.Is(err, ErrAlreadyInitialized),
		errors.Is(err, ErrNotInitialized),
		errors.Is(err, ErrAlreadyProcessed),
		errors.Is(err, ErrNonceOverflow),
		errors.Is(err, ErrProcessedSetFull):
		return KindState
	case errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrInvalidDestinationAddress),
		errors.Is(err, ErrInvalidNonce):
		return KindValidation
	case errors.Is(err, ErrLedger):
		return KindCollaborator
	default:
		return KindInternal
	}
}

// Retryable reports whether the operation was rejected for its input only, so
// the same call with corrected arguments can succeed
func Retryable(err error) bool {
	return KindOf(err) == KindValidation
}
