package bridge

import (
	"errors"
	"fmt"
	"testing"

	"github.com/0xPolygon/lockbridge/ledger"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	testCases := []struct {
		err       error
		kind      Kind
		retryable bool
	}{
		{nil, KindNone, false},
		{ErrUnauthorized, KindAuthorization, false},
		{ErrBridgePaused, KindState, false},
		{ErrAlreadyInitialized, KindState, false},
		{ErrNotInitialized, KindState, false},
		{fmt.Errorf("%w: mint nonce 3", ErrAlreadyProcessed), KindState, false},
		{ErrNonceOverflow, KindState, false},
		{ErrProcessedSetFull, KindState, false},
		{ErrInvalidAmount, KindValidation, true},
		{ErrInvalidDestinationAddress, KindValidation, true},
		{ErrInvalidNonce, KindValidation, true},
		{fmt.Errorf("%w: lock: %w", ErrLedger, ledger.ErrInsufficientBalance), KindCollaborator, false},
		{ErrConcurrentUpdate, KindInternal, false},
		{errors.New("disk I/O error"), KindInternal, false},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%v", tc.err), func(t *testing.T) {
			require.Equal(t, tc.kind, KindOf(tc.err))
			require.Equal(t, tc.retryable, Retryable(tc.err))
		})
	}
}

func TestKindString(t *testing.T) {
	require.Equal(t, "validation", KindValidation.String())
	require.Equal(t, "collaborator", KindCollaborator.String())
	require.Equal(t, "internal", Kind(99).String())
}
