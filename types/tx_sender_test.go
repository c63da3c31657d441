package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsTransientSendError(t *testing.T) {
	require.True(t, IsTransientSendError(ErrFeeTooLow))
	require.True(t, IsTransientSendError(fmt.Errorf("send: %w", ErrNonceConflict)))
	require.False(t, IsTransientSendError(errors.New("execution reverted")))
	require.False(t, IsTransientSendError(nil))
}
