package common

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRetryWithExponentialBackoff(t *testing.T) {
	tests := []struct {
		name             string
		maxRetries       uint
		initialDelay     time.Duration
		ctxTimeout       time.Duration
		callback         func() func() error
		expectedErrMsg   string
		expectedErrIsCtx bool
	}{
		{
			name:         "succeeds immediately",
			maxRetries:   3,
			initialDelay: 10 * time.Millisecond,
			callback: func() func() error {
				return func() error { return nil }
			},
		},
		{
			name:         "succeeds after retries",
			maxRetries:   3,
			initialDelay: time.Millisecond,
			callback: func() func() error {
				attempts := 0
				return func() error {
					attempts++
					if attempts < 3 {
						return errors.New("temporary failure")
					}
					return nil
				}
			},
		},
		{
			name:         "fails with retryable errors",
			maxRetries:   3,
			initialDelay: time.Millisecond,
			callback: func() func() error {
				return func() error {
					return errors.New("always fails")
				}
			},
			expectedErrMsg: "operation failed after 3 attempt(s): always fails",
		},
		{
			name:         "aborts on non-retryable error",
			maxRetries:   5,
			initialDelay: time.Millisecond,
			callback: func() func() error {
				attempts := 0
				return func() error {
					attempts++
					if attempts == 2 {
						return fmt.Errorf("wrapper: %w", ErrNonRetryable)
					}
					return errors.New("transient")
				}
			},
			expectedErrMsg: "operation failed after 2 attempt(s): wrapper: non-retryable error",
		},
		{
			name:         "context cancelled before completion",
			maxRetries:   5,
			initialDelay: 100 * time.Millisecond,
			ctxTimeout:   20 * time.Millisecond,
			callback: func() func() error {
				return func() error {
					return errors.New("will timeout")
				}
			},
			expectedErrIsCtx: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			if tt.ctxTimeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, tt.ctxTimeout)
				defer cancel()
			}

			err := RetryWithExponentialBackoff(ctx, tt.maxRetries, tt.initialDelay, tt.callback())
			switch {
			case tt.expectedErrIsCtx:
				require.ErrorIs(t, err, context.DeadlineExceeded)
			case tt.expectedErrMsg != "":
				require.EqualError(t, err, tt.expectedErrMsg)
			default:
				require.NoError(t, err)
			}
		})
	}
}

func TestRetryWithNilCallback(t *testing.T) {
	err := RetryWithExponentialBackoff(context.Background(), 1, time.Millisecond, nil)
	require.Error(t, err)
}
