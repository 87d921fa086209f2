package common

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRetry(t *testing.T) {
	fastOpts := RetryOptions{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
	}

	t.Run("succeeds first try", func(t *testing.T) {
		calls := 0
		err := WithRetry(context.Background(), func() error {
			calls++
			return nil
		}, fastOpts)
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries transient errors until success", func(t *testing.T) {
		calls := 0
		err := WithRetry(context.Background(), func() error {
			calls++
			if calls < 3 {
				return fmt.Errorf("%w: flaky upstream", ErrServerFailure)
			}
			return nil
		}, fastOpts)
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		calls := 0
		err := WithRetry(context.Background(), func() error {
			calls++
			return fmt.Errorf("%w: still down", ErrNetwork)
		}, fastOpts)
		require.ErrorIs(t, err, ErrMaxRetries)
		assert.Equal(t, 3, calls)
	})

	t.Run("client errors are never retried", func(t *testing.T) {
		calls := 0
		err := WithRetry(context.Background(), func() error {
			calls++
			return fmt.Errorf("%w: no such budget", ErrNotFound)
		}, fastOpts)
		require.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, 1, calls)
	})

	t.Run("canceled context stops the loop", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := WithRetry(ctx, func() error {
			return fmt.Errorf("%w: unreachable", ErrNetwork)
		}, fastOpts)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "network", err: fmt.Errorf("%w: dial tcp", ErrNetwork), want: true},
		{name: "server failure", err: ErrServerFailure, want: true},
		{name: "rate limit", err: ErrRateLimit, want: true},
		{name: "deadline", err: context.DeadlineExceeded, want: true},
		{name: "not found", err: ErrNotFound, want: false},
		{name: "bad request", err: ErrBadRequest, want: false},
		{name: "unauthenticated", err: ErrUnauthenticated, want: false},
		{name: "parse", err: ErrParse, want: false},
		{name: "plain error", err: errors.New("whatever"), want: false},
		{name: "explicit retryable wrapper", err: &RetryableError{Err: errors.New("custom"), Retryable: true}, want: true},
		{name: "explicit non-retryable wrapper", err: &RetryableError{Err: errors.New("custom"), Retryable: false}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestUserError(t *testing.T) {
	wrapped := NewUserError("Please log in first", ErrNoSession)

	var userErr *UserError
	require.ErrorAs(t, wrapped, &userErr)
	assert.Equal(t, "Please log in first", userErr.UserMessage)
	assert.ErrorIs(t, wrapped, ErrNoSession)

	bare := NewUserError("Amount is required", nil)
	assert.Equal(t, "Amount is required", bare.Error())
}
