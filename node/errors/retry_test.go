package errors

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(attempts int) *RetryConfig {
	return &RetryConfig{
		MaxAttempts:         attempts,
		InitialDelay:        1 * time.Millisecond,
		MaxDelay:            5 * time.Millisecond,
		Multiplier:          2.0,
		RetryableCategories: []Category{CategoryDatabase},
	}
}

func TestDefaultRetryConfig(t *testing.T) {
	config := DefaultRetryConfig()

	assert.Equal(t, 3, config.MaxAttempts)
	assert.Equal(t, 1*time.Second, config.InitialDelay)
	assert.Equal(t, 30*time.Second, config.MaxDelay)
	assert.Equal(t, 2.0, config.Multiplier)
	assert.Contains(t, config.RetryableCategories, CategoryDatabase)
	assert.Contains(t, config.RetryableCategories, CategoryTimeout)
}

func TestRetryWithConfig_Success(t *testing.T) {
	tests := []struct {
		name              string
		attemptsToSucceed int
	}{
		{name: "succeeds on first attempt", attemptsToSucceed: 1},
		{name: "succeeds on second attempt", attemptsToSucceed: 2},
		{name: "succeeds on last attempt", attemptsToSucceed: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			err := RetryWithConfig(context.Background(), func() error {
				if atomic.AddInt32(&calls, 1) < int32(tt.attemptsToSucceed) {
					return NewDatabaseError("locked", nil)
				}
				return nil
			}, fastConfig(3))

			require.NoError(t, err)
			assert.Equal(t, int32(tt.attemptsToSucceed), atomic.LoadInt32(&calls))
		})
	}
}

func TestRetryWithConfig_Exhausted(t *testing.T) {
	var calls int32
	err := RetryWithConfig(context.Background(), func() error {
		atomic.AddInt32(&calls, 1)
		return errors.New("database is locked")
	}, fastConfig(3))

	require.Error(t, err)
	assert.Equal(t, int32(3), calls)

	var oracleErr *OracleError
	require.True(t, As(err, &oracleErr))
	assert.Equal(t, CategoryInternal, oracleErr.Category)
	assert.Equal(t, 3, oracleErr.Context["attempts"])
	assert.Contains(t, err.Error(), "maximum retry attempts exceeded")
}

func TestRetryWithConfig_NonRetryable(t *testing.T) {
	var calls int32
	validation := NewValidationError("bad input")
	err := RetryWithConfig(context.Background(), func() error {
		atomic.AddInt32(&calls, 1)
		return validation
	}, fastConfig(5))

	assert.Same(t, validation, err)
	assert.Equal(t, int32(1), calls)
}

func TestRetryWithConfig_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryWithConfig(ctx, func() error { return nil }, fastConfig(3))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRetryOperation_Callbacks(t *testing.T) {
	var retries []int
	var failed error
	succeeded := false

	op := &RetryOperation{
		Name:   "record consensus",
		Config: fastConfig(2),
		Fn: func() error {
			return NewDatabaseError("locked", nil)
		},
		OnRetry:   func(attempt int, _ error) { retries = append(retries, attempt) },
		OnSuccess: func() { succeeded = true },
		OnFailure: func(err error) { failed = err },
	}

	err := op.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE")
	assert.Equal(t, []int{1}, retries)
	assert.False(t, succeeded)
	assert.Error(t, failed)

	op.Fn = func() error { return nil }
	require.NoError(t, op.Execute(context.Background()))
	assert.True(t, succeeded)
}
