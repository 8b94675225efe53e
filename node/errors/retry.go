package errors

import (
	"context"
	"time"
)

// RetryConfig configures retry behavior
type RetryConfig struct {
	MaxAttempts         int
	InitialDelay        time.Duration
	MaxDelay            time.Duration
	Multiplier          float64
	RetryableCategories []Category
}

// DefaultRetryConfig returns default retry configuration
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxAttempts:  3,
		InitialDelay: 1 * time.Second,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
		RetryableCategories: []Category{
			CategoryDatabase,
			CategoryTimeout,
		},
	}
}

// RetryFunc is a function that can be retried
type RetryFunc func() error

// RetryWithConfig retries a function with custom configuration
func RetryWithConfig(ctx context.Context, fn RetryFunc, config *RetryConfig) error {
	op := &RetryOperation{Fn: fn, Config: config}
	return op.Execute(ctx)
}

// Retry retries a function with default configuration
func Retry(ctx context.Context, fn RetryFunc) error {
	return RetryWithConfig(ctx, fn, DefaultRetryConfig())
}

// isRetryableError checks if an error is retryable based on configuration
func isRetryableError(err error, retryable []Category) bool {
	var oracleErr *OracleError
	if As(err, &oracleErr) {
		for _, category := range retryable {
			if oracleErr.Category == category {
				return true
			}
		}
		return oracleErr.IsRetryable()
	}

	return IsRetryable(err)
}

// RetryOperation represents an operation that can be retried
type RetryOperation struct {
	Name      string
	Fn        RetryFunc
	Config    *RetryConfig
	OnRetry   func(attempt int, err error)
	OnSuccess func()
	OnFailure func(err error)
}

// Execute runs the retry operation
func (op *RetryOperation) Execute(ctx context.Context) error {
	if op.Config == nil {
		op.Config = DefaultRetryConfig()
	}

	var lastErr error
	delay := op.Config.InitialDelay

	for attempt := 1; attempt <= op.Config.MaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			op.fail(ctx.Err())
			return ctx.Err()
		default:
		}

		err := op.Fn()
		if err == nil {
			if op.OnSuccess != nil {
				op.OnSuccess()
			}
			return nil
		}

		lastErr = err

		if !isRetryableError(err, op.Config.RetryableCategories) {
			op.fail(err)
			return err
		}

		// Don't retry on last attempt
		if attempt == op.Config.MaxAttempts {
			break
		}

		if op.OnRetry != nil {
			op.OnRetry(attempt, err)
		}

		select {
		case <-ctx.Done():
			op.fail(ctx.Err())
			return ctx.Err()
		case <-time.After(delay):
		}

		delay = time.Duration(float64(delay) * op.Config.Multiplier)
		if delay > op.Config.MaxDelay {
			delay = op.Config.MaxDelay
		}
	}

	op.fail(lastErr)

	message := "maximum retry attempts exceeded"
	if op.Name != "" {
		message = "operation '" + op.Name + "' failed after retries"
	}
	return WrapOracleError(lastErr, CategoryInternal, message).
		WithContext("attempts", op.Config.MaxAttempts)
}

func (op *RetryOperation) fail(err error) {
	if op.OnFailure != nil {
		op.OnFailure(err)
	}
}
