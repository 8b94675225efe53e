package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// WrapOracleError wraps an error as an OracleError if it isn't already one
func WrapOracleError(err error, category Category, message string) *OracleError {
	if err == nil {
		return nil
	}

	var oracleErr *OracleError
	if errors.As(err, &oracleErr) {
		oracleErr.WithContext("wrapped_message", message)
		return oracleErr
	}

	return New(category, message, err)
}

// Is checks if an error is of a specific type
func Is(err error, target error) bool {
	return errors.Is(err, target)
}

// As checks if an error can be assigned to a target type
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// IsCategory checks if an error is an OracleError of the given category
func IsCategory(err error, category Category) bool {
	var oracleErr *OracleError
	if errors.As(err, &oracleErr) {
		return oracleErr.Category == category
	}
	return false
}

var retryablePatterns = []string{
	"database is locked",
	"database table is locked",
	"busy",
	"timeout",
	"temporary failure",
	"connection reset",
}

// IsRetryable checks if an error is retryable
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var oracleErr *OracleError
	if errors.As(err, &oracleErr) {
		return oracleErr.IsRetryable()
	}

	errStr := strings.ToLower(err.Error())
	for _, pattern := range retryablePatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

// GetSeverity returns the severity of an error
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityInfo
	}

	var oracleErr *OracleError
	if errors.As(err, &oracleErr) {
		return oracleErr.Severity
	}
	return Classify(err).Severity
}
