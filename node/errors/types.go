package errors

import (
	"fmt"
	"net/http"
)

// Category groups errors by how a caller should react to them
type Category string

const (
	// CategoryValidation indicates malformed input
	CategoryValidation Category = "VALIDATION"

	// CategoryAuthorization indicates a caller that may not perform the operation
	CategoryAuthorization Category = "AUTHORIZATION"

	// CategoryCapacity indicates a limit was reached (quorum, balances)
	CategoryCapacity Category = "CAPACITY"

	// CategoryConflict indicates the operation collides with existing state
	CategoryConflict Category = "CONFLICT"

	// CategoryNotFound indicates missing state
	CategoryNotFound Category = "NOT_FOUND"

	// CategoryDatabase indicates state or ledger storage errors
	CategoryDatabase Category = "DATABASE"

	// CategoryConfig indicates configuration errors
	CategoryConfig Category = "CONFIG"

	// CategoryTimeout indicates timeout errors
	CategoryTimeout Category = "TIMEOUT"

	// CategoryInternal indicates internal system errors
	CategoryInternal Category = "INTERNAL"
)

// Severity represents the severity level of an error
type Severity string

const (
	// SeverityCritical indicates critical errors that require immediate attention
	SeverityCritical Severity = "CRITICAL"

	// SeverityHigh indicates high priority errors
	SeverityHigh Severity = "HIGH"

	// SeverityMedium indicates medium priority errors
	SeverityMedium Severity = "MEDIUM"

	// SeverityLow indicates low priority errors
	SeverityLow Severity = "LOW"

	// SeverityInfo indicates informational errors
	SeverityInfo Severity = "INFO"
)

// OracleError is the node-level view of an error. Code and Codespace carry
// the registered keeper error when there is one.
type OracleError struct {
	Category  Category               `json:"category"`
	Codespace string                 `json:"codespace,omitempty"`
	Code      uint32                 `json:"code,omitempty"`
	Message   string                 `json:"message"`
	Severity  Severity               `json:"severity"`
	Cause     error                  `json:"-"`
	Context   map[string]interface{} `json:"context,omitempty"`
}

// New creates a new OracleError
func New(category Category, message string, cause error) *OracleError {
	return &OracleError{
		Category: category,
		Message:  message,
		Severity: determineSeverity(category),
		Cause:    cause,
		Context:  make(map[string]interface{}),
	}
}

// Error implements the error interface
func (e *OracleError) Error() string {
	if e.Codespace != "" {
		return fmt.Sprintf("[%s:%d %s] %s: %s", e.Codespace, e.Code, e.Category, e.Severity, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Category, e.Severity, e.Message)
}

// Unwrap returns the underlying cause
func (e *OracleError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *OracleError) WithContext(key string, value interface{}) *OracleError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithSeverity overrides the default severity
func (e *OracleError) WithSeverity(severity Severity) *OracleError {
	e.Severity = severity
	return e
}

// IsRetryable returns true if the error is retryable
func (e *OracleError) IsRetryable() bool {
	switch e.Category {
	case CategoryTimeout:
		return true
	case CategoryDatabase:
		return e.Severity != SeverityCritical
	default:
		return false
	}
}

// HTTPStatus returns the status code the API answers with for this error.
func (e *OracleError) HTTPStatus() int {
	switch e.Category {
	case CategoryValidation:
		return http.StatusBadRequest
	case CategoryAuthorization:
		return http.StatusForbidden
	case CategoryCapacity, CategoryConflict:
		return http.StatusConflict
	case CategoryNotFound:
		return http.StatusNotFound
	case CategoryTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// determineSeverity determines the default severity based on the category
func determineSeverity(category Category) Severity {
	switch category {
	case CategoryInternal:
		return SeverityCritical
	case CategoryDatabase:
		return SeverityHigh
	case CategoryTimeout, CategoryConfig:
		return SeverityMedium
	case CategoryValidation, CategoryAuthorization, CategoryCapacity, CategoryConflict:
		return SeverityLow
	default:
		return SeverityInfo
	}
}

// ErrorGroup represents a collection of errors
type ErrorGroup struct {
	Errors []error
}

// NewErrorGroup creates a new error group
func NewErrorGroup() *ErrorGroup {
	return &ErrorGroup{
		Errors: make([]error, 0),
	}
}

// Add adds an error to the group
func (eg *ErrorGroup) Add(err error) {
	if err != nil {
		eg.Errors = append(eg.Errors, err)
	}
}

// HasErrors returns true if there are any errors
func (eg *ErrorGroup) HasErrors() bool {
	return len(eg.Errors) > 0
}

// Error implements the error interface
func (eg *ErrorGroup) Error() string {
	if len(eg.Errors) == 0 {
		return ""
	}
	if len(eg.Errors) == 1 {
		return eg.Errors[0].Error()
	}
	return fmt.Sprintf("%d errors occurred: %v", len(eg.Errors), eg.Errors[0])
}

// ErrorOrNil returns the group when it holds errors, nil otherwise.
func (eg *ErrorGroup) ErrorOrNil() error {
	if !eg.HasErrors() {
		return nil
	}
	return eg
}

// NewValidationError creates a validation error
func NewValidationError(message string) *OracleError {
	return New(CategoryValidation, message, nil)
}

// NewDatabaseError creates a database error
func NewDatabaseError(message string, cause error) *OracleError {
	return New(CategoryDatabase, message, cause)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *OracleError {
	return New(CategoryConfig, message, cause)
}

// NewInternalError creates an internal error
func NewInternalError(message string, cause error) *OracleError {
	return New(CategoryInternal, message, cause)
}
