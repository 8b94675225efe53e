package errors

import (
	"context"
	"errors"
	"net/http"
	"testing"

	errorsmod "cosmossdk.io/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pastelnetwork/pastel-oracle-node/x/oracle/types"
)

func TestClassifyKeeperErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		category Category
		status   int
	}{
		{"invalid hash", types.ErrInvalidFileHashLength, CategoryValidation, http.StatusBadRequest},
		{"wrapped invalid txid", errorsmod.Wrap(types.ErrInvalidTxid, "txid is empty"), CategoryValidation, http.StatusBadRequest},
		{"banned", errorsmod.Wrapf(types.ErrContributorBanned, "address %s", "alice"), CategoryAuthorization, http.StatusForbidden},
		{"not bridge", types.ErrNotBridgeContractAddress, CategoryAuthorization, http.StatusForbidden},
		{"quorum reached", types.ErrEnoughReportsSubmittedForTxid, CategoryCapacity, http.StatusConflict},
		{"pool empty", types.ErrInsufficientFunds, CategoryCapacity, http.StatusConflict},
		{"duplicate report", types.ErrDuplicateReport, CategoryConflict, http.StatusConflict},
		{"payment missing", types.ErrPaymentNotFound, CategoryNotFound, http.StatusNotFound},
		{"deadline", context.DeadlineExceeded, CategoryTimeout, http.StatusGatewayTimeout},
		{"unknown", errors.New("boom"), CategoryInternal, http.StatusInternalServerError},
		{"sqlite busy", errors.New("database is locked"), CategoryDatabase, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := Classify(tt.err)
			require.NotNil(t, classified)
			assert.Equal(t, tt.category, classified.Category)
			assert.Equal(t, tt.status, classified.HTTPStatus())
			assert.ErrorIs(t, classified, tt.err)
		})
	}
}

func TestClassifyKeepsRegisteredCode(t *testing.T) {
	classified := Classify(errorsmod.Wrap(types.ErrDuplicateReport, "txid tx-1"))
	assert.Equal(t, types.ModuleName, classified.Codespace)
	assert.Equal(t, types.ErrDuplicateReport.ABCICode(), classified.Code)
	assert.Equal(t, SeverityLow, classified.Severity)
	assert.Contains(t, classified.Error(), "txid tx-1")

	assert.Nil(t, Classify(nil))

	existing := NewConfigError("bad port", nil)
	assert.Same(t, existing, Classify(Wrap(existing, "loading")))
}

func TestOracleError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewDatabaseError("write failed", cause).WithContext("table", "consensus_records")

	assert.Equal(t, "[DATABASE] HIGH: write failed", err.Error())
	assert.Equal(t, "consensus_records", err.Context["table"])
	assert.True(t, Is(err, cause))
	assert.True(t, err.IsRetryable())
	assert.False(t, err.WithSeverity(SeverityCritical).IsRetryable())

	assert.False(t, NewValidationError("bad").IsRetryable())
	assert.True(t, IsCategory(Wrap(NewValidationError("bad"), "ctx"), CategoryValidation))
	assert.False(t, IsCategory(cause, CategoryValidation))

	var target *OracleError
	assert.True(t, As(Wrapf(err, "attempt %d", 2), &target))
	assert.Equal(t, CategoryDatabase, target.Category)
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))
	assert.Nil(t, Wrapf(nil, "ignored %d", 1))

	base := errors.New("base")
	assert.EqualError(t, Wrap(base, "outer"), "outer: base")
	assert.EqualError(t, Wrapf(base, "outer %d", 7), "outer 7: base")

	wrapped := WrapOracleError(NewInternalError("inner", nil), CategoryDatabase, "again")
	assert.Equal(t, CategoryInternal, wrapped.Category)
	assert.Equal(t, "again", wrapped.Context["wrapped_message"])
	assert.Nil(t, WrapOracleError(nil, CategoryDatabase, "nothing"))
}

func TestIsRetryableAndSeverity(t *testing.T) {
	assert.False(t, IsRetryable(nil))
	assert.True(t, IsRetryable(errors.New("database is locked (5) (SQLITE_BUSY)")))
	assert.True(t, IsRetryable(errors.New("i/o Timeout")))
	assert.False(t, IsRetryable(types.ErrInvalidTxid))

	assert.Equal(t, SeverityInfo, GetSeverity(nil))
	assert.Equal(t, SeverityCritical, GetSeverity(errors.New("boom")))
	assert.Equal(t, SeverityLow, GetSeverity(types.ErrContributorBanned))
}

func TestErrorGroup(t *testing.T) {
	eg := NewErrorGroup()
	eg.Add(nil)
	assert.False(t, eg.HasErrors())
	assert.NoError(t, eg.ErrorOrNil())

	eg.Add(errors.New("first"))
	assert.EqualError(t, eg, "first")

	eg.Add(errors.New("second"))
	assert.Equal(t, "2 errors occurred: first", eg.Error())
	assert.Error(t, eg.ErrorOrNil())
}
