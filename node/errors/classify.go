package errors

import (
	"context"
	"errors"

	errorsmod "cosmossdk.io/errors"

	"github.com/pastelnetwork/pastel-oracle-node/x/oracle/types"
)

var keeperCategories = []struct {
	category Category
	errs     []error
}{
	{
		category: CategoryValidation,
		errs: []error{
			types.ErrInvalidTxid,
			types.ErrInvalidFileHashLength,
			types.ErrMissingPastelTicketType,
			types.ErrMissingFileHash,
			types.ErrInvalidPaymentAmount,
			types.ErrPendingPaymentInvalidAmount,
			types.ErrInvalidTxidStatus,
			types.ErrInvalidPastelTicketType,
			types.ErrInvalidAddress,
			types.ErrInvalidParams,
		},
	},
	{
		category: CategoryAuthorization,
		errs: []error{
			types.ErrUnregisteredOracle,
			types.ErrContributorNotRegistered,
			types.ErrContributorBanned,
			types.ErrRegistrationFeeNotPaid,
			types.ErrNotEligibleForReward,
			types.ErrNotBridgeContractAddress,
			types.ErrUnauthorizedWithdrawalAccount,
			types.ErrUnauthorizedAdmin,
		},
	},
	{
		category: CategoryCapacity,
		errs: []error{
			types.ErrEnoughReportsSubmittedForTxid,
			types.ErrInsufficientFunds,
		},
	},
	{
		category: CategoryConflict,
		errs: []error{
			types.ErrContributorAlreadyRegistered,
			types.ErrDuplicateReport,
			types.ErrPendingPaymentAlreadyInitialized,
			types.ErrAccountAlreadyInitialized,
			types.ErrInvalidPaymentStatus,
		},
	},
	{
		category: CategoryNotFound,
		errs: []error{
			types.ErrPaymentNotFound,
			types.ErrConsensusDataNotFound,
		},
	},
}

// Classify maps err onto an OracleError. Registered keeper errors keep their
// codespace and code; anything unrecognized is internal.
func Classify(err error) *OracleError {
	if err == nil {
		return nil
	}

	var oracleErr *OracleError
	if errors.As(err, &oracleErr) {
		return oracleErr
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return New(CategoryTimeout, err.Error(), err)
	}

	for _, group := range keeperCategories {
		for _, target := range group.errs {
			if errors.Is(err, target) {
				classified := New(group.category, err.Error(), err)
				classified.Codespace, classified.Code, _ = errorsmod.ABCIInfo(err, false)
				return classified
			}
		}
	}

	if IsRetryable(err) {
		return New(CategoryDatabase, err.Error(), err)
	}
	return New(CategoryInternal, err.Error(), err)
}
