package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Error codes for the oracle module
const (
	BaseErrorCode uint32 = 1
)

var (
	ErrContributorAlreadyRegistered     = sdkerrors.Register(ModuleName, BaseErrorCode+1, "contributor already registered")
	ErrUnregisteredOracle               = sdkerrors.Register(ModuleName, BaseErrorCode+2, "unregistered oracle")
	ErrInvalidTxid                      = sdkerrors.Register(ModuleName, BaseErrorCode+3, "invalid txid")
	ErrInvalidFileHashLength            = sdkerrors.Register(ModuleName, BaseErrorCode+4, "file hash must be 6 lowercase hex characters")
	ErrMissingPastelTicketType          = sdkerrors.Register(ModuleName, BaseErrorCode+5, "missing pastel ticket type")
	ErrMissingFileHash                  = sdkerrors.Register(ModuleName, BaseErrorCode+6, "missing file hash")
	ErrRegistrationFeeNotPaid           = sdkerrors.Register(ModuleName, BaseErrorCode+7, "registration fee not paid")
	ErrNotEligibleForReward             = sdkerrors.Register(ModuleName, BaseErrorCode+8, "contributor not eligible for reward")
	ErrNotBridgeContractAddress         = sdkerrors.Register(ModuleName, BaseErrorCode+9, "caller is not the bridge contract")
	ErrInsufficientFunds                = sdkerrors.Register(ModuleName, BaseErrorCode+10, "insufficient funds")
	ErrUnauthorizedWithdrawalAccount    = sdkerrors.Register(ModuleName, BaseErrorCode+11, "unauthorized withdrawal account")
	ErrInvalidPaymentAmount             = sdkerrors.Register(ModuleName, BaseErrorCode+12, "invalid payment amount")
	ErrPaymentNotFound                  = sdkerrors.Register(ModuleName, BaseErrorCode+13, "payment not found")
	ErrPendingPaymentAlreadyInitialized = sdkerrors.Register(ModuleName, BaseErrorCode+14, "pending payment already initialized")
	ErrAccountAlreadyInitialized        = sdkerrors.Register(ModuleName, BaseErrorCode+15, "oracle state already initialized")
	ErrPendingPaymentInvalidAmount      = sdkerrors.Register(ModuleName, BaseErrorCode+16, "pending payment has invalid amount")
	ErrInvalidPaymentStatus             = sdkerrors.Register(ModuleName, BaseErrorCode+17, "invalid payment status")
	ErrInvalidTxidStatus                = sdkerrors.Register(ModuleName, BaseErrorCode+18, "invalid txid status")
	ErrInvalidPastelTicketType          = sdkerrors.Register(ModuleName, BaseErrorCode+19, "invalid pastel ticket type")
	ErrContributorNotRegistered         = sdkerrors.Register(ModuleName, BaseErrorCode+20, "contributor not registered")
	ErrContributorBanned                = sdkerrors.Register(ModuleName, BaseErrorCode+21, "contributor banned")
	ErrEnoughReportsSubmittedForTxid    = sdkerrors.Register(ModuleName, BaseErrorCode+22, "enough reports submitted for txid")
	ErrDuplicateReport                  = sdkerrors.Register(ModuleName, BaseErrorCode+23, "contributor already reported on txid")
	ErrInvalidAddress                   = sdkerrors.Register(ModuleName, BaseErrorCode+24, "invalid address")
	ErrUnauthorizedAdmin                = sdkerrors.Register(ModuleName, BaseErrorCode+25, "caller is not an admin")
	ErrInvalidParams                    = sdkerrors.Register(ModuleName, BaseErrorCode+26, "invalid params")
	ErrConsensusDataNotFound            = sdkerrors.Register(ModuleName, BaseErrorCode+27, "aggregated consensus data not found")
)
