package keeper

import (
	"context"
	"errors"
	"math"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	"github.com/pastelnetwork/pastel-oracle-node/x/oracle/types"
)

// AddTxidForMonitoring starts tracking txid on behalf of the bridge contract
// and opens a pending payment for its monitoring fee.
func (k Keeper) AddTxidForMonitoring(ctx context.Context, caller, txid string) (types.PendingPayment, error) {
	bridge, found, err := k.GetBridgeContract(ctx)
	if err != nil {
		return types.PendingPayment{}, err
	}
	if !found || caller != bridge {
		return types.PendingPayment{}, errorsmod.Wrapf(types.ErrNotBridgeContractAddress, "caller %s", caller)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return types.PendingPayment{}, err
	}
	if err := types.ValidateTxid(txid, params.MaxTxidLength); err != nil {
		return types.PendingPayment{}, err
	}

	exists, err := k.PendingPayments.Has(ctx, txid)
	if err != nil {
		return types.PendingPayment{}, err
	}
	if exists {
		return types.PendingPayment{}, errorsmod.Wrapf(types.ErrPendingPaymentAlreadyInitialized, "txid %s", txid)
	}

	if err := k.MonitoredTxids.Set(ctx, txid); err != nil {
		return types.PendingPayment{}, err
	}

	payment := types.PendingPayment{
		Txid:           txid,
		ExpectedAmount: params.MonitoringFee,
		Status:         types.PaymentStatusPending,
	}
	if err := k.PendingPayments.Set(ctx, txid, payment); err != nil {
		return types.PendingPayment{}, err
	}

	k.logger.Info("txid added for monitoring", "txid", txid, "fee", payment.ExpectedAmount)
	return payment, nil
}

// ProcessPayment settles the pending monitoring fee of txid. The amount must
// match exactly; it is credited to the fee receiving balance.
func (k Keeper) ProcessPayment(ctx context.Context, txid string, amount uint64) (types.PendingPayment, error) {
	payment, found, err := k.GetPendingPayment(ctx, txid)
	if err != nil {
		return types.PendingPayment{}, err
	}
	if !found {
		return types.PendingPayment{}, errorsmod.Wrapf(types.ErrPaymentNotFound, "txid %s", txid)
	}
	if payment.Status != types.PaymentStatusPending {
		return types.PendingPayment{}, errorsmod.Wrapf(types.ErrInvalidPaymentStatus, "txid %s is %s", txid, payment.Status)
	}
	if amount != payment.ExpectedAmount {
		return types.PendingPayment{}, errorsmod.Wrapf(types.ErrInvalidPaymentAmount, "expected %d, got %d", payment.ExpectedAmount, amount)
	}

	payment.Status = types.PaymentStatusReceived
	if err := k.PendingPayments.Set(ctx, txid, payment); err != nil {
		return types.PendingPayment{}, err
	}
	if err := k.addBalance(ctx, k.FeeReceiving, amount); err != nil {
		return types.PendingPayment{}, err
	}

	return payment, nil
}

// IsFeePaid reports whether the monitoring fee of txid was received.
func (k Keeper) IsFeePaid(ctx context.Context, txid string) (bool, error) {
	payment, found, err := k.GetPendingPayment(ctx, txid)
	if err != nil || !found {
		return false, err
	}
	return payment.IsPaid(), nil
}

func (k Keeper) GetPendingPayment(ctx context.Context, txid string) (types.PendingPayment, bool, error) {
	payment, err := k.PendingPayments.Get(ctx, txid)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.PendingPayment{}, false, nil
		}
		return types.PendingPayment{}, false, err
	}
	return payment, true, nil
}

// GetBalances returns the reward pool and fee receiving balances.
func (k Keeper) GetBalances(ctx context.Context) (types.Balances, error) {
	pool, err := getOrZero(ctx, k.RewardPool)
	if err != nil {
		return types.Balances{}, err
	}
	fees, err := getOrZero(ctx, k.FeeReceiving)
	if err != nil {
		return types.Balances{}, err
	}
	return types.Balances{RewardPool: pool, FeeReceiving: fees}, nil
}

func (k Keeper) addBalance(ctx context.Context, item collections.Item[uint64], amount uint64) error {
	balance, err := getOrZero(ctx, item)
	if err != nil {
		return err
	}
	if balance > math.MaxUint64-amount {
		return errorsmod.Wrapf(types.ErrInvalidPaymentAmount, "balance overflow adding %d", amount)
	}
	return item.Set(ctx, balance+amount)
}
