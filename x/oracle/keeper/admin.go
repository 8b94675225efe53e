package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	"github.com/pastelnetwork/pastel-oracle-node/x/oracle/types"
)

// SetBridgeContract sets the only address allowed to add txids for monitoring.
func (k Keeper) SetBridgeContract(ctx context.Context, caller, bridge string) error {
	if !k.admin.IsAdmin(ctx, caller) {
		return errorsmod.Wrapf(types.ErrUnauthorizedAdmin, "caller %s", caller)
	}
	if bridge == "" {
		return errorsmod.Wrap(types.ErrInvalidAddress, "bridge contract address is empty")
	}

	if err := k.BridgeContract.Set(ctx, bridge); err != nil {
		return err
	}
	k.logger.Info("bridge contract updated", "bridge", bridge)
	return nil
}

func (k Keeper) GetBridgeContract(ctx context.Context) (string, bool, error) {
	bridge, err := k.BridgeContract.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return bridge, true, nil
}

// WithdrawFunds moves lamports out of the reward pool and the fee receiving
// balance. Both balances are checked before either is debited.
func (k Keeper) WithdrawFunds(ctx context.Context, caller string, rewardPoolAmount, feeReceivingAmount uint64) (types.Balances, error) {
	if !k.admin.IsAdmin(ctx, caller) {
		return types.Balances{}, errorsmod.Wrapf(types.ErrUnauthorizedWithdrawalAccount, "caller %s", caller)
	}

	balances, err := k.GetBalances(ctx)
	if err != nil {
		return types.Balances{}, err
	}
	if rewardPoolAmount > balances.RewardPool {
		return types.Balances{}, errorsmod.Wrapf(types.ErrInsufficientFunds, "reward pool holds %d, requested %d", balances.RewardPool, rewardPoolAmount)
	}
	if feeReceivingAmount > balances.FeeReceiving {
		return types.Balances{}, errorsmod.Wrapf(types.ErrInsufficientFunds, "fee receiving holds %d, requested %d", balances.FeeReceiving, feeReceivingAmount)
	}

	balances.RewardPool -= rewardPoolAmount
	balances.FeeReceiving -= feeReceivingAmount
	if err := k.RewardPool.Set(ctx, balances.RewardPool); err != nil {
		return types.Balances{}, err
	}
	if err := k.FeeReceiving.Set(ctx, balances.FeeReceiving); err != nil {
		return types.Balances{}, err
	}

	k.logger.Info("funds withdrawn", "reward_pool", rewardPoolAmount, "fee_receiving", feeReceivingAmount)
	return balances, nil
}

// UpdateParamsAsAdmin stores params on behalf of an admin caller.
func (k Keeper) UpdateParamsAsAdmin(ctx context.Context, caller string, params types.Params) error {
	if !k.admin.IsAdmin(ctx, caller) {
		return errorsmod.Wrapf(types.ErrUnauthorizedAdmin, "caller %s", caller)
	}
	return k.UpdateParams(ctx, params)
}
