package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	"github.com/pastelnetwork/pastel-oracle-node/x/oracle/types"
)

// RequestReward pays BaseRewardAmount from the reward pool to an eligible,
// unbanned contributor.
func (k Keeper) RequestReward(ctx context.Context, address string) (uint64, error) {
	c, found, err := k.GetContributor(ctx, address)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, errorsmod.Wrapf(types.ErrUnregisteredOracle, "address %s", address)
	}
	if !c.IsEligibleForRewards {
		return 0, errorsmod.Wrapf(types.ErrNotEligibleForReward, "address %s", address)
	}
	if c.IsBanned(k.Now()) {
		return 0, errorsmod.Wrapf(types.ErrContributorBanned, "address %s", address)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return 0, err
	}

	pool, err := getOrZero(ctx, k.RewardPool)
	if err != nil {
		return 0, err
	}
	if pool < params.BaseRewardAmount {
		return 0, errorsmod.Wrapf(types.ErrInsufficientFunds, "reward pool holds %d, reward is %d", pool, params.BaseRewardAmount)
	}

	if err := k.RewardPool.Set(ctx, pool-params.BaseRewardAmount); err != nil {
		return 0, err
	}

	k.logger.Info("reward paid", "address", address, "amount", params.BaseRewardAmount)
	return params.BaseRewardAmount, nil
}
