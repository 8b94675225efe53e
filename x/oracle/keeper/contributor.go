package keeper

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	"github.com/pastelnetwork/pastel-oracle-node/x/oracle/types"
)

// RegisterContributor admits a new contributor once its registration fee has
// been paid. The fee is credited to the reward pool.
func (k Keeper) RegisterContributor(ctx context.Context, address string) (types.Contributor, error) {
	if strings.TrimSpace(address) == "" {
		return types.Contributor{}, errorsmod.Wrap(types.ErrInvalidAddress, "contributor address is empty")
	}

	exists, err := k.Contributors.Has(ctx, address)
	if err != nil {
		return types.Contributor{}, err
	}
	if exists {
		return types.Contributor{}, errorsmod.Wrapf(types.ErrContributorAlreadyRegistered, "address %s", address)
	}

	banned, err := k.PermanentlyBanned.Has(ctx, address)
	if err != nil {
		return types.Contributor{}, err
	}
	if banned {
		return types.Contributor{}, errorsmod.Wrapf(types.ErrContributorBanned, "address %s is permanently banned", address)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return types.Contributor{}, err
	}

	paid, err := k.feeGate.IsRegistrationFeePaid(ctx, address, params.RegistrationEntranceFee)
	if err != nil {
		return types.Contributor{}, errorsmod.Wrap(err, "failed to check registration fee")
	}
	if !paid {
		return types.Contributor{}, errorsmod.Wrapf(types.ErrRegistrationFeeNotPaid, "address %s", address)
	}

	now := k.Now()
	c := types.NewContributor(address, now).RefreshStatuses(now, params)
	if err := k.Contributors.Set(ctx, address, c); err != nil {
		return types.Contributor{}, err
	}

	if err := k.addBalance(ctx, k.RewardPool, params.RegistrationEntranceFee); err != nil {
		return types.Contributor{}, err
	}

	k.logger.Info("contributor registered", "address", address)
	return c, nil
}

// GetContributor returns (contributor, true, nil) if found, (zero, false, nil)
// if not, or an error if the read fails.
func (k Keeper) GetContributor(ctx context.Context, address string) (types.Contributor, bool, error) {
	c, err := k.Contributors.Get(ctx, address)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Contributor{}, false, nil
		}
		return types.Contributor{}, false, err
	}
	return c, true, nil
}

func (k Keeper) SetContributor(ctx context.Context, c types.Contributor) error {
	return k.Contributors.Set(ctx, c.Address, c)
}

// GetAllContributors returns every contributor ordered by address.
func (k Keeper) GetAllContributors(ctx context.Context) ([]types.Contributor, error) {
	var contributors []types.Contributor

	err := k.Contributors.Walk(ctx, nil, func(_ string, c types.Contributor) (bool, error) {
		contributors = append(contributors, c)
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return contributors, nil
}

// RemovePermanentlyBanned evicts every permanently banned contributor and
// records its address so it cannot register again.
func (k Keeper) RemovePermanentlyBanned(ctx context.Context) ([]string, error) {
	var evicted []string

	err := k.Contributors.Walk(ctx, nil, func(addr string, c types.Contributor) (bool, error) {
		if c.IsPermanentlyBanned() {
			evicted = append(evicted, addr)
		}
		return false, nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking contributors: %w", err)
	}

	for _, addr := range evicted {
		if err := k.Contributors.Remove(ctx, addr); err != nil {
			return nil, fmt.Errorf("failed to remove contributor %s: %w", addr, err)
		}
		if err := k.PermanentlyBanned.Set(ctx, addr); err != nil {
			return nil, err
		}
		k.logger.Info("evicted permanently banned contributor", "address", addr)
	}

	return evicted, nil
}
