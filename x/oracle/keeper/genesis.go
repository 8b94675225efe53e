package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	"github.com/pastelnetwork/pastel-oracle-node/x/oracle/types"
)

// InitGenesis initializes the module's state from a genesis state. It can run
// only once per store.
func (k Keeper) InitGenesis(ctx context.Context, data *types.GenesisState) error {
	initialized, err := k.IsInitialized(ctx)
	if err != nil {
		return err
	}
	if initialized {
		return types.ErrAccountAlreadyInitialized
	}

	if err := data.Validate(); err != nil {
		return err
	}

	if err := k.Params.Set(ctx, data.Params); err != nil {
		return err
	}
	for _, c := range data.Contributors {
		if err := k.Contributors.Set(ctx, c.Address, c); err != nil {
			return errorsmod.Wrapf(err, "failed to import contributor %s", c.Address)
		}
	}
	for _, p := range data.PendingPayments {
		if err := k.PendingPayments.Set(ctx, p.Txid, p); err != nil {
			return err
		}
	}
	for _, txid := range data.MonitoredTxids {
		if err := k.MonitoredTxids.Set(ctx, txid); err != nil {
			return err
		}
	}
	for _, addr := range data.PermanentlyBanned {
		if err := k.PermanentlyBanned.Set(ctx, addr); err != nil {
			return err
		}
	}
	if data.BridgeContract != "" {
		if err := k.BridgeContract.Set(ctx, data.BridgeContract); err != nil {
			return err
		}
	}
	if err := k.RewardPool.Set(ctx, data.RewardPool); err != nil {
		return err
	}
	return k.FeeReceiving.Set(ctx, data.FeeReceiving)
}

// ExportGenesis exports the module's state to a genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	gs := types.DefaultGenesis()
	gs.Params = params

	if err := k.Contributors.Walk(ctx, nil, func(_ string, c types.Contributor) (bool, error) {
		gs.Contributors = append(gs.Contributors, c)
		return false, nil
	}); err != nil {
		return nil, err
	}
	if err := k.PendingPayments.Walk(ctx, nil, func(_ string, p types.PendingPayment) (bool, error) {
		gs.PendingPayments = append(gs.PendingPayments, p)
		return false, nil
	}); err != nil {
		return nil, err
	}
	if err := k.MonitoredTxids.Walk(ctx, nil, func(txid string) (bool, error) {
		gs.MonitoredTxids = append(gs.MonitoredTxids, txid)
		return false, nil
	}); err != nil {
		return nil, err
	}
	if err := k.PermanentlyBanned.Walk(ctx, nil, func(addr string) (bool, error) {
		gs.PermanentlyBanned = append(gs.PermanentlyBanned, addr)
		return false, nil
	}); err != nil {
		return nil, err
	}

	bridge, _, err := k.GetBridgeContract(ctx)
	if err != nil {
		return nil, err
	}
	gs.BridgeContract = bridge

	balances, err := k.GetBalances(ctx)
	if err != nil {
		return nil, err
	}
	gs.RewardPool = balances.RewardPool
	gs.FeeReceiving = balances.FeeReceiving

	return gs, nil
}
