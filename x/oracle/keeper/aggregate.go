package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	"github.com/pastelnetwork/pastel-oracle-node/x/oracle/types"
)

// Aggregate adds the contributor's vote to the tally of txid, weighted by its
// current compliance score, and returns the weight applied.
func (k Keeper) Aggregate(
	ctx context.Context,
	txid, contributor string,
	status types.TxidStatus,
	hashPrefix string,
	now uint64,
) (uint64, error) {
	c, found, err := k.GetContributor(ctx, contributor)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, errorsmod.Wrapf(types.ErrContributorNotRegistered, "address %s", contributor)
	}

	agg, found, err := k.GetAggregatedData(ctx, txid)
	if err != nil {
		return 0, err
	}
	if !found {
		agg = types.NewAggregatedConsensusData(txid)
	}

	weight := c.ComplianceScore
	agg = agg.AddVote(status, hashPrefix, weight, now)
	if err := k.AggregatedData.Set(ctx, txid, agg); err != nil {
		return 0, err
	}

	return weight, nil
}

// GetAggregatedData returns the running tally of txid.
func (k Keeper) GetAggregatedData(ctx context.Context, txid string) (types.AggregatedConsensusData, bool, error) {
	agg, err := k.AggregatedData.Get(ctx, txid)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.AggregatedConsensusData{}, false, nil
		}
		return types.AggregatedConsensusData{}, false, err
	}
	return agg, true, nil
}

// ShouldCalculateConsensus reports whether txid has reached the quorum.
func (k Keeper) ShouldCalculateConsensus(ctx context.Context, txid string) (bool, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return false, err
	}

	sc, found, err := k.GetSubmissionCount(ctx, txid)
	if err != nil || !found {
		return false, err
	}
	return sc.Count >= params.MinNumberOfOracles, nil
}
