package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	"github.com/pastelnetwork/pastel-oracle-node/x/oracle/types"
)

// CalculateConsensus decides the verdict of txid from its tally and scores
// every contributor that reported on it. Reports whose contributor no longer
// exists are skipped.
func (k Keeper) CalculateConsensus(ctx context.Context, txid string, now uint64) (types.ConsensusResult, error) {
	agg, found, err := k.GetAggregatedData(ctx, txid)
	if err != nil {
		return types.ConsensusResult{}, err
	}
	if !found {
		return types.ConsensusResult{}, errorsmod.Wrapf(types.ErrConsensusDataNotFound, "txid %s", txid)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return types.ConsensusResult{}, err
	}

	status, hash := agg.ComputeConsensus()
	result := types.ConsensusResult{
		Txid:          txid,
		Status:        status,
		HashPrefix:    hash,
		StatusWeights: agg.StatusWeights,
		FinalizedAt:   now,
	}

	reports, err := k.GetReportsForTxid(ctx, txid)
	if err != nil {
		return types.ConsensusResult{}, err
	}

	for _, r := range reports {
		scored := types.ScoredReport{
			Contributor: r.Contributor,
			Accurate:    r.IsAccurate(status, hash),
		}

		c, found, err := k.GetContributor(ctx, r.Contributor)
		if err != nil {
			return types.ConsensusResult{}, err
		}
		if !found {
			k.logger.Info("skipping score update for missing contributor", "txid", txid, "contributor", r.Contributor)
			result.Reports = append(result.Reports, scored)
			continue
		}

		updated, applied := UpdateContributor(c, now, scored.Accurate, params)
		if applied {
			if err := k.SetContributor(ctx, updated); err != nil {
				return types.ConsensusResult{}, err
			}
		}
		scored.Applied = applied
		result.Reports = append(result.Reports, scored)
	}

	k.logger.Info("consensus reached",
		"txid", txid,
		"status", status.String(),
		"hash", hash,
		"reports", len(result.Reports),
		"accurate", result.AccurateCount(),
	)

	return result, nil
}
