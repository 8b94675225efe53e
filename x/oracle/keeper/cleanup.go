package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"

	"github.com/pastelnetwork/pastel-oracle-node/x/oracle/types"
)

// PostConsensusTasks removes the transient data of a finalized txid, sweeps
// data past its retention period and evicts permanently banned contributors.
// The submission count of txid is kept so late reports keep being rejected
// until it ages out.
func (k Keeper) PostConsensusTasks(ctx context.Context, txid string, now uint64) (types.CleanupStats, error) {
	var stats types.CleanupStats

	params, err := k.GetParams(ctx)
	if err != nil {
		return stats, err
	}

	removed, err := k.removeReportsForTxid(ctx, txid)
	if err != nil {
		return stats, err
	}
	stats.ReportsRemoved += removed

	removed, err = k.removeCommonReportsForTxid(ctx, txid)
	if err != nil {
		return stats, err
	}
	stats.CommonReportsRemoved += removed

	hasAgg, err := k.AggregatedData.Has(ctx, txid)
	if err != nil {
		return stats, err
	}
	if hasAgg {
		if err := k.AggregatedData.Remove(ctx, txid); err != nil {
			return stats, err
		}
		stats.AggregatesRemoved++
	}

	if err := k.sweepExpired(ctx, params, now, &stats); err != nil {
		return stats, err
	}

	removed, err = k.pruneUnreferencedCommonReports(ctx)
	if err != nil {
		return stats, err
	}
	stats.CommonReportsRemoved += removed

	evicted, err := k.RemovePermanentlyBanned(ctx)
	if err != nil {
		return stats, err
	}
	stats.EvictedContributors = evicted

	k.logger.Debug("post consensus cleanup done",
		"txid", txid,
		"reports", stats.ReportsRemoved,
		"common_reports", stats.CommonReportsRemoved,
		"aggregates", stats.AggregatesRemoved,
		"submission_counts", stats.SubmissionCountsRemoved,
		"evicted", len(stats.EvictedContributors),
	)

	return stats, nil
}

func (k Keeper) removeReportsForTxid(ctx context.Context, txid string) (int, error) {
	iter, err := k.Reports.Iterate(ctx, collections.NewPrefixedPairRange[string, string](txid))
	if err != nil {
		return 0, err
	}
	keys, err := iter.Keys()
	if err != nil {
		return 0, err
	}

	for _, key := range keys {
		if err := k.Reports.Remove(ctx, key); err != nil {
			return 0, fmt.Errorf("failed to remove report %s/%s: %w", key.K1(), key.K2(), err)
		}
	}
	return len(keys), nil
}

func (k Keeper) removeCommonReportsForTxid(ctx context.Context, txid string) (int, error) {
	iter, err := k.CommonReportIndex.Iterate(ctx, collections.NewPrefixedPairRange[string, string](txid))
	if err != nil {
		return 0, err
	}
	entries, err := iter.KeyValues()
	if err != nil {
		return 0, err
	}

	for _, kv := range entries {
		if err := k.CommonReports.Remove(ctx, kv.Value); err != nil {
			return 0, err
		}
		if err := k.CommonReportIndex.Remove(ctx, kv.Key); err != nil {
			return 0, err
		}
	}
	return len(entries), nil
}

// sweepExpired drops reports and tallies older than DataRetentionPeriod and
// submission counts older than SubmissionCountRetentionPeriod.
func (k Keeper) sweepExpired(ctx context.Context, params types.Params, now uint64, stats *types.CleanupStats) error {
	var staleReports []collections.Pair[string, string]
	err := k.Reports.Walk(ctx, nil, func(key collections.Pair[string, string], r types.TempStatusReport) (bool, error) {
		if expired(r.Timestamp, now, params.DataRetentionPeriod) {
			staleReports = append(staleReports, key)
		}
		return false, nil
	})
	if err != nil {
		return fmt.Errorf("error walking reports: %w", err)
	}
	for _, key := range staleReports {
		if err := k.Reports.Remove(ctx, key); err != nil {
			return err
		}
	}
	stats.ReportsRemoved += len(staleReports)

	var staleAggregates []string
	err = k.AggregatedData.Walk(ctx, nil, func(txid string, agg types.AggregatedConsensusData) (bool, error) {
		if expired(agg.LastUpdated, now, params.DataRetentionPeriod) {
			staleAggregates = append(staleAggregates, txid)
		}
		return false, nil
	})
	if err != nil {
		return fmt.Errorf("error walking aggregated data: %w", err)
	}
	for _, txid := range staleAggregates {
		if err := k.AggregatedData.Remove(ctx, txid); err != nil {
			return err
		}
	}
	stats.AggregatesRemoved += len(staleAggregates)

	var staleCounts []string
	err = k.SubmissionCounts.Walk(ctx, nil, func(txid string, sc types.SubmissionCount) (bool, error) {
		if expired(sc.LastUpdated, now, params.SubmissionCountRetentionPeriod) {
			staleCounts = append(staleCounts, txid)
		}
		return false, nil
	})
	if err != nil {
		return fmt.Errorf("error walking submission counts: %w", err)
	}
	for _, txid := range staleCounts {
		if err := k.SubmissionCounts.Remove(ctx, txid); err != nil {
			return err
		}
	}
	stats.SubmissionCountsRemoved += len(staleCounts)

	return nil
}

// pruneUnreferencedCommonReports drops common report data no stored report
// points to.
func (k Keeper) pruneUnreferencedCommonReports(ctx context.Context) (int, error) {
	referenced := make(map[uint64]struct{})
	err := k.Reports.Walk(ctx, nil, func(_ collections.Pair[string, string], r types.TempStatusReport) (bool, error) {
		referenced[r.CommonDataRef] = struct{}{}
		return false, nil
	})
	if err != nil {
		return 0, err
	}

	var orphans []collections.KeyValue[uint64, types.CommonReportData]
	err = k.CommonReports.Walk(ctx, nil, func(id uint64, data types.CommonReportData) (bool, error) {
		if _, ok := referenced[id]; !ok {
			orphans = append(orphans, collections.KeyValue[uint64, types.CommonReportData]{Key: id, Value: data})
		}
		return false, nil
	})
	if err != nil {
		return 0, err
	}

	for _, o := range orphans {
		if err := k.CommonReports.Remove(ctx, o.Key); err != nil {
			return 0, err
		}
		if err := k.CommonReportIndex.Remove(ctx, collections.Join(o.Value.Txid, o.Value.TicketType.String())); err != nil {
			return 0, err
		}
	}
	return len(orphans), nil
}

func expired(ts, now, retention uint64) bool {
	return now > ts && now-ts > retention
}
