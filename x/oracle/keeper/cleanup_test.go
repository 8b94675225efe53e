package keeper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pastelnetwork/pastel-oracle-node/x/oracle/types"
)

func finalize(t *testing.T, f *testFixture, txid string, addrs []string, hash string) types.SubmitResult {
	t.Helper()
	var last types.SubmitResult
	for _, addr := range addrs {
		res, err := f.submit(txid, addr, types.TxidStatusMinedActivated, hash)
		require.NoError(t, err, addr)
		last = res
	}
	require.True(t, last.Finalized(), txid)
	return last
}

func TestCleanupSweepsExpiredData(t *testing.T) {
	f := SetupTest(t)
	require := require.New(t)
	f.registerAll(t, f.addrs...)

	for _, addr := range f.addrs[:3] {
		_, err := f.submit("tx-stale", addr, types.TxidStatusPendingMining, "abcdef")
		require.NoError(err)
	}

	f.clock.Advance(25 * time.Hour)

	_, err := f.submit("tx-fresh", f.addrs[9], types.TxidStatusPendingMining, "abcdef")
	require.NoError(err)

	res := finalize(t, f, "tx-live", f.addrs[:8], "abcdef")
	require.Equal(types.CleanupStats{
		ReportsRemoved:          8 + 3,
		CommonReportsRemoved:    1 + 1,
		AggregatesRemoved:       1 + 1,
		SubmissionCountsRemoved: 1,
	}, *res.Cleanup)

	_, found, err := f.k.GetSubmissionCount(f.ctx, "tx-stale")
	require.NoError(err)
	require.False(found)
	_, found, err = f.k.GetAggregatedData(f.ctx, "tx-stale")
	require.NoError(err)
	require.False(found)

	sc, found, err := f.k.GetSubmissionCount(f.ctx, "tx-live")
	require.NoError(err)
	require.True(found)
	require.Equal(uint32(8), sc.Count)

	// Reports inside the retention window are untouched.
	reports, err := f.k.GetReportsForTxid(f.ctx, "tx-fresh")
	require.NoError(err)
	require.Len(reports, 1)
	_, err = f.k.CommonReports.Get(f.ctx, reports[0].CommonDataRef)
	require.NoError(err)
}

func TestCleanupKeepsDataAtRetentionBoundary(t *testing.T) {
	f := SetupTest(t)
	require := require.New(t)
	f.registerAll(t, f.addrs...)

	_, err := f.submit("tx-edge", f.addrs[9], types.TxidStatusPendingMining, "abcdef")
	require.NoError(err)

	f.clock.Advance(time.Duration(types.DefaultDataRetentionPeriod) * time.Second)

	res := finalize(t, f, "tx-live", f.addrs[:8], "abcdef")
	require.Equal(8, res.Cleanup.ReportsRemoved)
	require.Zero(res.Cleanup.SubmissionCountsRemoved)

	reports, err := f.k.GetReportsForTxid(f.ctx, "tx-edge")
	require.NoError(err)
	require.Len(reports, 1)
}

func TestFinalizationEvictsPermanentlyBanned(t *testing.T) {
	f := SetupTest(t)
	require := require.New(t)
	f.registerAll(t, f.addrs[:8]...)

	p := types.DefaultParams()
	veteran := f.contributor(t, f.addrs[0])
	veteran.TotalReportsSubmitted = p.ContributionsForPermanentBan
	veteran.AccurateReportsCount = p.ContributionsForPermanentBan - (p.PermanentBanThreshold - 1)
	veteran.ConsensusFailures = p.PermanentBanThreshold - 1
	require.NoError(f.k.SetContributor(f.ctx, veteran))

	_, err := f.submit("tx-1", f.addrs[0], types.TxidStatusMinedActivated, "ffffff")
	require.NoError(err)
	res := finalize(t, f, "tx-1", f.addrs[1:8], "abcdef")

	require.Equal([]string{f.addrs[0]}, res.Cleanup.EvictedContributors)

	_, found, err := f.k.GetContributor(f.ctx, f.addrs[0])
	require.NoError(err)
	require.False(found)

	banned, err := f.k.PermanentlyBanned.Has(f.ctx, f.addrs[0])
	require.NoError(err)
	require.True(banned)

	// Evicted addresses cannot come back.
	_, err = f.k.RegisterContributor(f.ctx, f.addrs[0])
	require.ErrorIs(err, types.ErrContributorBanned)
}
