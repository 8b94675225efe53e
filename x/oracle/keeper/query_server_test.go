package keeper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pastelnetwork/pastel-oracle-node/x/oracle/types"
)

func TestQueryContributor(t *testing.T) {
	f := SetupTest(t)
	require := require.New(t)
	f.registerAll(t, "alice")

	_, err := f.queryServer.Contributor(f.ctx, &types.QueryContributorRequest{})
	require.ErrorIs(err, types.ErrInvalidAddress)

	_, err = f.queryServer.Contributor(f.ctx, &types.QueryContributorRequest{Address: "bob"})
	require.ErrorIs(err, types.ErrContributorNotRegistered)

	resp, err := f.queryServer.Contributor(f.ctx, &types.QueryContributorRequest{Address: "alice"})
	require.NoError(err)
	require.True(resp.Contributor.IsRecentlyActive)

	// Activity is evaluated at query time without a write.
	f.clock.Advance(48 * time.Hour)
	resp, err = f.queryServer.Contributor(f.ctx, &types.QueryContributorRequest{Address: "alice"})
	require.NoError(err)
	require.False(resp.Contributor.IsRecentlyActive)

	stored := f.contributor(t, "alice")
	require.True(stored.IsRecentlyActive)
}

func TestQueryContributors(t *testing.T) {
	f := SetupTest(t)
	require := require.New(t)
	f.registerAll(t, "alice", "bob")

	eligible := f.contributor(t, "bob")
	eligible.TotalReportsSubmitted = types.DefaultMinReportsForReward
	eligible.AccurateReportsCount = types.DefaultMinReportsForReward
	eligible.ComplianceScore = types.MaxScore
	eligible.ReliabilityScore = types.MaxScore
	require.NoError(f.k.SetContributor(f.ctx, eligible))

	all, err := f.queryServer.Contributors(f.ctx, &types.QueryContributorsRequest{})
	require.NoError(err)
	require.Len(all.Contributors, 2)

	only, err := f.queryServer.Contributors(f.ctx, &types.QueryContributorsRequest{EligibleOnly: true})
	require.NoError(err)
	require.Len(only.Contributors, 1)
	require.Equal("bob", only.Contributors[0].Address)
	require.True(only.Contributors[0].IsEligibleForRewards)
}

func TestQueryTxidState(t *testing.T) {
	f := SetupTest(t)
	require := require.New(t)
	f.registerAll(t, f.addrs[:2]...)

	sc, err := f.queryServer.SubmissionCount(f.ctx, &types.QuerySubmissionCountRequest{Txid: "tx-1"})
	require.NoError(err)
	require.Equal(types.SubmissionCount{Txid: "tx-1"}, sc.SubmissionCount)

	_, err = f.queryServer.AggregatedData(f.ctx, &types.QueryAggregatedDataRequest{Txid: "tx-1"})
	require.ErrorIs(err, types.ErrConsensusDataNotFound)

	_, err = f.submit("tx-1", f.addrs[0], types.TxidStatusMinedActivated, "abcdef")
	require.NoError(err)
	_, err = f.submit("tx-1", f.addrs[1], types.TxidStatusPendingMining, "012345")
	require.NoError(err)

	sc, err = f.queryServer.SubmissionCount(f.ctx, &types.QuerySubmissionCountRequest{Txid: "tx-1"})
	require.NoError(err)
	require.Equal(uint32(2), sc.SubmissionCount.Count)

	agg, err := f.queryServer.AggregatedData(f.ctx, &types.QueryAggregatedDataRequest{Txid: "tx-1"})
	require.NoError(err)
	require.Equal(types.InitialScore, agg.Data.StatusWeights[types.TxidStatusMinedActivated])
	require.Equal(types.InitialScore, agg.Data.StatusWeights[types.TxidStatusPendingMining])
	require.Equal([]types.HashWeight{
		{Hash: "abcdef", Weight: types.InitialScore},
		{Hash: "012345", Weight: types.InitialScore},
	}, agg.Data.HashWeights)

	reports, err := f.queryServer.Reports(f.ctx, &types.QueryReportsRequest{Txid: "tx-1"})
	require.NoError(err)
	require.Len(reports.Reports, 2)
	for _, r := range reports.Reports {
		require.Equal("tx-1", r.Txid)
		require.Equal(types.PastelTicketTypeCascade, r.TicketType)
		require.Equal(uint64(genesisTS), r.Timestamp)
	}

	_, err = f.queryServer.Reports(f.ctx, &types.QueryReportsRequest{})
	require.ErrorIs(err, types.ErrInvalidTxid)
}

func TestQueryPayments(t *testing.T) {
	f := SetupTest(t)
	require := require.New(t)

	_, err := f.queryServer.PendingPayment(f.ctx, &types.QueryPendingPaymentRequest{Txid: "tx-1"})
	require.ErrorIs(err, types.ErrPaymentNotFound)

	_, err = f.k.AddTxidForMonitoring(f.ctx, bridgeAddr, "tx-1")
	require.NoError(err)

	pp, err := f.queryServer.PendingPayment(f.ctx, &types.QueryPendingPaymentRequest{Txid: "tx-1"})
	require.NoError(err)
	require.Equal(types.PaymentStatusPending, pp.Payment.Status)

	balances, err := f.queryServer.Balances(f.ctx, &types.QueryBalancesRequest{})
	require.NoError(err)
	require.Equal(types.Balances{}, balances.Balances)
}
