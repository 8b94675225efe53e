package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddVoteConservesWeight(t *testing.T) {
	agg := NewAggregatedConsensusData("tx1")

	agg = agg.AddVote(TxidStatusMinedActivated, "abc123", 10, 100)
	agg = agg.AddVote(TxidStatusPendingMining, "abc123", 5, 101)
	agg = agg.AddVote(TxidStatusMinedActivated, "def456", 7, 102)

	require.Equal(t, uint64(22), agg.TotalStatusWeight())
	require.Equal(t, uint64(17), agg.StatusWeights[TxidStatusMinedActivated])
	require.Equal(t, uint64(5), agg.StatusWeights[TxidStatusPendingMining])
	require.Equal(t, []HashWeight{{Hash: "abc123", Weight: 15}, {Hash: "def456", Weight: 7}}, agg.HashWeights)
	require.Equal(t, uint64(102), agg.LastUpdated)
}

func TestAddVoteDoesNotAliasInput(t *testing.T) {
	agg := NewAggregatedConsensusData("tx1").AddVote(TxidStatusInvalid, "aaaaaa", 1, 1)
	next := agg.AddVote(TxidStatusInvalid, "aaaaaa", 1, 2)

	require.Equal(t, uint64(1), agg.HashWeights[0].Weight)
	require.Equal(t, uint64(2), next.HashWeights[0].Weight)
}

func TestAddVoteHashMatchIsCaseSensitive(t *testing.T) {
	agg := NewAggregatedConsensusData("tx1")
	agg = agg.AddVote(TxidStatusInvalid, "abcdef", 1, 1)
	agg = agg.AddVote(TxidStatusInvalid, "ABCDEF", 1, 1)
	require.Len(t, agg.HashWeights, 2)
}

func TestComputeConsensus(t *testing.T) {
	agg := NewAggregatedConsensusData("tx1")
	agg = agg.AddVote(TxidStatusPendingMining, "111111", 3, 1)
	agg = agg.AddVote(TxidStatusMinedActivated, "222222", 5, 1)

	status, hash := agg.ComputeConsensus()
	require.Equal(t, TxidStatusMinedActivated, status)
	require.Equal(t, "222222", hash)
}

func TestComputeConsensusTieBreak(t *testing.T) {
	agg := NewAggregatedConsensusData("tx1")
	agg = agg.AddVote(TxidStatusMinedActivated, "bbbbbb", 4, 1)
	agg = agg.AddVote(TxidStatusPendingMining, "aaaaaa", 4, 1)

	// Equal weights: lowest status wins, first-seen hash wins.
	status, hash := agg.ComputeConsensus()
	require.Equal(t, TxidStatusPendingMining, status)
	require.Equal(t, "bbbbbb", hash)

	// Deterministic across calls.
	status2, hash2 := agg.ComputeConsensus()
	require.Equal(t, status, status2)
	require.Equal(t, hash, hash2)
}

func TestComputeConsensusEmpty(t *testing.T) {
	status, hash := NewAggregatedConsensusData("tx1").ComputeConsensus()
	require.Equal(t, TxidStatusInvalid, status)
	require.Empty(t, hash)
}

func TestConsensusResultCounts(t *testing.T) {
	r := ConsensusResult{Reports: []ScoredReport{
		{Contributor: "a", Accurate: true, Applied: true},
		{Contributor: "b", Accurate: false, Applied: true},
		{Contributor: "c", Accurate: true, Applied: false},
	}}
	require.Equal(t, 2, r.AccurateCount())
	require.Equal(t, 1, r.SkippedCount())

	require.False(t, SubmitResult{}.Finalized())
	require.True(t, SubmitResult{Consensus: &r}.Finalized())
}
