package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateTxid(t *testing.T) {
	require.NoError(t, ValidateTxid("a1b2", 64))
	require.NoError(t, ValidateTxid(strings.Repeat("f", 64), 64))

	require.ErrorIs(t, ValidateTxid("", 64), ErrInvalidTxid)
	require.ErrorIs(t, ValidateTxid("   ", 64), ErrInvalidTxid)
	require.ErrorIs(t, ValidateTxid(strings.Repeat("f", 65), 64), ErrInvalidTxid)
	require.ErrorIs(t, ValidateTxid("tx\x00a", 64), ErrInvalidTxid)
	require.ErrorIs(t, ValidateTxid("\x00", 64), ErrInvalidTxid)
}

func TestValidateHashPrefix(t *testing.T) {
	require.NoError(t, ValidateHashPrefix("abc123"))

	require.ErrorIs(t, ValidateHashPrefix(""), ErrMissingFileHash)
	require.ErrorIs(t, ValidateHashPrefix("abc12"), ErrInvalidFileHashLength)
	require.ErrorIs(t, ValidateHashPrefix("abc1234"), ErrInvalidFileHashLength)
	require.ErrorIs(t, ValidateHashPrefix("ABC123"), ErrInvalidFileHashLength)
	require.ErrorIs(t, ValidateHashPrefix("abcxyz"), ErrInvalidFileHashLength)
}

func TestTempStatusReportIsAccurate(t *testing.T) {
	r := TempStatusReport{Status: TxidStatusMinedActivated, HashPrefix: "abc123"}
	require.True(t, r.IsAccurate(TxidStatusMinedActivated, "abc123"))
	require.False(t, r.IsAccurate(TxidStatusMinedActivated, "abc124"))
	require.False(t, r.IsAccurate(TxidStatusPendingMining, "abc123"))
}
