package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTxidStatus(t *testing.T) {
	for _, s := range AllTxidStatuses() {
		parsed, err := ParseTxidStatus(s.String())
		require.NoError(t, err)
		require.Equal(t, s, parsed)
	}

	// Matching is exact, no fallback to a default.
	for _, bad := range []string{"", "minedactivated", " MinedActivated", "Unknown"} {
		_, err := ParseTxidStatus(bad)
		require.ErrorIs(t, err, ErrInvalidTxidStatus, bad)
	}
}

func TestParsePastelTicketType(t *testing.T) {
	tt, err := ParsePastelTicketType("InferenceApi")
	require.NoError(t, err)
	require.Equal(t, PastelTicketTypeInferenceApi, tt)

	_, err = ParsePastelTicketType("")
	require.ErrorIs(t, err, ErrMissingPastelTicketType)

	_, err = ParsePastelTicketType("  ")
	require.ErrorIs(t, err, ErrMissingPastelTicketType)

	_, err = ParsePastelTicketType("cascade")
	require.ErrorIs(t, err, ErrInvalidPastelTicketType)
}

func TestParsePaymentStatus(t *testing.T) {
	p, err := ParsePaymentStatus("Received")
	require.NoError(t, err)
	require.Equal(t, PaymentStatusReceived, p)

	_, err = ParsePaymentStatus("Refunded")
	require.ErrorIs(t, err, ErrInvalidPaymentStatus)
}

func TestEnumJSONUsesNames(t *testing.T) {
	b, err := json.Marshal(TempStatusReport{
		Contributor: "alice",
		Status:      TxidStatusMinedPendingActivation,
		HashPrefix:  "abc123",
	})
	require.NoError(t, err)
	require.Contains(t, string(b), `"status":"MinedPendingActivation"`)

	_, err = json.Marshal(TxidStatus(9))
	require.Error(t, err)

	var r TempStatusReport
	err = json.Unmarshal([]byte(`{"status":"Bogus"}`), &r)
	require.ErrorIs(t, err, ErrInvalidTxidStatus)
}

func TestTxidStatusIsValid(t *testing.T) {
	require.True(t, TxidStatusMinedActivated.IsValid())
	require.False(t, TxidStatus(TxidStatusCount).IsValid())
	require.Equal(t, "TxidStatus(7)", TxidStatus(7).String())
}
