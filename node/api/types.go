package api

import (
	"time"

	"github.com/pastelnetwork/pastel-oracle-node/x/oracle/types"
)

// QueryResponse represents the standard query response format
type QueryResponse struct {
	Data        interface{} `json:"data"`
	LastFetched time.Time   `json:"last_fetched"`
}

// ErrorResponse represents an error response. Code is the registered oracle
// error code when the failure came from the state machine.
type ErrorResponse struct {
	Error    string `json:"error"`
	Code     uint32 `json:"code,omitempty"`
	Category string `json:"category,omitempty"`
}

// ConsensusState is the in-flight view of a txid that has not been
// finalized yet. Aggregated is nil before the first report.
type ConsensusState struct {
	Txid            string                         `json:"txid"`
	SubmissionCount types.SubmissionCount          `json:"submission_count"`
	Aggregated      *types.AggregatedConsensusData `json:"aggregated,omitempty"`
}

type registerContributorRequest struct {
	Contributor string `json:"contributor"`
}

type monitoringRequest struct {
	Caller string `json:"caller"`
	Txid   string `json:"txid"`
}

type paymentRequest struct {
	Txid   string `json:"txid"`
	Amount uint64 `json:"amount"`
}

type registrationFeeRequest struct {
	Address   string `json:"address"`
	Amount    uint64 `json:"amount"`
	Reference string `json:"reference"`
}

type rewardRequest struct {
	Contributor string `json:"contributor"`
}

type rewardResponse struct {
	Contributor string `json:"contributor"`
	Amount      uint64 `json:"amount"`
}
