package types

import "context"

// QueryServer is the set of read-only oracle queries.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Contributor(context.Context, *QueryContributorRequest) (*QueryContributorResponse, error)
	Contributors(context.Context, *QueryContributorsRequest) (*QueryContributorsResponse, error)
	SubmissionCount(context.Context, *QuerySubmissionCountRequest) (*QuerySubmissionCountResponse, error)
	AggregatedData(context.Context, *QueryAggregatedDataRequest) (*QueryAggregatedDataResponse, error)
	Reports(context.Context, *QueryReportsRequest) (*QueryReportsResponse, error)
	PendingPayment(context.Context, *QueryPendingPaymentRequest) (*QueryPendingPaymentResponse, error)
	Balances(context.Context, *QueryBalancesRequest) (*QueryBalancesResponse, error)
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryContributorRequest struct {
	Address string `json:"address"`
}

type QueryContributorResponse struct {
	Contributor Contributor `json:"contributor"`
}

// QueryContributorsRequest lists contributors. With EligibleOnly set only
// contributors currently eligible for rewards are returned.
type QueryContributorsRequest struct {
	EligibleOnly bool `json:"eligible_only"`
}

type QueryContributorsResponse struct {
	Contributors []Contributor `json:"contributors"`
}

type QuerySubmissionCountRequest struct {
	Txid string `json:"txid"`
}

type QuerySubmissionCountResponse struct {
	SubmissionCount SubmissionCount `json:"submission_count"`
}

type QueryAggregatedDataRequest struct {
	Txid string `json:"txid"`
}

type QueryAggregatedDataResponse struct {
	Data AggregatedConsensusData `json:"data"`
}

type QueryReportsRequest struct {
	Txid string `json:"txid"`
}

// ReportView is a stored report joined with its common data.
type ReportView struct {
	Txid        string           `json:"txid"`
	TicketType  PastelTicketType `json:"ticket_type"`
	Contributor string           `json:"contributor"`
	Status      TxidStatus       `json:"status"`
	HashPrefix  string           `json:"hash_prefix"`
	Timestamp   uint64           `json:"timestamp"`
}

type QueryReportsResponse struct {
	Reports []ReportView `json:"reports"`
}

type QueryPendingPaymentRequest struct {
	Txid string `json:"txid"`
}

type QueryPendingPaymentResponse struct {
	Payment PendingPayment `json:"payment"`
}

type QueryBalancesRequest struct{}

type QueryBalancesResponse struct {
	Balances Balances `json:"balances"`
}
