package api

import (
	"context"

	"github.com/pastelnetwork/pastel-oracle-node/node/store"
	"github.com/pastelnetwork/pastel-oracle-node/x/oracle/types"
)

// OracleNode defines the methods needed by the API server
type OracleNode interface {
	RegisterContributor(ctx context.Context, address string) (types.Contributor, error)
	SubmitReport(ctx context.Context, msg types.MsgSubmitReport) (types.SubmitResult, error)
	AddTxidForMonitoring(ctx context.Context, caller, txid string) (types.PendingPayment, error)
	ProcessPayment(ctx context.Context, txid string, amount uint64) (types.PendingPayment, error)
	RecordRegistrationFee(ctx context.Context, address string, amount uint64, reference string) error
	RequestReward(ctx context.Context, address string) (uint64, error)

	SetBridgeContract(ctx context.Context, admin, bridge string) error
	WithdrawFunds(ctx context.Context, admin string, rewardPoolAmount, feeReceivingAmount uint64) (types.Balances, error)
	UpdateParams(ctx context.Context, admin string, params types.Params) error

	Params(ctx context.Context) (types.Params, error)
	Contributor(ctx context.Context, address string) (types.Contributor, error)
	Contributors(ctx context.Context, eligibleOnly bool) ([]types.Contributor, error)
	Reports(ctx context.Context, txid string) ([]types.ReportView, error)
	Consensus(ctx context.Context, txid string) (ConsensusState, error)
	ConsensusHistory(ctx context.Context, txid string) ([]store.ConsensusRecord, error)
	PendingPayment(ctx context.Context, txid string) (types.PendingPayment, error)
	Balances(ctx context.Context) (types.Balances, error)
}
