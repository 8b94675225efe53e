package keeper

import (
	"context"

	"cosmossdk.io/errors"

	"github.com/pastelnetwork/pastel-oracle-node/x/oracle/types"
)

type msgServer struct {
	k Keeper
}

var _ types.MsgServer = msgServer{}

// NewMsgServerImpl returns an implementation of the module MsgServer interface.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{k: keeper}
}

// RegisterContributor implements types.MsgServer.
func (ms msgServer) RegisterContributor(ctx context.Context, msg *types.MsgRegisterContributor) (*types.MsgRegisterContributorResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	c, err := ms.k.RegisterContributor(ctx, msg.Contributor)
	if err != nil {
		return nil, err
	}

	return &types.MsgRegisterContributorResponse{Contributor: c}, nil
}

// SubmitReport parses the boundary strings in the same order the keeper
// validates them, then records the report.
func (ms msgServer) SubmitReport(ctx context.Context, msg *types.MsgSubmitReport) (*types.MsgSubmitReportResponse, error) {
	params, err := ms.k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	if err := types.ValidateTxid(msg.Txid, params.MaxTxidLength); err != nil {
		return nil, err
	}

	status, err := types.ParseTxidStatus(msg.TxidStatus)
	if err != nil {
		return nil, err
	}
	ticketType, err := types.ParsePastelTicketType(msg.TicketType)
	if err != nil {
		return nil, err
	}
	if err := types.ValidateHashPrefix(msg.HashPrefix); err != nil {
		return nil, err
	}
	// The contributor is checked after the report fields.
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	result, err := ms.k.SubmitReport(ctx, msg.Txid, msg.Contributor, status, ticketType, msg.HashPrefix)
	if err != nil {
		return nil, err
	}

	return &types.MsgSubmitReportResponse{Result: result}, nil
}

// AddTxidForMonitoring implements types.MsgServer.
func (ms msgServer) AddTxidForMonitoring(ctx context.Context, msg *types.MsgAddTxidForMonitoring) (*types.MsgAddTxidForMonitoringResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	payment, err := ms.k.AddTxidForMonitoring(ctx, msg.Caller, msg.Txid)
	if err != nil {
		return nil, err
	}

	return &types.MsgAddTxidForMonitoringResponse{Payment: payment}, nil
}

// ProcessPayment implements types.MsgServer.
func (ms msgServer) ProcessPayment(ctx context.Context, msg *types.MsgProcessPayment) (*types.MsgProcessPaymentResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	payment, err := ms.k.ProcessPayment(ctx, msg.Txid, msg.Amount)
	if err != nil {
		return nil, err
	}

	return &types.MsgProcessPaymentResponse{Payment: payment}, nil
}

// RequestReward implements types.MsgServer.
func (ms msgServer) RequestReward(ctx context.Context, msg *types.MsgRequestReward) (*types.MsgRequestRewardResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	amount, err := ms.k.RequestReward(ctx, msg.Contributor)
	if err != nil {
		return nil, err
	}

	return &types.MsgRequestRewardResponse{Contributor: msg.Contributor, Amount: amount}, nil
}

// SetBridgeContract implements types.MsgServer.
func (ms msgServer) SetBridgeContract(ctx context.Context, msg *types.MsgSetBridgeContract) (*types.MsgSetBridgeContractResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if err := ms.k.SetBridgeContract(ctx, msg.Admin, msg.BridgeContract); err != nil {
		return nil, err
	}

	return &types.MsgSetBridgeContractResponse{}, nil
}

// WithdrawFunds implements types.MsgServer.
func (ms msgServer) WithdrawFunds(ctx context.Context, msg *types.MsgWithdrawFunds) (*types.MsgWithdrawFundsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	balances, err := ms.k.WithdrawFunds(ctx, msg.Admin, msg.RewardPoolAmount, msg.FeeReceivingAmount)
	if err != nil {
		return nil, err
	}

	return &types.MsgWithdrawFundsResponse{Balances: balances}, nil
}

// UpdateParams handles MsgUpdateParams for updating module parameters.
// Only an admin can execute this.
func (ms msgServer) UpdateParams(ctx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, errors.Wrap(err, "invalid params update")
	}

	if err := ms.k.UpdateParamsAsAdmin(ctx, msg.Admin, msg.Params); err != nil {
		return nil, err
	}

	return &types.MsgUpdateParamsResponse{}, nil
}
