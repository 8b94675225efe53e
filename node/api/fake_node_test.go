package api

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	"github.com/pastelnetwork/pastel-oracle-node/node/store"
	"github.com/pastelnetwork/pastel-oracle-node/x/oracle/types"
)

// fakeNode implements OracleNode for testing
type fakeNode struct {
	contributors map[string]types.Contributor
	payments     map[string]types.PendingPayment
	balances     types.Balances
	params       types.Params
	admin        string
	bridge       string

	submitted []types.MsgSubmitReport
	fees      []registrationFeeRequest
	submitErr error
}

func newFakeNode() *fakeNode {
	return &fakeNode{
		contributors: map[string]types.Contributor{
			"alice": {Address: "alice", ComplianceScore: 80 * types.ScorePrecision, IsEligibleForRewards: true},
			"bob":   {Address: "bob", ComplianceScore: 10 * types.ScorePrecision},
		},
		payments: map[string]types.PendingPayment{},
		balances: types.Balances{RewardPool: 1000, FeeReceiving: 50},
		params:   types.DefaultParams(),
		admin:    "admin",
		bridge:   "bridge",
	}
}

func (f *fakeNode) RegisterContributor(_ context.Context, address string) (types.Contributor, error) {
	if _, ok := f.contributors[address]; ok {
		return types.Contributor{}, errorsmod.Wrapf(types.ErrContributorAlreadyRegistered, "address %s", address)
	}
	c := types.Contributor{Address: address}
	f.contributors[address] = c
	return c, nil
}

func (f *fakeNode) SubmitReport(_ context.Context, msg types.MsgSubmitReport) (types.SubmitResult, error) {
	if f.submitErr != nil {
		return types.SubmitResult{}, f.submitErr
	}
	if _, ok := f.contributors[msg.Contributor]; !ok {
		return types.SubmitResult{}, errorsmod.Wrapf(types.ErrContributorNotRegistered, "address %s", msg.Contributor)
	}
	f.submitted = append(f.submitted, msg)
	return types.SubmitResult{Txid: msg.Txid, Count: uint32(len(f.submitted))}, nil
}

func (f *fakeNode) AddTxidForMonitoring(_ context.Context, caller, txid string) (types.PendingPayment, error) {
	if caller != f.bridge {
		return types.PendingPayment{}, types.ErrNotBridgeContractAddress
	}
	p := types.PendingPayment{Txid: txid, ExpectedAmount: f.params.MonitoringFee, Status: types.PaymentStatusPending}
	f.payments[txid] = p
	return p, nil
}

func (f *fakeNode) ProcessPayment(_ context.Context, txid string, amount uint64) (types.PendingPayment, error) {
	p, ok := f.payments[txid]
	if !ok {
		return types.PendingPayment{}, errorsmod.Wrapf(types.ErrPaymentNotFound, "txid %s", txid)
	}
	if amount != p.ExpectedAmount {
		return types.PendingPayment{}, types.ErrInvalidPaymentAmount
	}
	p.Status = types.PaymentStatusReceived
	f.payments[txid] = p
	return p, nil
}

func (f *fakeNode) RecordRegistrationFee(_ context.Context, address string, amount uint64, reference string) error {
	f.fees = append(f.fees, registrationFeeRequest{Address: address, Amount: amount, Reference: reference})
	return nil
}

func (f *fakeNode) RequestReward(_ context.Context, address string) (uint64, error) {
	c, ok := f.contributors[address]
	if !ok {
		return 0, types.ErrUnregisteredOracle
	}
	if !c.IsEligibleForRewards {
		return 0, types.ErrNotEligibleForReward
	}
	f.balances.RewardPool -= f.params.BaseRewardAmount
	return f.params.BaseRewardAmount, nil
}

func (f *fakeNode) SetBridgeContract(_ context.Context, admin, bridge string) error {
	if admin != f.admin {
		return types.ErrUnauthorizedAdmin
	}
	f.bridge = bridge
	return nil
}

func (f *fakeNode) WithdrawFunds(_ context.Context, admin string, rewardPoolAmount, feeReceivingAmount uint64) (types.Balances, error) {
	if admin != f.admin {
		return types.Balances{}, types.ErrUnauthorizedWithdrawalAccount
	}
	if rewardPoolAmount > f.balances.RewardPool || feeReceivingAmount > f.balances.FeeReceiving {
		return types.Balances{}, types.ErrInsufficientFunds
	}
	f.balances.RewardPool -= rewardPoolAmount
	f.balances.FeeReceiving -= feeReceivingAmount
	return f.balances, nil
}

func (f *fakeNode) UpdateParams(_ context.Context, admin string, params types.Params) error {
	if admin != f.admin {
		return types.ErrUnauthorizedAdmin
	}
	if err := params.ValidateBasic(); err != nil {
		return err
	}
	f.params = params
	return nil
}

func (f *fakeNode) Params(context.Context) (types.Params, error) {
	return f.params, nil
}

func (f *fakeNode) Contributor(_ context.Context, address string) (types.Contributor, error) {
	c, ok := f.contributors[address]
	if !ok {
		return types.Contributor{}, errorsmod.Wrapf(types.ErrContributorNotRegistered, "address %s", address)
	}
	return c, nil
}

func (f *fakeNode) Contributors(_ context.Context, eligibleOnly bool) ([]types.Contributor, error) {
	var out []types.Contributor
	for _, addr := range []string{"alice", "bob"} {
		c, ok := f.contributors[addr]
		if !ok || (eligibleOnly && !c.IsEligibleForRewards) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeNode) Reports(_ context.Context, txid string) ([]types.ReportView, error) {
	var views []types.ReportView
	for _, m := range f.submitted {
		if m.Txid == txid {
			views = append(views, types.ReportView{Txid: txid, Contributor: m.Contributor, HashPrefix: m.HashPrefix})
		}
	}
	return views, nil
}

func (f *fakeNode) Consensus(_ context.Context, txid string) (ConsensusState, error) {
	return ConsensusState{Txid: txid, SubmissionCount: types.SubmissionCount{Txid: txid, Count: uint32(len(f.submitted))}}, nil
}

func (f *fakeNode) ConsensusHistory(_ context.Context, txid string) ([]store.ConsensusRecord, error) {
	return []store.ConsensusRecord{{Txid: txid, Status: types.TxidStatusMinedActivated.String(), HashPrefix: "abcdef"}}, nil
}

func (f *fakeNode) PendingPayment(_ context.Context, txid string) (types.PendingPayment, error) {
	p, ok := f.payments[txid]
	if !ok {
		return types.PendingPayment{}, errorsmod.Wrapf(types.ErrPaymentNotFound, "txid %s", txid)
	}
	return p, nil
}

func (f *fakeNode) Balances(context.Context) (types.Balances, error) {
	return f.balances, nil
}
