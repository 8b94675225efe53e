package types

import (
	"context"
	"strings"

	"cosmossdk.io/errors"
)

// MsgServer is the set of state-mutating oracle operations.
type MsgServer interface {
	RegisterContributor(context.Context, *MsgRegisterContributor) (*MsgRegisterContributorResponse, error)
	SubmitReport(context.Context, *MsgSubmitReport) (*MsgSubmitReportResponse, error)
	AddTxidForMonitoring(context.Context, *MsgAddTxidForMonitoring) (*MsgAddTxidForMonitoringResponse, error)
	ProcessPayment(context.Context, *MsgProcessPayment) (*MsgProcessPaymentResponse, error)
	RequestReward(context.Context, *MsgRequestReward) (*MsgRequestRewardResponse, error)
	SetBridgeContract(context.Context, *MsgSetBridgeContract) (*MsgSetBridgeContractResponse, error)
	WithdrawFunds(context.Context, *MsgWithdrawFunds) (*MsgWithdrawFundsResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

func validateAddress(addr, field string) error {
	if strings.TrimSpace(addr) == "" {
		return errors.Wrapf(ErrInvalidAddress, "%s is required", field)
	}
	return nil
}

type MsgRegisterContributor struct {
	Contributor string `json:"contributor"`
}

func (msg *MsgRegisterContributor) ValidateBasic() error {
	return validateAddress(msg.Contributor, "contributor")
}

type MsgRegisterContributorResponse struct {
	Contributor Contributor `json:"contributor"`
}

// MsgSubmitReport carries a report as received at the boundary. Status and
// ticket type are parsed strictly by the msg server.
type MsgSubmitReport struct {
	Contributor string `json:"contributor"`
	Txid        string `json:"txid"`
	TxidStatus  string `json:"txid_status"`
	TicketType  string `json:"pastel_ticket_type"`
	HashPrefix  string `json:"first_6_characters_of_sha3_256_hash_of_corresponding_file"`
}

func (msg *MsgSubmitReport) ValidateBasic() error {
	return validateAddress(msg.Contributor, "contributor")
}

type MsgSubmitReportResponse struct {
	Result SubmitResult `json:"result"`
}

// MsgAddTxidForMonitoring is sent by the bridge contract to start tracking a txid.
type MsgAddTxidForMonitoring struct {
	Caller string `json:"caller"`
	Txid   string `json:"txid"`
}

func (msg *MsgAddTxidForMonitoring) ValidateBasic() error {
	return validateAddress(msg.Caller, "caller")
}

type MsgAddTxidForMonitoringResponse struct {
	Payment PendingPayment `json:"payment"`
}

type MsgProcessPayment struct {
	Txid   string `json:"txid"`
	Amount uint64 `json:"amount"`
}

func (msg *MsgProcessPayment) ValidateBasic() error {
	if strings.TrimSpace(msg.Txid) == "" {
		return errors.Wrap(ErrInvalidTxid, "txid is empty")
	}
	return nil
}

type MsgProcessPaymentResponse struct {
	Payment PendingPayment `json:"payment"`
}

type MsgRequestReward struct {
	Contributor string `json:"contributor"`
}

func (msg *MsgRequestReward) ValidateBasic() error {
	return validateAddress(msg.Contributor, "contributor")
}

type MsgRequestRewardResponse struct {
	Contributor string `json:"contributor"`
	Amount      uint64 `json:"amount"`
}

type MsgSetBridgeContract struct {
	Admin          string `json:"admin"`
	BridgeContract string `json:"bridge_contract"`
}

func (msg *MsgSetBridgeContract) ValidateBasic() error {
	if err := validateAddress(msg.Admin, "admin"); err != nil {
		return err
	}
	return validateAddress(msg.BridgeContract, "bridge contract")
}

type MsgSetBridgeContractResponse struct{}

// MsgWithdrawFunds moves lamports out of the reward pool and the fee
// receiving balance.
type MsgWithdrawFunds struct {
	Admin              string `json:"admin"`
	RewardPoolAmount   uint64 `json:"reward_pool_amount"`
	FeeReceivingAmount uint64 `json:"fee_receiving_amount"`
}

func (msg *MsgWithdrawFunds) ValidateBasic() error {
	return validateAddress(msg.Admin, "admin")
}

type MsgWithdrawFundsResponse struct {
	Balances Balances `json:"balances"`
}

type MsgUpdateParams struct {
	Admin  string `json:"admin"`
	Params Params `json:"params"`
}

func (msg *MsgUpdateParams) ValidateBasic() error {
	if err := validateAddress(msg.Admin, "admin"); err != nil {
		return err
	}
	return msg.Params.ValidateBasic()
}

type MsgUpdateParamsResponse struct{}
