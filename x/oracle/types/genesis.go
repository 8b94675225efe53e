package types

import (
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
)

// GenesisState is the exported oracle state that survives restarts and
// migrations. In-flight reports and tallies are transient and not exported.
type GenesisState struct {
	Params            Params           `json:"params"`
	Contributors      []Contributor    `json:"contributors"`
	PendingPayments   []PendingPayment `json:"pending_payments"`
	MonitoredTxids    []string         `json:"monitored_txids"`
	PermanentlyBanned []string         `json:"permanently_banned"`
	BridgeContract    string           `json:"bridge_contract"`
	RewardPool        uint64           `json:"reward_pool"`
	FeeReceiving      uint64           `json:"fee_receiving"`
}

// DefaultGenesis returns the default genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:            DefaultParams(),
		Contributors:      []Contributor{},
		PendingPayments:   []PendingPayment{},
		MonitoredTxids:    []string{},
		PermanentlyBanned: []string{},
	}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	if err := gs.Params.ValidateBasic(); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(gs.Contributors))
	for _, c := range gs.Contributors {
		if strings.TrimSpace(c.Address) == "" {
			return errorsmod.Wrap(ErrInvalidAddress, "contributor address is empty")
		}
		if _, ok := seen[c.Address]; ok {
			return errorsmod.Wrapf(ErrContributorAlreadyRegistered, "duplicate contributor %s", c.Address)
		}
		seen[c.Address] = struct{}{}
		if c.ComplianceScore > MaxScore || c.ReliabilityScore > MaxScore {
			return fmt.Errorf("contributor %s: score out of range", c.Address)
		}
	}

	payments := make(map[string]struct{}, len(gs.PendingPayments))
	for _, p := range gs.PendingPayments {
		if err := ValidateTxid(p.Txid, gs.Params.MaxTxidLength); err != nil {
			return err
		}
		if p.ExpectedAmount == 0 {
			return errorsmod.Wrapf(ErrPendingPaymentInvalidAmount, "txid %s", p.Txid)
		}
		if _, ok := payments[p.Txid]; ok {
			return errorsmod.Wrapf(ErrPendingPaymentAlreadyInitialized, "txid %s", p.Txid)
		}
		payments[p.Txid] = struct{}{}
	}

	for _, txid := range gs.MonitoredTxids {
		if err := ValidateTxid(txid, gs.Params.MaxTxidLength); err != nil {
			return err
		}
	}
	return nil
}
