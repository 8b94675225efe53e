package types

import (
	"encoding/json"
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
)

// TxidStatus is the status a contributor reports for a Pastel txid. The
// numeric value doubles as the index into AggregatedConsensusData.StatusWeights
// and as the tie-break order (lower wins).
type TxidStatus uint8

const (
	TxidStatusInvalid TxidStatus = iota
	TxidStatusPendingMining
	TxidStatusMinedPendingActivation
	TxidStatusMinedActivated
)

// TxidStatusCount is the number of TxidStatus variants.
const TxidStatusCount = 4

var txidStatusNames = [TxidStatusCount]string{
	"Invalid",
	"PendingMining",
	"MinedPendingActivation",
	"MinedActivated",
}

// AllTxidStatuses returns every status in enumeration order.
func AllTxidStatuses() []TxidStatus {
	return []TxidStatus{
		TxidStatusInvalid,
		TxidStatusPendingMining,
		TxidStatusMinedPendingActivation,
		TxidStatusMinedActivated,
	}
}

func (s TxidStatus) IsValid() bool {
	return s < TxidStatusCount
}

func (s TxidStatus) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("TxidStatus(%d)", uint8(s))
	}
	return txidStatusNames[s]
}

// ParseTxidStatus parses the canonical name of a status. Matching is exact.
func ParseTxidStatus(s string) (TxidStatus, error) {
	for i, name := range txidStatusNames {
		if name == s {
			return TxidStatus(i), nil
		}
	}
	return 0, errorsmod.Wrapf(ErrInvalidTxidStatus, "%q", s)
}

func (s TxidStatus) MarshalJSON() ([]byte, error) {
	if !s.IsValid() {
		return nil, errorsmod.Wrapf(ErrInvalidTxidStatus, "%d", uint8(s))
	}
	return json.Marshal(s.String())
}

func (s *TxidStatus) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	parsed, err := ParseTxidStatus(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// PastelTicketType is the kind of Pastel ticket a txid belongs to.
type PastelTicketType uint8

const (
	PastelTicketTypeSense PastelTicketType = iota
	PastelTicketTypeCascade
	PastelTicketTypeNft
	PastelTicketTypeInferenceApi
)

const pastelTicketTypeCount = 4

var pastelTicketTypeNames = [pastelTicketTypeCount]string{
	"Sense",
	"Cascade",
	"Nft",
	"InferenceApi",
}

func (t PastelTicketType) IsValid() bool {
	return t < pastelTicketTypeCount
}

func (t PastelTicketType) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("PastelTicketType(%d)", uint8(t))
	}
	return pastelTicketTypeNames[t]
}

// ParsePastelTicketType parses the canonical name of a ticket type. An empty
// (or blank) value reports ErrMissingPastelTicketType.
func ParsePastelTicketType(s string) (PastelTicketType, error) {
	if strings.TrimSpace(s) == "" {
		return 0, ErrMissingPastelTicketType
	}
	for i, name := range pastelTicketTypeNames {
		if name == s {
			return PastelTicketType(i), nil
		}
	}
	return 0, errorsmod.Wrapf(ErrInvalidPastelTicketType, "%q", s)
}

func (t PastelTicketType) MarshalJSON() ([]byte, error) {
	if !t.IsValid() {
		return nil, errorsmod.Wrapf(ErrInvalidPastelTicketType, "%d", uint8(t))
	}
	return json.Marshal(t.String())
}

func (t *PastelTicketType) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	parsed, err := ParsePastelTicketType(name)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// PaymentStatus tracks a monitoring fee from request to receipt.
type PaymentStatus uint8

const (
	PaymentStatusPending PaymentStatus = iota
	PaymentStatusReceived
)

func (p PaymentStatus) String() string {
	switch p {
	case PaymentStatusPending:
		return "Pending"
	case PaymentStatusReceived:
		return "Received"
	default:
		return fmt.Sprintf("PaymentStatus(%d)", uint8(p))
	}
}

// ParsePaymentStatus parses "Pending" or "Received".
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch s {
	case "Pending":
		return PaymentStatusPending, nil
	case "Received":
		return PaymentStatusReceived, nil
	default:
		return 0, errorsmod.Wrapf(ErrInvalidPaymentStatus, "%q", s)
	}
}

func (p PaymentStatus) MarshalJSON() ([]byte, error) {
	if p > PaymentStatusReceived {
		return nil, errorsmod.Wrapf(ErrInvalidPaymentStatus, "%d", uint8(p))
	}
	return json.Marshal(p.String())
}

func (p *PaymentStatus) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	parsed, err := ParsePaymentStatus(name)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
