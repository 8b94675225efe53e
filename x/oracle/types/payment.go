package types

// PendingPayment tracks the monitoring fee of a txid.
type PendingPayment struct {
	Txid           string        `json:"txid"`
	ExpectedAmount uint64        `json:"expected_amount"`
	Status         PaymentStatus `json:"status"`
}

// IsPaid reports whether the fee was received.
func (p PendingPayment) IsPaid() bool {
	return p.Status == PaymentStatusReceived
}

// Balances are the lamport balances held by the oracle.
type Balances struct {
	RewardPool   uint64 `json:"reward_pool"`
	FeeReceiving uint64 `json:"fee_receiving"`
}
