// Package store contains GORM-backed SQLite models for the oracle history
// ledger.
//
// Database Structure (database file: ledger.db):
//
//	data/
//	└── ledger.db
//	    ├── consensus_records
//	    ├── fee_deposits
//	    └── reward_payouts
package store

import (
	"gorm.io/gorm"
)

// ConsensusRecord is one finalized txid. The keeper drops a txid's reports
// once it is finalized, so this is the only lasting record of the verdict.
type ConsensusRecord struct {
	gorm.Model
	Txid        string `gorm:"index;not null"`
	Status      string `gorm:"not null"` // TxidStatus name
	HashPrefix  string // Winning hash prefix, empty when no hash votes were cast
	Reports     int    // Number of reports scored
	Accurate    int    // Number of reports that matched the verdict
	FinalizedAt uint64 `gorm:"index"` // Unix seconds
	Data        []byte // Raw JSON-encoded consensus result
}

// FeeDeposit is a registration fee paid by a would-be contributor. Reference
// identifies the payment (e.g. the transfer signature) and is unique.
type FeeDeposit struct {
	gorm.Model
	Address   string `gorm:"index;not null"`
	Amount    uint64 `gorm:"not null"`
	Reference string `gorm:"uniqueIndex;not null"`
}

// RewardPayout is a reward paid from the reward pool.
type RewardPayout struct {
	gorm.Model
	Address string `gorm:"index;not null"`
	Amount  uint64 `gorm:"not null"`
}
