package db

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/pastelnetwork/pastel-oracle-node/node/store"
	"github.com/pastelnetwork/pastel-oracle-node/x/oracle/types"
)

// RecordConsensus stores a finalized consensus result.
func (d *DB) RecordConsensus(result types.ConsensusResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return errors.Wrap(err, "failed to encode consensus result")
	}

	record := store.ConsensusRecord{
		Txid:        result.Txid,
		Status:      result.Status.String(),
		HashPrefix:  result.HashPrefix,
		Reports:     len(result.Reports),
		Accurate:    result.AccurateCount(),
		FinalizedAt: result.FinalizedAt,
		Data:        data,
	}
	if err := d.client.Create(&record).Error; err != nil {
		return errors.Wrapf(err, "failed to record consensus for txid %s", result.Txid)
	}
	return nil
}

// ConsensusHistory returns the recorded verdicts of txid, oldest first. A
// txid can be finalized again after its submission count ages out.
func (d *DB) ConsensusHistory(txid string) ([]store.ConsensusRecord, error) {
	var records []store.ConsensusRecord
	err := d.client.
		Where("txid = ?", txid).
		Order("id ASC").
		Find(&records).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load consensus history for txid %s", txid)
	}
	return records, nil
}

// RecordFeeDeposit stores a registration fee payment. Each reference is
// accepted once.
func (d *DB) RecordFeeDeposit(address string, amount uint64, reference string) error {
	deposit := store.FeeDeposit{
		Address:   address,
		Amount:    amount,
		Reference: reference,
	}
	if err := d.client.Create(&deposit).Error; err != nil {
		return errors.Wrapf(err, "failed to record fee deposit %s", reference)
	}
	return nil
}

// RegistrationFeeTotal sums the fee deposits of address.
func (d *DB) RegistrationFeeTotal(address string) (uint64, error) {
	var total uint64
	err := d.client.Model(&store.FeeDeposit{}).
		Where("address = ?", address).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, errors.Wrapf(err, "failed to sum fee deposits of %s", address)
	}
	return total, nil
}

// RecordRewardPayout stores a paid reward.
func (d *DB) RecordRewardPayout(address string, amount uint64) error {
	payout := store.RewardPayout{Address: address, Amount: amount}
	if err := d.client.Create(&payout).Error; err != nil {
		return errors.Wrapf(err, "failed to record reward payout to %s", address)
	}
	return nil
}

// RewardPayouts returns the payouts to address, oldest first.
func (d *DB) RewardPayouts(address string) ([]store.RewardPayout, error) {
	var payouts []store.RewardPayout
	err := d.client.
		Where("address = ?", address).
		Order("id ASC").
		Find(&payouts).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load reward payouts of %s", address)
	}
	return payouts, nil
}

// DeleteOldRecords hard-deletes consensus records and reward payouts created
// before the retention window. Fee deposits back registrations and are kept.
func (d *DB) DeleteOldRecords(retentionPeriod time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retentionPeriod)

	var deleted int64
	err := d.client.Transaction(func(tx *gorm.DB) error {
		res := tx.Unscoped().Where("created_at < ?", cutoff).Delete(&store.ConsensusRecord{})
		if res.Error != nil {
			return res.Error
		}
		deleted += res.RowsAffected

		res = tx.Unscoped().Where("created_at < ?", cutoff).Delete(&store.RewardPayout{})
		if res.Error != nil {
			return res.Error
		}
		deleted += res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete old ledger records")
	}
	return deleted, nil
}
