package types

import (
	errorsmod "cosmossdk.io/errors"
)

const (
	DefaultMinNumberOfOracles             uint32 = 8
	DefaultMaxTxidLength                  uint32 = 64
	DefaultDataRetentionPeriod            uint64 = 24 * 60 * 60
	DefaultSubmissionCountRetentionPeriod uint64 = 24 * 60 * 60
	DefaultTemporaryBanThreshold          uint32 = 5
	DefaultContributionsForTemporaryBan   uint32 = 50
	DefaultTemporaryBanDuration           uint64 = 24 * 60 * 60
	DefaultPermanentBanThreshold          uint32 = 100
	DefaultContributionsForPermanentBan   uint32 = 250

	// Amounts are in lamports.
	DefaultRegistrationEntranceFee uint64 = 10_000_000
	DefaultMonitoringFee           uint64 = 100_000
	DefaultBaseRewardAmount        uint64 = 100_000

	DefaultMinReportsForReward          uint32 = 10
	DefaultMinComplianceScoreForReward  uint64 = 65 * ScorePrecision
	DefaultMinReliabilityScoreForReward uint64 = 80 * ScorePrecision
)

// Params holds the tunables of the oracle. Durations are in seconds.
type Params struct {
	MinNumberOfOracles             uint32 `json:"min_number_of_oracles"`
	MaxTxidLength                  uint32 `json:"max_txid_length"`
	DataRetentionPeriod            uint64 `json:"data_retention_period"`
	SubmissionCountRetentionPeriod uint64 `json:"submission_count_retention_period"`
	TemporaryBanThreshold          uint32 `json:"temporary_ban_threshold"`
	ContributionsForTemporaryBan   uint32 `json:"contributions_for_temporary_ban"`
	TemporaryBanDuration           uint64 `json:"temporary_ban_duration"`
	PermanentBanThreshold          uint32 `json:"permanent_ban_threshold"`
	ContributionsForPermanentBan   uint32 `json:"contributions_for_permanent_ban"`
	RegistrationEntranceFee        uint64 `json:"registration_entrance_fee"`
	MonitoringFee                  uint64 `json:"monitoring_fee"`
	BaseRewardAmount               uint64 `json:"base_reward_amount"`
	MinReportsForReward            uint32 `json:"min_reports_for_reward"`
	MinComplianceScoreForReward    uint64 `json:"min_compliance_score_for_reward"`
	MinReliabilityScoreForReward   uint64 `json:"min_reliability_score_for_reward"`
}

// DefaultParams returns default oracle parameters.
func DefaultParams() Params {
	return Params{
		MinNumberOfOracles:             DefaultMinNumberOfOracles,
		MaxTxidLength:                  DefaultMaxTxidLength,
		DataRetentionPeriod:            DefaultDataRetentionPeriod,
		SubmissionCountRetentionPeriod: DefaultSubmissionCountRetentionPeriod,
		TemporaryBanThreshold:          DefaultTemporaryBanThreshold,
		ContributionsForTemporaryBan:   DefaultContributionsForTemporaryBan,
		TemporaryBanDuration:           DefaultTemporaryBanDuration,
		PermanentBanThreshold:          DefaultPermanentBanThreshold,
		ContributionsForPermanentBan:   DefaultContributionsForPermanentBan,
		RegistrationEntranceFee:        DefaultRegistrationEntranceFee,
		MonitoringFee:                  DefaultMonitoringFee,
		BaseRewardAmount:               DefaultBaseRewardAmount,
		MinReportsForReward:            DefaultMinReportsForReward,
		MinComplianceScoreForReward:    DefaultMinComplianceScoreForReward,
		MinReliabilityScoreForReward:   DefaultMinReliabilityScoreForReward,
	}
}

// ValidateBasic performs stateless validation of the params.
func (p Params) ValidateBasic() error {
	if p.MinNumberOfOracles == 0 {
		return errorsmod.Wrap(ErrInvalidParams, "min number of oracles must be positive")
	}
	if p.MaxTxidLength == 0 {
		return errorsmod.Wrap(ErrInvalidParams, "max txid length must be positive")
	}
	if p.DataRetentionPeriod == 0 || p.SubmissionCountRetentionPeriod == 0 {
		return errorsmod.Wrap(ErrInvalidParams, "retention periods must be positive")
	}
	if p.TemporaryBanThreshold == 0 || p.PermanentBanThreshold == 0 {
		return errorsmod.Wrap(ErrInvalidParams, "ban thresholds must be positive")
	}
	if p.TemporaryBanDuration == 0 {
		return errorsmod.Wrap(ErrInvalidParams, "temporary ban duration must be positive")
	}
	if p.MonitoringFee == 0 {
		return errorsmod.Wrap(ErrPendingPaymentInvalidAmount, "monitoring fee must be positive")
	}
	if p.MinComplianceScoreForReward > MaxScore || p.MinReliabilityScoreForReward > MaxScore {
		return errorsmod.Wrapf(ErrInvalidParams, "reward score thresholds must not exceed %d", MaxScore)
	}
	return nil
}
