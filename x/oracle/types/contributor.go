package types

// Contributor is a registered reporting participant. Scores use the
// ScorePrecision fixed-point scale.
type Contributor struct {
	Address               string `json:"address"`
	ComplianceScore       uint64 `json:"compliance_score"`
	ReliabilityScore      uint64 `json:"reliability_score"`
	TotalReportsSubmitted uint32 `json:"total_reports_submitted"`
	AccurateReportsCount  uint32 `json:"accurate_reports_count"`
	CurrentStreak         uint32 `json:"current_streak"`
	ConsensusFailures     uint32 `json:"consensus_failures"`
	LastActiveTimestamp   uint64 `json:"last_active_timestamp"`
	BanExpiry             uint64 `json:"ban_expiry"`
	IsEligibleForRewards  bool   `json:"is_eligible_for_rewards"`
	IsRecentlyActive      bool   `json:"is_recently_active"`
	IsReliable            bool   `json:"is_reliable"`
}

// RecentActivityWindow is how long after its last report a contributor counts
// as recently active, in seconds.
const RecentActivityWindow uint64 = 24 * 60 * 60

// NewContributor returns a contributor with default scores.
func NewContributor(address string, now uint64) Contributor {
	return Contributor{
		Address:             address,
		ComplianceScore:     InitialScore,
		ReliabilityScore:    InitialScore,
		LastActiveTimestamp: now,
	}
}

// IsBanned reports whether the contributor is banned at now.
func (c Contributor) IsBanned(now uint64) bool {
	return c.IsPermanentlyBanned() || c.BanExpiry > now
}

// IsPermanentlyBanned reports whether BanExpiry holds the permanent sentinel.
func (c Contributor) IsPermanentlyBanned() bool {
	return c.BanExpiry == PermanentBan
}

// ReliabilityRatioMeets reports whether accurate/total >= 0.8.
func (c Contributor) ReliabilityRatioMeets() bool {
	if c.TotalReportsSubmitted == 0 {
		return false
	}
	// accurate/total >= 4/5
	return uint64(c.AccurateReportsCount)*5 >= uint64(c.TotalReportsSubmitted)*4
}

// EligibleForRewards evaluates the reward thresholds against the current scores.
func (c Contributor) EligibleForRewards(p Params) bool {
	return c.TotalReportsSubmitted >= p.MinReportsForReward &&
		c.ReliabilityScore >= p.MinReliabilityScoreForReward &&
		c.ComplianceScore >= p.MinComplianceScoreForReward
}

// RefreshStatuses recomputes the derived flags at now.
func (c Contributor) RefreshStatuses(now uint64, p Params) Contributor {
	c.IsRecentlyActive = now < c.LastActiveTimestamp || now-c.LastActiveTimestamp < RecentActivityWindow
	c.IsReliable = c.ReliabilityRatioMeets()
	c.IsEligibleForRewards = c.EligibleForRewards(p)
	return c
}
