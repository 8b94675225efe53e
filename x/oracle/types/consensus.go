package types

// HashWeight is the accumulated vote weight behind one hash prefix.
type HashWeight struct {
	Hash   string `json:"hash"`
	Weight uint64 `json:"weight"`
}

// AggregatedConsensusData is the running weighted tally for a txid.
type AggregatedConsensusData struct {
	Txid          string                  `json:"txid"`
	StatusWeights [TxidStatusCount]uint64 `json:"status_weights"`
	HashWeights   []HashWeight            `json:"hash_weights"`
	LastUpdated   uint64                  `json:"last_updated"`
}

// NewAggregatedConsensusData returns an empty tally for txid.
func NewAggregatedConsensusData(txid string) AggregatedConsensusData {
	return AggregatedConsensusData{Txid: txid, HashWeights: []HashWeight{}}
}

// AddVote adds weight to status and to hash. Hashes match case-sensitively;
// unseen hashes are appended so first-seen order is kept.
func (a AggregatedConsensusData) AddVote(status TxidStatus, hash string, weight uint64, now uint64) AggregatedConsensusData {
	a.StatusWeights[status] += weight

	found := false
	weights := make([]HashWeight, len(a.HashWeights), len(a.HashWeights)+1)
	copy(weights, a.HashWeights)
	for i := range weights {
		if weights[i].Hash == hash {
			weights[i].Weight += weight
			found = true
			break
		}
	}
	if !found {
		weights = append(weights, HashWeight{Hash: hash, Weight: weight})
	}
	a.HashWeights = weights
	a.LastUpdated = now
	return a
}

// TotalStatusWeight sums the status weights.
func (a AggregatedConsensusData) TotalStatusWeight() uint64 {
	var total uint64
	for _, w := range a.StatusWeights {
		total += w
	}
	return total
}

// ComputeConsensus returns the status with the highest weight and the hash
// with the highest weight. Status ties go to the lowest enum value, hash ties
// to the earliest entry. With no hash votes the hash is empty.
func (a AggregatedConsensusData) ComputeConsensus() (TxidStatus, string) {
	best := 0
	for i := 1; i < TxidStatusCount; i++ {
		if a.StatusWeights[i] > a.StatusWeights[best] {
			best = i
		}
	}

	var (
		hash       string
		hashWeight uint64
	)
	for i, hw := range a.HashWeights {
		if i == 0 || hw.Weight > hashWeight {
			hash, hashWeight = hw.Hash, hw.Weight
		}
	}
	return TxidStatus(best), hash
}

// ScoredReport records how finalization treated one report.
type ScoredReport struct {
	Contributor string `json:"contributor"`
	Accurate    bool   `json:"accurate"`
	// Applied is false when the contributor was missing or banned and no
	// score update happened.
	Applied bool `json:"applied"`
}

// ConsensusResult is the outcome of finalizing a txid.
type ConsensusResult struct {
	Txid          string                  `json:"txid"`
	Status        TxidStatus              `json:"status"`
	HashPrefix    string                  `json:"hash_prefix"`
	StatusWeights [TxidStatusCount]uint64 `json:"status_weights"`
	FinalizedAt   uint64                  `json:"finalized_at"`
	Reports       []ScoredReport          `json:"reports"`
}

// AccurateCount returns how many reports matched the verdict.
func (r ConsensusResult) AccurateCount() int {
	n := 0
	for _, s := range r.Reports {
		if s.Accurate {
			n++
		}
	}
	return n
}

// SkippedCount returns how many reports produced no score update.
func (r ConsensusResult) SkippedCount() int {
	n := 0
	for _, s := range r.Reports {
		if !s.Applied {
			n++
		}
	}
	return n
}

// CleanupStats counts what post-consensus cleanup removed.
type CleanupStats struct {
	ReportsRemoved          int      `json:"reports_removed"`
	CommonReportsRemoved    int      `json:"common_reports_removed"`
	AggregatesRemoved       int      `json:"aggregates_removed"`
	SubmissionCountsRemoved int      `json:"submission_counts_removed"`
	EvictedContributors     []string `json:"evicted_contributors"`
}

// SubmitResult is returned for an accepted report. Consensus is set when the
// report triggered finalization.
type SubmitResult struct {
	Txid      string           `json:"txid"`
	Count     uint32           `json:"count"`
	Weight    uint64           `json:"weight"`
	Consensus *ConsensusResult `json:"consensus,omitempty"`
	Cleanup   *CleanupStats    `json:"cleanup,omitempty"`
}

// Finalized reports whether the submission triggered finalization.
func (r SubmitResult) Finalized() bool {
	return r.Consensus != nil
}
