package types

import (
	"cosmossdk.io/collections"
)

var (
	// ParamsKey saves the current module params.
	ParamsKey = collections.NewPrefix(0)

	// ParamsName is the name of the params collection.
	ParamsName = "params"

	// ContributorsKey is the key for registered contributors, keyed by address.
	ContributorsKey = collections.NewPrefix(1)

	// ContributorsName is the name of the contributors collection.
	ContributorsName = "contributors"

	// CommonReportsKey is the key for deduplicated (txid, ticket type) report data, keyed by id.
	CommonReportsKey = collections.NewPrefix(2)

	// CommonReportsName is the name of the common reports collection.
	CommonReportsName = "common_reports"

	// CommonReportIndexKey maps (txid, ticket type) to a common report id.
	CommonReportIndexKey = collections.NewPrefix(3)

	// CommonReportIndexName is the name of the common report index.
	CommonReportIndexName = "common_report_index"

	// CommonReportSeqKey is the sequence allocating common report ids.
	CommonReportSeqKey = collections.NewPrefix(4)

	// CommonReportSeqName is the name of the common report sequence.
	CommonReportSeqName = "common_report_seq"

	// ReportsKey is the key for in-flight reports, keyed by (txid, contributor).
	ReportsKey = collections.NewPrefix(5)

	// ReportsName is the name of the reports collection.
	ReportsName = "reports"

	// SubmissionCountsKey is the key for per-txid submission counters.
	SubmissionCountsKey = collections.NewPrefix(6)

	// SubmissionCountsName is the name of the submission counts collection.
	SubmissionCountsName = "submission_counts"

	// AggregatedDataKey is the key for per-txid weighted vote tallies.
	AggregatedDataKey = collections.NewPrefix(7)

	// AggregatedDataName is the name of the aggregated consensus data collection.
	AggregatedDataName = "aggregated_consensus_data"

	// PendingPaymentsKey is the key for monitoring fee payments, keyed by txid.
	PendingPaymentsKey = collections.NewPrefix(8)

	// PendingPaymentsName is the name of the pending payments collection.
	PendingPaymentsName = "pending_payments"

	// MonitoredTxidsKey is the key for the set of txids added for monitoring.
	MonitoredTxidsKey = collections.NewPrefix(9)

	// MonitoredTxidsName is the name of the monitored txid set.
	MonitoredTxidsName = "monitored_txids"

	// PermanentlyBannedKey is the key for the set of evicted contributor addresses.
	PermanentlyBannedKey = collections.NewPrefix(10)

	// PermanentlyBannedName is the name of the permanently banned set.
	PermanentlyBannedName = "permanently_banned"

	// BridgeContractKey stores the address allowed to add txids for monitoring.
	BridgeContractKey = collections.NewPrefix(11)

	// BridgeContractName is the name of the bridge contract item.
	BridgeContractName = "bridge_contract"

	// RewardPoolKey stores the reward pool balance in lamports.
	RewardPoolKey = collections.NewPrefix(12)

	// RewardPoolName is the name of the reward pool item.
	RewardPoolName = "reward_pool"

	// FeeReceivingKey stores the fee receiving balance in lamports.
	FeeReceivingKey = collections.NewPrefix(13)

	// FeeReceivingName is the name of the fee receiving item.
	FeeReceivingName = "fee_receiving"
)

const (
	ModuleName = "oracle"

	StoreKey = ModuleName
)
