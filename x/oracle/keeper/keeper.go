package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	storetypes "cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"

	"github.com/pastelnetwork/pastel-oracle-node/x/oracle/types"
)

type Keeper struct {
	logger log.Logger

	Schema collections.Schema

	// state management
	Params         collections.Item[types.Params]
	BridgeContract collections.Item[string]
	RewardPool     collections.Item[uint64]
	FeeReceiving   collections.Item[uint64]

	// Contributors
	Contributors      collections.Map[string, types.Contributor] // address → contributor
	PermanentlyBanned collections.KeySet[string]                 // evicted addresses, blocked from re-registering

	// In-flight reports
	CommonReports     collections.Map[uint64, types.CommonReportData]
	CommonReportIndex collections.Map[collections.Pair[string, string], uint64] // (txid, ticket type) → common report id
	CommonReportSeq   collections.Sequence
	Reports           collections.Map[collections.Pair[string, string], types.TempStatusReport] // (txid, contributor) → report
	SubmissionCounts  collections.Map[string, types.SubmissionCount]
	AggregatedData    collections.Map[string, types.AggregatedConsensusData]

	// Monitoring fees
	PendingPayments collections.Map[string, types.PendingPayment]
	MonitoredTxids  collections.KeySet[string]

	feeGate types.FeeGate
	admin   types.AdminAuthority
	clock   types.Clock
}

// NewKeeper creates a new Keeper instance
func NewKeeper(
	storeService storetypes.KVStoreService,
	logger log.Logger,
	feeGate types.FeeGate,
	admin types.AdminAuthority,
	clock types.Clock,
) Keeper {
	logger = logger.With(log.ModuleKey, "x/"+types.ModuleName)

	sb := collections.NewSchemaBuilder(storeService)

	pairKey := collections.PairKeyCodec(collections.StringKey, collections.StringKey)

	k := Keeper{
		logger: logger,

		Params:         collections.NewItem(sb, types.ParamsKey, types.ParamsName, types.JSONValue[types.Params]()),
		BridgeContract: collections.NewItem(sb, types.BridgeContractKey, types.BridgeContractName, collections.StringValue),
		RewardPool:     collections.NewItem(sb, types.RewardPoolKey, types.RewardPoolName, collections.Uint64Value),
		FeeReceiving:   collections.NewItem(sb, types.FeeReceivingKey, types.FeeReceivingName, collections.Uint64Value),

		Contributors: collections.NewMap(
			sb, types.ContributorsKey, types.ContributorsName,
			collections.StringKey, types.JSONValue[types.Contributor](),
		),
		PermanentlyBanned: collections.NewKeySet(
			sb, types.PermanentlyBannedKey, types.PermanentlyBannedName,
			collections.StringKey,
		),

		CommonReports: collections.NewMap(
			sb, types.CommonReportsKey, types.CommonReportsName,
			collections.Uint64Key, types.JSONValue[types.CommonReportData](),
		),
		CommonReportIndex: collections.NewMap(
			sb, types.CommonReportIndexKey, types.CommonReportIndexName,
			pairKey, collections.Uint64Value,
		),
		CommonReportSeq: collections.NewSequence(sb, types.CommonReportSeqKey, types.CommonReportSeqName),
		Reports: collections.NewMap(
			sb, types.ReportsKey, types.ReportsName,
			pairKey, types.JSONValue[types.TempStatusReport](),
		),
		SubmissionCounts: collections.NewMap(
			sb, types.SubmissionCountsKey, types.SubmissionCountsName,
			collections.StringKey, types.JSONValue[types.SubmissionCount](),
		),
		AggregatedData: collections.NewMap(
			sb, types.AggregatedDataKey, types.AggregatedDataName,
			collections.StringKey, types.JSONValue[types.AggregatedConsensusData](),
		),

		PendingPayments: collections.NewMap(
			sb, types.PendingPaymentsKey, types.PendingPaymentsName,
			collections.StringKey, types.JSONValue[types.PendingPayment](),
		),
		MonitoredTxids: collections.NewKeySet(
			sb, types.MonitoredTxidsKey, types.MonitoredTxidsName,
			collections.StringKey,
		),

		feeGate: feeGate,
		admin:   admin,
		clock:   clock,
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

func (k Keeper) Logger() log.Logger {
	return k.logger
}

// Now returns the clock time as Unix seconds.
func (k Keeper) Now() uint64 {
	ts := k.clock.Now().Unix()
	if ts < 0 {
		return 0
	}
	return uint64(ts)
}

// GetParams returns the stored params.
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	params, err := k.Params.Get(ctx)
	if err != nil {
		return types.Params{}, errorsmod.Wrap(err, "failed to get params")
	}
	return params, nil
}

// UpdateParams validates and stores new params.
func (k Keeper) UpdateParams(ctx context.Context, params types.Params) error {
	if err := params.ValidateBasic(); err != nil {
		return err
	}
	return k.Params.Set(ctx, params)
}

// IsInitialized reports whether genesis has been imported.
func (k Keeper) IsInitialized(ctx context.Context) (bool, error) {
	return k.Params.Has(ctx)
}

// getOrZero reads a uint64 item, treating a missing value as zero.
func getOrZero(ctx context.Context, item collections.Item[uint64]) (uint64, error) {
	v, err := item.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return v, nil
}
