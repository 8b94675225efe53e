// Package core wires the oracle keeper to its state store, history ledger,
// metrics and HTTP API.
package core

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/pastelnetwork/pastel-oracle-node/node/api"
	"github.com/pastelnetwork/pastel-oracle-node/node/config"
	"github.com/pastelnetwork/pastel-oracle-node/node/constant"
	"github.com/pastelnetwork/pastel-oracle-node/node/db"
	nodeerrors "github.com/pastelnetwork/pastel-oracle-node/node/errors"
	"github.com/pastelnetwork/pastel-oracle-node/node/kvstore"
	"github.com/pastelnetwork/pastel-oracle-node/node/logger"
	"github.com/pastelnetwork/pastel-oracle-node/node/metrics"
	"github.com/pastelnetwork/pastel-oracle-node/node/store"
	"github.com/pastelnetwork/pastel-oracle-node/x/oracle/keeper"
	"github.com/pastelnetwork/pastel-oracle-node/x/oracle/types"
)

var _ api.OracleNode = (*Node)(nil)

// Node runs one oracle instance.
type Node struct {
	cfg config.Config
	log zerolog.Logger

	state   *kvstore.Store
	ledger  *db.DB
	keeper  keeper.Keeper
	msgs    types.MsgServer
	queries keeper.Querier

	metrics *metrics.Metrics
	cleaner *db.LedgerCleaner
	server  *api.Server
	retry   *nodeerrors.RetryConfig
}

// Option customizes a Node before its keeper is built.
type Option func(*options)

type options struct {
	clock types.Clock
}

// WithClock replaces the wall clock the keeper reads.
func WithClock(clock types.Clock) Option {
	return func(o *options) { o.clock = clock }
}

// New opens the state database and the ledger under cfg.NodeHome and
// initializes the oracle state on first start.
func New(cfg config.Config, log zerolog.Logger, opts ...Option) (*Node, error) {
	o := options{clock: SystemClock{}}
	for _, opt := range opts {
		opt(&o)
	}

	dataDir := filepath.Join(cfg.NodeHome, constant.DataSubdir)

	state, err := kvstore.Open(dataDir, string(cfg.StateBackend))
	if err != nil {
		return nil, err
	}

	ledger, err := db.OpenFileDB(dataDir, constant.LedgerFileName, true)
	if err != nil {
		_ = state.Close()
		return nil, errors.Wrap(err, "failed to open ledger")
	}

	n := &Node{
		cfg:     cfg,
		log:     log.With().Str("component", "node").Logger(),
		state:   state,
		ledger:  ledger,
		metrics: metrics.New(),
		retry:   ledgerRetryConfig(cfg),
	}

	n.keeper = keeper.NewKeeper(
		state,
		logger.ModuleLogger(log),
		NewLedgerFeeGate(ledger),
		NewConfigAdminAuthority(&n.cfg),
		o.clock,
	)
	n.msgs = keeper.NewMsgServerImpl(n.keeper)
	n.queries = keeper.NewQuerier(n.keeper)
	n.cleaner = db.NewLedgerCleaner(ledger, &n.cfg, log)
	n.server = api.NewServer(n, log, cfg.APIPort, n.metrics.Handler())

	if err := n.bootstrap(context.Background()); err != nil {
		_ = n.Stop()
		return nil, err
	}
	return n, nil
}

func ledgerRetryConfig(cfg config.Config) *nodeerrors.RetryConfig {
	rc := nodeerrors.DefaultRetryConfig()
	if cfg.MaxRetries > 0 {
		rc.MaxAttempts = cfg.MaxRetries
	}
	if cfg.RetryBackoffSeconds > 0 {
		rc.InitialDelay = time.Duration(cfg.RetryBackoffSeconds) * time.Second
	}
	return rc
}

func (n *Node) bootstrap(ctx context.Context) error {
	initialized, err := n.keeper.IsInitialized(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to read oracle state")
	}
	if initialized {
		return nil
	}

	gs := types.DefaultGenesis()
	gs.Params = n.cfg.GenesisParams()
	gs.BridgeContract = n.cfg.BridgeContract

	err = n.state.RunAtomic(ctx, func(ctx context.Context) error {
		return n.keeper.InitGenesis(ctx, gs)
	})
	if err != nil {
		return errors.Wrap(err, "failed to initialize oracle state")
	}

	n.log.Info().
		Uint32("min_number_of_oracles", gs.Params.MinNumberOfOracles).
		Str("bridge_contract", gs.BridgeContract).
		Msg("initialized oracle state")
	return nil
}

// Start serves the API and runs the ledger cleaner until ctx is done.
func (n *Node) Start(ctx context.Context) error {
	n.log.Info().Msg("🚀 Starting oracle node...")

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return n.cleaner.Start(gctx)
	})
	g.Go(func() error {
		if err := n.server.Start(); err != nil {
			return errors.Wrap(err, "failed to start api server")
		}
		<-gctx.Done()
		return n.server.Stop()
	})

	n.log.Info().Int("api_port", n.cfg.APIPort).Msg("✅ Initialization complete. Entering main loop...")

	if err := g.Wait(); err != nil {
		return err
	}
	n.log.Info().Msg("🛑 Shutting down oracle node...")
	return nil
}

// Stop releases the API server and both databases.
func (n *Node) Stop() error {
	eg := nodeerrors.NewErrorGroup()
	if n.server != nil {
		eg.Add(n.server.Stop())
	}
	if n.ledger != nil {
		eg.Add(n.ledger.Close())
	}
	if n.state != nil {
		eg.Add(n.state.Close())
	}
	return eg.ErrorOrNil()
}

// Metrics exposes the node's collectors.
func (n *Node) Metrics() *metrics.Metrics {
	return n.metrics
}

// ExportGenesis returns the persistent oracle state.
func (n *Node) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	return n.keeper.ExportGenesis(ctx)
}

// atomically runs fn inside a state transaction and times it.
func atomically[T any](ctx context.Context, n *Node, operation string, fn func(ctx context.Context) (T, error)) (T, error) {
	defer n.metrics.ObserveOperation(operation, time.Now())

	var out T
	err := n.state.RunAtomic(ctx, func(ctx context.Context) error {
		var err error
		out, err = fn(ctx)
		return err
	})
	return out, err
}

// recordLedger writes to the ledger after a committed state change. State is
// the source of truth, so a failed write is logged rather than returned.
func (n *Node) recordLedger(ctx context.Context, name string, fn func() error) {
	op := &nodeerrors.RetryOperation{
		Name:   name,
		Fn:     fn,
		Config: n.retry,
		OnRetry: func(attempt int, err error) {
			n.log.Warn().Err(err).Str("operation", name).Int("attempt", attempt).Msg("retrying ledger write")
		},
	}
	if err := op.Execute(ctx); err != nil {
		n.log.Error().Err(err).Str("operation", name).Msg("ledger write failed")
	}
}

func (n *Node) RegisterContributor(ctx context.Context, address string) (types.Contributor, error) {
	resp, err := atomically(ctx, n, "register_contributor", func(ctx context.Context) (*types.MsgRegisterContributorResponse, error) {
		return n.msgs.RegisterContributor(ctx, &types.MsgRegisterContributor{Contributor: address})
	})
	if err != nil {
		return types.Contributor{}, err
	}

	n.metrics.ContributorsRegistered.Inc()
	return resp.Contributor, nil
}

// SubmitReport records a report. When it completes the quorum the verdict is
// also written to the ledger.
func (n *Node) SubmitReport(ctx context.Context, msg types.MsgSubmitReport) (types.SubmitResult, error) {
	resp, err := atomically(ctx, n, "submit_report", func(ctx context.Context) (*types.MsgSubmitReportResponse, error) {
		return n.msgs.SubmitReport(ctx, &msg)
	})
	if err != nil {
		reason := nodeerrors.Classify(err).Category
		n.metrics.ReportsRejected.WithLabelValues(strings.ToLower(string(reason))).Inc()
		return types.SubmitResult{}, err
	}

	result := resp.Result
	n.metrics.ReportsAccepted.Inc()

	if result.Consensus != nil {
		consensus := *result.Consensus
		n.metrics.ConsensusFinalized.WithLabelValues(consensus.Status.String()).Inc()
		n.recordLedger(ctx, "record_consensus", func() error {
			return n.ledger.RecordConsensus(consensus)
		})
		n.log.Info().
			Str("txid", consensus.Txid).
			Str("status", consensus.Status.String()).
			Str("hash_prefix", consensus.HashPrefix).
			Int("accurate", consensus.AccurateCount()).
			Int("reports", len(consensus.Reports)).
			Msg("consensus finalized")
	}
	if result.Cleanup != nil && len(result.Cleanup.EvictedContributors) > 0 {
		n.metrics.ContributorsEvicted.Add(float64(len(result.Cleanup.EvictedContributors)))
		n.log.Warn().
			Strs("addresses", result.Cleanup.EvictedContributors).
			Msg("evicted permanently banned contributors")
	}

	return result, nil
}

func (n *Node) AddTxidForMonitoring(ctx context.Context, caller, txid string) (types.PendingPayment, error) {
	resp, err := atomically(ctx, n, "add_txid_for_monitoring", func(ctx context.Context) (*types.MsgAddTxidForMonitoringResponse, error) {
		return n.msgs.AddTxidForMonitoring(ctx, &types.MsgAddTxidForMonitoring{Caller: caller, Txid: txid})
	})
	if err != nil {
		return types.PendingPayment{}, err
	}
	return resp.Payment, nil
}

func (n *Node) ProcessPayment(ctx context.Context, txid string, amount uint64) (types.PendingPayment, error) {
	resp, err := atomically(ctx, n, "process_payment", func(ctx context.Context) (*types.MsgProcessPaymentResponse, error) {
		return n.msgs.ProcessPayment(ctx, &types.MsgProcessPayment{Txid: txid, Amount: amount})
	})
	if err != nil {
		return types.PendingPayment{}, err
	}
	return resp.Payment, nil
}

// RecordRegistrationFee stores a paid registration fee so that address can
// register. Each reference is accepted once.
func (n *Node) RecordRegistrationFee(ctx context.Context, address string, amount uint64, reference string) error {
	defer n.metrics.ObserveOperation("record_registration_fee", time.Now())

	if strings.TrimSpace(address) == "" {
		return nodeerrors.NewValidationError("address is required")
	}
	if amount == 0 {
		return nodeerrors.NewValidationError("amount must be positive")
	}
	if strings.TrimSpace(reference) == "" {
		return nodeerrors.NewValidationError("reference is required")
	}

	err := nodeerrors.RetryWithConfig(ctx, func() error {
		return n.ledger.RecordFeeDeposit(address, amount, reference)
	}, n.retry)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nodeerrors.New(nodeerrors.CategoryConflict, "fee reference already recorded", err).
				WithContext("reference", reference)
		}
		return err
	}
	return nil
}

func (n *Node) RequestReward(ctx context.Context, address string) (uint64, error) {
	resp, err := atomically(ctx, n, "request_reward", func(ctx context.Context) (*types.MsgRequestRewardResponse, error) {
		return n.msgs.RequestReward(ctx, &types.MsgRequestReward{Contributor: address})
	})
	if err != nil {
		return 0, err
	}

	n.metrics.RewardsPaidLamports.Add(float64(resp.Amount))
	n.recordLedger(ctx, "record_reward_payout", func() error {
		return n.ledger.RecordRewardPayout(address, resp.Amount)
	})
	return resp.Amount, nil
}

func (n *Node) SetBridgeContract(ctx context.Context, admin, bridge string) error {
	_, err := atomically(ctx, n, "set_bridge_contract", func(ctx context.Context) (*types.MsgSetBridgeContractResponse, error) {
		return n.msgs.SetBridgeContract(ctx, &types.MsgSetBridgeContract{Admin: admin, BridgeContract: bridge})
	})
	return err
}

func (n *Node) WithdrawFunds(ctx context.Context, admin string, rewardPoolAmount, feeReceivingAmount uint64) (types.Balances, error) {
	resp, err := atomically(ctx, n, "withdraw_funds", func(ctx context.Context) (*types.MsgWithdrawFundsResponse, error) {
		return n.msgs.WithdrawFunds(ctx, &types.MsgWithdrawFunds{
			Admin:              admin,
			RewardPoolAmount:   rewardPoolAmount,
			FeeReceivingAmount: feeReceivingAmount,
		})
	})
	if err != nil {
		return types.Balances{}, err
	}
	return resp.Balances, nil
}

func (n *Node) UpdateParams(ctx context.Context, admin string, params types.Params) error {
	_, err := atomically(ctx, n, "update_params", func(ctx context.Context) (*types.MsgUpdateParamsResponse, error) {
		return n.msgs.UpdateParams(ctx, &types.MsgUpdateParams{Admin: admin, Params: params})
	})
	return err
}

func (n *Node) Params(ctx context.Context) (types.Params, error) {
	resp, err := n.queries.Params(ctx, &types.QueryParamsRequest{})
	if err != nil {
		return types.Params{}, err
	}
	return resp.Params, nil
}

func (n *Node) Contributor(ctx context.Context, address string) (types.Contributor, error) {
	resp, err := n.queries.Contributor(ctx, &types.QueryContributorRequest{Address: address})
	if err != nil {
		return types.Contributor{}, err
	}
	return resp.Contributor, nil
}

func (n *Node) Contributors(ctx context.Context, eligibleOnly bool) ([]types.Contributor, error) {
	resp, err := n.queries.Contributors(ctx, &types.QueryContributorsRequest{EligibleOnly: eligibleOnly})
	if err != nil {
		return nil, err
	}
	return resp.Contributors, nil
}

func (n *Node) Reports(ctx context.Context, txid string) ([]types.ReportView, error) {
	resp, err := n.queries.Reports(ctx, &types.QueryReportsRequest{Txid: txid})
	if err != nil {
		return nil, err
	}
	return resp.Reports, nil
}

// Consensus returns the submission count and running tally of txid. Both
// are empty once the txid has been finalized and cleaned up.
func (n *Node) Consensus(ctx context.Context, txid string) (api.ConsensusState, error) {
	count, err := n.queries.SubmissionCount(ctx, &types.QuerySubmissionCountRequest{Txid: txid})
	if err != nil {
		return api.ConsensusState{}, err
	}

	state := api.ConsensusState{Txid: txid, SubmissionCount: count.SubmissionCount}

	agg, found, err := n.keeper.GetAggregatedData(ctx, txid)
	if err != nil {
		return api.ConsensusState{}, err
	}
	if found {
		state.Aggregated = &agg
	}
	return state, nil
}

func (n *Node) ConsensusHistory(_ context.Context, txid string) ([]store.ConsensusRecord, error) {
	if strings.TrimSpace(txid) == "" {
		return nil, nodeerrors.NewValidationError("txid is required")
	}
	records, err := n.ledger.ConsensusHistory(txid)
	if err != nil {
		return nil, nodeerrors.NewDatabaseError("failed to load consensus history", err)
	}
	return records, nil
}

func (n *Node) PendingPayment(ctx context.Context, txid string) (types.PendingPayment, error) {
	resp, err := n.queries.PendingPayment(ctx, &types.QueryPendingPaymentRequest{Txid: txid})
	if err != nil {
		return types.PendingPayment{}, err
	}
	return resp.Payment, nil
}

func (n *Node) Balances(ctx context.Context) (types.Balances, error) {
	resp, err := n.queries.Balances(ctx, &types.QueryBalancesRequest{})
	if err != nil {
		return types.Balances{}, err
	}
	return resp.Balances, nil
}

// RewardPayouts returns the payouts recorded for address.
func (n *Node) RewardPayouts(address string) ([]store.RewardPayout, error) {
	return n.ledger.RewardPayouts(address)
}
