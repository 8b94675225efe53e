package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	"github.com/pastelnetwork/pastel-oracle-node/x/oracle/types"
)

var _ types.QueryServer = Querier{}

type Querier struct {
	Keeper
}

func NewQuerier(keeper Keeper) Querier {
	return Querier{Keeper: keeper}
}

func (k Querier) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	p, err := k.Keeper.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	return &types.QueryParamsResponse{Params: p}, nil
}

// Contributor returns a contributor with its derived flags evaluated at the
// current time, so expired bans and inactivity show without a write.
func (k Querier) Contributor(ctx context.Context, req *types.QueryContributorRequest) (*types.QueryContributorResponse, error) {
	if req == nil || req.Address == "" {
		return nil, errorsmod.Wrap(types.ErrInvalidAddress, "address is required")
	}

	params, err := k.Keeper.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	c, found, err := k.Keeper.GetContributor(ctx, req.Address)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errorsmod.Wrapf(types.ErrContributorNotRegistered, "address %s", req.Address)
	}

	return &types.QueryContributorResponse{Contributor: c.RefreshStatuses(k.Now(), params)}, nil
}

func (k Querier) Contributors(ctx context.Context, req *types.QueryContributorsRequest) (*types.QueryContributorsResponse, error) {
	params, err := k.Keeper.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	all, err := k.Keeper.GetAllContributors(ctx)
	if err != nil {
		return nil, err
	}

	now := k.Now()
	contributors := make([]types.Contributor, 0, len(all))
	for _, c := range all {
		c = c.RefreshStatuses(now, params)
		if req != nil && req.EligibleOnly && !c.IsEligibleForRewards {
			continue
		}
		contributors = append(contributors, c)
	}

	return &types.QueryContributorsResponse{Contributors: contributors}, nil
}

// SubmissionCount returns a zero count for txids that have none.
func (k Querier) SubmissionCount(ctx context.Context, req *types.QuerySubmissionCountRequest) (*types.QuerySubmissionCountResponse, error) {
	if req == nil || req.Txid == "" {
		return nil, errorsmod.Wrap(types.ErrInvalidTxid, "txid is required")
	}

	sc, found, err := k.Keeper.GetSubmissionCount(ctx, req.Txid)
	if err != nil {
		return nil, err
	}
	if !found {
		sc = types.SubmissionCount{Txid: req.Txid}
	}

	return &types.QuerySubmissionCountResponse{SubmissionCount: sc}, nil
}

func (k Querier) AggregatedData(ctx context.Context, req *types.QueryAggregatedDataRequest) (*types.QueryAggregatedDataResponse, error) {
	if req == nil || req.Txid == "" {
		return nil, errorsmod.Wrap(types.ErrInvalidTxid, "txid is required")
	}

	agg, found, err := k.Keeper.GetAggregatedData(ctx, req.Txid)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errorsmod.Wrapf(types.ErrConsensusDataNotFound, "txid %s", req.Txid)
	}

	return &types.QueryAggregatedDataResponse{Data: agg}, nil
}

func (k Querier) Reports(ctx context.Context, req *types.QueryReportsRequest) (*types.QueryReportsResponse, error) {
	if req == nil || req.Txid == "" {
		return nil, errorsmod.Wrap(types.ErrInvalidTxid, "txid is required")
	}

	reports, err := k.Keeper.GetReportsForTxid(ctx, req.Txid)
	if err != nil {
		return nil, err
	}

	views := make([]types.ReportView, 0, len(reports))
	for _, r := range reports {
		common, err := k.Keeper.CommonReports.Get(ctx, r.CommonDataRef)
		if err != nil {
			return nil, errorsmod.Wrapf(err, "common data %d of txid %s", r.CommonDataRef, req.Txid)
		}
		views = append(views, types.ReportView{
			Txid:        common.Txid,
			TicketType:  common.TicketType,
			Contributor: r.Contributor,
			Status:      r.Status,
			HashPrefix:  r.HashPrefix,
			Timestamp:   r.Timestamp,
		})
	}

	return &types.QueryReportsResponse{Reports: views}, nil
}

func (k Querier) PendingPayment(ctx context.Context, req *types.QueryPendingPaymentRequest) (*types.QueryPendingPaymentResponse, error) {
	if req == nil || req.Txid == "" {
		return nil, errorsmod.Wrap(types.ErrInvalidTxid, "txid is required")
	}

	payment, found, err := k.Keeper.GetPendingPayment(ctx, req.Txid)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errorsmod.Wrapf(types.ErrPaymentNotFound, "txid %s", req.Txid)
	}

	return &types.QueryPendingPaymentResponse{Payment: payment}, nil
}

func (k Querier) Balances(ctx context.Context, req *types.QueryBalancesRequest) (*types.QueryBalancesResponse, error) {
	balances, err := k.Keeper.GetBalances(ctx)
	if err != nil {
		return nil, err
	}

	return &types.QueryBalancesResponse{Balances: balances}, nil
}
