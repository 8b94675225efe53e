package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	"github.com/pastelnetwork/pastel-oracle-node/x/oracle/types"
)

// SubmitReport records a contributor's report for txid and, when it completes
// the quorum, finalizes the txid and runs cleanup in the same call. Nothing
// is written unless every check passes.
func (k Keeper) SubmitReport(
	ctx context.Context,
	txid string,
	contributor string,
	status types.TxidStatus,
	ticketType types.PastelTicketType,
	hashPrefix string,
) (types.SubmitResult, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return types.SubmitResult{}, err
	}

	now := k.Now()
	if err := k.validateReport(ctx, params, now, txid, contributor, status, ticketType, hashPrefix); err != nil {
		return types.SubmitResult{}, err
	}

	ref, err := k.findOrAddCommonReport(ctx, txid, ticketType)
	if err != nil {
		return types.SubmitResult{}, err
	}

	report := types.TempStatusReport{
		CommonDataRef: ref,
		Contributor:   contributor,
		Status:        status,
		HashPrefix:    hashPrefix,
		Timestamp:     now,
	}
	if err := k.Reports.Set(ctx, collections.Join(txid, contributor), report); err != nil {
		return types.SubmitResult{}, err
	}

	count, err := k.incrementSubmissionCount(ctx, txid, now)
	if err != nil {
		return types.SubmitResult{}, err
	}

	weight, err := k.Aggregate(ctx, txid, contributor, status, hashPrefix, now)
	if err != nil {
		return types.SubmitResult{}, err
	}

	result := types.SubmitResult{Txid: txid, Count: count, Weight: weight}

	ready, err := k.ShouldCalculateConsensus(ctx, txid)
	if err != nil || !ready {
		return result, err
	}

	consensus, err := k.CalculateConsensus(ctx, txid, now)
	if err != nil {
		return types.SubmitResult{}, err
	}
	cleanup, err := k.PostConsensusTasks(ctx, txid, now)
	if err != nil {
		return types.SubmitResult{}, err
	}

	result.Consensus = &consensus
	result.Cleanup = &cleanup
	return result, nil
}

func (k Keeper) validateReport(
	ctx context.Context,
	params types.Params,
	now uint64,
	txid, contributor string,
	status types.TxidStatus,
	ticketType types.PastelTicketType,
	hashPrefix string,
) error {
	if err := types.ValidateTxid(txid, params.MaxTxidLength); err != nil {
		return err
	}
	if !status.IsValid() {
		return errorsmod.Wrapf(types.ErrInvalidTxidStatus, "%d", uint8(status))
	}
	if !ticketType.IsValid() {
		return errorsmod.Wrapf(types.ErrInvalidPastelTicketType, "%d", uint8(ticketType))
	}
	if err := types.ValidateHashPrefix(hashPrefix); err != nil {
		return err
	}

	c, found, err := k.GetContributor(ctx, contributor)
	if err != nil {
		return err
	}
	if !found {
		return errorsmod.Wrapf(types.ErrContributorNotRegistered, "address %s", contributor)
	}
	if c.IsBanned(now) {
		return errorsmod.Wrapf(types.ErrContributorBanned, "address %s banned until %d", contributor, c.BanExpiry)
	}

	sc, found, err := k.GetSubmissionCount(ctx, txid)
	if err != nil {
		return err
	}
	if found && sc.Count >= params.MinNumberOfOracles {
		return errorsmod.Wrapf(types.ErrEnoughReportsSubmittedForTxid, "txid %s has %d reports", txid, sc.Count)
	}

	dup, err := k.Reports.Has(ctx, collections.Join(txid, contributor))
	if err != nil {
		return err
	}
	if dup {
		return errorsmod.Wrapf(types.ErrDuplicateReport, "txid %s contributor %s", txid, contributor)
	}

	return nil
}

// findOrAddCommonReport returns the id of the common data for (txid, ticket
// type), allocating one on first use.
func (k Keeper) findOrAddCommonReport(ctx context.Context, txid string, ticketType types.PastelTicketType) (uint64, error) {
	key := collections.Join(txid, ticketType.String())

	id, err := k.CommonReportIndex.Get(ctx, key)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, collections.ErrNotFound) {
		return 0, err
	}

	id, err = k.CommonReportSeq.Next(ctx)
	if err != nil {
		return 0, err
	}
	if err := k.CommonReports.Set(ctx, id, types.CommonReportData{Txid: txid, TicketType: ticketType}); err != nil {
		return 0, err
	}
	if err := k.CommonReportIndex.Set(ctx, key, id); err != nil {
		return 0, err
	}
	return id, nil
}

// GetReportsForTxid returns the in-flight reports of txid ordered by contributor.
func (k Keeper) GetReportsForTxid(ctx context.Context, txid string) ([]types.TempStatusReport, error) {
	iter, err := k.Reports.Iterate(ctx, collections.NewPrefixedPairRange[string, string](txid))
	if err != nil {
		return nil, err
	}
	return iter.Values()
}

// GetSubmissionCount returns the submission counter of txid.
func (k Keeper) GetSubmissionCount(ctx context.Context, txid string) (types.SubmissionCount, bool, error) {
	sc, err := k.SubmissionCounts.Get(ctx, txid)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.SubmissionCount{}, false, nil
		}
		return types.SubmissionCount{}, false, err
	}
	return sc, true, nil
}

func (k Keeper) incrementSubmissionCount(ctx context.Context, txid string, now uint64) (uint32, error) {
	sc, found, err := k.GetSubmissionCount(ctx, txid)
	if err != nil {
		return 0, err
	}
	if !found {
		sc = types.SubmissionCount{Txid: txid}
	}

	sc.Count++
	sc.LastUpdated = now
	if err := k.SubmissionCounts.Set(ctx, txid, sc); err != nil {
		return 0, err
	}
	return sc.Count, nil
}
