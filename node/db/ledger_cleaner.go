package db

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pastelnetwork/pastel-oracle-node/node/config"
)

// LedgerCleaner periodically prunes old ledger records
type LedgerCleaner struct {
	database        *DB
	ticker          *time.Ticker
	logger          zerolog.Logger
	stopCh          chan struct{}
	cleanupInterval time.Duration
	retentionPeriod time.Duration
}

// NewLedgerCleaner creates a new ledger cleaner
func NewLedgerCleaner(database *DB, cfg *config.Config, logger zerolog.Logger) *LedgerCleaner {
	return &LedgerCleaner{
		database:        database,
		cleanupInterval: time.Duration(cfg.LedgerCleanupIntervalSeconds) * time.Second,
		retentionPeriod: time.Duration(cfg.LedgerRetentionPeriodSeconds) * time.Second,
		logger:          logger.With().Str("component", "ledger_cleaner").Logger(),
		stopCh:          make(chan struct{}),
	}
}

// Start runs an initial cleanup and then one per interval until ctx is done
// or Stop is called. It does not block.
func (lc *LedgerCleaner) Start(ctx context.Context) error {
	lc.logger.Info().
		Dur("cleanup_interval", lc.cleanupInterval).
		Dur("retention_period", lc.retentionPeriod).
		Msg("starting ledger cleaner")

	if err := lc.performCleanup(); err != nil {
		// Don't fail startup on cleanup error, just log it
		lc.logger.Error().Err(err).Msg("failed to perform initial cleanup")
	}

	lc.ticker = time.NewTicker(lc.cleanupInterval)

	go func() {
		defer lc.ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				lc.logger.Info().Msg("context cancelled, stopping ledger cleaner")
				return
			case <-lc.stopCh:
				lc.logger.Info().Msg("stop signal received, stopping ledger cleaner")
				return
			case <-lc.ticker.C:
				if err := lc.performCleanup(); err != nil {
					lc.logger.Error().Err(err).Msg("failed to perform scheduled cleanup")
				}
			}
		}
	}()

	return nil
}

// Stop gracefully stops the ledger cleaner
func (lc *LedgerCleaner) Stop() {
	lc.logger.Info().Msg("stopping ledger cleaner")
	close(lc.stopCh)
	if lc.ticker != nil {
		lc.ticker.Stop()
	}
}

func (lc *LedgerCleaner) performCleanup() error {
	start := time.Now()

	deleted, err := lc.database.DeleteOldRecords(lc.retentionPeriod)
	if err != nil {
		return err
	}

	if deleted == 0 {
		lc.logger.Debug().
			Dur("duration", time.Since(start)).
			Msg("ledger cleanup completed - no records to delete")
		return nil
	}

	lc.logger.Info().
		Int64("deleted_count", deleted).
		Dur("duration", time.Since(start)).
		Msg("ledger cleanup completed")

	lc.checkpointWAL()
	return nil
}

// checkpointWAL truncates the WAL so it does not grow after large deletions
func (lc *LedgerCleaner) checkpointWAL() {
	if err := lc.database.Client().Exec("PRAGMA wal_checkpoint(TRUNCATE)").Error; err != nil {
		lc.logger.Warn().Err(err).Msg("failed to checkpoint WAL")
		return
	}
	lc.logger.Debug().Msg("WAL checkpoint completed")
}
