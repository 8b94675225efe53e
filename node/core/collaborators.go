package core

import (
	"context"
	"time"

	"github.com/pastelnetwork/pastel-oracle-node/node/config"
	"github.com/pastelnetwork/pastel-oracle-node/node/db"
	"github.com/pastelnetwork/pastel-oracle-node/x/oracle/types"
)

var (
	_ types.Clock          = SystemClock{}
	_ types.FeeGate        = LedgerFeeGate{}
	_ types.AdminAuthority = ConfigAdminAuthority{}
)

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// LedgerFeeGate treats a registration fee as paid once the fee deposits
// recorded for the address add up to the required amount.
type LedgerFeeGate struct {
	ledger *db.DB
}

func NewLedgerFeeGate(ledger *db.DB) LedgerFeeGate {
	return LedgerFeeGate{ledger: ledger}
}

func (g LedgerFeeGate) IsRegistrationFeePaid(_ context.Context, address string, amount uint64) (bool, error) {
	total, err := g.ledger.RegistrationFeeTotal(address)
	if err != nil {
		return false, err
	}
	return total >= amount, nil
}

// ConfigAdminAuthority grants admin rights to the addresses listed in the
// node config.
type ConfigAdminAuthority struct {
	cfg *config.Config
}

func NewConfigAdminAuthority(cfg *config.Config) ConfigAdminAuthority {
	return ConfigAdminAuthority{cfg: cfg}
}

func (a ConfigAdminAuthority) IsAdmin(_ context.Context, caller string) bool {
	return a.cfg.IsAdmin(caller)
}
