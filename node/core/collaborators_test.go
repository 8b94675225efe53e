package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pastelnetwork/pastel-oracle-node/node/config"
	"github.com/pastelnetwork/pastel-oracle-node/node/db"
)

func TestLedgerFeeGate(t *testing.T) {
	ledger, err := db.OpenInMemoryDB(true)
	require.NoError(t, err)
	defer ledger.Close()

	gate := NewLedgerFeeGate(ledger)
	ctx := context.Background()

	paid, err := gate.IsRegistrationFeePaid(ctx, "alice", 100)
	require.NoError(t, err)
	assert.False(t, paid)

	require.NoError(t, ledger.RecordFeeDeposit("alice", 60, "a"))
	require.NoError(t, ledger.RecordFeeDeposit("bob", 60, "b"))

	paid, err = gate.IsRegistrationFeePaid(ctx, "alice", 100)
	require.NoError(t, err)
	assert.False(t, paid)

	require.NoError(t, ledger.RecordFeeDeposit("alice", 40, "c"))

	paid, err = gate.IsRegistrationFeePaid(ctx, "alice", 100)
	require.NoError(t, err)
	assert.True(t, paid)
}

func TestConfigAdminAuthority(t *testing.T) {
	cfg := &config.Config{AdminAddresses: []string{"root", "ops"}}
	admin := NewConfigAdminAuthority(cfg)
	ctx := context.Background()

	assert.True(t, admin.IsAdmin(ctx, "ops"))
	assert.False(t, admin.IsAdmin(ctx, "alice"))
	assert.False(t, admin.IsAdmin(ctx, ""))
}
