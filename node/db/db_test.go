package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pastelnetwork/pastel-oracle-node/node/store"
)

func TestDB_OpenModes(t *testing.T) {
	t.Run("in-memory alias", func(t *testing.T) {
		db, err := OpenInMemoryDB(true)
		require.NoError(t, err)
		require.NotNil(t, db)

		runSampleInsertSelectTest(t, db)
		assert.NoError(t, db.Close())
	})

	t.Run("file-based DB", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "data")
		dbName := "ledger.db"

		db, err := OpenFileDB(dir, dbName, true)
		require.NoError(t, err)
		require.NotNil(t, db)

		assert.FileExists(t, filepath.Join(dir, dbName))

		runSampleInsertSelectTest(t, db)
		assert.NoError(t, db.Close())

		// Data survives a reopen.
		db, err = OpenFileDB(dir, dbName, false)
		require.NoError(t, err)
		var count int64
		require.NoError(t, db.Client().Model(&store.RewardPayout{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
		assert.NoError(t, db.Close())
	})

	t.Run("invalid path fails", func(t *testing.T) {
		db, err := OpenFileDB("/dev/null/invalid", "ledger.db", true)
		require.ErrorContains(t, err, "failed to prepare database path")
		require.Nil(t, db)
	})
}

func runSampleInsertSelectTest(t *testing.T, db *DB) {
	t.Helper()

	entry := store.RewardPayout{Address: "alice", Amount: 100_000}
	require.NoError(t, db.Client().Create(&entry).Error)

	var result store.RewardPayout
	require.NoError(t, db.Client().First(&result, entry.ID).Error)
	assert.Equal(t, entry.Address, result.Address)
	assert.Equal(t, entry.Amount, result.Amount)
}
