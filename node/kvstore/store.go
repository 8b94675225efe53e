// Package kvstore provides the transactional key-value store backing oracle
// state. Every state-mutating operation runs inside RunAtomic: writes are
// staged in a cache overlay and committed to the database in a single synced
// batch, or dropped when the operation fails.
package kvstore

import (
	"context"
	"fmt"
	"os"
	"sync"

	corestore "cosmossdk.io/core/store"
	"cosmossdk.io/store/cachekv"
	"cosmossdk.io/store/dbadapter"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/pkg/errors"

	"github.com/pastelnetwork/pastel-oracle-node/node/constant"
)

const (
	// dirPermissions sets directory permissions to 750 (rwxr-x---).
	dirPermissions = 0o750
)

type txKey struct{}

// Store implements corestore.KVStoreService over a cosmos-db database.
type Store struct {
	db dbm.DB
	mu sync.Mutex
}

var _ corestore.KVStoreService = (*Store)(nil)

// Open opens (or creates) the state database in dir with the given backend
// ("goleveldb", "pebbledb" or "memdb").
func Open(dir, backend string) (*Store, error) {
	if backend == string(dbm.MemDBBackend) {
		return NewInMemory(), nil
	}

	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return nil, errors.Wrapf(err, "failed to create state directory: %s", dir)
	}

	db, err := dbm.NewDB(constant.StateDBName, dbm.BackendType(backend), dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s state database", backend)
	}
	return &Store{db: db}, nil
}

// NewInMemory returns a store over an ephemeral in-memory database.
func NewInMemory() *Store {
	return &Store{db: dbm.NewMemDB()}
}

// OpenKVStore returns the transaction overlay when ctx is inside RunAtomic,
// otherwise the committed database.
func (s *Store) OpenKVStore(ctx context.Context) corestore.KVStore {
	if tx, ok := ctx.Value(txKey{}).(corestore.KVStore); ok {
		return tx
	}
	return s.db
}

// RunAtomic runs fn with a context whose store writes are committed only if
// fn returns nil. Calls are serialized; nested calls join the outer
// transaction.
func (s *Store) RunAtomic(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey{}).(corestore.KVStore); ok {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	batch := s.db.NewBatch()
	defer batch.Close()

	cache := cachekv.NewStore(batchStore{Store: dbadapter.Store{DB: s.db}, batch: batch})
	txCtx := context.WithValue(ctx, txKey{}, corestore.KVStore(coreKVStore{kv: cache}))

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("state transaction panicked: %v", r)
		}
	}()

	if err := fn(txCtx); err != nil {
		return err
	}

	cache.Write()
	if err := batch.WriteSync(); err != nil {
		return errors.Wrap(err, "failed to commit state batch")
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return errors.Wrap(err, "failed to close state database")
	}
	return nil
}
