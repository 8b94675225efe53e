package kvstore

import (
	corestore "cosmossdk.io/core/store"
	"cosmossdk.io/store/dbadapter"
	storetypes "cosmossdk.io/store/types"
	dbm "github.com/cosmos/cosmos-db"
)

// batchStore reads from the committed database and writes into a batch.
type batchStore struct {
	dbadapter.Store
	batch dbm.Batch
}

var _ storetypes.KVStore = batchStore{}

func (s batchStore) Set(key, value []byte) {
	storetypes.AssertValidKey(key)
	storetypes.AssertValidValue(value)
	if err := s.batch.Set(key, value); err != nil {
		panic(err)
	}
}

func (s batchStore) Delete(key []byte) {
	storetypes.AssertValidKey(key)
	if err := s.batch.Delete(key); err != nil {
		panic(err)
	}
}

// coreKVStore exposes a store/types KVStore through the core store interface.
type coreKVStore struct {
	kv storetypes.KVStore
}

var _ corestore.KVStore = coreKVStore{}

func (s coreKVStore) Get(key []byte) ([]byte, error) {
	return s.kv.Get(key), nil
}

func (s coreKVStore) Has(key []byte) (bool, error) {
	return s.kv.Has(key), nil
}

func (s coreKVStore) Set(key, value []byte) error {
	s.kv.Set(key, value)
	return nil
}

func (s coreKVStore) Delete(key []byte) error {
	s.kv.Delete(key)
	return nil
}

func (s coreKVStore) Iterator(start, end []byte) (corestore.Iterator, error) {
	return s.kv.Iterator(start, end), nil
}

func (s coreKVStore) ReverseIterator(start, end []byte) (corestore.Iterator, error) {
	return s.kv.ReverseIterator(start, end), nil
}
