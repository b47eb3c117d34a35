package store

import (
	"testing"

	"cosmossdk.io/core/header"
	corestore "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/store"
	storemetrics "cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// NewMultiStore returns an empty in-memory multistore. Callers mount their
// stores on it and then load the latest version.
func NewMultiStore(t testing.TB) (dbm.DB, storetypes.CommitMultiStore) {
	db := dbm.NewMemDB()
	return db, store.NewCommitMultiStore(db, log.NewTestLogger(t), storemetrics.NewNoOpMetrics())
}

// MountKVStore mounts a store named storeKey and returns its service.
func MountKVStore(db dbm.DB, stateStore storetypes.CommitMultiStore, storeKey string) corestore.KVStoreService {
	key := storetypes.NewKVStoreKey(storeKey)
	stateStore.MountStoreWithDB(key, storetypes.StoreTypeIAVL, db)
	return runtime.NewKVStoreService(key)
}

// NewContext wraps stateStore in a context with an empty block header.
func NewContext(stateStore storetypes.CommitMultiStore) sdk.Context {
	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())
	return ctx.WithHeaderInfo(header.Info{})
}
