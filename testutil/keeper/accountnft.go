package keeper

import (
	"testing"

	storetypes "cosmossdk.io/store/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/mars-protocol/rover/testutil/store"
	"github.com/mars-protocol/rover/x/accountnft/keeper"
	"github.com/mars-protocol/rover/x/accountnft/types"
)

// AccountNFTKeeperWithStore mounts the registry store on an existing multistore.
func AccountNFTKeeperWithStore(
	t testing.TB,
	db dbm.DB,
	stateStore storetypes.CommitMultiStore,
) keeper.Keeper {
	return keeper.NewKeeper(store.MountKVStore(db, stateStore, types.StoreKey))
}

func AccountNFTKeeper(t testing.TB) (keeper.Keeper, sdk.Context) {
	db, stateStore := store.NewMultiStore(t)

	k := AccountNFTKeeperWithStore(t, db, stateStore)
	require.NoError(t, stateStore.LoadLatestVersion())

	return k, store.NewContext(stateStore)
}
