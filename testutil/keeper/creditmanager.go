package keeper

import (
	"testing"

	storetypes "cosmossdk.io/store/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"github.com/mars-protocol/rover/testutil/store"
	nftkeeper "github.com/mars-protocol/rover/x/accountnft/keeper"
	"github.com/mars-protocol/rover/x/creditmanager/keeper"
	"github.com/mars-protocol/rover/x/creditmanager/types"
)

// ManagerAddress is the identity the test credit manager acts as.
var ManagerAddress = authtypes.NewModuleAddress(types.ModuleName).String()

// CreditManagerKeeperWithStore mounts the manager store on an existing multistore.
func CreditManagerKeeperWithStore(
	t testing.TB,
	db dbm.DB,
	stateStore storetypes.CommitMultiStore,
	registryK types.AccountRegistryKeeper,
) keeper.Keeper {
	kvStore := store.MountKVStore(db, stateStore, types.StoreKey)
	return keeper.NewKeeper(kvStore, registryK, ManagerAddress)
}

// RoverKeepers wires a credit manager to an account registry keeper over a
// single in-memory multistore. The manager config is not initialized.
func RoverKeepers(t testing.TB) (keeper.Keeper, nftkeeper.Keeper, sdk.Context) {
	db, stateStore := store.NewMultiStore(t)

	nftK := AccountNFTKeeperWithStore(t, db, stateStore)
	cmK := CreditManagerKeeperWithStore(t, db, stateStore, nftK)
	require.NoError(t, stateStore.LoadLatestVersion())

	return cmK, nftK, store.NewContext(stateStore)
}

// CreditManagerKeeper returns a manager instantiated with the given genesis.
func CreditManagerKeeper(t testing.TB, gs *types.GenesisState) (keeper.Keeper, nftkeeper.Keeper, sdk.Context) {
	cmK, nftK, ctx := RoverKeepers(t)
	require.NoError(t, cmK.InitGenesis(ctx, *gs))
	return cmK, nftK, ctx
}
