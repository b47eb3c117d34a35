package keeper

import (
	"fmt"

	"cosmossdk.io/collections"
	corestoretypes "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	bbn "github.com/mars-protocol/rover/types"
	"github.com/mars-protocol/rover/x/creditmanager/types"
)

type Keeper struct {
	storeService corestoretypes.KVStoreService

	registryK types.AccountRegistryKeeper

	// address is the identity the manager acts as when calling into
	// collaborating services
	address string

	Schema collections.Schema
	// config stores the owner and the collaborating service references
	config collections.Item[types.Config]
	// allowedVaults and allowedAssets are plain set memberships
	allowedVaults collections.KeySet[string]
	allowedAssets collections.KeySet[string]
}

func NewKeeper(
	storeService corestoretypes.KVStoreService,
	registryK types.AccountRegistryKeeper,
	address string,
) Keeper {
	if err := bbn.ValidateServiceReference(address); err != nil {
		panic(fmt.Sprintf("invalid manager address %q: %v", address, err))
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,
		registryK:    registryK,
		address:      address,

		config: collections.NewItem(
			sb,
			types.ConfigKey,
			"config",
			bbn.NewJSONValueCodec[types.Config](),
		),
		allowedVaults: collections.NewKeySet(
			sb,
			types.AllowedVaultsKey,
			"allowed_vaults",
			collections.StringKey,
		),
		allowedAssets: collections.NewKeySet(
			sb,
			types.AllowedAssetsKey,
			"allowed_assets",
			collections.StringKey,
		),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// Address returns the identity the manager acts as.
func (k Keeper) Address() string {
	return k.address
}

func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}
