package keeper

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	corestoretypes "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"

	bbn "github.com/mars-protocol/rover/types"
	"github.com/mars-protocol/rover/x/accountnft/types"
)

// Keeper hosts any number of account registry instances, each addressed by a
// derived module address.
type Keeper struct {
	storeService corestoretypes.KVStoreService

	Schema collections.Schema
	// registries maps (registry_addr) => Registry
	registries collections.Map[string, types.Registry]
	// tokens maps (registry_addr, token_id) => holder
	tokens collections.Map[collections.Pair[string, uint64], string]
	// registrySeq derives fresh registry addresses
	registrySeq collections.Sequence
}

func NewKeeper(storeService corestoretypes.KVStoreService) Keeper {
	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,

		registries: collections.NewMap(
			sb,
			types.RegistriesKey,
			"registries",
			collections.StringKey,
			bbn.NewJSONValueCodec[types.Registry](),
		),
		tokens: collections.NewMap(
			sb,
			types.TokensKey,
			"tokens",
			collections.PairKeyCodec(collections.StringKey, collections.Uint64Key),
			collections.StringValue,
		),
		registrySeq: collections.NewSequence(
			sb,
			types.RegistrySequenceKey,
			"registry_sequence",
		),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// Instantiate creates a registry whose owner is the given minter and returns
// its address.
func (k Keeper) Instantiate(ctx context.Context, name, symbol, minter string) (string, error) {
	seq, err := k.registrySeq.Next(ctx)
	if err != nil {
		return "", err
	}

	addr := sdk.AccAddress(address.Module(types.ModuleName, sdk.Uint64ToBigEndian(seq))).String()
	registry := types.Registry{
		Address:     addr,
		Name:        name,
		Symbol:      symbol,
		Owner:       minter,
		NextTokenID: 1,
	}
	if err := registry.Validate(); err != nil {
		return "", types.ErrInvalidRegistry.Wrap(err.Error())
	}
	if err := k.registries.Set(ctx, addr, registry); err != nil {
		return "", err
	}
	return addr, nil
}

// GetRegistry returns the registry stored at addr.
func (k Keeper) GetRegistry(ctx context.Context, addr string) (types.Registry, error) {
	registry, err := k.registries.Get(ctx, addr)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Registry{}, types.ErrRegistryNotFound.Wrapf("address %s", addr)
		}
		return types.Registry{}, err
	}
	return registry, nil
}

func (k Keeper) setRegistry(ctx context.Context, registry types.Registry) error {
	return k.registries.Set(ctx, registry.Address, registry)
}
