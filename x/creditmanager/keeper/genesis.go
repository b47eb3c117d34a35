package keeper

import (
	"context"

	"github.com/mars-protocol/rover/x/creditmanager/types"
)

// InitGenesis initializes the keeper state from a provided initial genesis state.
func (k Keeper) InitGenesis(ctx context.Context, gs types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}
	if err := k.InitConfig(ctx, gs.Config); err != nil {
		return err
	}
	if err := setAll(ctx, k.allowedVaults, gs.AllowedVaults); err != nil {
		return err
	}
	return setAll(ctx, k.allowedAssets, gs.AllowedAssets)
}

// ExportGenesis returns the keeper state into a exported genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	vaults, err := k.GetAllowedVaults(ctx)
	if err != nil {
		return nil, err
	}
	assets, err := k.GetAllowedAssets(ctx)
	if err != nil {
		return nil, err
	}

	return &types.GenesisState{
		Config:        cfg,
		AllowedVaults: vaults,
		AllowedAssets: assets,
	}, nil
}
