package keeper

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"

	"github.com/mars-protocol/rover/x/creditmanager/types"
)

// InitConfig stores the config the manager is constructed with.
func (k Keeper) InitConfig(ctx context.Context, cfg types.Config) error {
	if err := cfg.Validate(); err != nil {
		return types.ErrInvalidServiceReference.Wrap(err.Error())
	}
	return k.config.Set(ctx, cfg)
}

// GetConfig returns the current config.
func (k Keeper) GetConfig(ctx context.Context) (types.Config, error) {
	cfg, err := k.config.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Config{}, fmt.Errorf("credit manager config is not initialized: %w", err)
		}
		return types.Config{}, err
	}
	return cfg, nil
}

// UpdateConfig applies updates on behalf of caller. Nothing is written unless
// the caller is the owner at the time of the call and every supplied value is
// well-formed. A new owner only governs subsequent calls.
func (k Keeper) UpdateConfig(ctx context.Context, caller string, updates types.ConfigUpdates) (types.Config, error) {
	cfg, err := k.checkOwner(ctx, caller)
	if err != nil {
		return types.Config{}, err
	}
	if err := updates.Validate(); err != nil {
		return types.Config{}, err
	}
	if updates.IsEmpty() {
		return cfg, nil
	}

	updated := updates.Apply(cfg)
	if err := k.config.Set(ctx, updated); err != nil {
		return types.Config{}, err
	}
	return updated, nil
}
