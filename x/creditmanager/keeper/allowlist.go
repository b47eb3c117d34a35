package keeper

import (
	"context"

	"cosmossdk.io/collections"

	"github.com/mars-protocol/rover/x/creditmanager/types"
)

func (k Keeper) IsVaultAllowed(ctx context.Context, vault string) (bool, error) {
	return k.allowedVaults.Has(ctx, vault)
}

func (k Keeper) IsAssetAllowed(ctx context.Context, denom string) (bool, error) {
	return k.allowedAssets.Has(ctx, denom)
}

func (k Keeper) GetAllowedVaults(ctx context.Context) ([]string, error) {
	return collectKeys(ctx, k.allowedVaults)
}

func (k Keeper) GetAllowedAssets(ctx context.Context) ([]string, error) {
	return collectKeys(ctx, k.allowedAssets)
}

// UpdateAllowLists applies additions then removals on behalf of caller.
func (k Keeper) UpdateAllowLists(ctx context.Context, msg *types.MsgUpdateAllowLists) error {
	if _, err := k.checkOwner(ctx, msg.Sender); err != nil {
		return err
	}
	if err := setAll(ctx, k.allowedVaults, msg.AddVaults); err != nil {
		return err
	}
	if err := removeAll(ctx, k.allowedVaults, msg.RemoveVaults); err != nil {
		return err
	}
	if err := setAll(ctx, k.allowedAssets, msg.AddAssets); err != nil {
		return err
	}
	return removeAll(ctx, k.allowedAssets, msg.RemoveAssets)
}

func setAll(ctx context.Context, set collections.KeySet[string], entries []string) error {
	for _, e := range entries {
		if err := set.Set(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func removeAll(ctx context.Context, set collections.KeySet[string], entries []string) error {
	for _, e := range entries {
		if err := set.Remove(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func collectKeys(ctx context.Context, set collections.KeySet[string]) ([]string, error) {
	entries := []string{}
	err := set.Walk(ctx, nil, func(key string) (bool, error) {
		entries = append(entries, key)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
