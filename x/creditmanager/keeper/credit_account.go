package keeper

import (
	"context"

	"github.com/mars-protocol/rover/x/creditmanager/types"
)

// CreateCreditAccount mints a credit account token held by user on the
// configured registry. The registry only lets its owner mint, so this fails
// until the registry has been handed to the manager.
func (k Keeper) CreateCreditAccount(ctx context.Context, user string) (string, error) {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return "", err
	}
	if !cfg.HasAccountNft() {
		return "", types.ErrAccountRegistryNotSet
	}
	return k.registryK.Mint(ctx, cfg.AccountNft, k.address, user)
}
