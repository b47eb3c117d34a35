package keeper

import (
	"context"
)

// AcceptAccountRegistryOwnership completes the second step of the registry
// hand-off: the owner instructs the manager to accept, and the registry sees
// the manager's own address as the accepting party. The first step, proposing
// the manager as new owner, is issued directly to the registry by whoever
// controls it.
//
// The registry is not recorded in the config here. Pointing the config at it
// stays a separate UpdateConfig call.
func (k Keeper) AcceptAccountRegistryOwnership(ctx context.Context, caller, registry string) error {
	if _, err := k.checkOwner(ctx, caller); err != nil {
		return err
	}
	return k.registryK.AcceptOwnership(ctx, registry, k.address)
}
