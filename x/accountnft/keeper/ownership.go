package keeper

import (
	"context"

	"github.com/mars-protocol/rover/x/accountnft/types"
)

// ProposeNewOwner records newOwner as the pending owner of the registry. Only
// the current owner may propose. Proposals are strict: while one is pending
// for a different party, a new one is rejected with ErrProposalPending and the
// owner has to ClearProposal first. Re-proposing the pending party is a no-op.
func (k Keeper) ProposeNewOwner(ctx context.Context, registryAddr, caller, newOwner string) error {
	registry, err := k.GetRegistry(ctx, registryAddr)
	if err != nil {
		return err
	}
	if caller != registry.Owner {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", registry.Owner, caller)
	}
	if registry.HasPendingOwner() {
		if registry.PendingOwner == newOwner {
			return nil
		}
		return types.ErrProposalPending.Wrapf("pending owner is %s", registry.PendingOwner)
	}

	registry.PendingOwner = newOwner
	return k.setRegistry(ctx, registry)
}

// ClearProposal withdraws the pending proposal, if any.
func (k Keeper) ClearProposal(ctx context.Context, registryAddr, caller string) error {
	registry, err := k.GetRegistry(ctx, registryAddr)
	if err != nil {
		return err
	}
	if caller != registry.Owner {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", registry.Owner, caller)
	}
	if !registry.HasPendingOwner() {
		return nil
	}

	registry.PendingOwner = ""
	return k.setRegistry(ctx, registry)
}

// AcceptOwnership makes caller the owner if it is the pending owner.
func (k Keeper) AcceptOwnership(ctx context.Context, registryAddr, caller string) error {
	registry, err := k.GetRegistry(ctx, registryAddr)
	if err != nil {
		return err
	}
	if !registry.HasPendingOwner() {
		return types.ErrInvalidAcceptance.Wrap("no pending proposal")
	}
	if registry.PendingOwner != caller {
		return types.ErrInvalidAcceptance.Wrapf("proposal is addressed to %s, not %s", registry.PendingOwner, caller)
	}

	registry.Owner = caller
	registry.PendingOwner = ""
	return k.setRegistry(ctx, registry)
}

// GetOwnership returns the current and pending owner of the registry.
func (k Keeper) GetOwnership(ctx context.Context, registryAddr string) (types.Ownership, error) {
	registry, err := k.GetRegistry(ctx, registryAddr)
	if err != nil {
		return types.Ownership{}, err
	}
	return registry.Ownership(), nil
}
