package keeper

import (
	"context"

	"github.com/mars-protocol/rover/x/creditmanager/types"
)

// ensureOwner rejects any caller other than the current owner.
func ensureOwner(caller, owner string) error {
	if caller != owner {
		return types.ErrUnauthorized.Wrapf("invalid owner; expected %s, got %s", owner, caller)
	}
	return nil
}

// checkOwner loads the stored owner and checks caller against it. It returns
// the config read so callers derive their update from the same snapshot.
func (k Keeper) checkOwner(ctx context.Context, caller string) (types.Config, error) {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return types.Config{}, err
	}
	if err := ensureOwner(caller, cfg.Owner); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}
