package keeper

import (
	"context"
	"errors"
	"strconv"

	"cosmossdk.io/collections"

	"github.com/mars-protocol/rover/x/accountnft/types"
)

// Mint issues the next token of the registry to user. Only the registry owner
// mints.
func (k Keeper) Mint(ctx context.Context, registryAddr, caller, user string) (string, error) {
	registry, err := k.GetRegistry(ctx, registryAddr)
	if err != nil {
		return "", err
	}
	if caller != registry.Owner {
		return "", types.ErrUnauthorized.Wrapf("expected %s, got %s", registry.Owner, caller)
	}

	tokenID := registry.NextTokenID
	if err := k.tokens.Set(ctx, collections.Join(registryAddr, tokenID), user); err != nil {
		return "", err
	}
	registry.NextTokenID++
	if err := k.setRegistry(ctx, registry); err != nil {
		return "", err
	}
	return strconv.FormatUint(tokenID, 10), nil
}

// GetTokenHolder returns the holder of a token.
func (k Keeper) GetTokenHolder(ctx context.Context, registryAddr, tokenID string) (string, error) {
	id, err := strconv.ParseUint(tokenID, 10, 64)
	if err != nil {
		return "", types.ErrTokenNotFound.Wrapf("malformed token id %q", tokenID)
	}
	holder, err := k.tokens.Get(ctx, collections.Join(registryAddr, id))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return "", types.ErrTokenNotFound.Wrapf("token %s of %s", tokenID, registryAddr)
		}
		return "", err
	}
	return holder, nil
}

// TokensOf lists the ids held by holder in mint order.
func (k Keeper) TokensOf(ctx context.Context, registryAddr, holder string) ([]string, error) {
	tokens := []string{}
	rng := collections.NewPrefixedPairRange[string, uint64](registryAddr)
	err := k.tokens.Walk(ctx, rng, func(key collections.Pair[string, uint64], value string) (bool, error) {
		if value == holder {
			tokens = append(tokens, strconv.FormatUint(key.K2(), 10))
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return tokens, nil
}
