package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mars-protocol/rover/x/accountnft/keeper"
	"github.com/mars-protocol/rover/x/accountnft/types"
)

func TestQueries(t *testing.T) {
	t.Parallel()
	k, ctx := setupKeeper(t)
	ms := keeper.NewMsgServerImpl(k)
	registry := instantiate(t, k, ctx)

	minted, err := ms.Mint(ctx, &types.MsgMint{Sender: minter, Registry: registry, User: "user_1"})
	require.NoError(t, err)

	reg, err := k.Registry(ctx, &types.QueryRegistryRequest{Registry: registry})
	require.NoError(t, err)
	require.Equal(t, uint64(2), reg.Registry.NextTokenID)

	owner, err := k.OwnerOf(ctx, &types.QueryOwnerOfRequest{Registry: registry, TokenId: minted.TokenId})
	require.NoError(t, err)
	require.Equal(t, "user_1", owner.Owner)

	tokens, err := k.Tokens(ctx, &types.QueryTokensRequest{Registry: registry, Owner: "user_1"})
	require.NoError(t, err)
	require.Equal(t, []string{"1"}, tokens.Tokens)

	ownership, err := k.Ownership(ctx, &types.QueryOwnershipRequest{Registry: registry})
	require.NoError(t, err)
	require.Equal(t, minter, ownership.Ownership.Owner)

	_, err = k.Registry(ctx, &types.QueryRegistryRequest{Registry: "unknown"})
	require.Equal(t, codes.NotFound, status.Code(err))
	_, err = k.OwnerOf(ctx, &types.QueryOwnerOfRequest{Registry: registry, TokenId: "9"})
	require.Equal(t, codes.NotFound, status.Code(err))
	_, err = k.Tokens(ctx, nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}
