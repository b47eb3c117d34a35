package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	testkeeper "github.com/mars-protocol/rover/testutil/keeper"
	"github.com/mars-protocol/rover/x/creditmanager/keeper"
	"github.com/mars-protocol/rover/x/creditmanager/types"
)

func TestUpdateAllowLists(t *testing.T) {
	t.Parallel()
	gs := types.NewGenesis(originalOwner, initialRedBank, []string{"vault_a"}, []string{"uosmo"})
	k, _, ctx := testkeeper.CreditManagerKeeper(t, gs)
	ms := keeper.NewMsgServerImpl(k)

	_, err := ms.UpdateAllowLists(ctx, &types.MsgUpdateAllowLists{
		Sender:       originalOwner,
		AddVaults:    []string{"vault_b"},
		RemoveVaults: []string{"vault_a"},
		AddAssets:    []string{"uatom", "uusd"},
	})
	require.NoError(t, err)

	vaults, err := k.AllowedVaults(ctx, &types.QueryAllowedVaultsRequest{})
	require.NoError(t, err)
	require.Equal(t, []string{"vault_b"}, vaults.Vaults)

	assets, err := k.AllowedAssets(ctx, &types.QueryAllowedAssetsRequest{})
	require.NoError(t, err)
	require.Equal(t, []string{"uatom", "uosmo", "uusd"}, assets.Assets)

	allowed, err := k.IsVaultAllowed(ctx, "vault_a")
	require.NoError(t, err)
	require.False(t, allowed)
	allowed, err = k.IsAssetAllowed(ctx, "uatom")
	require.NoError(t, err)
	require.True(t, allowed)
}

func TestUpdateAllowListsRequiresOwner(t *testing.T) {
	t.Parallel()
	gs := types.NewGenesis(originalOwner, initialRedBank, []string{"vault_a"}, nil)
	k, _, ctx := testkeeper.CreditManagerKeeper(t, gs)
	ms := keeper.NewMsgServerImpl(k)

	_, err := ms.UpdateAllowLists(ctx, &types.MsgUpdateAllowLists{
		Sender:       "not_the_owner",
		RemoveVaults: []string{"vault_a"},
	})
	require.ErrorIs(t, err, types.ErrUnauthorized)

	allowed, err := k.IsVaultAllowed(ctx, "vault_a")
	require.NoError(t, err)
	require.True(t, allowed)
}

func TestUpdateAllowListsRejectsEmptyEntries(t *testing.T) {
	t.Parallel()
	k, _, ctx := testkeeper.CreditManagerKeeper(t, defaultGenesis())
	ms := keeper.NewMsgServerImpl(k)

	_, err := ms.UpdateAllowLists(ctx, &types.MsgUpdateAllowLists{
		Sender:    originalOwner,
		AddAssets: []string{"uosmo", ""},
	})
	require.ErrorIs(t, err, types.ErrInvalidServiceReference)

	allowed, err := k.IsAssetAllowed(ctx, "uosmo")
	require.NoError(t, err)
	require.False(t, allowed)
}
