package keeper_test

import (
	"context"
	"errors"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/mars-protocol/rover/testutil/keeper"
	"github.com/mars-protocol/rover/testutil/store"
	nftkeeper "github.com/mars-protocol/rover/x/accountnft/keeper"
	nfttypes "github.com/mars-protocol/rover/x/accountnft/types"
	"github.com/mars-protocol/rover/x/creditmanager/keeper"
	"github.com/mars-protocol/rover/x/creditmanager/types"
)

// setupNftAndProposeOwner instantiates a registry controlled by the manager's
// owner and proposes the manager as its new owner.
func setupNftAndProposeOwner(t *testing.T, ctx sdk.Context, nftK nftkeeper.Keeper) string {
	t.Helper()
	nftMs := nftkeeper.NewMsgServerImpl(nftK)

	res, err := nftMs.Instantiate(ctx, &nfttypes.MsgInstantiate{
		Sender: originalOwner,
		Name:   "Rover Credit Account",
		Symbol: "RCA",
		Minter: originalOwner,
	})
	require.NoError(t, err)

	_, err = nftMs.ProposeNewOwner(ctx, &nfttypes.MsgProposeNewOwner{
		Sender:   originalOwner,
		Registry: res.Address,
		NewOwner: testkeeper.ManagerAddress,
	})
	require.NoError(t, err)

	return res.Address
}

func TestAccountRegistryHandOff(t *testing.T) {
	t.Parallel()
	k, nftK, ctx := testkeeper.CreditManagerKeeper(t, defaultGenesis())
	ms := keeper.NewMsgServerImpl(k)
	require.Equal(t, testkeeper.ManagerAddress, k.Address())

	registry := setupNftAndProposeOwner(t, ctx, nftK)

	ownership, err := nftK.GetOwnership(ctx, registry)
	require.NoError(t, err)
	require.Equal(t, originalOwner, ownership.Owner)
	require.Equal(t, k.Address(), ownership.PendingOwner)

	_, err = ms.AcceptAccountRegistryOwnership(ctx, &types.MsgAcceptAccountRegistryOwnership{
		Sender:   originalOwner,
		Registry: registry,
	})
	require.NoError(t, err)

	ownership, err = nftK.GetOwnership(ctx, registry)
	require.NoError(t, err)
	require.Equal(t, k.Address(), ownership.Owner)
	require.Empty(t, ownership.PendingOwner)

	_, err = ms.UpdateConfig(ctx, &types.MsgUpdateConfig{
		Sender:        originalOwner,
		ConfigUpdates: types.ConfigUpdates{AccountNft: ptr(registry)},
	})
	require.NoError(t, err)

	res, err := ms.CreateCreditAccount(ctx, &types.MsgCreateCreditAccount{Sender: "user_1"})
	require.NoError(t, err)
	require.Equal(t, "1", res.TokenId)

	holder, err := nftK.GetTokenHolder(ctx, registry, res.TokenId)
	require.NoError(t, err)
	require.Equal(t, "user_1", holder)
}

func TestAcceptAccountRegistryOwnershipRequiresOwner(t *testing.T) {
	t.Parallel()
	k, nftK, ctx := testkeeper.CreditManagerKeeper(t, defaultGenesis())
	ms := keeper.NewMsgServerImpl(k)

	registry := setupNftAndProposeOwner(t, ctx, nftK)

	_, err := ms.AcceptAccountRegistryOwnership(ctx, &types.MsgAcceptAccountRegistryOwnership{
		Sender:   "not_the_owner",
		Registry: registry,
	})
	require.ErrorIs(t, err, types.ErrUnauthorized)

	ownership, err := nftK.GetOwnership(ctx, registry)
	require.NoError(t, err)
	require.Equal(t, originalOwner, ownership.Owner)
	require.Equal(t, testkeeper.ManagerAddress, ownership.PendingOwner)
}

func TestAcceptAccountRegistryOwnershipWithoutProposal(t *testing.T) {
	t.Parallel()
	k, nftK, ctx := testkeeper.CreditManagerKeeper(t, defaultGenesis())
	ms := keeper.NewMsgServerImpl(k)

	registry, err := nftK.Instantiate(ctx, "Rover Credit Account", "RCA", originalOwner)
	require.NoError(t, err)

	_, err = ms.AcceptAccountRegistryOwnership(ctx, &types.MsgAcceptAccountRegistryOwnership{
		Sender:   originalOwner,
		Registry: registry,
	})
	require.ErrorIs(t, err, nfttypes.ErrInvalidAcceptance)
}

func TestUpdateConfigDoesNotCheckHandOff(t *testing.T) {
	t.Parallel()
	k, nftK, ctx := testkeeper.CreditManagerKeeper(t, defaultGenesis())
	ms := keeper.NewMsgServerImpl(k)

	// proposed but never accepted
	registry := setupNftAndProposeOwner(t, ctx, nftK)

	_, err := ms.UpdateConfig(ctx, &types.MsgUpdateConfig{
		Sender:        originalOwner,
		ConfigUpdates: types.ConfigUpdates{AccountNft: ptr(registry)},
	})
	require.NoError(t, err)

	cfg, err := k.GetConfig(ctx)
	require.NoError(t, err)
	require.Equal(t, registry, cfg.AccountNft)

	// the registry still refuses the manager as minter
	_, err = ms.CreateCreditAccount(ctx, &types.MsgCreateCreditAccount{Sender: "user_1"})
	require.ErrorIs(t, err, nfttypes.ErrUnauthorized)
}

func TestCreateCreditAccountWithoutRegistry(t *testing.T) {
	t.Parallel()
	k, _, ctx := testkeeper.CreditManagerKeeper(t, defaultGenesis())
	ms := keeper.NewMsgServerImpl(k)

	_, err := ms.CreateCreditAccount(ctx, &types.MsgCreateCreditAccount{Sender: "user_1"})
	require.ErrorIs(t, err, types.ErrAccountRegistryNotSet)
}

func TestCreditManagerMessagesRejectEmptySender(t *testing.T) {
	t.Parallel()
	k, _, ctx := testkeeper.CreditManagerKeeper(t, defaultGenesis())
	ms := keeper.NewMsgServerImpl(k)

	_, err := ms.UpdateConfig(ctx, &types.MsgUpdateConfig{ConfigUpdates: types.ConfigUpdates{Owner: ptr("O2")}})
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = ms.AcceptAccountRegistryOwnership(ctx, &types.MsgAcceptAccountRegistryOwnership{Registry: "registry"})
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = ms.AcceptAccountRegistryOwnership(ctx, &types.MsgAcceptAccountRegistryOwnership{Sender: originalOwner})
	require.ErrorIs(t, err, types.ErrInvalidServiceReference)

	_, err = ms.CreateCreditAccount(ctx, &types.MsgCreateCreditAccount{})
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

// failingRegistry mints on the wrapped registry and then reports a failure.
type failingRegistry struct {
	nftkeeper.Keeper
}

func (r failingRegistry) Mint(ctx context.Context, registry, caller, user string) (string, error) {
	if _, err := r.Keeper.Mint(ctx, registry, caller, user); err != nil {
		return "", err
	}
	return "", errors.New("registry unavailable")
}

func TestCreateCreditAccountRollsBackOnFailure(t *testing.T) {
	t.Parallel()
	db, stateStore := store.NewMultiStore(t)
	nftK := testkeeper.AccountNFTKeeperWithStore(t, db, stateStore)
	k := testkeeper.CreditManagerKeeperWithStore(t, db, stateStore, failingRegistry{nftK})
	require.NoError(t, stateStore.LoadLatestVersion())
	ctx := store.NewContext(stateStore)
	require.NoError(t, k.InitGenesis(ctx, *defaultGenesis()))
	ms := keeper.NewMsgServerImpl(k)

	registry := setupNftAndProposeOwner(t, ctx, nftK)
	_, err := ms.AcceptAccountRegistryOwnership(ctx, &types.MsgAcceptAccountRegistryOwnership{
		Sender:   originalOwner,
		Registry: registry,
	})
	require.NoError(t, err)
	_, err = ms.UpdateConfig(ctx, &types.MsgUpdateConfig{
		Sender:        originalOwner,
		ConfigUpdates: types.ConfigUpdates{AccountNft: ptr(registry)},
	})
	require.NoError(t, err)

	_, err = ms.CreateCreditAccount(ctx, &types.MsgCreateCreditAccount{Sender: "user_1"})
	require.ErrorContains(t, err, "registry unavailable")

	tokens, err := nftK.TokensOf(ctx, registry, "user_1")
	require.NoError(t, err)
	require.Empty(t, tokens)
	reg, err := nftK.GetRegistry(ctx, registry)
	require.NoError(t, err)
	require.Equal(t, uint64(1), reg.NextTokenID)
}
