package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mars-protocol/rover/x/creditmanager/types"
)

var _ types.MsgServer = msgServer{}

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// UpdateConfig replaces the supplied config fields if the sender is the owner
func (ms msgServer) UpdateConfig(goCtx context.Context, req *types.MsgUpdateConfig) (*types.MsgUpdateConfigResponse, error) {
	if err := req.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	if _, err := ms.Keeper.UpdateConfig(ctx, req.Sender, req.ConfigUpdates); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(types.NewUpdateConfigEvent(req.Sender, req.ConfigUpdates))
	ms.Logger(ctx).Debug("config updated", "sender", req.Sender, "fields", req.UpdatedFields())

	return &types.MsgUpdateConfigResponse{}, nil
}

// UpdateAllowLists edits the vault and asset allow-lists
func (ms msgServer) UpdateAllowLists(goCtx context.Context, req *types.MsgUpdateAllowLists) (*types.MsgUpdateAllowListsResponse, error) {
	if err := req.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	cacheCtx, writeCache := ctx.CacheContext()
	if err := ms.Keeper.UpdateAllowLists(cacheCtx, req); err != nil {
		return nil, err
	}
	writeCache()

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeUpdateAllowLists,
		sdk.NewAttribute(types.AttributeKeySender, req.Sender),
	))

	return &types.MsgUpdateAllowListsResponse{}, nil
}

// AcceptAccountRegistryOwnership makes the manager accept control of a registry
func (ms msgServer) AcceptAccountRegistryOwnership(goCtx context.Context, req *types.MsgAcceptAccountRegistryOwnership) (*types.MsgAcceptAccountRegistryOwnershipResponse, error) {
	if err := req.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := ms.Keeper.AcceptAccountRegistryOwnership(ctx, req.Sender, req.Registry); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeAcceptRegistryOwner,
		sdk.NewAttribute(types.AttributeKeySender, req.Sender),
		sdk.NewAttribute(types.AttributeKeyRegistry, req.Registry),
	))
	ms.Logger(ctx).Info("accepted account registry ownership", "registry", req.Registry)

	return &types.MsgAcceptAccountRegistryOwnershipResponse{}, nil
}

// CreateCreditAccount mints a credit account for the sender
func (ms msgServer) CreateCreditAccount(goCtx context.Context, req *types.MsgCreateCreditAccount) (*types.MsgCreateCreditAccountResponse, error) {
	if err := req.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	cacheCtx, writeCache := ctx.CacheContext()
	tokenID, err := ms.Keeper.CreateCreditAccount(cacheCtx, req.Sender)
	if err != nil {
		return nil, err
	}
	writeCache()

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeCreateCreditAccount,
		sdk.NewAttribute(types.AttributeKeySender, req.Sender),
		sdk.NewAttribute(types.AttributeKeyTokenID, tokenID),
	))

	return &types.MsgCreateCreditAccountResponse{TokenId: tokenID}, nil
}
