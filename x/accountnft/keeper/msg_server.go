package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mars-protocol/rover/x/accountnft/types"
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

// Instantiate creates a new registry
func (ms msgServer) Instantiate(goCtx context.Context, req *types.MsgInstantiate) (*types.MsgInstantiateResponse, error) {
	if err := req.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	addr, err := ms.Keeper.Instantiate(ctx, req.Name, req.Symbol, req.Minter)
	if err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeInstantiate,
		sdk.NewAttribute(types.AttributeKeySender, req.Sender),
		sdk.NewAttribute(types.AttributeKeyRegistry, addr),
	))

	return &types.MsgInstantiateResponse{Address: addr}, nil
}

// ProposeNewOwner starts an ownership hand-off of a registry
func (ms msgServer) ProposeNewOwner(goCtx context.Context, req *types.MsgProposeNewOwner) (*types.MsgProposeNewOwnerResponse, error) {
	if err := req.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.Keeper.ProposeNewOwner(ctx, req.Registry, req.Sender, req.NewOwner); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeProposeNewOwner,
		sdk.NewAttribute(types.AttributeKeyRegistry, req.Registry),
		sdk.NewAttribute(types.AttributeKeyNewOwner, req.NewOwner),
	))

	return &types.MsgProposeNewOwnerResponse{}, nil
}

// ClearProposal withdraws a pending hand-off
func (ms msgServer) ClearProposal(goCtx context.Context, req *types.MsgClearProposal) (*types.MsgClearProposalResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.Keeper.ClearProposal(ctx, req.Registry, req.Sender); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeClearProposal,
		sdk.NewAttribute(types.AttributeKeyRegistry, req.Registry),
	))

	return &types.MsgClearProposalResponse{}, nil
}

// AcceptOwnership completes an ownership hand-off of a registry
func (ms msgServer) AcceptOwnership(goCtx context.Context, req *types.MsgAcceptOwnership) (*types.MsgAcceptOwnershipResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	previous, err := ms.GetOwnership(ctx, req.Registry)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.AcceptOwnership(ctx, req.Registry, req.Sender); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeAcceptOwnership,
		sdk.NewAttribute(types.AttributeKeyRegistry, req.Registry),
		sdk.NewAttribute(types.AttributeKeyPreviousOwner, previous.Owner),
		sdk.NewAttribute(types.AttributeKeyNewOwner, req.Sender),
	))
	ms.Logger(ctx).Info("registry ownership transferred", "registry", req.Registry, "owner", req.Sender)

	return &types.MsgAcceptOwnershipResponse{}, nil
}

// Mint issues a new token
func (ms msgServer) Mint(goCtx context.Context, req *types.MsgMint) (*types.MsgMintResponse, error) {
	if err := req.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	cacheCtx, writeCache := ctx.CacheContext()
	tokenID, err := ms.Keeper.Mint(cacheCtx, req.Registry, req.Sender, req.User)
	if err != nil {
		return nil, err
	}
	writeCache()

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeMint,
		sdk.NewAttribute(types.AttributeKeyRegistry, req.Registry),
		sdk.NewAttribute(types.AttributeKeyUser, req.User),
		sdk.NewAttribute(types.AttributeKeyTokenID, tokenID),
	))

	return &types.MsgMintResponse{TokenId: tokenID}, nil
}
