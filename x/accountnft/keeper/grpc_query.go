package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mars-protocol/rover/x/accountnft/types"
)

var _ types.QueryServer = Keeper{}

func (k Keeper) Registry(ctx context.Context, req *types.QueryRegistryRequest) (*types.QueryRegistryResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	registry, err := k.GetRegistry(ctx, req.Registry)
	if err != nil {
		return nil, toStatus(err)
	}

	return &types.QueryRegistryResponse{Registry: registry}, nil
}

func (k Keeper) Ownership(ctx context.Context, req *types.QueryOwnershipRequest) (*types.QueryOwnershipResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	ownership, err := k.GetOwnership(ctx, req.Registry)
	if err != nil {
		return nil, toStatus(err)
	}

	return &types.QueryOwnershipResponse{Ownership: ownership}, nil
}

func (k Keeper) OwnerOf(ctx context.Context, req *types.QueryOwnerOfRequest) (*types.QueryOwnerOfResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	owner, err := k.GetTokenHolder(ctx, req.Registry, req.TokenId)
	if err != nil {
		return nil, toStatus(err)
	}

	return &types.QueryOwnerOfResponse{Owner: owner}, nil
}

func (k Keeper) Tokens(ctx context.Context, req *types.QueryTokensRequest) (*types.QueryTokensResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	if _, err := k.GetRegistry(ctx, req.Registry); err != nil {
		return nil, toStatus(err)
	}
	tokens, err := k.TokensOf(ctx, req.Registry, req.Owner)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryTokensResponse{Tokens: tokens}, nil
}

func toStatus(err error) error {
	if errorsmod.IsOf(err, types.ErrRegistryNotFound, types.ErrTokenNotFound) {
		return status.Error(codes.NotFound, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}
