package keeper

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mars-protocol/rover/x/creditmanager/types"
)

var _ types.QueryServer = Keeper{}

// Config returns the current manager config
func (k Keeper) Config(ctx context.Context, req *types.QueryConfigRequest) (*types.QueryConfigResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}

	return types.NewQueryConfigResponse(cfg), nil
}

func (k Keeper) AllowedVaults(ctx context.Context, req *types.QueryAllowedVaultsRequest) (*types.QueryAllowedVaultsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	vaults, err := k.GetAllowedVaults(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryAllowedVaultsResponse{Vaults: vaults}, nil
}

func (k Keeper) AllowedAssets(ctx context.Context, req *types.QueryAllowedAssetsRequest) (*types.QueryAllowedAssetsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	assets, err := k.GetAllowedAssets(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryAllowedAssetsResponse{Assets: assets}, nil
}
