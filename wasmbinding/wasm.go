package wasmbinding

import (
	"encoding/json"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	wasmkeeper "github.com/CosmWasm/wasmd/x/wasm/keeper"
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mars-protocol/rover/testutil/osmosis"
	"github.com/mars-protocol/rover/wasmbinding/bindings"
	cmkeeper "github.com/mars-protocol/rover/x/creditmanager/keeper"
)

type QueryPlugin struct {
	creditManagerKeeper *cmkeeper.Keeper
}

// NewQueryPlugin returns a reference to a new QueryPlugin.
func NewQueryPlugin(ck *cmkeeper.Keeper) *QueryPlugin {
	return &QueryPlugin{creditManagerKeeper: ck}
}

// CustomQuerier dispatches custom CosmWasm bindings queries.
func CustomQuerier(qp *QueryPlugin) func(ctx sdk.Context, request json.RawMessage) ([]byte, error) {
	return func(ctx sdk.Context, request json.RawMessage) ([]byte, error) {
		var contractQuery bindings.RoverQuery
		if err := json.Unmarshal(request, &contractQuery); err != nil {
			return nil, errorsmod.Wrap(err, "failed to unmarshal request")
		}

		var res any
		switch {
		case contractQuery.Config != nil:
			cfg, err := qp.creditManagerKeeper.GetConfig(ctx)
			if err != nil {
				return nil, err
			}
			res = bindings.ConfigResponse{
				Owner:      cfg.Owner,
				AccountNft: cfg.AccountNft,
				RedBank:    cfg.RedBank,
			}
		case contractQuery.AllowedVaults != nil:
			vaults, err := qp.creditManagerKeeper.GetAllowedVaults(ctx)
			if err != nil {
				return nil, err
			}
			res = bindings.AllowListResponse{Entries: vaults}
		case contractQuery.AllowedAssets != nil:
			assets, err := qp.creditManagerKeeper.GetAllowedAssets(ctx)
			if err != nil {
				return nil, err
			}
			res = bindings.AllowListResponse{Entries: assets}
		default:
			return nil, wasmvmtypes.UnsupportedRequest{Kind: "unknown rover query variant"}
		}

		bz, err := json.Marshal(res)
		if err != nil {
			return nil, errorsmod.Wrap(err, "failed marshaling")
		}
		return bz, nil
	}
}

// StargateQuerier serves Osmosis stargate queries from canned fixtures. Both a
// missing fixture and an undecodable payload are invalid requests, so wasmd
// passes their messages to the contract unredacted. A missing fixture's
// message names the key that was looked up.
func StargateQuerier(q *osmosis.Querier) func(ctx sdk.Context, request *wasmvmtypes.StargateQuery) ([]byte, error) {
	return func(_ sdk.Context, request *wasmvmtypes.StargateQuery) ([]byte, error) {
		env, err := q.Dispatch(request.Path, request.Data)
		switch {
		case errorsmod.IsOf(err, osmosis.ErrUnhandledRoute):
			return nil, wasmvmtypes.UnsupportedRequest{Kind: fmt.Sprintf("stargate query path %s", request.Path)}
		case err != nil:
			return nil, wasmvmtypes.InvalidRequest{Err: err.Error(), Request: request.Data}
		case env.Err != nil:
			return nil, wasmvmtypes.InvalidRequest{Err: env.Err.Error(), Request: request.Data}
		}
		return env.Data, nil
	}
}

func RegisterCustomPlugins(ck *cmkeeper.Keeper) []wasmkeeper.Option {
	wasmQueryPlugin := NewQueryPlugin(ck)

	queryPluginOpt := wasmkeeper.WithQueryPlugins(&wasmkeeper.QueryPlugins{
		Custom: CustomQuerier(wasmQueryPlugin),
	})

	return []wasmkeeper.Option{
		queryPluginOpt,
	}
}

// RegisterOsmosisMock routes stargate queries to the fixture querier.
func RegisterOsmosisMock(q *osmosis.Querier) []wasmkeeper.Option {
	queryPluginOpt := wasmkeeper.WithQueryPlugins(
		&wasmkeeper.QueryPlugins{
			Stargate: StargateQuerier(q),
		})

	return []wasmkeeper.Option{
		queryPluginOpt,
	}
}
