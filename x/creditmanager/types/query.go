package types

import "context"

type QueryConfigRequest struct{}

type QueryConfigResponse struct {
	Owner      string `json:"owner"`
	AccountNft string `json:"account_nft,omitempty"`
	RedBank    string `json:"red_bank"`
}

// NewQueryConfigResponse flattens the stored config into its query form.
func NewQueryConfigResponse(c Config) *QueryConfigResponse {
	return &QueryConfigResponse{
		Owner:      c.Owner,
		AccountNft: c.AccountNft,
		RedBank:    c.RedBank,
	}
}

type QueryAllowedVaultsRequest struct{}

type QueryAllowedVaultsResponse struct {
	Vaults []string `json:"vaults"`
}

type QueryAllowedAssetsRequest struct{}

type QueryAllowedAssetsResponse struct {
	Assets []string `json:"assets"`
}

type QueryServer interface {
	Config(ctx context.Context, req *QueryConfigRequest) (*QueryConfigResponse, error)
	AllowedVaults(ctx context.Context, req *QueryAllowedVaultsRequest) (*QueryAllowedVaultsResponse, error)
	AllowedAssets(ctx context.Context, req *QueryAllowedAssetsRequest) (*QueryAllowedAssetsResponse, error)
}

type MsgServer interface {
	UpdateConfig(ctx context.Context, msg *MsgUpdateConfig) (*MsgUpdateConfigResponse, error)
	UpdateAllowLists(ctx context.Context, msg *MsgUpdateAllowLists) (*MsgUpdateAllowListsResponse, error)
	AcceptAccountRegistryOwnership(ctx context.Context, msg *MsgAcceptAccountRegistryOwnership) (*MsgAcceptAccountRegistryOwnershipResponse, error)
	CreateCreditAccount(ctx context.Context, msg *MsgCreateCreditAccount) (*MsgCreateCreditAccountResponse, error)
}
