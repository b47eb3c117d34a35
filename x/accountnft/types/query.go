package types

import "context"

type QueryRegistryRequest struct {
	Registry string `json:"registry"`
}

type QueryRegistryResponse struct {
	Registry Registry `json:"registry"`
}

type QueryOwnershipRequest struct {
	Registry string `json:"registry"`
}

type QueryOwnershipResponse struct {
	Ownership Ownership `json:"ownership"`
}

type QueryOwnerOfRequest struct {
	Registry string `json:"registry"`
	TokenId  string `json:"token_id"`
}

type QueryOwnerOfResponse struct {
	Owner string `json:"owner"`
}

type QueryTokensRequest struct {
	Registry string `json:"registry"`
	Owner    string `json:"owner"`
}

type QueryTokensResponse struct {
	Tokens []string `json:"tokens"`
}

type QueryServer interface {
	Registry(ctx context.Context, req *QueryRegistryRequest) (*QueryRegistryResponse, error)
	Ownership(ctx context.Context, req *QueryOwnershipRequest) (*QueryOwnershipResponse, error)
	OwnerOf(ctx context.Context, req *QueryOwnerOfRequest) (*QueryOwnerOfResponse, error)
	Tokens(ctx context.Context, req *QueryTokensRequest) (*QueryTokensResponse, error)
}

type MsgServer interface {
	Instantiate(ctx context.Context, msg *MsgInstantiate) (*MsgInstantiateResponse, error)
	ProposeNewOwner(ctx context.Context, msg *MsgProposeNewOwner) (*MsgProposeNewOwnerResponse, error)
	ClearProposal(ctx context.Context, msg *MsgClearProposal) (*MsgClearProposalResponse, error)
	AcceptOwnership(ctx context.Context, msg *MsgAcceptOwnership) (*MsgAcceptOwnershipResponse, error)
	Mint(ctx context.Context, msg *MsgMint) (*MsgMintResponse, error)
}
