package types

import (
	bbn "github.com/mars-protocol/rover/types"
)

type MsgInstantiate struct {
	Sender string `json:"sender"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Minter string `json:"minter"`
}

type MsgInstantiateResponse struct {
	Address string `json:"address"`
}

func (m *MsgInstantiate) ValidateBasic() error {
	if len(m.Name) == 0 || len(m.Symbol) == 0 {
		return ErrInvalidRegistry.Wrap("name and symbol must be set")
	}
	if err := bbn.ValidateServiceReference(m.Minter); err != nil {
		return ErrInvalidRegistry.Wrapf("minter: %v", err)
	}
	return nil
}

type MsgProposeNewOwner struct {
	Sender   string `json:"sender"`
	Registry string `json:"registry"`
	NewOwner string `json:"new_owner"`
}

type MsgProposeNewOwnerResponse struct{}

func (m *MsgProposeNewOwner) ValidateBasic() error {
	if err := bbn.ValidateServiceReference(m.NewOwner); err != nil {
		return ErrInvalidRegistry.Wrapf("new owner: %v", err)
	}
	return nil
}

type MsgClearProposal struct {
	Sender   string `json:"sender"`
	Registry string `json:"registry"`
}

type MsgClearProposalResponse struct{}

type MsgAcceptOwnership struct {
	Sender   string `json:"sender"`
	Registry string `json:"registry"`
}

type MsgAcceptOwnershipResponse struct{}

type MsgMint struct {
	Sender   string `json:"sender"`
	Registry string `json:"registry"`
	User     string `json:"user"`
}

type MsgMintResponse struct {
	TokenId string `json:"token_id"`
}

func (m *MsgMint) ValidateBasic() error {
	if err := bbn.ValidateServiceReference(m.User); err != nil {
		return ErrInvalidRegistry.Wrapf("user: %v", err)
	}
	return nil
}
