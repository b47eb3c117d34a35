package types

import (
	bbn "github.com/mars-protocol/rover/types"
)

// MsgUpdateConfig replaces any subset of the manager config.
//
// Setting AccountNft does not verify that control of that registry has been
// handed to the manager. Callers must complete the registry's
// ProposeNewOwner / AcceptOwnership sequence first; until then the manager
// cannot mint credit accounts on it.
type MsgUpdateConfig struct {
	Sender string `json:"sender"`
	ConfigUpdates
}

type MsgUpdateConfigResponse struct{}

// ValidateBasic only checks the sender. Replacement values are validated after
// the owner check so that a non-owner always gets ErrUnauthorized.
func (m *MsgUpdateConfig) ValidateBasic() error {
	return validateSender(m.Sender)
}

func validateSender(sender string) error {
	if err := bbn.ValidateServiceReference(sender); err != nil {
		return ErrUnauthorized.Wrapf("invalid sender: %v", err)
	}
	return nil
}

// MsgUpdateAllowLists adds and removes entries of the vault and asset
// allow-lists. Removals are applied after additions.
type MsgUpdateAllowLists struct {
	Sender       string   `json:"sender"`
	AddVaults    []string `json:"add_vaults,omitempty"`
	RemoveVaults []string `json:"remove_vaults,omitempty"`
	AddAssets    []string `json:"add_assets,omitempty"`
	RemoveAssets []string `json:"remove_assets,omitempty"`
}

type MsgUpdateAllowListsResponse struct{}

func (m *MsgUpdateAllowLists) ValidateBasic() error {
	if err := validateSender(m.Sender); err != nil {
		return err
	}
	for _, list := range [][]string{m.AddVaults, m.RemoveVaults, m.AddAssets, m.RemoveAssets} {
		for _, entry := range list {
			if err := bbn.ValidateServiceReference(entry); err != nil {
				return ErrInvalidServiceReference.Wrapf("allow-list entry %q: %v", entry, err)
			}
		}
	}
	return nil
}

// MsgAcceptAccountRegistryOwnership makes the manager accept a pending
// ownership proposal of the given account registry.
type MsgAcceptAccountRegistryOwnership struct {
	Sender   string `json:"sender"`
	Registry string `json:"registry"`
}

type MsgAcceptAccountRegistryOwnershipResponse struct{}

func (m *MsgAcceptAccountRegistryOwnership) ValidateBasic() error {
	if err := validateSender(m.Sender); err != nil {
		return err
	}
	if err := bbn.ValidateServiceReference(m.Registry); err != nil {
		return ErrInvalidServiceReference.Wrapf("registry: %v", err)
	}
	return nil
}

// MsgCreateCreditAccount mints a credit account token held by Sender.
type MsgCreateCreditAccount struct {
	Sender string `json:"sender"`
}

type MsgCreateCreditAccountResponse struct {
	TokenId string `json:"token_id"`
}

func (m *MsgCreateCreditAccount) ValidateBasic() error {
	return validateSender(m.Sender)
}
