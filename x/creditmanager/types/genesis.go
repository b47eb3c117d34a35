package types

import (
	bbn "github.com/mars-protocol/rover/types"
)

// GenesisState is the state the manager is instantiated with.
type GenesisState struct {
	Config        Config   `json:"config"`
	AllowedVaults []string `json:"allowed_vaults"`
	AllowedAssets []string `json:"allowed_assets"`
}

// NewGenesis mirrors the manager's instantiate message: the account registry
// is never set at construction.
func NewGenesis(owner, redBank string, allowedVaults, allowedAssets []string) *GenesisState {
	return &GenesisState{
		Config: Config{
			Owner:   owner,
			RedBank: redBank,
		},
		AllowedVaults: allowedVaults,
		AllowedAssets: allowedAssets,
	}
}

func (gs GenesisState) Validate() error {
	if err := gs.Config.Validate(); err != nil {
		return ErrInvalidGenesis.Wrapf("config: %v", err)
	}
	if err := bbn.ValidateServiceReferences(gs.AllowedVaults); err != nil {
		return ErrInvalidGenesis.Wrapf("allowed vaults: %v", err)
	}
	if err := bbn.ValidateServiceReferences(gs.AllowedAssets); err != nil {
		return ErrInvalidGenesis.Wrapf("allowed assets: %v", err)
	}
	return nil
}
