package bindings

// RoverQuery contains the credit manager queries exposed to contracts.
// Exactly one field must be set.
type RoverQuery struct {
	Config        *struct{} `json:"config,omitempty"`
	AllowedVaults *struct{} `json:"allowed_vaults,omitempty"`
	AllowedAssets *struct{} `json:"allowed_assets,omitempty"`
}

type ConfigResponse struct {
	Owner      string `json:"owner"`
	AccountNft string `json:"account_nft,omitempty"`
	RedBank    string `json:"red_bank"`
}

type AllowListResponse struct {
	Entries []string `json:"entries"`
}
