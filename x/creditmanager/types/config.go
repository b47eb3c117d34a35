package types

import (
	"fmt"

	bbn "github.com/mars-protocol/rover/types"
)

// Config is the state custodied by the credit manager.
type Config struct {
	// Owner is the only identity allowed to mutate the manager.
	Owner string `json:"owner"`
	// AccountNft is the address of the account registry minting credit
	// account tokens. Empty until configured.
	AccountNft string `json:"account_nft,omitempty"`
	// RedBank is the address of the asset custody adapter.
	RedBank string `json:"red_bank"`
}

// HasAccountNft reports whether an account registry is configured.
func (c Config) HasAccountNft() bool {
	return len(c.AccountNft) > 0
}

func (c Config) Validate() error {
	if err := bbn.ValidateServiceReference(c.Owner); err != nil {
		return fmt.Errorf("owner: %w", err)
	}
	if err := bbn.ValidateServiceReference(c.RedBank); err != nil {
		return fmt.Errorf("red bank: %w", err)
	}
	if c.HasAccountNft() {
		if err := bbn.ValidateServiceReference(c.AccountNft); err != nil {
			return fmt.Errorf("account nft: %w", err)
		}
	}
	return nil
}

// ConfigUpdates holds the optional replacements of a single update. A nil
// field leaves the stored value untouched.
type ConfigUpdates struct {
	Owner      *string `json:"owner,omitempty"`
	AccountNft *string `json:"account_nft,omitempty"`
	RedBank    *string `json:"red_bank,omitempty"`
}

// IsEmpty reports whether the update replaces nothing.
func (u ConfigUpdates) IsEmpty() bool {
	return u.Owner == nil && u.AccountNft == nil && u.RedBank == nil
}

func (u ConfigUpdates) Validate() error {
	fields := []struct {
		name  string
		value *string
	}{
		{"owner", u.Owner},
		{"account_nft", u.AccountNft},
		{"red_bank", u.RedBank},
	}
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		if err := bbn.ValidateServiceReference(*f.value); err != nil {
			return ErrInvalidServiceReference.Wrapf("%s: %v", f.name, err)
		}
	}
	return nil
}

// Apply returns a copy of c with every supplied field replaced.
func (u ConfigUpdates) Apply(c Config) Config {
	if u.Owner != nil {
		c.Owner = *u.Owner
	}
	if u.AccountNft != nil {
		c.AccountNft = *u.AccountNft
	}
	if u.RedBank != nil {
		c.RedBank = *u.RedBank
	}
	return c
}

// UpdatedFields lists the names of the supplied fields in a stable order.
func (u ConfigUpdates) UpdatedFields() []string {
	var fields []string
	if u.Owner != nil {
		fields = append(fields, "owner")
	}
	if u.AccountNft != nil {
		fields = append(fields, "account_nft")
	}
	if u.RedBank != nil {
		fields = append(fields, "red_bank")
	}
	return fields
}
