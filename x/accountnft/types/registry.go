package types

import (
	"fmt"

	bbn "github.com/mars-protocol/rover/types"
)

// Registry is one account registry instance. Owner doubles as the minter.
type Registry struct {
	Address      string `json:"address"`
	Name         string `json:"name"`
	Symbol       string `json:"symbol"`
	Owner        string `json:"owner"`
	PendingOwner string `json:"pending_owner,omitempty"`
	NextTokenID  uint64 `json:"next_token_id"`
}

func (r Registry) Validate() error {
	if err := bbn.ValidateServiceReference(r.Address); err != nil {
		return fmt.Errorf("address: %w", err)
	}
	if len(r.Name) == 0 || len(r.Symbol) == 0 {
		return fmt.Errorf("name and symbol must be set")
	}
	if err := bbn.ValidateServiceReference(r.Owner); err != nil {
		return fmt.Errorf("owner: %w", err)
	}
	if r.NextTokenID == 0 {
		return fmt.Errorf("next token id must start at 1")
	}
	return nil
}

// HasPendingOwner reports whether an ownership proposal awaits acceptance.
func (r Registry) HasPendingOwner() bool {
	return len(r.PendingOwner) > 0
}

// Ownership is the ownership view of a registry.
type Ownership struct {
	Owner        string `json:"owner"`
	PendingOwner string `json:"pending_owner,omitempty"`
}

func (r Registry) Ownership() Ownership {
	return Ownership{Owner: r.Owner, PendingOwner: r.PendingOwner}
}
