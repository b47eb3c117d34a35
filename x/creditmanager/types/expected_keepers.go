package types

import "context"

// AccountRegistryKeeper is the account registry surface the manager calls
// into. Every call is made on behalf of caller, which for the manager is
// always its own address.
type AccountRegistryKeeper interface {
	AcceptOwnership(ctx context.Context, registry, caller string) error
	Mint(ctx context.Context, registry, caller, user string) (string, error)
}
