package types

// DONTCOVER

import (
	errorsmod "cosmossdk.io/errors"
)

// x/accountnft module sentinel errors
var (
	ErrUnauthorized      = errorsmod.Register(ModuleName, 1100, "caller is not the registry owner")
	ErrInvalidAcceptance = errorsmod.Register(ModuleName, 1101, "no ownership proposal addressed to the caller")
	ErrProposalPending   = errorsmod.Register(ModuleName, 1102, "another ownership proposal is pending")
	ErrRegistryNotFound  = errorsmod.Register(ModuleName, 1103, "registry not found")
	ErrTokenNotFound     = errorsmod.Register(ModuleName, 1104, "token not found")
	ErrInvalidRegistry   = errorsmod.Register(ModuleName, 1105, "invalid registry")
)
