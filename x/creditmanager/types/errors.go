package types

// DONTCOVER

import (
	errorsmod "cosmossdk.io/errors"
)

// x/creditmanager module sentinel errors
var (
	ErrUnauthorized            = errorsmod.Register(ModuleName, 1100, "caller is not the owner")
	ErrInvalidServiceReference = errorsmod.Register(ModuleName, 1101, "invalid service reference")
	ErrAccountRegistryNotSet   = errorsmod.Register(ModuleName, 1102, "account registry is not configured")
	ErrInvalidGenesis          = errorsmod.Register(ModuleName, 1103, "invalid genesis state")
)
