package types

import (
	"cosmossdk.io/collections"
)

const (
	// ModuleName defines the module name
	ModuleName = "creditmanager"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

var (
	ConfigKey        = collections.NewPrefix(1) // key prefix for the manager config
	AllowedVaultsKey = collections.NewPrefix(2) // key prefix for the vault allow-list
	AllowedAssetsKey = collections.NewPrefix(3) // key prefix for the asset allow-list
)
