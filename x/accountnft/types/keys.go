package types

import (
	"cosmossdk.io/collections"
)

const (
	// ModuleName defines the module name
	ModuleName = "accountnft"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

var (
	RegistriesKey       = collections.NewPrefix(1) // key prefix for (registry_addr) => Registry
	TokensKey           = collections.NewPrefix(2) // key prefix for (registry_addr, token_id) => holder
	RegistrySequenceKey = collections.NewPrefix(3) // key prefix for the registry address sequence
)
