package keeper

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mars-protocol/rover/x/creditmanager/types"
)

func TestEnsureOwner(t *testing.T) {
	require.NoError(t, ensureOwner("owner", "owner"))
	require.ErrorIs(t, ensureOwner("someone", "owner"), types.ErrUnauthorized)
	require.ErrorIs(t, ensureOwner("", "owner"), types.ErrUnauthorized)
	// identities are opaque, no normalization happens
	require.ErrorIs(t, ensureOwner("Owner", "owner"), types.ErrUnauthorized)
}
