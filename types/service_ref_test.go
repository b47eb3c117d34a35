package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mars-protocol/rover/types"
)

func TestValidateServiceReference(t *testing.T) {
	tcs := []struct {
		ref string
		err error
	}{
		{"osmo1redbank", nil},
		{"red_bank", nil},
		{"", types.ErrEmptyServiceReference},
		{" red_bank", types.ErrPaddedServiceReference},
		{"red_bank\n", types.ErrPaddedServiceReference},
		{"\t", types.ErrPaddedServiceReference},
	}
	for _, tc := range tcs {
		err := types.ValidateServiceReference(tc.ref)
		if tc.err == nil {
			require.NoError(t, err, "%q", tc.ref)
			continue
		}
		require.ErrorIs(t, err, tc.err, "%q", tc.ref)
	}
}

func TestValidateServiceReferences(t *testing.T) {
	require.NoError(t, types.ValidateServiceReferences(nil))
	require.NoError(t, types.ValidateServiceReferences([]string{"vault_a", "vault_b"}))
	require.ErrorIs(t, types.ValidateServiceReferences([]string{"vault_a", "vault_a"}), types.ErrDuplicateServiceReference)
	require.ErrorIs(t, types.ValidateServiceReferences([]string{"vault_a", ""}), types.ErrEmptyServiceReference)
}
