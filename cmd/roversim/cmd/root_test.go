package cmd_test

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mars-protocol/rover/cmd/roversim/cmd"
	"github.com/mars-protocol/rover/testutil/osmosis"
)

const fixtures = `
pools:
  - id: 7
    pool_assets: ["1000000uosmo", "2500000uusd"]
    total_shares: 100gamm/pool/7
    swap_fee: "0.002"
spot_prices:
  - pool_id: 7
    denom_in: uosmo
    denom_out: uusd
    price: "2.5"
twap_prices:
  - pool_id: 7
    denom_in: uosmo
    denom_out: uusd
    price: "2.45"
estimate_swaps:
  - routes:
      - pool_id: 7
        token_out_denom: uusd
      - pool_id: 9
        token_out_denom: uatom
    token_out_amount: "980"
`

func writeFixtures(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixtures), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := cmd.NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestQueryCommands(t *testing.T) {
	path := writeFixtures(t)

	tcs := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "pool",
			args:     []string{"pool", "7"},
			expected: `"id": "7"`,
		},
		{
			name:     "spot price",
			args:     []string{"spot-price", "7", "uosmo", "uusd"},
			expected: `"spot_price": "2.500000000000000000"`,
		},
		{
			name:     "twap",
			args:     []string{"twap", "7", "uosmo", "uusd", "--start-time", "2024-01-01T00:00:00Z"},
			expected: `"arithmetic_twap": "2.450000000000000000"`,
		},
		{
			name:     "estimate swap",
			args:     []string{"estimate-swap", "--route", "7:uusd", "--route", "9:uatom", "--sender", "alice", "--token-in", "100uosmo"},
			expected: `"token_out_amount": "980"`,
		},
		{
			name:     "raw dispatch",
			args:     []string{"dispatch", osmosis.PoolPath, hex.EncodeToString(osmosis.PoolRequest{PoolID: 7}.Marshal())},
			expected: `"swap_fee": "0.002000000000000000"`,
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			out, err := execute(t, append(tc.args, "--fixtures", path)...)
			require.NoError(t, err)
			require.Contains(t, out, tc.expected)
		})
	}
}

func TestQueryCommandErrors(t *testing.T) {
	path := writeFixtures(t)

	_, err := execute(t, "spot-price", "8", "uosmo", "uusd", "--fixtures", path)
	require.ErrorIs(t, err, osmosis.ErrNotFound)
	require.Contains(t, err.Error(), "(8, uosmo, uusd)")

	_, err = execute(t, "dispatch", "/cosmos.bank.v1beta1.Query/Balance", "--fixtures", path)
	require.ErrorIs(t, err, osmosis.ErrUnhandledRoute)

	_, err = execute(t, "dispatch", osmosis.PoolPath, "0880", "--fixtures", path)
	require.ErrorIs(t, err, osmosis.ErrDecodeFailure)

	_, err = execute(t, "pool", "seven", "--fixtures", path)
	require.ErrorContains(t, err, "invalid pool id")

	_, err = execute(t, "estimate-swap", "--route", "7", "--fixtures", path)
	require.ErrorContains(t, err, "invalid route")

	_, err = execute(t, "estimate-swap", "--fixtures", path)
	require.Error(t, err)
}

func TestFixturesFromEnvAndConfig(t *testing.T) {
	path := writeFixtures(t)

	t.Setenv("ROVERSIM_FIXTURES", path)
	out, err := execute(t, "pool", "7")
	require.NoError(t, err)
	require.Contains(t, out, `"id": "7"`)

	t.Setenv("ROVERSIM_FIXTURES", "")
	cfg := filepath.Join(t.TempDir(), "roversim.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("fixtures: "+path+"\n"), 0o600))
	out, err = execute(t, "pool", "7", "--config", cfg)
	require.NoError(t, err)
	require.Contains(t, out, `"id": "7"`)
}

func TestWithoutFixturesEverythingIsNotFound(t *testing.T) {
	_, err := execute(t, "pool", "7")
	require.ErrorIs(t, err, osmosis.ErrNotFound)
}

func TestMalformedFixturesFailEarly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pools: [{id: 1, bogus: true}]\n"), 0o600))
	_, err := execute(t, "pool", "1", "--fixtures", path)
	require.ErrorContains(t, err, path)
}

func TestTwapEndTime(t *testing.T) {
	path := writeFixtures(t)

	out, err := execute(t, "twap", "--help")
	require.NoError(t, err)
	require.Contains(t, out, "left out of the request when unset")

	out, err = execute(t, "twap", "7", "uosmo", "uusd", "--end-time", "2024-01-02T00:00:00Z", "--fixtures", path)
	require.NoError(t, err)
	require.Contains(t, out, `"arithmetic_twap": "2.450000000000000000"`)

	_, err = execute(t, "twap", "7", "uosmo", "uusd", "--end-time", "tomorrow", "--fixtures", path)
	require.ErrorContains(t, err, "invalid end-time")
}
