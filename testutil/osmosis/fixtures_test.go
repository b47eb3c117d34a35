package osmosis_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mars-protocol/rover/testutil/osmosis"
)

func TestLoadFixtures(t *testing.T) {
	f, err := os.Open("testdata/fixtures.yaml")
	require.NoError(t, err)
	defer f.Close()

	q := osmosis.NewQuerier()
	require.NoError(t, q.LoadFixtures(f))

	env, err := q.Dispatch(osmosis.PoolPath, osmosis.PoolRequest{PoolID: 7}.Marshal())
	require.NoError(t, err)
	var pool osmosis.PoolResponse
	require.NoError(t, env.Unmarshal(&pool))
	require.Equal(t, "1000000uosmo,2500000uusd", pool.Pool.PoolAssets.String())
	require.Equal(t, "100gamm/pool/7", pool.Pool.TotalShares.String())

	env, err = q.Dispatch(osmosis.SpotPricePath, osmosis.SpotPriceRequest{PoolID: 7, BaseAssetDenom: "uosmo", QuoteAssetDenom: "uusd"}.Marshal())
	require.NoError(t, err)
	var spot osmosis.SpotPriceResponse
	require.NoError(t, env.Unmarshal(&spot))
	require.Equal(t, "2.500000000000000000", spot.SpotPrice.String())

	env, err = q.Dispatch(osmosis.ArithmeticTwapPath, osmosis.ArithmeticTwapRequest{PoolID: 7, BaseAsset: "uosmo", QuoteAsset: "uusd"}.Marshal())
	require.NoError(t, err)
	var twap osmosis.ArithmeticTwapResponse
	require.NoError(t, env.Unmarshal(&twap))
	require.Equal(t, "2.450000000000000000", twap.ArithmeticTwap.String())

	env, err = q.Dispatch(osmosis.EstimateSwapExactAmountInPath, osmosis.EstimateSwapExactAmountInRequest{
		Routes: []osmosis.SwapAmountInRoute{{PoolID: 7, TokenOutDenom: "uusd"}},
	}.Marshal())
	require.NoError(t, err)
	var swap osmosis.EstimateSwapExactAmountInResponse
	require.NoError(t, env.Unmarshal(&swap))
	require.Equal(t, "2450", swap.TokenOutAmount.String())
}

func TestLoadFixturesIsAllOrNothing(t *testing.T) {
	tcs := map[string]string{
		"unknown key": "pools:\n  - id: 1\n    colour: blue\n",
		"bad coin":    "pools:\n  - id: 1\n    pool_assets: [\"lots\"]\n",
		"bad price": "spot_prices:\n  - pool_id: 1\n    denom_in: a\n    denom_out: b\n    price: cheap\n" +
			"twap_prices:\n  - pool_id: 1\n    denom_in: a\n    denom_out: b\n    price: \"1\"\n",
		"bad amount": "estimate_swaps:\n  - routes: []\n    token_out_amount: \"1.5\"\n",
	}
	for name, doc := range tcs {
		t.Run(name, func(t *testing.T) {
			q := osmosis.NewQuerier()
			require.Error(t, q.LoadFixtures(strings.NewReader(doc)))

			env, err := q.Dispatch(osmosis.ArithmeticTwapPath, osmosis.ArithmeticTwapRequest{PoolID: 1, BaseAsset: "a", QuoteAsset: "b"}.Marshal())
			require.NoError(t, err)
			require.ErrorIs(t, env.Err, osmosis.ErrNotFound)
		})
	}
}
