package osmosis

import (
	"fmt"
	"io"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"gopkg.in/yaml.v2"
)

// Fixtures is the YAML layout accepted by LoadFixtures. Amounts and prices
// are decimal strings.
type Fixtures struct {
	Pools []struct {
		ID          uint64   `yaml:"id"`
		PoolAssets  []string `yaml:"pool_assets"`
		TotalShares string   `yaml:"total_shares"`
		SwapFee     string   `yaml:"swap_fee"`
	} `yaml:"pools"`
	SpotPrices    []PriceFixture `yaml:"spot_prices"`
	TwapPrices    []PriceFixture `yaml:"twap_prices"`
	EstimateSwaps []struct {
		Routes         []SwapAmountInRoute `yaml:"routes"`
		TokenOutAmount string              `yaml:"token_out_amount"`
	} `yaml:"estimate_swaps"`
}

type PriceFixture struct {
	PoolID   uint64 `yaml:"pool_id"`
	DenomIn  string `yaml:"denom_in"`
	DenomOut string `yaml:"denom_out"`
	Price    string `yaml:"price"`
}

func (f PriceFixture) parse() (PriceKey, math.LegacyDec, error) {
	key := PriceKey{PoolID: f.PoolID, DenomIn: f.DenomIn, DenomOut: f.DenomOut}
	price, err := math.LegacyNewDecFromStr(f.Price)
	if err != nil {
		return key, math.LegacyDec{}, fmt.Errorf("price of %s: %w", key, err)
	}
	return key, price, nil
}

// LoadFixtures reads YAML fixtures from r and registers every entry. Nothing
// is registered if any entry is malformed.
func (q *Querier) LoadFixtures(r io.Reader) error {
	bz, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	var f Fixtures
	if err := yaml.UnmarshalStrict(bz, &f); err != nil {
		return fmt.Errorf("failed to parse fixtures: %w", err)
	}

	staged := NewQuerier()
	for _, p := range f.Pools {
		pool := Pool{ID: p.ID, PoolAssets: sdk.NewCoins(), SwapFee: math.LegacyZeroDec()}
		for _, raw := range p.PoolAssets {
			coin, err := sdk.ParseCoinNormalized(raw)
			if err != nil {
				return fmt.Errorf("pool %d asset %q: %w", p.ID, raw, err)
			}
			pool.PoolAssets = pool.PoolAssets.Add(coin)
		}
		if p.TotalShares != "" {
			shares, err := sdk.ParseCoinNormalized(p.TotalShares)
			if err != nil {
				return fmt.Errorf("pool %d total shares: %w", p.ID, err)
			}
			pool.TotalShares = shares
		}
		if p.SwapFee != "" {
			fee, err := math.LegacyNewDecFromStr(p.SwapFee)
			if err != nil {
				return fmt.Errorf("pool %d swap fee: %w", p.ID, err)
			}
			pool.SwapFee = fee
		}
		staged.pools[pool.ID] = PoolResponse{Pool: pool}
	}
	for _, sp := range f.SpotPrices {
		key, price, err := sp.parse()
		if err != nil {
			return err
		}
		staged.spotPrices[key] = SpotPriceResponse{SpotPrice: price}
	}
	for _, tp := range f.TwapPrices {
		key, price, err := tp.parse()
		if err != nil {
			return err
		}
		staged.twapPrices[key] = ArithmeticTwapResponse{ArithmeticTwap: price}
	}
	for _, es := range f.EstimateSwaps {
		amount, ok := math.NewIntFromString(es.TokenOutAmount)
		if !ok {
			return fmt.Errorf("estimate swap %q: invalid amount %q", EstimateSwapKey(es.Routes), es.TokenOutAmount)
		}
		staged.estimateSwaps[EstimateSwapKey(es.Routes)] = EstimateSwapExactAmountInResponse{TokenOutAmount: amount}
	}

	q.merge(staged)
	return nil
}

func (q *Querier) merge(other *Querier) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for k, v := range other.pools {
		q.pools[k] = v
	}
	for k, v := range other.spotPrices {
		q.spotPrices[k] = v
	}
	for k, v := range other.twapPrices {
		q.twapPrices[k] = v
	}
	for k, v := range other.estimateSwaps {
		q.estimateSwaps[k] = v
	}
}
