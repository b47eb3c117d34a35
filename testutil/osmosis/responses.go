package osmosis

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Pool is the snapshot of a balancer pool served by the Pool route.
type Pool struct {
	ID          uint64         `json:"id,string"`
	PoolAssets  sdk.Coins      `json:"pool_assets"`
	TotalShares sdk.Coin       `json:"total_shares"`
	SwapFee     math.LegacyDec `json:"swap_fee"`
}

type PoolResponse struct {
	Pool Pool `json:"pool"`
}

type SpotPriceResponse struct {
	SpotPrice math.LegacyDec `json:"spot_price"`
}

type ArithmeticTwapResponse struct {
	ArithmeticTwap math.LegacyDec `json:"arithmetic_twap"`
}

type EstimateSwapExactAmountInResponse struct {
	TokenOutAmount math.Int `json:"token_out_amount"`
}
