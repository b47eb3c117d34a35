package osmosis

import (
	"fmt"
	"strings"
)

// PriceKey identifies a spot or time-weighted price fixture.
type PriceKey struct {
	PoolID   uint64
	DenomIn  string
	DenomOut string
}

func (k PriceKey) String() string {
	return fmt.Sprintf("(%d, %s, %s)", k.PoolID, k.DenomIn, k.DenomOut)
}

// EstimateSwapKey joins "{pool_id}.{token_out_denom}" of every hop, in order,
// with a comma.
func EstimateSwapKey(routes []SwapAmountInRoute) string {
	hops := make([]string, len(routes))
	for i, hop := range routes {
		hops[i] = fmt.Sprintf("%d.%s", hop.PoolID, hop.TokenOutDenom)
	}
	return strings.Join(hops, ",")
}
