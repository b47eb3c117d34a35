package osmosis

// Route identifies one of the query shapes the mock serves.
type Route int

const (
	RoutePool Route = iota + 1
	RouteSpotPrice
	RouteArithmeticTwap
	RouteEstimateSwapExactAmountIn
)

const (
	PoolPath                      = "/osmosis.gamm.v1beta1.Query/Pool"
	SpotPricePath                 = "/osmosis.gamm.v1beta1.Query/SpotPrice"
	ArithmeticTwapPath            = "/osmosis.gamm.twap.v1beta1.Query/GetArithmeticTwap"
	EstimateSwapExactAmountInPath = "/osmosis.gamm.v1beta1.Query/EstimateSwapExactAmountIn"
)

var routePaths = map[Route]string{
	RoutePool:                      PoolPath,
	RouteSpotPrice:                 SpotPricePath,
	RouteArithmeticTwap:            ArithmeticTwapPath,
	RouteEstimateSwapExactAmountIn: EstimateSwapExactAmountInPath,
}

// ParseRoute maps a query path onto its route.
func ParseRoute(path string) (Route, bool) {
	for route, p := range routePaths {
		if p == path {
			return route, true
		}
	}
	return 0, false
}

// Path returns the query path of the route.
func (r Route) Path() string {
	return routePaths[r]
}

func (r Route) String() string {
	switch r {
	case RoutePool:
		return "pool"
	case RouteSpotPrice:
		return "spot_price"
	case RouteArithmeticTwap:
		return "arithmetic_twap"
	case RouteEstimateSwapExactAmountIn:
		return "estimate_swap_exact_amount_in"
	default:
		return "unknown"
	}
}
