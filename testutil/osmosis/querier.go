package osmosis

import (
	"sync"

	"github.com/goccy/go-json"
)

// Envelope is the outcome of a well-formed request. Exactly one of Data and
// Err is set; Err wraps ErrNotFound and names the key that was looked up.
type Envelope struct {
	Data []byte
	Err  error
}

// Unmarshal decodes the payload into v, or returns the request-level error.
func (e Envelope) Unmarshal(v any) error {
	if e.Err != nil {
		return e.Err
	}
	return json.Unmarshal(e.Data, v)
}

// Querier serves canned Osmosis query responses. Fixtures are keyed by the
// semantic fields of a request, never by its bytes, so any two encodings of
// the same request resolve to the same fixture.
type Querier struct {
	mu sync.RWMutex

	pools         map[uint64]PoolResponse
	spotPrices    map[PriceKey]SpotPriceResponse
	twapPrices    map[PriceKey]ArithmeticTwapResponse
	estimateSwaps map[string]EstimateSwapExactAmountInResponse
}

func NewQuerier() *Querier {
	return &Querier{
		pools:         make(map[uint64]PoolResponse),
		spotPrices:    make(map[PriceKey]SpotPriceResponse),
		twapPrices:    make(map[PriceKey]ArithmeticTwapResponse),
		estimateSwaps: make(map[string]EstimateSwapExactAmountInResponse),
	}
}

func (q *Querier) SetPool(pool Pool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pools[pool.ID] = PoolResponse{Pool: pool}
}

func (q *Querier) SetSpotPrice(key PriceKey, res SpotPriceResponse) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.spotPrices[key] = res
}

func (q *Querier) SetTwapPrice(key PriceKey, res ArithmeticTwapResponse) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.twapPrices[key] = res
}

func (q *Querier) SetEstimateSwap(routes []SwapAmountInRoute, res EstimateSwapExactAmountInResponse) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.estimateSwaps[EstimateSwapKey(routes)] = res
}

// Dispatch serves one query. An unknown path fails with ErrUnhandledRoute and
// a payload that does not decode as the route's request fails with
// ErrDecodeFailure. Every well-formed request yields an Envelope, carrying
// ErrNotFound when no fixture matches.
func (q *Querier) Dispatch(path string, data []byte) (Envelope, error) {
	route, ok := ParseRoute(path)
	if !ok {
		return Envelope{}, ErrUnhandledRoute.Wrapf("path %s", path)
	}

	q.mu.RLock()
	defer q.mu.RUnlock()

	switch route {
	case RoutePool:
		var req PoolRequest
		if err := req.Unmarshal(data); err != nil {
			return Envelope{}, ErrDecodeFailure.Wrapf("%s: %v", route, err)
		}
		return q.handlePool(req), nil
	case RouteSpotPrice:
		var req SpotPriceRequest
		if err := req.Unmarshal(data); err != nil {
			return Envelope{}, ErrDecodeFailure.Wrapf("%s: %v", route, err)
		}
		return q.handleSpotPrice(req), nil
	case RouteArithmeticTwap:
		var req ArithmeticTwapRequest
		if err := req.Unmarshal(data); err != nil {
			return Envelope{}, ErrDecodeFailure.Wrapf("%s: %v", route, err)
		}
		return q.handleArithmeticTwap(req), nil
	case RouteEstimateSwapExactAmountIn:
		var req EstimateSwapExactAmountInRequest
		if err := req.Unmarshal(data); err != nil {
			return Envelope{}, ErrDecodeFailure.Wrapf("%s: %v", route, err)
		}
		return q.handleEstimateSwap(req), nil
	default:
		return Envelope{}, ErrUnhandledRoute.Wrapf("path %s", path)
	}
}

func (q *Querier) handlePool(req PoolRequest) Envelope {
	res, ok := q.pools[req.PoolID]
	if !ok {
		return notFound("QueryPoolResponse is not found for pool id: %d", req.PoolID)
	}
	return success(res)
}

func (q *Querier) handleSpotPrice(req SpotPriceRequest) Envelope {
	key := req.PriceKey()
	res, ok := q.spotPrices[key]
	if !ok {
		return notFound("QuerySpotPriceResponse is not found for price key: %s", key)
	}
	return success(res)
}

func (q *Querier) handleArithmeticTwap(req ArithmeticTwapRequest) Envelope {
	key := req.PriceKey()
	res, ok := q.twapPrices[key]
	if !ok {
		return notFound("ArithmeticTwapResponse is not found for price key: %s", key)
	}
	return success(res)
}

func (q *Querier) handleEstimateSwap(req EstimateSwapExactAmountInRequest) Envelope {
	key := EstimateSwapKey(req.Routes)
	res, ok := q.estimateSwaps[key]
	if !ok {
		return notFound("QuerySwapExactAmountInResponse is not found for routes: %q", key)
	}
	return success(res)
}

func success(res any) Envelope {
	bz, err := json.Marshal(res)
	if err != nil {
		return Envelope{Err: err}
	}
	return Envelope{Data: bz}
}

func notFound(format string, args ...any) Envelope {
	return Envelope{Err: ErrNotFound.Wrapf(format, args...)}
}
