package osmosis

import (
	"time"

	"google.golang.org/protobuf/encoding/protowire"
)

// PoolRequest mirrors osmosis.gamm.v1beta1.QueryPoolRequest.
type PoolRequest struct {
	PoolID uint64
}

func (r PoolRequest) Marshal() []byte {
	return appendUint64(nil, 1, r.PoolID)
}

func (r *PoolRequest) Unmarshal(b []byte) error {
	*r = PoolRequest{}
	return decodeMessage(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeUint64(typ, b, &r.PoolID)
		}
		return 0, nil
	})
}

// SpotPriceRequest mirrors osmosis.gamm.v1beta1.QuerySpotPriceRequest.
type SpotPriceRequest struct {
	PoolID          uint64
	BaseAssetDenom  string
	QuoteAssetDenom string
}

func (r SpotPriceRequest) Marshal() []byte {
	b := appendUint64(nil, 1, r.PoolID)
	b = appendString(b, 2, r.BaseAssetDenom)
	return appendString(b, 3, r.QuoteAssetDenom)
}

func (r *SpotPriceRequest) Unmarshal(b []byte) error {
	*r = SpotPriceRequest{}
	return decodeMessage(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeUint64(typ, b, &r.PoolID)
		case 2:
			return consumeString(typ, b, &r.BaseAssetDenom)
		case 3:
			return consumeString(typ, b, &r.QuoteAssetDenom)
		}
		return 0, nil
	})
}

// PriceKey is the fixture key of both spot and time-weighted prices.
func (r SpotPriceRequest) PriceKey() PriceKey {
	return PriceKey{PoolID: r.PoolID, DenomIn: r.BaseAssetDenom, DenomOut: r.QuoteAssetDenom}
}

// ArithmeticTwapRequest mirrors osmosis.twap.v1beta1.ArithmeticTwapRequest.
// EndTime is optional.
type ArithmeticTwapRequest struct {
	PoolID     uint64
	BaseAsset  string
	QuoteAsset string
	StartTime  time.Time
	EndTime    *time.Time
}

func (r ArithmeticTwapRequest) Marshal() []byte {
	b := appendUint64(nil, 1, r.PoolID)
	b = appendString(b, 2, r.BaseAsset)
	b = appendString(b, 3, r.QuoteAsset)
	b = appendTimestamp(b, 4, r.StartTime)
	if r.EndTime != nil {
		b = appendTimestamp(b, 5, *r.EndTime)
	}
	return b
}

func (r *ArithmeticTwapRequest) Unmarshal(b []byte) error {
	*r = ArithmeticTwapRequest{}
	return decodeMessage(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeUint64(typ, b, &r.PoolID)
		case 2:
			return consumeString(typ, b, &r.BaseAsset)
		case 3:
			return consumeString(typ, b, &r.QuoteAsset)
		case 4:
			return consumeTimestamp(typ, b, &r.StartTime)
		case 5:
			var end time.Time
			n, err := consumeTimestamp(typ, b, &end)
			if err != nil {
				return 0, err
			}
			r.EndTime = &end
			return n, nil
		}
		return 0, nil
	})
}

// PriceKey normalizes the base/quote naming onto the shared price key.
func (r ArithmeticTwapRequest) PriceKey() PriceKey {
	return PriceKey{PoolID: r.PoolID, DenomIn: r.BaseAsset, DenomOut: r.QuoteAsset}
}

// SwapAmountInRoute is a single hop of a multi-hop swap.
type SwapAmountInRoute struct {
	PoolID        uint64 `yaml:"pool_id" json:"pool_id"`
	TokenOutDenom string `yaml:"token_out_denom" json:"token_out_denom"`
}

func (r SwapAmountInRoute) marshal() []byte {
	b := appendUint64(nil, 1, r.PoolID)
	return appendString(b, 2, r.TokenOutDenom)
}

func (r *SwapAmountInRoute) unmarshal(b []byte) error {
	return decodeMessage(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeUint64(typ, b, &r.PoolID)
		case 2:
			return consumeString(typ, b, &r.TokenOutDenom)
		}
		return 0, nil
	})
}

// EstimateSwapExactAmountInRequest mirrors
// osmosis.gamm.v1beta1.QuerySwapExactAmountInRequest.
type EstimateSwapExactAmountInRequest struct {
	Sender  string
	PoolID  uint64
	TokenIn string
	Routes  []SwapAmountInRoute
}

func (r EstimateSwapExactAmountInRequest) Marshal() []byte {
	b := appendString(nil, 1, r.Sender)
	b = appendUint64(b, 2, r.PoolID)
	b = appendString(b, 3, r.TokenIn)
	for _, route := range r.Routes {
		b = appendMessage(b, 4, route.marshal())
	}
	return b
}

func (r *EstimateSwapExactAmountInRequest) Unmarshal(b []byte) error {
	*r = EstimateSwapExactAmountInRequest{}
	return decodeMessage(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &r.Sender)
		case 2:
			return consumeUint64(typ, b, &r.PoolID)
		case 3:
			return consumeString(typ, b, &r.TokenIn)
		case 4:
			v, n, err := consumeBytes(typ, b)
			if err != nil {
				return 0, err
			}
			var route SwapAmountInRoute
			if err := route.unmarshal(v); err != nil {
				return 0, err
			}
			r.Routes = append(r.Routes, route)
			return n, nil
		}
		return 0, nil
	})
}
