package cmd

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/mars-protocol/rover/testutil/osmosis"
)

const (
	FlagStartTime = "start-time"
	FlagEndTime   = "end-time"
	FlagRoute     = "route"
	FlagSender    = "sender"
	FlagTokenIn   = "token-in"
)

func poolCmd(sim *simulator) *cobra.Command {
	return &cobra.Command{
		Use:   "pool [pool-id]",
		Short: "Query a pool snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}
			return sim.run(cmd, osmosis.PoolPath, osmosis.PoolRequest{PoolID: poolID}.Marshal())
		},
	}
}

func spotPriceCmd(sim *simulator) *cobra.Command {
	return &cobra.Command{
		Use:   "spot-price [pool-id] [base-denom] [quote-denom]",
		Short: "Query the spot price of a pool",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}
			req := osmosis.SpotPriceRequest{PoolID: poolID, BaseAssetDenom: args[1], QuoteAssetDenom: args[2]}
			return sim.run(cmd, osmosis.SpotPricePath, req.Marshal())
		},
	}
}

func twapCmd(sim *simulator) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "twap [pool-id] [base-denom] [quote-denom]",
		Short: "Query the arithmetic time-weighted price of a pool",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}
			req := osmosis.ArithmeticTwapRequest{PoolID: poolID, BaseAsset: args[1], QuoteAsset: args[2]}

			start, _ := cmd.Flags().GetString(FlagStartTime)
			if start != "" {
				if req.StartTime, err = time.Parse(time.RFC3339, start); err != nil {
					return fmt.Errorf("invalid %s: %w", FlagStartTime, err)
				}
			}
			end, _ := cmd.Flags().GetString(FlagEndTime)
			if end != "" {
				endTime, err := time.Parse(time.RFC3339, end)
				if err != nil {
					return fmt.Errorf("invalid %s: %w", FlagEndTime, err)
				}
				req.EndTime = &endTime
			}
			return sim.run(cmd, osmosis.ArithmeticTwapPath, req.Marshal())
		},
	}
	cmd.Flags().String(FlagStartTime, "", "RFC3339 start of the window")
	cmd.Flags().String(FlagEndTime, "", "RFC3339 end of the window, left out of the request when unset")
	return cmd
}

func estimateSwapCmd(sim *simulator) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "estimate-swap",
		Short:   "Estimate the output of a multi-hop swap",
		Example: "roversim estimate-swap --route 1:uatom --route 7:uusd",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			hops, _ := cmd.Flags().GetStringArray(FlagRoute)
			if len(hops) == 0 {
				return fmt.Errorf("at least one --%s is required", FlagRoute)
			}
			req := osmosis.EstimateSwapExactAmountInRequest{}
			req.Sender, _ = cmd.Flags().GetString(FlagSender)
			req.TokenIn, _ = cmd.Flags().GetString(FlagTokenIn)
			for _, hop := range hops {
				route, err := parseRoute(hop)
				if err != nil {
					return err
				}
				req.Routes = append(req.Routes, route)
			}
			req.PoolID = req.Routes[0].PoolID
			return sim.run(cmd, osmosis.EstimateSwapExactAmountInPath, req.Marshal())
		},
	}
	cmd.Flags().StringArray(FlagRoute, nil, "swap hop as pool-id:token-out-denom, repeatable and ordered")
	cmd.Flags().String(FlagSender, "", "sender of the swap")
	cmd.Flags().String(FlagTokenIn, "", "coin offered, e.g. 100uosmo")
	return cmd
}

func dispatchCmd(sim *simulator) *cobra.Command {
	return &cobra.Command{
		Use:   "dispatch [path] [hex-payload]",
		Short: "Dispatch a raw protobuf encoded request",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var payload []byte
			if len(args) == 2 {
				var err error
				if payload, err = hex.DecodeString(args[1]); err != nil {
					return fmt.Errorf("invalid payload: %w", err)
				}
			}
			return sim.run(cmd, args[0], payload)
		},
	}
}

// run dispatches one request and prints the response JSON. A missing fixture
// is a failed command like any other error.
func (s *simulator) run(cmd *cobra.Command, path string, payload []byte) error {
	s.logger.Debug("dispatching query", "path", path, "payload_len", len(payload))
	env, err := s.querier.Dispatch(path, payload)
	if err != nil {
		return err
	}
	if env.Err != nil {
		return env.Err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, env.Data, "", "  "); err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out.String())
	return err
}

func parsePoolID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid pool id %q: %w", raw, err)
	}
	return id, nil
}

func parseRoute(raw string) (osmosis.SwapAmountInRoute, error) {
	pool, denom, ok := strings.Cut(raw, ":")
	if !ok || denom == "" {
		return osmosis.SwapAmountInRoute{}, fmt.Errorf("invalid route %q, want pool-id:denom", raw)
	}
	poolID, err := parsePoolID(pool)
	if err != nil {
		return osmosis.SwapAmountInRoute{}, err
	}
	return osmosis.SwapAmountInRoute{PoolID: poolID, TokenOutDenom: denom}, nil
}
