package cmd

import (
	"fmt"
	"os"
	"strings"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mars-protocol/rover/testutil/osmosis"
)

const (
	EnvPrefix = "ROVERSIM"

	FlagConfig   = "config"
	FlagFixtures = "fixtures"
	FlagLogLevel = "log-level"
)

// simulator is shared by every subcommand once the root pre-run has loaded
// the fixtures.
type simulator struct {
	v       *viper.Viper
	logger  log.Logger
	querier *osmosis.Querier
}

// NewRootCmd creates the roversim command tree. Settings resolve from flags,
// then ROVERSIM_* environment variables, then the optional config file.
func NewRootCmd() *cobra.Command {
	sim := &simulator{v: viper.New(), logger: log.NewNopLogger()}

	rootCmd := &cobra.Command{
		Use:           "roversim",
		Short:         "Serve canned Osmosis queries the way the Rover test harness does",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return sim.init(cmd)
		},
	}

	rootCmd.PersistentFlags().String(FlagConfig, "", "path to a config file")
	rootCmd.PersistentFlags().String(FlagFixtures, "", "path to a YAML fixtures file")
	rootCmd.PersistentFlags().String(FlagLogLevel, "info", "log level, e.g. info or debug")

	rootCmd.AddCommand(
		poolCmd(sim),
		spotPriceCmd(sim),
		twapCmd(sim),
		estimateSwapCmd(sim),
		dispatchCmd(sim),
	)
	return rootCmd
}

func (s *simulator) init(cmd *cobra.Command) error {
	s.v.SetEnvPrefix(EnvPrefix)
	s.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	s.v.AutomaticEnv()
	if err := s.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if path := s.v.GetString(FlagConfig); path != "" {
		s.v.SetConfigFile(path)
		if err := s.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	filter, err := log.ParseLogLevel(s.v.GetString(FlagLogLevel))
	if err != nil {
		return err
	}
	s.logger = log.NewLogger(cmd.ErrOrStderr(), log.FilterOption(filter)).With("module", "roversim")

	s.querier = osmosis.NewQuerier()
	path := s.v.GetString(FlagFixtures)
	if path == "" {
		s.logger.Debug("no fixtures configured")
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := s.querier.LoadFixtures(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	s.logger.Info("loaded fixtures", "file", path)
	return nil
}
