package main

import (
	"os"

	"cosmossdk.io/log"

	"github.com/mars-protocol/rover/cmd/roversim/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		log.NewLogger(rootCmd.OutOrStderr()).Error("failure when running roversim", "err", err)
		os.Exit(1)
	}
}
