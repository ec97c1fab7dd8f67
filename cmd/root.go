package cmd

import (
	"fmt"
	"os"

	"rune-forge/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "rune-forge",
	Short: "Rune Forge Service",
	Long: `Rune Forge manages rune-crafted equipment for game save profiles.
It persists craft records compactly in bounded storage slots and
re-synthesizes the enchanted items deterministically on load.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the debug level gives readable timestamps
		// for a CLI tool instead of the production epoch encoding.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
