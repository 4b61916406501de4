// Command fasttags is the project CLI: it scaffolds new projects,
// generates and watches route files, and converts HTML into tag
// expressions.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/alucardeht/fasttags/internal/config"
	"github.com/alucardeht/fasttags/internal/logger"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "fasttags",
	Short:         "Build HTML in Go and keep route files generated",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	cfg = config.Load()

	logCfg := logger.DefaultConfig()
	logCfg.Level = logger.ParseLevel(cfg.LogLevel)
	logger.Init(logCfg)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
