// Command fasttags-daemon runs the route-generation daemon standalone,
// outside the CLI's foreground watch mode.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alucardeht/fasttags/internal/config"
	"github.com/alucardeht/fasttags/internal/daemon"
	"github.com/alucardeht/fasttags/internal/logger"
	"github.com/alucardeht/fasttags/internal/urlgen"
)

func main() {
	cfg := config.Load()

	logCfg := logger.DefaultConfig()
	logCfg.Level = logger.ParseLevel(cfg.LogLevel)
	logger.Init(logCfg)

	if cfg.Generate.ViewsImport == "" {
		module, err := urlgen.ModulePath(cfg.ProjectDir)
		if err != nil {
			logger.Error("cannot derive views import path", "error", err)
			os.Exit(1)
		}
		cfg.Generate.ViewsImport = module + "/views"
	}

	d, err := daemon.New(cfg)
	if err != nil {
		logger.Error("failed to create daemon", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		d.Shutdown()
	}()

	if err := d.Run(ctx); err != nil {
		logger.Error("daemon exited with error", "error", err)
		os.Exit(1)
	}
}
