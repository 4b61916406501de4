package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/alucardeht/fasttags/internal/daemon"
	"github.com/alucardeht/fasttags/internal/urlgen"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Generate and watch the project route file",
}

var routesGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Scan the views package and write the route file",
	RunE:  runRoutesGenerate,
}

var routesWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the watcher daemon in the foreground",
	Long: `Run the daemon in the foreground: the views directory is watched
and the route file regenerated on every Go source change. A control
socket answers status, generate and shutdown requests.`,
	RunE: runRoutesWatch,
}

var routesStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the running daemon's status",
	RunE:  runRoutesStatus,
}

var routesStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running daemon",
	RunE:  runRoutesStop,
}

func init() {
	routesCmd.AddCommand(routesGenerateCmd, routesWatchCmd, routesStatusCmd, routesStopCmd)
	rootCmd.AddCommand(routesCmd)
}

// fillViewsImport derives the views import path from the project's
// go.mod when the config does not name one.
func fillViewsImport() error {
	if cfg.Generate.ViewsImport != "" {
		return nil
	}
	module, err := urlgen.ModulePath(cfg.ProjectDir)
	if err != nil {
		return fmt.Errorf("derive views import path: %w", err)
	}
	cfg.Generate.ViewsImport = module + "/views"
	return nil
}

func runRoutesGenerate(cmd *cobra.Command, args []string) error {
	if err := fillViewsImport(); err != nil {
		return err
	}

	// A running daemon owns the route file; ask it to regenerate rather
	// than racing its watcher.
	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()
	if client, err := daemon.Dial(ctx, cfg.SocketPath); err == nil {
		defer client.Close()
		result, err := client.Generate(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Daemon wrote %s (%d routes)\n", cfg.Generate.Output, result.Routes)
		return nil
	}

	views, err := urlgen.New(cfg.Generate).Generate()
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%d routes)\n", cfg.Generate.Output, len(views))
	for _, v := range views {
		fmt.Printf("  %-24s %s\n", v.Path, v.Name)
	}
	return nil
}

func runRoutesWatch(cmd *cobra.Command, args []string) error {
	if err := fillViewsImport(); err != nil {
		return err
	}

	d, err := daemon.New(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		d.Shutdown()
	}()

	return d.Run(ctx)
}

func runRoutesStatus(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()

	client, err := daemon.Dial(ctx, cfg.SocketPath)
	if err != nil {
		return fmt.Errorf("daemon not running (%s): %w", cfg.SocketPath, err)
	}
	defer client.Close()

	status, err := client.Status(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Socket:        %s\n", status.Socket)
	fmt.Printf("Views dir:     %s\n", status.ViewsDir)
	fmt.Printf("Output:        %s\n", status.Output)
	fmt.Printf("Uptime:        %s\n", status.Uptime)
	fmt.Printf("Routes:        %d\n", status.Routes)
	if !status.LastGenerate.IsZero() {
		fmt.Printf("Last generate: %s\n", status.LastGenerate.Format(time.RFC3339))
	}
	return nil
}

func runRoutesStop(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()

	client, err := daemon.Dial(ctx, cfg.SocketPath)
	if err != nil {
		return fmt.Errorf("daemon not running (%s): %w", cfg.SocketPath, err)
	}
	defer client.Close()

	if err := client.Shutdown(ctx); err != nil {
		return err
	}
	fmt.Println("Daemon stopped")
	return nil
}
