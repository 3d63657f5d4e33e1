package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-hexes/internal/metrics"
	"github.com/vovakirdan/tui-hexes/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagMetricsAddr string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the hexes SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the pack and level menu.
Results are stored per-server and tagged with the SSH user name.

The listen address and host key default to the server section of the
config file. With --metrics (or server.metrics_addr) Prometheus metrics
are served on /metrics.

Examples:
  hexes serve                           # Listen on the configured host and port
  hexes serve --ssh :2222               # Listen on port 2222
  hexes serve --host-key ./my_host_key  # Use specific host key
  hexes serve --metrics :9090           # Also expose metrics

Users can connect with:
  ssh localhost -p 2222`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagMetricsAddr, "metrics", "", "Metrics address (host:port)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	e, err := loadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "hexes",
		Level:           log.GetLevel(),
	})
	if logger.GetLevel() > log.InfoLevel {
		logger.SetLevel(log.InfoLevel)
	}

	server := e.config.Server
	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
	}
	if cfg.Address == "" {
		cfg.Address = net.JoinHostPort(server.Host, strconv.Itoa(server.Port))
	}
	if cfg.HostKeyPath == "" {
		cfg.HostKeyPath = server.HostKeyPath
	}
	metricsAddr := flagMetricsAddr
	if metricsAddr == "" {
		metricsAddr = server.MetricsAddr
	}

	m := metrics.New(prometheus.NewRegistry())
	srv, err := tui.NewSSHServer(cfg, tui.SSHDeps{
		Catalog: e.catalog,
		Config:  e.config,
		Metrics: m,
		Logger:  logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting hexes SSH server on %s\n", srv.Addr())
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.ListenAndServe(gctx)
	})
	if metricsAddr != "" {
		g.Go(func() error {
			return m.Serve(gctx, metricsAddr, logger)
		})
	}

	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
