package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hamed0406/domainwatch/internal/config"
	"github.com/hamed0406/domainwatch/internal/logging"
	"github.com/hamed0406/domainwatch/internal/probe"
	"github.com/hamed0406/domainwatch/internal/report"
	"github.com/hamed0406/domainwatch/internal/scheduler"
	"github.com/hamed0406/domainwatch/internal/stats"
)

var rootCmd = &cobra.Command{
	Use:   "domainwatch <endpoints-file>",
	Short: "Probe HTTP endpoints on a fixed cadence and report per-domain availability",
	Long: `domainwatch probes every endpoint in the given YAML file once per cycle,
classifies each probe (2xx within 500ms counts as up), and prints cumulative
per-domain availability percentages after each cycle until interrupted.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func run(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load() // optional .env, best effort

	cfg := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		return err
	}
	defer logger.Sync()

	endpoints, err := config.LoadEndpoints(args[0])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	checker := probe.NewHTTPChecker(cfg.Timeout)
	defer checker.Close()

	runner := scheduler.NewRunner(
		logger,
		endpoints,
		checker,
		stats.New(),
		report.NewConsole(os.Stdout),
		cfg.Interval,
		cfg.Timeout,
		cfg.Concurrency,
	)

	logger.Info("monitor_start",
		zap.Int("endpoints", len(endpoints)),
		zap.Duration("interval", cfg.Interval),
		zap.Duration("probe_timeout", cfg.Timeout),
	)
	runner.Run(ctx)
	logger.Info("monitor_exit")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
