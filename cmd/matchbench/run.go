// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/multicut/counter"
	"github.com/katalvlaran/multicut/experiment"
)

type runFlags struct {
	config      string
	out         string
	parallel    int
	timeout     time.Duration
	metricsAddr string
}

func newRunCmd(root *rootFlags) *cobra.Command {
	flags := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every instance of a YAML experiment config and write CSV results",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExperiment(cmd, root, flags)
		},
	}
	cmd.Flags().StringVar(&flags.config, "config", "", "experiment YAML file (required)")
	cmd.Flags().StringVar(&flags.out, "out", "", "CSV output file (default stdout)")
	cmd.Flags().IntVar(&flags.parallel, "parallel", 0, "override config parallelism")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", 0, "override per-run timeout")
	cmd.Flags().StringVar(&flags.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runExperiment(cmd *cobra.Command, root *rootFlags, flags *runFlags) error {
	log, err := root.logger()
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	cfg, err := experiment.LoadConfig(flags.config)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("parallel") {
		cfg.Parallelism = flags.parallel
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = flags.timeout
	}

	opts := []experiment.RunnerOption{experiment.WithLogger(log)}
	if flags.metricsAddr != "" {
		reg := prometheus.NewRegistry()
		sink, err := counter.NewPrometheusSink(reg)
		if err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
		opts = append(opts, experiment.WithSink(sink))
		srv := serveMetrics(flags.metricsAddr, reg, log)
		defer func() { _ = srv.Close() }()
	}

	runner, err := experiment.NewRunner(cfg, opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	log.Info("experiment started",
		zap.String("config", flags.config),
		zap.Int("instances", len(cfg.Instances)),
		zap.Int("parallelism", cfg.Parallelism),
		zap.Duration("timeout", cfg.Timeout),
	)
	results, err := runner.Run(ctx)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	var w io.Writer = cmd.OutOrStdout()
	if flags.out != "" {
		f, err := os.Create(flags.out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}
	if err = experiment.WriteCSV(w, results); err != nil {
		return err
	}
	log.Info("experiment finished", zap.Int("runs", len(results)))

	return nil
}

func serveMetrics(addr string, reg *prometheus.Registry, log *zap.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server", zap.Error(err))
		}
	}()
	log.Info("serving metrics", zap.String("addr", addr))

	return srv
}
