/*
Copyright 2025 The Job-Spooler Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package runner wires the spooling engine into an interactive command-line session: flag parsing, logger and metrics
// setup, and the command loop that feeds the `controller.SpoolController` and renders its reports.
//
// The runner is a collaborator of the engine, not part of it; every scheduling decision happens behind the controller.
package runner

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
	uberzap "go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/atharv894/Job-Spooler-code/pkg/spool/controller"
	"github.com/atharv894/Job-Spooler-code/pkg/spool/metrics"
	"github.com/atharv894/Job-Spooler-code/pkg/spool/registry"
	logutil "github.com/atharv894/Job-Spooler-code/pkg/spool/util/logging"
	"github.com/atharv894/Job-Spooler-code/version"
)

// NewRunner creates a runner reading commands from stdin and writing to stdout.
func NewRunner() *Runner {
	return &Runner{
		in:  os.Stdin,
		out: os.Stdout,
	}
}

// Runner drives one interactive spooling session.
type Runner struct {
	in  io.Reader
	out io.Writer
}

// WithStreams overrides the runner's input and output streams. Used by tests to script a session.
func (r *Runner) WithStreams(in io.Reader, out io.Writer) *Runner {
	r.in = in
	r.out = out
	return r
}

// Run parses flags, initializes logging and metrics, and blocks in the command loop until `quit` or end of input.
func (r *Runner) Run(ctx context.Context) error {
	fs := pflag.NewFlagSet("spoolsim", pflag.ContinueOnError)
	capacity := fs.Int("capacity", 0, "Upper bound on pending jobs. 0 uses the default.")
	logVerbosity := fs.Int("v", logutil.DEFAULT, "number for the log level verbosity")
	metricsPort := fs.Int("metrics-port", 0, "The metrics port. 0 disables the metrics endpoint.")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	logger := initLogging(*logVerbosity)
	setupLog := logger.WithName("setup")
	setupLog.Info("spoolsim build", "commit-sha", version.CommitSHA, "build-ref", version.BuildRef)

	promRegistry := prometheus.NewRegistry()
	metrics.Register(promRegistry)
	if *metricsPort > 0 {
		serveMetrics(setupLog, promRegistry, *metricsPort)
	}

	spool, err := controller.NewSpoolController(registry.Config{Capacity: *capacity}, logger)
	if err != nil {
		setupLog.Error(err, "Failed to initialize spool controller")
		return err
	}

	return r.commandLoop(ctx, spool)
}

// initLogging builds the process logger: a development-mode zap core behind the logr API, with `--v` mapped onto zap
// levels the same way controller-runtime maps its verbosity flag.
func initLogging(verbosity int) logr.Logger {
	cfg := uberzap.NewDevelopmentConfig()
	cfg.Level = uberzap.NewAtomicLevelAt(zapcore.Level(int8(-1 * verbosity)))
	zapLog, err := cfg.Build(uberzap.AddCaller())
	if err != nil {
		// NewDevelopmentConfig only fails on invalid output paths, which we never set.
		panic(fmt.Sprintf("failed to build logger: %v", err))
	}
	return zapr.NewLogger(zapLog)
}

// serveMetrics exposes the Prometheus registry on the given port, in the background.
func serveMetrics(logger logr.Logger, reg *prometheus.Registry, port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	go func() {
		if err := http.ListenAndServe(fmt.Sprintf(":%d", port), mux); err != nil {
			logger.Error(err, "Metrics endpoint terminated", "port", port)
		}
	}()
	logger.Info("Metrics endpoint serving", "port", port)
}
