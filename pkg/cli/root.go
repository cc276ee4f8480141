// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/hostreport/pkg/aggregator"
	"github.com/NVIDIA/hostreport/pkg/collector"
	"github.com/NVIDIA/hostreport/pkg/config"
	"github.com/NVIDIA/hostreport/pkg/defaults"
	"github.com/NVIDIA/hostreport/pkg/errors"
	"github.com/NVIDIA/hostreport/pkg/logging"
	"github.com/NVIDIA/hostreport/pkg/privilege"
	"github.com/NVIDIA/hostreport/pkg/render"
	"github.com/NVIDIA/hostreport/pkg/telemetry"
	"github.com/NVIDIA/hostreport/pkg/telemetry/local"
)

const (
	name           = "hostreport"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// app holds the collaborators of one invocation.
type app struct {
	broker   privilege.Broker
	config   *config.Config
	provider telemetry.Provider
	stdout   io.Writer
	stderr   io.Writer
}

// Execute runs the hostreport command and exits the process.
// This is called by main.main().
func Execute() {
	// SIGINT/SIGTERM cancel outstanding collectors; the report is still printed.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cfg := config.Load()
	logging.SetDefaultStructuredLoggerWithLevel(name, version, cfg.LogLevel)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", cfg.LogLevel)

	a := &app{
		broker: privilege.NewBroker(os.Args[1:]),
		config: cfg,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	code := a.execute(ctx, os.Args)
	stop()
	os.Exit(code)
}

// execute runs the root command with args and returns the process exit code.
func (a *app) execute(ctx context.Context, args []string) int {
	err := a.rootCmd().Run(ctx, args)
	if err == nil {
		return 0
	}

	var ec cli.ExitCoder
	if stderrors.As(err, &ec) {
		if msg := ec.Error(); msg != "" {
			fmt.Fprintln(a.stderr, msg)
		}
		return ec.ExitCode()
	}

	fmt.Fprintln(a.stderr, "Error:", err)
	return 1
}

func (a *app) rootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Print a categorized report of this host",
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Description: `Collects operating system, hardware, network, security, performance,
services, user, environment, runtime and firmware information and prints it
as one report.

Fields that need administrative rights are marked Unavailable unless the
command runs elevated. When started without them, hostreport first asks to
relaunch itself elevated.`,
		HideHelpCommand: true,
		Writer:          a.stdout,
		ErrWriter:       a.stderr,
		// Exit codes are mapped by execute; never let the library exit.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Action: func(ctx context.Context, _ *cli.Command) error {
			return a.run(ctx)
		},
	}
}

// run decides the privilege level, builds the report and prints it.
func (a *app) run(ctx context.Context) error {
	cfg := a.config
	if cfg == nil {
		cfg = config.Default()
	}

	level := a.broker.CurrentLevel()
	slog.Debug("privilege checked", slog.String("level", level.String()))

	if !level.IsElevated() && !cfg.NoElevate {
		relaunch, err := a.broker.RequestElevatedRelaunch(ctx)
		if err == nil {
			return a.handedOff(relaunch)
		}
		// Every broker failure means the relaunch did not happen; carry on.
		slog.Info("elevation declined", slog.String("reason", err.Error()))
		fmt.Fprintf(a.stderr, "Running without elevated privilege (%s); privileged fields will be unavailable.\n",
			declineReason(err))
	}

	provider := a.provider
	if provider == nil {
		provider = local.New(local.WithCPUSampleInterval(cfg.CPUSampleInterval))
	}

	var opts []collector.Option
	if len(cfg.Environment.Include) > 0 {
		opts = append(opts, collector.WithEnvironmentInclude(cfg.Environment.Include))
	}
	if cfg.Environment.Exclude != nil {
		opts = append(opts, collector.WithEnvironmentExclude(cfg.Environment.Exclude))
	}

	registry, err := collector.NewDefaultRegistry(collector.NewDefaultFactory(provider, opts...))
	if err != nil {
		return errors.Wrap(errors.ErrCodeFatalStartup, "failed to register collectors", err)
	}

	agg := &aggregator.Aggregator{
		Registry: registry,
		Timeout:  cfg.CollectorTimeout,
		Version:  version,
	}

	rctx, cancel := context.WithTimeout(ctx, defaults.ReportTimeout)
	defer cancel()

	rep, err := agg.BuildReport(rctx, level)
	if err != nil {
		return err
	}

	// Print what was gathered even after an interrupt.
	return render.NewWriter(a.stdout).Write(context.WithoutCancel(ctx), rep)
}

// handedOff finishes this process after an elevated instance was started.
func (a *app) handedOff(r *privilege.Relaunch) error {
	if r == nil || r.Detached {
		slog.Info("elevated instance started in a separate window")
		fmt.Fprintln(a.stderr, "Continuing in an elevated window.")
		return nil
	}
	slog.Debug("elevated instance finished", slog.Int("exitCode", r.ExitCode))
	if r.ExitCode != 0 {
		return cli.Exit("", r.ExitCode)
	}
	return nil
}

// declineReason returns the broker's message without the wrapped sentinel.
func declineReason(err error) string {
	var se *errors.StructuredError
	if stderrors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return err.Error()
}
