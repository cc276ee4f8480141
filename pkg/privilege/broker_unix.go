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

//go:build unix

package privilege

import (
	"context"
	stderrors "errors"
	"log/slog"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/NVIDIA/hostreport/pkg/defaults"
)

// runFunc runs a command attached to the terminal and returns its exit code.
// A non-nil error means the command could not be started.
type runFunc func(ctx context.Context, name string, args ...string) (int, error)

type unixBroker struct {
	args []string

	geteuid    func() int
	getenv     func(string) string
	lookPath   func(string) (string, error)
	isTerminal func() bool
	executable func() (string, error)
	run        runFunc
}

func newPlatformBroker(args []string) Broker {
	return &unixBroker{
		args:       args,
		geteuid:    unix.Geteuid,
		getenv:     os.Getenv,
		lookPath:   exec.LookPath,
		isTerminal: func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
		executable: os.Executable,
		run:        runAttached,
	}
}

// CurrentLevel returns Elevated when the effective user is root.
func (b *unixBroker) CurrentLevel() Level {
	if b.geteuid() == 0 {
		return Elevated
	}
	return Standard
}

// RequestElevatedRelaunch validates sudo credentials on the terminal, then
// runs the same executable and arguments through sudo and waits for it.
func (b *unixBroker) RequestElevatedRelaunch(ctx context.Context) (*Relaunch, error) {
	if b.getenv(RelaunchMarkerEnv) != "" {
		return nil, declined("instance was already relaunched")
	}

	sudo, err := b.lookPath("sudo")
	if err != nil {
		return nil, declinedWithCause("sudo not found on PATH", err)
	}

	if !b.isTerminal() {
		return nil, declined("no interactive terminal for the credential prompt")
	}

	exe, err := b.executable()
	if err != nil {
		return nil, declinedWithCause("cannot resolve executable path", err)
	}

	promptCtx, cancel := context.WithTimeout(ctx, defaults.ElevationPromptTimeout)
	defer cancel()

	code, err := b.run(promptCtx, sudo, "-v")
	if err != nil {
		return nil, declinedWithCause("credential validation could not start", err)
	}
	if code != 0 {
		return nil, declined("credential validation failed")
	}

	args := append([]string{"env", RelaunchMarkerEnv + "=1", exe}, b.args...)
	slog.Debug("relaunching with sudo", "executable", exe, "args", len(b.args))

	code, err = b.run(ctx, sudo, args...)
	if err != nil {
		return nil, declinedWithCause("elevated instance could not start", err)
	}

	return &Relaunch{ExitCode: code}, nil
}

func runAttached(ctx context.Context, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
