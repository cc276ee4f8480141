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

//go:build windows

package privilege

import (
	"context"
	stderrors "errors"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sys/windows"
)

type windowsBroker struct {
	args []string
}

func newPlatformBroker(args []string) Broker {
	return &windowsBroker{args: args}
}

// CurrentLevel returns Elevated when the process token is elevated.
func (b *windowsBroker) CurrentLevel() Level {
	if windows.GetCurrentProcessToken().IsElevated() {
		return Elevated
	}
	return Standard
}

// RequestElevatedRelaunch asks the shell to start the executable with the
// "runas" verb. The new instance gets its own console and is not waited for.
func (b *windowsBroker) RequestElevatedRelaunch(_ context.Context) (*Relaunch, error) {
	if os.Getenv(RelaunchMarkerEnv) != "" {
		return nil, declined("instance was already relaunched")
	}

	exe, err := os.Executable()
	if err != nil {
		return nil, declinedWithCause("cannot resolve executable path", err)
	}

	escaped := make([]string, len(b.args))
	for i, a := range b.args {
		escaped[i] = windows.EscapeArg(a)
	}

	verb, err := windows.UTF16PtrFromString("runas")
	if err != nil {
		return nil, declinedWithCause("invalid verb", err)
	}
	file, err := windows.UTF16PtrFromString(exe)
	if err != nil {
		return nil, declinedWithCause("invalid executable path", err)
	}
	params, err := windows.UTF16PtrFromString(strings.Join(escaped, " "))
	if err != nil {
		return nil, declinedWithCause("invalid arguments", err)
	}
	var cwd *uint16
	if wd, wdErr := os.Getwd(); wdErr == nil {
		cwd, _ = windows.UTF16PtrFromString(wd)
	}

	err = windows.ShellExecute(0, verb, file, params, cwd, windows.SW_NORMAL)
	if stderrors.Is(err, windows.ERROR_CANCELLED) {
		return nil, declined("user declined the elevation prompt")
	}
	if err != nil {
		return nil, declinedWithCause("elevation request failed", err)
	}

	slog.Debug("elevated instance started", "executable", exe)
	return &Relaunch{Detached: true}, nil
}
