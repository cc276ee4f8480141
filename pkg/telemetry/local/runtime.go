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

package local

import (
	"context"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/NVIDIA/hostreport/pkg/errors"
	"github.com/NVIDIA/hostreport/pkg/telemetry"
)

// Runtime describes the running binary and the Go runtime it was built with.
func (p *Provider) Runtime(ctx context.Context) (*telemetry.RuntimeInfo, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	info := &telemetry.RuntimeInfo{
		GoVersion: runtime.Version(),
		Compiler:  runtime.Compiler,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		CPUs:      runtime.NumCPU(),
		MaxProcs:  runtime.GOMAXPROCS(0),
	}

	exe, err := os.Executable()
	info.Executable = exe
	info.Fail(telemetry.FieldExecutable, unavailable("executable path", err))

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		info.Fail(telemetry.FieldBuildInfo, errors.New(errors.ErrCodeNotSupported, "binary has no build information"))
		return info, nil
	}
	info.Module = bi.Main.Path
	info.ModuleVersion = bi.Main.Version

	return info, nil
}
