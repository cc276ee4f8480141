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

package collector

import (
	"context"
	"log/slog"

	"github.com/NVIDIA/hostreport/pkg/report"
	"github.com/NVIDIA/hostreport/pkg/telemetry"
)

// RuntimeCollector reports the running binary and its Go runtime.
type RuntimeCollector struct {
	Provider telemetry.Provider
}

// Collect implements Collector.
func (c *RuntimeCollector) Collect(ctx context.Context) (*report.Category, error) {
	slog.Debug("collecting runtime information")

	info, err := c.Provider.Runtime(ctx)
	if err != nil {
		return nil, err
	}

	buildErr := info.Err(telemetry.FieldBuildInfo)

	return report.NewCategory(CategoryRuntime).
		SetResult("Executable", textValue(info.Executable), info.Err(telemetry.FieldExecutable)).
		Set("Go version", textValue(info.GoVersion)).
		Set("Compiler", textValue(info.Compiler)).
		Set("OS/Arch", textValue(info.OS+"/"+info.Arch)).
		SetInt("CPUs", info.CPUs).
		SetInt("GOMAXPROCS", info.MaxProcs).
		SetResult("Module", textValue(info.Module), buildErr).
		SetResult("Module version", textValue(info.ModuleVersion), buildErr).
		Build(), nil
}
