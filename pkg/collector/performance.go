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

// PerformanceCollector reports a single utilization sample.
type PerformanceCollector struct {
	Provider telemetry.Provider
}

// Collect implements Collector.
func (c *PerformanceCollector) Collect(ctx context.Context) (*report.Category, error) {
	slog.Debug("collecting performance sample")

	info, err := c.Provider.Performance(ctx)
	if err != nil {
		return nil, err
	}

	cpuErr := info.Err(telemetry.FieldCPUUsage)

	return report.NewCategory(CategoryPerformance).
		SetResult("CPU usage", percentValue(info.CPUPercent), cpuErr).
		SetResult("Per-core usage", report.Floats(info.PerCPUPercent), cpuErr).
		Set("Memory usage", percentValue(info.MemoryPercent)).
		SetResult("Swap usage", percentValue(info.SwapPercent), info.Err(telemetry.FieldSwap)).
		SetResult("Network IO", report.ToValue(info.NetIO), info.Err(telemetry.FieldNetIO)).
		SetResult("Boot time", timeValue(info.BootTime), info.Err(telemetry.FieldBootTime)).
		SetResult("Load average", report.Floats(info.LoadAverage), info.Err(telemetry.FieldLoad)).
		Build(), nil
}
