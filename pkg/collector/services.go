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

// ServicesCollector reports service counts by state and the failed services.
type ServicesCollector struct {
	Provider telemetry.Provider
}

// Collect implements Collector.
func (c *ServicesCollector) Collect(ctx context.Context) (*report.Category, error) {
	slog.Debug("collecting service states")

	info, err := c.Provider.Services(ctx)
	if err != nil {
		return nil, err
	}

	return report.NewCategory(CategoryServices).
		SetInt("Running services", len(info.Running)).
		SetInt("Stopped services", len(info.Stopped)).
		Set("Failed services", report.Strings(info.Failed)).
		Build(), nil
}
