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

// EnvironmentCollector reports search path, locale, time zone and the
// process environment filtered by Include and Exclude patterns.
type EnvironmentCollector struct {
	Provider telemetry.Provider
	Include  []string
	Exclude  []string
}

// Collect implements Collector.
func (c *EnvironmentCollector) Collect(ctx context.Context) (*report.Category, error) {
	slog.Debug("collecting environment information")

	info, err := c.Provider.Environment(ctx)
	if err != nil {
		return nil, err
	}

	vars := info.Variables
	if len(c.Include) > 0 {
		vars = report.FilterIn(vars, c.Include)
	}
	if len(c.Exclude) > 0 {
		vars = report.FilterOut(vars, c.Exclude)
	}

	return report.NewCategory(CategoryEnvironment).
		Set("Path entries", report.Strings(info.PathEntries)).
		SetResult("Locale", textValue(info.Locale), info.Err(telemetry.FieldLocale)).
		Set("Language tag", textValue(info.LanguageTag)).
		Set("Encoding", textValue(info.Encoding)).
		Set("Time zone", textValue(info.TimeZone)).
		Set("UTC offset", offsetValue(info.UTCOffset)).
		SetBool("Daylight saving", info.DST).
		Set("Variables", report.ToValue(vars)).
		Build(), nil
}
