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

// UserCollector reports the account running hostreport and logged-in sessions.
type UserCollector struct {
	Provider telemetry.Provider
}

// Collect implements Collector.
func (c *UserCollector) Collect(ctx context.Context) (*report.Category, error) {
	slog.Debug("collecting user information")

	info, err := c.Provider.User(ctx)
	if err != nil {
		return nil, err
	}

	sessions := make(report.List, 0, len(info.Sessions))
	for _, s := range info.Sessions {
		entry := report.Map{
			"User":     report.Str(s.User),
			"Terminal": textValue(s.Terminal),
			"Started":  timeValue(s.Started),
		}
		if s.Host != "" {
			entry["Host"] = report.Str(s.Host)
		}
		sessions = append(sessions, entry)
	}

	return report.NewCategory(CategoryUser).
		Set("Username", textValue(info.Username)).
		Set("UID", textValue(info.UID)).
		Set("GID", textValue(info.GID)).
		SetResult("Home directory", textValue(info.HomeDir), info.Err(telemetry.FieldHome)).
		SetResult("Login terminal", textValue(info.Terminal), info.Err(telemetry.FieldTerminal)).
		SetResult("Logged-in sessions", sessions, info.Err(telemetry.FieldSessions)).
		Build(), nil
}
