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

// NetworkCollector reports adapters, host addresses and the default gateway.
type NetworkCollector struct {
	Provider telemetry.Provider
}

// Collect implements Collector.
func (c *NetworkCollector) Collect(ctx context.Context) (*report.Category, error) {
	slog.Debug("collecting network information")

	info, err := c.Provider.Network(ctx)
	if err != nil {
		return nil, err
	}

	adapters := make(report.List, 0, len(info.Adapters))
	for _, a := range info.Adapters {
		adapters = append(adapters, report.Map{
			"Name":        report.Str(a.Name),
			"MAC address": textValue(a.MAC),
			"Addresses":   report.Strings(a.Addresses),
			"MTU":         report.Int(a.MTU),
			"Flags":       report.Strings(a.Flags),
		})
	}

	addrErr := info.Err(telemetry.FieldAddresses)

	return report.NewCategory(CategoryNetwork).
		SetInt("Adapter count", len(info.Adapters)).
		Set("Adapters", adapters).
		SetResult("Primary IP", textValue(info.PrimaryIP), addrErr).
		SetResult("All IPs", report.Strings(info.AllIPs), addrErr).
		SetResult("Default gateway", textValue(info.DefaultGateway), info.Err(telemetry.FieldGateway)).
		SetResult("Hostname", textValue(info.Hostname), info.Err(telemetry.FieldHostname)).
		Build(), nil
}
