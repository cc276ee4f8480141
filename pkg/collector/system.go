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

// SystemCollector reports the operating system and host identity.
type SystemCollector struct {
	Provider telemetry.Provider
}

// Collect implements Collector.
func (c *SystemCollector) Collect(ctx context.Context) (*report.Category, error) {
	slog.Debug("collecting system information")

	info, err := c.Provider.System(ctx)
	if err != nil {
		return nil, err
	}

	installErr := info.Err(telemetry.FieldInstall)

	osName := info.Platform
	if osName == "" {
		osName = info.OS
	}

	return report.NewCategory(CategorySystem).
		Set("OS", textValue(osName)).
		Set("OS version", textValue(info.PlatformVersion)).
		Set("OS family", textValue(info.PlatformFamily)).
		SetResult("OS release", textValue(info.ReleaseName), info.Err(telemetry.FieldRelease)).
		Set("Kernel", textValue(info.KernelVersion)).
		Set("Architecture", textValue(info.KernelArch)).
		Set("Boot time", timeValue(info.BootTime)).
		Set("Uptime", uptimeValue(info.Uptime)).
		SetResult("Hostname", textValue(info.Hostname), info.Err(telemetry.FieldHostname)).
		SetResult("Domain name", textValue(info.Domain), info.Err(telemetry.FieldDomain)).
		SetResult("Working directory", textValue(info.WorkingDir), info.Err(telemetry.FieldWorkingDir)).
		Set("Language", textValue(info.Language)).
		SetResult("Manufacturer", textValue(info.Manufacturer), info.Err(telemetry.FieldVendor)).
		SetResult("Model", textValue(info.Model), info.Err(telemetry.FieldVendor)).
		Set("Host ID", textValue(info.HostID)).
		Set("Virtualization", textValue(info.Virtualization)).
		SetResult("Install date", timeValue(info.InstallDate), installErr).
		SetResult("System directory", textValue(info.SystemDirectory), installErr).
		SetResult("System drive", textValue(info.SystemDrive), installErr).
		Build(), nil
}
