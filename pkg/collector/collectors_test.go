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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/hostreport/pkg/errors"
	"github.com/NVIDIA/hostreport/pkg/report"
	"github.com/NVIDIA/hostreport/pkg/telemetry"
	"github.com/NVIDIA/hostreport/pkg/telemetry/telemetrytest"
)

func collect(t *testing.T, c Collector) *report.Category {
	t.Helper()
	cat, err := c.Collect(context.Background())
	require.NoError(t, err)
	require.NotNil(t, cat)
	require.NoError(t, cat.Validate())
	return cat
}

func TestCollectors_HealthyHost(t *testing.T) {
	f := NewDefaultFactory(telemetrytest.NewHost())

	tests := []struct {
		collector Collector
		name      string
		keys      []string
		absent    []string
	}{
		{f.CreateSystemCollector(), CategorySystem, []string{"OS", "Kernel", "Uptime", "Hostname", "OS release"}, []string{"Install date", "System directory", "System drive"}},
		{f.CreateHardwareCollector(), CategoryHardware, []string{"Processor", "Memory total", "Partitions", "GPU", "Battery", "Hardware details"}, nil},
		{f.CreateNetworkCollector(), CategoryNetwork, []string{"Adapter count", "Adapters", "Primary IP", "Default gateway"}, nil},
		{f.CreateSecurityCollector(), CategorySecurity, []string{"Firewall", "Antivirus count", "Disk encryption", "Secure boot", "ASLR"}, nil},
		{f.CreatePerformanceCollector(), CategoryPerformance, []string{"CPU usage", "Per-core usage", "Network IO", "Load average"}, nil},
		{f.CreateServicesCollector(), CategoryServices, []string{"Running services", "Stopped services", "Failed services"}, nil},
		{f.CreateUserCollector(), CategoryUser, []string{"Username", "Home directory", "Logged-in sessions"}, nil},
		{f.CreateEnvironmentCollector(), CategoryEnvironment, []string{"Path entries", "Locale", "UTC offset", "Variables"}, nil},
		{f.CreateRuntimeCollector(), CategoryRuntime, []string{"Go version", "OS/Arch", "Module"}, nil},
		{f.CreateFirmwareCollector(), CategoryFirmware, []string{"BIOS vendor", "Board serial", "Product UUID", "Disk serial"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := collect(t, tt.collector)
			assert.Equal(t, tt.name, cat.Name)
			for _, k := range tt.keys {
				assert.True(t, cat.Has(k), "missing field %q", k)
			}
			assert.ElementsMatch(t, tt.absent, cat.UnavailableKeys())
		})
	}
}

func TestCollectors_WholeDomainFailure(t *testing.T) {
	p := telemetrytest.NewHost()
	p.Errors = map[string]error{
		"Services": errors.New(errors.ErrCodeSourceUnavailable, "systemd is not reachable"),
	}

	_, err := NewDefaultFactory(p).CreateServicesCollector().Collect(context.Background())
	assert.True(t, errors.IsCode(err, errors.ErrCodeSourceUnavailable))
}

func TestHardwareCollector_DetailsRequireElevation(t *testing.T) {
	p := telemetrytest.NewHost()
	p.Errors = map[string]error{
		"HardwareDetails": errors.New(errors.ErrCodePermissionDenied, "hardware inventory requires elevated privilege"),
	}

	cat := collect(t, NewDefaultFactory(p).CreateHardwareCollector())
	assert.Equal(t, report.NewUnavailable(report.ReasonRequiresElevation), cat.Get("Hardware details"))
	assert.Equal(t, []string{"Hardware details"}, cat.UnavailableKeys())
}

func TestHardwareCollector_PartialFailures(t *testing.T) {
	p := telemetrytest.NewHost()
	p.HardwareInfo.Batteries = nil
	p.HardwareInfo.Fail(telemetry.FieldBattery, errors.New(errors.ErrCodeSourceUnavailable, "no battery present"))
	p.HardwareInfo.Fail(telemetry.FieldGPU, errors.New(errors.ErrCodeNotSupported, "GPU enumeration is not available on this platform"))

	cat := collect(t, NewDefaultFactory(p).CreateHardwareCollector())
	assert.Equal(t, report.NewUnavailable("no battery present"), cat.Get("Battery"))
	assert.Equal(t, []string{"Battery", "GPU"}, cat.UnavailableKeys())
	assert.Equal(t, report.Str("16 GiB"), cat.Get("Memory total"))
}

func TestHardwareCollector_DetailsValue(t *testing.T) {
	cat := collect(t, NewDefaultFactory(telemetrytest.NewHost()).CreateHardwareCollector())

	details, ok := cat.Get("Hardware details").(report.Map)
	require.True(t, ok)
	assert.Equal(t, []string{"Baseboard", "Disks", "Memory modules"}, details.Keys())

	board, ok := details["Baseboard"].(report.Map)
	require.True(t, ok)
	assert.Equal(t, report.Str("0DXP1F"), board["Product"])
}

func TestEnvironmentCollector_FiltersVariables(t *testing.T) {
	f := NewDefaultFactory(telemetrytest.NewHost())
	cat := collect(t, f.CreateEnvironmentCollector())

	vars, ok := cat.Get("Variables").(report.Map)
	require.True(t, ok)
	assert.Equal(t, []string{"HOME", "LANG"}, vars.Keys())

	f = NewDefaultFactory(telemetrytest.NewHost(), WithEnvironmentInclude([]string{"LANG"}))
	vars, ok = collect(t, f.CreateEnvironmentCollector()).Get("Variables").(report.Map)
	require.True(t, ok)
	assert.Equal(t, []string{"LANG"}, vars.Keys())
}

func TestSystemCollector_EmptyValues(t *testing.T) {
	p := telemetrytest.NewHost()
	p.SystemInfo.Manufacturer = ""
	p.SystemInfo.Fail(telemetry.FieldDomain, errors.New(errors.ErrCodeSourceUnavailable, "lookup failed"))

	cat := collect(t, NewDefaultFactory(p).CreateSystemCollector())
	assert.Equal(t, report.NewUnavailable("not reported"), cat.Get("Manufacturer"))
	assert.Equal(t, report.NewUnavailable("lookup failed"), cat.Get("Domain name"))
	assert.Equal(t, report.Str("1d 2h 5m"), cat.Get("Uptime"))
}

func TestSystemCollector_Installation(t *testing.T) {
	p := telemetrytest.NewHost()

	cat := collect(t, NewDefaultFactory(p).CreateSystemCollector())
	assert.Equal(t, report.NewUnavailable("installation details is not available on this platform"), cat.Get("System drive"))

	p.SystemInfo.Partial = nil
	p.SystemInfo.InstallDate = time.Date(2024, 3, 12, 9, 30, 0, 0, time.UTC)
	p.SystemInfo.SystemDirectory = `C:\Windows\system32`
	p.SystemInfo.SystemDrive = "C:"

	cat = collect(t, NewDefaultFactory(p).CreateSystemCollector())
	assert.Equal(t, report.Str("2024-03-12T09:30:00Z"), cat.Get("Install date"))
	assert.Equal(t, report.Str(`C:\Windows\system32`), cat.Get("System directory"))
	assert.Equal(t, report.Str("C:"), cat.Get("System drive"))
	assert.Empty(t, cat.UnavailableKeys())
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, report.Str("1.5 KiB"), bytesValue(1536))
	assert.Equal(t, report.Str("12.5%"), percentValue(12.5))
	assert.Equal(t, report.Str("0%"), percentValue(0))
	assert.True(t, report.IsUnavailable(timeValue(time.Time{})))
	assert.Equal(t, report.Str("2026-10-01T08:00:00Z"), timeValue(time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)))
	assert.Equal(t, report.Str("0h 45m"), uptimeValue(45*time.Minute))
	assert.True(t, report.IsUnavailable(uptimeValue(0)))
	assert.Equal(t, report.Str("+05:30"), offsetValue(5*time.Hour+30*time.Minute))
	assert.Equal(t, report.Str("-08:00"), offsetValue(-8*time.Hour))
	assert.Equal(t, report.Str("+00:00"), offsetValue(0))
}

func TestBatteryValue(t *testing.T) {
	assert.Equal(t, report.Str("87% (Discharging)"), batteryValue([]telemetry.Battery{{Name: "BAT0", Percent: 87, Status: "Discharging"}}))
	assert.Equal(t, report.List{report.Str("BAT0: 50%"), report.Str("BAT1: 100% (Full)")},
		batteryValue([]telemetry.Battery{{Name: "BAT0", Percent: 50}, {Name: "BAT1", Percent: 100, Status: "Full"}}))
	assert.True(t, report.IsUnavailable(batteryValue(nil)))
}
