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

// Package telemetrytest provides a programmable telemetry.Provider for tests.
package telemetrytest

import (
	"context"
	"sync"
	"time"

	"github.com/NVIDIA/hostreport/pkg/errors"
	"github.com/NVIDIA/hostreport/pkg/telemetry"
)

// Provider returns canned results. A nil result with a nil error is reported
// as NOT_SUPPORTED. Calls are counted per query name.
type Provider struct {
	SystemInfo      *telemetry.SystemInfo
	HardwareInfo    *telemetry.HardwareInfo
	Details         *telemetry.HardwareDetails
	NetworkInfo     *telemetry.NetworkInfo
	SecurityInfo    *telemetry.SecurityInfo
	PerformanceInfo *telemetry.PerformanceInfo
	ServicesInfo    *telemetry.ServicesInfo
	UserInfo        *telemetry.UserInfo
	EnvironmentInfo *telemetry.EnvironmentInfo
	RuntimeInfo     *telemetry.RuntimeInfo
	FirmwareInfo    *telemetry.FirmwareInfo

	// Errors maps a query name ("System", "Firmware", ...) to its error.
	Errors map[string]error

	mu    sync.Mutex
	calls map[string]int
}

var _ telemetry.Provider = (*Provider)(nil)

// Calls returns how often query was invoked.
func (p *Provider) Calls(query string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[query]
}

func answer[T any](ctx context.Context, p *Provider, query string, v *T) (*T, error) {
	p.mu.Lock()
	if p.calls == nil {
		p.calls = make(map[string]int)
	}
	p.calls[query]++
	p.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := p.Errors[query]; err != nil {
		return nil, err
	}
	if v == nil {
		return nil, errors.New(errors.ErrCodeNotSupported, query+" is not available on this platform")
	}
	return v, nil
}

func (p *Provider) System(ctx context.Context) (*telemetry.SystemInfo, error) {
	return answer(ctx, p, "System", p.SystemInfo)
}

func (p *Provider) Hardware(ctx context.Context) (*telemetry.HardwareInfo, error) {
	return answer(ctx, p, "Hardware", p.HardwareInfo)
}

func (p *Provider) HardwareDetails(ctx context.Context) (*telemetry.HardwareDetails, error) {
	return answer(ctx, p, "HardwareDetails", p.Details)
}

func (p *Provider) Network(ctx context.Context) (*telemetry.NetworkInfo, error) {
	return answer(ctx, p, "Network", p.NetworkInfo)
}

func (p *Provider) Security(ctx context.Context) (*telemetry.SecurityInfo, error) {
	return answer(ctx, p, "Security", p.SecurityInfo)
}

func (p *Provider) Performance(ctx context.Context) (*telemetry.PerformanceInfo, error) {
	return answer(ctx, p, "Performance", p.PerformanceInfo)
}

func (p *Provider) Services(ctx context.Context) (*telemetry.ServicesInfo, error) {
	return answer(ctx, p, "Services", p.ServicesInfo)
}

func (p *Provider) User(ctx context.Context) (*telemetry.UserInfo, error) {
	return answer(ctx, p, "User", p.UserInfo)
}

func (p *Provider) Environment(ctx context.Context) (*telemetry.EnvironmentInfo, error) {
	return answer(ctx, p, "Environment", p.EnvironmentInfo)
}

func (p *Provider) Runtime(ctx context.Context) (*telemetry.RuntimeInfo, error) {
	return answer(ctx, p, "Runtime", p.RuntimeInfo)
}

func (p *Provider) Firmware(ctx context.Context) (*telemetry.FirmwareInfo, error) {
	return answer(ctx, p, "Firmware", p.FirmwareInfo)
}

// NewHost returns a Provider describing a small Linux workstation where every
// query succeeds. Installation details are NOT_SUPPORTED, as on a real Linux
// host.
func NewHost() *Provider {
	boot := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	p := &Provider{
		SystemInfo: &telemetry.SystemInfo{
			OS:              "linux",
			Platform:        "ubuntu",
			PlatformFamily:  "debian",
			PlatformVersion: "22.04",
			KernelVersion:   "6.5.0-27-generic",
			KernelArch:      "x86_64",
			Hostname:        "ws-01",
			Domain:          "ws-01.example.internal",
			WorkingDir:      "/home/dev",
			Language:        "en-US",
			Manufacturer:    "Dell Inc.",
			Model:           "XPS 13 9310",
			HostID:          "3f1c2b0e-0000-4000-8000-000000000001",
			Virtualization:  "none",
			ReleaseName:     "Ubuntu 22.04.4 LTS",
			BootTime:        boot,
			Uptime:          26*time.Hour + 5*time.Minute,
		},
		HardwareInfo: &telemetry.HardwareInfo{
			CPUModel:        "11th Gen Intel(R) Core(TM) i7-1185G7 @ 3.00GHz",
			CPUArch:         "amd64",
			PhysicalCores:   4,
			LogicalCores:    8,
			MemoryTotal:     16 << 30,
			MemoryAvailable: 9 << 30,
			DiskPath:        "/",
			DiskTotal:       512 << 30,
			DiskFree:        200 << 30,
			Partitions: []telemetry.Partition{
				{Device: "/dev/nvme0n1p2", Filesystem: "ext4", Mountpoint: "/"},
				{Device: "/dev/nvme0n1p1", Filesystem: "vfat", Mountpoint: "/boot/efi"},
			},
			GPUs:      []string{"Intel 0x9a49 (i915)"},
			Processes: 312,
			Batteries: []telemetry.Battery{{Name: "BAT0", Percent: 87, Status: "Discharging"}},
		},
		Details: &telemetry.HardwareDetails{
			Memory: []telemetry.MemoryModule{{Type: "LPDDR4", Size: 16 << 30, Speed: 4267}},
			Disks:  []telemetry.Disk{{Name: "nvme0n1", Model: "Samsung PM9A1", Serial: "S6", Driver: "nvme", Size: 512_000_000_000}},
			Board:  telemetry.Board{Manufacturer: "Dell Inc.", Product: "0DXP1F"},
		},
		NetworkInfo: &telemetry.NetworkInfo{
			Adapters: []telemetry.Adapter{
				{Name: "lo", Addresses: []string{"127.0.0.1/8"}, MTU: 65536, Flags: []string{"up", "loopback"}},
				{Name: "wlp0s20f3", MAC: "aa:bb:cc:dd:ee:ff", Addresses: []string{"192.168.0.23/24"}, MTU: 1500, Flags: []string{"up", "broadcast"}},
			},
			PrimaryIP:      "192.168.0.23",
			AllIPs:         []string{"192.168.0.23"},
			DefaultGateway: "192.168.0.1 (wlp0s20f3)",
			Hostname:       "ws-01",
		},
		SecurityInfo: &telemetry.SecurityInfo{
			Firewall:         "Enabled (ufw)",
			Antivirus:        []telemetry.Product{},
			EncryptedVolumes: []string{"luks-root"},
			AccessControl:    "AppArmor",
			SecureBoot:       "Enabled",
			ASLR:             "Full",
		},
		PerformanceInfo: &telemetry.PerformanceInfo{
			CPUPercent:    12.5,
			PerCPUPercent: []float64{10, 15, 12.5, 12.5},
			MemoryPercent: 43.75,
			SwapPercent:   0,
			NetIO:         map[string]uint64{"bytes_recv": 2048, "bytes_sent": 1024},
			BootTime:      boot,
			LoadAverage:   []float64{0.52, 0.61, 0.7},
		},
		ServicesInfo: &telemetry.ServicesInfo{
			Running: []string{"cron", "sshd"},
			Stopped: []string{"cups"},
			Failed:  []string{},
		},
		UserInfo: &telemetry.UserInfo{
			Username: "dev",
			UID:      "1000",
			GID:      "1000",
			HomeDir:  "/home/dev",
			Terminal: "/dev/pts/0",
			Sessions: []telemetry.Session{{User: "dev", Terminal: "pts/0", Started: boot}},
		},
		EnvironmentInfo: &telemetry.EnvironmentInfo{
			PathEntries: []string{"/usr/local/bin", "/usr/bin"},
			Locale:      "en_US.UTF-8",
			LanguageTag: "en-US",
			Encoding:    "UTF-8",
			TimeZone:    "UTC",
			Variables: map[string]string{
				"HOME":     "/home/dev",
				"LANG":     "en_US.UTF-8",
				"GH_TOKEN": "ghp_secret",
			},
		},
		RuntimeInfo: &telemetry.RuntimeInfo{
			Executable:    "/usr/local/bin/hostreport",
			GoVersion:     "go1.25.0",
			Compiler:      "gc",
			OS:            "linux",
			Arch:          "amd64",
			CPUs:          8,
			MaxProcs:      8,
			Module:        "github.com/NVIDIA/hostreport",
			ModuleVersion: "(devel)",
		},
		FirmwareInfo: &telemetry.FirmwareInfo{
			BIOSVendor:      "Dell Inc.",
			BIOSVersion:     "3.21.0",
			BIOSReleaseDate: "01/15/2024",
			BoardVendor:     "Dell Inc.",
			BoardName:       "0DXP1F",
			BoardSerial:     "/ABC123/CNCMK0012345/",
			ProductName:     "XPS 13 9310",
			ProductSerial:   "ABC123",
			ProductUUID:     "4c4c4544-0000-1000-8000-000000000000",
			ChassisSerial:   "ABC123",
			DiskSerial:      "S6",
		},
	}
	p.SystemInfo.Fail(telemetry.FieldInstall, errors.New(errors.ErrCodeNotSupported, "installation details is not available on this platform"))
	return p
}
