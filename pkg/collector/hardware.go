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
	"strconv"

	"github.com/NVIDIA/hostreport/pkg/report"
	"github.com/NVIDIA/hostreport/pkg/telemetry"
)

// HardwareCollector reports processor, memory, storage and peripherals. The
// "Hardware details" field needs elevated privilege and degrades on its own.
type HardwareCollector struct {
	Provider telemetry.Provider
}

// Collect implements Collector.
func (c *HardwareCollector) Collect(ctx context.Context) (*report.Category, error) {
	slog.Debug("collecting hardware information")

	info, err := c.Provider.Hardware(ctx)
	if err != nil {
		return nil, err
	}

	coresErr := info.Err(telemetry.FieldCores)
	diskErr := info.Err(telemetry.FieldDisk)

	b := report.NewCategory(CategoryHardware).
		SetResult("Processor", textValue(info.CPUModel), info.Err(telemetry.FieldCPU)).
		Set("Processor architecture", textValue(info.CPUArch)).
		SetResult("Physical cores", report.Int(info.PhysicalCores), coresErr).
		SetResult("Logical processors", report.Int(info.LogicalCores), coresErr).
		Set("Memory total", bytesValue(info.MemoryTotal)).
		Set("Memory available", bytesValue(info.MemoryAvailable)).
		SetResult("Disk total", bytesValue(info.DiskTotal), diskErr).
		SetResult("Disk free", bytesValue(info.DiskFree), diskErr).
		SetResult("Partitions", partitionsValue(info.Partitions), info.Err(telemetry.FieldPartitions)).
		SetResult("GPU", report.Strings(info.GPUs), info.Err(telemetry.FieldGPU)).
		SetResult("Processes", report.Int(info.Processes), info.Err(telemetry.FieldProcesses)).
		SetResult("Battery", batteryValue(info.Batteries), info.Err(telemetry.FieldBattery))

	details, err := c.Provider.HardwareDetails(ctx)
	if err != nil {
		b.SetUnavailable("Hardware details", report.ReasonFor(err))
	} else {
		b.Set("Hardware details", detailsValue(details))
	}

	return b.Build(), nil
}

func partitionsValue(parts []telemetry.Partition) report.Value {
	out := make(report.List, 0, len(parts))
	for _, p := range parts {
		out = append(out, report.Map{
			"Device":      report.Str(p.Device),
			"Filesystem":  report.Str(p.Filesystem),
			"Mount point": report.Str(p.Mountpoint),
		})
	}
	return out
}

func batteryValue(batteries []telemetry.Battery) report.Value {
	describe := func(b telemetry.Battery) string {
		s := strconv.FormatFloat(b.Percent, 'f', -1, 64) + "%"
		if b.Status != "" {
			s += " (" + b.Status + ")"
		}
		return s
	}

	switch len(batteries) {
	case 0:
		return report.NewUnavailable("no battery present")
	case 1:
		return report.Str(describe(batteries[0]))
	default:
		out := make(report.List, len(batteries))
		for i, b := range batteries {
			out[i] = report.Str(b.Name + ": " + describe(b))
		}
		return out
	}
}

func detailsValue(d *telemetry.HardwareDetails) report.Value {
	modules := make(report.List, 0, len(d.Memory))
	for _, m := range d.Memory {
		entry := report.Map{
			"Type":  textValue(m.Type),
			"Size":  bytesValue(m.Size),
			"Speed": report.Str(strconv.FormatUint(uint64(m.Speed), 10) + " MT/s"),
		}
		if m.Manufacturer != "" {
			entry["Manufacturer"] = report.Str(m.Manufacturer)
		}
		if m.Serial != "" {
			entry["Serial"] = report.Str(m.Serial)
		}
		modules = append(modules, entry)
	}

	disks := make(report.List, 0, len(d.Disks))
	for _, disk := range d.Disks {
		disks = append(disks, report.Map{
			"Model":  textValue(disk.Model),
			"Serial": textValue(disk.Serial),
			"Size":   bytesValue(disk.Size),
			"Driver": textValue(disk.Driver),
		})
	}

	out := report.Map{
		"Memory modules": modules,
		"Disks":          disks,
		"Baseboard": report.Map{
			"Manufacturer": textValue(d.Board.Manufacturer),
			"Product":      textValue(d.Board.Product),
		},
	}
	if err := d.Err(telemetry.FieldMemoryModules); err != nil {
		out["Memory modules"] = report.NewUnavailable(report.ReasonFor(err))
	}
	if err := d.Err(telemetry.FieldDisks); err != nil {
		out["Disks"] = report.NewUnavailable(report.ReasonFor(err))
	}
	if err := d.Err(telemetry.FieldBoard); err != nil {
		out["Baseboard"] = report.NewUnavailable(report.ReasonFor(err))
	}
	return out
}
