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

package local

import (
	"context"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"

	"github.com/NVIDIA/hostreport/pkg/errors"
	"github.com/NVIDIA/hostreport/pkg/telemetry"
)

// Hardware reads processor, memory, storage and peripheral information that
// does not need elevated privilege.
func (p *Provider) Hardware(ctx context.Context) (*telemetry.HardwareInfo, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSourceUnavailable, "failed to read memory", err)
	}

	info := &telemetry.HardwareInfo{
		CPUArch:         runtime.GOARCH,
		MemoryTotal:     vm.Total,
		MemoryAvailable: vm.Available,
		DiskPath:        rootVolume(),
	}

	cpus, err := cpu.InfoWithContext(ctx)
	switch {
	case err != nil:
		info.Fail(telemetry.FieldCPU, unavailable("processor info", err))
	case len(cpus) == 0:
		info.Fail(telemetry.FieldCPU, errors.New(errors.ErrCodeSourceUnavailable, "no processor reported"))
	default:
		info.CPUModel = cpus[0].ModelName
	}

	physical, perr := cpu.CountsWithContext(ctx, false)
	logical, lerr := cpu.CountsWithContext(ctx, true)
	info.PhysicalCores, info.LogicalCores = physical, logical
	if perr != nil {
		info.Fail(telemetry.FieldCores, unavailable("core count", perr))
	} else {
		info.Fail(telemetry.FieldCores, unavailable("logical processor count", lerr))
	}

	usage, err := disk.UsageWithContext(ctx, info.DiskPath)
	if err != nil {
		info.Fail(telemetry.FieldDisk, unavailable("disk usage", err))
	} else {
		info.DiskTotal, info.DiskFree = usage.Total, usage.Free
	}

	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		info.Fail(telemetry.FieldPartitions, unavailable("partitions", err))
	}
	for _, part := range parts {
		info.Partitions = append(info.Partitions, telemetry.Partition{
			Device:     part.Device,
			Filesystem: part.Fstype,
			Mountpoint: part.Mountpoint,
		})
	}

	pids, err := process.PidsWithContext(ctx)
	info.Processes = len(pids)
	info.Fail(telemetry.FieldProcesses, unavailable("process list", err))

	gpus, err := p.gpus(ctx)
	info.GPUs = gpus
	info.Fail(telemetry.FieldGPU, err)

	batteries, err := p.batteries(ctx)
	info.Batteries = batteries
	info.Fail(telemetry.FieldBattery, err)

	return info, nil
}

// HardwareDetails reads memory modules, physical disks and the mainboard.
func (p *Provider) HardwareDetails(ctx context.Context) (*telemetry.HardwareDetails, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	return p.hardwareDetails(ctx)
}
