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
	"math"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	psnet "github.com/shirou/gopsutil/v4/net"

	"github.com/NVIDIA/hostreport/pkg/errors"
	"github.com/NVIDIA/hostreport/pkg/telemetry"
)

// Performance samples CPU utilization over the configured interval and reads
// memory, swap, network and load counters.
func (p *Provider) Performance(ctx context.Context) (*telemetry.PerformanceInfo, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSourceUnavailable, "failed to read memory usage", err)
	}

	info := &telemetry.PerformanceInfo{
		MemoryPercent: round2(vm.UsedPercent),
	}

	perCPU, err := cpu.PercentWithContext(ctx, p.cpuSample, true)
	if err != nil {
		info.Fail(telemetry.FieldCPUUsage, unavailable("cpu usage", err))
	} else {
		info.PerCPUPercent = make([]float64, len(perCPU))
		var sum float64
		for i, v := range perCPU {
			info.PerCPUPercent[i] = round2(v)
			sum += v
		}
		if len(perCPU) > 0 {
			info.CPUPercent = round2(sum / float64(len(perCPU)))
		}
	}

	swap, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		info.Fail(telemetry.FieldSwap, unavailable("swap usage", err))
	} else {
		info.SwapPercent = round2(swap.UsedPercent)
	}

	counters, err := psnet.IOCountersWithContext(ctx, false)
	switch {
	case err != nil:
		info.Fail(telemetry.FieldNetIO, unavailable("network counters", err))
	case len(counters) == 0:
		info.Fail(telemetry.FieldNetIO, errors.New(errors.ErrCodeSourceUnavailable, "no network counters reported"))
	default:
		c := counters[0]
		info.NetIO = map[string]uint64{
			"bytes_sent":   c.BytesSent,
			"bytes_recv":   c.BytesRecv,
			"packets_sent": c.PacketsSent,
			"packets_recv": c.PacketsRecv,
			"errin":        c.Errin,
			"errout":       c.Errout,
			"dropin":       c.Dropin,
			"dropout":      c.Dropout,
		}
	}

	boot, err := host.BootTimeWithContext(ctx)
	if err != nil {
		info.Fail(telemetry.FieldBootTime, unavailable("boot time", err))
	} else {
		info.BootTime = time.Unix(int64(boot), 0).UTC()
	}

	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		info.Fail(telemetry.FieldLoad, unavailable("load average", err))
	} else {
		info.LoadAverage = []float64{round2(avg.Load1), round2(avg.Load5), round2(avg.Load15)}
	}

	return info, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
