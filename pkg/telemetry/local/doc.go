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

// Package local implements telemetry.Provider for the machine the process
// runs on.
//
// Portable queries use gopsutil. Linux adds systemd over D-Bus for services
// and security units, zcalusic/sysinfo for DMI firmware and storage facts,
// and sysfs/procfs files read through pkg/telemetry/file. Windows adds the
// service control manager, the registry and WMI. A query that has no source
// on the current platform fails with NOT_SUPPORTED; one that needs root or
// an elevated token fails with PERMISSION_DENIED.
//
// Usage:
//
//	p := local.New(local.WithCPUSampleInterval(500 * time.Millisecond))
//	hw, err := p.Hardware(ctx)
//	if err != nil {
//	    // the whole domain failed
//	}
//	if err := hw.Err(telemetry.FieldBattery); err != nil {
//	    // only the battery lookup failed
//	}
package local
