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

package telemetry

import "context"

// Provider queries the host for one telemetry domain at a time.
// Implementations must honor ctx cancellation on blocking calls.
type Provider interface {
	System(ctx context.Context) (*SystemInfo, error)
	Hardware(ctx context.Context) (*HardwareInfo, error)
	HardwareDetails(ctx context.Context) (*HardwareDetails, error)
	Network(ctx context.Context) (*NetworkInfo, error)
	Security(ctx context.Context) (*SecurityInfo, error)
	Performance(ctx context.Context) (*PerformanceInfo, error)
	Services(ctx context.Context) (*ServicesInfo, error)
	User(ctx context.Context) (*UserInfo, error)
	Environment(ctx context.Context) (*EnvironmentInfo, error)
	Runtime(ctx context.Context) (*RuntimeInfo, error)
	Firmware(ctx context.Context) (*FirmwareInfo, error)
}
