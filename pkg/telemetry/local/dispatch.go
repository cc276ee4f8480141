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

	"github.com/NVIDIA/hostreport/pkg/telemetry"
)

// Services lists services by state.
func (p *Provider) Services(ctx context.Context) (*telemetry.ServicesInfo, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	return p.services(ctx)
}

// Security reads firewall, anti-malware, disk encryption and platform
// hardening state.
func (p *Provider) Security(ctx context.Context) (*telemetry.SecurityInfo, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	return p.security(ctx)
}

// Firmware reads BIOS, board, product and chassis identity. It fails with
// PERMISSION_DENIED unless the process is elevated.
func (p *Provider) Firmware(ctx context.Context) (*telemetry.FirmwareInfo, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	return p.firmware(ctx)
}
