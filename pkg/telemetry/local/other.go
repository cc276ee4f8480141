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

//go:build !linux && !windows

package local

import (
	"context"

	"github.com/NVIDIA/hostreport/pkg/errors"
	"github.com/NVIDIA/hostreport/pkg/telemetry"
)

func rootVolume() string {
	return "/"
}

func (p *Provider) systemVendor() (string, string, error) {
	return "", "", notSupported("system vendor")
}

func (p *Provider) releaseName() (string, error) {
	return "", notSupported("release name")
}

func (p *Provider) installation() (*telemetry.Installation, error) {
	return nil, notSupported("installation details")
}

func (p *Provider) gpus(_ context.Context) ([]string, error) {
	return nil, notSupported("GPU enumeration")
}

func (p *Provider) batteries(_ context.Context) ([]telemetry.Battery, error) {
	return nil, notSupported("battery status")
}

func (p *Provider) defaultGateway(_ context.Context) (string, error) {
	return "", notSupported("default gateway")
}

func (p *Provider) terminal() (string, error) {
	if tty := p.getenv("SSH_TTY"); tty != "" {
		return tty, nil
	}
	return "", errors.New(errors.ErrCodeSourceUnavailable, "terminal is unknown")
}

func (p *Provider) systemLocale() (string, error) {
	return "", notSupported("system locale")
}

func (p *Provider) hardwareDetails(_ context.Context) (*telemetry.HardwareDetails, error) {
	if err := requireRoot(p, "hardware inventory"); err != nil {
		return nil, err
	}
	return nil, notSupported("hardware inventory")
}

func (p *Provider) services(_ context.Context) (*telemetry.ServicesInfo, error) {
	return nil, notSupported("service enumeration")
}

func (p *Provider) security(_ context.Context) (*telemetry.SecurityInfo, error) {
	return nil, notSupported("security status")
}

func (p *Provider) firmware(_ context.Context) (*telemetry.FirmwareInfo, error) {
	if err := requireRoot(p, "firmware identity"); err != nil {
		return nil, err
	}
	return nil, notSupported("firmware identity")
}
