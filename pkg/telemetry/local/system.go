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
	"net"
	"os"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/host"

	"github.com/NVIDIA/hostreport/pkg/errors"
	"github.com/NVIDIA/hostreport/pkg/telemetry"
)

// System reads operating system and host identity.
func (p *Provider) System(ctx context.Context) (*telemetry.SystemInfo, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	hi, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSourceUnavailable, "failed to read host info", err)
	}

	info := &telemetry.SystemInfo{
		OS:              hi.OS,
		Platform:        hi.Platform,
		PlatformFamily:  hi.PlatformFamily,
		PlatformVersion: hi.PlatformVersion,
		KernelVersion:   hi.KernelVersion,
		KernelArch:      hi.KernelArch,
		HostID:          hi.HostID,
		Hostname:        hi.Hostname,
		BootTime:        time.Unix(int64(hi.BootTime), 0).UTC(),
		Uptime:          time.Duration(hi.Uptime) * time.Second,
	}

	if hi.VirtualizationSystem != "" {
		info.Virtualization = hi.VirtualizationSystem + " (" + hi.VirtualizationRole + ")"
	} else {
		info.Virtualization = "none"
	}

	if info.Hostname == "" {
		name, herr := p.hostname()
		info.Hostname = name
		info.Fail(telemetry.FieldHostname, unavailable("hostname", herr))
	}

	domain, err := lookupFQDN(ctx, info.Hostname)
	info.Domain = domain
	info.Fail(telemetry.FieldDomain, err)

	wd, err := os.Getwd()
	info.WorkingDir = wd
	info.Fail(telemetry.FieldWorkingDir, unavailable("working directory", err))

	info.Language = languageTag(localeName(p.getenv))

	vendor, model, err := p.systemVendor()
	info.Manufacturer, info.Model = vendor, model
	info.Fail(telemetry.FieldVendor, err)

	release, err := p.releaseName()
	info.ReleaseName = release
	info.Fail(telemetry.FieldRelease, err)

	inst, err := p.installation()
	info.Fail(telemetry.FieldInstall, err)
	if err == nil {
		info.InstallDate = inst.Date
		info.SystemDirectory = inst.Directory
		info.SystemDrive = inst.Drive
	}

	return info, nil
}

// lookupFQDN resolves the canonical name of hostname. A name that does not
// resolve is reported as its own FQDN.
func lookupFQDN(ctx context.Context, hostname string) (string, error) {
	if hostname == "" {
		return "", errors.New(errors.ErrCodeSourceUnavailable, "hostname is empty")
	}
	if strings.Contains(hostname, ".") {
		return hostname, nil
	}

	cname, err := net.DefaultResolver.LookupCNAME(ctx, hostname)
	if err != nil || cname == "" {
		return hostname, nil
	}
	return strings.TrimSuffix(cname, "."), nil
}
