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
	"sort"

	psnet "github.com/shirou/gopsutil/v4/net"

	"github.com/NVIDIA/hostreport/pkg/errors"
	"github.com/NVIDIA/hostreport/pkg/telemetry"
)

// Network reads interfaces, host addresses and the default gateway.
func (p *Provider) Network(ctx context.Context) (*telemetry.NetworkInfo, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	ifaces, err := psnet.InterfacesWithContext(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSourceUnavailable, "failed to list network interfaces", err)
	}

	info := &telemetry.NetworkInfo{
		Adapters: make([]telemetry.Adapter, 0, len(ifaces)),
	}
	for _, iface := range ifaces {
		a := telemetry.Adapter{
			Name:  iface.Name,
			MAC:   iface.HardwareAddr,
			MTU:   iface.MTU,
			Flags: iface.Flags,
		}
		for _, addr := range iface.Addrs {
			a.Addresses = append(a.Addresses, addr.Addr)
		}
		info.Adapters = append(info.Adapters, a)
	}

	hostname, err := p.hostname()
	info.Hostname = hostname
	info.Fail(telemetry.FieldHostname, unavailable("hostname", err))

	if hostname != "" {
		ips, lerr := net.DefaultResolver.LookupIPAddr(ctx, hostname)
		if lerr != nil {
			info.Fail(telemetry.FieldAddresses, unavailable("host addresses", lerr))
		} else {
			info.AllIPs, info.PrimaryIP = hostAddresses(ips)
		}
	}

	gw, err := p.defaultGateway(ctx)
	info.DefaultGateway = gw
	info.Fail(telemetry.FieldGateway, err)

	return info, nil
}

// hostAddresses returns the resolved addresses sorted, and the first
// non-loopback IPv4 address as primary, falling back to the first address.
func hostAddresses(ips []net.IPAddr) ([]string, string) {
	all := make([]string, 0, len(ips))
	primary := ""
	for _, ip := range ips {
		all = append(all, ip.IP.String())
		if primary == "" && ip.IP.To4() != nil && !ip.IP.IsLoopback() {
			primary = ip.IP.String()
		}
	}
	sort.Strings(all)
	if primary == "" && len(ips) > 0 {
		primary = ips[0].IP.String()
	}
	return all, primary
}
