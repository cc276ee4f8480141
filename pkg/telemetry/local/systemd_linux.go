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

//go:build linux

package local

import (
	"context"
	"path"
	"sort"
	"strings"

	"github.com/coreos/go-systemd/v22/dbus"

	"github.com/NVIDIA/hostreport/pkg/errors"
	"github.com/NVIDIA/hostreport/pkg/telemetry"
)

const (
	pathSELinuxEnforce  = "/sys/fs/selinux/enforce"
	pathAppArmorEnabled = "/sys/module/apparmor/parameters/enabled"
	pathLSM             = "/sys/kernel/security/lsm"
	pathEFI             = "/sys/firmware/efi"
	globSecureBoot      = "/sys/firmware/efi/efivars/SecureBoot-*"
	globDMUUID          = "/sys/block/dm-*/dm/uuid"
	pathASLR            = "/proc/sys/kernel/randomize_va_space"
)

var (
	firewallUnits = []string{
		"firewalld.service",
		"ufw.service",
		"nftables.service",
		"iptables.service",
		"netfilter-persistent.service",
	}

	antivirusUnits = []string{
		"clamav-daemon.service",
		"clamd@scan.service",
		"falcon-sensor.service",
		"mdatp.service",
		"sav-protect.service",
		"sentinelone.service",
		"wazuh-agent.service",
	}
)

// unitLister is the subset of the systemd D-Bus connection used here.
type unitLister interface {
	ListUnitsByPatternsContext(ctx context.Context, states []string, patterns []string) ([]dbus.UnitStatus, error)
	ListUnitsByNamesContext(ctx context.Context, units []string) ([]dbus.UnitStatus, error)
	Close()
}

var connectSystemd = func(ctx context.Context) (unitLister, error) {
	conn, err := dbus.NewSystemConnectionContext(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSourceUnavailable, "failed to connect to systemd", err)
	}
	return conn, nil
}

func (p *Provider) services(ctx context.Context) (*telemetry.ServicesInfo, error) {
	conn, err := connectSystemd(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	units, err := conn.ListUnitsByPatternsContext(ctx, nil, []string{"*.service"})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSourceUnavailable, "failed to list systemd services", err)
	}
	return classifyUnits(units), nil
}

func classifyUnits(units []dbus.UnitStatus) *telemetry.ServicesInfo {
	info := &telemetry.ServicesInfo{
		Running: make([]string, 0),
		Stopped: make([]string, 0),
		Failed:  make([]string, 0),
	}
	for _, u := range units {
		if u.LoadState == "not-found" {
			continue
		}
		name := strings.TrimSuffix(u.Name, ".service")
		switch {
		case u.ActiveState == "failed":
			info.Failed = append(info.Failed, name)
		case u.ActiveState == "active" && u.SubState == "running":
			info.Running = append(info.Running, name)
		default:
			info.Stopped = append(info.Stopped, name)
		}
	}
	sort.Strings(info.Running)
	sort.Strings(info.Stopped)
	sort.Strings(info.Failed)
	return info
}

func (p *Provider) security(ctx context.Context) (*telemetry.SecurityInfo, error) {
	info := &telemetry.SecurityInfo{}

	conn, err := connectSystemd(ctx)
	if err != nil {
		info.Fail(telemetry.FieldFirewall, err)
		info.Fail(telemetry.FieldAntivirus, err)
	} else {
		defer conn.Close()
		unitSecurity(ctx, conn, info)
	}

	p.fileSecurity(info)
	return info, nil
}

func unitSecurity(ctx context.Context, conn unitLister, info *telemetry.SecurityInfo) {
	fw, err := conn.ListUnitsByNamesContext(ctx, firewallUnits)
	if err != nil {
		info.Fail(telemetry.FieldFirewall, errors.Wrap(errors.ErrCodeSourceUnavailable, "failed to query firewall units", err))
	} else {
		info.Firewall = firewallState(fw)
	}

	av, err := conn.ListUnitsByNamesContext(ctx, antivirusUnits)
	if err != nil {
		info.Fail(telemetry.FieldAntivirus, errors.Wrap(errors.ErrCodeSourceUnavailable, "failed to query anti-malware units", err))
		return
	}
	info.Antivirus = make([]telemetry.Product, 0)
	for _, u := range av {
		if u.LoadState == "not-found" {
			continue
		}
		name := u.Description
		if name == "" {
			name = strings.TrimSuffix(u.Name, ".service")
		}
		info.Antivirus = append(info.Antivirus, telemetry.Product{Name: name, State: u.ActiveState})
	}
}

func firewallState(units []dbus.UnitStatus) string {
	active := make([]string, 0)
	for _, u := range units {
		if u.ActiveState == "active" {
			active = append(active, strings.TrimSuffix(u.Name, ".service"))
		}
	}
	if len(active) == 0 {
		return "Disabled"
	}
	return "Enabled (" + strings.Join(active, ", ") + ")"
}

// fileSecurity fills the fields that come from sysfs and procfs.
func (p *Provider) fileSecurity(info *telemetry.SecurityInfo) {
	vols, err := p.encryptedVolumes()
	info.EncryptedVolumes = vols
	info.Fail(telemetry.FieldEncryption, err)

	info.AccessControl = p.accessControl()

	sb, err := p.secureBoot()
	info.SecureBoot = sb
	info.Fail(telemetry.FieldSecureBoot, err)

	aslr, err := p.aslr()
	info.ASLR = aslr
	info.Fail(telemetry.FieldASLR, err)
}

// encryptedVolumes lists device-mapper targets created by dm-crypt.
func (p *Provider) encryptedVolumes() ([]string, error) {
	uuids, err := p.files.Glob(globDMUUID)
	if err != nil {
		return nil, err
	}
	vols := make([]string, 0)
	for _, u := range uuids {
		id, uerr := p.files.GetValue(u)
		if uerr != nil || !strings.HasPrefix(id, "CRYPT-") {
			continue
		}
		dir := path.Dir(u)
		name, nerr := p.files.GetValue(dir + "/name")
		if nerr != nil {
			name = path.Base(path.Dir(dir))
		}
		vols = append(vols, name)
	}
	return vols, nil
}

func (p *Provider) accessControl() string {
	if v, err := p.files.GetValue(pathSELinuxEnforce); err == nil {
		if v == "1" {
			return "SELinux (enforcing)"
		}
		return "SELinux (permissive)"
	}
	if v, err := p.files.GetValue(pathAppArmorEnabled); err == nil && v == "Y" {
		return "AppArmor"
	}
	lsm, err := p.files.GetLines(pathLSM)
	if err == nil && len(lsm) > 0 {
		for _, m := range strings.Split(lsm[0], ",") {
			switch m {
			case "selinux":
				return "SELinux"
			case "apparmor":
				return "AppArmor"
			case "smack":
				return "Smack"
			case "tomoyo":
				return "TOMOYO"
			}
		}
	}
	return "None"
}

// secureBoot reads the SecureBoot EFI variable. Its last byte is 1 when
// secure boot is enforced.
func (p *Provider) secureBoot() (string, error) {
	if !p.files.Exists(pathEFI) {
		return "Not supported (legacy BIOS)", nil
	}
	vars, err := p.files.Glob(globSecureBoot)
	if err != nil {
		return "", err
	}
	if len(vars) == 0 {
		return "", errors.New(errors.ErrCodeSourceUnavailable, "SecureBoot EFI variable not found")
	}
	b, err := p.files.GetBytes(vars[0])
	if err != nil {
		return "", err
	}
	if len(b) == 0 {
		return "", errors.New(errors.ErrCodeSourceUnavailable, "SecureBoot EFI variable is empty")
	}
	if b[len(b)-1] == 1 {
		return "Enabled", nil
	}
	return "Disabled", nil
}

func (p *Provider) aslr() (string, error) {
	v, err := p.files.GetValue(pathASLR)
	if err != nil {
		return "", err
	}
	switch v {
	case "0":
		return "Disabled", nil
	case "1":
		return "Partial (stack, mmap, vdso)", nil
	case "2":
		return "Full", nil
	default:
		return "Unknown (" + v + ")", nil
	}
}
