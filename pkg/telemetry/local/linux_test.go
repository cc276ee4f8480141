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
	"testing"
	"testing/fstest"

	"github.com/coreos/go-systemd/v22/dbus"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zcalusic/sysinfo"

	"github.com/NVIDIA/hostreport/pkg/errors"
	"github.com/NVIDIA/hostreport/pkg/telemetry"
	"github.com/NVIDIA/hostreport/pkg/telemetry/file"
)

func hostFixture() fstest.MapFS {
	return fstest.MapFS{
		"etc/os-release":                           {Data: []byte("NAME=\"Ubuntu\"\nVERSION=\"22.04.4 LTS\"\nPRETTY_NAME=\"Ubuntu 22.04.4 LTS\"\n")},
		"etc/locale.conf":                          {Data: []byte("LANG=\"de_DE.UTF-8\"\n")},
		"sys/class/dmi/id/sys_vendor":              {Data: []byte("Dell Inc.\n")},
		"sys/class/dmi/id/product_name":            {Data: []byte("XPS 13 9310\n")},
		"sys/class/drm/card0/device/uevent":        {Data: []byte("DRIVER=i915\nPCI_ID=8086:9A49\nPCI_SLOT_NAME=0000:00:02.0\n")},
		"sys/class/drm/card0-eDP-1/status":         {Data: []byte("connected\n")},
		"sys/class/drm/card1/device/uevent":        {Data: []byte("DRIVER=nvidia\nPCI_ID=10DE:2484\n")},
		"sys/class/drm/renderD128/dev":             {Data: []byte("226:128\n")},
		"sys/class/power_supply/AC/type":           {Data: []byte("Mains\n")},
		"sys/class/power_supply/BAT0/type":         {Data: []byte("Battery\n")},
		"sys/class/power_supply/BAT0/capacity":     {Data: []byte("87\n")},
		"sys/class/power_supply/BAT0/status":       {Data: []byte("Discharging\n")},
		"proc/net/route":                           {Data: []byte(routeTable)},
		"sys/block/dm-0/dm/uuid":                   {Data: []byte("CRYPT-LUKS2-abc-luks\n")},
		"sys/block/dm-0/dm/name":                   {Data: []byte("luks-root\n")},
		"sys/block/dm-1/dm/uuid":                   {Data: []byte("LVM-xyz\n")},
		"sys/module/apparmor/parameters/enabled":   {Data: []byte("Y\n")},
		"sys/firmware/efi/efivars/SecureBoot-8be4": {Data: []byte{6, 0, 0, 0, 1}},
		"proc/sys/kernel/randomize_va_space":       {Data: []byte("2\n")},
	}
}

const routeTable = `Iface	Destination	Gateway 	Flags	RefCnt	Use	Metric	Mask		MTU	Window	IRTT
wlp0s20f3	0000A8C0	00000000	0001	0	0	600	00FFFFFF	0	0	0
wlp0s20f3	00000000	0100A8C0	0003	0	0	600	00000000	0	0	0
`

func fixtureProvider(fsys fstest.MapFS) *Provider {
	return New(
		WithFileParser(file.NewParser(file.WithFS(fsys))),
		WithRootCheck(func() bool { return false }),
		WithEnvironment(func(string) string { return "" }, func() []string { return nil }),
	)
}

func TestLinux_SystemVendorAndRelease(t *testing.T) {
	p := fixtureProvider(hostFixture())

	vendor, model, err := p.systemVendor()
	require.NoError(t, err)
	assert.Equal(t, "Dell Inc.", vendor)
	assert.Equal(t, "XPS 13 9310", model)

	name, err := p.releaseName()
	require.NoError(t, err)
	assert.Equal(t, "Ubuntu 22.04.4 LTS", name)
}

func TestLinux_ReleaseFallback(t *testing.T) {
	p := fixtureProvider(fstest.MapFS{
		"usr/lib/os-release": {Data: []byte("NAME=Fedora\nVERSION=\"40 (Workstation)\"\n")},
	})
	name, err := p.releaseName()
	require.NoError(t, err)
	assert.Equal(t, "Fedora 40 (Workstation)", name)
}

func TestLinux_InstallationNotSupported(t *testing.T) {
	inst, err := fixtureProvider(hostFixture()).installation()
	assert.Nil(t, inst)
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotSupported))
}

func TestLinux_GPUs(t *testing.T) {
	p := fixtureProvider(hostFixture())
	gpus, err := p.gpus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Intel 0x9a49 (i915)", "NVIDIA 0x2484 (nvidia)"}, gpus)

	_, err = fixtureProvider(fstest.MapFS{}).gpus(context.Background())
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotSupported))
}

func TestIsCardDevice(t *testing.T) {
	assert.True(t, isCardDevice("card0"))
	assert.True(t, isCardDevice("card12"))
	assert.False(t, isCardDevice("card"))
	assert.False(t, isCardDevice("card0-DP-1"))
	assert.False(t, isCardDevice("renderD128"))
}

func TestLinux_Batteries(t *testing.T) {
	p := fixtureProvider(hostFixture())
	bats, err := p.batteries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []telemetry.Battery{{Name: "BAT0", Percent: 87, Status: "Discharging"}}, bats)

	noBattery := fixtureProvider(fstest.MapFS{
		"sys/class/power_supply/AC/type": {Data: []byte("Mains\n")},
	})
	_, err = noBattery.batteries(context.Background())
	require.Error(t, err)
	assert.Equal(t, "no battery present", errors.Summarize(err))
}

func TestLinux_DefaultGateway(t *testing.T) {
	p := fixtureProvider(hostFixture())
	gw, err := p.defaultGateway(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "192.168.0.1 (wlp0s20f3)", gw)

	_, err = parseDefaultRoute([]string{"Iface Destination Gateway Flags", "eth0 0000A8C0 00000000 0001"})
	assert.True(t, errors.IsCode(err, errors.ErrCodeSourceUnavailable))
}

func TestLinux_FileSecurity(t *testing.T) {
	p := fixtureProvider(hostFixture())
	info := &telemetry.SecurityInfo{}
	p.fileSecurity(info)

	assert.False(t, info.Failed())
	assert.Equal(t, []string{"luks-root"}, info.EncryptedVolumes)
	assert.Equal(t, "AppArmor", info.AccessControl)
	assert.Equal(t, "Enabled", info.SecureBoot)
	assert.Equal(t, "Full", info.ASLR)
}

func TestLinux_FileSecurityMinimalHost(t *testing.T) {
	p := fixtureProvider(fstest.MapFS{
		"sys/fs/selinux/enforce": {Data: []byte("0\n")},
	})
	info := &telemetry.SecurityInfo{}
	p.fileSecurity(info)

	assert.Empty(t, info.EncryptedVolumes)
	assert.Equal(t, "SELinux (permissive)", info.AccessControl)
	assert.Equal(t, "Not supported (legacy BIOS)", info.SecureBoot)
	assert.Error(t, info.Err(telemetry.FieldASLR))
}

func TestClassifyUnits(t *testing.T) {
	units := []dbus.UnitStatus{
		{Name: "sshd.service", LoadState: "loaded", ActiveState: "active", SubState: "running"},
		{Name: "cups.service", LoadState: "loaded", ActiveState: "inactive", SubState: "dead"},
		{Name: "broken.service", LoadState: "loaded", ActiveState: "failed", SubState: "failed"},
		{Name: "oneshot.service", LoadState: "loaded", ActiveState: "active", SubState: "exited"},
		{Name: "ghost.service", LoadState: "not-found", ActiveState: "inactive"},
	}

	info := classifyUnits(units)
	assert.Equal(t, []string{"sshd"}, info.Running)
	assert.Equal(t, []string{"cups", "oneshot"}, info.Stopped)
	assert.Equal(t, []string{"broken"}, info.Failed)
}

type fakeUnits struct {
	byName map[string]dbus.UnitStatus
	err    error
}

func (f *fakeUnits) ListUnitsByPatternsContext(context.Context, []string, []string) ([]dbus.UnitStatus, error) {
	return nil, f.err
}

func (f *fakeUnits) ListUnitsByNamesContext(_ context.Context, names []string) ([]dbus.UnitStatus, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]dbus.UnitStatus, 0, len(names))
	for _, n := range names {
		u, ok := f.byName[n]
		if !ok {
			u = dbus.UnitStatus{Name: n, LoadState: "not-found", ActiveState: "inactive"}
		}
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUnits) Close() {}

func TestUnitSecurity(t *testing.T) {
	conn := &fakeUnits{byName: map[string]dbus.UnitStatus{
		"ufw.service":           {Name: "ufw.service", LoadState: "loaded", ActiveState: "active"},
		"clamav-daemon.service": {Name: "clamav-daemon.service", Description: "Clam AntiVirus userspace daemon", LoadState: "loaded", ActiveState: "inactive"},
	}}
	info := &telemetry.SecurityInfo{}
	unitSecurity(context.Background(), conn, info)

	assert.Equal(t, "Enabled (ufw)", info.Firewall)
	assert.Equal(t, []telemetry.Product{{Name: "Clam AntiVirus userspace daemon", State: "inactive"}}, info.Antivirus)

	failing := &telemetry.SecurityInfo{}
	unitSecurity(context.Background(), &fakeUnits{err: assert.AnError}, failing)
	assert.Error(t, failing.Err(telemetry.FieldFirewall))
	assert.Error(t, failing.Err(telemetry.FieldAntivirus))
}

func TestLinux_ServicesWithFakeSystemd(t *testing.T) {
	orig := connectSystemd
	t.Cleanup(func() { connectSystemd = orig })

	connectSystemd = func(context.Context) (unitLister, error) {
		return nil, errors.New(errors.ErrCodeSourceUnavailable, "no bus")
	}
	_, err := fixtureProvider(hostFixture()).Services(context.Background())
	assert.True(t, errors.IsCode(err, errors.ErrCodeSourceUnavailable))

	sec, err := fixtureProvider(hostFixture()).Security(context.Background())
	require.NoError(t, err)
	assert.Error(t, sec.Err(telemetry.FieldFirewall))
	assert.Equal(t, "Full", sec.ASLR)
}

func TestLinux_SystemLocale(t *testing.T) {
	p := fixtureProvider(hostFixture())
	l, err := p.systemLocale()
	require.NoError(t, err)
	assert.Equal(t, "de_DE.UTF-8", l)
	assert.Equal(t, "de_DE.UTF-8", p.locale())
}

func TestLinux_RootOnlyQueries(t *testing.T) {
	p := fixtureProvider(hostFixture())

	_, err := p.Firmware(context.Background())
	assert.True(t, errors.IsCode(err, errors.ErrCodePermissionDenied))

	_, err = p.HardwareDetails(context.Background())
	assert.True(t, errors.IsCode(err, errors.ErrCodePermissionDenied))
}

func TestFromSysInfo(t *testing.T) {
	var si sysinfo.SysInfo
	si.BIOS.Vendor = "LENOVO"
	si.BIOS.Version = "N2HET77W"
	si.BIOS.Date = "01/01/2024"
	si.Board.Vendor = "LENOVO"
	si.Board.Name = "20XW"
	si.Board.Serial = "L1HF"
	si.Product.Name = "ThinkPad X1"
	si.Product.Serial = "PF3"
	si.Product.UUID = uuid.MustParse("4c4c4544-0042-3510-8052-b4c04f4e3432")
	si.Chassis.Serial = "CH1"
	si.Memory.Type = "LPDDR4"
	si.Memory.Speed = 4267
	si.Memory.Size = 16384
	si.Storage = append(si.Storage, sysinfo.StorageDevice{
		Name: "nvme0n1", Driver: "nvme", Vendor: "Samsung", Model: "PM9A1", Serial: "S6", Size: 1024,
	})

	f := firmwareFromSysInfo(&si)
	assert.False(t, f.Failed())
	assert.Equal(t, "N2HET77W", f.BIOSVersion)
	assert.Equal(t, "S6", f.DiskSerial)
	assert.Equal(t, "4c4c4544-0042-3510-8052-b4c04f4e3432", f.ProductUUID)

	d := detailsFromSysInfo(&si)
	assert.False(t, d.Failed())
	require.Len(t, d.Memory, 1)
	assert.Equal(t, uint64(16384)<<20, d.Memory[0].Size)
	require.Len(t, d.Disks, 1)
	assert.Equal(t, "Samsung PM9A1", d.Disks[0].Model)
	assert.Equal(t, uint64(1024_000_000_000), d.Disks[0].Size)

	empty := firmwareFromSysInfo(&sysinfo.SysInfo{})
	assert.Error(t, empty.Err(telemetry.FieldBIOS))
	assert.Error(t, empty.Err(telemetry.FieldDiskSerial))
	assert.Empty(t, empty.ProductUUID)
}
