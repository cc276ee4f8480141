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
	"encoding/binary"
	"encoding/hex"
	"net"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/zcalusic/sysinfo"

	"github.com/NVIDIA/hostreport/pkg/errors"
	"github.com/NVIDIA/hostreport/pkg/telemetry"
	"github.com/NVIDIA/hostreport/pkg/telemetry/file"
)

const (
	pathDMI            = "/sys/class/dmi/id"
	pathReleasePrimary = "/etc/os-release"
	pathReleaseAlt     = "/usr/lib/os-release"
	pathDRM            = "/sys/class/drm"
	pathPowerSupply    = "/sys/class/power_supply"
	pathRoute          = "/proc/net/route"
	pathLocaleConf     = "/etc/locale.conf"
	pathLocaleDefault  = "/etc/default/locale"

	// RTF_UP | RTF_GATEWAY
	routeFlagsGateway = 0x0003
)

func rootVolume() string {
	return "/"
}

// systemVendor reads the world-readable DMI vendor and product name.
func (p *Provider) systemVendor() (string, string, error) {
	vendor, err := p.files.GetValue(pathDMI + "/sys_vendor")
	if err != nil {
		return "", "", err
	}
	model, err := p.files.GetValue(pathDMI + "/product_name")
	if err != nil {
		return vendor, "", err
	}
	return vendor, model, nil
}

// installation is a Windows concept; Linux keeps no install record.
func (p *Provider) installation() (*telemetry.Installation, error) {
	return nil, notSupported("installation details")
}

// releaseName returns PRETTY_NAME from os-release, falling back to
// /usr/lib/os-release per freedesktop.org.
func (p *Provider) releaseName() (string, error) {
	src := pathReleasePrimary
	if !p.files.Exists(src) {
		src = pathReleaseAlt
	}

	parser := file.NewParser(
		file.WithFS(p.files.FS()),
		file.WithVTrimChars(`"'`),
		file.WithSkipEmptyValues(true),
	)
	release, err := parser.GetMap(src)
	if err != nil {
		return "", err
	}

	if name := release["PRETTY_NAME"]; name != "" {
		return name, nil
	}
	if name := strings.TrimSpace(release["NAME"] + " " + release["VERSION"]); name != "" {
		return name, nil
	}
	return "", errors.New(errors.ErrCodeSourceUnavailable, src+" has no name")
}

// gpus lists DRM card devices as "<vendor> <device> (<driver>)".
func (p *Provider) gpus(_ context.Context) ([]string, error) {
	names, err := p.files.ReadDir(pathDRM)
	if err != nil {
		return nil, err
	}

	gpus := make([]string, 0)
	for _, name := range names {
		if !isCardDevice(name) {
			continue
		}
		uevent, uerr := p.files.GetMap(path.Join(pathDRM, name, "device", "uevent"))
		if uerr != nil {
			continue
		}
		gpus = append(gpus, describeGPU(uevent))
	}
	return gpus, nil
}

// isCardDevice matches card0, card1 but not connectors (card0-DP-1) or
// render nodes.
func isCardDevice(name string) bool {
	suffix, ok := strings.CutPrefix(name, "card")
	if !ok || suffix == "" {
		return false
	}
	_, err := strconv.Atoi(suffix)
	return err == nil
}

func describeGPU(uevent map[string]string) string {
	vendorID, deviceID, _ := strings.Cut(strings.ToLower(uevent["PCI_ID"]), ":")

	parts := make([]string, 0, 3)
	if v := pciVendorName(vendorID); v != "" {
		parts = append(parts, v)
	}
	if deviceID != "" {
		parts = append(parts, "0x"+deviceID)
	}
	desc := strings.Join(parts, " ")
	if desc == "" {
		desc = "unknown"
	}
	if d := uevent["DRIVER"]; d != "" {
		desc += " (" + d + ")"
	}
	return desc
}

func pciVendorName(id string) string {
	switch id {
	case "":
		return ""
	case "1002":
		return "AMD"
	case "10de":
		return "NVIDIA"
	case "8086":
		return "Intel"
	case "1af4":
		return "Red Hat"
	case "15ad":
		return "VMware"
	default:
		return "0x" + id
	}
}

// batteries reads every power supply of type Battery.
func (p *Provider) batteries(_ context.Context) ([]telemetry.Battery, error) {
	names, err := p.files.ReadDir(pathPowerSupply)
	if err != nil {
		return nil, err
	}

	out := make([]telemetry.Battery, 0)
	for _, name := range names {
		dir := path.Join(pathPowerSupply, name)
		if t, terr := p.files.GetValue(dir + "/type"); terr != nil || t != "Battery" {
			continue
		}
		capacity, cerr := p.files.GetValue(dir + "/capacity")
		if cerr != nil {
			continue
		}
		pct, perr := strconv.ParseFloat(capacity, 64)
		if perr != nil {
			continue
		}
		status, _ := p.files.GetValue(dir + "/status")
		out = append(out, telemetry.Battery{Name: name, Percent: pct, Status: status})
	}

	if len(out) == 0 {
		return nil, errors.New(errors.ErrCodeSourceUnavailable, "no battery present")
	}
	return out, nil
}

// defaultGateway parses the IPv4 routing table for the default route.
func (p *Provider) defaultGateway(_ context.Context) (string, error) {
	lines, err := p.files.GetLines(pathRoute)
	if err != nil {
		return "", err
	}
	return parseDefaultRoute(lines)
}

// parseDefaultRoute finds the first route to 0.0.0.0 via a gateway. Columns
// are Iface, Destination, Gateway, Flags with addresses in little-endian hex.
func parseDefaultRoute(lines []string) (string, error) {
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 4 || fields[0] == "Iface" || fields[1] != "00000000" {
			continue
		}
		flags, err := strconv.ParseUint(fields[3], 16, 32)
		if err != nil || flags&routeFlagsGateway != routeFlagsGateway {
			continue
		}
		raw, err := hex.DecodeString(fields[2])
		if err != nil || len(raw) != 4 {
			continue
		}
		ip := make(net.IP, 4)
		binary.BigEndian.PutUint32(ip, binary.LittleEndian.Uint32(raw))
		return ip.String() + " (" + fields[0] + ")", nil
	}
	return "", errors.New(errors.ErrCodeSourceUnavailable, "no default route")
}

// terminal resolves the controlling terminal from stdin.
func (p *Provider) terminal() (string, error) {
	if link, err := os.Readlink("/proc/self/fd/0"); err == nil && strings.HasPrefix(link, "/dev/") {
		return link, nil
	}
	if tty := p.getenv("SSH_TTY"); tty != "" {
		return tty, nil
	}
	return "", errors.New(errors.ErrCodeSourceUnavailable, "stdin is not a terminal")
}

// systemLocale reads LANG from the system locale configuration.
func (p *Provider) systemLocale() (string, error) {
	for _, src := range []string{pathLocaleConf, pathLocaleDefault} {
		if !p.files.Exists(src) {
			continue
		}
		m, err := file.NewParser(file.WithFS(p.files.FS()), file.WithVTrimChars(`"'`)).GetMap(src)
		if err != nil {
			continue
		}
		if lang := m["LANG"]; lang != "" {
			return lang, nil
		}
	}
	return "", errors.New(errors.ErrCodeSourceUnavailable, "no system locale configured")
}

// readSysInfo gathers DMI and storage facts. DMI serial numbers are root-only
// in sysfs, so the query is refused without elevated privilege.
func (p *Provider) readSysInfo(what string) (*sysinfo.SysInfo, error) {
	if err := requireRoot(p, what); err != nil {
		return nil, err
	}
	var si sysinfo.SysInfo
	si.GetSysInfo()
	return &si, nil
}

func (p *Provider) hardwareDetails(_ context.Context) (*telemetry.HardwareDetails, error) {
	si, err := p.readSysInfo("hardware inventory")
	if err != nil {
		return nil, err
	}
	return detailsFromSysInfo(si), nil
}

func detailsFromSysInfo(si *sysinfo.SysInfo) *telemetry.HardwareDetails {
	d := &telemetry.HardwareDetails{
		Board: telemetry.Board{
			Manufacturer: si.Board.Vendor,
			Product:      si.Board.Name,
		},
	}

	if si.Memory.Size > 0 {
		d.Memory = []telemetry.MemoryModule{{
			Type:  si.Memory.Type,
			Size:  uint64(si.Memory.Size) << 20,
			Speed: si.Memory.Speed,
		}}
	} else {
		d.Fail(telemetry.FieldMemoryModules, errors.New(errors.ErrCodeSourceUnavailable, "no memory devices reported"))
	}

	for _, s := range si.Storage {
		d.Disks = append(d.Disks, telemetry.Disk{
			Name:   s.Name,
			Model:  strings.TrimSpace(s.Vendor + " " + s.Model),
			Serial: s.Serial,
			Driver: s.Driver,
			Size:   uint64(s.Size) * 1_000_000_000,
		})
	}
	if d.Board.Manufacturer == "" && d.Board.Product == "" {
		d.Fail(telemetry.FieldBoard, errors.New(errors.ErrCodeSourceUnavailable, "no baseboard reported"))
	}
	return d
}

func (p *Provider) firmware(_ context.Context) (*telemetry.FirmwareInfo, error) {
	si, err := p.readSysInfo("firmware identity")
	if err != nil {
		return nil, err
	}
	return firmwareFromSysInfo(si), nil
}

// productUUID returns "" for the nil UUID sysinfo leaves when product_uuid
// is unreadable.
func productUUID(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}

func firmwareFromSysInfo(si *sysinfo.SysInfo) *telemetry.FirmwareInfo {
	f := &telemetry.FirmwareInfo{
		BIOSVendor:      si.BIOS.Vendor,
		BIOSVersion:     si.BIOS.Version,
		BIOSReleaseDate: si.BIOS.Date,
		BoardVendor:     si.Board.Vendor,
		BoardName:       si.Board.Name,
		BoardSerial:     si.Board.Serial,
		ProductName:     si.Product.Name,
		ProductSerial:   si.Product.Serial,
		ProductUUID:     productUUID(si.Product.UUID),
		ChassisSerial:   si.Chassis.Serial,
	}
	if f.BIOSVendor == "" && f.BIOSVersion == "" {
		f.Fail(telemetry.FieldBIOS, errors.New(errors.ErrCodeNotSupported, "no DMI BIOS information"))
	}
	for _, s := range si.Storage {
		if s.Serial != "" {
			f.DiskSerial = s.Serial
			break
		}
	}
	if f.DiskSerial == "" {
		f.Fail(telemetry.FieldDiskSerial, errors.New(errors.ErrCodeSourceUnavailable, "no disk reports a serial number"))
	}
	return f
}
