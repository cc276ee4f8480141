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

//go:build windows

package local

import (
	"context"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/yusufpapurcu/wmi"
	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
	"golang.org/x/sys/windows/svc/mgr"

	"github.com/NVIDIA/hostreport/pkg/errors"
	"github.com/NVIDIA/hostreport/pkg/telemetry"
)

const (
	nsSecurityCenter    = `root\SecurityCenter2`
	nsVolumeEncryption  = `root\CIMV2\Security\MicrosoftVolumeEncryption`
	keySecureBoot       = `SYSTEM\CurrentControlSet\Control\SecureBoot\State`
	keyFirewallStandard = `SYSTEM\CurrentControlSet\Services\SharedAccess\Parameters\FirewallPolicy\StandardProfile`
	keyPoliciesSystem   = `SOFTWARE\Microsoft\Windows\CurrentVersion\Policies\System`
)

func rootVolume() string {
	if d := os.Getenv("SystemDrive"); d != "" {
		return d + `\`
	}
	return `C:\`
}

func wmiQuery(dst any, query string, namespace ...string) error {
	var err error
	if len(namespace) > 0 {
		err = wmi.QueryNamespace(query, dst, namespace[0])
	} else {
		err = wmi.Query(query, dst)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeSourceUnavailable, "WMI query failed", err)
	}
	return nil
}

type win32ComputerSystem struct {
	Manufacturer string
	Model        string
}

func (p *Provider) systemVendor() (string, string, error) {
	var cs []win32ComputerSystem
	if err := wmiQuery(&cs, "SELECT Manufacturer, Model FROM Win32_ComputerSystem"); err != nil {
		return "", "", err
	}
	if len(cs) == 0 {
		return "", "", errors.New(errors.ErrCodeSourceUnavailable, "no computer system reported")
	}
	return cs[0].Manufacturer, cs[0].Model, nil
}

type win32OperatingSystem struct {
	Caption string
}

func (p *Provider) releaseName() (string, error) {
	var systems []win32OperatingSystem
	if err := wmiQuery(&systems, "SELECT Caption FROM Win32_OperatingSystem"); err != nil {
		return "", err
	}
	if len(systems) == 0 {
		return "", errors.New(errors.ErrCodeSourceUnavailable, "no operating system reported")
	}
	return strings.TrimSpace(systems[0].Caption), nil
}

type win32OSInstallation struct {
	InstallDate     time.Time
	SystemDirectory string
	SystemDrive     string
}

func (p *Provider) installation() (*telemetry.Installation, error) {
	var systems []win32OSInstallation
	if err := wmiQuery(&systems, "SELECT InstallDate, SystemDirectory, SystemDrive FROM Win32_OperatingSystem"); err != nil {
		return nil, err
	}
	if len(systems) == 0 {
		return nil, errors.New(errors.ErrCodeSourceUnavailable, "no operating system reported")
	}
	return &telemetry.Installation{
		Date:      systems[0].InstallDate.UTC(),
		Directory: systems[0].SystemDirectory,
		Drive:     systems[0].SystemDrive,
	}, nil
}

type win32VideoController struct {
	Name string
}

func (p *Provider) gpus(_ context.Context) ([]string, error) {
	var vc []win32VideoController
	if err := wmiQuery(&vc, "SELECT Name FROM Win32_VideoController"); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(vc))
	for _, v := range vc {
		out = append(out, v.Name)
	}
	return out, nil
}

type win32Battery struct {
	Name                     string
	EstimatedChargeRemaining uint16
	BatteryStatus            uint16
}

func (p *Provider) batteries(_ context.Context) ([]telemetry.Battery, error) {
	var bs []win32Battery
	if err := wmiQuery(&bs, "SELECT Name, EstimatedChargeRemaining, BatteryStatus FROM Win32_Battery"); err != nil {
		return nil, err
	}
	if len(bs) == 0 {
		return nil, errors.New(errors.ErrCodeSourceUnavailable, "no battery present")
	}
	out := make([]telemetry.Battery, 0, len(bs))
	for _, b := range bs {
		status := "Discharging"
		if b.BatteryStatus == 2 {
			status = "AC"
		}
		out = append(out, telemetry.Battery{
			Name:    b.Name,
			Percent: float64(b.EstimatedChargeRemaining),
			Status:  status,
		})
	}
	return out, nil
}

type win32NetworkAdapterConfiguration struct {
	Description      string
	DefaultIPGateway []string
}

func (p *Provider) defaultGateway(_ context.Context) (string, error) {
	var cfg []win32NetworkAdapterConfiguration
	q := "SELECT Description, DefaultIPGateway FROM Win32_NetworkAdapterConfiguration WHERE IPEnabled = TRUE"
	if err := wmiQuery(&cfg, q); err != nil {
		return "", err
	}
	for _, c := range cfg {
		if len(c.DefaultIPGateway) > 0 {
			return c.DefaultIPGateway[0] + " (" + c.Description + ")", nil
		}
	}
	return "", errors.New(errors.ErrCodeSourceUnavailable, "no default route")
}

func (p *Provider) terminal() (string, error) {
	if s := p.getenv("SESSIONNAME"); s != "" {
		return s, nil
	}
	return "", errors.New(errors.ErrCodeSourceUnavailable, "SESSIONNAME is not set")
}

func (p *Provider) systemLocale() (string, error) {
	langs, err := windows.GetUserPreferredUILanguages(windows.MUI_LANGUAGE_NAME)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeSourceUnavailable, "failed to read UI languages", err)
	}
	if len(langs) == 0 {
		return "", errors.New(errors.ErrCodeSourceUnavailable, "no UI language configured")
	}
	return langs[0], nil
}

type win32PhysicalMemory struct {
	Capacity         uint64
	Speed            uint32
	Manufacturer     string
	SerialNumber     string
	SMBIOSMemoryType uint32
}

type win32DiskDrive struct {
	Model         string
	SerialNumber  string
	InterfaceType string
	Size          uint64
}

type win32BaseBoard struct {
	Manufacturer string
	Product      string
	SerialNumber string
}

func (p *Provider) hardwareDetails(_ context.Context) (*telemetry.HardwareDetails, error) {
	if err := requireRoot(p, "hardware inventory"); err != nil {
		return nil, err
	}

	d := &telemetry.HardwareDetails{}

	var mems []win32PhysicalMemory
	if err := wmiQuery(&mems, "SELECT Capacity, Speed, Manufacturer, SerialNumber, SMBIOSMemoryType FROM Win32_PhysicalMemory"); err != nil {
		d.Fail(telemetry.FieldMemoryModules, err)
	}
	for _, m := range mems {
		d.Memory = append(d.Memory, telemetry.MemoryModule{
			Type:         smbiosMemoryType(m.SMBIOSMemoryType),
			Size:         m.Capacity,
			Speed:        uint(m.Speed),
			Manufacturer: strings.TrimSpace(m.Manufacturer),
			Serial:       strings.TrimSpace(m.SerialNumber),
		})
	}

	disks, err := diskDrives()
	if err != nil {
		d.Fail(telemetry.FieldDisks, err)
	}
	for _, dd := range disks {
		d.Disks = append(d.Disks, telemetry.Disk{
			Model:  dd.Model,
			Serial: strings.TrimSpace(dd.SerialNumber),
			Driver: dd.InterfaceType,
			Size:   dd.Size,
		})
	}

	var boards []win32BaseBoard
	if err := wmiQuery(&boards, "SELECT Manufacturer, Product, SerialNumber FROM Win32_BaseBoard"); err != nil {
		d.Fail(telemetry.FieldBoard, err)
	} else if len(boards) > 0 {
		d.Board = telemetry.Board{Manufacturer: boards[0].Manufacturer, Product: boards[0].Product}
	}

	return d, nil
}

func diskDrives() ([]win32DiskDrive, error) {
	var disks []win32DiskDrive
	err := wmiQuery(&disks, "SELECT Model, SerialNumber, InterfaceType, Size FROM Win32_DiskDrive")
	return disks, err
}

// smbiosMemoryType names the SMBIOS 3.x memory type codes in common use.
func smbiosMemoryType(code uint32) string {
	switch code {
	case 20:
		return "DDR"
	case 21:
		return "DDR2"
	case 24:
		return "DDR3"
	case 26:
		return "DDR4"
	case 34:
		return "DDR5"
	case 0, 2:
		return "Unknown"
	default:
		return "SMBIOS type " + strconv.FormatUint(uint64(code), 10)
	}
}

func (p *Provider) services(_ context.Context) (*telemetry.ServicesInfo, error) {
	h, err := windows.OpenSCManager(nil, nil, windows.SC_MANAGER_CONNECT|windows.SC_MANAGER_ENUMERATE_SERVICE)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSourceUnavailable, "failed to connect to the service control manager", err)
	}
	m := &mgr.Mgr{Handle: h}
	defer m.Disconnect()

	names, err := m.ListServices()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSourceUnavailable, "failed to list services", err)
	}

	info := &telemetry.ServicesInfo{
		Running: make([]string, 0),
		Stopped: make([]string, 0),
		Failed:  make([]string, 0),
	}
	for _, name := range names {
		st, qerr := queryServiceStatus(h, name)
		if qerr != nil {
			continue
		}
		switch {
		case st.CurrentState == windows.SERVICE_RUNNING:
			info.Running = append(info.Running, name)
		case st.CurrentState == windows.SERVICE_STOPPED && st.Win32ExitCode != 0 && st.Win32ExitCode != uint32(windows.ERROR_SERVICE_NEVER_STARTED):
			info.Failed = append(info.Failed, name)
		default:
			info.Stopped = append(info.Stopped, name)
		}
	}
	sort.Strings(info.Running)
	sort.Strings(info.Stopped)
	sort.Strings(info.Failed)
	return info, nil
}

// queryServiceStatus opens the service with query rights only, so it works
// without an elevated token.
func queryServiceStatus(scm windows.Handle, name string) (*windows.SERVICE_STATUS, error) {
	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, err
	}
	s, err := windows.OpenService(scm, namePtr, windows.SERVICE_QUERY_STATUS)
	if err != nil {
		return nil, err
	}
	defer windows.CloseServiceHandle(s)

	var st windows.SERVICE_STATUS
	if err := windows.QueryServiceStatus(s, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

type securityCenterProduct struct {
	DisplayName  string
	ProductState uint32
}

type win32EncryptableVolume struct {
	DriveLetter      string
	ProtectionStatus uint32
}

func (p *Provider) security(_ context.Context) (*telemetry.SecurityInfo, error) {
	info := &telemetry.SecurityInfo{}

	fw, err := registryDWORD(keyFirewallStandard, "EnableFirewall")
	if err != nil {
		info.Fail(telemetry.FieldFirewall, err)
	} else if fw == 1 {
		info.Firewall = "Enabled"
	} else {
		info.Firewall = "Disabled"
	}

	var avs []securityCenterProduct
	if err := wmiQuery(&avs, "SELECT displayName, productState FROM AntiVirusProduct", nsSecurityCenter); err != nil {
		info.Fail(telemetry.FieldAntivirus, err)
	} else {
		info.Antivirus = make([]telemetry.Product, 0, len(avs))
		for _, av := range avs {
			info.Antivirus = append(info.Antivirus, telemetry.Product{
				Name:  av.DisplayName,
				State: productState(av.ProductState),
			})
		}
	}

	if err := requireRoot(p, "volume encryption status"); err != nil {
		info.Fail(telemetry.FieldEncryption, err)
	} else {
		var vols []win32EncryptableVolume
		if err := wmiQuery(&vols, "SELECT DriveLetter, ProtectionStatus FROM Win32_EncryptableVolume", nsVolumeEncryption); err != nil {
			info.Fail(telemetry.FieldEncryption, err)
		}
		info.EncryptedVolumes = make([]string, 0, len(vols))
		for _, v := range vols {
			if v.ProtectionStatus == 1 {
				info.EncryptedVolumes = append(info.EncryptedVolumes, v.DriveLetter)
			}
		}
	}

	if lua, err := registryDWORD(keyPoliciesSystem, "EnableLUA"); err != nil {
		info.Fail(telemetry.FieldAccessControl, err)
	} else if lua == 1 {
		info.AccessControl = "UAC enabled"
	} else {
		info.AccessControl = "UAC disabled"
	}

	if sb, err := registryDWORD(keySecureBoot, "UEFISecureBootEnabled"); err != nil {
		info.Fail(telemetry.FieldSecureBoot, err)
	} else if sb == 1 {
		info.SecureBoot = "Enabled"
	} else {
		info.SecureBoot = "Disabled"
	}

	info.Fail(telemetry.FieldASLR, notSupported("ASLR policy"))
	return info, nil
}

// productState decodes the enabled bit of the Security Center product state.
func productState(state uint32) string {
	if (state>>12)&0xF == 1 {
		return "Enabled"
	}
	return "Disabled"
}

func registryDWORD(path, name string) (uint64, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.QUERY_VALUE)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeSourceUnavailable, "failed to open registry key", err)
	}
	defer k.Close()

	v, _, err := k.GetIntegerValue(name)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeSourceUnavailable, "failed to read registry value "+name, err)
	}
	return v, nil
}

type win32BIOS struct {
	Manufacturer      string
	SMBIOSBIOSVersion string
	ReleaseDate       time.Time
}

type win32ComputerSystemProduct struct {
	Name              string
	IdentifyingNumber string
	UUID              string
}

type win32SystemEnclosure struct {
	SerialNumber string
}

func (p *Provider) firmware(_ context.Context) (*telemetry.FirmwareInfo, error) {
	if err := requireRoot(p, "firmware identity"); err != nil {
		return nil, err
	}

	f := &telemetry.FirmwareInfo{}

	var bios []win32BIOS
	if err := wmiQuery(&bios, "SELECT Manufacturer, SMBIOSBIOSVersion, ReleaseDate FROM Win32_BIOS"); err != nil {
		f.Fail(telemetry.FieldBIOS, err)
	} else if len(bios) > 0 {
		f.BIOSVendor = strings.TrimSpace(bios[0].Manufacturer)
		f.BIOSVersion = strings.TrimSpace(bios[0].SMBIOSBIOSVersion)
		f.BIOSReleaseDate = bios[0].ReleaseDate.Format("2006-01-02")
	}

	var boards []win32BaseBoard
	if err := wmiQuery(&boards, "SELECT Manufacturer, Product, SerialNumber FROM Win32_BaseBoard"); err != nil {
		f.Fail(telemetry.FieldBoard, err)
	} else if len(boards) > 0 {
		f.BoardVendor = boards[0].Manufacturer
		f.BoardName = boards[0].Product
		f.BoardSerial = strings.TrimSpace(boards[0].SerialNumber)
	}

	var products []win32ComputerSystemProduct
	if err := wmiQuery(&products, "SELECT Name, IdentifyingNumber, UUID FROM Win32_ComputerSystemProduct"); err != nil {
		f.Fail(telemetry.FieldProduct, err)
	} else if len(products) > 0 {
		f.ProductName = products[0].Name
		f.ProductSerial = strings.TrimSpace(products[0].IdentifyingNumber)
		f.ProductUUID = products[0].UUID
	}

	var enclosures []win32SystemEnclosure
	if err := wmiQuery(&enclosures, "SELECT SerialNumber FROM Win32_SystemEnclosure"); err != nil {
		f.Fail(telemetry.FieldChassis, err)
	} else if len(enclosures) > 0 {
		f.ChassisSerial = strings.TrimSpace(enclosures[0].SerialNumber)
	}

	disks, err := diskDrives()
	if err != nil {
		f.Fail(telemetry.FieldDiskSerial, err)
	} else if len(disks) > 0 {
		f.DiskSerial = strings.TrimSpace(disks[0].SerialNumber)
	}

	return f, nil
}
