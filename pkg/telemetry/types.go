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

import "time"

// Field names used as Partial keys. Collectors look failures up by these.
const (
	FieldPlatform      = "platform"
	FieldKernel        = "kernel"
	FieldHostname      = "hostname"
	FieldDomain        = "domain"
	FieldWorkingDir    = "workingDir"
	FieldLanguage      = "language"
	FieldVendor        = "vendor"
	FieldRelease       = "release"
	FieldInstall       = "install"
	FieldBootTime      = "bootTime"
	FieldCPU           = "cpu"
	FieldCores         = "cores"
	FieldMemory        = "memory"
	FieldDisk          = "disk"
	FieldPartitions    = "partitions"
	FieldGPU           = "gpu"
	FieldProcesses     = "processes"
	FieldBattery       = "battery"
	FieldMemoryModules = "memoryModules"
	FieldDisks         = "disks"
	FieldBoard         = "board"
	FieldAdapters      = "adapters"
	FieldAddresses     = "addresses"
	FieldGateway       = "gateway"
	FieldFirewall      = "firewall"
	FieldAntivirus     = "antivirus"
	FieldEncryption    = "encryption"
	FieldAccessControl = "accessControl"
	FieldSecureBoot    = "secureBoot"
	FieldASLR          = "aslr"
	FieldCPUUsage      = "cpuUsage"
	FieldSwap          = "swap"
	FieldNetIO         = "netIO"
	FieldLoad          = "load"
	FieldAccount       = "account"
	FieldHome          = "home"
	FieldTerminal      = "terminal"
	FieldSessions      = "sessions"
	FieldLocale        = "locale"
	FieldExecutable    = "executable"
	FieldBuildInfo     = "buildInfo"
	FieldBIOS          = "bios"
	FieldProduct       = "product"
	FieldChassis       = "chassis"
	FieldDiskSerial    = "diskSerial"
)

// SystemInfo describes the operating system and host identity.
type SystemInfo struct {
	Partial

	OS              string
	Platform        string
	PlatformFamily  string
	PlatformVersion string
	KernelVersion   string
	KernelArch      string
	Hostname        string
	Domain          string
	WorkingDir      string
	Language        string
	Manufacturer    string
	Model           string
	HostID          string
	Virtualization  string
	ReleaseName     string
	BootTime        time.Time
	Uptime          time.Duration

	// Installation details are only reported by Windows.
	InstallDate     time.Time
	SystemDirectory string
	SystemDrive     string
}

// Installation describes where and when the operating system was installed.
type Installation struct {
	Date      time.Time
	Directory string
	Drive     string
}

// Partition is a mounted filesystem.
type Partition struct {
	Device     string
	Filesystem string
	Mountpoint string
}

// Battery is one power supply reporting a charge level.
type Battery struct {
	Name    string
	Percent float64
	Status  string
}

// HardwareInfo describes processor, memory, storage and peripherals as seen by
// an unprivileged process.
type HardwareInfo struct {
	Partial

	CPUModel        string
	CPUArch         string
	PhysicalCores   int
	LogicalCores    int
	MemoryTotal     uint64
	MemoryAvailable uint64
	DiskPath        string
	DiskTotal       uint64
	DiskFree        uint64
	Partitions      []Partition
	GPUs            []string
	Processes       int
	Batteries       []Battery
}

// MemoryModule is a memory device. Size is in bytes, Speed in MT/s.
type MemoryModule struct {
	Type         string
	Size         uint64
	Speed        uint
	Manufacturer string
	Serial       string
}

// Disk is a physical storage device. Size is in bytes.
type Disk struct {
	Name   string
	Model  string
	Serial string
	Driver string
	Size   uint64
}

// Board identifies the mainboard.
type Board struct {
	Manufacturer string
	Product      string
}

// HardwareDetails holds hardware inventory that is only readable with
// elevated privilege on most platforms.
type HardwareDetails struct {
	Partial

	Memory []MemoryModule
	Disks  []Disk
	Board  Board
}

// Adapter is a network interface.
type Adapter struct {
	Name      string
	MAC       string
	Addresses []string
	MTU       int
	Flags     []string
}

// NetworkInfo describes interfaces and addressing.
type NetworkInfo struct {
	Partial

	Adapters       []Adapter
	PrimaryIP      string
	AllIPs         []string
	DefaultGateway string
	Hostname       string
}

// Product is an installed security product.
type Product struct {
	Name  string
	State string
}

// SecurityInfo describes host protection mechanisms.
type SecurityInfo struct {
	Partial

	Firewall         string
	Antivirus        []Product
	EncryptedVolumes []string
	AccessControl    string
	SecureBoot       string
	ASLR             string
}

// PerformanceInfo is a single utilization sample.
type PerformanceInfo struct {
	Partial

	CPUPercent    float64
	PerCPUPercent []float64
	MemoryPercent float64
	SwapPercent   float64
	NetIO         map[string]uint64
	BootTime      time.Time
	LoadAverage   []float64
}

// ServicesInfo lists service names by state.
type ServicesInfo struct {
	Partial

	Running []string
	Stopped []string
	Failed  []string
}

// Session is a logged-in user session.
type Session struct {
	User     string
	Terminal string
	Host     string
	Started  time.Time
}

// UserInfo describes the account running the process.
type UserInfo struct {
	Partial

	Username string
	UID      string
	GID      string
	HomeDir  string
	Terminal string
	Sessions []Session
}

// EnvironmentInfo describes process environment, locale and time zone.
type EnvironmentInfo struct {
	Partial

	PathEntries []string
	Locale      string
	LanguageTag string
	Encoding    string
	TimeZone    string
	UTCOffset   time.Duration
	DST         bool
	Variables   map[string]string
}

// RuntimeInfo describes the running hostreport binary.
type RuntimeInfo struct {
	Partial

	Executable    string
	GoVersion     string
	Compiler      string
	OS            string
	Arch          string
	CPUs          int
	MaxProcs      int
	Module        string
	ModuleVersion string
}

// FirmwareInfo holds BIOS, board, product and chassis identity. Serial
// numbers require elevated privilege.
type FirmwareInfo struct {
	Partial

	BIOSVendor      string
	BIOSVersion     string
	BIOSReleaseDate string
	BoardVendor     string
	BoardName       string
	BoardSerial     string
	ProductName     string
	ProductSerial   string
	ProductUUID     string
	ChassisSerial   string
	DiskSerial      string
}
