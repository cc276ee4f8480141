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

package collector

import (
	"context"
	"log/slog"

	"github.com/NVIDIA/hostreport/pkg/report"
	"github.com/NVIDIA/hostreport/pkg/telemetry"
)

// FirmwareCollector reports BIOS, board, product and chassis identity. It is
// registered as requiring elevated privilege.
type FirmwareCollector struct {
	Provider telemetry.Provider
}

// Collect implements Collector.
func (c *FirmwareCollector) Collect(ctx context.Context) (*report.Category, error) {
	slog.Debug("collecting firmware information")

	info, err := c.Provider.Firmware(ctx)
	if err != nil {
		return nil, err
	}

	biosErr := info.Err(telemetry.FieldBIOS)
	boardErr := info.Err(telemetry.FieldBoard)
	productErr := info.Err(telemetry.FieldProduct)

	return report.NewCategory(CategoryFirmware).
		SetResult("BIOS vendor", textValue(info.BIOSVendor), biosErr).
		SetResult("BIOS version", textValue(info.BIOSVersion), biosErr).
		SetResult("BIOS release date", textValue(info.BIOSReleaseDate), biosErr).
		SetResult("Board manufacturer", textValue(info.BoardVendor), boardErr).
		SetResult("Board model", textValue(info.BoardName), boardErr).
		SetResult("Board serial", textValue(info.BoardSerial), boardErr).
		SetResult("Product name", textValue(info.ProductName), productErr).
		SetResult("Product serial", textValue(info.ProductSerial), productErr).
		SetResult("Product UUID", textValue(info.ProductUUID), productErr).
		SetResult("Chassis serial", textValue(info.ChassisSerial), info.Err(telemetry.FieldChassis)).
		SetResult("Disk serial", textValue(info.DiskSerial), info.Err(telemetry.FieldDiskSerial)).
		Build(), nil
}
