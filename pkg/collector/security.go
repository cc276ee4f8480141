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

// SecurityCollector reports host protection mechanisms.
type SecurityCollector struct {
	Provider telemetry.Provider
}

// Collect implements Collector.
func (c *SecurityCollector) Collect(ctx context.Context) (*report.Category, error) {
	slog.Debug("collecting security information")

	info, err := c.Provider.Security(ctx)
	if err != nil {
		return nil, err
	}

	products := make(report.List, 0, len(info.Antivirus))
	for _, p := range info.Antivirus {
		products = append(products, report.Map{
			"Name":  textValue(p.Name),
			"State": textValue(p.State),
		})
	}
	avErr := info.Err(telemetry.FieldAntivirus)

	return report.NewCategory(CategorySecurity).
		SetResult("Firewall", textValue(info.Firewall), info.Err(telemetry.FieldFirewall)).
		SetResult("Antivirus count", report.Int(len(info.Antivirus)), avErr).
		SetResult("Antivirus", products, avErr).
		SetResult("Disk encryption", report.Strings(info.EncryptedVolumes), info.Err(telemetry.FieldEncryption)).
		SetResult("Mandatory access control", textValue(info.AccessControl), info.Err(telemetry.FieldAccessControl)).
		SetResult("Secure boot", textValue(info.SecureBoot), info.Err(telemetry.FieldSecureBoot)).
		SetResult("ASLR", textValue(info.ASLR), info.Err(telemetry.FieldASLR)).
		Build(), nil
}
