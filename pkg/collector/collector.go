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

	"github.com/NVIDIA/hostreport/pkg/report"
)

// Collector gathers one telemetry domain into a report category.
type Collector interface {
	Collect(ctx context.Context) (*report.Category, error)
}

// CollectorFunc adapts a function to the Collector interface.
type CollectorFunc func(ctx context.Context) (*report.Category, error)

// Collect calls f(ctx).
func (f CollectorFunc) Collect(ctx context.Context) (*report.Category, error) {
	return f(ctx)
}

// Spec declares a collector, the category name it fills and whether it may
// only run with elevated privilege.
type Spec struct {
	Name              string
	RequiresElevation bool
	Collector         Collector
}

// Category names in canonical report order.
const (
	CategorySystem      = "System"
	CategoryHardware    = "Hardware"
	CategoryNetwork     = "Network"
	CategorySecurity    = "Security"
	CategoryPerformance = "Performance"
	CategoryServices    = "Services"
	CategoryUser        = "User"
	CategoryEnvironment = "Environment"
	CategoryRuntime     = "Runtime"
	CategoryFirmware    = "Firmware"
)
