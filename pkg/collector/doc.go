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

// Package collector turns telemetry into report categories.
//
// # Core Interface
//
// A Collector produces exactly one category per invocation:
//
//	type Collector interface {
//	    Collect(ctx context.Context) (*report.Category, error)
//	}
//
// Sub-query failures become Unavailable fields inside the category. A
// returned error means the whole domain could not be read; the aggregator
// replaces the category with a single Unavailable field in that case.
//
// # Registry
//
// A Spec pairs a collector with its category name and whether it needs
// elevated privilege. The Registry keeps specs in registration order, which
// is the order of categories in the report:
//
//	reg, err := collector.NewDefaultRegistry(collector.NewDefaultFactory(local.New()))
//
// # Factory Pattern
//
// The Factory interface abstracts collector creation so tests can substitute
// a fake telemetry provider:
//
//	factory := collector.NewDefaultFactory(provider,
//	    collector.WithEnvironmentExclude([]string{"*TOKEN*"}),
//	)
//
// # Available Collectors
//
//   - System: OS, kernel, host identity, uptime
//   - Hardware: processor, memory, disks, GPUs, battery, elevated inventory
//   - Network: adapters, addresses, default gateway
//   - Security: firewall, anti-malware, encryption, MAC, secure boot, ASLR
//   - Performance: CPU, memory, swap, network counters, load
//   - Services: running, stopped and failed services
//   - User: account, terminal, sessions
//   - Environment: search path, locale, time zone, filtered variables
//   - Runtime: the hostreport binary and Go runtime
//   - Firmware: BIOS, board, product and chassis identity (elevated only)
package collector
