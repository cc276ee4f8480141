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

// Package aggregator runs the registered collectors one after another and
// assembles their categories into a single report.
//
// Every registered collector yields exactly one category, in registration
// order. A collector that fails, panics, returns nothing or overruns its
// deadline is recorded as an Unavailable category so that the rest of the
// report is unaffected. Collectors that require elevated privilege are
// skipped, and never invoked, when the process runs at standard privilege.
//
// Usage:
//
//	agg := &aggregator.Aggregator{
//	    Registry: registry,
//	    Timeout:  10 * time.Second,
//	    Version:  version,
//	}
//	rep, err := agg.BuildReport(ctx, privilege.Standard)
//
// BuildReport only fails when there is nothing to run. The returned report is
// complete; rendering starts after it returns.
//
// Metrics are registered with the default Prometheus registry:
//
//   - hostreport_collector_duration_seconds{collector}
//   - hostreport_collector_total{collector,outcome}
//   - hostreport_report_categories
//   - hostreport_report_build_duration_seconds
//
// At debug log level every build ends with a "report metrics" record that
// carries the current value of each series.
package aggregator
