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

// Package report provides the model a host report is built from.
//
// # Core Types
//
//   - Value: closed tagged union of Scalar, List, Map and Unavailable
//   - Category: named group of fields, one per telemetry domain
//   - Report: header plus categories in collector registration order
//
// # Building Categories
//
//	c := report.NewCategory("Hardware").
//	    SetString("Processor", info.CPUModel).
//	    SetInt("Logical processors", info.LogicalCPUs).
//	    SetResult("Battery", report.Float64(pct), err).
//	    Build()
//
// SetResult stores an Unavailable value in place of the field when err is
// non-nil, so a single failed sub-query never removes the category.
//
// # Unavailable Values
//
// Unavailable carries a human-readable reason. Permission errors are always
// reported with ReasonRequiresElevation:
//
//	report.UnavailableCategory("Firmware", report.ReasonRequiresElevation)
//
// # Filtering
//
// FilterIn and FilterOut select map entries by wildcard patterns ("PATH",
// "LC_*", "*TOKEN*") and work on any map keyed by string.
package report
