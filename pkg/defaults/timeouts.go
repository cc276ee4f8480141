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

package defaults

import "time"

// Collector timeouts for data collection operations.
const (
	// CollectorTimeout bounds a single collector invocation.
	// Collectors should respect parent context deadlines when shorter.
	CollectorTimeout = 10 * time.Second

	// CPUSampleInterval is how long CPU utilization is sampled for the
	// Performance category.
	CPUSampleInterval = 500 * time.Millisecond

	// ReportTimeout bounds the whole report run. With ten collectors at
	// CollectorTimeout each the worst case stays below it.
	ReportTimeout = 2 * time.Minute
)

// Privilege timeouts.
const (
	// ElevationPromptTimeout bounds the credential prompt of an elevated
	// relaunch. The relaunched instance itself is not bounded by it.
	ElevationPromptTimeout = 2 * time.Minute
)
