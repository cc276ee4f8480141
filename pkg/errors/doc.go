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

// Package errors provides structured error types for better observability
// and programmatic error handling across hostreport.
//
// The codes mirror the failure taxonomy of a report run:
//
//   - PERMISSION_DENIED: a query needs elevated privilege
//   - SOURCE_UNAVAILABLE: an OS or management interface did not answer
//   - NOT_SUPPORTED: the source does not exist on this platform
//   - ELEVATION_DECLINED: an elevated relaunch was refused; the run continues
//   - FATAL_STARTUP: no report can be produced; the process exits non-zero
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeSourceUnavailable,
//	    "failed to list systemd units",
//	    cause,
//	    map[string]any{
//	        "bus": "system",
//	    },
//	)
package errors
