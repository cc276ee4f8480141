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

// Package logging provides structured logging utilities for hostreport.
//
// # Overview
//
// This package wraps the standard library slog package with hostreport defaults:
// JSON records on stderr, module and version attributes on every record, and
// source locations when running at debug level. Stdout is reserved for the
// report itself.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: per-collector timings and provider sub-query failures
//   - INFO: run lifecycle
//   - WARN/WARNING: degraded collectors, declined elevation
//   - ERROR: failures that abort the run
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLoggerWithLevel("hostreport", version, cfg.LogLevel)
//	    slog.Debug("building report", "collectors", registry.Len())
//	}
//
// # Environment Configuration
//
//	LOG_LEVEL=debug hostreport
//
// The interactive CLI defaults to warn so that only degraded collectors are
// reported next to the console output.
//
// # Output Format
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "WARN",
//	    "msg": "collector degraded",
//	    "module": "hostreport",
//	    "version": "v0.3.0",
//	    "collector": "Services",
//	    "error": "[SOURCE_UNAVAILABLE] failed to connect to systemd: ..."
//	}
package logging
