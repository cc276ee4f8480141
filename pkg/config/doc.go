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

// Package config loads hostreport settings.
//
// Settings are layered, later sources winning:
//
//  1. built-in defaults
//  2. a YAML file at $HOSTREPORT_CONFIG, or ~/.hostreport.yaml
//  3. hostreport variables from a .env file in the working directory
//  4. the same variables from the process environment
//
// The .env file is read, never exported: its entries do not reach the
// process environment and so never appear in the Environment category.
//
// Example file:
//
//	log_level: info
//	no_elevate: true
//	collector_timeout: 15s
//	cpu_sample_interval: 1s
//	environment:
//	  include: ["LANG", "LC_*", "PATH"]
//	  exclude: ["*TOKEN*"]
//
// Environment variables: LOG_LEVEL, HOSTREPORT_NO_ELEVATE,
// HOSTREPORT_COLLECTOR_TIMEOUT and HOSTREPORT_CPU_SAMPLE.
//
// Missing or malformed sources are logged and skipped; Load always returns
// a usable configuration.
package config
