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

// Package cli implements the hostreport command.
//
// # Overview
//
// hostreport prints a categorized report of the local machine: operating
// system, hardware, network, security posture, performance, services, the
// current user, environment, the Go runtime and firmware. It takes no flags
// beyond --help and --version.
//
//	hostreport
//
// # Privilege
//
// When started without administrative rights the command first tries to
// relaunch itself elevated (sudo on Unix, a UAC prompt on Windows). If the
// elevated instance starts, this process prints nothing and exits with the
// elevated instance's status. If elevation is declined or unavailable, a
// notice is printed to stderr and the report is produced at standard
// privilege, with privileged fields marked Unavailable.
//
// Set HOSTREPORT_NO_ELEVATE=1 (or no_elevate: true in the config file) to
// skip the relaunch.
//
// # Configuration
//
// Settings come from ~/.hostreport.yaml, $HOSTREPORT_CONFIG, a .env file and
// environment variables. See package config.
//
// # Exit Codes
//
//	0  report printed, even if some collectors were unavailable
//	1  the report could not be produced
//	n  exit status of the elevated instance
package cli
