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

// Package file reads the small text files Linux exposes under /etc, /proc and
// /sys and splits them into lines or key-value pairs.
//
// Files are read through an fs.FS rooted at "/" so readers can be pointed at a
// fixture tree in tests:
//
//	p := file.NewParser(file.WithKVDelimiter("="), file.WithVTrimChars(`"'`))
//	release, err := p.GetMap("/etc/os-release")
//
//	lsm, err := file.NewParser(file.WithDelimiter(",")).GetLines("/sys/kernel/security/lsm")
//
//	aslr, err := file.NewParser().GetValue("/proc/sys/kernel/randomize_va_space")
//
// Read failures are returned as StructuredErrors: a missing file is
// NOT_SUPPORTED, a file the process may not read is PERMISSION_DENIED and
// anything else is SOURCE_UNAVAILABLE.
package file
